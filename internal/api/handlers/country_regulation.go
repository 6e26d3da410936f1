package handlers

import (
	"net/http"

	"sysmayal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CountryRegulationHandler handles HTTP requests for country regulations
type CountryRegulationHandler struct {
	service service.CountryRegulationServiceInterface
}

// NewCountryRegulationHandler creates a new country regulation handler
func NewCountryRegulationHandler(service service.CountryRegulationServiceInterface) *CountryRegulationHandler {
	return &CountryRegulationHandler{
		service: service,
	}
}

// CreateRegulation handles POST /regulations
// @Summary Create a country regulation record
// @Description One record per country. The next review date defaults to twelve months from today.
// @Tags regulations
// @Accept json
// @Produce json
// @Param regulation body service.CountryRegulationRequest true "Regulation data"
// @Success 201 {object} models.CountryRegulation
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 409 {object} map[string]interface{} "Regulation record already exists for the country"
// @Security BearerAuth
// @Router /regulations [post]
func (h *CountryRegulationHandler) CreateRegulation(c *gin.Context) {
	var req service.CountryRegulationRequest
	if !bindJSON(c, &req) {
		return
	}

	regulation, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "create regulation")
		return
	}

	c.JSON(http.StatusCreated, regulation)
}

// GetRegulation handles GET /regulations/:id
// @Summary Get a country regulation record
// @Tags regulations
// @Produce json
// @Param id path string true "Regulation ID (UUID)"
// @Success 200 {object} models.CountryRegulation
// @Failure 400 {object} map[string]interface{} "Invalid regulation ID"
// @Failure 404 {object} map[string]interface{} "Regulation not found"
// @Security BearerAuth
// @Router /regulations/{id} [get]
func (h *CountryRegulationHandler) GetRegulation(c *gin.Context) {
	id, ok := parseID(c, "regulation")
	if !ok {
		return
	}

	regulation, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get regulation")
		return
	}

	c.JSON(http.StatusOK, regulation)
}

// ListRegulations handles GET /regulations
// @Summary List country regulation records
// @Tags regulations
// @Produce json
// @Param region query string false "Region"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.CountryRegulationListResponse
// @Security BearerAuth
// @Router /regulations [get]
func (h *CountryRegulationHandler) ListRegulations(c *gin.Context) {
	page, pageSize := pagination(c)

	regulations, err := h.service.GetAll(c.Request.Context(), c.Query("region"), page, pageSize)
	if err != nil {
		respondError(c, err, "get regulations")
		return
	}

	c.JSON(http.StatusOK, regulations)
}

// UpdateRegulation handles PUT /regulations/:id
// @Summary Update a country regulation record
// @Tags regulations
// @Accept json
// @Produce json
// @Param id path string true "Regulation ID (UUID)"
// @Param regulation body service.CountryRegulationRequest true "Regulation data"
// @Success 200 {object} models.CountryRegulation
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Regulation not found"
// @Failure 409 {object} map[string]interface{} "Regulation record already exists for the country"
// @Security BearerAuth
// @Router /regulations/{id} [put]
func (h *CountryRegulationHandler) UpdateRegulation(c *gin.Context) {
	id, ok := parseID(c, "regulation")
	if !ok {
		return
	}

	var req service.CountryRegulationRequest
	if !bindJSON(c, &req) {
		return
	}

	regulation, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "update regulation")
		return
	}

	c.JSON(http.StatusOK, regulation)
}

// DeleteRegulation handles DELETE /regulations/:id
// @Summary Delete a country regulation record
// @Tags regulations
// @Param id path string true "Regulation ID (UUID)"
// @Success 204 "Successfully deleted regulation"
// @Failure 404 {object} map[string]interface{} "Regulation not found"
// @Security BearerAuth
// @Router /regulations/{id} [delete]
func (h *CountryRegulationHandler) DeleteRegulation(c *gin.Context) {
	id, ok := parseID(c, "regulation")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "delete regulation")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetComplianceSummary handles GET /regulations/:id/compliance-summary
// @Summary Compliance figures for the regulation's country
// @Tags regulations
// @Produce json
// @Param id path string true "Regulation ID (UUID)"
// @Success 200 {object} service.RegulationComplianceSummary
// @Failure 404 {object} map[string]interface{} "Regulation not found"
// @Security BearerAuth
// @Router /regulations/{id}/compliance-summary [get]
func (h *CountryRegulationHandler) GetComplianceSummary(c *gin.Context) {
	id, ok := parseID(c, "regulation")
	if !ok {
		return
	}

	summary, err := h.service.GetComplianceSummary(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get regulation compliance summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetByRegion handles GET /regulations/by-region/:region
// @Summary List regulation records of a region
// @Tags regulations
// @Produce json
// @Param region path string true "Region"
// @Success 200 {array} models.CountryRegulation
// @Security BearerAuth
// @Router /regulations/by-region/{region} [get]
func (h *CountryRegulationHandler) GetByRegion(c *gin.Context) {
	regulations, err := h.service.GetByRegion(c.Request.Context(), c.Param("region"))
	if err != nil {
		respondError(c, err, "get regulations by region")
		return
	}

	c.JSON(http.StatusOK, regulations)
}

// ImportRegulations handles POST /regulations/import
// @Summary Import regulations from a JSON document
// @Description Upserts one record per country from {countries: {code: {...}}}
// @Tags regulations
// @Accept json
// @Produce json
// @Param document body service.RegulationImport true "Regulation document"
// @Success 200 {object} service.ImportResult
// @Failure 400 {object} map[string]interface{} "Invalid document"
// @Security BearerAuth
// @Router /regulations/import [post]
func (h *CountryRegulationHandler) ImportRegulations(c *gin.Context) {
	var doc service.RegulationImport
	if !bindJSON(c, &doc) {
		return
	}

	result, err := h.service.ImportFromJSON(c.Request.Context(), &doc)
	if err != nil {
		respondError(c, err, "import regulations")
		return
	}

	c.JSON(http.StatusOK, result)
}
