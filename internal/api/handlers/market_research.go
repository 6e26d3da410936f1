package handlers

import (
	"net/http"

	"sysmayal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MarketResearchHandler handles HTTP requests for market research studies
type MarketResearchHandler struct {
	service service.MarketResearchServiceInterface
}

// NewMarketResearchHandler creates a new market research handler
func NewMarketResearchHandler(service service.MarketResearchServiceInterface) *MarketResearchHandler {
	return &MarketResearchHandler{
		service: service,
	}
}

// CreateStudy handles POST /market-research
// @Summary Create a market research study
// @Tags market-research
// @Accept json
// @Produce json
// @Param study body service.MarketResearchRequest true "Study data"
// @Success 201 {object} service.MarketResearchResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /market-research [post]
func (h *MarketResearchHandler) CreateStudy(c *gin.Context) {
	var req service.MarketResearchRequest
	if !bindJSON(c, &req) {
		return
	}

	study, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "create market research")
		return
	}

	c.JSON(http.StatusCreated, study)
}

// GetStudy handles GET /market-research/:id
// @Summary Get a market research study
// @Tags market-research
// @Produce json
// @Param id path string true "Study ID (UUID)"
// @Success 200 {object} service.MarketResearchResponse
// @Failure 400 {object} map[string]interface{} "Invalid study ID"
// @Failure 404 {object} map[string]interface{} "Study not found"
// @Security BearerAuth
// @Router /market-research/{id} [get]
func (h *MarketResearchHandler) GetStudy(c *gin.Context) {
	id, ok := parseID(c, "study")
	if !ok {
		return
	}

	study, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get market research")
		return
	}

	c.JSON(http.StatusOK, study)
}

// ListStudies handles GET /market-research
// @Summary List market research studies
// @Tags market-research
// @Produce json
// @Param status query string false "Status"
// @Param country query string false "Country"
// @Param region query string false "Region"
// @Param product_category query string false "Product category"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.MarketResearchListResponse
// @Security BearerAuth
// @Router /market-research [get]
func (h *MarketResearchHandler) ListStudies(c *gin.Context) {
	filter := service.MarketResearchFilter{
		Status:          c.Query("status"),
		Country:         c.Query("country"),
		Region:          c.Query("region"),
		ProductCategory: c.Query("product_category"),
	}
	page, pageSize := pagination(c)

	studies, err := h.service.GetAll(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		respondError(c, err, "get market research")
		return
	}

	c.JSON(http.StatusOK, studies)
}

// UpdateStudy handles PUT /market-research/:id
// @Summary Update a market research study
// @Description Recommendations are shared as comments on active R&D projects targeting the same market
// @Tags market-research
// @Accept json
// @Produce json
// @Param id path string true "Study ID (UUID)"
// @Param study body service.MarketResearchRequest true "Study data"
// @Success 200 {object} service.MarketResearchResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Study not found"
// @Security BearerAuth
// @Router /market-research/{id} [put]
func (h *MarketResearchHandler) UpdateStudy(c *gin.Context) {
	id, ok := parseID(c, "study")
	if !ok {
		return
	}

	var req service.MarketResearchRequest
	if !bindJSON(c, &req) {
		return
	}

	study, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "update market research")
		return
	}

	c.JSON(http.StatusOK, study)
}

// DeleteStudy handles DELETE /market-research/:id
// @Summary Delete a market research study
// @Tags market-research
// @Param id path string true "Study ID (UUID)"
// @Success 204 "Successfully deleted study"
// @Failure 404 {object} map[string]interface{} "Study not found"
// @Security BearerAuth
// @Router /market-research/{id} [delete]
func (h *MarketResearchHandler) DeleteStudy(c *gin.Context) {
	id, ok := parseID(c, "study")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "delete market research")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetCompetitiveSummary handles GET /market-research/:id/competitive-summary
// @Summary Get the competitive summary of a study
// @Tags market-research
// @Produce json
// @Param id path string true "Study ID (UUID)"
// @Success 200 {object} service.CompetitiveSummary
// @Failure 404 {object} map[string]interface{} "Study not found"
// @Security BearerAuth
// @Router /market-research/{id}/competitive-summary [get]
func (h *MarketResearchHandler) GetCompetitiveSummary(c *gin.Context) {
	id, ok := parseID(c, "study")
	if !ok {
		return
	}

	summary, err := h.service.GetCompetitiveSummary(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get competitive summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GenerateReport handles GET /market-research/:id/report
// @Summary Generate the market report of a study
// @Tags market-research
// @Produce json
// @Param id path string true "Study ID (UUID)"
// @Success 200 {object} service.MarketReport
// @Failure 404 {object} map[string]interface{} "Study not found"
// @Security BearerAuth
// @Router /market-research/{id}/report [get]
func (h *MarketResearchHandler) GenerateReport(c *gin.Context) {
	id, ok := parseID(c, "study")
	if !ok {
		return
	}

	report, err := h.service.GenerateReport(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "generate market report")
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetDashboard handles GET /market-research/dashboard
// @Summary Market research dashboard
// @Tags market-research
// @Produce json
// @Success 200 {object} service.ResearchDashboard
// @Security BearerAuth
// @Router /market-research/dashboard [get]
func (h *MarketResearchHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.service.GetDashboard(c.Request.Context())
	if err != nil {
		respondError(c, err, "get market research dashboard")
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// GetIntelligence handles GET /market-research/intelligence/:country
// @Summary Market intelligence for a country
// @Tags market-research
// @Produce json
// @Param country path string true "Country"
// @Success 200 {object} service.MarketIntelligence
// @Security BearerAuth
// @Router /market-research/intelligence/{country} [get]
func (h *MarketResearchHandler) GetIntelligence(c *gin.Context) {
	intelligence, err := h.service.GetIntelligence(c.Request.Context(), c.Param("country"))
	if err != nil {
		respondError(c, err, "get market intelligence")
		return
	}

	c.JSON(http.StatusOK, intelligence)
}

// GetLandscapeReport handles GET /market-research/landscape
// @Summary Competitive landscape across studies
// @Tags market-research
// @Produce json
// @Param product_category query string false "Product category"
// @Param region query string false "Region"
// @Success 200 {object} service.LandscapeReport
// @Security BearerAuth
// @Router /market-research/landscape [get]
func (h *MarketResearchHandler) GetLandscapeReport(c *gin.Context) {
	report, err := h.service.GetLandscapeReport(c.Request.Context(), c.Query("product_category"), c.Query("region"))
	if err != nil {
		respondError(c, err, "get competitive landscape")
		return
	}

	c.JSON(http.StatusOK, report)
}
