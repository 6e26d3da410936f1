package handlers

import (
	"net/http"

	"sysmayal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductComplianceHandler handles HTTP requests for product compliance records
type ProductComplianceHandler struct {
	service service.ProductComplianceServiceInterface
}

// NewProductComplianceHandler creates a new product compliance handler
func NewProductComplianceHandler(service service.ProductComplianceServiceInterface) *ProductComplianceHandler {
	return &ProductComplianceHandler{
		service: service,
	}
}

func complianceFilter(c *gin.Context) service.ProductComplianceFilter {
	return service.ProductComplianceFilter{
		Country:          c.Query("country"),
		ComplianceStatus: c.Query("status"),
		RiskLevel:        c.Query("risk_level"),
	}
}

// CreateRecord handles POST /product-compliance
// @Summary Create a product compliance record
// @Description Create a compliance record for a product in a country. Expiry dates in the past mark the record Expired.
// @Tags product-compliance
// @Accept json
// @Produce json
// @Param record body service.ProductComplianceRequest true "Compliance record"
// @Success 201 {object} service.ProductComplianceResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /product-compliance [post]
func (h *ProductComplianceHandler) CreateRecord(c *gin.Context) {
	var req service.ProductComplianceRequest
	if !bindJSON(c, &req) {
		return
	}

	record, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "create compliance record")
		return
	}

	c.JSON(http.StatusCreated, record)
}

// GetRecord handles GET /product-compliance/:id
// @Summary Get a product compliance record
// @Tags product-compliance
// @Produce json
// @Param id path string true "Record ID (UUID)"
// @Success 200 {object} service.ProductComplianceResponse
// @Failure 400 {object} map[string]interface{} "Invalid record ID"
// @Failure 404 {object} map[string]interface{} "Record not found"
// @Security BearerAuth
// @Router /product-compliance/{id} [get]
func (h *ProductComplianceHandler) GetRecord(c *gin.Context) {
	id, ok := parseID(c, "compliance record")
	if !ok {
		return
	}

	record, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get compliance record")
		return
	}

	c.JSON(http.StatusOK, record)
}

// ListRecords handles GET /product-compliance
// @Summary List product compliance records
// @Tags product-compliance
// @Produce json
// @Param country query string false "Country"
// @Param status query string false "Compliance status"
// @Param risk_level query string false "Risk level"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ProductComplianceListResponse
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /product-compliance [get]
func (h *ProductComplianceHandler) ListRecords(c *gin.Context) {
	page, pageSize := pagination(c)

	records, err := h.service.GetAll(c.Request.Context(), complianceFilter(c), page, pageSize)
	if err != nil {
		respondError(c, err, "get compliance records")
		return
	}

	c.JSON(http.StatusOK, records)
}

// UpdateRecord handles PUT /product-compliance/:id
// @Summary Update a product compliance record
// @Tags product-compliance
// @Accept json
// @Produce json
// @Param id path string true "Record ID (UUID)"
// @Param record body service.ProductComplianceRequest true "Compliance record"
// @Success 200 {object} service.ProductComplianceResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Record not found"
// @Security BearerAuth
// @Router /product-compliance/{id} [put]
func (h *ProductComplianceHandler) UpdateRecord(c *gin.Context) {
	id, ok := parseID(c, "compliance record")
	if !ok {
		return
	}

	var req service.ProductComplianceRequest
	if !bindJSON(c, &req) {
		return
	}

	record, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "update compliance record")
		return
	}

	c.JSON(http.StatusOK, record)
}

// DeleteRecord handles DELETE /product-compliance/:id
// @Summary Delete a product compliance record
// @Tags product-compliance
// @Param id path string true "Record ID (UUID)"
// @Success 204 "Successfully deleted record"
// @Failure 404 {object} map[string]interface{} "Record not found"
// @Security BearerAuth
// @Router /product-compliance/{id} [delete]
func (h *ProductComplianceHandler) DeleteRecord(c *gin.Context) {
	id, ok := parseID(c, "compliance record")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "delete compliance record")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetSummary handles GET /product-compliance/:id/summary
// @Summary Get the compliance summary of a record
// @Description Includes days to expiry and review, the regulation record and an expiry alert
// @Tags product-compliance
// @Produce json
// @Param id path string true "Record ID (UUID)"
// @Success 200 {object} service.ComplianceSummary
// @Failure 404 {object} map[string]interface{} "Record not found"
// @Security BearerAuth
// @Router /product-compliance/{id}/summary [get]
func (h *ProductComplianceHandler) GetSummary(c *gin.Context) {
	id, ok := parseID(c, "compliance record")
	if !ok {
		return
	}

	summary, err := h.service.GetSummary(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get compliance summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetComments handles GET /product-compliance/:id/comments
// @Summary Get the comments of a record
// @Tags product-compliance
// @Produce json
// @Param id path string true "Record ID (UUID)"
// @Success 200 {array} models.Comment
// @Failure 404 {object} map[string]interface{} "Record not found"
// @Security BearerAuth
// @Router /product-compliance/{id}/comments [get]
func (h *ProductComplianceHandler) GetComments(c *gin.Context) {
	id, ok := parseID(c, "compliance record")
	if !ok {
		return
	}

	comments, err := h.service.GetComments(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get compliance comments")
		return
	}

	c.JSON(http.StatusOK, comments)
}

// UpdateStatus handles PUT /product-compliance/:id/status
// @Summary Change the compliance status of a record
// @Tags product-compliance
// @Accept json
// @Produce json
// @Param id path string true "Record ID (UUID)"
// @Param request body service.ComplianceStatusRequest true "New status"
// @Success 200 {object} service.MessageResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Record not found"
// @Security BearerAuth
// @Router /product-compliance/{id}/status [put]
func (h *ProductComplianceHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "compliance record")
	if !ok {
		return
	}

	var req service.ComplianceStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	msg, err := h.service.UpdateStatus(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "update compliance status")
		return
	}

	c.JSON(http.StatusOK, msg)
}

// BulkUpdateStatus handles POST /product-compliance/bulk-status
// @Summary Change the compliance status of several records
// @Tags product-compliance
// @Accept json
// @Produce json
// @Param request body service.BulkComplianceStatusRequest true "Record IDs and new status"
// @Success 200 {object} service.MessageResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Security BearerAuth
// @Router /product-compliance/bulk-status [post]
func (h *ProductComplianceHandler) BulkUpdateStatus(c *gin.Context) {
	var req service.BulkComplianceStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	msg, err := h.service.BulkUpdateStatus(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "update compliance status")
		return
	}

	c.JSON(http.StatusOK, msg)
}

// GetDashboard handles GET /product-compliance/dashboard
// @Summary Compliance dashboard
// @Tags product-compliance
// @Produce json
// @Success 200 {object} service.ComplianceDashboard
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /product-compliance/dashboard [get]
func (h *ProductComplianceHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.service.GetDashboard(c.Request.Context())
	if err != nil {
		respondError(c, err, "get compliance dashboard")
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// GetByCountry handles GET /product-compliance/by-country/:country
// @Summary List compliance records of a country
// @Tags product-compliance
// @Produce json
// @Param country path string true "Country"
// @Success 200 {array} models.ProductCompliance
// @Security BearerAuth
// @Router /product-compliance/by-country/{country} [get]
func (h *ProductComplianceHandler) GetByCountry(c *gin.Context) {
	records, err := h.service.GetByCountry(c.Request.Context(), c.Param("country"))
	if err != nil {
		respondError(c, err, "get compliance records by country")
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetReport handles GET /product-compliance/report
// @Summary Compliance report rows
// @Tags product-compliance
// @Produce json
// @Param country query string false "Country"
// @Param status query string false "Compliance status"
// @Param risk_level query string false "Risk level"
// @Success 200 {array} models.ProductCompliance
// @Security BearerAuth
// @Router /product-compliance/report [get]
func (h *ProductComplianceHandler) GetReport(c *gin.Context) {
	records, err := h.service.GetReport(c.Request.Context(), complianceFilter(c))
	if err != nil {
		respondError(c, err, "get compliance report")
		return
	}

	c.JSON(http.StatusOK, records)
}
