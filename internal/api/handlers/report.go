package handlers

import (
	"net/http"

	"sysmayal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles the compliance, distribution and R&D reports
type ReportHandler struct {
	service    service.ReportServiceInterface
	recipients []string
}

// NewReportHandler creates a new report handler; recipients receive the digest when a request names none
func NewReportHandler(service service.ReportServiceInterface, recipients []string) *ReportHandler {
	return &ReportHandler{
		service:    service,
		recipients: recipients,
	}
}

// DigestRequest names the recipients of a compliance digest
type DigestRequest struct {
	Recipients []string `json:"recipients" example:"compliance@sysmayal.com"`
}

// ComplianceStatus handles GET /reports/compliance
// @Summary Compliance status report
// @Description Rows, summary figures and a status chart for product compliance records
// @Tags reports
// @Produce json
// @Param country query string false "Country"
// @Param compliance_status query string false "Compliance status"
// @Param risk_level query string false "Risk level"
// @Param manufacturer query string false "Manufacturer"
// @Param responsible_person query string false "Responsible person"
// @Param from_date query string false "Expiry from (YYYY-MM-DD)"
// @Param to_date query string false "Expiry to (YYYY-MM-DD)"
// @Success 200 {object} service.ComplianceReport
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Security BearerAuth
// @Router /reports/compliance [get]
func (h *ReportHandler) ComplianceStatus(c *gin.Context) {
	var q service.ComplianceReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters", "details": err.Error()})
		return
	}

	report, err := h.service.ComplianceStatus(c.Request.Context(), q)
	if err != nil {
		respondError(c, err, "generate compliance report")
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetFilters handles GET /reports/compliance/filters
// @Summary Filter options for the compliance report
// @Tags reports
// @Produce json
// @Success 200 {object} service.ComplianceFilterOptions
// @Security BearerAuth
// @Router /reports/compliance/filters [get]
func (h *ReportHandler) GetFilters(c *gin.Context) {
	options, err := h.service.GetFilters(c.Request.Context())
	if err != nil {
		respondError(c, err, "get report filters")
		return
	}

	c.JSON(http.StatusOK, options)
}

// SendComplianceDigest handles POST /reports/compliance/digest
// @Summary Email the compliance summary
// @Tags reports
// @Accept json
// @Produce json
// @Param request body DigestRequest false "Recipients; the configured list is used when empty"
// @Success 202 {object} service.MessageResponse
// @Failure 400 {object} map[string]interface{} "No recipients"
// @Security BearerAuth
// @Router /reports/compliance/digest [post]
func (h *ReportHandler) SendComplianceDigest(c *gin.Context) {
	var req DigestRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}

	recipients := req.Recipients
	if len(recipients) == 0 {
		recipients = h.recipients
	}
	if len(recipients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No recipients configured for the compliance digest"})
		return
	}

	if err := h.service.SendComplianceDigest(c.Request.Context(), recipients); err != nil {
		respondError(c, err, "send compliance digest")
		return
	}

	c.JSON(http.StatusAccepted, service.MessageResponse{Message: "Compliance digest sent"})
}

// bindDistributionQuery reads the distribution report filters
func bindDistributionQuery(c *gin.Context) (service.DistributionReportQuery, bool) {
	var q service.DistributionReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters", "details": err.Error()})
		return q, false
	}
	return q, true
}

// Distribution handles GET /reports/distribution
// @Summary Distribution network report rows
// @Tags reports
// @Produce json
// @Param country query string false "Country"
// @Param organization_type query string false "Organization type"
// @Param status query string false "Status"
// @Param territory query string false "Territory"
// @Param regulatory_status query string false "Regulatory status"
// @Param min_revenue query string false "Minimum annual revenue"
// @Param max_revenue query string false "Maximum annual revenue"
// @Success 200 {array} repository.DistributionReportRow
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Security BearerAuth
// @Router /reports/distribution [get]
func (h *ReportHandler) Distribution(c *gin.Context) {
	q, ok := bindDistributionQuery(c)
	if !ok {
		return
	}

	rows, err := h.service.Distribution(c.Request.Context(), q)
	if err != nil {
		respondError(c, err, "generate distribution report")
		return
	}

	c.JSON(http.StatusOK, rows)
}

// DistributionSummary handles GET /reports/distribution/summary
// @Summary Distribution network summary
// @Tags reports
// @Produce json
// @Success 200 {object} service.DistributionSummary
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Security BearerAuth
// @Router /reports/distribution/summary [get]
func (h *ReportHandler) DistributionSummary(c *gin.Context) {
	q, ok := bindDistributionQuery(c)
	if !ok {
		return
	}

	summary, err := h.service.DistributionSummary(c.Request.Context(), q)
	if err != nil {
		respondError(c, err, "generate distribution summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// DistributionPerformance handles GET /reports/distribution/performance
// @Summary Distribution network performance
// @Tags reports
// @Produce json
// @Success 200 {object} service.DistributionPerformance
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Security BearerAuth
// @Router /reports/distribution/performance [get]
func (h *ReportHandler) DistributionPerformance(c *gin.Context) {
	q, ok := bindDistributionQuery(c)
	if !ok {
		return
	}

	performance, err := h.service.DistributionPerformance(c.Request.Context(), q)
	if err != nil {
		respondError(c, err, "generate distribution performance")
		return
	}

	c.JSON(http.StatusOK, performance)
}

// ContactAnalytics handles GET /reports/distribution/contacts
// @Summary Contact analytics for the distribution network
// @Tags reports
// @Produce json
// @Success 200 {object} service.ContactAnalytics
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Security BearerAuth
// @Router /reports/distribution/contacts [get]
func (h *ReportHandler) ContactAnalytics(c *gin.Context) {
	q, ok := bindDistributionQuery(c)
	if !ok {
		return
	}

	analytics, err := h.service.ContactAnalytics(c.Request.Context(), q)
	if err != nil {
		respondError(c, err, "generate contact analytics")
		return
	}

	c.JSON(http.StatusOK, analytics)
}

// bindProjectQuery reads the R&D report filters
func bindProjectQuery(c *gin.Context) (service.ProjectReportQuery, bool) {
	var q service.ProjectReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters", "details": err.Error()})
		return q, false
	}
	return q, true
}

// ProjectStatus handles GET /reports/projects
// @Summary R&D project status report rows
// @Tags reports
// @Produce json
// @Param status query string false "Status"
// @Param priority query string false "Priority"
// @Param project_type query string false "Project type"
// @Param product_category query string false "Product category"
// @Param project_manager query string false "Project manager"
// @Param r_and_d_lead query string false "R&D lead"
// @Param compliance_status query string false "Compliance status"
// @Param from_date query string false "Start from (YYYY-MM-DD)"
// @Param to_date query string false "Start to (YYYY-MM-DD)"
// @Param min_investment query string false "Minimum investment"
// @Param max_investment query string false "Maximum investment"
// @Success 200 {array} repository.ProjectReportRow
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Security BearerAuth
// @Router /reports/projects [get]
func (h *ReportHandler) ProjectStatus(c *gin.Context) {
	q, ok := bindProjectQuery(c)
	if !ok {
		return
	}

	rows, err := h.service.ProjectStatus(c.Request.Context(), q)
	if err != nil {
		respondError(c, err, "generate project report")
		return
	}

	c.JSON(http.StatusOK, rows)
}

// PortfolioSummary handles GET /reports/projects/summary
// @Summary R&D portfolio summary
// @Tags reports
// @Produce json
// @Success 200 {object} service.PortfolioSummary
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Security BearerAuth
// @Router /reports/projects/summary [get]
func (h *ReportHandler) PortfolioSummary(c *gin.Context) {
	q, ok := bindProjectQuery(c)
	if !ok {
		return
	}

	summary, err := h.service.PortfolioSummary(c.Request.Context(), q)
	if err != nil {
		respondError(c, err, "generate portfolio summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ProjectPerformance handles GET /reports/projects/performance
// @Summary R&D performance metrics
// @Tags reports
// @Produce json
// @Success 200 {object} service.ProjectPerformance
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Security BearerAuth
// @Router /reports/projects/performance [get]
func (h *ReportHandler) ProjectPerformance(c *gin.Context) {
	q, ok := bindProjectQuery(c)
	if !ok {
		return
	}

	performance, err := h.service.ProjectPerformance(c.Request.Context(), q)
	if err != nil {
		respondError(c, err, "generate project performance")
		return
	}

	c.JSON(http.StatusOK, performance)
}

// ProjectRisks handles GET /reports/projects/risks
// @Summary R&D risks and issues
// @Tags reports
// @Produce json
// @Success 200 {object} service.ProjectRisks
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Security BearerAuth
// @Router /reports/projects/risks [get]
func (h *ReportHandler) ProjectRisks(c *gin.Context) {
	q, ok := bindProjectQuery(c)
	if !ok {
		return
	}

	risks, err := h.service.ProjectRisks(c.Request.Context(), q)
	if err != nil {
		respondError(c, err, "generate project risks")
		return
	}

	c.JSON(http.StatusOK, risks)
}
