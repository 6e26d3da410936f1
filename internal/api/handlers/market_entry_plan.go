package handlers

import (
	"net/http"

	"sysmayal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MarketEntryPlanHandler handles HTTP requests for market entry plans
type MarketEntryPlanHandler struct {
	service service.MarketEntryPlanServiceInterface
}

// NewMarketEntryPlanHandler creates a new market entry plan handler
func NewMarketEntryPlanHandler(service service.MarketEntryPlanServiceInterface) *MarketEntryPlanHandler {
	return &MarketEntryPlanHandler{
		service: service,
	}
}

func planFilter(c *gin.Context) service.MarketEntryPlanFilter {
	return service.MarketEntryPlanFilter{
		Status:        c.Query("status"),
		TargetCountry: c.Query("target_country"),
		Priority:      c.Query("priority"),
	}
}

// CreatePlan handles POST /market-entry-plans
// @Summary Create a market entry plan
// @Description Create a plan. Financial metrics are derived from the revenue projections and non-fatal issues come back as warnings.
// @Tags market-entry-plans
// @Accept json
// @Produce json
// @Param plan body service.MarketEntryPlanRequest true "Plan data"
// @Success 201 {object} service.MarketEntryPlanResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /market-entry-plans [post]
func (h *MarketEntryPlanHandler) CreatePlan(c *gin.Context) {
	var req service.MarketEntryPlanRequest
	if !bindJSON(c, &req) {
		return
	}

	plan, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "create market entry plan")
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// GetPlan handles GET /market-entry-plans/:id
// @Summary Get a market entry plan
// @Tags market-entry-plans
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Success 200 {object} service.MarketEntryPlanResponse
// @Failure 400 {object} map[string]interface{} "Invalid plan ID"
// @Failure 404 {object} map[string]interface{} "Plan not found"
// @Security BearerAuth
// @Router /market-entry-plans/{id} [get]
func (h *MarketEntryPlanHandler) GetPlan(c *gin.Context) {
	id, ok := parseID(c, "plan")
	if !ok {
		return
	}

	plan, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get market entry plan")
		return
	}

	c.JSON(http.StatusOK, plan)
}

// ListPlans handles GET /market-entry-plans
// @Summary List market entry plans
// @Tags market-entry-plans
// @Produce json
// @Param status query string false "Status"
// @Param target_country query string false "Target country"
// @Param priority query string false "Priority"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.MarketEntryPlanListResponse
// @Security BearerAuth
// @Router /market-entry-plans [get]
func (h *MarketEntryPlanHandler) ListPlans(c *gin.Context) {
	page, pageSize := pagination(c)

	plans, err := h.service.GetAll(c.Request.Context(), planFilter(c), page, pageSize)
	if err != nil {
		respondError(c, err, "get market entry plans")
		return
	}

	c.JSON(http.StatusOK, plans)
}

// UpdatePlan handles PUT /market-entry-plans/:id
// @Summary Update a market entry plan
// @Tags market-entry-plans
// @Accept json
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Param plan body service.MarketEntryPlanRequest true "Plan data"
// @Success 200 {object} service.MarketEntryPlanResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Plan not found"
// @Security BearerAuth
// @Router /market-entry-plans/{id} [put]
func (h *MarketEntryPlanHandler) UpdatePlan(c *gin.Context) {
	id, ok := parseID(c, "plan")
	if !ok {
		return
	}

	var req service.MarketEntryPlanRequest
	if !bindJSON(c, &req) {
		return
	}

	plan, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "update market entry plan")
		return
	}

	c.JSON(http.StatusOK, plan)
}

// DeletePlan handles DELETE /market-entry-plans/:id
// @Summary Delete a market entry plan
// @Tags market-entry-plans
// @Param id path string true "Plan ID (UUID)"
// @Success 204 "Successfully deleted plan"
// @Failure 404 {object} map[string]interface{} "Plan not found"
// @Security BearerAuth
// @Router /market-entry-plans/{id} [delete]
func (h *MarketEntryPlanHandler) DeletePlan(c *gin.Context) {
	id, ok := parseID(c, "plan")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "delete market entry plan")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetAnalysisSummary handles GET /market-entry-plans/:id/analysis
// @Summary Get the analysis summary of a plan
// @Description Financial metrics, market analysis, risks, timeline and the target country's regulation
// @Tags market-entry-plans
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Success 200 {object} service.PlanAnalysisSummary
// @Failure 404 {object} map[string]interface{} "Plan not found"
// @Security BearerAuth
// @Router /market-entry-plans/{id}/analysis [get]
func (h *MarketEntryPlanHandler) GetAnalysisSummary(c *gin.Context) {
	id, ok := parseID(c, "plan")
	if !ok {
		return
	}

	summary, err := h.service.GetAnalysisSummary(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get plan analysis")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// UpdateMilestone handles POST /market-entry-plans/:id/milestones
// @Summary Record a milestone
// @Description Appends the milestone to the plan and advances completion by 10 points, capped at 95
// @Tags market-entry-plans
// @Accept json
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Param milestone body service.MilestoneRequest true "Milestone"
// @Success 200 {object} service.MessageResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Plan not found"
// @Security BearerAuth
// @Router /market-entry-plans/{id}/milestones [post]
func (h *MarketEntryPlanHandler) UpdateMilestone(c *gin.Context) {
	id, ok := parseID(c, "plan")
	if !ok {
		return
	}

	var req service.MilestoneRequest
	if !bindJSON(c, &req) {
		return
	}

	msg, err := h.service.UpdateMilestone(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "update milestone")
		return
	}

	c.JSON(http.StatusOK, msg)
}

// GetExecutiveSummary handles GET /market-entry-plans/:id/executive-summary
// @Summary Get the executive summary of a plan
// @Tags market-entry-plans
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Success 200 {object} service.ExecutiveSummary
// @Failure 404 {object} map[string]interface{} "Plan not found"
// @Security BearerAuth
// @Router /market-entry-plans/{id}/executive-summary [get]
func (h *MarketEntryPlanHandler) GetExecutiveSummary(c *gin.Context) {
	id, ok := parseID(c, "plan")
	if !ok {
		return
	}

	summary, err := h.service.GetExecutiveSummary(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get executive summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetDashboard handles GET /market-entry-plans/dashboard
// @Summary Market entry dashboard
// @Tags market-entry-plans
// @Produce json
// @Success 200 {object} service.MarketEntryDashboard
// @Security BearerAuth
// @Router /market-entry-plans/dashboard [get]
func (h *MarketEntryPlanHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.service.GetDashboard(c.Request.Context())
	if err != nil {
		respondError(c, err, "get market entry dashboard")
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// GetOpportunities handles GET /market-entry-plans/opportunities
// @Summary Countries with regulation records but no plan yet
// @Tags market-entry-plans
// @Produce json
// @Success 200 {array} service.MarketOpportunity
// @Security BearerAuth
// @Router /market-entry-plans/opportunities [get]
func (h *MarketEntryPlanHandler) GetOpportunities(c *gin.Context) {
	opportunities, err := h.service.GetOpportunities(c.Request.Context())
	if err != nil {
		respondError(c, err, "get market opportunities")
		return
	}

	c.JSON(http.StatusOK, opportunities)
}

// GetReport handles GET /market-entry-plans/report
// @Summary Market entry report rows
// @Tags market-entry-plans
// @Produce json
// @Param status query string false "Status"
// @Param target_country query string false "Target country"
// @Param priority query string false "Priority"
// @Success 200 {array} models.MarketEntryPlan
// @Security BearerAuth
// @Router /market-entry-plans/report [get]
func (h *MarketEntryPlanHandler) GetReport(c *gin.Context) {
	plans, err := h.service.GetReport(c.Request.Context(), planFilter(c))
	if err != nil {
		respondError(c, err, "get market entry report")
		return
	}

	c.JSON(http.StatusOK, plans)
}
