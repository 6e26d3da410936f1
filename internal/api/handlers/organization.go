package handlers

import (
	"net/http"

	"sysmayal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OrganizationHandler handles HTTP requests for distribution organizations
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{
		service: service,
	}
}

// CreateOrganization handles POST /organizations
// @Summary Create a new organization
// @Description Create a distribution organization. Distributors, retailers and wholesalers get a customer account; suppliers and manufacturers get a supplier account.
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body service.OrganizationRequest true "Organization data"
// @Success 201 {object} service.OrganizationResponse "Successfully created organization"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 409 {object} map[string]interface{} "Organization already exists in the country"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req service.OrganizationRequest
	if !bindJSON(c, &req) {
		return
	}

	org, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "create organization")
		return
	}

	c.JSON(http.StatusCreated, org)
}

// GetOrganization handles GET /organizations/:id
// @Summary Get organization by ID
// @Description Retrieve a specific organization by its UUID
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.OrganizationResponse "Successfully retrieved organization"
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id} [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	id, ok := parseID(c, "organization")
	if !ok {
		return
	}

	org, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get organization")
		return
	}

	c.JSON(http.StatusOK, org)
}

// ListOrganizations handles GET /organizations
// @Summary List organizations
// @Description Get a paginated list of organizations, optionally filtered by country, status and type
// @Tags organizations
// @Accept json
// @Produce json
// @Param country query string false "Country"
// @Param status query string false "Status"
// @Param organization_type query string false "Organization type"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.OrganizationListResponse "Successfully retrieved organizations"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations [get]
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	var filter service.OrganizationListFilter
	_ = c.ShouldBindQuery(&filter)
	page, pageSize := pagination(c)

	orgs, err := h.service.GetAll(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		respondError(c, err, "get organizations")
		return
	}

	c.JSON(http.StatusOK, orgs)
}

// UpdateOrganization handles PUT /organizations/:id
// @Summary Update organization
// @Description Update an existing organization
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param organization body service.OrganizationRequest true "Organization data"
// @Success 200 {object} service.OrganizationResponse "Successfully updated organization"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 409 {object} map[string]interface{} "Organization already exists in the country"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id} [put]
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	id, ok := parseID(c, "organization")
	if !ok {
		return
	}

	var req service.OrganizationRequest
	if !bindJSON(c, &req) {
		return
	}

	org, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "update organization")
		return
	}

	c.JSON(http.StatusOK, org)
}

// DeleteOrganization handles DELETE /organizations/:id
// @Summary Delete organization
// @Description Delete an organization by its UUID
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 204 "Successfully deleted organization"
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id} [delete]
func (h *OrganizationHandler) DeleteOrganization(c *gin.Context) {
	id, ok := parseID(c, "organization")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "delete organization")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetCountryRegulations handles GET /organizations/:id/regulations
// @Summary Get regulations for an organization's country
// @Description Returns the regulatory brief of the organization's country, or a message when no record exists
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.RegulationBrief
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id}/regulations [get]
func (h *OrganizationHandler) GetCountryRegulations(c *gin.Context) {
	id, ok := parseID(c, "organization")
	if !ok {
		return
	}

	brief, err := h.service.GetCountryRegulations(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get country regulations")
		return
	}

	c.JSON(http.StatusOK, brief)
}

// GetComplianceChecklist handles GET /organizations/:id/compliance-checklist
// @Summary Get compliance checklist
// @Description Returns the regulatory checklist for the organization's country and type
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {array} service.ChecklistItem
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id}/compliance-checklist [get]
func (h *OrganizationHandler) GetComplianceChecklist(c *gin.Context) {
	id, ok := parseID(c, "organization")
	if !ok {
		return
	}

	checklist, err := h.service.GetComplianceChecklist(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get compliance checklist")
		return
	}

	c.JSON(http.StatusOK, checklist)
}

// GetHierarchy handles GET /organizations/:id/hierarchy
// @Summary Get organization hierarchy
// @Description Returns the organization with its parent and children
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.HierarchyNode
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id}/hierarchy [get]
func (h *OrganizationHandler) GetHierarchy(c *gin.Context) {
	id, ok := parseID(c, "organization")
	if !ok {
		return
	}

	node, err := h.service.GetHierarchy(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get organization hierarchy")
		return
	}

	c.JSON(http.StatusOK, node)
}

// GetOrganizationsByCountry handles GET /organizations/by-country/:country
// @Summary List active organizations in a country
// @Tags organizations
// @Produce json
// @Param country path string true "Country"
// @Success 200 {array} models.Organization
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/by-country/{country} [get]
func (h *OrganizationHandler) GetOrganizationsByCountry(c *gin.Context) {
	orgs, err := h.service.GetByCountry(c.Request.Context(), c.Param("country"))
	if err != nil {
		respondError(c, err, "get organizations by country")
		return
	}

	c.JSON(http.StatusOK, orgs)
}

// CheckDuplicate handles GET /organizations/check-duplicate
// @Summary Check for a duplicate organization
// @Description Reports whether an organization with the same name already exists in the country
// @Tags organizations
// @Produce json
// @Param name query string true "Organization name"
// @Param country query string true "Country"
// @Success 200 {object} service.DuplicateCheckResponse
// @Failure 400 {object} map[string]interface{} "Missing query parameters"
// @Security BearerAuth
// @Router /organizations/check-duplicate [get]
func (h *OrganizationHandler) CheckDuplicate(c *gin.Context) {
	name := c.Query("name")
	country := c.Query("country")
	if name == "" || country == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and country query parameters are required"})
		return
	}

	result, err := h.service.CheckDuplicate(c.Request.Context(), name, country)
	if err != nil {
		respondError(c, err, "check duplicate organization")
		return
	}

	c.JSON(http.StatusOK, result)
}
