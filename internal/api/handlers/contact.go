package handlers

import (
	"bytes"
	"net/http"

	"sysmayal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContactHandler handles HTTP requests for distribution contacts
type ContactHandler struct {
	service service.ContactServiceInterface
}

// NewContactHandler creates a new contact handler
func NewContactHandler(service service.ContactServiceInterface) *ContactHandler {
	return &ContactHandler{
		service: service,
	}
}

// optionalOrganizationID reads the organization_id query parameter
func optionalOrganizationID(c *gin.Context) (*uuid.UUID, bool) {
	raw := c.Query("organization_id")
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return nil, false
	}
	return &id, true
}

// CreateContact handles POST /contacts
// @Summary Create a new contact
// @Description Create a contact within an organization. The email must be unique within the organization.
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body service.ContactRequest true "Contact data"
// @Success 201 {object} service.ContactResponse "Successfully created contact"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 409 {object} map[string]interface{} "Contact already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /contacts [post]
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req service.ContactRequest
	if !bindJSON(c, &req) {
		return
	}

	contact, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "create contact")
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// GetContact handles GET /contacts/:id
// @Summary Get contact by ID
// @Tags contacts
// @Produce json
// @Param id path string true "Contact ID (UUID)"
// @Success 200 {object} service.ContactResponse
// @Failure 400 {object} map[string]interface{} "Invalid contact ID"
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Security BearerAuth
// @Router /contacts/{id} [get]
func (h *ContactHandler) GetContact(c *gin.Context) {
	id, ok := parseID(c, "contact")
	if !ok {
		return
	}

	contact, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get contact")
		return
	}

	c.JSON(http.StatusOK, contact)
}

// ListContacts handles GET /contacts
// @Summary List contacts
// @Tags contacts
// @Produce json
// @Param organization_id query string false "Organization ID (UUID)"
// @Param status query string false "Status"
// @Param regulatory_role query string false "Regulatory role"
// @Param country query string false "Country"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ContactListResponse
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /contacts [get]
func (h *ContactHandler) ListContacts(c *gin.Context) {
	orgID, ok := optionalOrganizationID(c)
	if !ok {
		return
	}
	filter := service.ContactListFilter{
		OrganizationID: orgID,
		Status:         c.Query("status"),
		RegulatoryRole: c.Query("regulatory_role"),
		Country:        c.Query("country"),
	}
	page, pageSize := pagination(c)

	contacts, err := h.service.GetAll(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		respondError(c, err, "get contacts")
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// UpdateContact handles PUT /contacts/:id
// @Summary Update contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID (UUID)"
// @Param contact body service.ContactRequest true "Contact data"
// @Success 200 {object} service.ContactResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Failure 409 {object} map[string]interface{} "Contact already exists"
// @Security BearerAuth
// @Router /contacts/{id} [put]
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	id, ok := parseID(c, "contact")
	if !ok {
		return
	}

	var req service.ContactRequest
	if !bindJSON(c, &req) {
		return
	}

	contact, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "update contact")
		return
	}

	c.JSON(http.StatusOK, contact)
}

// DeleteContact handles DELETE /contacts/:id
// @Summary Delete contact
// @Tags contacts
// @Param id path string true "Contact ID (UUID)"
// @Success 204 "Successfully deleted contact"
// @Failure 400 {object} map[string]interface{} "Invalid contact ID"
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Security BearerAuth
// @Router /contacts/{id} [delete]
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	id, ok := parseID(c, "contact")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "delete contact")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetOrganizationDetails handles GET /contacts/:id/organization
// @Summary Get the contact's organization details
// @Tags contacts
// @Produce json
// @Param id path string true "Contact ID (UUID)"
// @Success 200 {object} service.OrganizationDetails
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Security BearerAuth
// @Router /contacts/{id}/organization [get]
func (h *ContactHandler) GetOrganizationDetails(c *gin.Context) {
	id, ok := parseID(c, "contact")
	if !ok {
		return
	}

	details, err := h.service.GetOrganizationDetails(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get organization details")
		return
	}

	c.JSON(http.StatusOK, details)
}

// GetCommunicationHistory handles GET /contacts/:id/communications
// @Summary Get communication history
// @Description Returns the 20 most recent communications with the contact
// @Tags contacts
// @Produce json
// @Param id path string true "Contact ID (UUID)"
// @Success 200 {array} models.Communication
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Security BearerAuth
// @Router /contacts/{id}/communications [get]
func (h *ContactHandler) GetCommunicationHistory(c *gin.Context) {
	id, ok := parseID(c, "contact")
	if !ok {
		return
	}

	history, err := h.service.GetCommunicationHistory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get communication history")
		return
	}

	c.JSON(http.StatusOK, history)
}

// UpdateLastContacted handles POST /contacts/:id/contacted
// @Summary Mark contact as contacted today
// @Tags contacts
// @Produce json
// @Param id path string true "Contact ID (UUID)"
// @Success 200 {object} service.MessageResponse
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Security BearerAuth
// @Router /contacts/{id}/contacted [post]
func (h *ContactHandler) UpdateLastContacted(c *gin.Context) {
	id, ok := parseID(c, "contact")
	if !ok {
		return
	}

	msg, err := h.service.UpdateLastContacted(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "update last contacted date")
		return
	}

	c.JSON(http.StatusOK, msg)
}

// GetRegulatoryRequirements handles GET /contacts/:id/regulatory-requirements
// @Summary Get regulatory requirements for the contact's country
// @Tags contacts
// @Produce json
// @Param id path string true "Contact ID (UUID)"
// @Success 200 {array} service.RegulatoryRequirement
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Security BearerAuth
// @Router /contacts/{id}/regulatory-requirements [get]
func (h *ContactHandler) GetRegulatoryRequirements(c *gin.Context) {
	id, ok := parseID(c, "contact")
	if !ok {
		return
	}

	requirements, err := h.service.GetRegulatoryRequirements(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get regulatory requirements")
		return
	}

	c.JSON(http.StatusOK, requirements)
}

// GetContactsByOrganization handles GET /contacts/by-organization/:orgId
// @Summary List active contacts of an organization
// @Tags contacts
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Success 200 {array} models.Contact
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Security BearerAuth
// @Router /contacts/by-organization/{orgId} [get]
func (h *ContactHandler) GetContactsByOrganization(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("orgId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	contacts, err := h.service.GetByOrganization(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, err, "get contacts by organization")
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// GetContactsByRegulatoryRole handles GET /contacts/by-role
// @Summary List active contacts by regulatory role
// @Tags contacts
// @Produce json
// @Param role query string true "Regulatory role"
// @Param country query string false "Country"
// @Success 200 {array} models.Contact
// @Failure 400 {object} map[string]interface{} "Missing role"
// @Security BearerAuth
// @Router /contacts/by-role [get]
func (h *ContactHandler) GetContactsByRegulatoryRole(c *gin.Context) {
	role := c.Query("role")
	if role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role query parameter is required"})
		return
	}

	contacts, err := h.service.GetByRegulatoryRole(c.Request.Context(), role, c.Query("country"))
	if err != nil {
		respondError(c, err, "get contacts by regulatory role")
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// BulkUpdateStatus handles POST /contacts/bulk-status
// @Summary Update the status of several contacts
// @Tags contacts
// @Accept json
// @Produce json
// @Param request body service.BulkStatusRequest true "Contact IDs and new status"
// @Success 200 {object} service.MessageResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Security BearerAuth
// @Router /contacts/bulk-status [post]
func (h *ContactHandler) BulkUpdateStatus(c *gin.Context) {
	var req service.BulkStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	msg, err := h.service.BulkUpdateStatus(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "update contact status")
		return
	}

	c.JSON(http.StatusOK, msg)
}

// ExportContacts handles GET /contacts/export
// @Summary Export contacts
// @Description Exports contacts as JSON rows, or as a CSV file when format=csv
// @Tags contacts
// @Produce json
// @Produce text/csv
// @Param organization_id query string false "Organization ID (UUID)"
// @Param format query string false "json or csv" default(json)
// @Success 200 {array} map[string]string
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Security BearerAuth
// @Router /contacts/export [get]
func (h *ContactHandler) ExportContacts(c *gin.Context) {
	orgID, ok := optionalOrganizationID(c)
	if !ok {
		return
	}

	if c.DefaultQuery("format", "json") == "csv" {
		var buf bytes.Buffer
		if err := h.service.ExportCSV(c.Request.Context(), orgID, &buf); err != nil {
			respondError(c, err, "export contacts")
			return
		}
		c.Header("Content-Disposition", `attachment; filename="contacts.csv"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
		return
	}

	rows, err := h.service.Export(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, err, "export contacts")
		return
	}

	c.JSON(http.StatusOK, rows)
}
