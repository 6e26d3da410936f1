package handlers

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"

	apperrors "sysmayal-backend/internal/errors"
	"sysmayal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxDocumentSize caps uploaded certificate files
const maxDocumentSize = 20 << 20

// CertificateHandler handles HTTP requests for certification documents
type CertificateHandler struct {
	service service.CertificateServiceInterface
}

// NewCertificateHandler creates a new certificate handler
func NewCertificateHandler(service service.CertificateServiceInterface) *CertificateHandler {
	return &CertificateHandler{
		service: service,
	}
}

// BulkVerifyRequest lists the certificates to verify
type BulkVerifyRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required,min=1"`
}

func certificateFilter(c *gin.Context) (service.CertificateListFilter, bool) {
	orgID, ok := optionalOrganizationID(c)
	if !ok {
		return service.CertificateListFilter{}, false
	}
	includeArchived, _ := strconv.ParseBool(c.DefaultQuery("include_archived", "false"))
	return service.CertificateListFilter{
		Status:          c.Query("status"),
		DocumentType:    c.Query("document_type"),
		Country:         c.Query("country"),
		OrganizationID:  orgID,
		IncludeArchived: includeArchived,
	}, true
}

// CreateCertificate handles POST /certificates
// @Summary Create a certification document
// @Description Create a certificate record. The status follows the expiry date and the renewal date defaults to 90 days before expiry.
// @Tags certificates
// @Accept json
// @Produce json
// @Param certificate body service.CertificateRequest true "Certificate data"
// @Success 201 {object} service.CertificateResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /certificates [post]
func (h *CertificateHandler) CreateCertificate(c *gin.Context) {
	var req service.CertificateRequest
	if !bindJSON(c, &req) {
		return
	}

	cert, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "create certificate")
		return
	}

	c.JSON(http.StatusCreated, cert)
}

// GetCertificate handles GET /certificates/:id
// @Summary Get a certification document
// @Tags certificates
// @Produce json
// @Param id path string true "Certificate ID (UUID)"
// @Success 200 {object} service.CertificateResponse
// @Failure 400 {object} map[string]interface{} "Invalid certificate ID"
// @Failure 404 {object} map[string]interface{} "Certificate not found"
// @Security BearerAuth
// @Router /certificates/{id} [get]
func (h *CertificateHandler) GetCertificate(c *gin.Context) {
	id, ok := parseID(c, "certificate")
	if !ok {
		return
	}

	cert, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get certificate")
		return
	}

	c.JSON(http.StatusOK, cert)
}

// ListCertificates handles GET /certificates
// @Summary List certification documents
// @Tags certificates
// @Produce json
// @Param status query string false "Status"
// @Param document_type query string false "Document type"
// @Param country query string false "Country"
// @Param organization_id query string false "Organization ID (UUID)"
// @Param include_archived query bool false "Include archived documents"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.CertificateListResponse
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Security BearerAuth
// @Router /certificates [get]
func (h *CertificateHandler) ListCertificates(c *gin.Context) {
	filter, ok := certificateFilter(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	certs, err := h.service.GetAll(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		respondError(c, err, "get certificates")
		return
	}

	c.JSON(http.StatusOK, certs)
}

// UpdateCertificate handles PUT /certificates/:id
// @Summary Update a certification document
// @Tags certificates
// @Accept json
// @Produce json
// @Param id path string true "Certificate ID (UUID)"
// @Param certificate body service.CertificateRequest true "Certificate data"
// @Success 200 {object} service.CertificateResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Certificate not found"
// @Security BearerAuth
// @Router /certificates/{id} [put]
func (h *CertificateHandler) UpdateCertificate(c *gin.Context) {
	id, ok := parseID(c, "certificate")
	if !ok {
		return
	}

	var req service.CertificateRequest
	if !bindJSON(c, &req) {
		return
	}

	cert, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "update certificate")
		return
	}

	c.JSON(http.StatusOK, cert)
}

// DeleteCertificate handles DELETE /certificates/:id
// @Summary Delete a certification document
// @Tags certificates
// @Param id path string true "Certificate ID (UUID)"
// @Success 204 "Successfully deleted certificate"
// @Failure 404 {object} map[string]interface{} "Certificate not found"
// @Security BearerAuth
// @Router /certificates/{id} [delete]
func (h *CertificateHandler) DeleteCertificate(c *gin.Context) {
	id, ok := parseID(c, "certificate")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "delete certificate")
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadDocument handles POST /certificates/:id/file
// @Summary Attach a document file
// @Description Stores the file in the document store and records its SHA-256 hash
// @Tags certificates
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Certificate ID (UUID)"
// @Param file formData file true "Document file"
// @Success 200 {object} service.CertificateResponse
// @Failure 400 {object} map[string]interface{} "Missing or oversized file"
// @Failure 404 {object} map[string]interface{} "Certificate not found"
// @Failure 503 {object} map[string]interface{} "Document storage is not configured"
// @Security BearerAuth
// @Router /certificates/{id}/file [post]
func (h *CertificateHandler) UploadDocument(c *gin.Context) {
	id, ok := parseID(c, "certificate")
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required", "details": err.Error()})
		return
	}
	if header.Size > maxDocumentSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("file exceeds the %d MB limit", maxDocumentSize>>20)})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file", "details": err.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxDocumentSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file", "details": err.Error()})
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	cert, err := h.service.Upload(c.Request.Context(), id, header.Filename, data, contentType)
	if err != nil {
		respondError(c, err, "upload document")
		return
	}

	c.JSON(http.StatusOK, cert)
}

// DownloadDocument handles GET /certificates/:id/file
// @Summary Download the attached document file
// @Tags certificates
// @Produce octet-stream
// @Param id path string true "Certificate ID (UUID)"
// @Success 200 {file} file
// @Failure 404 {object} map[string]interface{} "Certificate or file not found"
// @Security BearerAuth
// @Router /certificates/{id}/file [get]
func (h *CertificateHandler) DownloadDocument(c *gin.Context) {
	id, ok := parseID(c, "certificate")
	if !ok {
		return
	}

	doc, err := h.service.Download(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "download document")
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(doc.Name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Name))
	c.Data(http.StatusOK, contentType, doc.Data)
}

// VerifyCertificate handles POST /certificates/:id/verify
// @Summary Verify the stored file against its recorded hash
// @Tags certificates
// @Produce json
// @Param id path string true "Certificate ID (UUID)"
// @Success 200 {object} service.VerificationResult
// @Failure 400 {object} map[string]interface{} "No file or hash available"
// @Failure 404 {object} map[string]interface{} "Certificate not found"
// @Security BearerAuth
// @Router /certificates/{id}/verify [post]
func (h *CertificateHandler) VerifyCertificate(c *gin.Context) {
	id, ok := parseID(c, "certificate")
	if !ok {
		return
	}

	result, err := h.service.Verify(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "verify certificate")
		return
	}

	c.JSON(http.StatusOK, result)
}

// BulkVerify handles POST /certificates/bulk-verify
// @Summary Verify several certificates
// @Tags certificates
// @Accept json
// @Produce json
// @Param request body BulkVerifyRequest true "Certificate IDs"
// @Success 200 {array} service.VerificationResult
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Security BearerAuth
// @Router /certificates/bulk-verify [post]
func (h *CertificateHandler) BulkVerify(c *gin.Context) {
	var req BulkVerifyRequest
	if !bindJSON(c, &req) {
		return
	}

	results, err := h.service.BulkVerify(c.Request.Context(), req.IDs)
	if err != nil {
		respondError(c, err, "verify certificates")
		return
	}

	c.JSON(http.StatusOK, results)
}

// RenewCertificate handles POST /certificates/:id/renew
// @Summary Start the renewal of a certificate
// @Tags certificates
// @Produce json
// @Param id path string true "Certificate ID (UUID)"
// @Success 200 {object} service.MessageResponse
// @Failure 404 {object} map[string]interface{} "Certificate not found"
// @Security BearerAuth
// @Router /certificates/{id}/renew [post]
func (h *CertificateHandler) RenewCertificate(c *gin.Context) {
	id, ok := parseID(c, "certificate")
	if !ok {
		return
	}

	msg, err := h.service.Renew(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "renew certificate")
		return
	}

	c.JSON(http.StatusOK, msg)
}

// GetTimeline handles GET /certificates/:id/timeline
// @Summary Get the lifecycle timeline of a certificate
// @Tags certificates
// @Produce json
// @Param id path string true "Certificate ID (UUID)"
// @Success 200 {array} service.TimelineEvent
// @Failure 404 {object} map[string]interface{} "Certificate not found"
// @Security BearerAuth
// @Router /certificates/{id}/timeline [get]
func (h *CertificateHandler) GetTimeline(c *gin.Context) {
	id, ok := parseID(c, "certificate")
	if !ok {
		return
	}

	events, err := h.service.GetTimeline(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get certificate timeline")
		return
	}

	c.JSON(http.StatusOK, events)
}

// GetExpiring handles GET /certificates/expiring
// @Summary List certificates expiring soon
// @Tags certificates
// @Produce json
// @Param days query int false "Window in days" default(90)
// @Success 200 {array} models.CertificationDocument
// @Failure 400 {object} map[string]interface{} "Invalid days"
// @Security BearerAuth
// @Router /certificates/expiring [get]
func (h *CertificateHandler) GetExpiring(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(service.DefaultExpiringWindow)))
	if err != nil || days <= 0 {
		respondError(c, apperrors.ErrInvalidExpiryWindow, "get expiring certificates")
		return
	}

	certs, err := h.service.GetExpiring(c.Request.Context(), days)
	if err != nil {
		respondError(c, err, "get expiring certificates")
		return
	}

	c.JSON(http.StatusOK, certs)
}

// GetDashboard handles GET /certificates/dashboard
// @Summary Certificate dashboard
// @Tags certificates
// @Produce json
// @Success 200 {object} service.CertificateDashboard
// @Security BearerAuth
// @Router /certificates/dashboard [get]
func (h *CertificateHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.service.GetDashboard(c.Request.Context())
	if err != nil {
		respondError(c, err, "get certificate dashboard")
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// GetReport handles GET /certificates/report
// @Summary Certificate report rows
// @Tags certificates
// @Produce json
// @Param status query string false "Status"
// @Param document_type query string false "Document type"
// @Param country query string false "Country"
// @Param organization_id query string false "Organization ID (UUID)"
// @Success 200 {array} models.CertificationDocument
// @Security BearerAuth
// @Router /certificates/report [get]
func (h *CertificateHandler) GetReport(c *gin.Context) {
	filter, ok := certificateFilter(c)
	if !ok {
		return
	}

	certs, err := h.service.GetReport(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "get certificate report")
		return
	}

	c.JSON(http.StatusOK, certs)
}
