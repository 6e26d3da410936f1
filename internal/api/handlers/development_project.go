package handlers

import (
	"net/http"

	"sysmayal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DevelopmentProjectHandler handles HTTP requests for R&D projects
type DevelopmentProjectHandler struct {
	service service.DevelopmentProjectServiceInterface
}

// NewDevelopmentProjectHandler creates a new R&D project handler
func NewDevelopmentProjectHandler(service service.DevelopmentProjectServiceInterface) *DevelopmentProjectHandler {
	return &DevelopmentProjectHandler{
		service: service,
	}
}

// CreateProject handles POST /rd-projects
// @Summary Create an R&D project
// @Tags rd-projects
// @Accept json
// @Produce json
// @Param project body service.DevelopmentProjectRequest true "Project data"
// @Success 201 {object} service.DevelopmentProjectResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /rd-projects [post]
func (h *DevelopmentProjectHandler) CreateProject(c *gin.Context) {
	var req service.DevelopmentProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "create project")
		return
	}

	c.JSON(http.StatusCreated, project)
}

// GetProject handles GET /rd-projects/:id
// @Summary Get an R&D project
// @Tags rd-projects
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} service.DevelopmentProjectResponse
// @Failure 400 {object} map[string]interface{} "Invalid project ID"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Security BearerAuth
// @Router /rd-projects/{id} [get]
func (h *DevelopmentProjectHandler) GetProject(c *gin.Context) {
	id, ok := parseID(c, "project")
	if !ok {
		return
	}

	project, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get project")
		return
	}

	c.JSON(http.StatusOK, project)
}

// ListProjects handles GET /rd-projects
// @Summary List R&D projects
// @Tags rd-projects
// @Produce json
// @Param status query string false "Status"
// @Param priority query string false "Priority"
// @Param project_type query string false "Project type"
// @Param product_category query string false "Product category"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.DevelopmentProjectListResponse
// @Security BearerAuth
// @Router /rd-projects [get]
func (h *DevelopmentProjectHandler) ListProjects(c *gin.Context) {
	filter := service.DevelopmentProjectFilter{
		Status:          c.Query("status"),
		Priority:        c.Query("priority"),
		ProjectType:     c.Query("project_type"),
		ProductCategory: c.Query("product_category"),
	}
	page, pageSize := pagination(c)

	projects, err := h.service.GetAll(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		respondError(c, err, "get projects")
		return
	}

	c.JSON(http.StatusOK, projects)
}

// UpdateProject handles PUT /rd-projects/:id
// @Summary Update an R&D project
// @Tags rd-projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param project body service.DevelopmentProjectRequest true "Project data"
// @Success 200 {object} service.DevelopmentProjectResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Security BearerAuth
// @Router /rd-projects/{id} [put]
func (h *DevelopmentProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := parseID(c, "project")
	if !ok {
		return
	}

	var req service.DevelopmentProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "update project")
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject handles DELETE /rd-projects/:id
// @Summary Delete an R&D project
// @Tags rd-projects
// @Param id path string true "Project ID (UUID)"
// @Success 204 "Successfully deleted project"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Security BearerAuth
// @Router /rd-projects/{id} [delete]
func (h *DevelopmentProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := parseID(c, "project")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "delete project")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetSummary handles GET /rd-projects/:id/summary
// @Summary Get the summary of an R&D project
// @Tags rd-projects
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} service.ProjectSummary
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Security BearerAuth
// @Router /rd-projects/{id}/summary [get]
func (h *DevelopmentProjectHandler) GetSummary(c *gin.Context) {
	id, ok := parseID(c, "project")
	if !ok {
		return
	}

	summary, err := h.service.GetSummary(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get project summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetComments handles GET /rd-projects/:id/comments
// @Summary Get the comments of an R&D project
// @Tags rd-projects
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {array} models.Comment
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Security BearerAuth
// @Router /rd-projects/{id}/comments [get]
func (h *DevelopmentProjectHandler) GetComments(c *gin.Context) {
	id, ok := parseID(c, "project")
	if !ok {
		return
	}

	comments, err := h.service.GetComments(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get project comments")
		return
	}

	c.JSON(http.StatusOK, comments)
}

// GetDashboard handles GET /rd-projects/dashboard
// @Summary R&D project dashboard
// @Tags rd-projects
// @Produce json
// @Success 200 {object} service.ProjectDashboard
// @Security BearerAuth
// @Router /rd-projects/dashboard [get]
func (h *DevelopmentProjectHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.service.GetDashboard(c.Request.Context())
	if err != nil {
		respondError(c, err, "get project dashboard")
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
