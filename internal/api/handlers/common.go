package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	apperrors "sysmayal-backend/internal/errors"
	"sysmayal-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"error message"`
	Details string `json:"details,omitempty"`
}

// parseID reads the :id path parameter; on failure it writes the 400 response
func parseID(c *gin.Context, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + entity + " ID: invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}

// pagination reads page and page_size, falling back to 1 and 20
func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

// isValidationFailure matches typed validation errors and wrapped validator failures
func isValidationFailure(err error) bool {
	return apperrors.IsValidation(err) || strings.HasPrefix(err.Error(), "validation failed")
}

// respondError maps a service error onto the API's status codes.
// action completes the 500 message, e.g. "create organization".
func respondError(c *gin.Context, err error, action string) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case isValidationFailure(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.UserMessage(err)})
	case errors.Is(err, apperrors.ErrNoFileForVerification), errors.Is(err, apperrors.ErrUnsupportedImportDoctype):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrTaskAlreadyRunning):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsConfiguration(err):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		logger.WithContext(c.Request.Context()).
			WithField("request_id", c.GetString("request_id")).
			Errorf("Failed to %s: %v", action, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action, "details": err.Error()})
	}
}

// bindJSON binds the request body; on failure it writes the 400 response
func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return false
	}
	return true
}
