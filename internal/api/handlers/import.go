package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"

	"sysmayal-backend/internal/importer"

	"github.com/gin-gonic/gin"
)

// maxImportSize caps uploaded import files
const maxImportSize = 10 << 20

// ImportHandler handles bulk imports of organizations, contacts and regulations
type ImportHandler struct {
	importer importer.ImporterInterface
}

// NewImportHandler creates a new import handler
func NewImportHandler(importer importer.ImporterInterface) *ImportHandler {
	return &ImportHandler{
		importer: importer,
	}
}

// uploadedFile reads the "file" form field, or the raw body when the request is not multipart
func uploadedFile(c *gin.Context) ([]byte, bool) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		header, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is required", "details": err.Error()})
			return nil, false
		}
		file, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file", "details": err.Error()})
			return nil, false
		}
		defer file.Close()
		return readLimited(c, file)
	}
	return readLimited(c, c.Request.Body)
}

func readLimited(c *gin.Context, r io.Reader) ([]byte, bool) {
	data, err := io.ReadAll(io.LimitReader(r, maxImportSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file", "details": err.Error()})
		return nil, false
	}
	if len(data) > maxImportSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file exceeds the 10 MB limit"})
		return nil, false
	}
	return data, true
}

// columnMapping reads repeated map=source=target values from the query or form
func columnMapping(c *gin.Context) map[string]string {
	values := c.QueryArray("map")
	values = append(values, c.PostFormArray("map")...)
	if len(values) == 0 {
		return nil
	}

	mapping := make(map[string]string, len(values))
	for _, value := range values {
		source, target, ok := strings.Cut(value, "=")
		if !ok || strings.TrimSpace(source) == "" || strings.TrimSpace(target) == "" {
			continue
		}
		mapping[strings.TrimSpace(source)] = strings.TrimSpace(target)
	}
	return mapping
}

// isFileError reports errors caused by the uploaded file itself
func isFileError(err error) bool {
	return errors.Is(err, importer.ErrEmptyFile) ||
		errors.Is(err, importer.ErrInvalidEncoding) ||
		errors.Is(err, importer.ErrMissingHeader)
}

// ImportRecords handles POST /imports/:doctype
// @Summary Import organizations or contacts from CSV
// @Description Rows are imported independently. Duplicates are skipped with a warning and failing rows are reported with their data.
// @Tags imports
// @Accept multipart/form-data
// @Produce json
// @Param doctype path string true "organizations or contacts"
// @Param file formData file true "CSV file"
// @Param map query []string false "Column mapping as source=target" collectionFormat(multi)
// @Success 200 {object} importer.Result
// @Failure 400 {object} map[string]interface{} "Invalid file or doctype"
// @Security BearerAuth
// @Router /imports/{doctype} [post]
func (h *ImportHandler) ImportRecords(c *gin.Context) {
	data, ok := uploadedFile(c)
	if !ok {
		return
	}

	result, err := h.importer.Import(c.Request.Context(), c.Param("doctype"), bytes.NewReader(data), columnMapping(c))
	if err != nil {
		if isFileError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err, "import records")
		return
	}

	c.JSON(http.StatusOK, result)
}

// ValidateFile handles POST /imports/:doctype/validate
// @Summary Check an import file without importing it
// @Tags imports
// @Accept multipart/form-data
// @Produce json
// @Param doctype path string true "organizations or contacts"
// @Param file formData file true "CSV file"
// @Param map query []string false "Column mapping as source=target" collectionFormat(multi)
// @Success 200 {object} importer.ValidationReport
// @Failure 400 {object} map[string]interface{} "Invalid file or doctype"
// @Security BearerAuth
// @Router /imports/{doctype}/validate [post]
func (h *ImportHandler) ValidateFile(c *gin.Context) {
	data, ok := uploadedFile(c)
	if !ok {
		return
	}

	report, err := h.importer.Validate(c.Param("doctype"), bytes.NewReader(data), columnMapping(c))
	if err != nil {
		if isFileError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err, "validate import file")
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetTemplate handles GET /imports/templates/:doctype
// @Summary Get the import template of a doctype
// @Description Returns the fields and sample data, or a CSV file when format=csv
// @Tags imports
// @Produce json
// @Produce text/csv
// @Param doctype path string true "organizations or contacts"
// @Param format query string false "json or csv" default(json)
// @Success 200 {object} importer.Template
// @Failure 400 {object} map[string]interface{} "Template not available"
// @Security BearerAuth
// @Router /imports/templates/{doctype} [get]
func (h *ImportHandler) GetTemplate(c *gin.Context) {
	doctype := c.Param("doctype")
	tpl, err := importer.GetTemplate(doctype)
	if err != nil {
		respondError(c, err, "get import template")
		return
	}

	if c.DefaultQuery("format", "json") == "csv" {
		var buf bytes.Buffer
		if err := tpl.WriteCSV(&buf); err != nil {
			respondError(c, err, "write import template")
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+doctype+`_template.csv"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
		return
	}

	c.JSON(http.StatusOK, tpl)
}

// ImportRegulations handles POST /imports/regulations
// @Summary Import country regulations from a JSON file
// @Tags imports
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Param file formData file false "JSON file; the raw request body is used when absent"
// @Success 200 {object} importer.RegulationResult
// @Failure 400 {object} map[string]interface{} "Invalid document"
// @Security BearerAuth
// @Router /imports/regulations [post]
func (h *ImportHandler) ImportRegulations(c *gin.Context) {
	data, ok := uploadedFile(c)
	if !ok {
		return
	}

	result, err := h.importer.ImportRegulations(c.Request.Context(), bytes.NewReader(data))
	if err != nil {
		respondError(c, err, "import regulations")
		return
	}

	c.JSON(http.StatusOK, result)
}
