package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/worktrace/worktrace/internal/importer"
	"github.com/worktrace/worktrace/internal/repository"
	"github.com/worktrace/worktrace/pkg/response"
)

// ImportHandler handles HTTP requests for history imports
type ImportHandler struct {
	importer *importer.Importer
	runs     *repository.ImportRunRepository
}

// NewImportHandler creates a new import handler
func NewImportHandler(imp *importer.Importer, runs *repository.ImportRunRepository) *ImportHandler {
	return &ImportHandler{importer: imp, runs: runs}
}

// Upload handles POST /api/v1/imports (multipart form, field "file")
func (h *ImportHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Missing file upload", err)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to open upload", err)
		return
	}
	defer f.Close()

	run, err := h.importer.Import(f, fileHeader.Filename)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Import failed", err)
		return
	}

	response.Success(c, run)
}

// List handles GET /api/v1/imports
func (h *ImportHandler) List(c *gin.Context) {
	runs, err := h.runs.List()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list imports", err)
		return
	}
	response.Success(c, runs)
}
