package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/worktrace/worktrace/internal/service"
	"github.com/worktrace/worktrace/internal/worktime"
	"github.com/worktrace/worktrace/pkg/response"
)

const dayLayout = "2006-01-02"

// WorktimeHandler handles HTTP requests for the work-presence report
type WorktimeHandler struct {
	service *service.WorktimeService
}

// NewWorktimeHandler creates a new worktime handler
func NewWorktimeHandler(service *service.WorktimeService) *WorktimeHandler {
	return &WorktimeHandler{service: service}
}

// GetReport handles GET /api/v1/worktime/report
func (h *WorktimeHandler) GetReport(c *gin.Context) {
	from, ok := parseDayParam(c, "from")
	if !ok {
		return
	}
	to, ok := parseDayParam(c, "to")
	if !ok {
		return
	}

	rep, err := h.service.Report(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, worktime.ErrNoData) {
			response.Error(c, http.StatusNotFound, "No visit history to evaluate", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to build report", err)
		return
	}

	response.Success(c, rep)
}

// GetSummary handles GET /api/v1/worktime/summary
func (h *WorktimeHandler) GetSummary(c *gin.Context) {
	sum, err := h.service.Summary(c.Request.Context())
	if err != nil {
		if errors.Is(err, worktime.ErrNoData) {
			response.Error(c, http.StatusNotFound, "No visit history to evaluate", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to build summary", err)
		return
	}

	response.Success(c, sum)
}

// parseDayParam reads an optional YYYY-MM-DD query parameter. Reports the
// error itself and returns ok=false on bad input.
func parseDayParam(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}

	day, err := time.ParseInLocation(dayLayout, raw, time.Local)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid "+name+" date, expected YYYY-MM-DD", err)
		return nil, false
	}
	return &day, true
}
