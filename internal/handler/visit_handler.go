package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/worktrace/worktrace/internal/models"
	"github.com/worktrace/worktrace/internal/service"
	"github.com/worktrace/worktrace/pkg/response"
)

// VisitHandler handles HTTP requests for browsing visits
type VisitHandler struct {
	service *service.VisitService
}

// NewVisitHandler creates a new visit handler
func NewVisitHandler(service *service.VisitService) *VisitHandler {
	return &VisitHandler{service: service}
}

// GetVisits handles GET /api/v1/visits
func (h *VisitHandler) GetVisits(c *gin.Context) {
	var filter models.VisitFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	visits, total, err := h.service.GetVisits(filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get visits", err)
		return
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 100
	}
	totalPages := int(total) / filter.PageSize
	if int(total)%filter.PageSize > 0 {
		totalPages++
	}

	response.Success(c, gin.H{
		"data":       visits,
		"total":      total,
		"page":       filter.Page,
		"pageSize":   filter.PageSize,
		"totalPages": totalPages,
	})
}
