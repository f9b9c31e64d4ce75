package service

import (
	"github.com/worktrace/worktrace/internal/models"
	"github.com/worktrace/worktrace/internal/repository"
)

// VisitService handles business logic for browsing visits
type VisitService struct {
	repo *repository.VisitRepository
}

// NewVisitService creates a new visit service
func NewVisitService(repo *repository.VisitRepository) *VisitService {
	return &VisitService{repo: repo}
}

// GetVisits retrieves visits with filtering and pagination
func (s *VisitService) GetVisits(filter models.VisitFilter) ([]models.Visit, int64, error) {
	return s.repo.GetVisits(filter)
}
