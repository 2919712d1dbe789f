package service

import (
	"context"

	"github.com/trainhub/trainhub-backend/internal/repository"
)

// DashboardData consolidates the entity counts for the admin dashboard.
type DashboardData struct {
	TotalCourses  int `json:"total_courses"`
	TotalBatches  int `json:"total_batches"`
	TotalStudents int `json:"total_students"`
	TotalTeachers int `json:"total_teachers"`
}

// DashboardService handles admin dashboard business logic.
type DashboardService struct {
	repo *repository.DashboardRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(repo *repository.DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

// GetDashboardData fetches all dashboard counts.
func (s *DashboardService) GetDashboardData(ctx context.Context) (*DashboardData, error) {
	courses, batches, students, teachers, err := s.repo.GetSummaryCounts(ctx)
	if err != nil {
		return nil, err
	}
	return &DashboardData{
		TotalCourses:  courses,
		TotalBatches:  batches,
		TotalStudents: students,
		TotalTeachers: teachers,
	}, nil
}
