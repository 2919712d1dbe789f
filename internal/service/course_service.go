package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog"
	"github.com/trainhub/trainhub-backend/internal/model"
)

// ErrEmptyCSV is returned when a bulk-upload file contains no usable rows.
var ErrEmptyCSV = errors.New("csv contains no rows")

// CourseStore is the persistence contract for courses.
type CourseStore interface {
	List(ctx context.Context) ([]model.Course, error)
	GetByID(ctx context.Context, id int) (*model.Course, error)
	Create(ctx context.Context, c *model.Course) error
	Update(ctx context.Context, id int, name string) (*model.Course, error)
	Delete(ctx context.Context, id int) error
	CreateMany(ctx context.Context, courses []model.Course) (int64, error)
}

// CourseService handles course business logic.
type CourseService struct {
	repo CourseStore
	log  zerolog.Logger
}

// NewCourseService creates a new CourseService.
func NewCourseService(repo CourseStore, log zerolog.Logger) *CourseService {
	return &CourseService{repo: repo, log: log}
}

// List returns all courses.
func (s *CourseService) List(ctx context.Context) ([]model.Course, error) {
	return s.repo.List(ctx)
}

// GetByID returns one course.
func (s *CourseService) GetByID(ctx context.Context, id int) (*model.Course, error) {
	return s.repo.GetByID(ctx, id)
}

// Create adds a course.
func (s *CourseService) Create(ctx context.Context, name string) (*model.Course, error) {
	c := &model.Course{Name: name}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update renames a course.
func (s *CourseService) Update(ctx context.Context, id int, name string) (*model.Course, error) {
	return s.repo.Update(ctx, id, name)
}

// Delete removes a course.
func (s *CourseService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// ImportCSV bulk-loads courses from an uploaded CSV file. Rows with an
// empty name are skipped, matching the forgiving behavior of the rest of
// the bulk loaders.
func (s *CourseService) ImportCSV(ctx context.Context, r io.Reader) (int64, error) {
	var rows []model.CourseCSVRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return 0, fmt.Errorf("parse csv: %w", err)
	}

	courses := make([]model.Course, 0, len(rows))
	for _, row := range rows {
		if row.Name == "" {
			continue
		}
		courses = append(courses, model.Course{Name: row.Name})
	}
	if len(courses) == 0 {
		return 0, ErrEmptyCSV
	}

	inserted, err := s.repo.CreateMany(ctx, courses)
	if err != nil {
		return 0, err
	}
	s.log.Info().Int64("inserted", inserted).Msg("Courses imported from CSV")
	return inserted, nil
}
