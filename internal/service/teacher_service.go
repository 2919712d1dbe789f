package service

import (
	"context"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog"
	"github.com/trainhub/trainhub-backend/internal/model"
)

// TeacherStore is the persistence contract for teachers.
type TeacherStore interface {
	List(ctx context.Context) ([]model.Teacher, error)
	GetByID(ctx context.Context, id int) (*model.Teacher, error)
	Create(ctx context.Context, t *model.Teacher) error
	Update(ctx context.Context, id int, t *model.Teacher) (*model.Teacher, error)
	Delete(ctx context.Context, id int) error
	CreateMany(ctx context.Context, teachers []model.Teacher) (int64, error)
}

// TeacherService handles teacher business logic.
type TeacherService struct {
	repo TeacherStore
	log  zerolog.Logger
}

// NewTeacherService creates a new TeacherService.
func NewTeacherService(repo TeacherStore, log zerolog.Logger) *TeacherService {
	return &TeacherService{repo: repo, log: log}
}

// List returns all teachers.
func (s *TeacherService) List(ctx context.Context) ([]model.Teacher, error) {
	return s.repo.List(ctx)
}

// GetByID returns one teacher.
func (s *TeacherService) GetByID(ctx context.Context, id int) (*model.Teacher, error) {
	return s.repo.GetByID(ctx, id)
}

// Create adds a teacher.
func (s *TeacherService) Create(ctx context.Context, req model.TeacherRequest) (*model.Teacher, error) {
	t := &model.Teacher{
		Name:        req.Name,
		Designation: req.Designation,
		WorkPlace:   req.WorkPlace,
		Phone:       req.Phone,
		Email:       req.Email,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Update replaces a teacher's fields.
func (s *TeacherService) Update(ctx context.Context, id int, req model.TeacherRequest) (*model.Teacher, error) {
	return s.repo.Update(ctx, id, &model.Teacher{
		Name:        req.Name,
		Designation: req.Designation,
		WorkPlace:   req.WorkPlace,
		Phone:       req.Phone,
		Email:       req.Email,
	})
}

// Delete removes a teacher.
func (s *TeacherService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// ImportCSV bulk-loads teachers from an uploaded CSV file.
func (s *TeacherService) ImportCSV(ctx context.Context, r io.Reader) (int64, error) {
	var rows []model.TeacherCSVRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return 0, fmt.Errorf("parse csv: %w", err)
	}

	teachers := make([]model.Teacher, 0, len(rows))
	for _, row := range rows {
		if row.Name == "" {
			continue
		}
		teachers = append(teachers, model.Teacher{
			Name:        row.Name,
			Designation: row.Designation,
			WorkPlace:   row.WorkPlace,
			Phone:       row.Phone,
			Email:       row.Email,
		})
	}
	if len(teachers) == 0 {
		return 0, ErrEmptyCSV
	}

	inserted, err := s.repo.CreateMany(ctx, teachers)
	if err != nil {
		return 0, err
	}
	s.log.Info().Int64("inserted", inserted).Msg("Teachers imported from CSV")
	return inserted, nil
}
