package service

import (
	"context"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog"
	"github.com/trainhub/trainhub-backend/internal/model"
)

// StudentStore is the persistence contract for students.
type StudentStore interface {
	List(ctx context.Context, batchID int) ([]model.Student, error)
	GetByID(ctx context.Context, id int) (*model.Student, error)
	Create(ctx context.Context, s *model.Student) error
	Update(ctx context.Context, id int, s *model.Student) (*model.Student, error)
	Delete(ctx context.Context, id int) error
	CreateMany(ctx context.Context, batchID int, students []model.Student) (int64, error)
}

// StudentService handles student business logic.
type StudentService struct {
	repo StudentStore
	log  zerolog.Logger
}

// NewStudentService creates a new StudentService.
func NewStudentService(repo StudentStore, log zerolog.Logger) *StudentService {
	return &StudentService{repo: repo, log: log}
}

// List returns students, optionally scoped to one batch.
func (s *StudentService) List(ctx context.Context, batchID int) ([]model.Student, error) {
	return s.repo.List(ctx, batchID)
}

// GetByID returns one student.
func (s *StudentService) GetByID(ctx context.Context, id int) (*model.Student, error) {
	return s.repo.GetByID(ctx, id)
}

// Create adds a student.
func (s *StudentService) Create(ctx context.Context, req model.StudentRequest) (*model.Student, error) {
	st := &model.Student{
		BatchID:     req.BatchID,
		Name:        req.Name,
		Roll:        req.Roll,
		Designation: req.Designation,
		WorkPlace:   req.WorkPlace,
		Phone:       req.Phone,
		Email:       req.Email,
	}
	if err := s.repo.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

// Update replaces a student's fields.
func (s *StudentService) Update(ctx context.Context, id int, req model.StudentRequest) (*model.Student, error) {
	return s.repo.Update(ctx, id, &model.Student{
		BatchID:     req.BatchID,
		Name:        req.Name,
		Roll:        req.Roll,
		Designation: req.Designation,
		WorkPlace:   req.WorkPlace,
		Phone:       req.Phone,
		Email:       req.Email,
	})
}

// Delete removes a student.
func (s *StudentService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// ImportCSV bulk-loads students into a batch from an uploaded CSV file.
func (s *StudentService) ImportCSV(ctx context.Context, batchID int, r io.Reader) (int64, error) {
	var rows []model.StudentCSVRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return 0, fmt.Errorf("parse csv: %w", err)
	}

	students := make([]model.Student, 0, len(rows))
	for _, row := range rows {
		if row.Name == "" {
			continue
		}
		students = append(students, model.Student{
			Name:        row.Name,
			Roll:        row.Roll,
			Designation: row.Designation,
			WorkPlace:   row.WorkPlace,
			Phone:       row.Phone,
			Email:       row.Email,
		})
	}
	if len(students) == 0 {
		return 0, ErrEmptyCSV
	}

	inserted, err := s.repo.CreateMany(ctx, batchID, students)
	if err != nil {
		return 0, err
	}
	s.log.Info().Int("batch_id", batchID).Int64("inserted", inserted).Msg("Students imported from CSV")
	return inserted, nil
}
