package service

import (
	"context"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog"
	"github.com/trainhub/trainhub-backend/internal/model"
)

// BatchStore is the persistence contract for batches.
type BatchStore interface {
	List(ctx context.Context) ([]model.Batch, error)
	GetByID(ctx context.Context, id int) (*model.Batch, error)
	Create(ctx context.Context, b *model.Batch) error
	Update(ctx context.Context, id int, b *model.Batch) (*model.Batch, error)
	Delete(ctx context.Context, id int) error
	CreateMany(ctx context.Context, batches []model.Batch) (int64, error)
}

// BatchService handles batch business logic.
type BatchService struct {
	repo BatchStore
	log  zerolog.Logger
}

// NewBatchService creates a new BatchService.
func NewBatchService(repo BatchStore, log zerolog.Logger) *BatchService {
	return &BatchService{repo: repo, log: log}
}

// List returns all batches.
func (s *BatchService) List(ctx context.Context) ([]model.Batch, error) {
	return s.repo.List(ctx)
}

// GetByID returns one batch.
func (s *BatchService) GetByID(ctx context.Context, id int) (*model.Batch, error) {
	return s.repo.GetByID(ctx, id)
}

// Create adds a batch.
func (s *BatchService) Create(ctx context.Context, req model.BatchRequest) (*model.Batch, error) {
	b := &model.Batch{
		CourseName:  req.CourseName,
		BatchNumber: req.BatchNumber,
		Grade:       req.Grade,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Update replaces a batch's fields.
func (s *BatchService) Update(ctx context.Context, id int, req model.BatchRequest) (*model.Batch, error) {
	return s.repo.Update(ctx, id, &model.Batch{
		CourseName:  req.CourseName,
		BatchNumber: req.BatchNumber,
		Grade:       req.Grade,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	})
}

// Delete removes a batch.
func (s *BatchService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// ImportCSV bulk-loads batches from an uploaded CSV file.
func (s *BatchService) ImportCSV(ctx context.Context, r io.Reader) (int64, error) {
	var rows []model.BatchCSVRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return 0, fmt.Errorf("parse csv: %w", err)
	}

	batches := make([]model.Batch, 0, len(rows))
	for _, row := range rows {
		if row.CourseName == "" || row.BatchNumber == "" {
			continue
		}
		batches = append(batches, model.Batch{
			CourseName:  row.CourseName,
			BatchNumber: row.BatchNumber,
			Grade:       row.Grade,
			StartTime:   row.StartTime,
			EndTime:     row.EndTime,
		})
	}
	if len(batches) == 0 {
		return 0, ErrEmptyCSV
	}

	inserted, err := s.repo.CreateMany(ctx, batches)
	if err != nil {
		return 0, err
	}
	s.log.Info().Int64("inserted", inserted).Msg("Batches imported from CSV")
	return inserted, nil
}
