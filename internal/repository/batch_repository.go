package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trainhub/trainhub-backend/internal/model"
)

// BatchRepository handles batch data access.
type BatchRepository struct {
	pool *pgxpool.Pool
}

// NewBatchRepository creates a new BatchRepository.
func NewBatchRepository(pool *pgxpool.Pool) *BatchRepository {
	return &BatchRepository{pool: pool}
}

const batchColumns = `id, course_name, batch_number, grade, start_time, end_time, created_at, updated_at`

// List retrieves all batches, newest first.
func (r *BatchRepository) List(ctx context.Context) ([]model.Batch, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+batchColumns+` FROM batches ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	batches := []model.Batch{}
	for rows.Next() {
		var b model.Batch
		if err := rows.Scan(&b.ID, &b.CourseName, &b.BatchNumber, &b.Grade, &b.StartTime, &b.EndTime, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

// GetByID retrieves a batch by ID.
func (r *BatchRepository) GetByID(ctx context.Context, id int) (*model.Batch, error) {
	b := &model.Batch{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+batchColumns+` FROM batches WHERE id = $1`, id,
	).Scan(&b.ID, &b.CourseName, &b.BatchNumber, &b.Grade, &b.StartTime, &b.EndTime, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return b, nil
}

// Create inserts a new batch.
func (r *BatchRepository) Create(ctx context.Context, b *model.Batch) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO batches (course_name, batch_number, grade, start_time, end_time)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		b.CourseName, b.BatchNumber, b.Grade, b.StartTime, b.EndTime,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

// Update replaces the mutable fields of a batch.
func (r *BatchRepository) Update(ctx context.Context, id int, b *model.Batch) (*model.Batch, error) {
	out := &model.Batch{}
	err := r.pool.QueryRow(ctx,
		`UPDATE batches SET course_name = $2, batch_number = $3, grade = $4,
		   start_time = $5, end_time = $6, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+batchColumns,
		id, b.CourseName, b.BatchNumber, b.Grade, b.StartTime, b.EndTime,
	).Scan(&out.ID, &out.CourseName, &out.BatchNumber, &out.Grade, &out.StartTime, &out.EndTime, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return out, nil
}

// Delete removes a batch.
func (r *BatchRepository) Delete(ctx context.Context, id int) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM batches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateMany bulk-inserts batches using the COPY protocol.
func (r *BatchRepository) CreateMany(ctx context.Context, batches []model.Batch) (int64, error) {
	rows := make([][]any, 0, len(batches))
	for _, b := range batches {
		rows = append(rows, []any{b.CourseName, b.BatchNumber, b.Grade, b.StartTime, b.EndTime})
	}
	return r.pool.CopyFrom(ctx,
		pgx.Identifier{"batches"},
		[]string{"course_name", "batch_number", "grade", "start_time", "end_time"},
		pgx.CopyFromRows(rows))
}

