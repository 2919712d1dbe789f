package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trainhub/trainhub-backend/internal/model"
)

// TopicRepository handles topic data access.
type TopicRepository struct {
	pool *pgxpool.Pool
}

// NewTopicRepository creates a new TopicRepository.
func NewTopicRepository(pool *pgxpool.Pool) *TopicRepository {
	return &TopicRepository{pool: pool}
}

// List retrieves topics, optionally filtered by course.
func (r *TopicRepository) List(ctx context.Context, courseID int) ([]model.Topic, error) {
	query := `SELECT id, course_id, name, created_at, updated_at FROM topics`
	args := []any{}
	if courseID > 0 {
		query += ` WHERE course_id = $1`
		args = append(args, courseID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	topics := []model.Topic{}
	for rows.Next() {
		var t model.Topic
		if err := rows.Scan(&t.ID, &t.CourseID, &t.Name, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

// GetByID retrieves a topic by ID.
func (r *TopicRepository) GetByID(ctx context.Context, id int) (*model.Topic, error) {
	t := &model.Topic{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, course_id, name, created_at, updated_at FROM topics WHERE id = $1`, id,
	).Scan(&t.ID, &t.CourseID, &t.Name, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return t, nil
}

// Create inserts a new topic.
func (r *TopicRepository) Create(ctx context.Context, t *model.Topic) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO topics (course_id, name) VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		t.CourseID, t.Name,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

// Update replaces the mutable fields of a topic.
func (r *TopicRepository) Update(ctx context.Context, id int, courseID int, name string) (*model.Topic, error) {
	t := &model.Topic{}
	err := r.pool.QueryRow(ctx,
		`UPDATE topics SET course_id = $2, name = $3, updated_at = NOW() WHERE id = $1
		 RETURNING id, course_id, name, created_at, updated_at`, id, courseID, name,
	).Scan(&t.ID, &t.CourseID, &t.Name, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return t, nil
}

// Delete removes a topic.
func (r *TopicRepository) Delete(ctx context.Context, id int) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM topics WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
