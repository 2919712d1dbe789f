package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DashboardRepository handles admin dashboard data access.
type DashboardRepository struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository creates a new DashboardRepository.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

// GetSummaryCounts retrieves the entity counts shown on the dashboard.
func (r *DashboardRepository) GetSummaryCounts(ctx context.Context) (courses, batches, students, teachers int, err error) {
	err = r.pool.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM courses),
			(SELECT COUNT(*) FROM batches),
			(SELECT COUNT(*) FROM students),
			(SELECT COUNT(*) FROM teachers)`,
	).Scan(&courses, &batches, &students, &teachers)
	return
}
