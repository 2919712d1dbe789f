package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trainhub/trainhub-backend/internal/model"
)

// TeacherRepository handles teacher data access.
type TeacherRepository struct {
	pool *pgxpool.Pool
}

// NewTeacherRepository creates a new TeacherRepository.
func NewTeacherRepository(pool *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{pool: pool}
}

const teacherColumns = `id, name, designation, work_place, phone, email, created_at, updated_at`

// List retrieves all teachers, newest first.
func (r *TeacherRepository) List(ctx context.Context) ([]model.Teacher, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+teacherColumns+` FROM teachers ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teachers := []model.Teacher{}
	for rows.Next() {
		var t model.Teacher
		if err := rows.Scan(&t.ID, &t.Name, &t.Designation, &t.WorkPlace, &t.Phone, &t.Email, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

// GetByID retrieves a teacher by ID.
func (r *TeacherRepository) GetByID(ctx context.Context, id int) (*model.Teacher, error) {
	t := &model.Teacher{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+teacherColumns+` FROM teachers WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.Designation, &t.WorkPlace, &t.Phone, &t.Email, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return t, nil
}

// Create inserts a new teacher.
func (r *TeacherRepository) Create(ctx context.Context, t *model.Teacher) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO teachers (name, designation, work_place, phone, email)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		t.Name, t.Designation, t.WorkPlace, t.Phone, t.Email,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

// Update replaces the mutable fields of a teacher.
func (r *TeacherRepository) Update(ctx context.Context, id int, t *model.Teacher) (*model.Teacher, error) {
	out := &model.Teacher{}
	err := r.pool.QueryRow(ctx,
		`UPDATE teachers SET name = $2, designation = $3, work_place = $4,
		   phone = $5, email = $6, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+teacherColumns,
		id, t.Name, t.Designation, t.WorkPlace, t.Phone, t.Email,
	).Scan(&out.ID, &out.Name, &out.Designation, &out.WorkPlace, &out.Phone, &out.Email, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return out, nil
}

// Delete removes a teacher.
func (r *TeacherRepository) Delete(ctx context.Context, id int) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateMany bulk-inserts teachers using the COPY protocol.
func (r *TeacherRepository) CreateMany(ctx context.Context, teachers []model.Teacher) (int64, error) {
	rows := make([][]any, 0, len(teachers))
	for _, t := range teachers {
		rows = append(rows, []any{t.Name, t.Designation, t.WorkPlace, t.Phone, t.Email})
	}
	return r.pool.CopyFrom(ctx,
		pgx.Identifier{"teachers"},
		[]string{"name", "designation", "work_place", "phone", "email"},
		pgx.CopyFromRows(rows))
}

