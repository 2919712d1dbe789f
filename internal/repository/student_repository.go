package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trainhub/trainhub-backend/internal/model"
)

// StudentRepository handles student data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

const studentColumns = `id, batch_id, name, roll, designation, work_place, phone, email, created_at, updated_at`

func scanStudent(row interface{ Scan(...any) error }) (*model.Student, error) {
	s := &model.Student{}
	err := row.Scan(&s.ID, &s.BatchID, &s.Name, &s.Roll, &s.Designation, &s.WorkPlace, &s.Phone, &s.Email, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return s, nil
}

// List retrieves students, optionally filtered by batch, ordered by roll.
func (r *StudentRepository) List(ctx context.Context, batchID int) ([]model.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students`
	args := []any{}
	if batchID > 0 {
		query += ` WHERE batch_id = $1`
		args = append(args, batchID)
	}
	query += ` ORDER BY roll ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []model.Student{}
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.BatchID, &s.Name, &s.Roll, &s.Designation, &s.WorkPlace, &s.Phone, &s.Email, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int) (*model.Student, error) {
	return scanStudent(r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE id = $1`, id))
}

// Create inserts a new student.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO students (batch_id, name, roll, designation, work_place, phone, email)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		s.BatchID, s.Name, s.Roll, s.Designation, s.WorkPlace, s.Phone, s.Email,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// Update replaces the mutable fields of a student.
func (r *StudentRepository) Update(ctx context.Context, id int, s *model.Student) (*model.Student, error) {
	return scanStudent(r.pool.QueryRow(ctx,
		`UPDATE students SET batch_id = $2, name = $3, roll = $4, designation = $5,
		   work_place = $6, phone = $7, email = $8, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+studentColumns,
		id, s.BatchID, s.Name, s.Roll, s.Designation, s.WorkPlace, s.Phone, s.Email))
}

// Delete removes a student.
func (r *StudentRepository) Delete(ctx context.Context, id int) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateMany bulk-inserts students into one batch using the COPY protocol.
func (r *StudentRepository) CreateMany(ctx context.Context, batchID int, students []model.Student) (int64, error) {
	rows := make([][]any, 0, len(students))
	for _, s := range students {
		rows = append(rows, []any{batchID, s.Name, s.Roll, s.Designation, s.WorkPlace, s.Phone, s.Email})
	}
	return r.pool.CopyFrom(ctx,
		pgx.Identifier{"students"},
		[]string{"batch_id", "name", "roll", "designation", "work_place", "phone", "email"},
		pgx.CopyFromRows(rows))
}

