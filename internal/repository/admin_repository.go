package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trainhub/trainhub-backend/internal/model"
)

// AdminRepository handles admin account data access.
type AdminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository creates a new AdminRepository.
func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

const adminColumns = `id, email, name, password_hash, file_url, website_link, created_at, updated_at`

func scanAdmin(row interface{ Scan(...any) error }) (*model.Admin, error) {
	a := &model.Admin{}
	err := row.Scan(&a.ID, &a.Email, &a.Name, &a.PasswordHash, &a.FileURL, &a.WebsiteLink, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return a, nil
}

// GetByID retrieves an admin by ID.
func (r *AdminRepository) GetByID(ctx context.Context, id int) (*model.Admin, error) {
	return scanAdmin(r.pool.QueryRow(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE id = $1`, id))
}

// GetByEmail retrieves an admin by their unique email.
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	return scanAdmin(r.pool.QueryRow(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE email = $1`, email))
}

// Create inserts a new admin. A concurrent insert with the same email
// surfaces as ErrDuplicateEmail from the unique constraint.
func (r *AdminRepository) Create(ctx context.Context, a *model.Admin) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO admins (email, name, password_hash, file_url, website_link)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		a.Email, a.Name, a.PasswordHash, a.FileURL, a.WebsiteLink,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	return translateErr(err)
}

// List retrieves a paginated list of admins, newest first.
func (r *AdminRepository) List(ctx context.Context, page, perPage int) ([]model.Admin, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	offset := (page - 1) * perPage

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM admins`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+adminColumns+` FROM admins ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		perPage, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	admins := []model.Admin{}
	for rows.Next() {
		var a model.Admin
		if err := rows.Scan(&a.ID, &a.Email, &a.Name, &a.PasswordHash, &a.FileURL, &a.WebsiteLink, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, err
		}
		admins = append(admins, a)
	}
	return admins, total, rows.Err()
}

// Update applies a partial update. Empty fields are left untouched; the
// password hash is replaced only when newHash is non-empty.
func (r *AdminRepository) Update(ctx context.Context, id int, name, newHash, fileURL, websiteLink string) (*model.Admin, error) {
	return scanAdmin(r.pool.QueryRow(ctx,
		`UPDATE admins SET
		   name          = COALESCE(NULLIF($2, ''), name),
		   password_hash = COALESCE(NULLIF($3, ''), password_hash),
		   file_url      = COALESCE(NULLIF($4, ''), file_url),
		   website_link  = COALESCE(NULLIF($5, ''), website_link),
		   updated_at    = NOW()
		 WHERE id = $1
		 RETURNING `+adminColumns, id, name, newHash, fileURL, websiteLink))
}

// UpdatePasswordByEmail replaces the password hash for the given email.
func (r *AdminRepository) UpdatePasswordByEmail(ctx context.Context, email, newHash string) (*model.Admin, error) {
	return scanAdmin(r.pool.QueryRow(ctx,
		`UPDATE admins SET password_hash = $2, updated_at = NOW()
		 WHERE email = $1
		 RETURNING `+adminColumns, email, newHash))
}

// Delete removes an admin. Deletion is terminal.
func (r *AdminRepository) Delete(ctx context.Context, id int) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM admins WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
