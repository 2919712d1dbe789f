package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trainhub/trainhub-backend/internal/model"
)

// OtpRepository persists password-reset challenges keyed by email.
type OtpRepository struct {
	pool *pgxpool.Pool
}

// NewOtpRepository creates a new OtpRepository.
func NewOtpRepository(pool *pgxpool.Pool) *OtpRepository {
	return &OtpRepository{pool: pool}
}

// Upsert stores a challenge, overwriting any existing one for the same
// email in a single statement so two concurrent issues cannot leave two
// active challenges. Last writer wins on the code and expiry.
func (r *OtpRepository) Upsert(ctx context.Context, ch *model.OtpChallenge) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO otp_challenges (email, code, expires_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (email) DO UPDATE SET code = $2, expires_at = $3`,
		ch.Email, ch.Code, ch.ExpiresAt)
	return err
}

// GetByEmail retrieves the challenge for an email, expired or not.
// Expiry is the caller's concern: the record outlives its TTL until a
// reset consumes it or the retention sweep removes it.
func (r *OtpRepository) GetByEmail(ctx context.Context, email string) (*model.OtpChallenge, error) {
	ch := &model.OtpChallenge{}
	err := r.pool.QueryRow(ctx,
		`SELECT email, code, expires_at FROM otp_challenges WHERE email = $1`, email,
	).Scan(&ch.Email, &ch.Code, &ch.ExpiresAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return ch, nil
}

// Delete removes the challenge for an email. Missing rows are not an error.
func (r *OtpRepository) Delete(ctx context.Context, email string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM otp_challenges WHERE email = $1`, email)
	return err
}

// DeleteExpiredBefore removes challenges whose expiry is older than the
// given epoch-second cutoff. Used by the retention worker only.
func (r *OtpRepository) DeleteExpiredBefore(ctx context.Context, cutoff int64) (int64, error) {
	res, err := r.pool.Exec(ctx, `DELETE FROM otp_challenges WHERE expires_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}
