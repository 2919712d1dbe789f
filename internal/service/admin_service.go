package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/trainhub/trainhub-backend/internal/model"
	"github.com/trainhub/trainhub-backend/internal/repository"
)

// AdminStore is the persistence contract the credential service needs.
type AdminStore interface {
	GetByID(ctx context.Context, id int) (*model.Admin, error)
	GetByEmail(ctx context.Context, email string) (*model.Admin, error)
	Create(ctx context.Context, a *model.Admin) error
	List(ctx context.Context, page, perPage int) ([]model.Admin, int, error)
	Update(ctx context.Context, id int, name, newHash, fileURL, websiteLink string) (*model.Admin, error)
	UpdatePasswordByEmail(ctx context.Context, email, newHash string) (*model.Admin, error)
	Delete(ctx context.Context, id int) error
}

// OtpValidator is the slice of the OTP manager the reset flow needs.
type OtpValidator interface {
	Validate(ctx context.Context, email, code string) error
	Consume(ctx context.Context, email string) error
}

// AdminService owns the admin credential lifecycle: registration, login,
// profile updates and both password-reset paths.
type AdminService struct {
	repo AdminStore
	auth *AuthService
	otp  OtpValidator
	log  zerolog.Logger
}

// NewAdminService creates a new AdminService.
func NewAdminService(repo AdminStore, auth *AuthService, otp OtpValidator, log zerolog.Logger) *AdminService {
	return &AdminService{repo: repo, auth: auth, otp: otp, log: log}
}

// Register creates a new admin account and returns it with a fresh token.
// The existence pre-check is only a fast path; the unique constraint is
// what actually guards against a concurrent duplicate registration.
func (s *AdminService) Register(ctx context.Context, name, email, password string) (*model.Admin, string, error) {
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, "", repository.ErrDuplicateEmail
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", err
	}

	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	admin := &model.Admin{Name: name, Email: email, PasswordHash: hash}
	if err := s.repo.Create(ctx, admin); err != nil {
		return nil, "", err
	}

	token, err := s.auth.GenerateToken(admin.ID, admin.Email)
	if err != nil {
		return nil, "", err
	}

	s.log.Info().Str("email", email).Msg("Admin registered")
	return admin, token, nil
}

// Login validates credentials and returns the account with a token.
// A missing account and a wrong password are distinct errors.
func (s *AdminService) Login(ctx context.Context, email, password string) (*model.Admin, string, error) {
	admin, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	if err := s.auth.CheckPassword(admin.PasswordHash, password); err != nil {
		return nil, "", err
	}

	token, err := s.auth.GenerateToken(admin.ID, admin.Email)
	if err != nil {
		return nil, "", err
	}

	s.log.Info().Str("email", email).Msg("Admin logged in")
	return admin, token, nil
}

// GetByID retrieves an admin account.
func (s *AdminService) GetByID(ctx context.Context, id int) (*model.Admin, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByEmail retrieves an admin account by email.
func (s *AdminService) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	return s.repo.GetByEmail(ctx, email)
}

// List retrieves a page of admin accounts.
func (s *AdminService) List(ctx context.Context, page, perPage int) ([]model.Admin, int, error) {
	return s.repo.List(ctx, page, perPage)
}

// Update applies a partial profile update. A password field is re-hashed
// before persisting; raw passwords never reach the store.
func (s *AdminService) Update(ctx context.Context, id int, req model.AdminUpdateRequest) (*model.Admin, error) {
	newHash := ""
	if req.Password != "" {
		hash, err := s.auth.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		newHash = hash
	}
	return s.repo.Update(ctx, id, req.Name, newHash, req.FileURL, req.WebsiteLink)
}

// ChangePasswordWithOldPassword re-validates the old password before
// persisting the new one.
func (s *AdminService) ChangePasswordWithOldPassword(ctx context.Context, email, oldPassword, newPassword string) (*model.Admin, error) {
	admin, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := s.auth.CheckPassword(admin.PasswordHash, oldPassword); err != nil {
		return nil, err
	}

	hash, err := s.auth.HashPassword(newPassword)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return s.repo.UpdatePasswordByEmail(ctx, email, hash)
}

// ChangePasswordWithOtp delegates code validation to the OTP manager and
// only persists the new password on a match. The challenge is consumed
// afterwards so the same code cannot authorize a second reset.
func (s *AdminService) ChangePasswordWithOtp(ctx context.Context, email, otp, newPassword string) (*model.Admin, error) {
	if err := s.otp.Validate(ctx, email, otp); err != nil {
		return nil, err
	}

	hash, err := s.auth.HashPassword(newPassword)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin, err := s.repo.UpdatePasswordByEmail(ctx, email, hash)
	if err != nil {
		return nil, err
	}

	if err := s.otp.Consume(ctx, email); err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("Failed to consume OTP challenge after reset")
	}

	s.log.Info().Str("email", email).Msg("Admin password reset via OTP")
	return admin, nil
}

// Delete removes an admin account. Terminal.
func (s *AdminService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int("id", id).Msg("Admin deleted")
	return nil
}
