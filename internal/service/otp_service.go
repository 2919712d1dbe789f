package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/trainhub/trainhub-backend/internal/config"
	"github.com/trainhub/trainhub-backend/internal/model"
	"github.com/trainhub/trainhub-backend/internal/notification"
	"github.com/trainhub/trainhub-backend/internal/repository"
)

// OTP validation errors. Mismatch is reported before expiry: a wrong code
// for an expired challenge is still a mismatch.
var (
	ErrOtpNotFound  = errors.New("no otp challenge for this email")
	ErrOtpMismatch  = errors.New("otp did not match")
	ErrOtpExpired   = errors.New("otp expired")
	ErrOtpThrottled = errors.New("otp recently sent, wait before requesting another")
)

// OtpStore persists challenges. Upsert must atomically overwrite any
// existing challenge for the same email.
type OtpStore interface {
	Upsert(ctx context.Context, ch *model.OtpChallenge) error
	GetByEmail(ctx context.Context, email string) (*model.OtpChallenge, error)
	Delete(ctx context.Context, email string) error
}

// AccountDirectory resolves account existence for challenge issuance.
type AccountDirectory interface {
	GetByEmail(ctx context.Context, email string) (*model.Admin, error)
}

// OtpService manages the password-reset challenge lifecycle: issue with
// overwrite semantics, validate against expiry, consume on reset.
type OtpService struct {
	store    OtpStore
	accounts AccountDirectory
	rdb      *redis.Client
	notifier notification.Notifier
	cfg      *config.Config
	log      zerolog.Logger

	now func() time.Time
}

// NewOtpService creates a new OtpService.
func NewOtpService(
	store OtpStore,
	accounts AccountDirectory,
	rdb *redis.Client,
	notifier notification.Notifier,
	cfg *config.Config,
	log zerolog.Logger,
) *OtpService {
	return &OtpService{
		store:    store,
		accounts: accounts,
		rdb:      rdb,
		notifier: notifier,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
	}
}

// Issue creates (or overwrites) the challenge for an email and dispatches
// the code out-of-band. The account must exist; issuance is throttled per
// email so a resend cannot be spammed within the resend window.
func (s *OtpService) Issue(ctx context.Context, email string) error {
	if _, err := s.accounts.GetByEmail(ctx, email); err != nil {
		return err
	}

	throttleKey := otpResendKey(email)
	ok, err := s.rdb.SetNX(ctx, throttleKey, 1, s.cfg.OTPResendWindow).Result()
	if err != nil {
		return fmt.Errorf("check resend throttle: %w", err)
	}
	if !ok {
		return ErrOtpThrottled
	}

	code, err := generateCode()
	if err != nil {
		s.releaseThrottle(ctx, throttleKey)
		return fmt.Errorf("generate otp code: %w", err)
	}

	ch := &model.OtpChallenge{
		Email:     email,
		Code:      code,
		ExpiresAt: s.now().Add(s.cfg.OTPTTL).Unix(),
	}
	if err := s.store.Upsert(ctx, ch); err != nil {
		s.releaseThrottle(ctx, throttleKey)
		return fmt.Errorf("store otp challenge: %w", err)
	}

	if err := s.notifier.SendPasswordResetCode(email, code); err != nil {
		s.releaseThrottle(ctx, throttleKey)
		return err
	}

	s.log.Info().Str("email", email).Msg("Password reset OTP sent")
	return nil
}

// releaseThrottle frees the resend window when issuance fails after the
// throttle key was claimed, so the user can retry immediately.
func (s *OtpService) releaseThrottle(ctx context.Context, key string) {
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Failed to release OTP resend throttle")
	}
}

// Validate compares a submitted code against the stored challenge. It
// does not consume the challenge; Consume is a separate step taken after
// a successful password reset.
func (s *OtpService) Validate(ctx context.Context, email, code string) error {
	ch, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrOtpNotFound
		}
		return err
	}
	if ch.Code != code {
		return ErrOtpMismatch
	}
	if ch.ExpiresAt <= s.now().Unix() {
		return ErrOtpExpired
	}
	return nil
}

// Consume removes the challenge so a matched code cannot be replayed.
func (s *OtpService) Consume(ctx context.Context, email string) error {
	return s.store.Delete(ctx, email)
}

// generateCode draws a uniform 4-digit code in [1000, 9999].
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+1000), nil
}

func otpResendKey(email string) string {
	return fmt.Sprintf("otp:resend:%s", email)
}
