package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/trainhub/trainhub-backend/internal/repository"
)

// OtpRetentionWorker periodically purges OTP challenges that expired long
// enough ago that nobody can usefully validate against them anymore.
// Challenges are kept for a retention window past expiry so validation can
// still report "expired" rather than "not found".
type OtpRetentionWorker struct {
	otpRepo   *repository.OtpRepository
	retention time.Duration
	interval  time.Duration
	log       zerolog.Logger
}

// NewOtpRetentionWorker creates a new OtpRetentionWorker.
func NewOtpRetentionWorker(otpRepo *repository.OtpRepository, log zerolog.Logger) *OtpRetentionWorker {
	return &OtpRetentionWorker{
		otpRepo:   otpRepo,
		retention: 24 * time.Hour,
		interval:  time.Hour,
		log:       log.With().Str("component", "otp_retention_worker").Logger(),
	}
}

// Start begins the infinite worker loop. Call in a goroutine.
func (w *OtpRetentionWorker) Start(ctx context.Context) {
	w.log.Info().Msg("Worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *OtpRetentionWorker) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-w.retention).Unix()

	deleted, err := w.otpRepo.DeleteExpiredBefore(ctx, cutoff)
	if err != nil {
		w.log.Error().Err(err).Msg("Sweep error")
		return
	}
	if deleted > 0 {
		w.log.Info().Int64("deleted", deleted).Msg("Purged stale OTP challenges")
	}
}
