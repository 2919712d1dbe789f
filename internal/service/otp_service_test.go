package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trainhub/trainhub-backend/internal/config"
	"github.com/trainhub/trainhub-backend/internal/model"
	"github.com/trainhub/trainhub-backend/internal/repository"
)

type fakeOtpStore struct {
	challenges map[string]model.OtpChallenge
	upsertErr  error
}

func newFakeOtpStore() *fakeOtpStore {
	return &fakeOtpStore{challenges: make(map[string]model.OtpChallenge)}
}

func (f *fakeOtpStore) Upsert(_ context.Context, ch *model.OtpChallenge) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.challenges[ch.Email] = *ch
	return nil
}

func (f *fakeOtpStore) GetByEmail(_ context.Context, email string) (*model.OtpChallenge, error) {
	ch, ok := f.challenges[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &ch, nil
}

func (f *fakeOtpStore) Delete(_ context.Context, email string) error {
	delete(f.challenges, email)
	return nil
}

type fakeDirectory struct {
	emails map[string]bool
}

func (f *fakeDirectory) GetByEmail(_ context.Context, email string) (*model.Admin, error) {
	if !f.emails[email] {
		return nil, repository.ErrNotFound
	}
	return &model.Admin{ID: 1, Email: email}, nil
}

type fakeNotifier struct {
	sentTo   []string
	lastCode string
	sendErr  error
}

func (f *fakeNotifier) SendPasswordResetCode(email, code string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sentTo = append(f.sentTo, email)
	f.lastCode = code
	return nil
}

func newTestOtpService(t *testing.T) (*OtpService, *fakeOtpStore, *fakeNotifier) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	cfg := &config.Config{
		OTPTTL:          180 * time.Second,
		OTPResendWindow: 60 * time.Second,
	}
	store := newFakeOtpStore()
	dir := &fakeDirectory{emails: map[string]bool{"admin@example.com": true}}
	notifier := &fakeNotifier{}

	svc := NewOtpService(store, dir, rdb, notifier, cfg, zerolog.Nop())
	return svc, store, notifier
}

func TestOtpIssue(t *testing.T) {
	svc, store, notifier := newTestOtpService(t)
	ctx := context.Background()

	require.NoError(t, svc.Issue(ctx, "admin@example.com"))

	ch, ok := store.challenges["admin@example.com"]
	require.True(t, ok)

	code, err := strconv.Atoi(ch.Code)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, code, 1000)
	assert.LessOrEqual(t, code, 9999)

	assert.Equal(t, []string{"admin@example.com"}, notifier.sentTo)
	assert.Equal(t, ch.Code, notifier.lastCode)
}

func TestOtpIssue_UnknownAccount(t *testing.T) {
	svc, store, _ := newTestOtpService(t)

	err := svc.Issue(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Empty(t, store.challenges)
}

func TestOtpIssue_Throttled(t *testing.T) {
	svc, _, notifier := newTestOtpService(t)
	ctx := context.Background()

	require.NoError(t, svc.Issue(ctx, "admin@example.com"))

	err := svc.Issue(ctx, "admin@example.com")
	assert.ErrorIs(t, err, ErrOtpThrottled)
	assert.Len(t, notifier.sentTo, 1)
}

func TestOtpIssue_OverwritesPrevious(t *testing.T) {
	svc, store, _ := newTestOtpService(t)
	ctx := context.Background()

	require.NoError(t, svc.Issue(ctx, "admin@example.com"))
	first := store.challenges["admin@example.com"]

	// Second issue within the resend window is throttled, so force the
	// overwrite path directly through the store contract.
	require.NoError(t, store.Upsert(ctx, &model.OtpChallenge{
		Email:     "admin@example.com",
		Code:      "0000",
		ExpiresAt: time.Now().Add(time.Minute).Unix(),
	}))

	assert.ErrorIs(t, svc.Validate(ctx, "admin@example.com", first.Code), ErrOtpMismatch)
	assert.NoError(t, svc.Validate(ctx, "admin@example.com", "0000"))
}

func TestOtpIssue_FailedDispatchReleasesThrottle(t *testing.T) {
	svc, _, notifier := newTestOtpService(t)
	ctx := context.Background()

	notifier.sendErr = errors.New("smtp down")
	require.Error(t, svc.Issue(ctx, "admin@example.com"))

	// The failed send must not burn the resend window.
	notifier.sendErr = nil
	require.NoError(t, svc.Issue(ctx, "admin@example.com"))
	assert.Equal(t, []string{"admin@example.com"}, notifier.sentTo)
}

func TestOtpIssue_FailedStoreReleasesThrottle(t *testing.T) {
	svc, store, notifier := newTestOtpService(t)
	ctx := context.Background()

	store.upsertErr = errors.New("db down")
	require.Error(t, svc.Issue(ctx, "admin@example.com"))
	assert.Empty(t, notifier.sentTo)

	store.upsertErr = nil
	require.NoError(t, svc.Issue(ctx, "admin@example.com"))
	assert.Len(t, notifier.sentTo, 1)
}

func TestOtpValidate(t *testing.T) {
	svc, store, _ := newTestOtpService(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, &model.OtpChallenge{
		Email:     "admin@example.com",
		Code:      "1234",
		ExpiresAt: time.Now().Add(time.Minute).Unix(),
	}))

	assert.NoError(t, svc.Validate(ctx, "admin@example.com", "1234"))
	assert.ErrorIs(t, svc.Validate(ctx, "admin@example.com", "9999"), ErrOtpMismatch)
	assert.ErrorIs(t, svc.Validate(ctx, "nobody@example.com", "1234"), ErrOtpNotFound)
}

func TestOtpValidate_Expired(t *testing.T) {
	svc, store, _ := newTestOtpService(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, &model.OtpChallenge{
		Email:     "admin@example.com",
		Code:      "1234",
		ExpiresAt: time.Now().Add(-time.Second).Unix(),
	}))

	assert.ErrorIs(t, svc.Validate(ctx, "admin@example.com", "1234"), ErrOtpExpired)

	// A wrong code against an expired challenge reports the mismatch,
	// not the expiry.
	assert.ErrorIs(t, svc.Validate(ctx, "admin@example.com", "9999"), ErrOtpMismatch)
}

func TestOtpValidate_ExpiryBoundary(t *testing.T) {
	svc, store, _ := newTestOtpService(t)
	ctx := context.Background()

	issuedAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }
	require.NoError(t, svc.Issue(ctx, "admin@example.com"))
	code := store.challenges["admin@example.com"].Code

	// TTL is 180 s from issuance: still matched one second before the
	// boundary, expired one second after.
	svc.now = func() time.Time { return issuedAt.Add(179 * time.Second) }
	assert.NoError(t, svc.Validate(ctx, "admin@example.com", code))

	svc.now = func() time.Time { return issuedAt.Add(181 * time.Second) }
	assert.ErrorIs(t, svc.Validate(ctx, "admin@example.com", code), ErrOtpExpired)
}

func TestOtpValidate_DoesNotConsume(t *testing.T) {
	svc, store, _ := newTestOtpService(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, &model.OtpChallenge{
		Email:     "admin@example.com",
		Code:      "1234",
		ExpiresAt: time.Now().Add(time.Minute).Unix(),
	}))

	require.NoError(t, svc.Validate(ctx, "admin@example.com", "1234"))
	assert.NoError(t, svc.Validate(ctx, "admin@example.com", "1234"))

	require.NoError(t, svc.Consume(ctx, "admin@example.com"))
	assert.ErrorIs(t, svc.Validate(ctx, "admin@example.com", "1234"), ErrOtpNotFound)
}

func TestGenerateCodeRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := generateCode()
		require.NoError(t, err)
		require.Len(t, code, 4)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 1000)
		require.LessOrEqual(t, n, 9999)
	}
}
