package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trainhub/trainhub-backend/internal/model"
	"github.com/trainhub/trainhub-backend/internal/repository"
)

type fakeAdminStore struct {
	byEmail map[string]*model.Admin
	nextID  int
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{byEmail: make(map[string]*model.Admin), nextID: 1}
}

func (f *fakeAdminStore) GetByID(_ context.Context, id int) (*model.Admin, error) {
	for _, a := range f.byEmail {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAdminStore) GetByEmail(_ context.Context, email string) (*model.Admin, error) {
	a, ok := f.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return a, nil
}

func (f *fakeAdminStore) Create(_ context.Context, a *model.Admin) error {
	if _, ok := f.byEmail[a.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	a.ID = f.nextID
	f.nextID++
	f.byEmail[a.Email] = a
	return nil
}

func (f *fakeAdminStore) List(_ context.Context, _, _ int) ([]model.Admin, int, error) {
	out := make([]model.Admin, 0, len(f.byEmail))
	for _, a := range f.byEmail {
		out = append(out, *a)
	}
	return out, len(out), nil
}

func (f *fakeAdminStore) Update(_ context.Context, id int, name, newHash, fileURL, websiteLink string) (*model.Admin, error) {
	a, err := f.GetByID(context.Background(), id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		a.Name = name
	}
	if newHash != "" {
		a.PasswordHash = newHash
	}
	if fileURL != "" {
		a.FileURL = fileURL
	}
	if websiteLink != "" {
		a.WebsiteLink = websiteLink
	}
	return a, nil
}

func (f *fakeAdminStore) UpdatePasswordByEmail(_ context.Context, email, newHash string) (*model.Admin, error) {
	a, ok := f.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	a.PasswordHash = newHash
	return a, nil
}

func (f *fakeAdminStore) Delete(_ context.Context, id int) error {
	for email, a := range f.byEmail {
		if a.ID == id {
			delete(f.byEmail, email)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeOtpValidator struct {
	validateErr error
	consumed    []string
}

func (f *fakeOtpValidator) Validate(_ context.Context, _, _ string) error { return f.validateErr }

func (f *fakeOtpValidator) Consume(_ context.Context, email string) error {
	f.consumed = append(f.consumed, email)
	return nil
}

func newTestAdminService(otp *fakeOtpValidator) (*AdminService, *fakeAdminStore) {
	store := newFakeAdminStore()
	auth := NewAuthService(testAuthConfig())
	return NewAdminService(store, auth, otp, zerolog.Nop()), store
}

func TestAdminRegister(t *testing.T) {
	svc, store := newTestAdminService(&fakeOtpValidator{})
	ctx := context.Background()

	admin, token, err := svc.Register(ctx, "Rahim", "rahim@example.com", "secret123")
	require.NoError(t, err)
	assert.NotZero(t, admin.ID)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "secret123", admin.PasswordHash)

	stored := store.byEmail["rahim@example.com"]
	require.NotNil(t, stored)
	assert.Equal(t, admin.ID, stored.ID)
}

func TestAdminRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newTestAdminService(&fakeOtpValidator{})
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Rahim", "rahim@example.com", "secret123")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "Other", "rahim@example.com", "secret456")
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestAdminLogin(t *testing.T) {
	svc, _ := newTestAdminService(&fakeOtpValidator{})
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Rahim", "rahim@example.com", "secret123")
	require.NoError(t, err)

	admin, token, err := svc.Login(ctx, "rahim@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "rahim@example.com", admin.Email)
	assert.NotEmpty(t, token)

	_, _, err = svc.Login(ctx, "rahim@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestChangePasswordWithOldPassword(t *testing.T) {
	svc, _ := newTestAdminService(&fakeOtpValidator{})
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Rahim", "rahim@example.com", "oldpass1")
	require.NoError(t, err)

	_, err = svc.ChangePasswordWithOldPassword(ctx, "rahim@example.com", "wrong", "newpass1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.ChangePasswordWithOldPassword(ctx, "rahim@example.com", "oldpass1", "newpass1")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "rahim@example.com", "newpass1")
	assert.NoError(t, err)
	_, _, err = svc.Login(ctx, "rahim@example.com", "oldpass1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestChangePasswordWithOtp(t *testing.T) {
	otp := &fakeOtpValidator{}
	svc, _ := newTestAdminService(otp)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Rahim", "rahim@example.com", "oldpass1")
	require.NoError(t, err)

	_, err = svc.ChangePasswordWithOtp(ctx, "rahim@example.com", "1234", "newpass1")
	require.NoError(t, err)
	assert.Equal(t, []string{"rahim@example.com"}, otp.consumed)

	_, _, err = svc.Login(ctx, "rahim@example.com", "newpass1")
	assert.NoError(t, err)
}

func TestChangePasswordWithOtp_ValidationFails(t *testing.T) {
	otp := &fakeOtpValidator{validateErr: ErrOtpMismatch}
	svc, _ := newTestAdminService(otp)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Rahim", "rahim@example.com", "oldpass1")
	require.NoError(t, err)

	_, err = svc.ChangePasswordWithOtp(ctx, "rahim@example.com", "0000", "newpass1")
	assert.ErrorIs(t, err, ErrOtpMismatch)
	assert.Empty(t, otp.consumed)

	// Old password still works after the failed reset.
	_, _, err = svc.Login(ctx, "rahim@example.com", "oldpass1")
	assert.NoError(t, err)
}

func TestAdminUpdate_RehashesPassword(t *testing.T) {
	svc, store := newTestAdminService(&fakeOtpValidator{})
	ctx := context.Background()

	admin, _, err := svc.Register(ctx, "Rahim", "rahim@example.com", "oldpass1")
	require.NoError(t, err)
	oldHash := store.byEmail["rahim@example.com"].PasswordHash

	_, err = svc.Update(ctx, admin.ID, model.AdminUpdateRequest{Name: "Rahim K", Password: "newpass1"})
	require.NoError(t, err)

	updated := store.byEmail["rahim@example.com"]
	assert.Equal(t, "Rahim K", updated.Name)
	assert.NotEqual(t, oldHash, updated.PasswordHash)
	assert.NotEqual(t, "newpass1", updated.PasswordHash)
}

func TestAdminDelete(t *testing.T) {
	svc, _ := newTestAdminService(&fakeOtpValidator{})
	ctx := context.Background()

	admin, _, err := svc.Register(ctx, "Rahim", "rahim@example.com", "secret123")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, admin.ID))
	assert.ErrorIs(t, svc.Delete(ctx, admin.ID), repository.ErrNotFound)

	_, err = svc.GetByID(ctx, admin.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
