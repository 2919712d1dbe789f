package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trainhub/trainhub-backend/internal/config"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  time.Hour,
		BcryptCost: 4, // min cost keeps the test fast
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	svc := NewAuthService(testAuthConfig())

	hash, err := svc.HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.NoError(t, svc.CheckPassword(hash, "hunter22"))
	assert.ErrorIs(t, svc.CheckPassword(hash, "wrong-password"), ErrInvalidCredentials)
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewAuthService(testAuthConfig())

	token, err := svc.GenerateToken(42, "admin@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.AdminID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "42", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := testAuthConfig()
	cfg.JWTExpiry = -time.Minute // already expired at issuance
	svc := NewAuthService(cfg)

	token, err := svc.GenerateToken(1, "admin@example.com")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := NewAuthService(testAuthConfig())

	token, err := svc.GenerateToken(1, "admin@example.com")
	require.NoError(t, err)

	otherCfg := testAuthConfig()
	otherCfg.JWTSecret = "different-secret"
	other := NewAuthService(otherCfg)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := NewAuthService(testAuthConfig())

	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
