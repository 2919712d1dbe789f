package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trainhub/trainhub-backend/internal/config"
	"github.com/trainhub/trainhub-backend/internal/model"
	"github.com/trainhub/trainhub-backend/internal/repository"
	"github.com/trainhub/trainhub-backend/internal/service"
)

type fakeResolver struct {
	admins map[int]*model.Admin
}

func (f *fakeResolver) GetByID(_ context.Context, id int) (*model.Admin, error) {
	a, ok := f.admins[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return a, nil
}

func newAuthTestRouter(t *testing.T, expiry time.Duration) (*gin.Engine, *service.AuthService, *fakeResolver) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiry: expiry, BcryptCost: 4}
	authService := service.NewAuthService(cfg)
	resolver := &fakeResolver{admins: map[int]*model.Admin{
		7: {ID: 7, Email: "admin@example.com", Name: "Admin"},
	}}

	r := gin.New()
	r.GET("/protected", RequireAdmin(authService, resolver), func(c *gin.Context) {
		p := GetPrincipal(c)
		require.NotNil(t, p)
		c.JSON(http.StatusOK, gin.H{"email": p.Admin.Email, "role": p.Role})
	})
	return r, authService, resolver
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAdmin_MissingToken(t *testing.T) {
	r, _, _ := newAuthTestRouter(t, time.Hour)

	w := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "TOKEN_REQUIRED")
}

func TestRequireAdmin_InvalidToken(t *testing.T) {
	r, _, _ := newAuthTestRouter(t, time.Hour)

	w := doRequest(r, "not-a-real-token")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "TOKEN_INVALID")
}

func TestRequireAdmin_ExpiredToken(t *testing.T) {
	r, authService, _ := newAuthTestRouter(t, -time.Minute)

	token, err := authService.GenerateToken(7, "admin@example.com")
	require.NoError(t, err)

	w := doRequest(r, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
}

func TestRequireAdmin_DeletedAdmin(t *testing.T) {
	r, authService, _ := newAuthTestRouter(t, time.Hour)

	// Valid token for an account that no longer exists.
	token, err := authService.GenerateToken(999, "ghost@example.com")
	require.NoError(t, err)

	w := doRequest(r, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "NO_MATCHING_ADMIN")
}

func TestRequireAdmin_Success(t *testing.T) {
	r, authService, _ := newAuthTestRouter(t, time.Hour)

	token, err := authService.GenerateToken(7, "admin@example.com")
	require.NoError(t, err)

	w := doRequest(r, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin@example.com")
	assert.Contains(t, w.Body.String(), RoleAdmin)
}

func TestRequireAdmin_QueryTokenFallback(t *testing.T) {
	r, authService, _ := newAuthTestRouter(t, time.Hour)

	token, err := authService.GenerateToken(7, "admin@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected?token="+token, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
