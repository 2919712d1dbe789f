package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trainhub/trainhub-backend/internal/middleware"
	"github.com/trainhub/trainhub-backend/internal/model"
	"github.com/trainhub/trainhub-backend/internal/response"
	"github.com/trainhub/trainhub-backend/internal/service"
	"github.com/trainhub/trainhub-backend/internal/validator"
)

// AuthHandler handles registration, login and the password-reset flows.
type AuthHandler struct {
	adminService *service.AdminService
	otpService   *service.OtpService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(adminService *service.AdminService, otpService *service.OtpService) *AuthHandler {
	return &AuthHandler{adminService: adminService, otpService: otpService}
}

// Register godoc
// POST /api/v1/auth/register
// Creates a new admin account and returns it with a token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.AdminRegisterRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	admin, token, err := h.adminService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, model.AdminAuthResponse{Token: token, Admin: *admin})
}

// Login godoc
// POST /api/v1/auth/login
// Validates email + password and returns the account with a token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.AdminLoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	admin, token, err := h.adminService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.AdminAuthResponse{Token: token, Admin: *admin})
}

// Me godoc
// GET /api/v1/auth/me
// Returns the authenticated admin's profile.
func (h *AuthHandler) Me(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"admin": principal.Admin,
		"role":  principal.Role,
	})
}

// SendOTP godoc
// POST /api/v1/auth/send-otp
// Issues (or overwrites) a password-reset challenge and emails the code.
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req model.SendOTPRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.otpService.Issue(c.Request.Context(), req.Email); err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Password reset OTP sent successfully"})
}

// ValidateOTP godoc
// POST /api/v1/auth/validate-otp
// Pre-checks a code without consuming the challenge.
func (h *AuthHandler) ValidateOTP(c *gin.Context) {
	var req model.ValidateOTPRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.otpService.Validate(c.Request.Context(), req.Email, req.OTP); err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "OTP matched"})
}

// ResetPasswordWithOTP godoc
// PATCH /api/v1/auth/reset
// Sets a new password after validating the OTP; consumes the challenge.
func (h *AuthHandler) ResetPasswordWithOTP(c *gin.Context) {
	var req model.PasswordResetByOTPRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if _, err := h.adminService.ChangePasswordWithOtp(c.Request.Context(), req.Email, req.OTP, req.NewPassword); err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Password updated successfully"})
}

// ResetPasswordWithOld godoc
// PATCH /api/v1/auth/reset-password
// Sets a new password after re-validating the old one.
func (h *AuthHandler) ResetPasswordWithOld(c *gin.Context) {
	var req model.PasswordResetByOldRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	admin, err := h.adminService.ChangePasswordWithOldPassword(c.Request.Context(), req.Email, req.OldPassword, req.NewPassword)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"admin": admin})
}
