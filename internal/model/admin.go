package model

import "time"

// Admin represents an administrator account.
type Admin struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	FileURL      string    `json:"file_url,omitempty"`
	WebsiteLink  string    `json:"website_link,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AdminRegisterRequest is the payload for admin registration.
type AdminRegisterRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// AdminLoginRequest is the payload for admin authentication.
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// AdminAuthResponse is returned after successful login or registration.
type AdminAuthResponse struct {
	Token string `json:"token"`
	Admin Admin  `json:"admin"`
}

// AdminUpdateRequest is a partial profile update. A non-empty Password is
// re-hashed before persisting, never stored raw.
type AdminUpdateRequest struct {
	Name        string `json:"name" binding:"omitempty,max=255"`
	Password    string `json:"password" binding:"omitempty,min=6,max=128"`
	FileURL     string `json:"file_url" binding:"omitempty,max=1024"`
	WebsiteLink string `json:"website_link" binding:"omitempty,max=1024"`
}

// PasswordResetByOldRequest changes a password after re-validating the old one.
type PasswordResetByOldRequest struct {
	Email       string `json:"email" binding:"required,email,max=255"`
	OldPassword string `json:"old_password" binding:"required,min=6,max=128"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=128"`
}

// PasswordResetByOTPRequest changes a password after validating an OTP.
type PasswordResetByOTPRequest struct {
	Email       string `json:"email" binding:"required,email,max=255"`
	OTP         string `json:"otp" binding:"required,len=4,numeric"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=128"`
}

// SendOTPRequest requests a password-reset code for the given email.
type SendOTPRequest struct {
	Email string `json:"email" binding:"required,email,max=255"`
}

// ValidateOTPRequest pre-checks a code without consuming it.
type ValidateOTPRequest struct {
	Email string `json:"email" binding:"required,email,max=255"`
	OTP   string `json:"otp" binding:"required,len=4,numeric"`
}
