package model

// OtpChallenge is a short-lived password-reset challenge. At most one
// challenge exists per email; reissuing overwrites the code and expiry.
type OtpChallenge struct {
	Email     string `json:"email"`
	Code      string `json:"-"`
	ExpiresAt int64  `json:"expires_at"` // epoch seconds
}
