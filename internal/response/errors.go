package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"
	ErrTokenExpired       ErrCode = "TOKEN_EXPIRED"
	ErrNoMatchingAdmin    ErrCode = "NO_MATCHING_ADMIN"

	// ─── OTP ───────────────────────────────────────────────────────────
	ErrOtpNotFound  ErrCode = "OTP_NOT_FOUND"
	ErrOtpMismatch  ErrCode = "OTP_MISMATCH"
	ErrOtpExpired   ErrCode = "OTP_EXPIRED"
	ErrOtpThrottled ErrCode = "OTP_THROTTLED"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation ErrCode = "VALIDATION_ERROR"
	ErrInvalidID  ErrCode = "INVALID_ID"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound       ErrCode = "NOT_FOUND"
	ErrDuplicateEmail ErrCode = "DUPLICATE_EMAIL"
	ErrEmptyCSV       ErrCode = "EMPTY_CSV"

	// ─── Media ─────────────────────────────────────────────────────────
	ErrFileRequired    ErrCode = "FILE_REQUIRED"
	ErrUnsupportedFile ErrCode = "UNSUPPORTED_FILE_TYPE"
	ErrFileTooLarge    ErrCode = "FILE_TOO_LARGE"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a stable human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrInvalidCredentials:
		return "Email or password is incorrect."
	case ErrTokenRequired:
		return "Authentication token is required."
	case ErrTokenInvalid:
		return "Authentication token is invalid."
	case ErrTokenExpired:
		return "Authentication token has expired."
	case ErrNoMatchingAdmin:
		return "No valid admin exists for the given token."

	case ErrOtpNotFound:
		return "No reset code was requested for this email."
	case ErrOtpMismatch:
		return "The reset code did not match."
	case ErrOtpExpired:
		return "The reset code has expired."
	case ErrOtpThrottled:
		return "A reset code was sent recently. Please wait before requesting another."

	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid ID format."

	case ErrNotFound:
		return "Resource not found."
	case ErrDuplicateEmail:
		return "An account with this email already exists."
	case ErrEmptyCSV:
		return "The uploaded file contains no usable rows."

	case ErrFileRequired:
		return "A file upload is required."
	case ErrUnsupportedFile:
		return "Unsupported file type."
	case ErrFileTooLarge:
		return "File size exceeds the limit."

	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."

	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
