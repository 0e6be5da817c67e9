package services

import "errors"

var (
	ErrEmailTaken           = errors.New("User with this email already exists")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidToken         = errors.New("invalid or expired refresh token")
	ErrUserNotFound         = errors.New("User not found")
	ErrCallerProfileMissing = errors.New("user record missing")
	ErrProjectNotFound      = errors.New("Project not found")
	ErrForbidden            = errors.New("Forbidden")
	ErrNoLogs               = errors.New("No logs provided")
	ErrSummaryFailed        = errors.New("Failed to generate summary. Please ensure ANTHROPIC_API_KEY is set.")
	ErrMissingAPIKey        = errors.New("ANTHROPIC_API_KEY is not configured")
)

// ValidationError carries a client-facing message for a rejected request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}
