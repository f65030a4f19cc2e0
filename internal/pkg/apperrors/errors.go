package apperrors

import "errors"

// Record errors
var (
	// ErrRecordNotFound is returned when a primary-key or business-key lookup
	// finds no row.
	ErrRecordNotFound = errors.New("data not found")
	// ErrDuplicateNumber is returned when a create or update would give two
	// rows in the same faculty table the same nomor.
	ErrDuplicateNumber = errors.New("nomor already exists")
	// ErrUpdateFailed is returned when an update reaches the store but changes
	// no row, e.g. the row was deleted between the read and the write.
	ErrUpdateFailed = errors.New("update failed")
	// ErrFacultyUnknown is returned when a request names a faculty slug that
	// is not in the registry.
	ErrFacultyUnknown = errors.New("unknown faculty")
)

// User errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
)

// Authentication and authorization errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrPermissionDenied   = errors.New("permission denied")
)

// Validation errors
var (
	ErrValidationFailed = errors.New("validation failed")
)
