package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned for unknown email and wrong password
	// alike; callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrDuplicateEmail is returned when a registration email is already taken.
	ErrDuplicateEmail = errors.New("user with this email already exists")
	// ErrInvalidEmail is returned when an email fails the address-shape check.
	ErrInvalidEmail = errors.New("invalid email format")
	// ErrPasswordTooShort is returned when a password is under 6 characters.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters long")
	// ErrUnauthorized covers missing, malformed, expired and revoked tokens,
	// and insufficient role. One error, no detail leaked.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidCategory is returned when a prayer category is outside the enum.
	ErrInvalidCategory = errors.New("invalid category")
	// ErrMissingFields is returned when required submission fields are empty.
	ErrMissingFields = errors.New("missing required fields")
	// ErrPrayerNotFound is returned when a referenced prayer does not exist.
	ErrPrayerNotFound = errors.New("prayer not found")
	// ErrEventNotFound is returned when a referenced event does not exist.
	ErrEventNotFound = errors.New("event not found")
	// ErrEventFull is returned when an event reached max participants.
	ErrEventFull = errors.New("event is full")
	// ErrAlreadyRegistered is returned for a repeat event registration.
	ErrAlreadyRegistered = errors.New("already registered for this event")
	// ErrSessionNotFound is returned when a session id matches no live session.
	ErrSessionNotFound = errors.New("session not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors become a
// generic 500 so storage faults never leak internals.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidEmail):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_EMAIL")
	case errors.Is(err, ErrPasswordTooShort):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "PASSWORD_TOO_SHORT")
	case errors.Is(err, ErrInvalidCategory):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_CATEGORY")
	case errors.Is(err, ErrMissingFields):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_FIELDS")
	case errors.Is(err, ErrEventFull):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EVENT_FULL")
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHORIZED")
	case errors.Is(err, ErrPrayerNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PRAYER_NOT_FOUND")
	case errors.Is(err, ErrEventNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "EVENT_NOT_FOUND")
	case errors.Is(err, ErrSessionNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "SESSION_NOT_FOUND")
	case errors.Is(err, ErrDuplicateEmail):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_EMAIL")
	case errors.Is(err, ErrAlreadyRegistered):
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_REGISTERED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
