package handler

import (
	"github.com/labstack/echo/v4"

	"bellator/internal/errors"
)

// domainError converts a domain error into an echo HTTP error with the
// standard response body. Unknown errors become a generic 500.
func domainError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// unauthorized is the single rejection for every auth failure mode. Missing,
// malformed, expired and revoked tokens, and insufficient role all look the
// same to the caller.
func unauthorized() *echo.HTTPError {
	return domainError(errors.ErrUnauthorized)
}
