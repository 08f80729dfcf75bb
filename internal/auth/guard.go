package auth

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"bellator/internal/model"
)

const bearerPrefix = "Bearer "

// SessionChecker resolves a session id to a live (unexpired) session.
type SessionChecker interface {
	LiveSession(ctx context.Context, id string) (*model.Session, error)
}

// Guard resolves a request's bearer token to caller claims. Tokens are only
// honored while the session they are bound to is still live, so deleting a
// session revokes every token pointing at it.
type Guard struct {
	jwt      *JWTService
	sessions SessionChecker
}

// NewGuard creates an access guard over the token issuer and session registry.
func NewGuard(jwt *JWTService, sessions SessionChecker) *Guard {
	return &Guard{jwt: jwt, sessions: sessions}
}

// RequireAuth extracts and verifies the bearer token on the request. It
// returns nil when the header is absent, the token fails verification, or
// the bound session is gone or expired. Callers cannot distinguish these.
func (g *Guard) RequireAuth(c echo.Context) *Claims {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return nil
	}

	claims := g.jwt.Verify(strings.TrimPrefix(header, bearerPrefix))
	if claims == nil || claims.ID == "" {
		return nil
	}

	session, err := g.sessions.LiveSession(c.Request().Context(), claims.ID)
	if err != nil || session == nil || session.UserID != claims.UserID {
		return nil
	}
	return claims
}

// IsAdmin reports whether the claims carry the admin role.
func (g *Guard) IsAdmin(claims *Claims) bool {
	return claims != nil && claims.Role == model.RoleAdmin
}

// RequireAdmin resolves the request to admin claims, or nil if the caller is
// unauthenticated or not an admin.
func (g *Guard) RequireAdmin(c echo.Context) *Claims {
	claims := g.RequireAuth(c)
	if !g.IsAdmin(claims) {
		return nil
	}
	return claims
}
