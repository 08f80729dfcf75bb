package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bellator/internal/auth"
	apperrors "bellator/internal/errors"
	"bellator/internal/service"
)

// AuthHandler handles registration, login and session endpoints.
type AuthHandler struct {
	authService service.AuthService
	guard       *auth.Guard
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, guard *auth.Guard) *AuthHandler {
	return &AuthHandler{authService: authService, guard: guard}
}

// RegisterRequest represents a member registration request.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LogoutRequest represents a logout request.
type LogoutRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Message   string      `json:"message"`
	User      interface{} `json:"user"`
	Token     string      `json:"token"`
	SessionID string      `json:"session_id"`
}

// Register godoc
// @Summary Register a new member
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password, req.Phone)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Registration successful! You can now log in.",
		"user_id": userID,
	})
}

// Login godoc
// @Summary Login and open a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, token, sessionID, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Message:   "Login successful",
		User:      user,
		Token:     token,
		SessionID: sessionID,
	})
}

// Logout godoc
// @Summary Close a session, revoking its tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LogoutRequest true "Session id"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	var req LogoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	existed, err := h.authService.Logout(c.Request().Context(), req.SessionID)
	if err != nil {
		return domainError(err)
	}
	if !existed {
		return domainError(apperrors.ErrSessionNotFound)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "logged out successfully",
	})
}

// Me godoc
// @Summary Current caller's token claims
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	claims := h.guard.RequireAuth(c)
	if claims == nil {
		return unauthorized()
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":    claims.UserID,
		"email": claims.Email,
		"name":  claims.Name,
		"role":  claims.Role,
	})
}
