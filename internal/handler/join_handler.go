package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bellator/internal/auth"
	"bellator/internal/service"
)

// JoinHandler handles membership intake endpoints.
type JoinHandler struct {
	membershipService service.MembershipService
	guard             *auth.Guard
}

// NewJoinHandler creates a new membership intake handler.
func NewJoinHandler(membershipService service.MembershipService, guard *auth.Guard) *JoinHandler {
	return &JoinHandler{membershipService: membershipService, guard: guard}
}

// JoinRequestBody represents a membership intake submission.
type JoinRequestBody struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone"`
	Age            int    `json:"age" validate:"omitempty,min=1,max=120"`
	Interests      string `json:"interests"`
	VolunteerAreas string `json:"volunteer_areas"`
	Message        string `json:"message"`
}

// Submit godoc
// @Summary Submit a membership join request
// @Tags join
// @Accept json
// @Produce json
// @Param request body JoinRequestBody true "Join request"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /join [post]
func (h *JoinHandler) Submit(c echo.Context) error {
	var req JoinRequestBody
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	requestID, err := h.membershipService.Submit(c.Request().Context(), service.JoinRequestInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Age:            req.Age,
		Interests:      req.Interests,
		VolunteerAreas: req.VolunteerAreas,
		Message:        req.Message,
	})
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":    "Thank you for your interest! We will reach out soon.",
		"request_id": requestID,
	})
}

// ListPending godoc
// @Summary List pending join requests (admin only)
// @Tags join
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /join [get]
func (h *JoinHandler) ListPending(c echo.Context) error {
	if h.guard.RequireAdmin(c) == nil {
		return unauthorized()
	}

	requests, err := h.membershipService.ListPending(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"join_requests": requests})
}
