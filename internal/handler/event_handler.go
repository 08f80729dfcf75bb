package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bellator/internal/auth"
	"bellator/internal/service"
)

// EventHandler handles event listing and registration endpoints.
type EventHandler struct {
	eventService service.EventService
	guard        *auth.Guard
}

// NewEventHandler creates a new event handler.
func NewEventHandler(eventService service.EventService, guard *auth.Guard) *EventHandler {
	return &EventHandler{eventService: eventService, guard: guard}
}

// CreateEventRequest represents an admin event creation.
type CreateEventRequest struct {
	Title                string `json:"title" validate:"required"`
	Description          string `json:"description" validate:"required"`
	EventType            string `json:"event_type" validate:"required"`
	Date                 string `json:"date" validate:"required,datetime=2006-01-02"`
	Time                 string `json:"time" validate:"required"`
	Location             string `json:"location" validate:"required"`
	ContactInfo          string `json:"contact_info"`
	RegistrationRequired bool   `json:"registration_required"`
	MaxParticipants      int    `json:"max_participants" validate:"omitempty,min=1"`
}

// RegisterEventRequest represents an attendee signup.
type RegisterEventRequest struct {
	EventID uint   `json:"event_id" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// List godoc
// @Summary List upcoming events
// @Tags events
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /events [get]
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.eventService.ListUpcoming(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"events": events})
}

// Create godoc
// @Summary Create an event (admin only)
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateEventRequest true "Event data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /events [post]
func (h *EventHandler) Create(c echo.Context) error {
	claims := h.guard.RequireAdmin(c)
	if claims == nil {
		return unauthorized()
	}

	var req CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	eventID, err := h.eventService.Create(c.Request().Context(), service.CreateEventInput{
		Title:                req.Title,
		Description:          req.Description,
		EventType:            req.EventType,
		Date:                 req.Date,
		Time:                 req.Time,
		Location:             req.Location,
		ContactInfo:          req.ContactInfo,
		RegistrationRequired: req.RegistrationRequired,
		MaxParticipants:      req.MaxParticipants,
		CreatedBy:            claims.Name,
	})
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":  "event created",
		"event_id": eventID,
	})
}

// Register godoc
// @Summary Register for an event
// @Tags events
// @Accept json
// @Produce json
// @Param request body RegisterEventRequest true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /events/register [post]
func (h *EventHandler) Register(c echo.Context) error {
	var req RegisterEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	registrationID, err := h.eventService.Register(c.Request().Context(), service.RegisterEventInput{
		EventID: req.EventID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":         "Registration successful! You will receive a confirmation email shortly.",
		"registration_id": registrationID,
	})
}
