package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"bellator/internal/auth"
	"bellator/internal/service"
)

// PrayerHandler handles prayer wall and moderation endpoints.
type PrayerHandler struct {
	prayerService service.PrayerService
	guard         *auth.Guard
}

// NewPrayerHandler creates a new prayer handler.
func NewPrayerHandler(prayerService service.PrayerService, guard *auth.Guard) *PrayerHandler {
	return &PrayerHandler{prayerService: prayerService, guard: guard}
}

// SubmitPrayerRequest represents a prayer submission.
type SubmitPrayerRequest struct {
	Title       string `json:"title" validate:"required"`
	Content     string `json:"content" validate:"required"`
	Category    string `json:"category" validate:"required,oneof=health family guidance thanksgiving general"`
	SubmittedBy string `json:"submitted_by" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	Anonymous   bool   `json:"is_anonymous"`
}

// ModeratePrayerRequest represents an admin moderation action.
type ModeratePrayerRequest struct {
	PrayerID uint   `json:"prayer_id" validate:"required"`
	Action   string `json:"action" validate:"required,oneof=approve"`
}

// SupportPrayerRequest represents a support ("I prayed") action.
type SupportPrayerRequest struct {
	PrayerID uint `json:"prayer_id" validate:"required"`
}

// List godoc
// @Summary List prayers: the public approved wall, or the pending moderation queue for admins
// @Tags prayers
// @Produce json
// @Param limit query int false "Max approved prayers returned"
// @Param pending query bool false "Admin only: list the pending queue"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /prayers [get]
func (h *PrayerHandler) List(c echo.Context) error {
	if c.QueryParam("pending") == "true" {
		if h.guard.RequireAdmin(c) == nil {
			return unauthorized()
		}
		prayers, err := h.prayerService.ListPending(c.Request().Context())
		if err != nil {
			return domainError(err)
		}
		return c.JSON(http.StatusOK, echo.Map{"prayers": prayers})
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	prayers, err := h.prayerService.ListApproved(c.Request().Context(), limit)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"prayers": prayers})
}

// Submit godoc
// @Summary Submit a prayer request for moderation
// @Tags prayers
// @Accept json
// @Produce json
// @Param request body SubmitPrayerRequest true "Prayer request"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /prayers [post]
func (h *PrayerHandler) Submit(c echo.Context) error {
	var req SubmitPrayerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	prayerID, err := h.prayerService.Submit(c.Request().Context(), service.SubmitPrayerInput{
		Title:       req.Title,
		Content:     req.Content,
		Category:    req.Category,
		SubmittedBy: req.SubmittedBy,
		Email:       req.Email,
		Anonymous:   req.Anonymous,
	})
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":   "Prayer request submitted successfully. It will be reviewed before appearing publicly.",
		"prayer_id": prayerID,
	})
}

// Moderate godoc
// @Summary Approve a pending prayer (admin only)
// @Tags prayers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ModeratePrayerRequest true "Moderation action"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /prayers [put]
func (h *PrayerHandler) Moderate(c echo.Context) error {
	if h.guard.RequireAdmin(c) == nil {
		return unauthorized()
	}

	var req ModeratePrayerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.prayerService.Approve(c.Request().Context(), req.PrayerID); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "prayer approved",
	})
}

// Support godoc
// @Summary Record that the caller prayed for a request
// @Tags prayers
// @Accept json
// @Produce json
// @Param request body SupportPrayerRequest true "Prayer id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /prayers/support [post]
func (h *PrayerHandler) Support(c echo.Context) error {
	var req SupportPrayerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Supporter identity is the client address; the engine only cares about
	// its per-prayer uniqueness, not its shape.
	result, err := h.prayerService.AddSupport(c.Request().Context(), req.PrayerID, c.RealIP())
	if err != nil {
		return domainError(err)
	}

	message := "Thank you for praying! Your support has been recorded."
	if result.AlreadySupported {
		message = "You have already prayed for this request"
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":           message,
		"prayer_id":         req.PrayerID,
		"already_supported": result.AlreadySupported,
	})
}
