package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"bellator/internal/auth"
	"bellator/internal/service"
)

// ReflectionHandler handles devotional content endpoints.
type ReflectionHandler struct {
	reflectionService service.ReflectionService
	guard             *auth.Guard
}

// NewReflectionHandler creates a new reflection handler.
func NewReflectionHandler(reflectionService service.ReflectionService, guard *auth.Guard) *ReflectionHandler {
	return &ReflectionHandler{reflectionService: reflectionService, guard: guard}
}

// CreateReflectionRequest represents an admin reflection post.
type CreateReflectionRequest struct {
	Title              string `json:"title" validate:"required"`
	Content            string `json:"content" validate:"required"`
	ScriptureReference string `json:"scripture_reference"`
	Category           string `json:"category" validate:"required"`
	Author             string `json:"author" validate:"required"`
	Daily              bool   `json:"is_daily"`
	PublishDate        string `json:"publish_date" validate:"required,datetime=2006-01-02"`
}

// List godoc
// @Summary List published reflections, or fetch the daily reflection
// @Tags reflections
// @Produce json
// @Param limit query int false "Max reflections returned"
// @Param daily query bool false "Return the daily reflection instead of the list"
// @Param date query string false "Daily reflection date (YYYY-MM-DD, default today)"
// @Success 200 {object} map[string]interface{}
// @Router /reflections [get]
func (h *ReflectionHandler) List(c echo.Context) error {
	if c.QueryParam("daily") == "true" {
		date := c.QueryParam("date")
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}
		reflection, err := h.reflectionService.Daily(c.Request().Context(), date)
		if err != nil {
			return domainError(err)
		}
		return c.JSON(http.StatusOK, echo.Map{"reflection": reflection})
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	reflections, err := h.reflectionService.ListPublished(c.Request().Context(), limit)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"reflections": reflections})
}

// Create godoc
// @Summary Post a reflection (admin only)
// @Tags reflections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateReflectionRequest true "Reflection data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /reflections [post]
func (h *ReflectionHandler) Create(c echo.Context) error {
	if h.guard.RequireAdmin(c) == nil {
		return unauthorized()
	}

	var req CreateReflectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	reflectionID, err := h.reflectionService.Create(c.Request().Context(), service.CreateReflectionInput{
		Title:              req.Title,
		Content:            req.Content,
		ScriptureReference: req.ScriptureReference,
		Category:           req.Category,
		Author:             req.Author,
		Daily:              req.Daily,
		PublishDate:        req.PublishDate,
	})
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":       "reflection created",
		"reflection_id": reflectionID,
	})
}
