package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"bellator/internal/config"
	"bellator/internal/errors"
	"bellator/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	prayerHandler *handler.PrayerHandler,
	eventHandler *handler.EventHandler,
	reflectionHandler *handler.ReflectionHandler,
	joinHandler *handler.JoinHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)

	// Prayer wall. Admin-only behavior (pending queue, approval) is guarded
	// inside the handlers so the public listing stays on the same path.
	api.GET("/prayers", prayerHandler.List)
	api.POST("/prayers", prayerHandler.Submit)
	api.PUT("/prayers", prayerHandler.Moderate)
	api.POST("/prayers/support", prayerHandler.Support)

	// Events
	api.GET("/events", eventHandler.List)
	api.POST("/events", eventHandler.Create)
	api.POST("/events/register", eventHandler.Register)

	// Reflections
	api.GET("/reflections", reflectionHandler.List)
	api.POST("/reflections", reflectionHandler.Create)

	// Membership intake
	api.POST("/join", joinHandler.Submit)
	api.GET("/join", joinHandler.ListPending)

	// Secured routes (require JWT authentication). Every failure mode is the
	// same 401; nothing distinguishes missing, malformed and expired tokens.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		ErrorHandler: func(c echo.Context, err error) error {
			httpErr := errors.MapErrorToHTTP(errors.ErrUnauthorized)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		},
	}))

	secured.GET("/me", authHandler.Me)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
