package api

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/quantumstudy/study-api/internal/api/handler"
	"github.com/quantumstudy/study-api/internal/api/middleware"
	"github.com/quantumstudy/study-api/internal/core/ports"
	"github.com/quantumstudy/study-api/internal/pkg/metrics"
)

const defaultAdminCookie = "admin_token"

// Deps carries everything the router needs. Registry may be nil, in which
// case a private registry is created.
type Deps struct {
	Users      ports.UserService
	ServerInfo ports.ServerInfoService
	Verifier   ports.TokenVerifier
	Readiness  map[string]handler.DependencyCheck
	Registry   *prometheus.Registry
	Logger     zerolog.Logger

	AdminCookieName string
	SwaggerEnabled  bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) (*echo.Echo, error) {
	reg := d.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	if err := metrics.Register(reg); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
	}
	cookieName := d.AdminCookieName
	if cookieName == "" {
		cookieName = defaultAdminCookie
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	// Outside the request logger, which renders errors, so the recorded
	// status is the one written to the client.
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "study",
		Subsystem:  "http",
		Registerer: reg,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))
	e.Use(requestLogger(d.Logger))

	// --- Admin routes ---
	// Registered for every method so that the method check runs first.
	userHandler := handler.NewUserHandler(d.Users)
	e.Any("/api/admin/update-user-tag", userHandler.UpdateTag,
		middleware.AllowMethods(http.MethodPost),
		middleware.AdminAuth(d.Verifier, cookieName),
		middleware.RequireAdmin(),
	)

	// --- Public routes ---
	serverInfoHandler := handler.NewServerInfoHandler(d.ServerInfo)
	e.GET("/api/auth/serverInfo", serverInfoHandler.Get)
	e.GET("/api/contact", serverInfoHandler.Contact)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Readiness)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg}))

	if d.SwaggerEnabled {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	return e, nil
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= http.StatusInternalServerError {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
