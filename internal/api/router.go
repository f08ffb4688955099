package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/fitengage/gym-manager/internal/api/handler"
	"github.com/fitengage/gym-manager/internal/api/middleware"
	"github.com/fitengage/gym-manager/internal/core/ports"
)

// Services are the use cases exposed over HTTP.
type Services struct {
	Auth       ports.AuthService
	Membership ports.MembershipService
	Payments   ports.PaymentService
	Dashboard  ports.DashboardService
}

// Options tunes the boundary.
type Options struct {
	// DesktopMode exposes GET /auth/session/active to loopback clients.
	DesktopMode bool
	LoginRate   float64
	LoginBurst  int

	// Registerer receives the request metrics. Defaults to the global registry.
	Registerer prometheus.Registerer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, opts Options, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(requestLogger(log))
	registerer := opts.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "gym",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(svc.Auth)
	memberHandler := handler.NewMemberHandler(svc.Membership)
	paymentHandler := handler.NewPaymentHandler(svc.Payments)
	dashboardHandler := handler.NewDashboardHandler(svc.Dashboard)

	// --- Auth routes (no session required) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login, middleware.LoginRateLimit(opts.LoginRate, opts.LoginBurst))
	e.POST("/auth/logout", authHandler.Logout)
	e.POST("/auth/session/check", authHandler.CheckSession)
	if opts.DesktopMode {
		e.GET("/auth/session/active", authHandler.ActiveSession, middleware.LoopbackOnly())
	}

	// --- Data routes (bearer session) ---
	session := middleware.Session(svc.Auth)
	e.GET("/users/:id", authHandler.Profile, session)

	e.GET("/members", memberHandler.List, session)
	e.POST("/members", memberHandler.Create, session)
	e.PUT("/members/:id", memberHandler.Update, session)
	e.DELETE("/members/:id", memberHandler.Delete, session)
	e.GET("/membership-types", memberHandler.ListTypes, session)

	e.GET("/payments", paymentHandler.List, session)
	e.POST("/payments", paymentHandler.Create, session)
	e.DELETE("/payments/:id", paymentHandler.Delete, session)

	e.GET("/dashboard", dashboardHandler.Summary, session)

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURIPath:   true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("path", v.URIPath).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
