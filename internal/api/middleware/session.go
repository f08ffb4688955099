package middleware

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/fitengage/gym-manager/internal/api/handler"
	"github.com/fitengage/gym-manager/internal/api/metrics"
	"github.com/fitengage/gym-manager/internal/core/domain"
)

// SessionChecker resolves a session token to its user.
type SessionChecker interface {
	CheckSession(ctx context.Context, token string) (*domain.User, error)
}

// Session validates the bearer session token and injects the user into the
// context under handler.ContextUserKey.
func Session(checker SessionChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := handler.BearerToken(c)
			if token == "" {
				metrics.SessionChecksTotal.WithLabelValues("invalid").Inc()
				return domain.ErrInvalidSession
			}

			user, err := checker.CheckSession(c.Request().Context(), token)
			if err != nil {
				metrics.SessionChecksTotal.WithLabelValues("invalid").Inc()
				return err
			}

			metrics.SessionChecksTotal.WithLabelValues("valid").Inc()
			c.Set(handler.ContextUserKey, user)
			return next(c)
		}
	}
}
