package middleware

import (
	"net"
	"net/http"

	"github.com/labstack/echo/v4"
)

// LoopbackOnly restricts a route to clients on the same machine. It guards the
// desktop-only routes that hand out live session tokens.
func LoopbackOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			host, _, err := net.SplitHostPort(c.Request().RemoteAddr)
			if err != nil {
				host = c.Request().RemoteAddr
			}
			ip := net.ParseIP(host)
			if ip == nil || !ip.IsLoopback() {
				return echo.NewHTTPError(http.StatusForbidden, "Only available to local clients.")
			}
			return next(c)
		}
	}
}
