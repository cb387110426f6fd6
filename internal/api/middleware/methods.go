package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// AllowMethods rejects any request whose method is not listed with 405 and an
// Allow header. Use it on routes registered with Any so the method check runs
// before authentication.
func AllowMethods(methods ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(methods))
	for _, m := range methods {
		allowed[m] = struct{}{}
	}
	allowHeader := strings.Join(methods, ", ")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := allowed[c.Request().Method]; !ok {
				c.Response().Header().Set(echo.HeaderAllow, allowHeader)
				return echo.ErrMethodNotAllowed
			}
			return next(c)
		}
	}
}
