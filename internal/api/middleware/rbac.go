package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/quantumstudy/study-api/internal/core/domain"
)

// RequireAdmin rejects requests whose verified claims do not grant admin
// rights. The failure is the same as for an invalid token.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok || !claims.Admin {
				return domain.ErrUnauthorized
			}
			return next(c)
		}
	}
}
