package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/quantumstudy/study-api/internal/core/domain"
	"github.com/quantumstudy/study-api/internal/core/ports"
)

const claimsKey = "admin_claims"

// AdminAuth reads the admin credential from the named cookie, verifies it and
// injects the claims into the context.
func AdminAuth(verifier ports.TokenVerifier, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return domain.ErrUnauthenticated
			}

			claims, err := verifier.Verify(cookie.Value)
			if err != nil {
				return domain.ErrUnauthorized
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom returns the claims injected by AdminAuth, if any.
func ClaimsFrom(c echo.Context) (*domain.AdminClaims, bool) {
	claims, ok := c.Get(claimsKey).(*domain.AdminClaims)
	return claims, ok && claims != nil
}
