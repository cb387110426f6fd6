package ports

import "github.com/quantumstudy/study-api/internal/core/domain"

// TokenVerifier checks a signed admin credential.
type TokenVerifier interface {
	Verify(token string) (*domain.AdminClaims, error)
}
