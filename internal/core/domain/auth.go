package domain

import "errors"

var (
	ErrUnauthenticated = errors.New("no token provided")
	// ErrUnauthorized covers both a token that fails verification and a valid
	// token without admin rights.
	ErrUnauthorized = errors.New("invalid token")
	ErrInvalidInput = errors.New("userId and tag are required")
)

// AdminClaims is the verified content of an admin credential.
type AdminClaims struct {
	Subject string
	Admin   bool
}
