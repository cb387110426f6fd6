package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/quantumstudy/study-api/internal/core/domain"
)

var ErrMissingSecret = errors.New("token verifier: signing secret is empty")

// adminClaims is the expected shape of an admin credential. A token whose
// "admin" claim is not a JSON boolean fails to decode and is rejected.
type adminClaims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

// TokenVerifier validates HS256-signed admin credentials statelessly.
type TokenVerifier struct {
	secret []byte
	parser *jwt.Parser
}

func NewTokenVerifier(secret string) (*TokenVerifier, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &TokenVerifier{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}, nil
}

// Verify checks the signature, algorithm and time claims of token and decodes
// its claims. It does not decide authorization: a valid token without admin
// rights is returned with Admin false. Any failure yields
// domain.ErrUnauthorized.
func (v *TokenVerifier) Verify(token string) (*domain.AdminClaims, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	var claims adminClaims
	tkn, err := v.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrUnauthorized
	}

	return &domain.AdminClaims{Subject: claims.Subject, Admin: claims.Admin}, nil
}
