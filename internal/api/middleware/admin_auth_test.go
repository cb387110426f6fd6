package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/quantumstudy/study-api/internal/core/domain"
)

type stubVerifier struct {
	claims *domain.AdminClaims
	err    error
	got    string
}

func (v *stubVerifier) Verify(token string) (*domain.AdminClaims, error) {
	v.got = token
	return v.claims, v.err
}

func newCookieContext(e *echo.Echo, cookie *http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAdminAuth_ValidToken(t *testing.T) {
	e := echo.New()
	verifier := &stubVerifier{claims: &domain.AdminClaims{Subject: "ops", Admin: true}}
	c, rec := newCookieContext(e, &http.Cookie{Name: "admin_token", Value: "signed"})

	called := false
	handler := AdminAuth(verifier, "admin_token")(func(c echo.Context) error {
		called = true
		claims, ok := ClaimsFrom(c)
		if !ok || claims.Subject != "ops" {
			t.Fatalf("claims not set: %+v", claims)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if verifier.got != "signed" {
		t.Fatalf("verifier got %q", verifier.got)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAdminAuth_MissingCookie(t *testing.T) {
	e := echo.New()
	verifier := &stubVerifier{}

	for name, cookie := range map[string]*http.Cookie{
		"no cookie":    nil,
		"other cookie": {Name: "session", Value: "x"},
		"empty value":  {Name: "admin_token", Value: ""},
	} {
		t.Run(name, func(t *testing.T) {
			c, _ := newCookieContext(e, cookie)
			handler := AdminAuth(verifier, "admin_token")(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})

			if err := handler(c); !errors.Is(err, domain.ErrUnauthenticated) {
				t.Fatalf("expected ErrUnauthenticated, got %v", err)
			}
		})
	}
}

func TestAdminAuth_InvalidToken(t *testing.T) {
	e := echo.New()
	verifier := &stubVerifier{err: errors.New("signature is invalid")}
	c, _ := newCookieContext(e, &http.Cookie{Name: "admin_token", Value: "forged"})

	handler := AdminAuth(verifier, "admin_token")(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
