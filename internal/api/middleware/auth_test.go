package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shrigondanews/news-api/internal/core/domain"
	"github.com/shrigondanews/news-api/internal/core/service"
)

func testTokens() *service.TokenService {
	return service.NewTokenService("secret", time.Hour, zerolog.Nop())
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	tokens := testTokens()
	signed, err := tokens.Issue(domain.Principal{ID: "u1", Username: "alice", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(tokens)
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get(CtxUserID) != "u1" {
			t.Fatalf("user id not set")
		}
		if c.Get(CtxUsername) != "alice" {
			t.Fatalf("username not set")
		}
		if c.Get(CtxRole) != domain.RoleAdmin {
			t.Fatalf("role not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func assertUnauthorized(t *testing.T, header string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(testTokens())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("header %q: expected 401, got %d", header, rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	assertUnauthorized(t, "")
}

func TestAuthMiddleware_WrongScheme(t *testing.T) {
	assertUnauthorized(t, "Token abc")
}

func TestAuthMiddleware_LowercaseScheme(t *testing.T) {
	// The scheme must be literally "Bearer".
	assertUnauthorized(t, "bearer abc")
}

func TestAuthMiddleware_ThreeParts(t *testing.T) {
	assertUnauthorized(t, "Bearer abc def")
}

func TestAuthMiddleware_BareToken(t *testing.T) {
	assertUnauthorized(t, "abc")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	assertUnauthorized(t, "Bearer not-a-token")
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	other := service.NewTokenService("other-secret", time.Hour, zerolog.Nop())
	signed, err := other.Issue(domain.Principal{ID: "u1", Username: "alice", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	assertUnauthorized(t, "Bearer "+signed)
}
