package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/shrigondanews/news-api/internal/core/domain"
)

func runRBAC(t *testing.T, have domain.Role, need domain.Role) int {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if have != "" {
		c.Set(CtxRole, have)
	}

	mw := RequireRole(need)
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec.Code
}

func TestRequireRole_AdminSatisfiesEditor(t *testing.T) {
	if code := runRBAC(t, domain.RoleAdmin, domain.RoleEditor); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
}

func TestRequireRole_EditorSatisfiesEditor(t *testing.T) {
	if code := runRBAC(t, domain.RoleEditor, domain.RoleEditor); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
}

func TestRequireRole_EditorCannotBeAdmin(t *testing.T) {
	if code := runRBAC(t, domain.RoleEditor, domain.RoleAdmin); code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
}

func TestRequireRole_UnknownRoleForbidden(t *testing.T) {
	if code := runRBAC(t, domain.Role("viewer"), domain.RoleEditor); code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
}

func TestRequireRole_MissingClaimsForbidden(t *testing.T) {
	if code := runRBAC(t, "", domain.RoleEditor); code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
}
