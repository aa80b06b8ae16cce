package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shrigondanews/news-api/internal/api/middleware"
	"github.com/shrigondanews/news-api/internal/core/domain"
)

// ctxPrincipal rebuilds the token principal injected by the Auth middleware
// and performs a fast-fail check before any service call: a non-empty role
// proves the middleware ran on this route.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	role, _ := c.Get(middleware.CtxRole).(domain.Role)
	if role == "" {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	id, _ := c.Get(middleware.CtxUserID).(string)
	username, _ := c.Get(middleware.CtxUsername).(string)
	return domain.Principal{ID: id, Username: username, Role: role}, nil
}
