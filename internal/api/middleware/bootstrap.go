package middleware

import (
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shrigondanews/news-api/internal/core/ports"
)

// Bootstrap seeds the default admin account before the first request is
// routed. Concurrent first requests converge on one seeding attempt via
// sync.Once; a seeding failure is logged and never fails the request.
func Bootstrap(auth ports.AuthService, log zerolog.Logger) echo.MiddlewareFunc {
	var once sync.Once
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			once.Do(func() {
				if err := auth.EnsureAdmin(c.Request().Context()); err != nil {
					log.Warn().Err(err).Msg("default admin bootstrap failed")
				}
			})
			return next(c)
		}
	}
}
