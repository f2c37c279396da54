package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lumiere-beauty/storefront-api/internal/model"
	"github.com/lumiere-beauty/storefront-api/internal/service"
)

const userContextKey = "user"

// CurrentUser returns the authenticated user, or nil for anonymous
// requests.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(userContextKey).(*model.User)
	return user
}

// LoadUser resolves a bearer token into a user on every request. Invalid or
// absent tokens just leave the request anonymous; the Require* guards decide
// what that means.
func LoadUser(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
				return next(c)
			}
			token := strings.TrimSpace(header[len("bearer "):])
			if token == "" {
				return next(c)
			}
			if user, err := authService.ResolveToken(c.Request().Context(), token); err == nil {
				c.Set(userContextKey, user)
			}
			return next(c)
		}
	}
}

func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentUser(c) == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		}
		return next(c)
	}
}

func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := CurrentUser(c)
		if user == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		}
		if user.Role != model.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
		}
		return next(c)
	}
}

// RequirePermission admits admins unconditionally and staff according to
// their permission map.
func RequirePermission(moduleKey, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}
			if !service.Can(user, moduleKey, action) {
				return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
			}
			return next(c)
		}
	}
}
