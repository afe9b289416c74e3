package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/networth-app/networth/internal/core/domain"
	"github.com/networth-app/networth/internal/core/ports"
)

// CookieName is the session cookie holding the signed token.
const CookieName = "session"

const userContextKey = "current_user"

// LoadUser resolves the session cookie into a user and stores it in the
// request context. Any failure — missing cookie, bad or expired token, user
// deleted since issuance — degrades to anonymous; the request itself is
// never rejected here.
func LoadUser(signer ports.SessionSigner, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			userID, err := signer.Verify(cookie.Value)
			if err != nil {
				return next(c)
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				return next(c)
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// RequireUser guards protected routes: anonymous callers are redirected to
// the login page. Must run after LoadUser.
func RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentUser(c) == nil {
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		return next(c)
	}
}

// CurrentUser returns the authenticated user, or nil for anonymous requests.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(userContextKey).(*domain.User)
	return user
}
