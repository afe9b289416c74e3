package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/networth-app/networth/internal/api/metrics"
	"github.com/networth-app/networth/internal/api/middleware"
	"github.com/networth-app/networth/internal/core/domain"
	"github.com/networth-app/networth/internal/core/ports"
)

// AuthHandler serves the signup, login and logout pages.
type AuthHandler struct {
	authService ports.AuthService
	cookieTTL   time.Duration
}

func NewAuthHandler(authService ports.AuthService, cookieTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, cookieTTL: cookieTTL}
}

type signupForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required,min=6"`
}

type loginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// SignupPage handles GET /signup.
func (h *AuthHandler) SignupPage(c echo.Context) error {
	return c.Render(http.StatusOK, "signup.html", echo.Map{
		"User":     middleware.CurrentUser(c),
		"Username": "",
	})
}

// Signup handles POST /signup. On success the new user is logged in right
// away and sent to the calculator.
func (h *AuthHandler) Signup(c echo.Context) error {
	var form signupForm
	if err := c.Bind(&form); err != nil {
		return h.signupError(c, &form, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		metrics.SignupsTotal.WithLabelValues("invalid").Inc()
		return h.signupError(c, &form, err.Error())
	}

	token, _, err := h.authService.Register(c.Request().Context(), form.Username, form.Password)
	switch {
	case errors.Is(err, domain.ErrUserExists):
		metrics.SignupsTotal.WithLabelValues("duplicate").Inc()
		return h.signupError(c, &form, "That username is already taken.")
	case errors.Is(err, domain.ErrInvalidInput):
		metrics.SignupsTotal.WithLabelValues("invalid").Inc()
		return h.signupError(c, &form, "Username and a password of at least 6 characters are required.")
	case err != nil:
		return err
	}

	metrics.SignupsTotal.WithLabelValues("success").Inc()
	h.setSessionCookie(c, token)
	return c.Redirect(http.StatusSeeOther, "/")
}

// LoginPage handles GET /login.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", echo.Map{
		"User":     middleware.CurrentUser(c),
		"Username": "",
	})
}

// Login handles POST /login. Bad username and bad password produce the same
// generic message.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return h.loginError(c, &form)
	}
	if err := c.Validate(&form); err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return h.loginError(c, &form)
	}

	token, _, err := h.authService.Login(c.Request().Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return h.loginError(c, &form)
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.setSessionCookie(c, token)
	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout handles GET and POST /logout. Sessions are stateless bearer
// tokens, so logout only clears the cookie; an already-copied token stays
// valid until it expires.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.clearSessionCookie(c)
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) signupError(c echo.Context, form *signupForm, msg string) error {
	return c.Render(http.StatusOK, "signup.html", echo.Map{
		"User":     middleware.CurrentUser(c),
		"Error":    msg,
		"Username": form.Username,
	})
}

func (h *AuthHandler) loginError(c echo.Context, form *loginForm) error {
	return c.Render(http.StatusOK, "login.html", echo.Map{
		"User":     middleware.CurrentUser(c),
		"Error":    "Invalid username or password.",
		"Username": form.Username,
	})
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookieTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
