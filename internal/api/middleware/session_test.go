package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/networth-app/networth/internal/auth"
	"github.com/networth-app/networth/internal/core/domain"
)

type stubUserRepo struct {
	users map[int64]*domain.User
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	return user, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func newTestContext(cookie string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLoadUser_ValidCookie(t *testing.T) {
	signer := auth.NewTokenSigner([]byte("secret"), time.Hour)
	repo := &stubUserRepo{users: map[int64]*domain.User{
		1: {ID: 1, Username: "alice"},
	}}

	token, err := signer.Issue(1)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	c, _ := newTestContext(token)
	handler := LoadUser(signer, repo)(func(c echo.Context) error {
		user := CurrentUser(c)
		if user == nil || user.Username != "alice" {
			t.Fatalf("expected alice in context, got %+v", user)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestLoadUser_AnonymousCases(t *testing.T) {
	signer := auth.NewTokenSigner([]byte("secret"), time.Hour)
	otherSigner := auth.NewTokenSigner([]byte("other-secret"), time.Hour)
	repo := &stubUserRepo{users: map[int64]*domain.User{
		1: {ID: 1, Username: "alice"},
	}}

	forged, err := otherSigner.Issue(1)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	vanished, err := signer.Issue(99) // no such user anymore
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	tests := []struct {
		name   string
		cookie string
	}{
		{"no cookie", ""},
		{"garbage token", "not-a-token"},
		{"forged signature", forged},
		{"user no longer exists", vanished},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext(tt.cookie)
			handler := LoadUser(signer, repo)(func(c echo.Context) error {
				if CurrentUser(c) != nil {
					t.Fatalf("expected anonymous request")
				}
				return c.NoContent(http.StatusOK)
			})

			if err := handler(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			// The request itself must still succeed.
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
		})
	}
}

func TestRequireUser_RedirectsAnonymous(t *testing.T) {
	c, rec := newTestContext("")
	handler := RequireUser(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestRequireUser_PassesAuthenticated(t *testing.T) {
	c, rec := newTestContext("")
	c.Set(userContextKey, &domain.User{ID: 1, Username: "alice"})

	called := false
	handler := RequireUser(func(c echo.Context) error {
		called = true
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
