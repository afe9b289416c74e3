package ports

import (
	"context"

	"github.com/networth-app/networth/internal/core/domain"
)

// AuthService covers signup and login. Register issues a session token as
// well: signup logs the new user in immediately.
type AuthService interface {
	Register(ctx context.Context, username, password string) (string, *domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
