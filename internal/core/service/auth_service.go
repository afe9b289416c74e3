package service

import (
	"context"
	"errors"

	"github.com/networth-app/networth/internal/core/domain"
	"github.com/networth-app/networth/internal/core/ports"
)

const minPasswordLen = 6

// AuthService implements signup and login on top of the credential store,
// password hasher and session signer.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	signer ports.SessionSigner
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, signer ports.SessionSigner) *AuthService {
	return &AuthService{users: users, hasher: hasher, signer: signer}
}

// Register creates the account and immediately issues a session token, so
// signup doubles as login.
func (s *AuthService) Register(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || len(password) < minPasswordLen {
		return "", nil, domain.ErrInvalidInput
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: hash,
	})
	if err != nil {
		return "", nil, err
	}

	token, err := s.signer.Issue(created.ID)
	if err != nil {
		return "", nil, err
	}
	return token, created, nil
}

// Login never reveals whether the username exists: an unknown user and a
// wrong password both come back as ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.signer.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}
