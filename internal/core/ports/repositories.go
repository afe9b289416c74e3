package ports

import (
	"context"

	"github.com/networth-app/networth/internal/core/domain"
)

// UserRepository is the persistence boundary for user identity. Create must
// rely on a storage-level uniqueness constraint and surface conflicts as
// domain.ErrUserExists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}

// CalculationRepository is the persistence boundary for recorded net worth
// snapshots. Rows are written once and never mutated.
type CalculationRepository interface {
	Insert(ctx context.Context, calc *domain.Calculation) (*domain.Calculation, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Calculation, error)
}
