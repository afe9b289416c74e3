package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/networth-app/networth/internal/core/domain"
)

type CalculatorService interface {
	Record(ctx context.Context, userID int64, assets, liabilities decimal.Decimal) (*domain.Calculation, error)
	History(ctx context.Context, userID int64) ([]domain.Calculation, error)
}
