package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/networth-app/networth/internal/core/domain"
	"github.com/networth-app/networth/internal/core/ports"
)

// CalculatorService records net worth snapshots and serves a user's history.
type CalculatorService struct {
	ledger ports.CalculationRepository
}

func NewCalculatorService(ledger ports.CalculationRepository) *CalculatorService {
	return &CalculatorService{ledger: ledger}
}

// Record persists assets, liabilities and the derived net worth in one
// atomic insert. Negative and zero figures are allowed; the subtraction is
// exact fixed-point arithmetic.
func (s *CalculatorService) Record(ctx context.Context, userID int64, assets, liabilities decimal.Decimal) (*domain.Calculation, error) {
	calc := &domain.Calculation{
		UserID:      userID,
		Assets:      assets,
		Liabilities: liabilities,
		NetWorth:    assets.Sub(liabilities),
	}
	return s.ledger.Insert(ctx, calc)
}

// History returns every calculation the user ever recorded, newest first.
func (s *CalculatorService) History(ctx context.Context, userID int64) ([]domain.Calculation, error) {
	return s.ledger.ListByUser(ctx, userID)
}
