package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Calculation is one immutable net worth snapshot owned by a single user.
// NetWorth is derived at recording time and never recomputed afterwards.
type Calculation struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"user_id"`
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	NetWorth    decimal.Decimal `json:"net_worth"`
	CreatedAt   time.Time       `json:"created_at"`
}
