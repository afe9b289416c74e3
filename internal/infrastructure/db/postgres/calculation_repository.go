package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/networth-app/networth/internal/core/domain"
)

type CalculationRepository struct {
	db *sql.DB
}

func NewCalculationRepository(db *sql.DB) *CalculationRepository {
	return &CalculationRepository{db: db}
}

// Insert writes one immutable row; created_at is assigned by the server.
func (r *CalculationRepository) Insert(ctx context.Context, calc *domain.Calculation) (*domain.Calculation, error) {
	query := `INSERT INTO calculations (user_id, assets, liabilities, net_worth)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at`

	inserted := &domain.Calculation{
		UserID:      calc.UserID,
		Assets:      calc.Assets,
		Liabilities: calc.Liabilities,
		NetWorth:    calc.NetWorth,
	}
	err := r.db.QueryRowContext(ctx, query,
		calc.UserID, calc.Assets, calc.Liabilities, calc.NetWorth).
		Scan(&inserted.ID, &inserted.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert calculation: %w", err)
	}
	return inserted, nil
}

// ListByUser returns the full history for one user, newest first. The id
// tiebreak keeps ordering stable for rows sharing a timestamp.
func (r *CalculationRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Calculation, error) {
	query := `SELECT id, user_id, assets, liabilities, net_worth, created_at
	          FROM calculations
	          WHERE user_id = $1
	          ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list calculations: %w", err)
	}
	defer rows.Close()

	var calcs []domain.Calculation
	for rows.Next() {
		var c domain.Calculation
		if err := rows.Scan(&c.ID, &c.UserID, &c.Assets, &c.Liabilities, &c.NetWorth, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan calculation: %w", err)
		}
		calcs = append(calcs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list calculations: %w", err)
	}
	return calcs, nil
}
