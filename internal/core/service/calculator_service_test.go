package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networth-app/networth/internal/core/domain"
)

type stubCalcRepo struct {
	rows   []domain.Calculation
	nextID int64
}

func (r *stubCalcRepo) Insert(_ context.Context, calc *domain.Calculation) (*domain.Calculation, error) {
	r.nextID++
	inserted := *calc
	inserted.ID = r.nextID
	inserted.CreatedAt = time.Now().UTC()
	r.rows = append(r.rows, inserted)
	return &inserted, nil
}

func (r *stubCalcRepo) ListByUser(_ context.Context, userID int64) ([]domain.Calculation, error) {
	var out []domain.Calculation
	for i := len(r.rows) - 1; i >= 0; i-- {
		if r.rows[i].UserID == userID {
			out = append(out, r.rows[i])
		}
	}
	return out, nil
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestCalculatorService_Record(t *testing.T) {
	tests := []struct {
		name        string
		assets      string
		liabilities string
		want        string
	}{
		{"positive", "1000", "400", "600"},
		{"negative", "100", "250.50", "-150.50"},
		{"zero", "0", "0", "0"},
		{"negative inputs allowed", "-10.25", "-20.75", "10.50"},
		{"exact fixed point", "0.30", "0.10", "0.20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCalculatorService(&stubCalcRepo{})

			calc, err := svc.Record(context.Background(), 1, dec(t, tt.assets), dec(t, tt.liabilities))
			require.NoError(t, err)
			assert.True(t, calc.NetWorth.Equal(dec(t, tt.want)),
				"net worth = %s, want %s", calc.NetWorth, tt.want)
			assert.True(t, calc.Assets.Equal(dec(t, tt.assets)))
			assert.True(t, calc.Liabilities.Equal(dec(t, tt.liabilities)))
		})
	}
}

func TestCalculatorService_History_NewestFirst(t *testing.T) {
	repo := &stubCalcRepo{}
	svc := NewCalculatorService(repo)

	_, err := svc.Record(context.Background(), 1, dec(t, "100"), dec(t, "50"))
	require.NoError(t, err)
	_, err = svc.Record(context.Background(), 1, dec(t, "200"), dec(t, "50"))
	require.NoError(t, err)

	history, err := svc.History(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.True(t, history[0].NetWorth.Equal(dec(t, "150")), "newest entry first")
	assert.True(t, history[1].NetWorth.Equal(dec(t, "50")))
}

func TestCalculatorService_History_PerUserIsolation(t *testing.T) {
	repo := &stubCalcRepo{}
	svc := NewCalculatorService(repo)

	_, err := svc.Record(context.Background(), 1, dec(t, "100"), dec(t, "0"))
	require.NoError(t, err)
	_, err = svc.Record(context.Background(), 2, dec(t, "999"), dec(t, "0"))
	require.NoError(t, err)

	history, err := svc.History(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.EqualValues(t, 1, history[0].UserID)
}
