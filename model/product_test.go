package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestProductEntity_EffectivePrice(t *testing.T) {
	base := decimal.NewFromInt(100000)
	pct := decimal.NewFromInt(25)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	p := ProductEntity{
		Price:           base,
		DiscountPercent: &pct,
		DiscountStart:   &start,
		DiscountEnd:     &end,
	}

	tests := []struct {
		name string
		now  time.Time
		want decimal.Decimal
	}{
		{"before the window", start.Add(-time.Second), base},
		{"at window start", start, decimal.NewFromInt(75000)},
		{"inside the window", start.AddDate(0, 0, 15), decimal.NewFromInt(75000)},
		{"at window end", end, base},
		{"after the window", end.Add(time.Second), base},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := p.EffectivePrice(tt.now); !got.Equal(tt.want) {
				t.Fatalf("EffectivePrice(%s) = %s, want %s", tt.now, got, tt.want)
			}
		})
	}

	t.Run("no discount configured", func(t *testing.T) {
		plain := ProductEntity{Price: base}
		if got := plain.EffectivePrice(start); !got.Equal(base) {
			t.Fatalf("EffectivePrice() = %s, want %s", got, base)
		}
	})
}
