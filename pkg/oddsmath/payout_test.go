package oddsmath

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPayout(t *testing.T) {
	tests := []struct {
		name  string
		stake string
		price int
		want  string
	}{
		{"favorite -200", "100", -200, "150"},
		{"favorite -150", "100", -150, "166.6666666666666667"},
		{"favorite -110", "110", -110, "210"},
		{"underdog +150", "100", 150, "250"},
		{"underdog +120", "100", 120, "220"},
		{"even +100", "50", 100, "100"},
		{"zero price is a push", "75.50", 0, "75.50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stake := decimal.RequireFromString(tt.stake)
			want := decimal.RequireFromString(tt.want)
			got := Payout(stake, tt.price)
			if !got.Equal(want) {
				t.Errorf("Payout(%s, %d) = %s, want %s", tt.stake, tt.price, got, want)
			}
		})
	}
}

func TestPayoutAlwaysAboveStake(t *testing.T) {
	stake := decimal.NewFromInt(100)
	for _, price := range []int{-10000, -200, -101, 100, 150, 10000} {
		if got := Payout(stake, price); !got.GreaterThan(stake) {
			t.Errorf("Payout(100, %d) = %s, want > 100", price, got)
		}
	}
}

func TestProfit(t *testing.T) {
	got := Profit(decimal.NewFromInt(100), -150)
	want := decimal.RequireFromString("66.6666666666666667")
	if !got.Equal(want) {
		t.Errorf("Profit(100, -150) = %s, want %s", got, want)
	}
}
