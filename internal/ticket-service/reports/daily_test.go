package reports

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/radieske/ticket-shop-poc/internal/ticket-service/repo"
)

func ticket(day time.Time, stake string, price int, status string) repo.Ticket {
	return repo.Ticket{
		CreatedAt: day,
		Stake:     decimal.RequireFromString(stake),
		Price:     price,
		Status:    status,
	}
}

func TestDaily_GroupsAndSums(t *testing.T) {
	d1 := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	rows := Daily([]repo.Ticket{
		ticket(d1, "100", -200, repo.StatusWon),  // lucro -50
		ticket(d1, "100", 150, repo.StatusLost),  // lucro +100
		ticket(d2, "50", 100, repo.StatusOpen),   // só risco/exposição
	}, nil, nil)

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	first := rows[0]
	if first.Day != "2026-08-27" || first.Tickets != 2 {
		t.Errorf("first row = %+v", first)
	}
	if !first.Risk.Equal(decimal.NewFromInt(200)) {
		t.Errorf("risk = %s, want 200", first.Risk)
	}
	// payout(100,-200)=150 + payout(100,150)=250
	if !first.Payout.Equal(decimal.NewFromInt(400)) {
		t.Errorf("payout = %s, want 400", first.Payout)
	}
	if !first.Profit.Equal(decimal.NewFromInt(50)) {
		t.Errorf("profit = %s, want -50+100=50", first.Profit)
	}

	second := rows[1]
	if second.Day != "2026-08-28" || !second.Profit.IsZero() {
		t.Errorf("open ticket must not contribute profit: %+v", second)
	}
}

func TestDaily_RangeFilter(t *testing.T) {
	d1 := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	from := time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC)
	rows := Daily([]repo.Ticket{
		ticket(d1, "100", 100, repo.StatusOpen),
		ticket(d2, "100", 100, repo.StatusOpen),
	}, &from, nil)

	if len(rows) != 1 || rows[0].Day != "2026-08-25" {
		t.Errorf("rows = %+v, want only 2026-08-25", rows)
	}
}
