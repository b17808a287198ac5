package reports

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/radieske/ticket-shop-poc/internal/ticket-service/repo"
	"github.com/radieske/ticket-shop-poc/pkg/oddsmath"
)

// DailyRow é o resumo de um dia de operação do agente.
type DailyRow struct {
	Day     string          `json:"day"` // YYYY-MM-DD
	Tickets int             `json:"tickets"`
	Risk    decimal.Decimal `json:"risk"`   // soma dos stakes
	Payout  decimal.Decimal `json:"payout"` // exposição total se tudo ganhar
	Profit  decimal.Decimal `json:"profit"` // resultado realizado dos liquidados
}

// Daily agrega os tickets por dia de criação, com filtro opcional de período
// (from/to inclusivos, datas locais). Tickets abertos contam em risco e
// exposição mas não em lucro.
func Daily(tickets []repo.Ticket, from, to *time.Time) []DailyRow {
	byDay := map[string]*DailyRow{}

	for _, t := range tickets {
		if from != nil && t.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && t.CreatedAt.After(*to) {
			continue
		}

		day := t.CreatedAt.Format("2006-01-02")
		row, ok := byDay[day]
		if !ok {
			row = &DailyRow{Day: day}
			byDay[day] = row
		}

		row.Tickets++
		row.Risk = row.Risk.Add(t.Stake)
		row.Payout = row.Payout.Add(oddsmath.Payout(t.Stake, t.Price))

		switch t.Status {
		case repo.StatusWon:
			row.Profit = row.Profit.Sub(oddsmath.Profit(t.Stake, t.Price))
		case repo.StatusLost:
			row.Profit = row.Profit.Add(t.Stake)
		}
	}

	out := make([]DailyRow, 0, len(byDay))
	for _, row := range byDay {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}
