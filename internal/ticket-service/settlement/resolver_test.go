package settlement

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/radieske/ticket-shop-poc/internal/oddsfeed"
	"github.com/radieske/ticket-shop-poc/internal/ticket-service/repo"
)

func strp(s string) *string { return &s }

func mlTicket(team string) repo.Ticket {
	return repo.Ticket{
		ID:       "t1",
		SportKey: "basketball_nba",
		Team:     team,
		Bet:      repo.BetML,
		Price:    -150,
		Stake:    decimal.NewFromInt(100),
		Status:   repo.StatusOpen,
	}
}

func totalsTicket(bet string, pts *string) repo.Ticket {
	t := mlTicket("Lakers")
	t.Bet = bet
	t.Points = pts
	return t
}

func completedGame(home, away string, hs, as float64) oddsfeed.GameResult {
	return oddsfeed.GameResult{
		HomeTeam:     home,
		AwayTeam:     away,
		HomeScore:    hs,
		AwayScore:    as,
		Completed:    true,
		CommenceTime: time.Date(2026, 8, 28, 23, 0, 0, 0, time.UTC),
	}
}

func TestResolve_Moneyline(t *testing.T) {
	tests := []struct {
		name string
		team string
		hs   float64
		as   float64
		want Outcome
	}{
		{"team wins at home", "Lakers", 110, 101, Win},
		{"team wins away", "Suns", 101, 110, Win},
		{"team loses", "Lakers", 95, 99, Lose},
		{"tie voids", "Lakers", 100, 100, Void},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(mlTicket(tt.team), []oddsfeed.GameResult{
				completedGame("Lakers", "Suns", tt.hs, tt.as),
			})
			if got != tt.want {
				t.Errorf("Resolve = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolve_Totals(t *testing.T) {
	tests := []struct {
		name string
		bet  string
		pts  *string
		hs   float64
		as   float64
		want Outcome
	}{
		{"over hits", repo.BetOver, strp("5.5"), 4, 2, Win},
		{"over misses", repo.BetOver, strp("5.5"), 3, 2, Lose},
		{"under hits", repo.BetUnder, strp("5.5"), 3, 2, Win},
		{"under misses", repo.BetUnder, strp("5.5"), 4, 2, Lose},
		{"exact line voids", repo.BetOver, strp("5.5"), 3, 2.5, Void},
		{"comma separator accepted", repo.BetOver, strp("5,5"), 4, 2, Win},
		{"unparsable stays unresolved", repo.BetOver, strp("abc"), 4, 2, Unresolved},
		{"missing points stays unresolved", repo.BetOver, nil, 4, 2, Unresolved},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(totalsTicket(tt.bet, tt.pts), []oddsfeed.GameResult{
				completedGame("Lakers", "Suns", tt.hs, tt.as),
			})
			if got != tt.want {
				t.Errorf("Resolve = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolve_NoCompletedGame(t *testing.T) {
	inProgress := completedGame("Lakers", "Suns", 50, 40)
	inProgress.Completed = false

	if got := Resolve(mlTicket("Lakers"), []oddsfeed.GameResult{inProgress}); got != Unresolved {
		t.Errorf("in-progress game: Resolve = %v, want Unresolved", got)
	}
	if got := Resolve(mlTicket("Lakers"), nil); got != Unresolved {
		t.Errorf("no games: Resolve = %v, want Unresolved", got)
	}
}

func TestResolve_PicksLatestCompletedGame(t *testing.T) {
	older := completedGame("Lakers", "Suns", 90, 100) // derrota
	older.CommenceTime = older.CommenceTime.Add(-48 * time.Hour)
	newer := completedGame("Lakers", "Warriors", 120, 80) // vitória

	got := Resolve(mlTicket("Lakers"), []oddsfeed.GameResult{older, newer})
	if got != Win {
		t.Errorf("Resolve = %v, want Win from the most recent game", got)
	}
}

func TestResolve_UnknownBetType(t *testing.T) {
	tk := mlTicket("Lakers")
	tk.Bet = "Spread"
	if got := Resolve(tk, []oddsfeed.GameResult{completedGame("Lakers", "Suns", 110, 90)}); got != Unresolved {
		t.Errorf("unknown bet type: Resolve = %v, want Unresolved", got)
	}
}

func TestDelta(t *testing.T) {
	stake := decimal.NewFromInt(100)

	if got := Delta(repo.StatusWon, stake, -150); !got.Equal(decimal.RequireFromString("-66.6666666666666667")) {
		t.Errorf("won delta = %s", got)
	}
	if got := Delta(repo.StatusLost, stake, -150); !got.Equal(stake) {
		t.Errorf("lost delta = %s, want +stake", got)
	}
	if got := Delta(repo.StatusVoid, stake, -150); !got.IsZero() {
		t.Errorf("void delta = %s, want 0", got)
	}
}
