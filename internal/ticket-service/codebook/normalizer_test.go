package codebook

import (
	"testing"
	"time"

	"github.com/radieske/ticket-shop-poc/internal/oddsfeed"
)

func intp(v int) *int { return &v }

func floatp(v float64) *float64 { return &v }

func game(sportKey, title, home, away string, commence time.Time, bms ...oddsfeed.Bookmaker) oddsfeed.Game {
	return oddsfeed.Game{
		SportKey:     sportKey,
		SportTitle:   title,
		HomeTeam:     home,
		AwayTeam:     away,
		CommenceTime: commence,
		Bookmakers:   bms,
	}
}

func fullBookmaker(home, away string) oddsfeed.Bookmaker {
	return oddsfeed.Bookmaker{
		Key: "draftkings",
		Markets: []oddsfeed.Market{
			{Key: "h2h", Outcomes: []oddsfeed.Outcome{
				{Name: home, Price: intp(-150)},
				{Name: away, Price: intp(130)},
			}},
			{Key: "totals", Outcomes: []oddsfeed.Outcome{
				{Name: "Over", Price: intp(-110), Point: floatp(8.5)},
				{Name: "Under", Price: intp(-110), Point: floatp(8.5)},
			}},
		},
	}
}

func TestNormalize_Ordering(t *testing.T) {
	early := time.Date(2026, 8, 28, 17, 0, 0, 0, time.UTC)
	late := time.Date(2026, 8, 28, 23, 0, 0, 0, time.UTC)

	games := []oddsfeed.Game{
		game("basketball_nba", "NBA", "Lakers", "Suns", late),
		game("baseball_mlb", "MLB", "Yankees", "Red Sox", late),
		game("baseball_mlb", "MLB", "Cubs", "Mets", early),
	}

	lines := Normalize(games)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	// MLB antes de NBA; dentro de MLB, jogo mais cedo primeiro
	if lines[0].HomeTeam != "Cubs" || lines[1].HomeTeam != "Yankees" || lines[2].HomeTeam != "Lakers" {
		t.Errorf("wrong order: %s, %s, %s", lines[0].HomeTeam, lines[1].HomeTeam, lines[2].HomeTeam)
	}
}

func TestNormalize_ExtractsFirstBookmakerOnly(t *testing.T) {
	other := oddsfeed.Bookmaker{
		Key: "fanduel",
		Markets: []oddsfeed.Market{
			{Key: "h2h", Outcomes: []oddsfeed.Outcome{
				{Name: "Yankees", Price: intp(-999)},
				{Name: "Red Sox", Price: intp(999)},
			}},
		},
	}
	g := game("baseball_mlb", "MLB", "Yankees", "Red Sox", time.Now(),
		fullBookmaker("Yankees", "Red Sox"), other)

	lines := Normalize([]oddsfeed.Game{g})
	gl := lines[0]

	if gl.HomeML == nil || *gl.HomeML != -150 {
		t.Errorf("home ML = %v, want -150 from first bookmaker", gl.HomeML)
	}
	if gl.AwayML == nil || *gl.AwayML != 130 {
		t.Errorf("away ML = %v, want 130", gl.AwayML)
	}
	if gl.Points == nil || *gl.Points != 8.5 {
		t.Errorf("points = %v, want 8.5", gl.Points)
	}
	if gl.Over == nil || *gl.Over != -110 || gl.Under == nil || *gl.Under != -110 {
		t.Errorf("over/under = %v/%v, want -110/-110", gl.Over, gl.Under)
	}
}

func TestNormalize_MissingMarketsYieldNilPrices(t *testing.T) {
	g := game("icehockey_nhl", "NHL", "Bruins", "Rangers", time.Now())
	gl := Normalize([]oddsfeed.Game{g})[0]

	if gl.HomeML != nil || gl.AwayML != nil || gl.Over != nil || gl.Under != nil || gl.Points != nil {
		t.Error("game without bookmakers should keep all prices nil")
	}
	// a linha continua presente para ser codificada mesmo sem preço
	if gl.HomeTeam != "Bruins" || gl.AwayTeam != "Rangers" {
		t.Error("teams should survive normalization")
	}
}

func TestNormalize_PointsFallsBackToUnder(t *testing.T) {
	g := game("baseball_mlb", "MLB", "Yankees", "Red Sox", time.Now(), oddsfeed.Bookmaker{
		Markets: []oddsfeed.Market{
			{Key: "totals", Outcomes: []oddsfeed.Outcome{
				{Name: "Under", Price: intp(-105), Point: floatp(9.5)},
			}},
		},
	})
	gl := Normalize([]oddsfeed.Game{g})[0]
	if gl.Points == nil || *gl.Points != 9.5 {
		t.Errorf("points = %v, want 9.5 taken from Under side", gl.Points)
	}
}
