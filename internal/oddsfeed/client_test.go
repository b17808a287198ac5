package oddsfeed

import (
	"testing"
	"time"
)

func TestNormalizeScore_NamedList(t *testing.T) {
	r := rawScore{
		SportKey:     "basketball_nba",
		HomeTeam:     "Boston Celtics",
		AwayTeam:     "Miami Heat",
		Completed:    true,
		CommenceTime: time.Date(2026, 8, 27, 23, 0, 0, 0, time.UTC),
		Scores: []rawScoreEntry{
			{Name: "Miami Heat", Score: "101"},
			{Name: "Boston Celtics", Score: "110"},
		},
	}

	g := normalizeScore(r)
	if g.HomeScore != 110 || g.AwayScore != 101 {
		t.Errorf("got home=%v away=%v, want 110/101", g.HomeScore, g.AwayScore)
	}
}

func TestNormalizeScore_FlatFields(t *testing.T) {
	hs, as := 3.0, 2.0
	r := rawScore{
		HomeTeam:  "Yankees",
		AwayTeam:  "Red Sox",
		Completed: true,
		HomeScore: &hs,
		AwayScore: &as,
	}

	g := normalizeScore(r)
	if g.HomeScore != 3 || g.AwayScore != 2 {
		t.Errorf("got home=%v away=%v, want 3/2", g.HomeScore, g.AwayScore)
	}
}

func TestNormalizeScore_MissingDefaultsToZero(t *testing.T) {
	g := normalizeScore(rawScore{HomeTeam: "A", AwayTeam: "B"})
	if g.HomeScore != 0 || g.AwayScore != 0 {
		t.Errorf("missing scores should default to 0, got %v/%v", g.HomeScore, g.AwayScore)
	}

	// entrada com score não numérico é ignorada
	g = normalizeScore(rawScore{
		HomeTeam: "A",
		AwayTeam: "B",
		Scores:   []rawScoreEntry{{Name: "A", Score: "n/a"}},
	})
	if g.HomeScore != 0 {
		t.Errorf("unparsable score should stay 0, got %v", g.HomeScore)
	}
}
