package codebook

import (
	"sort"
	"strings"
	"time"

	"github.com/radieske/ticket-shop-poc/internal/oddsfeed"
)

// GameLines é um jogo normalizado pronto para receber códigos:
// um bookmaker escolhido, preços por lado e linha de totais extraídos.
type GameLines struct {
	SportKey     string
	Sport        string // título de exibição
	CommenceTime time.Time
	AwayTeam     string
	HomeTeam     string
	AwayML       *int     // nil quando o mercado não cotou
	HomeML       *int
	Over         *int
	Under        *int
	Points       *float64 // linha de pontos dos totais
}

// Normalize transforma jogos crus do feed em linhas prontas pra codificação.
// Ordena por título do esporte e depois por horário do jogo; a ordem é
// determinística porque define qual time recebe o código mais baixo.
// Usa apenas o primeiro bookmaker de cada jogo; bookmakers não são mesclados.
func Normalize(games []oddsfeed.Game) []GameLines {
	out := make([]GameLines, 0, len(games))
	for _, g := range games {
		gl := GameLines{
			SportKey:     g.SportKey,
			Sport:        sportTitle(g),
			CommenceTime: g.CommenceTime,
			AwayTeam:     g.AwayTeam,
			HomeTeam:     g.HomeTeam,
		}

		if len(g.Bookmakers) > 0 {
			extractQuotes(&gl, g, g.Bookmakers[0])
		}
		out = append(out, gl)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Sport != out[j].Sport {
			return out[i].Sport < out[j].Sport
		}
		return out[i].CommenceTime.Before(out[j].CommenceTime)
	})

	return out
}

// extractQuotes extrai de um bookmaker os preços de moneyline por time e a
// linha de totais. Mercado ausente deixa o preço nil: a linha ainda é
// codificada, mas não aceita aposta até chegar preço.
func extractQuotes(gl *GameLines, g oddsfeed.Game, bm oddsfeed.Bookmaker) {
	for _, m := range bm.Markets {
		switch m.Key {
		case "h2h":
			for _, o := range m.Outcomes {
				switch o.Name {
				case g.AwayTeam:
					gl.AwayML = o.Price
				case g.HomeTeam:
					gl.HomeML = o.Price
				}
			}
		case "totals":
			var overPoint, underPoint *float64
			for _, o := range m.Outcomes {
				name := strings.ToLower(o.Name)
				switch {
				case strings.Contains(name, "over"):
					gl.Over = o.Price
					overPoint = o.Point
				case strings.Contains(name, "under"):
					gl.Under = o.Price
					underPoint = o.Point
				}
			}
			// os dois lados devem concordar na linha; Over tem preferência
			if overPoint != nil {
				gl.Points = overPoint
			} else {
				gl.Points = underPoint
			}
		}
	}
}

func sportTitle(g oddsfeed.Game) string {
	if g.SportTitle != "" {
		return g.SportTitle
	}
	return strings.ToUpper(g.SportKey)
}
