package settlement

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/radieske/ticket-shop-poc/internal/oddsfeed"
	"github.com/radieske/ticket-shop-poc/internal/ticket-service/repo"
	"github.com/radieske/ticket-shop-poc/pkg/oddsmath"
)

// Outcome é o desfecho de um ticket contra os placares finais.
type Outcome int

const (
	Unresolved Outcome = iota // sem jogo concluído ou dado insuficiente; ticket segue aberto
	Win
	Lose
	Void
)

// Status traduz o desfecho para o status persistido do ticket.
func (o Outcome) Status() string {
	switch o {
	case Win:
		return repo.StatusWon
	case Lose:
		return repo.StatusLost
	case Void:
		return repo.StatusVoid
	default:
		return repo.StatusOpen
	}
}

// Resolve determina o desfecho de um ticket a partir dos placares do seu
// esporte. Função pura: quem aplica saldo e status é o chamador.
func Resolve(t repo.Ticket, results []oddsfeed.GameResult) Outcome {
	game := latestCompletedFor(t.Team, results)
	if game == nil {
		return Unresolved
	}

	switch t.Bet {
	case repo.BetML:
		return resolveMoneyline(t.Team, game)
	case repo.BetOver, repo.BetUnder:
		return resolveTotals(t, game)
	default:
		// tipo desconhecido: não arriscar liquidação
		return Unresolved
	}
}

// latestCompletedFor indexa os placares pelo nome do time em minúsculas
// (um time aparece como mandante ou visitante) e escolhe, entre os jogos
// concluídos do time, o de commence_time mais recente. Empate fica com o
// primeiro visto, na ordem de entrada, pra manter o resultado determinístico.
func latestCompletedFor(team string, results []oddsfeed.GameResult) *oddsfeed.GameResult {
	teamLower := strings.ToLower(team)

	var best *oddsfeed.GameResult
	for i := range results {
		g := &results[i]
		if !g.Completed {
			continue
		}
		if strings.ToLower(g.HomeTeam) != teamLower && strings.ToLower(g.AwayTeam) != teamLower {
			continue
		}
		if best == nil || g.CommenceTime.After(best.CommenceTime) {
			best = g
		}
	}
	return best
}

func resolveMoneyline(team string, g *oddsfeed.GameResult) Outcome {
	if g.HomeScore == g.AwayScore {
		return Void
	}

	winner := g.HomeTeam
	if g.AwayScore > g.HomeScore {
		winner = g.AwayTeam
	}
	if strings.EqualFold(winner, team) {
		return Win
	}
	return Lose
}

func resolveTotals(t repo.Ticket, g *oddsfeed.GameResult) Outcome {
	pts, ok := parsePoints(t.Points)
	if !ok {
		// linha de pontos ilegível: deixa aberto pra tentar com dado mais limpo
		return Unresolved
	}

	total := g.HomeScore + g.AwayScore
	switch {
	case total == pts:
		return Void
	case t.Bet == repo.BetOver && total > pts,
		t.Bet == repo.BetUnder && total < pts:
		return Win
	default:
		return Lose
	}
}

// parsePoints aceita ponto ou vírgula como separador decimal.
func parsePoints(raw *string) (float64, bool) {
	if raw == nil {
		return 0, false
	}
	s := strings.ReplaceAll(strings.TrimSpace(*raw), ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Delta calcula o efeito no saldo do agente para um status final:
// vitória paga o lucro ao cliente (saldo cai), derrota retém o stake
// (saldo sobe), void não move saldo.
func Delta(newStatus string, stake decimal.Decimal, price int) decimal.Decimal {
	switch newStatus {
	case repo.StatusWon:
		return oddsmath.Profit(stake, price).Neg()
	case repo.StatusLost:
		return stake
	default:
		return decimal.Zero
	}
}
