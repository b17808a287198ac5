package codebook

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/ticket-shop-poc/internal/oddsfeed"
)

// Entry é uma linha do livro de códigos: um time em um jogo, com os preços
// correntes. O código é reatribuído a cada refresh, sem garantia de estabilidade
// entre execuções; dentro de uma execução nenhum código se repete.
type Entry struct {
	Code      int       `json:"code"`
	SportKey  string    `json:"sport_key"`
	Sport     string    `json:"sport"`
	Team      string    `json:"team"`
	ML        *int      `json:"ml"`
	Over      *int      `json:"over"`
	Under     *int      `json:"under"`
	Points    *float64  `json:"points"`
	GameTime  time.Time `json:"game_time"`
	CreatedAt time.Time `json:"-"`
}

// OddsFetcher é o colaborador de feed; cada chamada cobre um esporte.
type OddsFetcher interface {
	Odds(ctx context.Context, sportKey string) ([]oddsfeed.Game, error)
}

// CodeStore é a visão de persistência que o refresher precisa.
type CodeStore interface {
	UsedCodes(ctx context.Context) (map[int]struct{}, error)
	UpsertCode(ctx context.Context, e Entry) error
}

// Refresher reconstrói o livro de códigos a partir do feed de odds.
type Refresher struct {
	log   *zap.Logger
	feed  OddsFetcher
	store CodeStore
}

func NewRefresher(log *zap.Logger, feed OddsFetcher, store CodeStore) *Refresher {
	return &Refresher{log: log, feed: feed, store: store}
}

// Refresh busca as odds de todos os esportes configurados, normaliza as linhas
// e atribui códigos. Falha de feed em um esporte é logada e não bloqueia os
// demais; esgotamento de intervalo pula a linha e segue o lote.
func (r *Refresher) Refresh(ctx context.Context) ([]Entry, error) {
	var games []oddsfeed.Game
	for _, sport := range SportKeys() {
		gs, err := r.feed.Odds(ctx, sport)
		if err != nil {
			r.log.Warn("odds fetch failed", zap.String("sport", sport), zap.Error(err))
			continue
		}
		games = append(games, gs...)
	}

	lines := Normalize(games)

	used, err := r.store.UsedCodes(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	book := make([]Entry, 0, len(lines)*2)

	for _, gl := range lines {
		// dois códigos por jogo, visitante antes do mandante
		sides := []struct {
			team string
			ml   *int
		}{
			{gl.AwayTeam, gl.AwayML},
			{gl.HomeTeam, gl.HomeML},
		}
		for _, side := range sides {
			code, ok := NextCode(gl.SportKey, used)
			if !ok {
				// intervalo esgotado ou esporte fora da tabela: pula a linha
				continue
			}
			used[code] = struct{}{}

			e := Entry{
				Code:      code,
				SportKey:  gl.SportKey,
				Sport:     gl.Sport,
				Team:      side.team,
				ML:        side.ml,
				Over:      gl.Over,
				Under:     gl.Under,
				Points:    gl.Points,
				GameTime:  gl.CommenceTime,
				CreatedAt: now,
			}
			if err := r.store.UpsertCode(ctx, e); err != nil {
				return nil, err
			}
			book = append(book, e)
		}
	}

	return book, nil
}
