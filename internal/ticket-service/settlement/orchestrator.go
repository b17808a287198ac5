package settlement

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/radieske/ticket-shop-poc/internal/oddsfeed"
	"github.com/radieske/ticket-shop-poc/internal/ticket-service/repo"
	"github.com/radieske/ticket-shop-poc/pkg/contracts/events"
)

// ScoresFetcher é o colaborador de placares; cada chamada cobre um esporte
// e pode falhar de forma independente.
type ScoresFetcher interface {
	Scores(ctx context.Context, sportKey string) ([]oddsfeed.GameResult, error)
}

// Store é a visão de persistência que a liquidação automática precisa.
type Store interface {
	ListOpenTicketsByUser(ctx context.Context, userID string) ([]repo.Ticket, error)
	SettleTicket(ctx context.Context, userID, ticketID, newStatus string, delta decimal.Decimal) (decimal.Decimal, error)
}

// Publisher emite o evento de auditoria de cada liquidação.
type Publisher interface {
	PublishTicketSettled(ctx context.Context, e events.TicketSettled) error
}

// Result é o retorno parcial de uma rodada de auto-liquidação.
type Result struct {
	Settled int      `json:"settled"`
	IDs     []string `json:"ids"`
}

// Orchestrator liquida os tickets abertos de um usuário contra os placares
// finais do feed, um grupo de esporte por vez.
type Orchestrator struct {
	log   *zap.Logger
	feed  ScoresFetcher
	store Store
	publ  Publisher
}

func NewOrchestrator(log *zap.Logger, feed ScoresFetcher, store Store, publ Publisher) *Orchestrator {
	return &Orchestrator{log: log, feed: feed, store: store, publ: publ}
}

// AutoSettle agrupa os tickets abertos do usuário por esporte, busca os
// placares de cada grupo e resolve ticket a ticket. Falha de feed em um
// esporte é logada e não afeta os outros grupos; o retorno é sempre o
// resultado parcial do que conseguiu liquidar.
func (o *Orchestrator) AutoSettle(ctx context.Context, userID string) (Result, error) {
	open, err := o.store.ListOpenTicketsByUser(ctx, userID)
	if err != nil {
		return Result{}, err
	}

	res := Result{IDs: []string{}}
	if len(open) == 0 {
		return res, nil
	}

	bySport := map[string][]repo.Ticket{}
	for _, t := range open {
		bySport[t.SportKey] = append(bySport[t.SportKey], t)
	}

	for sport, tickets := range bySport {
		scores, err := o.feed.Scores(ctx, sport)
		if err != nil {
			// esporte indisponível: tickets dele continuam abertos
			o.log.Warn("scores fetch failed", zap.String("sport", sport), zap.Error(err))
			continue
		}

		for _, t := range tickets {
			outcome := Resolve(t, scores)
			if outcome == Unresolved {
				continue
			}

			status := outcome.Status()
			delta := Delta(status, t.Stake, t.Price)

			if _, err := o.store.SettleTicket(ctx, userID, t.ID, status, delta); err != nil {
				if errors.Is(err, repo.ErrAlreadySettled) {
					// liquidado por ação manual concorrente; nada a fazer
					continue
				}
				o.log.Error("settle ticket", zap.String("ticketId", t.ID), zap.Error(err))
				continue
			}

			res.Settled++
			res.IDs = append(res.IDs, t.ID)

			if o.publ != nil {
				_ = o.publ.PublishTicketSettled(ctx, events.TicketSettled{
					TicketID:     t.ID,
					UserID:       userID,
					OldStatus:    repo.StatusOpen,
					NewStatus:    status,
					BalanceDelta: delta.String(),
					Mode:         "auto",
					Ts:           time.Now(),
				})
			}
		}
	}

	return res, nil
}
