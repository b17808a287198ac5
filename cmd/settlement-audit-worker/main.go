package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	saDto "github.com/radieske/ticket-shop-poc/internal/settlement-audit/dto"
	"github.com/radieske/ticket-shop-poc/internal/shared/config"
	"github.com/radieske/ticket-shop-poc/internal/shared/db"
	"github.com/radieske/ticket-shop-poc/internal/shared/kafka"
	"github.com/radieske/ticket-shop-poc/internal/shared/logger"
	"github.com/radieske/ticket-shop-poc/internal/shared/metrics"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Conexão com banco de dados Postgres para o trilho de auditoria
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("pg connect", zap.Error(err))
	}
	defer pg.Close()

	// Kafka consumer: consome eventos ticket_settled
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  strings.Split(cfg.KafkaBrokers, ","),
		GroupID:  "settlement-audit",
		Topic:    cfg.TopicTicketSettled,
		MinBytes: 1e3,
		MaxBytes: 10e6,
	})
	defer reader.Close()

	// DLQ para mensagens que não conseguimos registrar
	var dlqWriter *kafkago.Writer
	if cfg.TopicTicketSettledDLQ != "" {
		dlqWriter = kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicTicketSettledDLQ)
		defer dlqWriter.Close()
	}

	// Servidor de métricas Prometheus e healthcheck
	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		return pg.PingContext(ctx)
	})

	log.Info("settlement-audit-worker started",
		zap.String("consume", cfg.TopicTicketSettled),
	)

	ctx := context.Background()

	// Loop principal: consome eventos e grava a transição no trilho de auditoria
	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			log.Warn("kafka read", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		var settled saDto.TicketSettled
		if jerr := json.Unmarshal(msg.Value, &settled); jerr != nil {
			log.Error("unmarshal ticket_settled", zap.Error(jerr))
			if dlqWriter != nil {
				_ = kafka.WriteJSON(ctx, dlqWriter, string(msg.Key), msg.Value)
			}
			continue
		}

		if err := insertTransition(ctx, pg, &settled); err != nil {
			log.Error("audit insert", zap.String("ticketId", settled.TicketID), zap.Error(err))
			if dlqWriter != nil {
				_ = kafka.WriteJSON(ctx, dlqWriter, settled.TicketID, msg.Value)
			}
			// Backoff simples para evitar flood em caso de erro
			time.Sleep(500 * time.Millisecond)
		}
	}
}

// insertTransition registra uma transição de status de ticket no trilho de
// auditoria. Idempotente por (ticket_id, new_status): reentrega do Kafka não
// duplica a linha.
func insertTransition(ctx context.Context, pg *sql.DB, e *saDto.TicketSettled) error {
	ts := e.Ts
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := pg.ExecContext(ctx, `
		INSERT INTO ticket_transactions (ticket_id, user_id, old_status, new_status, balance_delta, mode, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (ticket_id, new_status) DO NOTHING`,
		e.TicketID, e.UserID, e.OldStatus, e.NewStatus, e.BalanceDelta, e.Mode, ts)
	return err
}
