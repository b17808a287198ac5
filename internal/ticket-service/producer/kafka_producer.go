package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/radieske/ticket-shop-poc/pkg/contracts/events"
)

// KafkaPublisher emite os eventos de ticket nos tópicos do serviço.
type KafkaPublisher struct {
	PlacedWriter  *kafka.Writer
	SettledWriter *kafka.Writer
}

func NewKafkaPublisher(placed, settled *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{PlacedWriter: placed, SettledWriter: settled}
}

func (p *KafkaPublisher) PublishTicketPlaced(ctx context.Context, e events.TicketPlaced) error {
	e.TsUnixMs = time.Now().UnixMilli()
	b, _ := json.Marshal(e)
	return p.PlacedWriter.WriteMessages(ctx, kafka.Message{Key: []byte(e.TicketID), Value: b})
}

func (p *KafkaPublisher) PublishTicketSettled(ctx context.Context, e events.TicketSettled) error {
	b, _ := json.Marshal(e)
	return p.SettledWriter.WriteMessages(ctx, kafka.Message{Key: []byte(e.TicketID), Value: b})
}
