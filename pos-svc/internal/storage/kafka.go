package storage

import (
	"context"
	"encoding/json"

	"waiterman/pos-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type KafkaTicketPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaTicketPublisher(writer *kafka.Writer) *KafkaTicketPublisher {
	return &KafkaTicketPublisher{Writer: writer}
}

// PublishTicket keys messages by order id so every ticket of one order lands
// on the same partition.
func (p *KafkaTicketPublisher) PublishTicket(ctx context.Context, ticket domain.KitchenTicket) error {
	payload, err := json.Marshal(ticket)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ticket.OrderID),
		Value: payload,
	})
}
