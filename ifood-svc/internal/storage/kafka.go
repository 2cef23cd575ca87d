package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"ifood/ifood-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	Writer MessageWriter
}

func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

// PublishEntityEvent keys messages by entity and id so that events for one
// row stay on one partition.
func (p *KafkaPublisher) PublishEntityEvent(ctx context.Context, event domain.EntityEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Entity + ":" + strconv.FormatInt(event.EntityID, 10)),
		Value: payload,
	})
}
