package producer

import (
	"context"

	kafkago "github.com/segmentio/kafka-go"

	"go-folha/internal/messaging/kafka"
)

// publishEvent writes one pending outbox row to its topic. The message
// is keyed by aggregate id so every event of a calculation lands on
// the same partition; the headers let consumers route on event type
// without decoding the payload.
func publishEvent(ctx context.Context, writer *kafkago.Writer, event kafka.OutboxEvent) error {
	msg := kafkago.Message{
		Topic: event.Topic,
		Key:   []byte(event.AggregateID),
		Value: event.Payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "aggregate_type", Value: []byte(event.AggregateType)},
		},
	}

	return writer.WriteMessages(ctx, msg)
}
