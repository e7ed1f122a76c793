// Package eventbus is the watermill publisher/subscriber pair shared by all modules.
package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Black-And-White-Club/clip-arena/pkg/attr"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// EventBus publishes and subscribes to domain events.
type EventBus interface {
	message.Publisher
	message.Subscriber
}

// NewInMemory returns a bus backed by watermill's gochannel pub/sub. Events
// are lost on restart; used when no NATS URL is configured and in tests.
func NewInMemory(logger *slog.Logger) EventBus {
	return gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 256,
	}, watermill.NewSlogLogger(logger))
}

// NewMessage encodes payload as JSON and stamps the context's correlation id.
func NewMessage(ctx context.Context, payload any) (*message.Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event payload: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	if id := attr.CorrelationIDFromContext(ctx); id != "" {
		msg.Metadata.Set(attr.CorrelationIDKey, id)
	}
	msg.SetContext(ctx)
	return msg, nil
}

// Publish encodes payload and publishes it on topic.
func Publish(ctx context.Context, pub message.Publisher, topic string, payload any) error {
	if pub == nil {
		return nil
	}
	msg, err := NewMessage(ctx, payload)
	if err != nil {
		return err
	}
	if err := pub.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish %s: %w", topic, err)
	}
	return nil
}

// Decode unmarshals a message payload into T.
func Decode[T any](msg *message.Message) (T, error) {
	var out T
	if err := json.Unmarshal(msg.Payload, &out); err != nil {
		return out, fmt.Errorf("failed to unmarshal %T: %w", out, err)
	}
	return out, nil
}

// ContextFromMessage restores the correlation id carried in msg metadata.
func ContextFromMessage(msg *message.Message) context.Context {
	ctx := msg.Context()
	if id := msg.Metadata.Get(attr.CorrelationIDKey); id != "" {
		ctx = attr.WithCorrelationID(ctx, id)
	}
	return ctx
}
