package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Black-And-White-Club/clip-arena/pkg/attr"
	"github.com/ThreeDotsLabs/watermill"
	wmnats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	nc "github.com/nats-io/nats.go"
)

// NATSBus is an EventBus over core NATS subjects. JetStream is off: events are
// best-effort, and subscribers share a queue group so each event is handled
// once per deployment.
type NATSBus struct {
	publisher  *wmnats.Publisher
	subscriber *wmnats.Subscriber
}

// natsConfigs builds the publisher and subscriber configuration for url.
func natsConfigs(url, queueGroup string) (wmnats.PublisherConfig, wmnats.SubscriberConfig) {
	marshaler := &wmnats.NATSMarshaler{}
	options := []nc.Option{
		nc.Name("clip-arena"),
		nc.RetryOnFailedConnect(true),
		nc.MaxReconnects(-1),
		nc.ReconnectWait(2 * time.Second),
	}

	pub := wmnats.PublisherConfig{
		URL:         url,
		NatsOptions: options,
		Marshaler:   marshaler,
		JetStream:   wmnats.JetStreamConfig{Disabled: true},
	}
	sub := wmnats.SubscriberConfig{
		URL:              url,
		QueueGroupPrefix: queueGroup,
		SubscribersCount: 1,
		CloseTimeout:     10 * time.Second,
		AckWaitTimeout:   30 * time.Second,
		NatsOptions:      options,
		Unmarshaler:      marshaler,
		JetStream:        wmnats.JetStreamConfig{Disabled: true},
	}
	return pub, sub
}

// NewNATS connects a watermill publisher and subscriber to url.
func NewNATS(url, queueGroup string, logger *slog.Logger) (*NATSBus, error) {
	watermillLogger := watermill.NewSlogLogger(logger)
	pubConfig, subConfig := natsConfigs(url, queueGroup)

	publisher, err := wmnats.NewPublisher(pubConfig, watermillLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}

	subscriber, err := wmnats.NewSubscriber(subConfig, watermillLogger)
	if err != nil {
		_ = publisher.Close()
		return nil, fmt.Errorf("failed to create NATS subscriber: %w", err)
	}

	logger.Info("Connected to NATS",
		attr.String("url", url),
		attr.String("queue_group", queueGroup),
	)
	return &NATSBus{publisher: publisher, subscriber: subscriber}, nil
}

func (b *NATSBus) Publish(topic string, messages ...*message.Message) error {
	return b.publisher.Publish(topic, messages...)
}

func (b *NATSBus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.subscriber.Subscribe(ctx, topic)
}

// Close closes the subscriber first so in-flight handlers drain before the
// publisher connection goes away.
func (b *NATSBus) Close() error {
	return errors.Join(b.subscriber.Close(), b.publisher.Close())
}
