package nats

import (
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/ncastellanos/flotilla/internal/pkg/logger"
)

// MessageHandler is a function that processes NATS messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from NATS subjects
type Consumer struct {
	client       *Client
	subscription *nats.Subscription
}

// NewConsumer subscribes to a subject, optionally in a queue group, and
// dispatches each message to the handler. Handler errors are logged and
// dropped; there is no redelivery.
func NewConsumer(client *Client, subject, queueGroup string, handler MessageHandler) (*Consumer, error) {
	wrapped := func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Debug("Error processing message",
				logger.String("subject", subject),
				logger.String("queue_group", queueGroup),
				logger.Err(err))
		}
	}

	var subscription *nats.Subscription
	var err error
	if queueGroup != "" {
		subscription, err = client.QueueSubscribe(subject, queueGroup, wrapped)
	} else {
		subscription, err = client.Subscribe(subject, wrapped)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject %s: %w", subject, err)
	}

	return &Consumer{
		client:       client,
		subscription: subscription,
	}, nil
}

// Stop unsubscribes the consumer
func (c *Consumer) Stop() error {
	if c.subscription != nil {
		return c.subscription.Unsubscribe()
	}
	return nil
}
