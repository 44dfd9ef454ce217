package nats

import (
	"encoding/json"
	"fmt"
)

// Producer publishes JSON messages through an existing client connection
type Producer struct {
	client *Client
}

// NewProducer creates a new NATS producer
func NewProducer(client *Client) *Producer {
	return &Producer{client: client}
}

// Publish marshals the message and sends it to the specified subject.
// Delivery is fire-and-forget: a lost event is recovered by the
// consumers' periodic pull, never by a retry here.
func (p *Producer) Publish(subject string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := p.client.Publish(subject, msgBytes); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}
