package nats

import (
	"encoding/json"
	"fmt"

	"github.com/ncastellanos/flotilla/internal/pkg/constants"
	natspkg "github.com/ncastellanos/flotilla/internal/pkg/nats"

	"github.com/ncastellanos/flotilla/internal/pkg/models"
	ws "github.com/ncastellanos/flotilla/internal/pkg/websocket"
)

// NatsHandler consumes tracking events from the bus and fans them out
// to connected WebSocket clients. Each server instance subscribes
// without a queue group so every instance relays to its own clients.
type NatsHandler struct {
	client    *natspkg.Client
	manager   *ws.Manager
	consumers []*natspkg.Consumer
}

// NewNatsHandler creates a new tracking NATS handler
func NewNatsHandler(client *natspkg.Client, manager *ws.Manager) *NatsHandler {
	return &NatsHandler{
		client:  client,
		manager: manager,
	}
}

// InitConsumers subscribes to all tracking subjects
func (h *NatsHandler) InitConsumers() error {
	subjects := map[string]natspkg.MessageHandler{
		constants.SubjectLocationUpdate:      h.handleLocationUpdate,
		constants.SubjectTransmissionStatus:  h.handleTransmissionStatus,
		constants.SubjectTransmissionStopped: h.handleTransmissionStopped,
	}

	for subject, handler := range subjects {
		consumer, err := natspkg.NewConsumer(h.client, subject, "", handler)
		if err != nil {
			return fmt.Errorf("failed to init consumer for %s: %w", subject, err)
		}
		h.consumers = append(h.consumers, consumer)
	}
	return nil
}

// Stop unsubscribes all consumers
func (h *NatsHandler) Stop() {
	for _, consumer := range h.consumers {
		_ = consumer.Stop()
	}
}

// handleLocationUpdate relays a position change to every viewer except
// the originating driver.
func (h *NatsHandler) handleLocationUpdate(message []byte) error {
	var event models.LocationEvent
	if err := json.Unmarshal(message, &event); err != nil {
		return fmt.Errorf("failed to parse location event: %w", err)
	}

	h.manager.Broadcast(constants.EventLocationUpdate, event, event.DriverID)
	return nil
}

func (h *NatsHandler) handleTransmissionStatus(message []byte) error {
	var event models.TransmissionStatusEvent
	if err := json.Unmarshal(message, &event); err != nil {
		return fmt.Errorf("failed to parse transmission status event: %w", err)
	}

	h.manager.Broadcast(constants.EventTransmissionStatus, event, event.DriverID)
	return nil
}

func (h *NatsHandler) handleTransmissionStopped(message []byte) error {
	var event models.TransmissionStoppedEvent
	if err := json.Unmarshal(message, &event); err != nil {
		return fmt.Errorf("failed to parse transmission stopped event: %w", err)
	}

	h.manager.Broadcast(constants.EventTransmissionStopped, event, event.DriverID)
	return nil
}
