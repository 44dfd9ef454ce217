package gateway

import (
	"context"
	"fmt"

	natspkg "github.com/ncastellanos/flotilla/internal/pkg/nats"

	"github.com/ncastellanos/flotilla/internal/pkg/constants"
	"github.com/ncastellanos/flotilla/internal/pkg/models"
	"github.com/ncastellanos/flotilla/services/tracking"
)

// TrackingGW publishes tracking events over NATS. Publishing is
// fire-and-forget: a dropped event is tolerated because viewers
// reconcile against the ledger on their next pull.
type TrackingGW struct {
	producer *natspkg.Producer
}

// NewTrackingGW creates a new tracking gateway
func NewTrackingGW(client *natspkg.Client) tracking.TrackingGW {
	return &TrackingGW{
		producer: natspkg.NewProducer(client),
	}
}

// PublishLocationUpdate announces a position change
func (g *TrackingGW) PublishLocationUpdate(ctx context.Context, event *models.LocationEvent) error {
	if err := g.producer.Publish(constants.SubjectLocationUpdate, event); err != nil {
		return fmt.Errorf("failed to publish location update: %w", err)
	}
	return nil
}

// PublishTransmissionStatus announces a transmitting flag flip
func (g *TrackingGW) PublishTransmissionStatus(ctx context.Context, event *models.TransmissionStatusEvent) error {
	if err := g.producer.Publish(constants.SubjectTransmissionStatus, event); err != nil {
		return fmt.Errorf("failed to publish transmission status: %w", err)
	}
	return nil
}

// PublishTransmissionStopped announces a teardown; viewers drop the
// driver entirely on receipt.
func (g *TrackingGW) PublishTransmissionStopped(ctx context.Context, event *models.TransmissionStoppedEvent) error {
	if err := g.producer.Publish(constants.SubjectTransmissionStopped, event); err != nil {
		return fmt.Errorf("failed to publish transmission stopped: %w", err)
	}
	return nil
}
