package tracking

import (
	"context"

	"github.com/ncastellanos/flotilla/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/ncastellanos/flotilla/services/tracking TrackingGW

// TrackingGW publishes tracking events to the message bus for fan-out
// to connected viewers. Delivery is at most once.
type TrackingGW interface {
	PublishLocationUpdate(ctx context.Context, event *models.LocationEvent) error
	PublishTransmissionStatus(ctx context.Context, event *models.TransmissionStatusEvent) error
	PublishTransmissionStopped(ctx context.Context, event *models.TransmissionStoppedEvent) error
}
