package tracking

import (
	"context"

	"github.com/ncastellanos/flotilla/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ncastellanos/flotilla/services/tracking TrackingUC

// TrackingUC represents the tracking usecase interface
type TrackingUC interface {
	UpdateLocation(ctx context.Context, driverID string, req *models.LocationUpdateRequest) (*models.LocationRecord, error)
	SetTransmissionStatus(ctx context.Context, driverID string, transmitting bool) error
	StopTransmission(ctx context.Context, driverID string) error
	GetDriverLocation(ctx context.Context, driverID string) (*models.LocationRecord, error)
	ListLocations(ctx context.Context) ([]models.LocationRecord, error)
	ListTransmitting(ctx context.Context) ([]models.LocationRecord, error)
}
