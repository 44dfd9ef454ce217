package tracking

import (
	"context"

	"github.com/ncastellanos/flotilla/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ncastellanos/flotilla/services/tracking TrackingRepo

// TrackingRepo is the location ledger: exactly one current record per
// driver, each write replacing the previous one.
type TrackingRepo interface {
	UpsertLocation(ctx context.Context, record *models.LocationRecord) error
	GetLocation(ctx context.Context, driverID string) (*models.LocationRecord, error)
	ListAll(ctx context.Context) ([]models.LocationRecord, error)
	ListTransmitting(ctx context.Context) ([]models.LocationRecord, error)
	SetTransmitting(ctx context.Context, driverID string, transmitting bool) error
}
