package reconciler

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cryda/reconciler/internal/pkg/models"
)

// LedgerRepo defines the off-chain record store. Every update addresses its
// row by explicit id so reconciliation can resume after delay or restart.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/cryda/reconciler/services/reconciler LedgerRepo
type LedgerRepo interface {
	CreateProvisionalRide(ctx context.Context, intent models.RideIntent) (*models.RideRecord, error)
	CreateProvisionalBooking(ctx context.Context, intent models.BookingIntent) (*models.BookingRecord, error)

	PatchRideWithChainResult(ctx context.Context, id uuid.UUID, chainID int64, txHash string) error
	PatchBookingWithChainResult(ctx context.Context, id uuid.UUID, chainID int64, txHash string) error

	UpdateRideStatus(ctx context.Context, id uuid.UUID, status models.RecordStatus, reason string) error
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, status models.RecordStatus, reason string) error

	GetRideByID(ctx context.Context, id uuid.UUID) (*models.RideRecord, error)
	GetBookingByID(ctx context.Context, id uuid.UUID) (*models.BookingRecord, error)

	ListOpenRides(ctx context.Context) ([]*models.RideRecord, error)
	ListRidesByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.RideRecord, error)
	ListBookingsByPassenger(ctx context.Context, passengerID uuid.UUID) ([]*models.BookingRecord, error)

	ListStaleProvisionalRides(ctx context.Context, cutoff time.Time) ([]*models.RideRecord, error)
	ListStaleProvisionalBookings(ctx context.Context, cutoff time.Time) ([]*models.BookingRecord, error)
}
