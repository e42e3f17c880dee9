package reconciler

import (
	"context"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/cryda/reconciler/internal/pkg/models"
)

// ChainGW defines the blockchain gateway. Submit is the only open-ended
// blocking boundary: it waits for wallet signing and network inclusion and
// honors context cancellation.
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/cryda/reconciler/services/reconciler ChainGW,EventsGW
type ChainGW interface {
	Submit(ctx context.Context, payload models.TxPayload, session WalletSession) (*models.ChainReceipt, error)

	GetRide(ctx context.Context, rideID uint64) (*models.ChainRide, error)
	GetBooking(ctx context.Context, bookingID uint64) (*models.ChainBooking, error)
	GetUserRides(ctx context.Context, address string) ([]uint64, error)
	GetUserBookings(ctx context.Context, address string) ([]uint64, error)
	GetPendingRewards(ctx context.Context, address string) (*big.Int, error)
	TokenBalance(ctx context.Context, address string) (*big.Int, error)
	NativeBalance(ctx context.Context, address string) (*big.Int, error)
}

// EventsGW publishes ledger lifecycle events for downstream consumers.
type EventsGW interface {
	PublishRideConfirmed(ctx context.Context, ride *models.RideRecord) error
	PublishBookingConfirmed(ctx context.Context, booking *models.BookingRecord) error
	PublishRecordFailed(ctx context.Context, kind string, recordID uuid.UUID, reason string) error
	PublishRecordCancelled(ctx context.Context, kind string, recordID uuid.UUID) error
	PublishReconcileAlert(ctx context.Context, alert models.ReconcileAlert) error
}

// Cache is the read-through cache for chain views. Satisfied by the Redis
// client; a nil cache disables caching.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}
