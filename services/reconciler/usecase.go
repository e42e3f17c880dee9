package reconciler

import (
	"context"

	"github.com/google/uuid"

	"github.com/cryda/reconciler/internal/pkg/models"
)

// ReconcilerUC defines the interface for the dual-ledger reconciliation logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/cryda/reconciler/services/reconciler ReconcilerUC
type ReconcilerUC interface {
	// Execute drives one ride lifecycle action from intent to a consistent
	// dual-ledger state. Partial failures come back as typed errors; a
	// successful chain result that could not be mirrored off-chain comes
	// back as a result carrying a ReconciliationWarning.
	Execute(ctx context.Context, req models.ActionRequest, session WalletSession) (*models.ExecutionResult, error)

	// Resume replays the chain submission and patch steps for a record left
	// in provisional state, reconstructing the intent from the stored row.
	// It never creates a second off-chain row.
	Resume(ctx context.Context, kind models.ActionKind, recordID uuid.UUID, session WalletSession) (*models.ExecutionResult, error)

	OpenRides(ctx context.Context) ([]*models.RideRecord, error)
	RidesByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.RideRecord, error)
	BookingsByPassenger(ctx context.Context, passengerID uuid.UUID) ([]*models.BookingRecord, error)

	// Balances returns native/token balances and pending rewards for the
	// session account, served through a short-lived cache.
	Balances(ctx context.Context, session WalletSession) (*models.Balances, error)

	// ChainRideView and ChainBookingView read the authoritative contract
	// state for a confirmed record, served through a short-lived cache.
	ChainRideView(ctx context.Context, chainID uint64) (*models.ChainRide, error)
	ChainBookingView(ctx context.Context, chainID uint64) (*models.ChainBooking, error)

	// SweepProvisional reports provisional records older than the
	// configured cutoff. It only alerts; it never transitions a record,
	// since a transaction may still land after the caller stopped waiting.
	SweepProvisional(ctx context.Context) (int, error)
}
