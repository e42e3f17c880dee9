package models

import (
	"github.com/google/uuid"

	"github.com/cryda/reconciler/internal/pkg/apperrors"
)

// ActionKind enumerates the ride lifecycle operations the orchestrator drives.
type ActionKind string

const (
	ActionCreateRide      ActionKind = "create_ride"
	ActionBookRide        ActionKind = "book_ride"
	ActionCancelRide      ActionKind = "cancel_ride"
	ActionCancelBooking   ActionKind = "cancel_booking"
	ActionCompleteRide    ActionKind = "complete_ride"
	ActionCompleteBooking ActionKind = "complete_booking"
	ActionClaimRewards    ActionKind = "claim_rewards"
)

// IsCreating reports whether the action writes a new ledger record ahead of
// the chain call.
func (k ActionKind) IsCreating() bool {
	return k == ActionCreateRide || k == ActionBookRide
}

// PaymentMethod is the closed enumeration of supported payment methods.
type PaymentMethod string

const (
	PaymentNativeCoin   PaymentMethod = "NATIVE_COIN"
	PaymentUtilityToken PaymentMethod = "UTILITY_TOKEN"
)

// Valid reports whether the payment method is part of the closed enumeration.
func (m PaymentMethod) Valid() bool {
	return m == PaymentNativeCoin || m == PaymentUtilityToken
}

// RecordStatus is the lifecycle phase of a ledger record.
type RecordStatus string

const (
	StatusProvisional RecordStatus = "provisional"
	StatusConfirmed   RecordStatus = "confirmed"
	StatusFailed      RecordStatus = "failed"
	StatusCancelled   RecordStatus = "cancelled"
)

// ActionRequest is the single input envelope for orchestrator execution.
// Exactly one of the intent/target fields is meaningful per kind.
type ActionRequest struct {
	Kind    ActionKind     `json:"kind"`
	Ride    *RideIntent    `json:"ride,omitempty"`
	Booking *BookingIntent `json:"booking,omitempty"`

	// TargetID addresses an existing off-chain record for the non-creating
	// actions (cancel/complete).
	TargetID uuid.UUID `json:"target_id,omitempty"`
	Reason   string    `json:"reason,omitempty"`
}

// ExecutionResult is what a completed orchestrator run hands back to the
// caller: the final off-chain record (for record-producing actions), the chain
// receipt, and any reconciliation warning.
type ExecutionResult struct {
	Kind    ActionKind     `json:"kind"`
	Ride    *RideRecord    `json:"ride,omitempty"`
	Booking *BookingRecord `json:"booking,omitempty"`
	Receipt *ChainReceipt  `json:"receipt,omitempty"`

	// ChainID is the contract-side identifier of the created ride/booking.
	// When ChainIDDerived is true it was synthesized from the transaction
	// hash and must not be treated as meaningful beyond uniqueness.
	ChainID        uint64 `json:"chain_id,omitempty"`
	ChainIDDerived bool   `json:"chain_id_derived,omitempty"`

	Warning *apperrors.ReconciliationWarning `json:"-"`
}
