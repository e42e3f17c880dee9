package models

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/cryda/reconciler/internal/pkg/apperrors"
)

// TxPayload is a chain-ready transaction produced by the transaction builder.
// Stage tags approval transactions apart from the action transaction so
// failures can be attributed precisely.
type TxPayload struct {
	Stage apperrors.Stage
	To    common.Address
	Data  []byte
	Value *big.Int
}

// ChainReceipt is the outcome of a mined transaction. RideID/BookingID are
// populated when the gateway finds the corresponding creation event in the
// receipt logs; absent events leave them nil and the orchestrator falls back
// to a hash-derived placeholder.
type ChainReceipt struct {
	TxHash      string  `json:"tx_hash"`
	Status      uint64  `json:"status"`
	BlockNumber uint64  `json:"block_number"`
	GasUsed     uint64  `json:"gas_used"`
	RideID      *uint64 `json:"ride_id,omitempty"`
	BookingID   *uint64 `json:"booking_id,omitempty"`
}

// Succeeded reports whether the transaction executed without reverting.
func (r *ChainReceipt) Succeeded() bool {
	return r != nil && r.Status == 1
}

// ChainRide is the contract-side view of a ride (getRide outputs).
type ChainRide struct {
	ID             uint64         `json:"id"`
	Driver         common.Address `json:"driver"`
	StartLocation  string         `json:"start_location"`
	EndLocation    string         `json:"end_location"`
	DepartureTime  uint64         `json:"departure_time"`
	PricePerSeat   *big.Int       `json:"price_per_seat"`
	TotalSeats     uint8          `json:"total_seats"`
	AvailableSeats uint8          `json:"available_seats"`
	PaymentMethod  uint8          `json:"payment_method"`
	Active         bool           `json:"active"`
}

// ChainBooking is the contract-side view of a booking (getBooking outputs).
type ChainBooking struct {
	ID         uint64         `json:"id"`
	RideID     uint64         `json:"ride_id"`
	Passenger  common.Address `json:"passenger"`
	Seats      uint8          `json:"seats"`
	AmountPaid *big.Int       `json:"amount_paid"`
	Active     bool           `json:"active"`
}

// Balances is the wallet-facing read bundle the UI shows next to the map.
type Balances struct {
	Address        string `json:"address"`
	Native         string `json:"native"`
	Token          string `json:"token"`
	PendingRewards string `json:"pending_rewards"`
}
