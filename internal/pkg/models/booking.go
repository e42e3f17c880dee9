package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingIntent is the validated input for booking seats on a confirmed ride.
type BookingIntent struct {
	PassengerID   uuid.UUID     `json:"passenger_id"`
	RideID        uuid.UUID     `json:"ride_id"`
	SeatsToBook   int           `json:"seats_to_book"`
	TotalAmount   string        `json:"total_amount"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}

// BookingRecord is the off-chain ledger row for a booking. A booking
// references exactly one ride; the seat bound is mirrored here but the chain
// layer is the authority on seat allocation.
type BookingRecord struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	RideID        uuid.UUID     `json:"ride_id" db:"ride_id"`
	PassengerID   uuid.UUID     `json:"passenger_id" db:"passenger_id"`
	SeatsBooked   int           `json:"seats_booked" db:"seats_booked"`
	TotalAmount   string        `json:"total_amount" db:"total_amount"`
	PaymentMethod PaymentMethod `json:"payment_method" db:"payment_method"`
	Status        RecordStatus  `json:"status" db:"status"`
	BlockchainID  *int64        `json:"blockchain_id,omitempty" db:"blockchain_id"`
	TxHash        *string       `json:"blockchain_tx_hash,omitempty" db:"blockchain_tx_hash"`
	FailureReason *string       `json:"failure_reason,omitempty" db:"failure_reason"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`
}
