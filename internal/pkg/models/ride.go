package models

import (
	"time"

	"github.com/google/uuid"
)

// RideIntent is the validated input for creating a ride. Immutable once
// submitted to the orchestrator.
type RideIntent struct {
	DriverID      uuid.UUID     `json:"driver_id"`
	StartLocation string        `json:"start_location"`
	EndLocation   string        `json:"end_location"`
	DepartureTime time.Time     `json:"departure_time"`
	PricePerSeat  string        `json:"price_per_seat"`
	TotalSeats    int           `json:"total_seats"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	DriverName    string        `json:"driver_name"`
	CarType       string        `json:"car_type"`
	NumberPlate   string        `json:"number_plate"`
}

// RideRecord is the off-chain ledger row for a ride. The off-chain ID is
// assigned before any chain call and never reused; BlockchainID is a secondary
// key populated only once the record is confirmed.
type RideRecord struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	DriverID      uuid.UUID     `json:"driver_id" db:"driver_id"`
	StartLocation string        `json:"start_location" db:"start_location_label"`
	EndLocation   string        `json:"end_location" db:"end_location_label"`
	DepartureTime time.Time     `json:"departure_time" db:"departure_time"`
	PricePerSeat  string        `json:"price_per_seat" db:"price_per_seat"`
	TotalSeats    int           `json:"total_seats" db:"total_seats"`
	PaymentMethod PaymentMethod `json:"payment_method" db:"payment_method"`
	DriverName    string        `json:"driver_name" db:"driver_name"`
	CarType       string        `json:"car_type" db:"car_type"`
	NumberPlate   string        `json:"number_plate" db:"number_plate"`
	Status        RecordStatus  `json:"status" db:"status"`
	BlockchainID  *int64        `json:"blockchain_id,omitempty" db:"blockchain_id"`
	TxHash        *string       `json:"blockchain_tx_hash,omitempty" db:"blockchain_tx_hash"`
	FailureReason *string       `json:"failure_reason,omitempty" db:"failure_reason"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`
}
