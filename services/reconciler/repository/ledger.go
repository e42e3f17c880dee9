// Package repository implements the off-chain ledger over PostgreSQL.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cryda/reconciler/internal/pkg/models"
)

// LedgerRepository persists provisional and confirmed ride and booking rows.
// Every mutation addresses its row by the off-chain id assigned at creation,
// so a resumed reconciliation patches the original row instead of inserting
// a duplicate.
type LedgerRepository struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewLedgerRepository(cfg *models.Config, db *sqlx.DB) *LedgerRepository {
	return &LedgerRepository{
		cfg: cfg,
		db:  db,
	}
}

const rideColumns = `
	id, driver_id, start_location_label, end_location_label, departure_time,
	price_per_seat, total_seats, payment_method, driver_name, car_type,
	number_plate, status, blockchain_id, blockchain_tx_hash, failure_reason,
	created_at, updated_at`

const bookingColumns = `
	id, ride_id, passenger_id, seats_booked, total_amount, payment_method,
	status, blockchain_id, blockchain_tx_hash, failure_reason,
	created_at, updated_at`

// CreateProvisionalRide inserts the write-ahead row for a ride. The row is
// created in provisional status before any chain submission happens.
func (r *LedgerRepository) CreateProvisionalRide(ctx context.Context, intent models.RideIntent) (*models.RideRecord, error) {
	now := time.Now().UTC()
	record := &models.RideRecord{
		ID:            uuid.New(),
		DriverID:      intent.DriverID,
		StartLocation: intent.StartLocation,
		EndLocation:   intent.EndLocation,
		DepartureTime: intent.DepartureTime,
		PricePerSeat:  intent.PricePerSeat,
		TotalSeats:    intent.TotalSeats,
		PaymentMethod: intent.PaymentMethod,
		DriverName:    intent.DriverName,
		CarType:       intent.CarType,
		NumberPlate:   intent.NumberPlate,
		Status:        models.StatusProvisional,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	query := `
		INSERT INTO rides (
			id, driver_id, start_location_label, end_location_label, departure_time,
			price_per_seat, total_seats, payment_method, driver_name, car_type,
			number_plate, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		record.ID,
		record.DriverID,
		record.StartLocation,
		record.EndLocation,
		record.DepartureTime,
		record.PricePerSeat,
		record.TotalSeats,
		record.PaymentMethod,
		record.DriverName,
		record.CarType,
		record.NumberPlate,
		record.Status,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return record, nil
}

// CreateProvisionalBooking inserts the write-ahead row for a booking.
func (r *LedgerRepository) CreateProvisionalBooking(ctx context.Context, intent models.BookingIntent) (*models.BookingRecord, error) {
	now := time.Now().UTC()
	record := &models.BookingRecord{
		ID:            uuid.New(),
		RideID:        intent.RideID,
		PassengerID:   intent.PassengerID,
		SeatsBooked:   intent.SeatsToBook,
		TotalAmount:   intent.TotalAmount,
		PaymentMethod: intent.PaymentMethod,
		Status:        models.StatusProvisional,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	query := `
		INSERT INTO bookings (
			id, ride_id, passenger_id, seats_booked, total_amount, payment_method,
			status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		record.ID,
		record.RideID,
		record.PassengerID,
		record.SeatsBooked,
		record.TotalAmount,
		record.PaymentMethod,
		record.Status,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return record, nil
}

// PatchRideWithChainResult promotes a ride row to confirmed, recording the
// chain id and transaction hash in the same statement.
func (r *LedgerRepository) PatchRideWithChainResult(ctx context.Context, id uuid.UUID, chainID int64, txHash string) error {
	return r.patchWithChainResult(ctx, "rides", id, chainID, txHash)
}

// PatchBookingWithChainResult promotes a booking row to confirmed.
func (r *LedgerRepository) PatchBookingWithChainResult(ctx context.Context, id uuid.UUID, chainID int64, txHash string) error {
	return r.patchWithChainResult(ctx, "bookings", id, chainID, txHash)
}

func (r *LedgerRepository) patchWithChainResult(ctx context.Context, table string, id uuid.UUID, chainID int64, txHash string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET status = $1, blockchain_id = $2, blockchain_tx_hash = $3, failure_reason = NULL, updated_at = $4
		WHERE id = $5
	`, table)

	result, err := r.db.ExecContext(ctx, query, models.StatusConfirmed, chainID, txHash, time.Now().UTC(), id)
	if err != nil {
		return err
	}

	return requireOneRow(result, table, id)
}

// UpdateRideStatus moves a ride row to a terminal status with a reason.
func (r *LedgerRepository) UpdateRideStatus(ctx context.Context, id uuid.UUID, status models.RecordStatus, reason string) error {
	return r.updateStatus(ctx, "rides", id, status, reason)
}

// UpdateBookingStatus moves a booking row to a terminal status with a reason.
func (r *LedgerRepository) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status models.RecordStatus, reason string) error {
	return r.updateStatus(ctx, "bookings", id, status, reason)
}

func (r *LedgerRepository) updateStatus(ctx context.Context, table string, id uuid.UUID, status models.RecordStatus, reason string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET status = $1, failure_reason = $2, updated_at = $3
		WHERE id = $4
	`, table)

	var failureReason sql.NullString
	if reason != "" {
		failureReason = sql.NullString{String: reason, Valid: true}
	}

	result, err := r.db.ExecContext(ctx, query, status, failureReason, time.Now().UTC(), id)
	if err != nil {
		return err
	}

	return requireOneRow(result, table, id)
}

// GetRideByID retrieves a ride row by its off-chain id.
func (r *LedgerRepository) GetRideByID(ctx context.Context, id uuid.UUID) (*models.RideRecord, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE id = $1`

	var record models.RideRecord
	if err := r.db.GetContext(ctx, &record, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("ride %s not found: %w", id, err)
		}
		return nil, err
	}

	return &record, nil
}

// GetBookingByID retrieves a booking row by its off-chain id.
func (r *LedgerRepository) GetBookingByID(ctx context.Context, id uuid.UUID) (*models.BookingRecord, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var record models.BookingRecord
	if err := r.db.GetContext(ctx, &record, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("booking %s not found: %w", id, err)
		}
		return nil, err
	}

	return &record, nil
}

// ListOpenRides returns confirmed rides with a departure time in the future.
// Provisional rows are excluded so unconfirmed rides never surface as bookable.
func (r *LedgerRepository) ListOpenRides(ctx context.Context) ([]*models.RideRecord, error) {
	query := `
		SELECT ` + rideColumns + `
		FROM rides
		WHERE status = $1 AND departure_time > $2
		ORDER BY departure_time ASC
	`

	var records []*models.RideRecord
	if err := r.db.SelectContext(ctx, &records, query, models.StatusConfirmed, time.Now().UTC()); err != nil {
		return nil, err
	}

	return records, nil
}

// ListRidesByDriver returns all ride rows for a driver, newest first. The
// driver sees their provisional and failed rows too.
func (r *LedgerRepository) ListRidesByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.RideRecord, error) {
	query := `
		SELECT ` + rideColumns + `
		FROM rides
		WHERE driver_id = $1
		ORDER BY created_at DESC
	`

	var records []*models.RideRecord
	if err := r.db.SelectContext(ctx, &records, query, driverID); err != nil {
		return nil, err
	}

	return records, nil
}

// ListBookingsByPassenger returns all booking rows for a passenger, newest
// first.
func (r *LedgerRepository) ListBookingsByPassenger(ctx context.Context, passengerID uuid.UUID) ([]*models.BookingRecord, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE passenger_id = $1
		ORDER BY created_at DESC
	`

	var records []*models.BookingRecord
	if err := r.db.SelectContext(ctx, &records, query, passengerID); err != nil {
		return nil, err
	}

	return records, nil
}

// ListStaleProvisionalRides returns provisional ride rows created before
// cutoff. Rows in this state need an operator decision, never an automatic
// failure mark, because the chain transaction may still land.
func (r *LedgerRepository) ListStaleProvisionalRides(ctx context.Context, cutoff time.Time) ([]*models.RideRecord, error) {
	query := `
		SELECT ` + rideColumns + `
		FROM rides
		WHERE status = $1 AND created_at < $2
		ORDER BY created_at ASC
	`

	var records []*models.RideRecord
	if err := r.db.SelectContext(ctx, &records, query, models.StatusProvisional, cutoff); err != nil {
		return nil, err
	}

	return records, nil
}

// ListStaleProvisionalBookings returns provisional booking rows created
// before cutoff.
func (r *LedgerRepository) ListStaleProvisionalBookings(ctx context.Context, cutoff time.Time) ([]*models.BookingRecord, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE status = $1 AND created_at < $2
		ORDER BY created_at ASC
	`

	var records []*models.BookingRecord
	if err := r.db.SelectContext(ctx, &records, query, models.StatusProvisional, cutoff); err != nil {
		return nil, err
	}

	return records, nil
}

func requireOneRow(result sql.Result, table string, id uuid.UUID) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("no %s row with id %s", table, id)
	}
	return nil
}
