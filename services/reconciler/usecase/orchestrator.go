// Package usecase implements the dual-ledger reconciliation logic: every ride
// lifecycle action is written ahead to the off-chain ledger, submitted to the
// chain, and patched back with the chain result.
package usecase

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"github.com/cryda/reconciler/internal/pkg/apperrors"
	"github.com/cryda/reconciler/internal/pkg/logger"
	"github.com/cryda/reconciler/internal/pkg/models"
	"github.com/cryda/reconciler/services/reconciler"
	"github.com/cryda/reconciler/services/reconciler/txbuilder"
)

type reconcilerUC struct {
	cfg     *models.Config
	repo    reconciler.LedgerRepo
	chainGW reconciler.ChainGW
	events  reconciler.EventsGW
	cache   reconciler.Cache
	builder *txbuilder.Builder
}

// NewReconcilerUC creates the reconciliation use case.
func NewReconcilerUC(
	cfg *models.Config,
	repo reconciler.LedgerRepo,
	chainGW reconciler.ChainGW,
	events reconciler.EventsGW,
	cache reconciler.Cache,
	builder *txbuilder.Builder,
) (reconciler.ReconcilerUC, error) {
	if builder == nil {
		return nil, fmt.Errorf("transaction builder is required")
	}
	return &reconcilerUC{
		cfg:     cfg,
		repo:    repo,
		chainGW: chainGW,
		events:  events,
		cache:   cache,
		builder: builder,
	}, nil
}

// Execute drives one action from intent to a consistent dual-ledger state.
func (uc *reconcilerUC) Execute(ctx context.Context, req models.ActionRequest, session reconciler.WalletSession) (*models.ExecutionResult, error) {
	if !session.Connected() {
		return nil, &apperrors.PreconditionError{Reason: "wallet not connected"}
	}

	switch req.Kind {
	case models.ActionCreateRide:
		return uc.executeCreateRide(ctx, req, session)
	case models.ActionBookRide:
		return uc.executeBookRide(ctx, req, session)
	case models.ActionCancelRide, models.ActionCompleteRide:
		return uc.executeRideTransition(ctx, req, session)
	case models.ActionCancelBooking, models.ActionCompleteBooking:
		return uc.executeBookingTransition(ctx, req, session)
	case models.ActionClaimRewards:
		return uc.executeClaimRewards(ctx, session)
	default:
		return nil, &apperrors.ValidationError{Field: "kind", Reason: fmt.Sprintf("unknown action %q", req.Kind)}
	}
}

func (uc *reconcilerUC) executeCreateRide(ctx context.Context, req models.ActionRequest, session reconciler.WalletSession) (*models.ExecutionResult, error) {
	if req.Ride == nil {
		return nil, &apperrors.ValidationError{Field: "ride", Reason: "ride intent is required"}
	}
	if err := validateRideIntent(*req.Ride); err != nil {
		return nil, err
	}

	// Write-ahead: the off-chain id exists before anything chain-side happens.
	record, err := uc.repo.CreateProvisionalRide(ctx, *req.Ride)
	if err != nil {
		return nil, &apperrors.StoreError{Stage: apperrors.StageStore, Op: "create provisional ride", Err: err}
	}

	payloads, err := uc.builder.CreateRide(*req.Ride)
	if err != nil {
		return nil, uc.failRide(ctx, record.ID, err)
	}

	receipt, chainErr := uc.submitAll(ctx, payloads, session)
	if chainErr != nil {
		if ctx.Err() != nil {
			// The transaction may still land; the row stays provisional for
			// a later Resume or operator decision.
			logger.Warn("Ride submission interrupted, record left provisional",
				logger.String("ride_id", record.ID.String()))
			return nil, chainErr
		}
		return nil, uc.failRide(ctx, record.ID, chainErr)
	}

	chainID, derived := chainIDFromReceipt(receipt, receipt.RideID)

	result := &models.ExecutionResult{
		Kind:           models.ActionCreateRide,
		Receipt:        receipt,
		ChainID:        chainID,
		ChainIDDerived: derived,
	}

	if err := uc.repo.PatchRideWithChainResult(ctx, record.ID, int64(chainID), receipt.TxHash); err != nil {
		// Chain succeeded but the mirror did not. Report, never swallow.
		record.Status = models.StatusProvisional
		result.Ride = record
		result.Warning = &apperrors.ReconciliationWarning{
			Stage:  apperrors.StageMirror,
			Op:     "patch ride " + record.ID.String(),
			TxHash: receipt.TxHash,
			Err:    err,
		}
		return result, nil
	}

	confirmed, err := uc.repo.GetRideByID(ctx, record.ID)
	if err != nil {
		record.Status = models.StatusConfirmed
		confirmed = record
	}
	result.Ride = confirmed

	if err := uc.events.PublishRideConfirmed(ctx, confirmed); err != nil {
		logger.Warn("Failed to publish ride confirmed event",
			logger.String("ride_id", record.ID.String()),
			logger.Err(err))
	}

	return result, nil
}

func (uc *reconcilerUC) executeBookRide(ctx context.Context, req models.ActionRequest, session reconciler.WalletSession) (*models.ExecutionResult, error) {
	if req.Booking == nil {
		return nil, &apperrors.ValidationError{Field: "booking", Reason: "booking intent is required"}
	}
	if err := validateBookingIntent(*req.Booking); err != nil {
		return nil, err
	}

	// The ride must be confirmed before it is bookable. The seat bound
	// lives on the stored ride, not the intent, so checking it takes this
	// read; nothing is written before rejection and the contract stays the
	// authoritative seat arbiter.
	ride, err := uc.repo.GetRideByID(ctx, req.Booking.RideID)
	if err != nil {
		return nil, &apperrors.StoreError{Stage: apperrors.StageValidation, Op: "load ride", Err: err}
	}
	if ride.Status != models.StatusConfirmed || ride.BlockchainID == nil {
		return nil, &apperrors.ValidationError{Field: "ride_id", Reason: "ride is not confirmed on chain"}
	}
	if req.Booking.SeatsToBook > ride.TotalSeats {
		return nil, &apperrors.ValidationError{
			Field:  "seats_to_book",
			Reason: fmt.Sprintf("%d seats requested, ride has %d", req.Booking.SeatsToBook, ride.TotalSeats),
		}
	}

	record, err := uc.repo.CreateProvisionalBooking(ctx, *req.Booking)
	if err != nil {
		return nil, &apperrors.StoreError{Stage: apperrors.StageStore, Op: "create provisional booking", Err: err}
	}

	payloads, err := uc.builder.BookRide(*req.Booking, uint64(*ride.BlockchainID))
	if err != nil {
		return nil, uc.failBooking(ctx, record.ID, err)
	}

	receipt, chainErr := uc.submitAll(ctx, payloads, session)
	if chainErr != nil {
		if ctx.Err() != nil {
			logger.Warn("Booking submission interrupted, record left provisional",
				logger.String("booking_id", record.ID.String()))
			return nil, chainErr
		}
		return nil, uc.failBooking(ctx, record.ID, chainErr)
	}

	chainID, derived := chainIDFromReceipt(receipt, receipt.BookingID)

	result := &models.ExecutionResult{
		Kind:           models.ActionBookRide,
		Receipt:        receipt,
		ChainID:        chainID,
		ChainIDDerived: derived,
	}

	if err := uc.repo.PatchBookingWithChainResult(ctx, record.ID, int64(chainID), receipt.TxHash); err != nil {
		record.Status = models.StatusProvisional
		result.Booking = record
		result.Warning = &apperrors.ReconciliationWarning{
			Stage:  apperrors.StageMirror,
			Op:     "patch booking " + record.ID.String(),
			TxHash: receipt.TxHash,
			Err:    err,
		}
		return result, nil
	}

	confirmed, err := uc.repo.GetBookingByID(ctx, record.ID)
	if err != nil {
		record.Status = models.StatusConfirmed
		confirmed = record
	}
	result.Booking = confirmed

	if err := uc.events.PublishBookingConfirmed(ctx, confirmed); err != nil {
		logger.Warn("Failed to publish booking confirmed event",
			logger.String("booking_id", record.ID.String()),
			logger.Err(err))
	}

	return result, nil
}

// executeRideTransition handles cancel/complete for an existing ride. No new
// off-chain row is created; for cancellation the off-chain status is mirrored
// best-effort after the chain accepts it.
func (uc *reconcilerUC) executeRideTransition(ctx context.Context, req models.ActionRequest, session reconciler.WalletSession) (*models.ExecutionResult, error) {
	ride, err := uc.repo.GetRideByID(ctx, req.TargetID)
	if err != nil {
		return nil, &apperrors.StoreError{Stage: apperrors.StageValidation, Op: "load ride", Err: err}
	}
	if ride.BlockchainID == nil {
		return nil, &apperrors.ValidationError{Field: "target_id", Reason: "ride has no chain identity"}
	}

	var payload models.TxPayload
	if req.Kind == models.ActionCancelRide {
		payload, err = uc.builder.CancelRide(uint64(*ride.BlockchainID), req.Reason)
	} else {
		payload, err = uc.builder.CompleteRide(uint64(*ride.BlockchainID))
	}
	if err != nil {
		return nil, err
	}

	receipt, err := uc.chainGW.Submit(ctx, payload, session)
	if err != nil {
		return nil, &apperrors.ChainError{Stage: payload.Stage, Err: err}
	}

	result := &models.ExecutionResult{Kind: req.Kind, Ride: ride, Receipt: receipt}

	if req.Kind == models.ActionCancelRide {
		if err := uc.repo.UpdateRideStatus(ctx, ride.ID, models.StatusCancelled, req.Reason); err != nil {
			result.Warning = &apperrors.ReconciliationWarning{
				Stage:  apperrors.StageMirror,
				Op:     "mirror ride cancellation " + ride.ID.String(),
				TxHash: receipt.TxHash,
				Err:    err,
			}
			return result, nil
		}
		ride.Status = models.StatusCancelled
		if err := uc.events.PublishRecordCancelled(ctx, "ride", ride.ID); err != nil {
			logger.Warn("Failed to publish ride cancelled event",
				logger.String("ride_id", ride.ID.String()),
				logger.Err(err))
		}
	}

	return result, nil
}

func (uc *reconcilerUC) executeBookingTransition(ctx context.Context, req models.ActionRequest, session reconciler.WalletSession) (*models.ExecutionResult, error) {
	booking, err := uc.repo.GetBookingByID(ctx, req.TargetID)
	if err != nil {
		return nil, &apperrors.StoreError{Stage: apperrors.StageValidation, Op: "load booking", Err: err}
	}
	if booking.BlockchainID == nil {
		return nil, &apperrors.ValidationError{Field: "target_id", Reason: "booking has no chain identity"}
	}

	var payload models.TxPayload
	if req.Kind == models.ActionCancelBooking {
		payload, err = uc.builder.CancelBooking(uint64(*booking.BlockchainID), req.Reason)
	} else {
		payload, err = uc.builder.CompleteBooking(uint64(*booking.BlockchainID))
	}
	if err != nil {
		return nil, err
	}

	receipt, err := uc.chainGW.Submit(ctx, payload, session)
	if err != nil {
		return nil, &apperrors.ChainError{Stage: payload.Stage, Err: err}
	}

	result := &models.ExecutionResult{Kind: req.Kind, Booking: booking, Receipt: receipt}

	if req.Kind == models.ActionCancelBooking {
		if err := uc.repo.UpdateBookingStatus(ctx, booking.ID, models.StatusCancelled, req.Reason); err != nil {
			result.Warning = &apperrors.ReconciliationWarning{
				Stage:  apperrors.StageMirror,
				Op:     "mirror booking cancellation " + booking.ID.String(),
				TxHash: receipt.TxHash,
				Err:    err,
			}
			return result, nil
		}
		booking.Status = models.StatusCancelled
		if err := uc.events.PublishRecordCancelled(ctx, "booking", booking.ID); err != nil {
			logger.Warn("Failed to publish booking cancelled event",
				logger.String("booking_id", booking.ID.String()),
				logger.Err(err))
		}
	}

	return result, nil
}

func (uc *reconcilerUC) executeClaimRewards(ctx context.Context, session reconciler.WalletSession) (*models.ExecutionResult, error) {
	payload, err := uc.builder.ClaimRewards()
	if err != nil {
		return nil, err
	}

	receipt, err := uc.chainGW.Submit(ctx, payload, session)
	if err != nil {
		return nil, &apperrors.ChainError{Stage: payload.Stage, Err: err}
	}

	uc.invalidateBalances(ctx, session.Address().Hex())

	return &models.ExecutionResult{Kind: models.ActionClaimRewards, Receipt: receipt}, nil
}

// submitAll sends payloads strictly in order and stops at the first failure,
// so an approval failure never lets the action transaction go out.
func (uc *reconcilerUC) submitAll(ctx context.Context, payloads []models.TxPayload, session reconciler.WalletSession) (*models.ChainReceipt, error) {
	var receipt *models.ChainReceipt
	for _, payload := range payloads {
		var err error
		receipt, err = uc.chainGW.Submit(ctx, payload, session)
		if err != nil {
			return nil, &apperrors.ChainError{Stage: payload.Stage, Err: err}
		}
	}
	return receipt, nil
}

// failRide marks the ride row failed with the chain failure reason. A failed
// secondary write surfaces both errors rather than hiding either.
func (uc *reconcilerUC) failRide(ctx context.Context, id uuid.UUID, cause error) error {
	if err := uc.repo.UpdateRideStatus(ctx, id, models.StatusFailed, cause.Error()); err != nil {
		return errors.Join(cause, &apperrors.StoreError{Stage: apperrors.StageStore, Op: "mark ride failed", Err: err})
	}
	if err := uc.events.PublishRecordFailed(ctx, "ride", id, cause.Error()); err != nil {
		logger.Warn("Failed to publish ride failed event",
			logger.String("ride_id", id.String()),
			logger.Err(err))
	}
	return cause
}

func (uc *reconcilerUC) failBooking(ctx context.Context, id uuid.UUID, cause error) error {
	if err := uc.repo.UpdateBookingStatus(ctx, id, models.StatusFailed, cause.Error()); err != nil {
		return errors.Join(cause, &apperrors.StoreError{Stage: apperrors.StageStore, Op: "mark booking failed", Err: err})
	}
	if err := uc.events.PublishRecordFailed(ctx, "booking", id, cause.Error()); err != nil {
		logger.Warn("Failed to publish booking failed event",
			logger.String("booking_id", id.String()),
			logger.Err(err))
	}
	return cause
}

// chainIDFromReceipt prefers the id parsed from the creation event. The
// hash-derived fallback is unique enough for a secondary key but carries no
// contract-side meaning, which the derived flag signals to callers.
func chainIDFromReceipt(receipt *models.ChainReceipt, eventID *uint64) (uint64, bool) {
	if eventID != nil {
		return *eventID, false
	}
	hash := common.HexToHash(receipt.TxHash)
	// The top bit is cleared so the fallback always fits the signed
	// blockchain_id column.
	return binary.BigEndian.Uint64(hash[:8]) &^ (1 << 63), true
}

func validateRideIntent(intent models.RideIntent) error {
	if intent.DriverID == uuid.Nil {
		return &apperrors.ValidationError{Field: "driver_id", Reason: "must be set"}
	}
	if intent.StartLocation == "" {
		return &apperrors.ValidationError{Field: "start_location", Reason: "must not be empty"}
	}
	if intent.EndLocation == "" {
		return &apperrors.ValidationError{Field: "end_location", Reason: "must not be empty"}
	}
	if !intent.DepartureTime.After(time.Now()) {
		return &apperrors.ValidationError{Field: "departure_time", Reason: "must be in the future"}
	}
	if intent.TotalSeats < 1 {
		return &apperrors.ValidationError{Field: "total_seats", Reason: "must be at least 1"}
	}
	if !intent.PaymentMethod.Valid() {
		return &apperrors.ValidationError{Field: "payment_method", Reason: fmt.Sprintf("unknown method %q", intent.PaymentMethod)}
	}
	if err := txbuilder.ParsePositiveAmount(intent.PricePerSeat); err != nil {
		return &apperrors.ValidationError{Field: "price_per_seat", Reason: err.Error()}
	}
	return nil
}

func validateBookingIntent(intent models.BookingIntent) error {
	if intent.PassengerID == uuid.Nil {
		return &apperrors.ValidationError{Field: "passenger_id", Reason: "must be set"}
	}
	if intent.RideID == uuid.Nil {
		return &apperrors.ValidationError{Field: "ride_id", Reason: "must be set"}
	}
	if intent.SeatsToBook < 1 {
		return &apperrors.ValidationError{Field: "seats_to_book", Reason: "must be at least 1"}
	}
	if !intent.PaymentMethod.Valid() {
		return &apperrors.ValidationError{Field: "payment_method", Reason: fmt.Sprintf("unknown method %q", intent.PaymentMethod)}
	}
	if err := txbuilder.ParsePositiveAmount(intent.TotalAmount); err != nil {
		return &apperrors.ValidationError{Field: "total_amount", Reason: err.Error()}
	}
	return nil
}
