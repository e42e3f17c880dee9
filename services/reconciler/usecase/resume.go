package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cryda/reconciler/internal/pkg/apperrors"
	"github.com/cryda/reconciler/internal/pkg/logger"
	"github.com/cryda/reconciler/internal/pkg/models"
	"github.com/cryda/reconciler/services/reconciler"
)

// Resume replays the chain submission and patch steps for a record left
// provisional. The intent is reconstructed from the stored row, so a resumed
// run converges on the same row instead of inserting a duplicate. A record
// already confirmed returns its existing state without touching the chain.
func (uc *reconcilerUC) Resume(ctx context.Context, kind models.ActionKind, recordID uuid.UUID, session reconciler.WalletSession) (*models.ExecutionResult, error) {
	if !kind.IsCreating() {
		return nil, &apperrors.ValidationError{Field: "kind", Reason: fmt.Sprintf("action %q is not resumable", kind)}
	}
	if !session.Connected() {
		return nil, &apperrors.PreconditionError{Reason: "wallet not connected"}
	}

	if kind == models.ActionCreateRide {
		return uc.resumeRide(ctx, recordID, session)
	}
	return uc.resumeBooking(ctx, recordID, session)
}

func (uc *reconcilerUC) resumeRide(ctx context.Context, recordID uuid.UUID, session reconciler.WalletSession) (*models.ExecutionResult, error) {
	record, err := uc.repo.GetRideByID(ctx, recordID)
	if err != nil {
		return nil, &apperrors.StoreError{Stage: apperrors.StageValidation, Op: "load ride", Err: err}
	}

	switch record.Status {
	case models.StatusConfirmed:
		result := &models.ExecutionResult{Kind: models.ActionCreateRide, Ride: record}
		if record.BlockchainID != nil {
			result.ChainID = uint64(*record.BlockchainID)
		}
		return result, nil
	case models.StatusProvisional:
		// fall through to replay
	default:
		return nil, &apperrors.ValidationError{Field: "record_id", Reason: fmt.Sprintf("cannot resume ride in status %q", record.Status)}
	}

	logger.Info("Resuming provisional ride",
		logger.String("ride_id", record.ID.String()))

	intent := models.RideIntent{
		DriverID:      record.DriverID,
		StartLocation: record.StartLocation,
		EndLocation:   record.EndLocation,
		DepartureTime: record.DepartureTime,
		PricePerSeat:  record.PricePerSeat,
		TotalSeats:    record.TotalSeats,
		PaymentMethod: record.PaymentMethod,
		DriverName:    record.DriverName,
		CarType:       record.CarType,
		NumberPlate:   record.NumberPlate,
	}

	payloads, err := uc.builder.CreateRide(intent)
	if err != nil {
		return nil, uc.failRide(ctx, record.ID, err)
	}

	receipt, chainErr := uc.submitAll(ctx, payloads, session)
	if chainErr != nil {
		if ctx.Err() != nil {
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

func (uc *reconcilerUC) resumeBooking(ctx context.Context, recordID uuid.UUID, session reconciler.WalletSession) (*models.ExecutionResult, error) {
	record, err := uc.repo.GetBookingByID(ctx, recordID)
	if err != nil {
		return nil, &apperrors.StoreError{Stage: apperrors.StageValidation, Op: "load booking", Err: err}
	}

	switch record.Status {
	case models.StatusConfirmed:
		result := &models.ExecutionResult{Kind: models.ActionBookRide, Booking: record}
		if record.BlockchainID != nil {
			result.ChainID = uint64(*record.BlockchainID)
		}
		return result, nil
	case models.StatusProvisional:
		// fall through to replay
	default:
		return nil, &apperrors.ValidationError{Field: "record_id", Reason: fmt.Sprintf("cannot resume booking in status %q", record.Status)}
	}

	ride, err := uc.repo.GetRideByID(ctx, record.RideID)
	if err != nil {
		return nil, &apperrors.StoreError{Stage: apperrors.StageValidation, Op: "load ride", Err: err}
	}
	if ride.BlockchainID == nil {
		return nil, &apperrors.ValidationError{Field: "ride_id", Reason: "ride is not confirmed on chain"}
	}

	logger.Info("Resuming provisional booking",
		logger.String("booking_id", record.ID.String()))

	intent := models.BookingIntent{
		PassengerID:   record.PassengerID,
		RideID:        record.RideID,
		SeatsToBook:   record.SeatsBooked,
		TotalAmount:   record.TotalAmount,
		PaymentMethod: record.PaymentMethod,
	}

	payloads, err := uc.builder.BookRide(intent, uint64(*ride.BlockchainID))
	if err != nil {
		return nil, uc.failBooking(ctx, record.ID, err)
	}

	receipt, chainErr := uc.submitAll(ctx, payloads, session)
	if chainErr != nil {
		if ctx.Err() != nil {
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
