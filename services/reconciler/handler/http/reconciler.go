// Package http exposes the reconciliation use case over HTTP.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/cryda/reconciler/internal/pkg/apperrors"
	"github.com/cryda/reconciler/internal/pkg/logger"
	"github.com/cryda/reconciler/internal/pkg/middleware"
	"github.com/cryda/reconciler/internal/pkg/models"
	"github.com/cryda/reconciler/internal/utils"
	"github.com/cryda/reconciler/services/reconciler"
)

// ReconcilerHandler handles HTTP requests for ride lifecycle actions.
type ReconcilerHandler struct {
	reconcilerUC reconciler.ReconcilerUC
	session      reconciler.WalletSession
}

// NewReconcilerHandler creates a new reconciler HTTP handler.
func NewReconcilerHandler(reconcilerUC reconciler.ReconcilerUC, session reconciler.WalletSession) *ReconcilerHandler {
	return &ReconcilerHandler{
		reconcilerUC: reconcilerUC,
		session:      session,
	}
}

type createRideRequest struct {
	StartLocation string `json:"start_location"`
	EndLocation   string `json:"end_location"`
	DepartureTime string `json:"departure_time"`
	PricePerSeat  string `json:"price_per_seat"`
	TotalSeats    int    `json:"total_seats"`
	PaymentMethod string `json:"payment_method"`
	DriverName    string `json:"driver_name"`
	CarType       string `json:"car_type"`
	NumberPlate   string `json:"number_plate"`
}

type bookRideRequest struct {
	RideID        string `json:"ride_id"`
	SeatsToBook   int    `json:"seats_to_book"`
	TotalAmount   string `json:"total_amount"`
	PaymentMethod string `json:"payment_method"`
}

type transitionRequest struct {
	Reason string `json:"reason"`
}

type resumeRequest struct {
	Kind     string `json:"kind"`
	RecordID string `json:"record_id"`
}

// CreateRide handles the ride creation request.
func (h *ReconcilerHandler) CreateRide(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req createRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	departure, err := time.Parse(time.RFC3339, req.DepartureTime)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid departure_time, expected RFC3339")
	}

	intent := models.RideIntent{
		DriverID:      userID,
		StartLocation: req.StartLocation,
		EndLocation:   req.EndLocation,
		DepartureTime: departure,
		PricePerSeat:  req.PricePerSeat,
		TotalSeats:    req.TotalSeats,
		PaymentMethod: models.PaymentMethod(req.PaymentMethod),
		DriverName:    req.DriverName,
		CarType:       req.CarType,
		NumberPlate:   req.NumberPlate,
	}

	result, err := h.reconcilerUC.Execute(c.Request().Context(), models.ActionRequest{
		Kind: models.ActionCreateRide,
		Ride: &intent,
	}, h.session)
	if err != nil {
		return respondExecutionError(c, err)
	}

	return respondExecutionResult(c, http.StatusCreated, "Ride created", result)
}

// BookRide handles the booking request.
func (h *ReconcilerHandler) BookRide(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req bookRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	rideID, err := uuid.Parse(req.RideID)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride_id")
	}

	intent := models.BookingIntent{
		PassengerID:   userID,
		RideID:        rideID,
		SeatsToBook:   req.SeatsToBook,
		TotalAmount:   req.TotalAmount,
		PaymentMethod: models.PaymentMethod(req.PaymentMethod),
	}

	result, err := h.reconcilerUC.Execute(c.Request().Context(), models.ActionRequest{
		Kind:    models.ActionBookRide,
		Booking: &intent,
	}, h.session)
	if err != nil {
		return respondExecutionError(c, err)
	}

	return respondExecutionResult(c, http.StatusCreated, "Ride booked", result)
}

// CancelRide handles ride cancellation.
func (h *ReconcilerHandler) CancelRide(c echo.Context) error {
	return h.transition(c, models.ActionCancelRide, "rideID", "Ride cancelled")
}

// CompleteRide handles ride completion.
func (h *ReconcilerHandler) CompleteRide(c echo.Context) error {
	return h.transition(c, models.ActionCompleteRide, "rideID", "Ride completed")
}

// CancelBooking handles booking cancellation.
func (h *ReconcilerHandler) CancelBooking(c echo.Context) error {
	return h.transition(c, models.ActionCancelBooking, "bookingID", "Booking cancelled")
}

// CompleteBooking handles booking completion.
func (h *ReconcilerHandler) CompleteBooking(c echo.Context) error {
	return h.transition(c, models.ActionCompleteBooking, "bookingID", "Booking completed")
}

func (h *ReconcilerHandler) transition(c echo.Context, kind models.ActionKind, param, message string) error {
	targetID, err := uuid.Parse(c.Param(param))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid record id")
	}

	var req transitionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	result, err := h.reconcilerUC.Execute(c.Request().Context(), models.ActionRequest{
		Kind:     kind,
		TargetID: targetID,
		Reason:   req.Reason,
	}, h.session)
	if err != nil {
		return respondExecutionError(c, err)
	}

	return respondExecutionResult(c, http.StatusOK, message, result)
}

// ClaimRewards submits the reward claim transaction.
func (h *ReconcilerHandler) ClaimRewards(c echo.Context) error {
	result, err := h.reconcilerUC.Execute(c.Request().Context(), models.ActionRequest{
		Kind: models.ActionClaimRewards,
	}, h.session)
	if err != nil {
		return respondExecutionError(c, err)
	}

	return respondExecutionResult(c, http.StatusOK, "Rewards claimed", result)
}

// OpenRides lists bookable rides.
func (h *ReconcilerHandler) OpenRides(c echo.Context) error {
	rides, err := h.reconcilerUC.OpenRides(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list rides: "+err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "Open rides", rides)
}

// MyRides lists the authenticated driver's rides, provisional included.
func (h *ReconcilerHandler) MyRides(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	rides, err := h.reconcilerUC.RidesByDriver(c.Request().Context(), userID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list rides: "+err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "Your rides", rides)
}

// MyBookings lists the authenticated passenger's bookings.
func (h *ReconcilerHandler) MyBookings(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	bookings, err := h.reconcilerUC.BookingsByPassenger(c.Request().Context(), userID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list bookings: "+err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "Your bookings", bookings)
}

// ChainRide returns the contract-side view of a confirmed ride.
func (h *ReconcilerHandler) ChainRide(c echo.Context) error {
	chainID, err := strconv.ParseUint(c.Param("chainID"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid chain id")
	}

	ride, err := h.reconcilerUC.ChainRideView(c.Request().Context(), chainID)
	if err != nil {
		return utils.StagedErrorResponse(c, http.StatusBadGateway, "Failed to read ride from chain: "+err.Error(), string(apperrors.StageAction))
	}
	return utils.SuccessResponse(c, http.StatusOK, "Chain ride", ride)
}

// ChainBooking returns the contract-side view of a confirmed booking.
func (h *ReconcilerHandler) ChainBooking(c echo.Context) error {
	chainID, err := strconv.ParseUint(c.Param("chainID"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid chain id")
	}

	booking, err := h.reconcilerUC.ChainBookingView(c.Request().Context(), chainID)
	if err != nil {
		return utils.StagedErrorResponse(c, http.StatusBadGateway, "Failed to read booking from chain: "+err.Error(), string(apperrors.StageAction))
	}
	return utils.SuccessResponse(c, http.StatusOK, "Chain booking", booking)
}

// Balances returns the wallet balances for the service account.
func (h *ReconcilerHandler) Balances(c echo.Context) error {
	balances, err := h.reconcilerUC.Balances(c.Request().Context(), h.session)
	if err != nil {
		return respondExecutionError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Balances", balances)
}

// Resume replays reconciliation for a provisional record.
func (h *ReconcilerHandler) Resume(c echo.Context) error {
	var req resumeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	recordID, err := uuid.Parse(req.RecordID)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid record_id")
	}

	logger.Info("Resuming reconciliation",
		logger.String("kind", req.Kind),
		logger.String("record_id", req.RecordID))

	result, err := h.reconcilerUC.Resume(c.Request().Context(), models.ActionKind(req.Kind), recordID, h.session)
	if err != nil {
		return respondExecutionError(c, err)
	}

	return respondExecutionResult(c, http.StatusOK, "Reconciliation resumed", result)
}

// Sweep runs the provisional sweep on demand.
func (h *ReconcilerHandler) Sweep(c echo.Context) error {
	count, err := h.reconcilerUC.SweepProvisional(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Sweep failed: "+err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "Sweep completed", map[string]int{"flagged": count})
}

// respondExecutionResult renders a result, surfacing a reconciliation warning
// when the chain succeeded but the off-chain mirror did not.
func respondExecutionResult(c echo.Context, status int, message string, result *models.ExecutionResult) error {
	if result.Warning != nil {
		return utils.SuccessWithWarning(c, status, message, result, result.Warning.Error())
	}
	return utils.SuccessResponse(c, status, message, result)
}

// respondExecutionError maps the typed error taxonomy to HTTP statuses. Client
// faults are 400, chain failures are 502 with the stage tag, store failures
// are 500 with the stage tag.
func respondExecutionError(c echo.Context, err error) error {
	if apperrors.IsClientFault(err) {
		return utils.BadRequestResponse(c, err.Error())
	}
	if ce, ok := apperrors.AsChainError(err); ok {
		return utils.StagedErrorResponse(c, http.StatusBadGateway, err.Error(), string(ce.Stage))
	}
	if se, ok := apperrors.AsStoreError(err); ok {
		return utils.StagedErrorResponse(c, http.StatusInternalServerError, err.Error(), string(se.Stage))
	}
	var iv *apperrors.InvariantViolation
	if errors.As(err, &iv) {
		logger.Error("Invariant violation reached the HTTP layer",
			logger.Err(err))
	}
	return utils.InternalServerErrorResponse(c, err.Error())
}
