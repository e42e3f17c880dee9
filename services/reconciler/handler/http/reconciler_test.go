package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryda/reconciler/internal/pkg/apperrors"
	"github.com/cryda/reconciler/internal/pkg/models"
	"github.com/cryda/reconciler/services/reconciler/mocks"
)

type stubSession struct{}

func (stubSession) Connected() bool         { return true }
func (stubSession) Address() common.Address { return common.Address{} }
func (stubSession) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	return tx, nil
}

func newContext(t *testing.T, method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	request := httptest.NewRequest(method, target, &buf)
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	return e.NewContext(request, recorder), recorder
}

func TestCreateRide_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockReconcilerUC(ctrl)
	handler := NewReconcilerHandler(mockUC, stubSession{})

	userID := uuid.New()
	departure := time.Now().Add(2 * time.Hour).UTC().Format(time.RFC3339)

	mockUC.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req models.ActionRequest, _ interface{}) (*models.ExecutionResult, error) {
			assert.Equal(t, models.ActionCreateRide, req.Kind)
			assert.Equal(t, userID, req.Ride.DriverID)
			assert.Equal(t, "0.01", req.Ride.PricePerSeat)
			return &models.ExecutionResult{
				Kind: models.ActionCreateRide,
				Ride: &models.RideRecord{ID: uuid.New(), Status: models.StatusConfirmed},
			}, nil
		})

	c, recorder := newContext(t, http.MethodPost, "/api/v1/rides", map[string]interface{}{
		"start_location": "A",
		"end_location":   "B",
		"departure_time": departure,
		"price_per_seat": "0.01",
		"total_seats":    4,
		"payment_method": "NATIVE_COIN",
	})
	c.Set("user_id", userID)

	require.NoError(t, handler.CreateRide(c))
	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"success":true`)
}

func TestCreateRide_WarningSurfacedInResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockReconcilerUC(ctrl)
	handler := NewReconcilerHandler(mockUC, stubSession{})

	departure := time.Now().Add(2 * time.Hour).UTC().Format(time.RFC3339)

	mockUC.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.ExecutionResult{
			Kind:    models.ActionCreateRide,
			Receipt: &models.ChainReceipt{TxHash: "0xabc", Status: 1},
			Warning: &apperrors.ReconciliationWarning{
				Stage:  apperrors.StageMirror,
				Op:     "patch ride",
				TxHash: "0xabc",
				Err:    errors.New("store unavailable"),
			},
		}, nil)

	c, recorder := newContext(t, http.MethodPost, "/api/v1/rides", map[string]interface{}{
		"start_location": "A",
		"end_location":   "B",
		"departure_time": departure,
		"price_per_seat": "0.01",
		"total_seats":    2,
		"payment_method": "NATIVE_COIN",
	})
	c.Set("user_id", uuid.New())

	require.NoError(t, handler.CreateRide(c))
	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"warning"`)
	assert.Contains(t, recorder.Body.String(), "not mirrored")
}

func TestCreateRide_ValidationErrorIs400(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockReconcilerUC(ctrl)
	handler := NewReconcilerHandler(mockUC, stubSession{})

	departure := time.Now().Add(2 * time.Hour).UTC().Format(time.RFC3339)

	mockUC.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &apperrors.ValidationError{Field: "total_seats", Reason: "must be at least 1"})

	c, recorder := newContext(t, http.MethodPost, "/api/v1/rides", map[string]interface{}{
		"start_location": "A",
		"end_location":   "B",
		"departure_time": departure,
		"price_per_seat": "0.01",
		"total_seats":    0,
		"payment_method": "NATIVE_COIN",
	})
	c.Set("user_id", uuid.New())

	require.NoError(t, handler.CreateRide(c))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestBookRide_ChainErrorIs502WithStage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockReconcilerUC(ctrl)
	handler := NewReconcilerHandler(mockUC, stubSession{})

	mockUC.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &apperrors.ChainError{Stage: apperrors.StageApproval, Err: errors.New("network error")})

	c, recorder := newContext(t, http.MethodPost, "/api/v1/bookings", map[string]interface{}{
		"ride_id":        uuid.New().String(),
		"seats_to_book":  2,
		"total_amount":   "0.02",
		"payment_method": "UTILITY_TOKEN",
	})
	c.Set("user_id", uuid.New())

	require.NoError(t, handler.BookRide(c))
	assert.Equal(t, http.StatusBadGateway, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"stage":"approval"`)
}

func TestBookRide_InvalidRideID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockReconcilerUC(ctrl)
	handler := NewReconcilerHandler(mockUC, stubSession{})

	c, recorder := newContext(t, http.MethodPost, "/api/v1/bookings", map[string]interface{}{
		"ride_id":        "not-a-uuid",
		"seats_to_book":  1,
		"total_amount":   "0.01",
		"payment_method": "NATIVE_COIN",
	})
	c.Set("user_id", uuid.New())

	require.NoError(t, handler.BookRide(c))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCancelRide_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockReconcilerUC(ctrl)
	handler := NewReconcilerHandler(mockUC, stubSession{})

	rideID := uuid.New()

	mockUC.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req models.ActionRequest, _ interface{}) (*models.ExecutionResult, error) {
			assert.Equal(t, models.ActionCancelRide, req.Kind)
			assert.Equal(t, rideID, req.TargetID)
			assert.Equal(t, "plans changed", req.Reason)
			return &models.ExecutionResult{Kind: models.ActionCancelRide}, nil
		})

	c, recorder := newContext(t, http.MethodPost, "/api/v1/rides/"+rideID.String()+"/cancel", map[string]interface{}{
		"reason": "plans changed",
	})
	c.Set("user_id", uuid.New())
	c.SetParamNames("rideID")
	c.SetParamValues(rideID.String())

	require.NoError(t, handler.CancelRide(c))
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestOpenRides_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockReconcilerUC(ctrl)
	handler := NewReconcilerHandler(mockUC, stubSession{})

	mockUC.EXPECT().
		OpenRides(gomock.Any()).
		Return([]*models.RideRecord{{ID: uuid.New(), Status: models.StatusConfirmed}}, nil)

	c, recorder := newContext(t, http.MethodGet, "/api/v1/rides", nil)

	require.NoError(t, handler.OpenRides(c))
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestBalances_PreconditionErrorIs400(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockReconcilerUC(ctrl)
	handler := NewReconcilerHandler(mockUC, stubSession{})

	mockUC.EXPECT().
		Balances(gomock.Any(), gomock.Any()).
		Return(nil, &apperrors.PreconditionError{Reason: "wallet not connected"})

	c, recorder := newContext(t, http.MethodGet, "/api/v1/wallet/balances", nil)

	require.NoError(t, handler.Balances(c))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestResume_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockReconcilerUC(ctrl)
	handler := NewReconcilerHandler(mockUC, stubSession{})

	recordID := uuid.New()

	mockUC.EXPECT().
		Resume(gomock.Any(), models.ActionCreateRide, recordID, gomock.Any()).
		Return(&models.ExecutionResult{
			Kind: models.ActionCreateRide,
			Ride: &models.RideRecord{ID: recordID, Status: models.StatusConfirmed},
		}, nil)

	c, recorder := newContext(t, http.MethodPost, "/internal/reconcile/resume", map[string]interface{}{
		"kind":      "create_ride",
		"record_id": recordID.String(),
	})

	require.NoError(t, handler.Resume(c))
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestSweep_ReturnsCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockReconcilerUC(ctrl)
	handler := NewReconcilerHandler(mockUC, stubSession{})

	mockUC.EXPECT().
		SweepProvisional(gomock.Any()).
		Return(3, nil)

	c, recorder := newContext(t, http.MethodPost, "/internal/reconcile/sweep", nil)

	require.NoError(t, handler.Sweep(c))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"flagged":3`)
}

func TestChainRide_ReturnsContractView(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockReconcilerUC(ctrl)
	handler := NewReconcilerHandler(mockUC, stubSession{})

	mockUC.EXPECT().
		ChainRideView(gomock.Any(), uint64(42)).
		Return(&models.ChainRide{ID: 42, TotalSeats: 4, Active: true}, nil)

	c, recorder := newContext(t, http.MethodGet, "/api/v1/rides/chain/42", nil)
	c.SetParamNames("chainID")
	c.SetParamValues("42")

	require.NoError(t, handler.ChainRide(c))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"id":42`)
}

func TestChainRide_InvalidChainID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockReconcilerUC(ctrl)
	handler := NewReconcilerHandler(mockUC, stubSession{})

	c, recorder := newContext(t, http.MethodGet, "/api/v1/rides/chain/abc", nil)
	c.SetParamNames("chainID")
	c.SetParamValues("abc")

	require.NoError(t, handler.ChainRide(c))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
