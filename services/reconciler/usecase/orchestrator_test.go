package usecase

import (
	"context"
	"errors"
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryda/reconciler/internal/pkg/apperrors"
	"github.com/cryda/reconciler/internal/pkg/models"
	"github.com/cryda/reconciler/services/reconciler"
	"github.com/cryda/reconciler/services/reconciler/mocks"
	"github.com/cryda/reconciler/services/reconciler/txbuilder"
)

type fakeSession struct {
	connected bool
	address   common.Address
}

func (s *fakeSession) Connected() bool         { return s.connected }
func (s *fakeSession) Address() common.Address { return s.address }
func (s *fakeSession) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	return tx, nil
}

func connectedSession() *fakeSession {
	return &fakeSession{
		connected: true,
		address:   common.HexToAddress("0x1111111111111111111111111111111111111111"),
	}
}

func testBuilder(t *testing.T) *txbuilder.Builder {
	builder, err := txbuilder.NewBuilder(models.ChainConfig{
		RideShareAddress: "0x0000000000000000000000000000000000000aaa",
		TokenAddress:     "0x0000000000000000000000000000000000000bbb",
	})
	require.NoError(t, err)
	return builder
}

func newTestUC(t *testing.T, ctrl *gomock.Controller) (reconciler.ReconcilerUC, *mocks.MockLedgerRepo, *mocks.MockChainGW, *mocks.MockEventsGW) {
	mockRepo := mocks.NewMockLedgerRepo(ctrl)
	mockChain := mocks.NewMockChainGW(ctrl)
	mockEvents := mocks.NewMockEventsGW(ctrl)

	cfg := &models.Config{}
	cfg.Scheduler.StaleAfterMin = 30

	uc, err := NewReconcilerUC(cfg, mockRepo, mockChain, mockEvents, nil, testBuilder(t))
	require.NoError(t, err)

	return uc, mockRepo, mockChain, mockEvents
}

func validRideIntent() models.RideIntent {
	return models.RideIntent{
		DriverID:      uuid.New(),
		StartLocation: "A",
		EndLocation:   "B",
		DepartureTime: time.Now().Add(2 * time.Hour),
		PricePerSeat:  "0.01",
		TotalSeats:    4,
		PaymentMethod: models.PaymentNativeCoin,
		DriverName:    "Budi",
		CarType:       "Avanza",
		NumberPlate:   "B 1 A",
	}
}

func TestExecute_WalletNotConnected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _, _ := newTestUC(t, ctrl)

	_, err := uc.Execute(context.Background(), models.ActionRequest{
		Kind: models.ActionCreateRide,
	}, &fakeSession{connected: false})

	var pe *apperrors.PreconditionError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Reason, "wallet not connected")
}

func TestExecute_CreateRide_ValidationFailsBeforeAnyIO(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _, _ := newTestUC(t, ctrl)

	intent := validRideIntent()
	intent.StartLocation = ""

	_, err := uc.Execute(context.Background(), models.ActionRequest{
		Kind: models.ActionCreateRide,
		Ride: &intent,
	}, connectedSession())

	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "start_location", ve.Field)
}

func TestExecute_CreateRide_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockChain, mockEvents := newTestUC(t, ctrl)

	intent := validRideIntent()
	rideID := uuid.New()
	chainRideID := uint64(42)

	mockRepo.EXPECT().
		CreateProvisionalRide(gomock.Any(), intent).
		Return(&models.RideRecord{ID: rideID, Status: models.StatusProvisional}, nil)

	mockChain.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.ChainReceipt{TxHash: "0xabc", Status: 1, RideID: &chainRideID}, nil)

	mockRepo.EXPECT().
		PatchRideWithChainResult(gomock.Any(), rideID, int64(chainRideID), "0xabc").
		Return(nil)

	chainID := int64(chainRideID)
	txHash := "0xabc"
	confirmed := &models.RideRecord{
		ID:           rideID,
		Status:       models.StatusConfirmed,
		BlockchainID: &chainID,
		TxHash:       &txHash,
	}
	mockRepo.EXPECT().GetRideByID(gomock.Any(), rideID).Return(confirmed, nil)
	mockEvents.EXPECT().PublishRideConfirmed(gomock.Any(), confirmed).Return(nil)

	result, err := uc.Execute(context.Background(), models.ActionRequest{
		Kind: models.ActionCreateRide,
		Ride: &intent,
	}, connectedSession())

	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, result.Ride.Status)
	assert.Equal(t, chainRideID, result.ChainID)
	assert.False(t, result.ChainIDDerived)
	assert.Equal(t, "0xabc", *result.Ride.TxHash)
	assert.Nil(t, result.Warning)
}

func TestExecute_CreateRide_NoEventFallsBackToDerivedID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockChain, mockEvents := newTestUC(t, ctrl)

	intent := validRideIntent()
	rideID := uuid.New()

	mockRepo.EXPECT().
		CreateProvisionalRide(gomock.Any(), intent).
		Return(&models.RideRecord{ID: rideID, Status: models.StatusProvisional}, nil)

	// Receipt carries no creation event.
	mockChain.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.ChainReceipt{TxHash: "0xdeadbeef", Status: 1}, nil)

	mockRepo.EXPECT().
		PatchRideWithChainResult(gomock.Any(), rideID, gomock.Any(), "0xdeadbeef").
		Return(nil)
	mockRepo.EXPECT().GetRideByID(gomock.Any(), rideID).
		Return(&models.RideRecord{ID: rideID, Status: models.StatusConfirmed}, nil)
	mockEvents.EXPECT().PublishRideConfirmed(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.Execute(context.Background(), models.ActionRequest{
		Kind: models.ActionCreateRide,
		Ride: &intent,
	}, connectedSession())

	require.NoError(t, err)
	assert.True(t, result.ChainIDDerived)
}

func TestExecute_CreateRide_ChainFailureMarksRecordFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockChain, mockEvents := newTestUC(t, ctrl)

	intent := validRideIntent()
	rideID := uuid.New()

	mockRepo.EXPECT().
		CreateProvisionalRide(gomock.Any(), intent).
		Return(&models.RideRecord{ID: rideID, Status: models.StatusProvisional}, nil)

	mockChain.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("transaction reverted"))

	mockRepo.EXPECT().
		UpdateRideStatus(gomock.Any(), rideID, models.StatusFailed, gomock.Any()).
		Return(nil)
	mockEvents.EXPECT().
		PublishRecordFailed(gomock.Any(), "ride", rideID, gomock.Any()).
		Return(nil)

	_, err := uc.Execute(context.Background(), models.ActionRequest{
		Kind: models.ActionCreateRide,
		Ride: &intent,
	}, connectedSession())

	ce, ok := apperrors.AsChainError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.StageAction, ce.Stage)
}

func TestExecute_CreateRide_DualFailureSurfacesBothErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockChain, _ := newTestUC(t, ctrl)

	intent := validRideIntent()
	rideID := uuid.New()

	mockRepo.EXPECT().
		CreateProvisionalRide(gomock.Any(), intent).
		Return(&models.RideRecord{ID: rideID, Status: models.StatusProvisional}, nil)

	mockChain.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("underfunded"))

	mockRepo.EXPECT().
		UpdateRideStatus(gomock.Any(), rideID, models.StatusFailed, gomock.Any()).
		Return(errors.New("connection reset"))

	_, err := uc.Execute(context.Background(), models.ActionRequest{
		Kind: models.ActionCreateRide,
		Ride: &intent,
	}, connectedSession())

	_, isChain := apperrors.AsChainError(err)
	_, isStore := apperrors.AsStoreError(err)
	assert.True(t, isChain)
	assert.True(t, isStore)
}

func TestExecute_CreateRide_PatchFailureYieldsWarningNotError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockChain, _ := newTestUC(t, ctrl)

	intent := validRideIntent()
	rideID := uuid.New()
	chainRideID := uint64(7)

	mockRepo.EXPECT().
		CreateProvisionalRide(gomock.Any(), intent).
		Return(&models.RideRecord{ID: rideID, Status: models.StatusProvisional}, nil)

	mockChain.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.ChainReceipt{TxHash: "0xabc", Status: 1, RideID: &chainRideID}, nil)

	mockRepo.EXPECT().
		PatchRideWithChainResult(gomock.Any(), rideID, int64(chainRideID), "0xabc").
		Return(errors.New("store unavailable"))

	result, err := uc.Execute(context.Background(), models.ActionRequest{
		Kind: models.ActionCreateRide,
		Ride: &intent,
	}, connectedSession())

	require.NoError(t, err)
	require.NotNil(t, result.Warning)
	assert.Equal(t, apperrors.StageMirror, result.Warning.Stage)
	assert.Equal(t, "0xabc", result.Warning.TxHash)
	assert.Equal(t, models.StatusProvisional, result.Ride.Status)
}

func TestExecute_BookRide_SeatBoundRejectedBeforeWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _, _ := newTestUC(t, ctrl)

	rideID := uuid.New()
	chainID := int64(3)
	mockRepo.EXPECT().
		GetRideByID(gomock.Any(), rideID).
		Return(&models.RideRecord{
			ID:           rideID,
			Status:       models.StatusConfirmed,
			TotalSeats:   2,
			BlockchainID: &chainID,
		}, nil)

	intent := models.BookingIntent{
		PassengerID:   uuid.New(),
		RideID:        rideID,
		SeatsToBook:   5,
		TotalAmount:   "0.05",
		PaymentMethod: models.PaymentNativeCoin,
	}

	_, err := uc.Execute(context.Background(), models.ActionRequest{
		Kind:    models.ActionBookRide,
		Booking: &intent,
	}, connectedSession())

	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "seats_to_book", ve.Field)
}

func TestExecute_BookRide_ApprovalFailureAbortsAction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockChain, mockEvents := newTestUC(t, ctrl)

	rideID := uuid.New()
	bookingID := uuid.New()
	chainID := int64(3)

	mockRepo.EXPECT().
		GetRideByID(gomock.Any(), rideID).
		Return(&models.RideRecord{
			ID:           rideID,
			Status:       models.StatusConfirmed,
			TotalSeats:   4,
			BlockchainID: &chainID,
		}, nil)

	intent := models.BookingIntent{
		PassengerID:   uuid.New(),
		RideID:        rideID,
		SeatsToBook:   2,
		TotalAmount:   "0.02",
		PaymentMethod: models.PaymentUtilityToken,
	}

	mockRepo.EXPECT().
		CreateProvisionalBooking(gomock.Any(), intent).
		Return(&models.BookingRecord{ID: bookingID, Status: models.StatusProvisional}, nil)

	// Only the approval transaction goes out; the failure stops the sequence
	// before the action transaction.
	mockChain.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, payload models.TxPayload, _ reconciler.WalletSession) (*models.ChainReceipt, error) {
			assert.Equal(t, apperrors.StageApproval, payload.Stage)
			return nil, errors.New("network error")
		}).
		Times(1)

	mockRepo.EXPECT().
		UpdateBookingStatus(gomock.Any(), bookingID, models.StatusFailed, gomock.Any()).
		Return(nil)
	mockEvents.EXPECT().
		PublishRecordFailed(gomock.Any(), "booking", bookingID, gomock.Any()).
		Return(nil)

	_, err := uc.Execute(context.Background(), models.ActionRequest{
		Kind:    models.ActionBookRide,
		Booking: &intent,
	}, connectedSession())

	ce, ok := apperrors.AsChainError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.StageApproval, ce.Stage)
}

func TestExecute_BookRide_NativeCoinSingleTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockChain, mockEvents := newTestUC(t, ctrl)

	rideID := uuid.New()
	bookingID := uuid.New()
	chainID := int64(3)
	chainBookingID := uint64(9)

	mockRepo.EXPECT().
		GetRideByID(gomock.Any(), rideID).
		Return(&models.RideRecord{
			ID:           rideID,
			Status:       models.StatusConfirmed,
			TotalSeats:   4,
			BlockchainID: &chainID,
		}, nil)

	intent := models.BookingIntent{
		PassengerID:   uuid.New(),
		RideID:        rideID,
		SeatsToBook:   1,
		TotalAmount:   "0.01",
		PaymentMethod: models.PaymentNativeCoin,
	}

	mockRepo.EXPECT().
		CreateProvisionalBooking(gomock.Any(), intent).
		Return(&models.BookingRecord{ID: bookingID, Status: models.StatusProvisional}, nil)

	mockChain.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, payload models.TxPayload, _ reconciler.WalletSession) (*models.ChainReceipt, error) {
			assert.Equal(t, apperrors.StageAction, payload.Stage)
			assert.Equal(t, big.NewInt(10000000000000000), payload.Value)
			return &models.ChainReceipt{TxHash: "0xbook", Status: 1, BookingID: &chainBookingID}, nil
		}).
		Times(1)

	mockRepo.EXPECT().
		PatchBookingWithChainResult(gomock.Any(), bookingID, int64(chainBookingID), "0xbook").
		Return(nil)
	mockRepo.EXPECT().GetBookingByID(gomock.Any(), bookingID).
		Return(&models.BookingRecord{ID: bookingID, Status: models.StatusConfirmed}, nil)
	mockEvents.EXPECT().PublishBookingConfirmed(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.Execute(context.Background(), models.ActionRequest{
		Kind:    models.ActionBookRide,
		Booking: &intent,
	}, connectedSession())

	require.NoError(t, err)
	assert.Equal(t, chainBookingID, result.ChainID)
	assert.Equal(t, models.StatusConfirmed, result.Booking.Status)
}

func TestExecute_CancelRide_MirrorFailureIsWarning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockChain, _ := newTestUC(t, ctrl)

	rideID := uuid.New()
	chainID := int64(5)

	mockRepo.EXPECT().
		GetRideByID(gomock.Any(), rideID).
		Return(&models.RideRecord{ID: rideID, Status: models.StatusConfirmed, BlockchainID: &chainID}, nil)

	mockChain.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.ChainReceipt{TxHash: "0xcancel", Status: 1}, nil)

	mockRepo.EXPECT().
		UpdateRideStatus(gomock.Any(), rideID, models.StatusCancelled, "change of plans").
		Return(errors.New("store down"))

	result, err := uc.Execute(context.Background(), models.ActionRequest{
		Kind:     models.ActionCancelRide,
		TargetID: rideID,
		Reason:   "change of plans",
	}, connectedSession())

	require.NoError(t, err)
	require.NotNil(t, result.Warning)
	assert.Equal(t, apperrors.StageMirror, result.Warning.Stage)
}

func TestExecute_ClaimRewards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, mockChain, _ := newTestUC(t, ctrl)

	mockChain.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.ChainReceipt{TxHash: "0xclaim", Status: 1}, nil)

	result, err := uc.Execute(context.Background(), models.ActionRequest{
		Kind: models.ActionClaimRewards,
	}, connectedSession())

	require.NoError(t, err)
	assert.Equal(t, "0xclaim", result.Receipt.TxHash)
}

func TestResume_ConfirmedRideIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _, _ := newTestUC(t, ctrl)

	rideID := uuid.New()
	chainID := int64(42)
	txHash := "0xabc"

	// No chain submission happens for an already confirmed record.
	mockRepo.EXPECT().
		GetRideByID(gomock.Any(), rideID).
		Return(&models.RideRecord{
			ID:           rideID,
			Status:       models.StatusConfirmed,
			BlockchainID: &chainID,
			TxHash:       &txHash,
		}, nil)

	result, err := uc.Resume(context.Background(), models.ActionCreateRide, rideID, connectedSession())

	require.NoError(t, err)
	assert.Equal(t, uint64(42), result.ChainID)
	assert.Equal(t, models.StatusConfirmed, result.Ride.Status)
}

func TestResume_ProvisionalRideConvergesToConfirmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockChain, mockEvents := newTestUC(t, ctrl)

	rideID := uuid.New()
	chainRideID := uint64(42)

	provisional := &models.RideRecord{
		ID:            rideID,
		DriverID:      uuid.New(),
		StartLocation: "A",
		EndLocation:   "B",
		DepartureTime: time.Now().Add(time.Hour),
		PricePerSeat:  "0.01",
		TotalSeats:    4,
		PaymentMethod: models.PaymentNativeCoin,
		Status:        models.StatusProvisional,
	}

	mockRepo.EXPECT().GetRideByID(gomock.Any(), rideID).Return(provisional, nil)

	mockChain.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.ChainReceipt{TxHash: "0xabc", Status: 1, RideID: &chainRideID}, nil)

	// The original row is patched; no second row is ever created.
	mockRepo.EXPECT().
		PatchRideWithChainResult(gomock.Any(), rideID, int64(chainRideID), "0xabc").
		Return(nil)
	mockRepo.EXPECT().GetRideByID(gomock.Any(), rideID).
		Return(&models.RideRecord{ID: rideID, Status: models.StatusConfirmed}, nil)
	mockEvents.EXPECT().PublishRideConfirmed(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.Resume(context.Background(), models.ActionCreateRide, rideID, connectedSession())

	require.NoError(t, err)
	assert.Equal(t, chainRideID, result.ChainID)
	assert.Equal(t, models.StatusConfirmed, result.Ride.Status)
}

func TestResume_NonCreatingActionRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _, _ := newTestUC(t, ctrl)

	_, err := uc.Resume(context.Background(), models.ActionCancelRide, uuid.New(), connectedSession())

	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestSweepProvisional_FlagsStaleRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _, mockEvents := newTestUC(t, ctrl)

	staleRide := &models.RideRecord{
		ID:        uuid.New(),
		Status:    models.StatusProvisional,
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}
	staleBooking := &models.BookingRecord{
		ID:        uuid.New(),
		Status:    models.StatusProvisional,
		CreatedAt: time.Now().Add(-time.Hour),
	}

	mockRepo.EXPECT().
		ListStaleProvisionalRides(gomock.Any(), gomock.Any()).
		Return([]*models.RideRecord{staleRide}, nil)
	mockRepo.EXPECT().
		ListStaleProvisionalBookings(gomock.Any(), gomock.Any()).
		Return([]*models.BookingRecord{staleBooking}, nil)

	mockEvents.EXPECT().
		PublishReconcileAlert(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)

	count, err := uc.SweepProvisional(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestBalances_ReadsChainAndFormats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, mockChain, _ := newTestUC(t, ctrl)

	session := connectedSession()
	address := session.Address().Hex()

	oneEth, _ := new(big.Int).SetString("1000000000000000000", 10)
	halfToken, _ := new(big.Int).SetString("500000000000000000", 10)

	mockChain.EXPECT().NativeBalance(gomock.Any(), address).Return(oneEth, nil)
	mockChain.EXPECT().TokenBalance(gomock.Any(), address).Return(halfToken, nil)
	mockChain.EXPECT().GetPendingRewards(gomock.Any(), address).Return(big.NewInt(0), nil)

	balances, err := uc.Balances(context.Background(), session)

	require.NoError(t, err)
	assert.Equal(t, "1", balances.Native)
	assert.Equal(t, "0.5", balances.Token)
	assert.Equal(t, "0", balances.PendingRewards)
}

type memoryCache struct {
	values map[string]string
}

func newMemoryCache() *memoryCache { return &memoryCache{values: map[string]string{}} }

func (c *memoryCache) Get(ctx context.Context, key string) (string, error) {
	return c.values[key], nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	s, _ := value.(string)
	c.values[key] = s
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	delete(c.values, key)
	return nil
}

func TestChainRideView_SecondReadServedFromCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLedgerRepo(ctrl)
	mockChain := mocks.NewMockChainGW(ctrl)
	mockEvents := mocks.NewMockEventsGW(ctrl)

	uc, err := NewReconcilerUC(&models.Config{}, mockRepo, mockChain, mockEvents, newMemoryCache(), testBuilder(t))
	require.NoError(t, err)

	mockChain.EXPECT().
		GetRide(gomock.Any(), uint64(42)).
		Return(&models.ChainRide{ID: 42, TotalSeats: 4, AvailableSeats: 2, Active: true}, nil).
		Times(1)

	first, err := uc.ChainRideView(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), first.ID)

	second, err := uc.ChainRideView(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, uint8(2), second.AvailableSeats)
	assert.True(t, second.Active)
}

func TestChainBookingView_ChainErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, mockChain, _ := newTestUC(t, ctrl)

	mockChain.EXPECT().
		GetBooking(gomock.Any(), uint64(9)).
		Return(nil, errors.New("rpc unavailable"))

	_, err := uc.ChainBookingView(context.Background(), 9)
	assert.Error(t, err)
}

func TestChainIDFromReceipt_DerivedFallbackFitsSignedStorage(t *testing.T) {
	receipt := &models.ChainReceipt{
		TxHash: "0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
	}

	id, derived := chainIDFromReceipt(receipt, nil)

	assert.True(t, derived)
	assert.LessOrEqual(t, id, uint64(math.MaxInt64))
	assert.GreaterOrEqual(t, int64(id), int64(0))
}

func TestChainIDFromReceipt_EventIDWins(t *testing.T) {
	eventID := uint64(7)

	id, derived := chainIDFromReceipt(&models.ChainReceipt{TxHash: "0xabc"}, &eventID)

	assert.False(t, derived)
	assert.Equal(t, uint64(7), id)
}
