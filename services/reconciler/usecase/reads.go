package usecase

import (
	"context"
	"encoding/json"
	"math/big"
	"strconv"

	"github.com/google/uuid"

	"github.com/cryda/reconciler/internal/pkg/apperrors"
	"github.com/cryda/reconciler/internal/pkg/constants"
	"github.com/cryda/reconciler/internal/pkg/logger"
	"github.com/cryda/reconciler/internal/pkg/models"
	"github.com/cryda/reconciler/services/reconciler"
	"github.com/cryda/reconciler/services/reconciler/txbuilder"
)

// OpenRides lists confirmed rides with a future departure.
func (uc *reconcilerUC) OpenRides(ctx context.Context) ([]*models.RideRecord, error) {
	return uc.repo.ListOpenRides(ctx)
}

// RidesByDriver lists all ride rows owned by a driver, provisional included.
func (uc *reconcilerUC) RidesByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.RideRecord, error) {
	return uc.repo.ListRidesByDriver(ctx, driverID)
}

// BookingsByPassenger lists all booking rows owned by a passenger.
func (uc *reconcilerUC) BookingsByPassenger(ctx context.Context, passengerID uuid.UUID) ([]*models.BookingRecord, error) {
	return uc.repo.ListBookingsByPassenger(ctx, passengerID)
}

// Balances returns native and token balances plus pending rewards for the
// session account, each served through a short-lived cache to spare the
// public RPC endpoint.
func (uc *reconcilerUC) Balances(ctx context.Context, session reconciler.WalletSession) (*models.Balances, error) {
	if !session.Connected() {
		return nil, &apperrors.PreconditionError{Reason: "wallet not connected"}
	}
	address := session.Address().Hex()

	native, err := uc.cachedChainRead(ctx, constants.KeyNativeBalance+address, func() (*big.Int, error) {
		return uc.chainGW.NativeBalance(ctx, address)
	})
	if err != nil {
		return nil, err
	}

	token, err := uc.cachedChainRead(ctx, constants.KeyTokenBalance+address, func() (*big.Int, error) {
		return uc.chainGW.TokenBalance(ctx, address)
	})
	if err != nil {
		return nil, err
	}

	rewards, err := uc.cachedChainRead(ctx, constants.KeyPendingRewards+address, func() (*big.Int, error) {
		return uc.chainGW.GetPendingRewards(ctx, address)
	})
	if err != nil {
		return nil, err
	}

	return &models.Balances{
		Address:        address,
		Native:         native,
		Token:          token,
		PendingRewards: rewards,
	}, nil
}

// ChainRideView reads the contract-side ride state, served through a
// short-lived cache keyed by the on-chain id.
func (uc *reconcilerUC) ChainRideView(ctx context.Context, chainID uint64) (*models.ChainRide, error) {
	key := constants.KeyChainRide + strconv.FormatUint(chainID, 10)

	cached := &models.ChainRide{}
	if uc.viewFromCache(ctx, key, cached) {
		return cached, nil
	}

	ride, err := uc.chainGW.GetRide(ctx, chainID)
	if err != nil {
		return nil, err
	}
	uc.cacheView(ctx, key, ride)
	return ride, nil
}

// ChainBookingView reads the contract-side booking state through the same
// cache scheme as ChainRideView.
func (uc *reconcilerUC) ChainBookingView(ctx context.Context, chainID uint64) (*models.ChainBooking, error) {
	key := constants.KeyChainBooking + strconv.FormatUint(chainID, 10)

	cached := &models.ChainBooking{}
	if uc.viewFromCache(ctx, key, cached) {
		return cached, nil
	}

	booking, err := uc.chainGW.GetBooking(ctx, chainID)
	if err != nil {
		return nil, err
	}
	uc.cacheView(ctx, key, booking)
	return booking, nil
}

// viewFromCache decodes a cached chain view into out, reporting a hit.
func (uc *reconcilerUC) viewFromCache(ctx context.Context, key string, out interface{}) bool {
	if uc.cache == nil {
		return false
	}
	cached, err := uc.cache.Get(ctx, key)
	if err != nil || cached == "" {
		return false
	}
	return json.Unmarshal([]byte(cached), out) == nil
}

// cacheView stores a chain view with the view TTL. Failures are logged only;
// the caller already has the value.
func (uc *reconcilerUC) cacheView(ctx context.Context, key string, view interface{}) {
	if uc.cache == nil {
		return
	}
	payload, err := json.Marshal(view)
	if err != nil {
		return
	}
	if err := uc.cache.Set(ctx, key, string(payload), constants.ViewCacheTTL); err != nil {
		logger.Warn("Failed to cache chain view",
			logger.String("key", key),
			logger.Err(err))
	}
}

// cachedChainRead serves a formatted chain value from cache, falling back to
// the chain on a miss. A nil cache disables caching entirely.
func (uc *reconcilerUC) cachedChainRead(ctx context.Context, key string, read func() (*big.Int, error)) (string, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, key); err == nil && cached != "" {
			return cached, nil
		}
	}

	value, err := read()
	if err != nil {
		return "", err
	}
	formatted := txbuilder.FromBaseUnits(value, txbuilder.BaseUnitDecimals)

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, formatted, constants.BalanceCacheTTL); err != nil {
			logger.Warn("Failed to cache chain read",
				logger.String("key", key),
				logger.Err(err))
		}
	}

	return formatted, nil
}

// invalidateBalances drops cached balance reads for an address after a
// balance-changing transaction such as claiming rewards.
func (uc *reconcilerUC) invalidateBalances(ctx context.Context, address string) {
	if uc.cache == nil {
		return
	}
	for _, key := range []string{
		constants.KeyNativeBalance + address,
		constants.KeyTokenBalance + address,
		constants.KeyPendingRewards + address,
	} {
		if err := uc.cache.Delete(ctx, key); err != nil {
			logger.Warn("Failed to invalidate cached balance",
				logger.String("key", key),
				logger.Err(err))
		}
	}
}
