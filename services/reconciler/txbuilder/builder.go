// Package txbuilder turns domain actions into chain-ready transaction
// payloads. It is pure: no I/O, no state beyond the configured contract
// addresses.
package txbuilder

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/cryda/reconciler/internal/pkg/apperrors"
	"github.com/cryda/reconciler/internal/pkg/models"
)

// Builder assembles transaction payloads for the fixed contract pair.
type Builder struct {
	rideShare common.Address
	token     common.Address
	decimals  int
}

// NewBuilder creates a transaction builder from chain configuration.
func NewBuilder(cfg models.ChainConfig) (*Builder, error) {
	if !common.IsHexAddress(cfg.RideShareAddress) {
		return nil, fmt.Errorf("invalid ride share contract address %q", cfg.RideShareAddress)
	}
	if !common.IsHexAddress(cfg.TokenAddress) {
		return nil, fmt.Errorf("invalid token contract address %q", cfg.TokenAddress)
	}

	decimals := cfg.TokenDecimals
	if decimals == 0 {
		decimals = BaseUnitDecimals
	}

	return &Builder{
		rideShare: common.HexToAddress(cfg.RideShareAddress),
		token:     common.HexToAddress(cfg.TokenAddress),
		decimals:  decimals,
	}, nil
}

// amountScale returns the conversion scale for an amount denominated in the
// given payment method. Native coin amounts are always 18 decimals; the
// utility token scale comes from configuration.
func (b *Builder) amountScale(method models.PaymentMethod) int {
	if method == models.PaymentUtilityToken {
		return b.decimals
	}
	return BaseUnitDecimals
}

// paymentMethodEnum maps the closed payment method enumeration to the
// contract enum. An unmapped value is a programming error, not user input.
func paymentMethodEnum(method models.PaymentMethod) (uint8, error) {
	switch method {
	case models.PaymentNativeCoin:
		return 0, nil
	case models.PaymentUtilityToken:
		return 1, nil
	default:
		return 0, &apperrors.InvariantViolation{
			Reason: fmt.Sprintf("unmapped payment method %q", method),
		}
	}
}

// CreateRide builds the single createRide transaction.
func (b *Builder) CreateRide(intent models.RideIntent) ([]models.TxPayload, error) {
	methodEnum, err := paymentMethodEnum(intent.PaymentMethod)
	if err != nil {
		return nil, err
	}

	price, err := ToBaseUnits(intent.PricePerSeat, b.amountScale(intent.PaymentMethod))
	if err != nil {
		return nil, err
	}

	data, err := RideShareABI.Pack("createRide",
		intent.StartLocation,
		intent.EndLocation,
		big.NewInt(intent.DepartureTime.Unix()),
		price,
		uint8(intent.TotalSeats),
		methodEnum,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to pack createRide: %w", err)
	}

	return []models.TxPayload{{
		Stage: apperrors.StageAction,
		To:    b.rideShare,
		Data:  data,
	}}, nil
}

// BookRide builds the booking transaction sequence. Native coin payments
// carry the amount as transaction value; utility token payments are preceded
// by an approval granting the ride share contract a spending allowance.
func (b *Builder) BookRide(intent models.BookingIntent, chainRideID uint64) ([]models.TxPayload, error) {
	if _, err := paymentMethodEnum(intent.PaymentMethod); err != nil {
		return nil, err
	}

	amount, err := ToBaseUnits(intent.TotalAmount, b.amountScale(intent.PaymentMethod))
	if err != nil {
		return nil, err
	}

	bookData, err := RideShareABI.Pack("bookRide",
		new(big.Int).SetUint64(chainRideID),
		uint8(intent.SeatsToBook),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to pack bookRide: %w", err)
	}

	if intent.PaymentMethod == models.PaymentNativeCoin {
		return []models.TxPayload{{
			Stage: apperrors.StageAction,
			To:    b.rideShare,
			Data:  bookData,
			Value: amount,
		}}, nil
	}

	approveData, err := TokenABI.Pack("approve", b.rideShare, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to pack approve: %w", err)
	}

	return []models.TxPayload{
		{
			Stage: apperrors.StageApproval,
			To:    b.token,
			Data:  approveData,
		},
		{
			Stage: apperrors.StageAction,
			To:    b.rideShare,
			Data:  bookData,
		},
	}, nil
}

// CancelRide builds the cancelRide transaction.
func (b *Builder) CancelRide(chainRideID uint64, reason string) (models.TxPayload, error) {
	return b.simpleCall("cancelRide", new(big.Int).SetUint64(chainRideID), reason)
}

// CancelBooking builds the cancelBooking transaction.
func (b *Builder) CancelBooking(chainBookingID uint64, reason string) (models.TxPayload, error) {
	return b.simpleCall("cancelBooking", new(big.Int).SetUint64(chainBookingID), reason)
}

// CompleteRide builds the completeRide transaction.
func (b *Builder) CompleteRide(chainRideID uint64) (models.TxPayload, error) {
	return b.simpleCall("completeRide", new(big.Int).SetUint64(chainRideID))
}

// CompleteBooking builds the completeBooking transaction.
func (b *Builder) CompleteBooking(chainBookingID uint64) (models.TxPayload, error) {
	return b.simpleCall("completeBooking", new(big.Int).SetUint64(chainBookingID))
}

// ClaimRewards builds the claimRewards transaction.
func (b *Builder) ClaimRewards() (models.TxPayload, error) {
	return b.simpleCall("claimRewards")
}

func (b *Builder) simpleCall(method string, args ...interface{}) (models.TxPayload, error) {
	data, err := RideShareABI.Pack(method, args...)
	if err != nil {
		return models.TxPayload{}, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	return models.TxPayload{
		Stage: apperrors.StageAction,
		To:    b.rideShare,
		Data:  data,
	}, nil
}
