package gateway

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/cryda/reconciler/internal/pkg/models"
	"github.com/cryda/reconciler/services/reconciler"
	"github.com/cryda/reconciler/services/reconciler/txbuilder"
)

// ChainGateway talks to the fixed EVM test network over JSON-RPC.
type ChainGateway struct {
	client    *ethclient.Client
	chainID   *big.Int
	rideShare common.Address
	token     common.Address
}

// NewChainGateway dials the configured RPC endpoint.
func NewChainGateway(cfg models.ChainConfig) (*ChainGateway, error) {
	client, err := ethclient.Dial(cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial chain rpc %s: %w", cfg.RPCURL, err)
	}

	if !common.IsHexAddress(cfg.RideShareAddress) || !common.IsHexAddress(cfg.TokenAddress) {
		return nil, fmt.Errorf("invalid contract address configuration")
	}

	return &ChainGateway{
		client:    client,
		chainID:   big.NewInt(cfg.ChainID),
		rideShare: common.HexToAddress(cfg.RideShareAddress),
		token:     common.HexToAddress(cfg.TokenAddress),
	}, nil
}

// Close releases the underlying RPC connection.
func (g *ChainGateway) Close() {
	g.client.Close()
}

// Ping verifies the RPC endpoint is reachable, for health checks.
func (g *ChainGateway) Ping(ctx context.Context) error {
	_, err := g.client.BlockNumber(ctx)
	return err
}

// Submit signs and sends a prepared payload, then blocks until the
// transaction is mined or ctx is cancelled. On a revert the mined receipt is
// returned together with the error so callers can still report the hash.
func (g *ChainGateway) Submit(ctx context.Context, payload models.TxPayload, session reconciler.WalletSession) (*models.ChainReceipt, error) {
	if !session.Connected() {
		return nil, fmt.Errorf("wallet not connected")
	}

	from := session.Address()

	nonce, err := g.client.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch nonce: %w", err)
	}

	gasPrice, err := g.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gas price: %w", err)
	}

	msg := ethereum.CallMsg{
		From:  from,
		To:    &payload.To,
		Value: payload.Value,
		Data:  payload.Data,
	}
	gasLimit, err := g.client.EstimateGas(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("transaction would revert or cannot be funded: %w", err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gasLimit,
		To:       &payload.To,
		Value:    payload.Value,
		Data:     payload.Data,
	})

	signed, err := session.SignTx(tx, g.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := g.client.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("failed to send transaction: %w", err)
	}

	receipt, err := bind.WaitMined(ctx, g.client, signed)
	if err != nil {
		// The transaction may still land after the caller stops waiting;
		// the caller leaves the off-chain record provisional in that case.
		return nil, fmt.Errorf("waiting for transaction %s: %w", signed.Hash().Hex(), err)
	}

	result := toChainReceipt(receipt)
	if receipt.Status != types.ReceiptStatusSuccessful {
		return result, fmt.Errorf("transaction %s reverted", result.TxHash)
	}

	return result, nil
}

// toChainReceipt converts a raw receipt, extracting creation event ids from
// the logs when the contract emitted them.
func toChainReceipt(receipt *types.Receipt) *models.ChainReceipt {
	result := &models.ChainReceipt{
		TxHash:  receipt.TxHash.Hex(),
		Status:  receipt.Status,
		GasUsed: receipt.GasUsed,
	}
	if receipt.BlockNumber != nil {
		result.BlockNumber = receipt.BlockNumber.Uint64()
	}

	rideCreated := txbuilder.RideShareABI.Events["RideCreated"].ID
	bookingCreated := txbuilder.RideShareABI.Events["BookingCreated"].ID

	for _, logEntry := range receipt.Logs {
		if len(logEntry.Topics) < 2 {
			continue
		}
		id := new(big.Int).SetBytes(logEntry.Topics[1].Bytes()).Uint64()
		switch logEntry.Topics[0] {
		case rideCreated:
			result.RideID = &id
		case bookingCreated:
			result.BookingID = &id
		}
	}

	return result
}

// GetRide reads the contract-side ride view.
func (g *ChainGateway) GetRide(ctx context.Context, rideID uint64) (*models.ChainRide, error) {
	out, err := g.call(ctx, txbuilder.RideShareABI, g.rideShare, "getRide", new(big.Int).SetUint64(rideID))
	if err != nil {
		return nil, err
	}
	if len(out) != 10 {
		return nil, fmt.Errorf("unexpected getRide output arity %d", len(out))
	}

	return &models.ChainRide{
		ID:             out[0].(*big.Int).Uint64(),
		Driver:         out[1].(common.Address),
		StartLocation:  out[2].(string),
		EndLocation:    out[3].(string),
		DepartureTime:  out[4].(*big.Int).Uint64(),
		PricePerSeat:   out[5].(*big.Int),
		TotalSeats:     out[6].(uint8),
		AvailableSeats: out[7].(uint8),
		PaymentMethod:  out[8].(uint8),
		Active:         out[9].(bool),
	}, nil
}

// GetBooking reads the contract-side booking view.
func (g *ChainGateway) GetBooking(ctx context.Context, bookingID uint64) (*models.ChainBooking, error) {
	out, err := g.call(ctx, txbuilder.RideShareABI, g.rideShare, "getBooking", new(big.Int).SetUint64(bookingID))
	if err != nil {
		return nil, err
	}
	if len(out) != 6 {
		return nil, fmt.Errorf("unexpected getBooking output arity %d", len(out))
	}

	return &models.ChainBooking{
		ID:         out[0].(*big.Int).Uint64(),
		RideID:     out[1].(*big.Int).Uint64(),
		Passenger:  out[2].(common.Address),
		Seats:      out[3].(uint8),
		AmountPaid: out[4].(*big.Int),
		Active:     out[5].(bool),
	}, nil
}

// GetUserRides returns the chain ids of rides created by an address.
func (g *ChainGateway) GetUserRides(ctx context.Context, address string) ([]uint64, error) {
	return g.idList(ctx, "getUserRides", address)
}

// GetUserBookings returns the chain ids of bookings made by an address.
func (g *ChainGateway) GetUserBookings(ctx context.Context, address string) ([]uint64, error) {
	return g.idList(ctx, "getUserBookings", address)
}

func (g *ChainGateway) idList(ctx context.Context, method, address string) ([]uint64, error) {
	out, err := g.call(ctx, txbuilder.RideShareABI, g.rideShare, method, common.HexToAddress(address))
	if err != nil {
		return nil, err
	}

	raw, ok := out[0].([]*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected %s output type", method)
	}

	ids := make([]uint64, 0, len(raw))
	for _, v := range raw {
		ids = append(ids, v.Uint64())
	}
	return ids, nil
}

// GetPendingRewards returns the unclaimed reward balance for an address.
func (g *ChainGateway) GetPendingRewards(ctx context.Context, address string) (*big.Int, error) {
	out, err := g.call(ctx, txbuilder.RideShareABI, g.rideShare, "getPendingRewards", common.HexToAddress(address))
	if err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

// TokenBalance returns the utility token balance of an address.
func (g *ChainGateway) TokenBalance(ctx context.Context, address string) (*big.Int, error) {
	out, err := g.call(ctx, txbuilder.TokenABI, g.token, "balanceOf", common.HexToAddress(address))
	if err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

// NativeBalance returns the native coin balance of an address.
func (g *ChainGateway) NativeBalance(ctx context.Context, address string) (*big.Int, error) {
	return g.client.BalanceAt(ctx, common.HexToAddress(address), nil)
}

func (g *ChainGateway) call(ctx context.Context, contractABI abi.ABI, to common.Address, method string, args ...interface{}) ([]interface{}, error) {
	data, err := contractABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	raw, err := g.client.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("contract call %s failed: %w", method, err)
	}

	out, err := contractABI.Unpack(method, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s output: %w", method, err)
	}
	return out, nil
}
