package reconciler

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// WalletSession exposes the active signing account. The orchestrator treats
// it as a precondition gate and never mutates it; only the chain gateway uses
// the signing capability.
type WalletSession interface {
	Connected() bool
	Address() common.Address
	SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)
}
