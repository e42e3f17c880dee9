// Package wallet provides the local signing account backing the wallet
// session precondition gate.
package wallet

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// LocalWallet holds an in-process signing key. A wallet constructed without a
// key reports disconnected and signs nothing.
type LocalWallet struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewLocalWallet loads a hex-encoded private key. An empty key yields a
// disconnected session, which the orchestrator rejects up front.
func NewLocalWallet(hexKey string) (*LocalWallet, error) {
	if hexKey == "" {
		return &LocalWallet{}, nil
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid signing key: %w", err)
	}

	return &LocalWallet{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

// Connected reports whether a signing key is loaded.
func (w *LocalWallet) Connected() bool {
	return w.key != nil
}

// Address returns the account address of the signing key.
func (w *LocalWallet) Address() common.Address {
	return w.address
}

// SignTx signs a transaction for the given chain.
func (w *LocalWallet) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	if w.key == nil {
		return nil, fmt.Errorf("wallet not connected")
	}
	return types.SignTx(tx, types.LatestSignerForChainID(chainID), w.key)
}
