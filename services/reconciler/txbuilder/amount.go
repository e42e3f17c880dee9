package txbuilder

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// BaseUnitDecimals is the scale of the native coin and the default utility
// token scale, matching the 10^18 integer semantics of the contracts.
const BaseUnitDecimals = 18

// ToBaseUnits converts a human-readable decimal amount to the integer
// base-unit representation. Any remainder below the base unit is truncated
// toward zero, never rounded, to match on-chain integer semantics exactly.
func ToBaseUnits(amount string, decimals int) (*big.Int, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("unparseable amount %q: %w", amount, err)
	}
	if d.IsNegative() {
		return nil, fmt.Errorf("negative amount %q", amount)
	}

	return d.Shift(int32(decimals)).Truncate(0).BigInt(), nil
}

// FromBaseUnits renders an integer base-unit value as a human-readable
// decimal string.
func FromBaseUnits(value *big.Int, decimals int) string {
	if value == nil {
		return "0"
	}
	return decimal.NewFromBigInt(value, -int32(decimals)).String()
}

// ParsePositiveAmount validates that amount is a parseable decimal strictly
// greater than zero. Used by intent validation before any I/O happens.
func ParsePositiveAmount(amount string) error {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("unparseable amount %q: %w", amount, err)
	}
	if !d.IsPositive() {
		return fmt.Errorf("amount %q must be greater than zero", amount)
	}
	return nil
}
