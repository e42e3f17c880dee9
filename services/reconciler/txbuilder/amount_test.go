package txbuilder

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBaseUnits_ExactConversion(t *testing.T) {
	value, err := ToBaseUnits("0.01", 18)
	require.NoError(t, err)
	assert.Equal(t, "10000000000000000", value.String())
}

func TestToBaseUnits_WholeNumberDifferentScale(t *testing.T) {
	// UGX-style whole amounts with a 2-decimal token keep every digit.
	value, err := ToBaseUnits("10000", 2)
	require.NoError(t, err)
	assert.Equal(t, "1000000", value.String())
}

func TestToBaseUnits_TruncatesTowardZero(t *testing.T) {
	// 19 fractional digits: the final digit is below the base unit and is
	// dropped, never rounded up.
	value, err := ToBaseUnits("0.0000000000000000019", 18)
	require.NoError(t, err)
	assert.Equal(t, "1", value.String())
}

func TestToBaseUnits_One(t *testing.T) {
	value, err := ToBaseUnits("1", 18)
	require.NoError(t, err)
	assert.Equal(t, "1000000000000000000", value.String())
}

func TestToBaseUnits_RejectsGarbage(t *testing.T) {
	_, err := ToBaseUnits("abc", 18)
	assert.Error(t, err)
}

func TestToBaseUnits_RejectsNegative(t *testing.T) {
	_, err := ToBaseUnits("-0.5", 18)
	assert.Error(t, err)
}

func TestFromBaseUnits_RoundTrip(t *testing.T) {
	value, err := ToBaseUnits("0.25", 18)
	require.NoError(t, err)
	assert.Equal(t, "0.25", FromBaseUnits(value, 18))
}

func TestFromBaseUnits_Nil(t *testing.T) {
	assert.Equal(t, "0", FromBaseUnits(nil, 18))
}

func TestFromBaseUnits_Zero(t *testing.T) {
	assert.Equal(t, "0", FromBaseUnits(big.NewInt(0), 18))
}

func TestParsePositiveAmount(t *testing.T) {
	assert.NoError(t, ParsePositiveAmount("0.01"))
	assert.Error(t, ParsePositiveAmount("0"))
	assert.Error(t, ParsePositiveAmount("-1"))
	assert.Error(t, ParsePositiveAmount("ten"))
}
