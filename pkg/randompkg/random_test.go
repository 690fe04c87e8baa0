package randompkg

import (
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	nameFormat := regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

	for i := 0; i < 100; i++ {
		require.Regexp(t, nameFormat, Name())
	}
}

func TestAmountBetween(t *testing.T) {
	for i := 0; i < 100; i++ {
		amount, err := decimal.NewFromString(AmountBetween(1, 1000))
		require.NoError(t, err)
		require.True(t, amount.GreaterThanOrEqual(decimal.NewFromInt(1)))
		require.True(t, amount.LessThanOrEqual(decimal.NewFromInt(1000)))
	}
}
