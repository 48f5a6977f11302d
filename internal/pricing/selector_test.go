package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRules() Rules {
	return Rules{
		Barry: ChannelRates{
			Retail:         decimal.NewFromFloat(13.5),
			WholesaleBelow: decimal.NewFromFloat(12.75),
			WholesaleAbove: decimal.NewFromFloat(12.25),
		},
		Gawy: ChannelRates{
			Retail:         decimal.NewFromFloat(15.5),
			WholesaleBelow: decimal.NewFromFloat(14.5),
			WholesaleAbove: decimal.NewFromFloat(14),
		},
		WholesaleThreshold: decimal.NewFromInt(1500),
		ExtraMultiplier:    decimal.NewFromInt(2),
		CouponRate:         decimal.NewFromInt(1),
		ShippingPerOrder:   decimal.NewFromInt(50),
	}
}

func TestSelectRateRetailIgnoresAmount(t *testing.T) {
	rules := testRules()

	for _, amount := range []int64{0, 100, 1500, 100000} {
		rate, err := SelectRate(ChannelBarry, TierRetail, decimal.NewFromInt(amount), rules)
		require.NoError(t, err)
		assert.True(t, rate.Equal(rules.Barry.Retail), "amount=%d", amount)
	}
}

func TestSelectRateWholesaleThresholdIsExclusive(t *testing.T) {
	rules := testRules()

	// Exactly on the threshold stays in the "below" bracket.
	rate, err := SelectRate(ChannelBarry, TierWholesale, decimal.NewFromInt(1500), rules)
	require.NoError(t, err)
	assert.True(t, rate.Equal(rules.Barry.WholesaleBelow))

	rate, err = SelectRate(ChannelBarry, TierWholesale, decimal.NewFromFloat(1500.01), rules)
	require.NoError(t, err)
	assert.True(t, rate.Equal(rules.Barry.WholesaleAbove))

	rate, err = SelectRate(ChannelGawy, TierWholesale, decimal.NewFromInt(900), rules)
	require.NoError(t, err)
	assert.True(t, rate.Equal(rules.Gawy.WholesaleBelow))
}

func TestSelectRateRejectsUnknownClassification(t *testing.T) {
	rules := testRules()

	_, err := SelectRate(Channel("ebay"), TierRetail, decimal.NewFromInt(100), rules)
	assert.ErrorIs(t, err, ErrInvalidClassification)

	_, err = SelectRate(ChannelBarry, Tier(""), decimal.NewFromInt(100), rules)
	assert.ErrorIs(t, err, ErrInvalidClassification)

	_, err = SelectRate(Channel(""), Tier(""), decimal.Zero, rules)
	assert.ErrorIs(t, err, ErrInvalidClassification)
}

func TestSelectRateRejectsNonPositiveRate(t *testing.T) {
	rules := testRules()
	rules.Gawy.Retail = decimal.Zero

	_, err := SelectRate(ChannelGawy, TierRetail, decimal.NewFromInt(100), rules)
	assert.ErrorIs(t, err, ErrNonPositiveRate)
}
