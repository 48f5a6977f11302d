package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func TestCalculateBarryWholesaleEndToEnd(t *testing.T) {
	// gross=2000, no deductions, deposit=500: net 2000 > threshold 1500,
	// so the above-rate 12.25 applies. 2000*12.25 = 24500.
	fin, err := Calculate(Input{
		Channel:     ChannelBarry,
		Tier:        TierWholesale,
		GrossSource: d(2000),
		DepositEGP:  d(500),
		Pieces:      3,
	}, testRules())
	require.NoError(t, err)

	assert.True(t, fin.NetSource.Equal(d(2000)), "net: %s", fin.NetSource)
	assert.True(t, fin.Rate.Equal(d(12.25)), "rate: %s", fin.Rate)
	assert.True(t, fin.BaseEGP.Equal(d(24500)), "base: %s", fin.BaseEGP)
	assert.True(t, fin.TotalEGP.Equal(d(24500)), "total: %s", fin.TotalEGP)
	assert.True(t, fin.OutstandingEGP.Equal(d(24000)), "outstanding: %s", fin.OutstandingEGP)
}

func TestCalculateGawyRetailEndToEnd(t *testing.T) {
	// gross=1000, discount1=100, extra=50, deposit=2000: net 900, retail
	// rate 15.5, base 13950, extra 50*2=100, total 14050 (already a
	// multiple of 5), outstanding 12050.
	fin, err := Calculate(Input{
		Channel:     ChannelGawy,
		Tier:        TierRetail,
		GrossSource: d(1000),
		Discount1:   d(100),
		ExtraSource: d(50),
		DepositEGP:  d(2000),
		Pieces:      1,
	}, testRules())
	require.NoError(t, err)

	assert.True(t, fin.NetSource.Equal(d(900)))
	assert.True(t, fin.Rate.Equal(d(15.5)))
	assert.True(t, fin.BaseEGP.Equal(d(13950)))
	assert.True(t, fin.ExtraEGP.Equal(d(100)))
	assert.True(t, fin.TotalEGP.Equal(d(14050)))
	assert.True(t, fin.OutstandingEGP.Equal(d(12050)))
}

func TestRetailRoundsToNearestFive(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{1042, 1040},
		{1043, 1045},
		{1042.5, 1045}, // tie rounds away from zero
		{0, 0},
		{2.4, 0},
		{2.5, 5},
	}
	for _, tc := range cases {
		got := roundForTier(d(tc.in), TierRetail)
		assert.True(t, got.Equal(d(tc.want)), "round(%v) = %s, want %v", tc.in, got, tc.want)
	}
}

func TestWholesaleRoundsToWholeEGP(t *testing.T) {
	assert.True(t, roundForTier(d(1042.4), TierWholesale).Equal(d(1042)))
	assert.True(t, roundForTier(d(1042.5), TierWholesale).Equal(d(1043)))
	assert.True(t, roundForTier(d(1042.6), TierWholesale).Equal(d(1043)))
}

func TestLossDeductedExactlyOnce(t *testing.T) {
	rules := testRules()

	withLoss, err := Calculate(Input{
		Channel:     ChannelBarry,
		Tier:        TierWholesale,
		GrossSource: d(2000),
		LossSource:  d(600),
	}, rules)
	require.NoError(t, err)

	// Net drops to 1400, which also flips the bracket to the below-rate.
	assert.True(t, withLoss.NetSource.Equal(d(1400)))
	assert.True(t, withLoss.Rate.Equal(rules.Barry.WholesaleBelow))

	// Total is exactly net*rate: the loss must not be subtracted a second
	// time after the base amount is computed.
	want := d(1400).Mul(rules.Barry.WholesaleBelow).Round(0)
	assert.True(t, withLoss.TotalEGP.Equal(want), "total: %s, want %s", withLoss.TotalEGP, want)
}

func TestOutstandingNeverNegative(t *testing.T) {
	cases := []Input{
		{Channel: ChannelBarry, Tier: TierRetail, GrossSource: d(100), DepositEGP: d(1e6)},
		{Channel: ChannelGawy, Tier: TierWholesale, GrossSource: d(50), DepositEGP: d(400), PaidAfterDeliveryEGP: d(400)},
		{Channel: ChannelBarry, Tier: TierWholesale, GrossSource: d(0), DepositEGP: d(10)},
		{Channel: ChannelGawy, Tier: TierRetail, GrossSource: d(1000), Discount1: d(2000)},
	}
	for i, in := range cases {
		fin, err := Calculate(in, testRules())
		require.NoError(t, err, "case %d", i)
		assert.False(t, fin.OutstandingEGP.IsNegative(), "case %d: %s", i, fin.OutstandingEGP)
	}
}

func TestDeductionsClampNetAtZero(t *testing.T) {
	fin, err := Calculate(Input{
		Channel:      ChannelBarry,
		Tier:         TierRetail,
		GrossSource:  d(500),
		Discount1:    d(300),
		Discount2:    d(300),
		PaidToSource: d(100),
	}, testRules())
	require.NoError(t, err)

	assert.True(t, fin.NetSource.IsZero())
	assert.True(t, fin.BaseEGP.IsZero())
	assert.True(t, fin.TotalEGP.IsZero())
}

func TestCouponConvertedViaCouponRate(t *testing.T) {
	rules := testRules()
	rules.CouponRate = d(2.5)

	fin, err := Calculate(Input{
		Channel:     ChannelBarry,
		Tier:        TierWholesale,
		GrossSource: d(1000),
		Coupon:      d(40), // 40 * 2.5 = 100 source currency
	}, rules)
	require.NoError(t, err)

	assert.True(t, fin.NetSource.Equal(d(900)), "net: %s", fin.NetSource)
}

func TestCalculateIsIdempotent(t *testing.T) {
	in := Input{
		Channel:              ChannelGawy,
		Tier:                 TierRetail,
		GrossSource:          d(1234.56),
		Discount2:            d(78.9),
		Coupon:               d(12),
		LossSource:           d(3.21),
		ExtraSource:          d(7),
		DepositEGP:           d(5000),
		PaidAfterDeliveryEGP: d(250),
		Pieces:               4,
	}
	rules := testRules()

	first, err := Calculate(in, rules)
	require.NoError(t, err)
	second, err := Calculate(in, rules)
	require.NoError(t, err)

	assert.Equal(t, first.NetSource.String(), second.NetSource.String())
	assert.Equal(t, first.Rate.String(), second.Rate.String())
	assert.Equal(t, first.BaseEGP.String(), second.BaseEGP.String())
	assert.Equal(t, first.ExtraEGP.String(), second.ExtraEGP.String())
	assert.Equal(t, first.TotalEGP.String(), second.TotalEGP.String())
	assert.Equal(t, first.OutstandingEGP.String(), second.OutstandingEGP.String())
}

func TestCalculateRejectsBadInput(t *testing.T) {
	rules := testRules()

	_, err := Calculate(Input{Channel: ChannelBarry, Tier: TierRetail, GrossSource: d(-1)}, rules)
	assert.ErrorIs(t, err, ErrInvalidOrderInput)

	_, err = Calculate(Input{Channel: ChannelBarry, Tier: TierRetail, Pieces: -2}, rules)
	assert.ErrorIs(t, err, ErrInvalidOrderInput)

	_, err = Calculate(Input{Tier: TierRetail, GrossSource: d(100)}, rules)
	assert.ErrorIs(t, err, ErrInvalidClassification)

	_, err = Calculate(Input{Channel: ChannelGawy, GrossSource: d(100)}, rules)
	assert.ErrorIs(t, err, ErrInvalidClassification)
}
