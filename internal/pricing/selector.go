package pricing

import "github.com/shopspring/decimal"

// SelectRate returns the source-to-EGP conversion rate for the given
// classification. Retail always gets the channel's flat retail rate.
// Wholesale compares netSource against the threshold: strictly greater uses
// the "above" rate, equal or below uses the "below" rate.
func SelectRate(channel Channel, tier Tier, netSource decimal.Decimal, rules Rules) (decimal.Decimal, error) {
	rates, ok := rules.channelRates(channel)
	if !ok {
		return decimal.Zero, ErrInvalidClassification
	}

	var rate decimal.Decimal
	switch tier {
	case TierRetail:
		rate = rates.Retail
	case TierWholesale:
		if netSource.GreaterThan(rules.WholesaleThreshold) {
			rate = rates.WholesaleAbove
		} else {
			rate = rates.WholesaleBelow
		}
	default:
		return decimal.Zero, ErrInvalidClassification
	}

	if !rate.IsPositive() {
		return decimal.Zero, ErrNonPositiveRate
	}
	return rate, nil
}
