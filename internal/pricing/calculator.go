package pricing

import "github.com/shopspring/decimal"

var five = decimal.NewFromInt(5)

// Input is the raw-field snapshot of one order. Every field is supplied
// externally; none of them is derived.
type Input struct {
	Channel Channel
	Tier    Tier

	// Source-currency fields.
	GrossSource  decimal.Decimal
	Discount1    decimal.Decimal
	Discount2    decimal.Decimal
	Discount3    decimal.Decimal
	Coupon       decimal.Decimal // coupon units, converted via Rules.CouponRate
	PaidToSource decimal.Decimal // paid directly to the source supplier
	LossSource   decimal.Decimal // goods lost or damaged in transit
	ExtraSource  decimal.Decimal // extra units, converted via Rules.ExtraMultiplier

	// EGP fields.
	DepositEGP           decimal.Decimal
	PaidAfterDeliveryEGP decimal.Decimal

	Pieces int
}

// Financials is the full derived-field record for one order. Recomputing it
// from the same Input and Rules always yields identical values.
type Financials struct {
	NetSource      decimal.Decimal `json:"net_source"`
	Rate           decimal.Decimal `json:"rate"`
	BaseEGP        decimal.Decimal `json:"base_egp"`
	ExtraEGP       decimal.Decimal `json:"extra_egp"`
	TotalEGP       decimal.Decimal `json:"total_egp"`
	OutstandingEGP decimal.Decimal `json:"outstanding_egp"`
}

// Calculate derives every monetary field for one order.
//
// The loss amount is deducted exactly once: it participates in the net
// source amount used both for rate-bracket selection and for the base EGP
// amount, and is never subtracted again from the total. The legacy
// dashboards disagreed with each other on this (one of them deducted loss
// twice); that behavior is a defect and is not reproduced.
func Calculate(in Input, rules Rules) (Financials, error) {
	if in.Pieces < 0 || in.GrossSource.IsNegative() {
		return Financials{}, ErrInvalidOrderInput
	}
	if !in.Channel.Valid() || !in.Tier.Valid() {
		return Financials{}, ErrInvalidClassification
	}

	deductions := decimal.Sum(
		in.Discount1,
		in.Discount2,
		in.Discount3,
		in.Coupon.Mul(rules.CouponRate),
		in.PaidToSource,
		in.LossSource,
	)

	net := in.GrossSource.Sub(deductions)
	if net.IsNegative() {
		net = decimal.Zero
	}

	rate, err := SelectRate(in.Channel, in.Tier, net, rules)
	if err != nil {
		return Financials{}, err
	}

	base := net.Mul(rate)
	extra := in.ExtraSource.Mul(rules.ExtraMultiplier)

	total := roundForTier(base.Add(extra), in.Tier)

	outstanding := total.Sub(in.DepositEGP).Sub(in.PaidAfterDeliveryEGP)
	if outstanding.IsNegative() {
		outstanding = decimal.Zero
	}
	outstanding = roundForTier(outstanding, in.Tier)

	return Financials{
		NetSource:      net,
		Rate:           rate,
		BaseEGP:        base,
		ExtraEGP:       extra,
		TotalEGP:       total,
		OutstandingEGP: outstanding,
	}, nil
}

// roundForTier applies the tier rounding rule: retail totals round to the
// nearest multiple of 5, wholesale totals round to the nearest whole EGP.
// Ties round away from zero in both cases.
func roundForTier(v decimal.Decimal, tier Tier) decimal.Decimal {
	if tier == TierRetail {
		return v.Div(five).Round(0).Mul(five)
	}
	return v.Round(0)
}
