// Package pricing implements the order pricing engine: conversion-rate
// selection and derivation of every monetary field on an order. All
// functions are pure; callers pass an explicit Rules snapshot so that one
// calculation never mixes values from two different settings versions.
package pricing

import "github.com/shopspring/decimal"

// Channel identifies one of the two parallel order pipelines. Each channel
// carries its own rate table and order-code prefix.
type Channel string

const (
	ChannelBarry Channel = "barry"
	ChannelGawy  Channel = "gawy"
)

// CodePrefix returns the prefix used for sequential order codes ("B-42").
func (c Channel) CodePrefix() string {
	switch c {
	case ChannelBarry:
		return "B"
	case ChannelGawy:
		return "G"
	default:
		return ""
	}
}

func (c Channel) Valid() bool {
	return c == ChannelBarry || c == ChannelGawy
}

// Tier is the customer pricing category.
type Tier string

const (
	TierRetail    Tier = "retail"
	TierWholesale Tier = "wholesale"
)

func (t Tier) Valid() bool {
	return t == TierRetail || t == TierWholesale
}

// ChannelRates holds the source-to-EGP conversion rates for one channel.
// Wholesale customers get one of two rates depending on whether the order's
// net source amount exceeds the wholesale threshold.
type ChannelRates struct {
	Retail         decimal.Decimal `json:"retail"`
	WholesaleBelow decimal.Decimal `json:"wholesale_below"`
	WholesaleAbove decimal.Decimal `json:"wholesale_above"`
}

// Rules is an immutable pricing configuration snapshot. It is loaded from
// the settings store once per calculation; mutating a Rules value that a
// calculation already holds is a caller bug.
type Rules struct {
	Barry ChannelRates `json:"barry"`
	Gawy  ChannelRates `json:"gawy"`

	// WholesaleThreshold is the net source amount above which (strictly)
	// the wholesale "above" rate applies.
	WholesaleThreshold decimal.Decimal `json:"wholesale_threshold"`

	// ExtraMultiplier converts extra source units into EGP.
	ExtraMultiplier decimal.Decimal `json:"extra_multiplier"`

	// CouponRate converts coupon units into source currency before they are
	// deducted from the gross amount.
	CouponRate decimal.Decimal `json:"coupon_rate"`

	// ShippingPerOrder is the flat per-order shipping cost in EGP. It does
	// not participate in order totals; the profit report subtracts it.
	ShippingPerOrder decimal.Decimal `json:"shipping_per_order"`
}

func (r Rules) channelRates(c Channel) (ChannelRates, bool) {
	switch c {
	case ChannelBarry:
		return r.Barry, true
	case ChannelGawy:
		return r.Gawy, true
	default:
		return ChannelRates{}, false
	}
}
