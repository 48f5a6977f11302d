// Package domain holds the singleton settings document: pricing rules,
// notification templates, and the enumerable lists the dashboard renders.
package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/pricing"
)

// DocumentID is the fixed key of the singleton settings document.
const DocumentID = "global"

// ChannelRatesDoc stores one channel's rates as doubles; arithmetic never
// happens on these directly, they are converted to a pricing.Rules snapshot.
type ChannelRatesDoc struct {
	Retail         float64 `bson:"retail" json:"retail"`
	WholesaleBelow float64 `bson:"wholesale_below" json:"wholesale_below"`
	WholesaleAbove float64 `bson:"wholesale_above" json:"wholesale_above"`
}

type RulesDoc struct {
	Barry              ChannelRatesDoc `bson:"barry" json:"barry"`
	Gawy               ChannelRatesDoc `bson:"gawy" json:"gawy"`
	WholesaleThreshold float64         `bson:"wholesale_threshold" json:"wholesale_threshold"`
	ExtraMultiplier    float64         `bson:"extra_multiplier" json:"extra_multiplier"`
	CouponRate         float64         `bson:"coupon_rate" json:"coupon_rate"`
	ShippingPerOrder   float64         `bson:"shipping_per_order" json:"shipping_per_order"`
}

// ToRules builds an immutable pricing snapshot from the stored doubles.
func (r RulesDoc) ToRules() pricing.Rules {
	return pricing.Rules{
		Barry:              r.Barry.toRates(),
		Gawy:               r.Gawy.toRates(),
		WholesaleThreshold: decimal.NewFromFloat(r.WholesaleThreshold),
		ExtraMultiplier:    decimal.NewFromFloat(r.ExtraMultiplier),
		CouponRate:         decimal.NewFromFloat(r.CouponRate),
		ShippingPerOrder:   decimal.NewFromFloat(r.ShippingPerOrder),
	}
}

func (c ChannelRatesDoc) toRates() pricing.ChannelRates {
	return pricing.ChannelRates{
		Retail:         decimal.NewFromFloat(c.Retail),
		WholesaleBelow: decimal.NewFromFloat(c.WholesaleBelow),
		WholesaleAbove: decimal.NewFromFloat(c.WholesaleAbove),
	}
}

// Templates are the outbound notification message templates. Substitution
// tokens: {customerName}, {orderId}, {outstandingAmount}.
type Templates struct {
	InDistribution string `bson:"in_distribution" json:"in_distribution"`
}

type Document struct {
	ID          string    `bson:"_id" json:"-"`
	Rules       RulesDoc  `bson:"rules" json:"rules"`
	Templates   Templates `bson:"templates" json:"templates"`
	StatusNames []string  `bson:"status_names" json:"status_names"`
	ClientTypes []string  `bson:"client_types" json:"client_types"`
	OrderTypes  []string  `bson:"order_types" json:"order_types"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

type Repository interface {
	Load(ctx context.Context) (*Document, error)
	Save(ctx context.Context, doc *Document) error
}

// Service hands out consistent snapshots of the settings document. A
// snapshot taken before an admin rewrite stays valid for the calculation
// that holds it.
type Service interface {
	Get(ctx context.Context) (*Document, error)
	Update(ctx context.Context, doc Document) (*Document, error)
	Rules(ctx context.Context) (pricing.Rules, error)
	Templates(ctx context.Context) (Templates, error)
}
