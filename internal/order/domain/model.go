// Package domain holds the order aggregate persisted in the orders
// collection of the document store.
package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/pricing"
)

// Status is the order workflow state. The sequence is ordered; the legacy
// dashboards only ever moved orders forward through it but never enforced
// that, so CanTransition is advisory and enforcement is the caller's choice.
type Status string

const (
	StatusRequested              Status = "requested"
	StatusOrderPlaced            Status = "order_placed"
	StatusShippedToDestination   Status = "shipped_to_destination"
	StatusDeliveredToDestination Status = "delivered_to_destination"
	StatusInDistribution         Status = "in_distribution"
	StatusShippedToClient        Status = "shipped_to_client"
)

var statusRank = map[Status]int{
	StatusRequested:              0,
	StatusOrderPlaced:            1,
	StatusShippedToDestination:   2,
	StatusDeliveredToDestination: 3,
	StatusInDistribution:         4,
	StatusShippedToClient:        5,
}

func (s Status) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransition reports whether moving from s to next goes forward in the
// workflow. Staying in place counts as forward.
func (s Status) CanTransition(next Status) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to >= from
}

// Order is the mutable order aggregate. Identity is the channel-prefixed
// sequential code ("B-42"). Monetary fields are stored as doubles in the
// document store; all arithmetic on them goes through the pricing package.
type Order struct {
	Code       string          `bson:"code" json:"code"`
	CustomerID string          `bson:"customer_id" json:"customer_id"`
	Channel    pricing.Channel `bson:"channel" json:"channel"`
	Tier       pricing.Tier    `bson:"tier" json:"tier"`

	// Free-form grouping keys used by the reports.
	CustomerName string `bson:"customer_name" json:"customer_name"`
	AccountName  string `bson:"account_name" json:"account_name"`

	// Raw inputs, each independently editable.
	GrossSource          float64 `bson:"gross_source" json:"gross_source"`
	Pieces               int     `bson:"pieces" json:"pieces"`
	Discount1            float64 `bson:"discount1" json:"discount1"`
	Discount2            float64 `bson:"discount2" json:"discount2"`
	Discount3            float64 `bson:"discount3" json:"discount3"`
	Coupon               float64 `bson:"coupon" json:"coupon"`
	PaidToSource         float64 `bson:"paid_to_source" json:"paid_to_source"`
	ExtraSource          float64 `bson:"extra_source" json:"extra_source"`
	LossSource           float64 `bson:"loss_source" json:"loss_source"`
	DepositEGP           float64 `bson:"deposit_egp" json:"deposit_egp"`
	PaidAfterDeliveryEGP float64 `bson:"paid_after_delivery_egp" json:"paid_after_delivery_egp"`

	// Derived fields, recomputed on every raw-field change. Never written
	// directly by a user.
	NetSource      float64 `bson:"net_source" json:"net_source"`
	Rate           float64 `bson:"rate" json:"rate"`
	BaseEGP        float64 `bson:"base_egp" json:"base_egp"`
	ExtraEGP       float64 `bson:"extra_egp" json:"extra_egp"`
	TotalEGP       float64 `bson:"total_egp" json:"total_egp"`
	OutstandingEGP float64 `bson:"outstanding_egp" json:"outstanding_egp"`

	Status      Status     `bson:"status" json:"status"`
	DeliveredAt *time.Time `bson:"delivered_at,omitempty" json:"delivered_at,omitempty"`

	UploadID    string    `bson:"upload_id,omitempty" json:"upload_id,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	LastUpdated time.Time `bson:"last_updated" json:"last_updated"`
}

// PricingInput converts the order's raw fields into a pricing calculation
// input.
func (o *Order) PricingInput() pricing.Input {
	return pricing.Input{
		Channel:              o.Channel,
		Tier:                 o.Tier,
		GrossSource:          dec(o.GrossSource),
		Discount1:            dec(o.Discount1),
		Discount2:            dec(o.Discount2),
		Discount3:            dec(o.Discount3),
		Coupon:               dec(o.Coupon),
		PaidToSource:         dec(o.PaidToSource),
		ExtraSource:          dec(o.ExtraSource),
		LossSource:           dec(o.LossSource),
		DepositEGP:           dec(o.DepositEGP),
		PaidAfterDeliveryEGP: dec(o.PaidAfterDeliveryEGP),
		Pieces:               o.Pieces,
	}
}

// ApplyFinancials writes a computed derived-field set onto the order.
func (o *Order) ApplyFinancials(fin pricing.Financials) {
	o.NetSource = fin.NetSource.InexactFloat64()
	o.Rate = fin.Rate.InexactFloat64()
	o.BaseEGP = fin.BaseEGP.InexactFloat64()
	o.ExtraEGP = fin.ExtraEGP.InexactFloat64()
	o.TotalEGP = fin.TotalEGP.InexactFloat64()
	o.OutstandingEGP = fin.OutstandingEGP.InexactFloat64()
}

// FormatCode builds a channel-prefixed order code from a sequence number.
func FormatCode(channel pricing.Channel, seq int64) string {
	return fmt.Sprintf("%s-%d", channel.CodePrefix(), seq)
}

// ChannelForCode reports which channel an order code belongs to, from its
// prefix letter.
func ChannelForCode(code string) (pricing.Channel, bool) {
	for _, ch := range []pricing.Channel{pricing.ChannelBarry, pricing.ChannelGawy} {
		if strings.HasPrefix(code, ch.CodePrefix()+"-") {
			return ch, true
		}
	}
	return "", false
}

// CodeNumber parses the trailing integer of an order code for numeric
// ordering. Codes with no parseable number are treated as 0 so they sort
// before all numbered codes.
func CodeNumber(code string) int64 {
	idx := strings.LastIndex(code, "-")
	if idx < 0 || idx == len(code)-1 {
		return 0
	}
	n, err := strconv.ParseInt(code[idx+1:], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// SortByCode orders in place by the numeric suffix of the order code, so
// "B-9" comes before "B-10". Ties fall back to the full code string.
func SortByCode(orders []Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		ni, nj := CodeNumber(orders[i].Code), CodeNumber(orders[j].Code)
		if ni != nj {
			return ni < nj
		}
		return orders[i].Code < orders[j].Code
	})
}
