// Package domain folds order collections into the grouped totals behind
// the dashboard's summary views. Reducers are pure; filtering is the
// caller's job, caching is the service layer's.
package domain

import (
	"fmt"
	"strings"

	orderdomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/order/domain"
)

// UnknownKey is the explicit bucket for orders whose grouping field is
// empty. Orders are never dropped for a missing key.
const UnknownKey = "Unknown"

// Totals accumulates the summable fields of a set of orders.
type Totals struct {
	Count          int     `json:"count"`
	Pieces         int     `json:"pieces"`
	TotalEGP       float64 `json:"total_egp"`
	DepositEGP     float64 `json:"deposit_egp"`
	OutstandingEGP float64 `json:"outstanding_egp"`
	Discount1      float64 `json:"discount1"`
	Discount2      float64 `json:"discount2"`
	Discount3      float64 `json:"discount3"`
	Coupon         float64 `json:"coupon"`
	PaidToSource   float64 `json:"paid_to_source"`
	LossSource     float64 `json:"loss_source"`
}

func (t *Totals) add(o orderdomain.Order) {
	t.Count++
	t.Pieces += o.Pieces
	t.TotalEGP += o.TotalEGP
	t.DepositEGP += o.DepositEGP
	t.OutstandingEGP += o.OutstandingEGP
	t.Discount1 += o.Discount1
	t.Discount2 += o.Discount2
	t.Discount3 += o.Discount3
	t.Coupon += o.Coupon
	t.PaidToSource += o.PaidToSource
	t.LossSource += o.LossSource
}

// Group is one reduced bucket.
type Group struct {
	Key string `json:"key"`
	Totals
}

// KeyFunc extracts the grouping key from one order. Return "" to send the
// order to the Unknown bucket.
type KeyFunc func(o orderdomain.Order) string

// ByAccount groups by the source account name.
func ByAccount(o orderdomain.Order) string {
	return strings.TrimSpace(o.AccountName)
}

// ByCustomerChannel groups by customer name and channel together, so the
// same client buying through both pipelines shows up twice.
func ByCustomerChannel(o orderdomain.Order) string {
	name := strings.TrimSpace(o.CustomerName)
	if name == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s", name, o.Channel)
}

// Reduce folds orders into one Group per distinct key. Every order lands in
// exactly one group; group ordering follows the first occurrence of each
// key in the input.
func Reduce(orders []orderdomain.Order, key KeyFunc) []Group {
	index := make(map[string]int, len(orders))
	groups := make([]Group, 0)

	for _, o := range orders {
		k := key(o)
		if k == "" {
			k = UnknownKey
		}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Key: k})
		}
		groups[i].add(o)
	}
	return groups
}

// HourBucket is one slot of a day's 24-hour histogram.
type HourBucket struct {
	Count    int     `json:"count"`
	Pieces   int     `json:"pieces"`
	TotalEGP float64 `json:"total_egp"`
}

// DayGroup is one calendar day's totals plus its per-hour distribution.
type DayGroup struct {
	Day string `json:"day"`
	Totals
	Hours [24]HourBucket `json:"hours"`
}

// ReduceByDay groups by calendar day of the order's creation time and
// fills the per-hour buckets used by the intake-by-hour chart.
func ReduceByDay(orders []orderdomain.Order) []DayGroup {
	index := make(map[string]int, len(orders))
	groups := make([]DayGroup, 0)

	for _, o := range orders {
		day := o.CreatedAt.Format("2006-01-02")
		i, ok := index[day]
		if !ok {
			i = len(groups)
			index[day] = i
			groups = append(groups, DayGroup{Day: day})
		}
		groups[i].add(o)

		h := o.CreatedAt.Hour()
		groups[i].Hours[h].Count++
		groups[i].Hours[h].Pieces += o.Pieces
		groups[i].Hours[h].TotalEGP += o.TotalEGP
	}
	return groups
}
