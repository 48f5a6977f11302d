package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderdomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/order/domain"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/pricing"
)

func sampleOrders() []orderdomain.Order {
	return []orderdomain.Order{
		{Code: "B-1", AccountName: "acct-a", CustomerName: "Mina", Channel: pricing.ChannelBarry, Pieces: 3, TotalEGP: 1000, DepositEGP: 200, OutstandingEGP: 800},
		{Code: "B-2", AccountName: "acct-b", CustomerName: "Mina", Channel: pricing.ChannelBarry, Pieces: 1, TotalEGP: 500, DepositEGP: 500, OutstandingEGP: 0},
		{Code: "G-1", AccountName: "acct-a", CustomerName: "Mina", Channel: pricing.ChannelGawy, Pieces: 2, TotalEGP: 700, OutstandingEGP: 700, Discount1: 50},
		{Code: "G-2", AccountName: "", CustomerName: "Sara", Channel: pricing.ChannelGawy, Pieces: 5, TotalEGP: 300, OutstandingEGP: 300},
	}
}

func TestReduceByAccountCompleteness(t *testing.T) {
	orders := sampleOrders()
	groups := Reduce(orders, ByAccount)

	var pieces, count int
	var total float64
	for _, g := range groups {
		pieces += g.Pieces
		count += g.Count
		total += g.TotalEGP
	}

	var wantPieces int
	var wantTotal float64
	for _, o := range orders {
		wantPieces += o.Pieces
		wantTotal += o.TotalEGP
	}

	assert.Equal(t, len(orders), count, "every order counted exactly once")
	assert.Equal(t, wantPieces, pieces)
	assert.InDelta(t, wantTotal, total, 1e-9)
}

func TestReduceStableFirstOccurrenceOrder(t *testing.T) {
	groups := Reduce(sampleOrders(), ByAccount)
	require.Len(t, groups, 3)

	assert.Equal(t, "acct-a", groups[0].Key)
	assert.Equal(t, "acct-b", groups[1].Key)
	assert.Equal(t, UnknownKey, groups[2].Key)
}

func TestReduceMissingKeyGoesToUnknownBucket(t *testing.T) {
	groups := Reduce(sampleOrders(), ByAccount)

	var unknown *Group
	for i := range groups {
		if groups[i].Key == UnknownKey {
			unknown = &groups[i]
		}
	}
	require.NotNil(t, unknown)
	assert.Equal(t, 1, unknown.Count)
	assert.Equal(t, 5, unknown.Pieces)
}

func TestReduceByCustomerChannelSplitsChannels(t *testing.T) {
	groups := Reduce(sampleOrders(), ByCustomerChannel)

	keys := make([]string, 0, len(groups))
	for _, g := range groups {
		keys = append(keys, g.Key)
	}
	assert.Equal(t, []string{"Mina/barry", "Mina/gawy", "Sara/gawy"}, keys)

	assert.Equal(t, 2, groups[0].Count)
	assert.InDelta(t, 1500, groups[0].TotalEGP, 1e-9)
}

func TestReduceByDayFillsHourBuckets(t *testing.T) {
	day := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	orders := []orderdomain.Order{
		{Code: "B-1", Pieces: 2, TotalEGP: 100, CreatedAt: day.Add(9 * time.Hour)},
		{Code: "B-2", Pieces: 1, TotalEGP: 50, CreatedAt: day.Add(9*time.Hour + 30*time.Minute)},
		{Code: "B-3", Pieces: 4, TotalEGP: 200, CreatedAt: day.Add(17 * time.Hour)},
		{Code: "B-4", Pieces: 1, TotalEGP: 75, CreatedAt: day.AddDate(0, 0, 1)},
	}

	groups := ReduceByDay(orders)
	require.Len(t, groups, 2)

	first := groups[0]
	assert.Equal(t, "2025-11-03", first.Day)
	assert.Equal(t, 3, first.Count)
	assert.Equal(t, 2, first.Hours[9].Count)
	assert.Equal(t, 3, first.Hours[9].Pieces)
	assert.InDelta(t, 150, first.Hours[9].TotalEGP, 1e-9)
	assert.Equal(t, 1, first.Hours[17].Count)

	// Hour buckets account for every order in the day group.
	var bucketCount int
	for _, h := range first.Hours {
		bucketCount += h.Count
	}
	assert.Equal(t, first.Count, bucketCount)

	assert.Equal(t, "2025-11-04", groups[1].Day)
	assert.Equal(t, 1, groups[1].Count)
}

func TestReduceEmptyInput(t *testing.T) {
	assert.Empty(t, Reduce(nil, ByAccount))
	assert.Empty(t, ReduceByDay(nil))
}
