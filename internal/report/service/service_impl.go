// Package service renders the dashboard reports, caching rendered
// aggregates in Redis for a short TTL.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	orderdomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/order/domain"
	reportdomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/report/domain"
	settingsdomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/settings/domain"
)

const (
	cachePrefix = "report:"
	cacheTTL    = 60 * time.Second
)

// AccountGroup extends the raw account totals with the distribution cost
// figures the profit view shows.
type AccountGroup struct {
	reportdomain.Group
	ShippingEGP float64 `json:"shipping_egp"`
	ProfitEGP   float64 `json:"profit_egp"`
}

type Params struct {
	fx.In

	Log      *zap.Logger
	Redis    *redis.Client
	Orders   orderdomain.Repository
	Settings settingsdomain.Service
}

type Service struct {
	log      *zap.Logger
	redis    *redis.Client
	orders   orderdomain.Repository
	settings settingsdomain.Service
}

func New(p Params) *Service {
	return &Service{
		log:      p.Log.Named("report.service"),
		redis:    p.Redis,
		orders:   p.Orders,
		settings: p.Settings,
	}
}

// AsInvalidator exposes the service as the cache invalidation hook the
// order service calls after mutations.
func AsInvalidator(s *Service) reportdomain.Invalidator { return s }

// Accounts reduces orders by source account and attaches per-account
// shipping cost (flat per-order constant from the rules) and profit.
func (s *Service) Accounts(ctx context.Context, filter orderdomain.ListFilter) ([]AccountGroup, error) {
	key := s.cacheKey("accounts", filter)
	var cached []AccountGroup
	if s.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	orders, err := s.orders.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	rules, err := s.settings.Rules(ctx)
	if err != nil {
		return nil, err
	}
	shippingPerOrder := rules.ShippingPerOrder.InexactFloat64()

	groups := reportdomain.Reduce(orders, reportdomain.ByAccount)
	out := make([]AccountGroup, 0, len(groups))
	for _, g := range groups {
		shipping := float64(g.Count) * shippingPerOrder
		out = append(out, AccountGroup{
			Group:       g,
			ShippingEGP: shipping,
			ProfitEGP:   g.TotalEGP - shipping,
		})
	}

	s.toCache(ctx, key, out)
	return out, nil
}

// Clients reduces orders by customer name and channel.
func (s *Service) Clients(ctx context.Context, filter orderdomain.ListFilter) ([]reportdomain.Group, error) {
	key := s.cacheKey("clients", filter)
	var cached []reportdomain.Group
	if s.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	orders, err := s.orders.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := reportdomain.Reduce(orders, reportdomain.ByCustomerChannel)
	s.toCache(ctx, key, out)
	return out, nil
}

// Daily reduces orders into per-day groups with hour-of-day buckets.
func (s *Service) Daily(ctx context.Context, filter orderdomain.ListFilter) ([]reportdomain.DayGroup, error) {
	key := s.cacheKey("daily", filter)
	var cached []reportdomain.DayGroup
	if s.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	orders, err := s.orders.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := reportdomain.ReduceByDay(orders)
	s.toCache(ctx, key, out)
	return out, nil
}

// InvalidateOrders drops every cached report. Best effort: a failed scan
// only means a stale report until the TTL expires.
func (s *Service) InvalidateOrders(ctx context.Context) {
	iter := s.redis.Scan(ctx, 0, cachePrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		s.log.Warn("report cache scan failed", zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := s.redis.Del(ctx, keys...).Err(); err != nil {
		s.log.Warn("report cache invalidation failed", zap.Error(err))
	}
}

func (s *Service) cacheKey(view string, filter orderdomain.ListFilter) string {
	return fmt.Sprintf("%s%s:%s|%s|%s|%s|%d|%d",
		cachePrefix, view,
		filter.Channel, filter.Status, filter.CustomerID, filter.AccountName,
		filter.CreatedAfter.Unix(), filter.CreatedUntil.Unix(),
	)
}

func (s *Service) fromCache(ctx context.Context, key string, dest any) bool {
	raw, err := s.redis.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		s.log.Warn("corrupt report cache entry", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *Service) toCache(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, key, raw, cacheTTL).Err(); err != nil {
		s.log.Warn("report cache write failed", zap.String("key", key), zap.Error(err))
	}
}
