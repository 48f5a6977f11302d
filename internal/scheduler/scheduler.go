// Package scheduler runs the periodic housekeeping jobs.
package scheduler

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/clock"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/config"
	orderdomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/order/domain"
)

var Module = fx.Module("scheduler",
	fx.Provide(New),
)

type Params struct {
	fx.In

	Log    *zap.Logger
	Cfg    config.Config
	Clock  clock.Clock
	Orders orderdomain.Repository
}

type Scheduler struct {
	log    *zap.Logger
	cfg    config.SchedulerConfig
	clock  clock.Clock
	orders orderdomain.Repository
}

func New(p Params) *Scheduler {
	return &Scheduler{
		log:    p.Log.Named("scheduler"),
		cfg:    p.Cfg.Scheduler,
		clock:  p.Clock,
		orders: p.Orders,
	}
}

// RunForever ticks the housekeeping jobs until the context is cancelled.
func (s *Scheduler) RunForever(ctx context.Context) {
	interval := time.Duration(s.cfg.IntervalMinutes) * time.Minute
	if interval <= 0 {
		interval = time.Hour
	}

	s.log.Info("scheduler started", zap.Duration("interval", interval))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := s.RetentionJob(ctx); err != nil {
			s.log.Error("retention job failed", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopped")
			return
		case <-ticker.C:
		}
	}
}

// RetentionJob purges delivered orders older than the retention window.
func (s *Scheduler) RetentionJob(ctx context.Context) error {
	days := s.cfg.RetentionDays
	if days <= 0 {
		s.log.Info("order retention disabled", zap.Int("days", days))
		return nil
	}

	cutoff := s.clock.Now().AddDate(0, 0, -days)
	deleted, err := s.orders.DeleteDeliveredBefore(ctx, cutoff)
	if err != nil {
		return err
	}
	if deleted > 0 {
		s.log.Info("purged delivered orders",
			zap.Time("cutoff", cutoff),
			zap.Int64("deleted", deleted))
	}
	return nil
}
