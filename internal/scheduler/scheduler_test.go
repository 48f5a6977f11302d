package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/config"
	orderdomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/order/domain"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type purgeRepo struct {
	orderdomain.Repository

	cutoff  time.Time
	deleted int64
	calls   int
}

func (r *purgeRepo) DeleteDeliveredBefore(_ context.Context, cutoff time.Time) (int64, error) {
	r.calls++
	r.cutoff = cutoff
	return r.deleted, nil
}

func TestRetentionJobUsesConfiguredWindow(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	repo := &purgeRepo{deleted: 3}
	s := New(Params{
		Log:    zap.NewNop(),
		Cfg:    config.Config{Scheduler: config.SchedulerConfig{RetentionDays: 60}},
		Clock:  fixedClock{t: now},
		Orders: repo,
	})

	require.NoError(t, s.RetentionJob(context.Background()))
	assert.Equal(t, now.AddDate(0, 0, -60), repo.cutoff)
	assert.Equal(t, 1, repo.calls)
}

func TestRetentionJobSkipsWhenDisabled(t *testing.T) {
	repo := &purgeRepo{}
	s := New(Params{
		Log:    zap.NewNop(),
		Cfg:    config.Config{Scheduler: config.SchedulerConfig{RetentionDays: 0}},
		Clock:  fixedClock{t: time.Now()},
		Orders: repo,
	})

	require.NoError(t, s.RetentionJob(context.Background()))
	assert.Zero(t, repo.calls)
}

func TestRunForeverStopsOnCancel(t *testing.T) {
	repo := &purgeRepo{}
	s := New(Params{
		Log:    zap.NewNop(),
		Cfg:    config.Config{Scheduler: config.SchedulerConfig{RetentionDays: 60, IntervalMinutes: 60}},
		Clock:  fixedClock{t: time.Now()},
		Orders: repo,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.RunForever(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop after cancellation")
	}
	assert.Equal(t, 1, repo.calls)
}
