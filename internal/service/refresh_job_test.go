package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/okugula/work-kg-admin/internal/logger"
	"github.com/okugula/work-kg-admin/internal/mock"
	"github.com/okugula/work-kg-admin/models"
)

func TestRefreshJob_ReloadsUntilStopped(t *testing.T) {
	ctrl := gomock.NewController(t)
	dashboard := mock.NewMockDashboardService(ctrl)
	dashboard.EXPECT().Load(gomock.Any()).Return(models.Dashboard{}, nil).MinTimes(2)

	var loads atomic.Int32
	job := NewRefreshJob(dashboard, logger.Nop())
	job.Start(context.Background(), 5*time.Millisecond, func(models.Dashboard, error) {
		loads.Add(1)
	})

	assert.Eventually(t, func() bool { return loads.Load() >= 2 }, time.Second, time.Millisecond)

	job.Stop()
	stopped := loads.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, loads.Load())
}

func TestRefreshJob_ZeroIntervalDoesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	dashboard := mock.NewMockDashboardService(ctrl)

	job := NewRefreshJob(dashboard, logger.Nop())
	job.Start(context.Background(), 0, func(models.Dashboard, error) {
		t.Error("unexpected reload")
	})
	job.Stop()
}

func TestRefreshJob_StopWithoutStart(t *testing.T) {
	NewRefreshJob(nil, logger.Nop()).Stop()
}

func TestRefreshJob_ContextCancelStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	dashboard := mock.NewMockDashboardService(ctrl)
	dashboard.EXPECT().Load(gomock.Any()).Return(models.Dashboard{}, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	job := NewRefreshJob(dashboard, logger.Nop())
	job.Start(ctx, time.Millisecond, func(models.Dashboard, error) {})

	cancel()
	job.Stop()
}

func TestRefreshJob_RestartReplacesRunningJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	dashboard := mock.NewMockDashboardService(ctrl)
	dashboard.EXPECT().Load(gomock.Any()).Return(models.Dashboard{}, nil).AnyTimes()

	var first, second atomic.Int32
	job := NewRefreshJob(dashboard, logger.Nop())
	job.Start(context.Background(), 2*time.Millisecond, func(models.Dashboard, error) { first.Add(1) })
	job.Start(context.Background(), 2*time.Millisecond, func(models.Dashboard, error) { second.Add(1) })

	assert.Eventually(t, func() bool { return second.Load() >= 1 }, time.Second, time.Millisecond)
	stale := first.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stale, first.Load())

	job.Stop()
}

func TestEvery_Next(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, now.Add(250*time.Millisecond), every(250*time.Millisecond).Next(now))
}
