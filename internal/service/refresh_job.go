package service

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/okugula/work-kg-admin/internal/logger"
	"github.com/okugula/work-kg-admin/models"
)

// every fires at a constant interval. Unlike cron.Every it keeps sub-second
// precision.
type every time.Duration

func (e every) Next(t time.Time) time.Time {
	return t.Add(time.Duration(e))
}

// cronLogger routes cron's own logging to zerolog.
type cronLogger struct {
	logger *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error().Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}

type refreshJob struct {
	dashboard DashboardService
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a refreshJob that reloads the dashboard on a cron
// schedule. The job is idle until Start is called.
func NewRefreshJob(dashboard DashboardService, logger *logger.Logger) RefreshJob {
	return &refreshJob{dashboard: dashboard, logger: logger}
}

// Start implements RefreshJob. A zero or negative interval leaves the job
// stopped. A reload still running when the next one is due is not
// overlapped.
func (j *refreshJob) Start(ctx context.Context, interval time.Duration, onLoad func(models.Dashboard, error)) {
	j.Stop()

	if interval <= 0 {
		return
	}

	log := cronLogger{logger: j.logger}
	c := cron.New(
		cron.WithLogger(log),
		cron.WithChain(cron.Recover(log), cron.SkipIfStillRunning(log)),
	)

	jobCtx, cancel := context.WithCancel(ctx)
	c.Schedule(every(interval), cron.FuncJob(func() {
		dash, err := j.dashboard.Load(jobCtx)
		if jobCtx.Err() != nil {
			return
		}
		onLoad(dash, err)
	}))
	c.Start()

	j.mu.Lock()
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Debug().Str("func", "refreshJob.Start").Dur("interval", interval).Msg("dashboard refresh started")

	go func() {
		defer j.wg.Done()
		<-jobCtx.Done()
		<-c.Stop().Done()
	}()
}

// Stop implements RefreshJob. Safe to call when the job is not running.
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
