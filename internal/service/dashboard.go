package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/okugula/work-kg-admin/internal/adapter"
	"github.com/okugula/work-kg-admin/internal/logger"
	"github.com/okugula/work-kg-admin/models"
)

type dashboardService struct {
	api    adapter.AdminAPI
	logger *logger.Logger
}

func NewDashboardService(api adapter.AdminAPI, logger *logger.Logger) DashboardService {
	return &dashboardService{api: api, logger: logger}
}

func (d *dashboardService) Load(ctx context.Context) (models.Dashboard, error) {
	var dash models.Dashboard

	// no WithContext: one failed resource must not cancel the others
	var g errgroup.Group

	g.Go(func() error {
		dash.Jobs, dash.JobsErr = d.api.GetJobs(ctx)
		return nil
	})
	g.Go(func() error {
		dash.Users, dash.UsersErr = d.api.GetUsers(ctx)
		return nil
	})
	g.Go(func() error {
		dash.Resumes, dash.ResumesErr = d.api.GetResumes(ctx)
		return nil
	})
	g.Go(func() error {
		stats, err := d.api.GetStats(ctx)
		if err != nil {
			dash.StatsErr = err
			return nil
		}
		dash.Stats = &stats
		return nil
	})
	// the goroutines never fail; per-resource errors are recorded in dash
	g.Wait()

	var errs []error
	for _, r := range []struct {
		name string
		err  error
	}{
		{"jobs", dash.JobsErr},
		{"users", dash.UsersErr},
		{"resumes", dash.ResumesErr},
		{"stats", dash.StatsErr},
	} {
		if r.err != nil {
			errs = append(errs, fmt.Errorf("load %s: %w", r.name, r.err))
		}
	}

	err := errors.Join(errs...)
	if err != nil {
		d.logger.Warn().Err(err).Str("func", "dashboardService.Load").Msg("dashboard loaded partially")
	}

	return dash, err
}
