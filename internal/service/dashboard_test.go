package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/okugula/work-kg-admin/internal/logger"
	"github.com/okugula/work-kg-admin/internal/mock"
	"github.com/okugula/work-kg-admin/models"
)

func TestDashboardService_Load_AllSucceed(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAdminAPI(ctrl)
	svc := NewDashboardService(api, logger.Nop())
	ctx := context.Background()

	api.EXPECT().GetJobs(ctx).Return([]models.Job{{ID: 1}}, nil)
	api.EXPECT().GetUsers(ctx).Return([]models.User{{ID: 2}}, nil)
	api.EXPECT().GetResumes(ctx).Return([]models.Resume{{ID: 3}}, nil)
	api.EXPECT().GetStats(ctx).Return(models.Stats{TotalJobs: 1, TotalUsers: 1}, nil)

	dash, err := svc.Load(ctx)
	require.NoError(t, err)

	assert.Len(t, dash.Jobs, 1)
	assert.Len(t, dash.Users, 1)
	assert.Len(t, dash.Resumes, 1)
	require.NotNil(t, dash.Stats)
	assert.Equal(t, 1, dash.Stats.TotalJobs)
	assert.NoError(t, dash.JobsErr)
	assert.NoError(t, dash.StatsErr)
}

func TestDashboardService_Load_FailureIsIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAdminAPI(ctrl)
	svc := NewDashboardService(api, logger.Nop())
	ctx := context.Background()

	usersErr := errors.New("users unavailable")
	statsErr := errors.New("stats unavailable")

	api.EXPECT().GetJobs(ctx).Return([]models.Job{{ID: 1}}, nil)
	api.EXPECT().GetUsers(ctx).Return(nil, usersErr)
	api.EXPECT().GetResumes(ctx).Return([]models.Resume{{ID: 3}}, nil)
	api.EXPECT().GetStats(ctx).Return(models.Stats{}, statsErr)

	dash, err := svc.Load(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, usersErr)
	assert.ErrorIs(t, err, statsErr)
	assert.Contains(t, err.Error(), "load users")

	assert.Len(t, dash.Jobs, 1)
	assert.Len(t, dash.Resumes, 1)
	assert.Nil(t, dash.Users)
	assert.Nil(t, dash.Stats)
	assert.ErrorIs(t, dash.UsersErr, usersErr)
	assert.ErrorIs(t, dash.StatsErr, statsErr)
	assert.NoError(t, dash.JobsErr)
	assert.NoError(t, dash.ResumesErr)
}

func TestDashboardService_Load_FastFailureDoesNotCancelSlowResource(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAdminAPI(ctrl)
	svc := NewDashboardService(api, logger.Nop())

	jobsErr := errors.New("jobs unavailable")
	api.EXPECT().GetJobs(gomock.Any()).Return(nil, jobsErr)
	api.EXPECT().GetUsers(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.User, error) {
		time.Sleep(20 * time.Millisecond)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return []models.User{{ID: 2}}, nil
	})
	api.EXPECT().GetResumes(gomock.Any()).Return(nil, nil)
	api.EXPECT().GetStats(gomock.Any()).Return(models.Stats{}, nil)

	dash, err := svc.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, jobsErr)
	assert.NoError(t, dash.UsersErr)
	assert.Len(t, dash.Users, 1)
}

func TestDashboardService_Load_AllFailuresAreJoined(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAdminAPI(ctrl)
	svc := NewDashboardService(api, logger.Nop())
	down := errors.New("backend down")

	api.EXPECT().GetJobs(gomock.Any()).Return(nil, down)
	api.EXPECT().GetUsers(gomock.Any()).Return(nil, down)
	api.EXPECT().GetResumes(gomock.Any()).Return(nil, down)
	api.EXPECT().GetStats(gomock.Any()).Return(models.Stats{}, down)

	dash, err := svc.Load(context.Background())
	require.Error(t, err)
	for _, name := range []string{"load jobs", "load users", "load resumes", "load stats"} {
		assert.Contains(t, err.Error(), name)
	}
	assert.Nil(t, dash.Stats)
	assert.ErrorIs(t, dash.StatsErr, down)
}
