package service

import (
	"context"
	"fmt"

	"github.com/okugula/work-kg-admin/internal/adapter"
	"github.com/okugula/work-kg-admin/internal/logger"
	"github.com/okugula/work-kg-admin/models"
)

type jobService struct {
	api    adapter.AdminAPI
	logger *logger.Logger
}

func NewJobService(api adapter.AdminAPI, logger *logger.Logger) JobService {
	return &jobService{api: api, logger: logger}
}

func (j *jobService) List(ctx context.Context) ([]models.Job, error) {
	return j.api.GetJobs(ctx)
}

func (j *jobService) Save(ctx context.Context, id int64, input models.JobInput) (models.Job, error) {
	switch {
	case id < 0:
		return models.Job{}, fmt.Errorf("%w: %d", ErrInvalidJobID, id)
	case id == 0:
		job, err := j.api.CreateJob(ctx, input)
		if err != nil {
			return models.Job{}, fmt.Errorf("create job: %w", err)
		}
		j.logger.Info().Int64("job_id", job.ID).Msg("job created")
		return job, nil
	default:
		job, err := j.api.UpdateJob(ctx, id, input)
		if err != nil {
			return models.Job{}, fmt.Errorf("update job %d: %w", id, err)
		}
		j.logger.Info().Int64("job_id", id).Msg("job updated")
		return job, nil
	}
}

func (j *jobService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidJobID, id)
	}

	if err := j.api.DeleteJob(ctx, id); err != nil {
		return fmt.Errorf("delete job %d: %w", id, err)
	}

	j.logger.Info().Int64("job_id", id).Msg("job deleted")
	return nil
}
