package service

import (
	"context"

	"github.com/jarredbaird/express-jobly/data/repository"
	"github.com/jarredbaird/express-jobly/ecode"
	"github.com/jarredbaird/express-jobly/structs"
)

// JobServiceInterface is the job business API used by the handlers.
type JobServiceInterface interface {
	Create(ctx context.Context, body *structs.CreateJobBody) (*structs.Job, error)
	List(ctx context.Context, filter *structs.JobFilter) ([]*structs.Job, error)
	Get(ctx context.Context, id int) (*structs.Job, error)
	Update(ctx context.Context, id int, body *structs.UpdateJobBody) (*structs.Job, error)
	Delete(ctx context.Context, id int) error
}

type jobService struct {
	job repository.JobRepositoryInterface
}

// NewJobService creates a new job service.
func NewJobService(job repository.JobRepositoryInterface) JobServiceInterface {
	return &jobService{job: job}
}

// Create creates a job.
func (s *jobService) Create(ctx context.Context, body *structs.CreateJobBody) (*structs.Job, error) {
	return s.job.Create(ctx, body)
}

// List returns the jobs matching the filter.
func (s *jobService) List(ctx context.Context, filter *structs.JobFilter) ([]*structs.Job, error) {
	if filter == nil {
		filter = &structs.JobFilter{}
	}
	if err := filter.Check(); err != nil {
		return nil, err
	}
	return s.job.FindAll(ctx, filter.Conditions())
}

// Get returns one job.
func (s *jobService) Get(ctx context.Context, id int) (*structs.Job, error) {
	return s.job.Get(ctx, id)
}

// Update applies the supplied members of body.
func (s *jobService) Update(ctx context.Context, id int, body *structs.UpdateJobBody) (*structs.Job, error) {
	fields, err := body.Fields()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, ecode.New(ecode.ParamErr, "no data to update")
	}
	return s.job.Update(ctx, id, fields)
}

// Delete removes a job.
func (s *jobService) Delete(ctx context.Context, id int) error {
	return s.job.Remove(ctx, id)
}
