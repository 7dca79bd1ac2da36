package usecase

import (
	"context"
	"strings"
	"time"

	"job-portal-backend/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type jobUsecase struct {
	jobRepo  domain.JobRepository
	validate *validator.Validate
	now      func() time.Time
}

func NewJobUsecase(jobRepo domain.JobRepository, validate *validator.Validate) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:  jobRepo,
		validate: validate,
		now:      time.Now,
	}
}

func (u *jobUsecase) CreateJob(ctx context.Context, job *domain.Job) error {
	job.Title = strings.TrimSpace(job.Title)
	job.Company = strings.TrimSpace(job.Company)
	job.Location = strings.TrimSpace(job.Location)
	if err := validateStruct(u.validate, job); err != nil {
		return err
	}

	if job.Requirements == nil {
		job.Requirements = []string{}
	}
	job.ID = uuid.NewString()
	job.CreatedAt = u.now().UTC()
	job.UpdatedAt = job.CreatedAt

	return internalOrNil(u.jobRepo.Create(ctx, job))
}

func (u *jobUsecase) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	if err := validateID(id, "job"); err != nil {
		return nil, err
	}
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Job not found")
	}
	return job, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context, filter domain.JobFilter, page domain.Pagination) ([]domain.Job, int64, error) {
	page = page.Normalize()
	filter.Search = strings.TrimSpace(filter.Search)

	jobs, total, err := u.jobRepo.List(ctx, filter, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, internal(err)
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	return jobs, total, nil
}

func (u *jobUsecase) ListByOwner(ctx context.Context, ownerID string) ([]domain.Job, error) {
	if err := validateID(ownerID, "user"); err != nil {
		return nil, err
	}
	jobs, err := u.jobRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, internal(err)
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	return jobs, nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, id string, update domain.JobUpdate) (*domain.Job, error) {
	trim(update.Title)
	trim(update.Company)
	trim(update.Location)
	if err := validateStruct(u.validate, update); err != nil {
		return nil, err
	}

	job, err := u.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		job.Title = *update.Title
	}
	if update.Company != nil {
		job.Company = *update.Company
	}
	if update.Location != nil {
		job.Location = *update.Location
	}
	if update.JobType != nil {
		job.JobType = *update.JobType
	}
	if update.SalaryRange != nil {
		job.SalaryRange = strings.TrimSpace(*update.SalaryRange)
	}
	if update.Description != nil {
		job.Description = *update.Description
	}
	if update.Requirements != nil {
		job.Requirements = *update.Requirements
		if job.Requirements == nil {
			job.Requirements = []string{}
		}
	}
	job.UpdatedAt = u.now().UTC()

	if err := u.jobRepo.Update(ctx, job); err != nil {
		return nil, notFoundOr(err, "Job not found")
	}
	return job, nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, id string) error {
	if err := validateID(id, "job"); err != nil {
		return err
	}
	if err := u.jobRepo.Delete(ctx, id); err != nil {
		return notFoundOr(err, "Job not found")
	}
	return nil
}
