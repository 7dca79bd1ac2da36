package domain

import (
	"context"
	"time"
)

const (
	JobTypeFullTime   = "Full-time"
	JobTypePartTime   = "Part-time"
	JobTypeContract   = "Contract"
	JobTypeInternship = "Internship"
)

type Job struct {
	ID           string    `json:"id" bson:"_id"`
	UserID       string    `json:"userId" bson:"user_id" validate:"required,uuid"`
	Title        string    `json:"title" bson:"title" validate:"required,max=200"`
	Company      string    `json:"company" bson:"company" validate:"required,max=200"`
	Location     string    `json:"location" bson:"location" validate:"required,max=200"`
	JobType      string    `json:"jobType" bson:"jobType" validate:"required,oneof=Full-time Part-time Contract Internship"`
	SalaryRange  string    `json:"salaryRange,omitempty" bson:"salaryRange,omitempty"`
	Description  string    `json:"description,omitempty" bson:"description,omitempty"`
	Requirements []string  `json:"requirements" bson:"requirements"`
	CreatedAt    time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updated_at"`
}

type JobFilter struct {
	JobType  string
	Location string
	Search   string
}

// JobUpdate overwrites only the non-nil fields.
type JobUpdate struct {
	Title        *string   `json:"title" validate:"omitempty,min=1,max=200"`
	Company      *string   `json:"company" validate:"omitempty,min=1,max=200"`
	Location     *string   `json:"location" validate:"omitempty,min=1,max=200"`
	JobType      *string   `json:"jobType" validate:"omitempty,oneof=Full-time Part-time Contract Internship"`
	SalaryRange  *string   `json:"salaryRange"`
	Description  *string   `json:"description"`
	Requirements *[]string `json:"requirements"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id string) (*Job, error)
	List(ctx context.Context, filter JobFilter, limit, offset int) ([]Job, int64, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Job, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id string) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, job *Job) error
	GetJob(ctx context.Context, id string) (*Job, error)
	ListJobs(ctx context.Context, filter JobFilter, page Pagination) ([]Job, int64, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Job, error)
	UpdateJob(ctx context.Context, id string, update JobUpdate) (*Job, error)
	DeleteJob(ctx context.Context, id string) error
}
