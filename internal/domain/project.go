package domain

import (
	"context"
	"time"
)

type Project struct {
	ID          string    `json:"id" bson:"_id"`
	UserID      string    `json:"userId" bson:"user_id" validate:"required,uuid"`
	Topic       string    `json:"topic" bson:"topic" validate:"required,max=200"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Skills      []string  `json:"skills" bson:"skill"`
	Year        int       `json:"year" bson:"year" validate:"required,min=1900,max_current_year"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updated_at"`
}

// ProjectUpdate overwrites only the non-nil fields.
type ProjectUpdate struct {
	Topic       *string   `json:"topic" validate:"omitempty,min=1,max=200"`
	Description *string   `json:"description"`
	Skills      *[]string `json:"skills"`
	Year        *int      `json:"year" validate:"omitempty,min=1900,max_current_year"`
}

type ProjectRepository interface {
	Create(ctx context.Context, project *Project) error
	GetByID(ctx context.Context, id string) (*Project, error)
	List(ctx context.Context, limit, offset int) ([]Project, int64, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Project, error)
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id string) error
}

type ProjectUsecase interface {
	CreateProject(ctx context.Context, project *Project) error
	GetProject(ctx context.Context, id string) (*Project, error)
	ListProjects(ctx context.Context, page Pagination) ([]Project, int64, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Project, error)
	UpdateProject(ctx context.Context, id string, update ProjectUpdate) (*Project, error)
	DeleteProject(ctx context.Context, id string) error
}
