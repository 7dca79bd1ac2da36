package domain

import (
	"context"
	"time"
)

type Experience struct {
	ID          string    `json:"id" bson:"_id"`
	UserID      string    `json:"userId" bson:"user_id" validate:"required,uuid"`
	Title       string    `json:"title" bson:"title" validate:"required,max=200"`
	Description string    `json:"description" bson:"description" validate:"required"`
	FromYear    int       `json:"fromYear" bson:"from_year" validate:"required,min=1900,max_current_year"`
	ToYear      *int      `json:"toYear,omitempty" bson:"to_year,omitempty" validate:"omitempty,gtefield=FromYear,max_current_year"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updated_at"`
}

// ExperienceUpdate overwrites only the non-nil fields.
type ExperienceUpdate struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	FromYear    *int    `json:"fromYear" validate:"omitempty,min=1900,max_current_year"`
	ToYear      *int    `json:"toYear" validate:"omitempty,max_current_year"`
}

type ExperienceRepository interface {
	Create(ctx context.Context, exp *Experience) error
	GetByID(ctx context.Context, id string) (*Experience, error)
	List(ctx context.Context, limit, offset int) ([]Experience, int64, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Experience, error)
	Update(ctx context.Context, exp *Experience) error
	Delete(ctx context.Context, id string) error
}

type ExperienceUsecase interface {
	CreateExperience(ctx context.Context, exp *Experience) error
	GetExperience(ctx context.Context, id string) (*Experience, error)
	ListExperiences(ctx context.Context, page Pagination) ([]Experience, int64, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Experience, error)
	UpdateExperience(ctx context.Context, id string, update ExperienceUpdate) (*Experience, error)
	DeleteExperience(ctx context.Context, id string) error
}
