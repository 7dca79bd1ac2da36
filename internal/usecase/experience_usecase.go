package usecase

import (
	"context"
	"strings"
	"time"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type experienceUsecase struct {
	expRepo  domain.ExperienceRepository
	validate *validator.Validate
	now      func() time.Time
}

func NewExperienceUsecase(expRepo domain.ExperienceRepository, validate *validator.Validate) domain.ExperienceUsecase {
	return &experienceUsecase{
		expRepo:  expRepo,
		validate: validate,
		now:      time.Now,
	}
}

func (u *experienceUsecase) CreateExperience(ctx context.Context, exp *domain.Experience) error {
	exp.Title = strings.TrimSpace(exp.Title)
	exp.Description = strings.TrimSpace(exp.Description)
	if err := validateStruct(u.validate, exp); err != nil {
		return err
	}

	exp.ID = uuid.NewString()
	exp.CreatedAt = u.now().UTC()
	exp.UpdatedAt = exp.CreatedAt

	return internalOrNil(u.expRepo.Create(ctx, exp))
}

func (u *experienceUsecase) GetExperience(ctx context.Context, id string) (*domain.Experience, error) {
	if err := validateID(id, "experience"); err != nil {
		return nil, err
	}
	exp, err := u.expRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Experience not found")
	}
	return exp, nil
}

func (u *experienceUsecase) ListExperiences(ctx context.Context, page domain.Pagination) ([]domain.Experience, int64, error) {
	page = page.Normalize()
	exps, total, err := u.expRepo.List(ctx, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, internal(err)
	}
	if exps == nil {
		exps = []domain.Experience{}
	}
	return exps, total, nil
}

func (u *experienceUsecase) ListByOwner(ctx context.Context, ownerID string) ([]domain.Experience, error) {
	if err := validateID(ownerID, "user"); err != nil {
		return nil, err
	}
	exps, err := u.expRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, internal(err)
	}
	if exps == nil {
		exps = []domain.Experience{}
	}
	return exps, nil
}

func (u *experienceUsecase) UpdateExperience(ctx context.Context, id string, update domain.ExperienceUpdate) (*domain.Experience, error) {
	trim(update.Title)
	trim(update.Description)
	if err := validateStruct(u.validate, update); err != nil {
		return nil, err
	}

	exp, err := u.GetExperience(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		exp.Title = *update.Title
	}
	if update.Description != nil {
		exp.Description = *update.Description
	}
	if update.FromYear != nil {
		exp.FromYear = *update.FromYear
	}
	if update.ToYear != nil {
		exp.ToYear = update.ToYear
	}
	// The range is checked against the merged record, not the patch alone.
	if exp.ToYear != nil && *exp.ToYear < exp.FromYear {
		return nil, apperror.BadRequest("To year must be greater than or equal to from year")
	}
	exp.UpdatedAt = u.now().UTC()

	if err := u.expRepo.Update(ctx, exp); err != nil {
		return nil, notFoundOr(err, "Experience not found")
	}
	return exp, nil
}

func (u *experienceUsecase) DeleteExperience(ctx context.Context, id string) error {
	if err := validateID(id, "experience"); err != nil {
		return err
	}
	if err := u.expRepo.Delete(ctx, id); err != nil {
		return notFoundOr(err, "Experience not found")
	}
	return nil
}
