package usecase

import (
	"context"
	"strings"
	"time"

	"job-portal-backend/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type projectUsecase struct {
	projectRepo domain.ProjectRepository
	validate    *validator.Validate
	now         func() time.Time
}

func NewProjectUsecase(projectRepo domain.ProjectRepository, validate *validator.Validate) domain.ProjectUsecase {
	return &projectUsecase{
		projectRepo: projectRepo,
		validate:    validate,
		now:         time.Now,
	}
}

func (u *projectUsecase) CreateProject(ctx context.Context, project *domain.Project) error {
	project.Topic = strings.TrimSpace(project.Topic)
	if err := validateStruct(u.validate, project); err != nil {
		return err
	}

	if project.Skills == nil {
		project.Skills = []string{}
	}
	project.ID = uuid.NewString()
	project.CreatedAt = u.now().UTC()
	project.UpdatedAt = project.CreatedAt

	return internalOrNil(u.projectRepo.Create(ctx, project))
}

func (u *projectUsecase) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	if err := validateID(id, "project"); err != nil {
		return nil, err
	}
	project, err := u.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Project not found")
	}
	return project, nil
}

func (u *projectUsecase) ListProjects(ctx context.Context, page domain.Pagination) ([]domain.Project, int64, error) {
	page = page.Normalize()
	projects, total, err := u.projectRepo.List(ctx, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, internal(err)
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	return projects, total, nil
}

func (u *projectUsecase) ListByOwner(ctx context.Context, ownerID string) ([]domain.Project, error) {
	if err := validateID(ownerID, "user"); err != nil {
		return nil, err
	}
	projects, err := u.projectRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, internal(err)
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	return projects, nil
}

func (u *projectUsecase) UpdateProject(ctx context.Context, id string, update domain.ProjectUpdate) (*domain.Project, error) {
	trim(update.Topic)
	if err := validateStruct(u.validate, update); err != nil {
		return nil, err
	}

	project, err := u.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Topic != nil {
		project.Topic = *update.Topic
	}
	if update.Description != nil {
		project.Description = *update.Description
	}
	if update.Skills != nil {
		project.Skills = *update.Skills
		if project.Skills == nil {
			project.Skills = []string{}
		}
	}
	if update.Year != nil {
		project.Year = *update.Year
	}
	project.UpdatedAt = u.now().UTC()

	if err := u.projectRepo.Update(ctx, project); err != nil {
		return nil, notFoundOr(err, "Project not found")
	}
	return project, nil
}

func (u *projectUsecase) DeleteProject(ctx context.Context, id string) error {
	if err := validateID(id, "project"); err != nil {
		return err
	}
	if err := u.projectRepo.Delete(ctx, id); err != nil {
		return notFoundOr(err, "Project not found")
	}
	return nil
}
