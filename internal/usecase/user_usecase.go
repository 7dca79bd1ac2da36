package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const msgInvalidCredentials = "Invalid email or password"

type userUsecase struct {
	userRepo domain.UserRepository
	mediaUC  domain.MediaUsecase
	validate *validator.Validate
	now      func() time.Time
}

func NewUserUsecase(userRepo domain.UserRepository, mediaUC domain.MediaUsecase, validate *validator.Validate) domain.UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
		mediaUC:  mediaUC,
		validate: validate,
		now:      time.Now,
	}
}

func (u *userUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	input.Email = domain.NormalizeEmail(input.Email)
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	if err := validateStruct(u.validate, input); err != nil {
		return nil, err
	}

	existing, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("Email already registered")
	}

	role := input.Role
	if role == "" {
		role = domain.RoleApplicant
	}
	now := u.now().UTC()
	user := &domain.User{
		ID:        uuid.NewString(),
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Skills:    []string{},
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := user.SetPassword(input.Password); err != nil {
		return nil, apperror.Internal(err)
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration for the same address.
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("Email already registered")
		}
		return nil, internal(err)
	}
	return user, nil
}

func (u *userUsecase) Login(ctx context.Context, email, password string) (*domain.User, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperror.BadRequest("Email and password are required")
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized(msgInvalidCredentials)
		}
		return nil, internal(err)
	}
	if !user.CheckPassword(password) {
		return nil, apperror.Unauthorized(msgInvalidCredentials)
	}

	user.SyncProfileImageURL()
	return user, nil
}

func (u *userUsecase) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if err := validateID(id, "user"); err != nil {
		return nil, err
	}
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "User not found")
	}
	if user.Skills == nil {
		user.Skills = []string{}
	}
	user.SyncProfileImageURL()
	return user, nil
}

func (u *userUsecase) UpdateProfile(ctx context.Context, id string, update domain.ProfileUpdate) (*domain.User, error) {
	trim(update.FirstName)
	trim(update.LastName)
	if err := validateStruct(u.validate, update); err != nil {
		return nil, err
	}

	user, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.Title != nil {
		user.Title = strings.TrimSpace(*update.Title)
	}
	if update.Location != nil {
		user.Location = strings.TrimSpace(*update.Location)
	}
	if update.Description != nil {
		user.Description = strings.TrimSpace(*update.Description)
	}
	user.UpdatedAt = u.now().UTC()

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, notFoundOr(err, "User not found")
	}
	return user, nil
}

func (u *userUsecase) UpdateSkills(ctx context.Context, id string, skills []string) ([]string, error) {
	user, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if skills == nil {
		skills = []string{}
	}
	user.Skills = skills
	user.UpdatedAt = u.now().UTC()

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, notFoundOr(err, "User not found")
	}
	return user.Skills, nil
}

func (u *userUsecase) UpdateProfileImage(ctx context.Context, id string, upload domain.Upload) (*domain.User, error) {
	user, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.mediaUC.ValidateUploads([]domain.Upload{upload}); err != nil {
		return nil, err
	}

	media, err := u.mediaUC.Store(ctx, upload)
	if err != nil {
		return nil, err
	}

	old := user.ProfileImage
	user.ProfileImage = &media.ID
	user.UpdatedAt = u.now().UTC()
	if err := u.userRepo.Update(ctx, user); err != nil {
		u.mediaUC.DeleteQuietly(ctx, media.ID)
		return nil, notFoundOr(err, "User not found")
	}

	if old != nil {
		u.mediaUC.DeleteQuietly(ctx, *old)
	}
	user.SyncProfileImageURL()
	return user, nil
}

func (u *userUsecase) DeleteUser(ctx context.Context, id string) error {
	user, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := u.userRepo.Delete(ctx, id); err != nil {
		return notFoundOr(err, "User not found")
	}
	if user.ProfileImage != nil {
		u.mediaUC.DeleteQuietly(ctx, *user.ProfileImage)
	}
	return nil
}

func trim(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
