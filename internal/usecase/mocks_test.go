package usecase_test

import (
	"context"

	"job-portal-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockMediaRepo struct {
	mock.Mock
}

func (m *MockMediaRepo) Create(ctx context.Context, media *domain.Media) error {
	return m.Called(ctx, media).Error(0)
}
func (m *MockMediaRepo) GetByID(ctx context.Context, id string) (*domain.Media, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Media), args.Error(1)
}
func (m *MockMediaRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockPostRepo struct {
	mock.Mock
}

func (m *MockPostRepo) Create(ctx context.Context, post *domain.Post) error {
	return m.Called(ctx, post).Error(0)
}
func (m *MockPostRepo) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}
func (m *MockPostRepo) Update(ctx context.Context, post *domain.Post) error {
	return m.Called(ctx, post).Error(0)
}
func (m *MockPostRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockPostRepo) List(ctx context.Context, filter domain.PostFilter, limit, offset int) ([]domain.Post, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	posts, _ := args.Get(0).([]domain.Post)
	return posts, args.Get(1).(int64), args.Error(2)
}
func (m *MockPostRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Post, error) {
	args := m.Called(ctx, ownerID)
	posts, _ := args.Get(0).([]domain.Post)
	return posts, args.Error(1)
}
func (m *MockPostRepo) ListWall(ctx context.Context, userID string, limit, offset int) ([]domain.Post, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	posts, _ := args.Get(0).([]domain.Post)
	return posts, args.Get(1).(int64), args.Error(2)
}

type MockMessageRepo struct {
	mock.Mock
}

func (m *MockMessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	return m.Called(ctx, msg).Error(0)
}
func (m *MockMessageRepo) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Message), args.Error(1)
}
func (m *MockMessageRepo) Update(ctx context.Context, msg *domain.Message) error {
	return m.Called(ctx, msg).Error(0)
}
func (m *MockMessageRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockMessageRepo) ListForUser(ctx context.Context, userID string) ([]domain.MessageView, error) {
	args := m.Called(ctx, userID)
	msgs, _ := args.Get(0).([]domain.MessageView)
	return msgs, args.Error(1)
}
func (m *MockMessageRepo) ListConversation(ctx context.Context, a, b string) ([]domain.MessageView, error) {
	args := m.Called(ctx, a, b)
	msgs, _ := args.Get(0).([]domain.MessageView)
	return msgs, args.Error(1)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) List(ctx context.Context, filter domain.JobFilter, limit, offset int) ([]domain.Job, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	jobs, _ := args.Get(0).([]domain.Job)
	return jobs, args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Job, error) {
	args := m.Called(ctx, ownerID)
	jobs, _ := args.Get(0).([]domain.Job)
	return jobs, args.Error(1)
}
func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockExperienceRepo struct {
	mock.Mock
}

func (m *MockExperienceRepo) Create(ctx context.Context, exp *domain.Experience) error {
	return m.Called(ctx, exp).Error(0)
}
func (m *MockExperienceRepo) GetByID(ctx context.Context, id string) (*domain.Experience, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Experience), args.Error(1)
}
func (m *MockExperienceRepo) List(ctx context.Context, limit, offset int) ([]domain.Experience, int64, error) {
	args := m.Called(ctx, limit, offset)
	exps, _ := args.Get(0).([]domain.Experience)
	return exps, args.Get(1).(int64), args.Error(2)
}
func (m *MockExperienceRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Experience, error) {
	args := m.Called(ctx, ownerID)
	exps, _ := args.Get(0).([]domain.Experience)
	return exps, args.Error(1)
}
func (m *MockExperienceRepo) Update(ctx context.Context, exp *domain.Experience) error {
	return m.Called(ctx, exp).Error(0)
}
func (m *MockExperienceRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Create(ctx context.Context, project *domain.Project) error {
	return m.Called(ctx, project).Error(0)
}
func (m *MockProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectRepo) List(ctx context.Context, limit, offset int) ([]domain.Project, int64, error) {
	args := m.Called(ctx, limit, offset)
	projects, _ := args.Get(0).([]domain.Project)
	return projects, args.Get(1).(int64), args.Error(2)
}
func (m *MockProjectRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Project, error) {
	args := m.Called(ctx, ownerID)
	projects, _ := args.Get(0).([]domain.Project)
	return projects, args.Error(1)
}
func (m *MockProjectRepo) Update(ctx context.Context, project *domain.Project) error {
	return m.Called(ctx, project).Error(0)
}
func (m *MockProjectRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
