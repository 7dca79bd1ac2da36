package v1

import (
	"context"

	"job-portal-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockUserUC struct{ mock.Mock }

func (m *MockUserUC) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserUC) Login(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserUC) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserUC) UpdateProfile(ctx context.Context, id string, update domain.ProfileUpdate) (*domain.User, error) {
	args := m.Called(ctx, id, update)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserUC) UpdateSkills(ctx context.Context, id string, skills []string) ([]string, error) {
	args := m.Called(ctx, id, skills)
	if s := args.Get(0); s != nil {
		return s.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserUC) UpdateProfileImage(ctx context.Context, id string, upload domain.Upload) (*domain.User, error) {
	args := m.Called(ctx, id, upload)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserUC) DeleteUser(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockPostUC struct{ mock.Mock }

func (m *MockPostUC) CreatePost(ctx context.Context, input domain.CreatePostInput) (*domain.Post, error) {
	args := m.Called(ctx, input)
	if p := args.Get(0); p != nil {
		return p.(*domain.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostUC) ListPosts(ctx context.Context, filter domain.PostFilter, page domain.Pagination) (*domain.PostPage, error) {
	args := m.Called(ctx, filter, page)
	if p := args.Get(0); p != nil {
		return p.(*domain.PostPage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostUC) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*domain.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostUC) UpdatePost(ctx context.Context, id string, update domain.PostUpdate, uploads []domain.Upload) (*domain.Post, error) {
	args := m.Called(ctx, id, update, uploads)
	if p := args.Get(0); p != nil {
		return p.(*domain.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostUC) DeletePost(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPostUC) ToggleLike(ctx context.Context, postID, userID string) (*domain.LikeResult, error) {
	args := m.Called(ctx, postID, userID)
	if r := args.Get(0); r != nil {
		return r.(*domain.LikeResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostUC) ListByOwner(ctx context.Context, ownerID string) ([]domain.Post, error) {
	args := m.Called(ctx, ownerID)
	if p := args.Get(0); p != nil {
		return p.([]domain.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostUC) ListWall(ctx context.Context, userID string, page domain.Pagination) (*domain.PostPage, error) {
	args := m.Called(ctx, userID, page)
	if p := args.Get(0); p != nil {
		return p.(*domain.PostPage), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockMessageUC struct{ mock.Mock }

func (m *MockMessageUC) CreateMessage(ctx context.Context, input domain.CreateMessageInput) (*domain.Message, error) {
	args := m.Called(ctx, input)
	if msg := args.Get(0); msg != nil {
		return msg.(*domain.Message), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMessageUC) ListForUser(ctx context.Context, userID string) ([]domain.MessageView, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]domain.MessageView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMessageUC) GetConversation(ctx context.Context, a, b string) ([]domain.MessageView, error) {
	args := m.Called(ctx, a, b)
	if v := args.Get(0); v != nil {
		return v.([]domain.MessageView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMessageUC) UpdateMessage(ctx context.Context, id, text string) (*domain.Message, error) {
	args := m.Called(ctx, id, text)
	if msg := args.Get(0); msg != nil {
		return msg.(*domain.Message), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMessageUC) DeleteMessage(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockMediaUC struct{ mock.Mock }

func (m *MockMediaUC) ValidateUploads(uploads []domain.Upload) error {
	return m.Called(uploads).Error(0)
}

func (m *MockMediaUC) Store(ctx context.Context, upload domain.Upload) (*domain.Media, error) {
	args := m.Called(ctx, upload)
	if md := args.Get(0); md != nil {
		return md.(*domain.Media), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMediaUC) StoreAll(ctx context.Context, uploads []domain.Upload) ([]string, error) {
	args := m.Called(ctx, uploads)
	if ids := args.Get(0); ids != nil {
		return ids.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMediaUC) Fetch(ctx context.Context, id string) (*domain.Media, error) {
	args := m.Called(ctx, id)
	if md := args.Get(0); md != nil {
		return md.(*domain.Media), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMediaUC) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMediaUC) DeleteQuietly(ctx context.Context, ids ...string) {
	m.Called(ctx, ids)
}

type MockJobUC struct{ mock.Mock }

func (m *MockJobUC) CreateJob(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobUC) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if j := args.Get(0); j != nil {
		return j.(*domain.Job), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJobUC) ListJobs(ctx context.Context, filter domain.JobFilter, page domain.Pagination) ([]domain.Job, int64, error) {
	args := m.Called(ctx, filter, page)
	if j := args.Get(0); j != nil {
		return j.([]domain.Job), args.Get(1).(int64), args.Error(2)
	}
	return nil, 0, args.Error(2)
}

func (m *MockJobUC) ListByOwner(ctx context.Context, ownerID string) ([]domain.Job, error) {
	args := m.Called(ctx, ownerID)
	if j := args.Get(0); j != nil {
		return j.([]domain.Job), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJobUC) UpdateJob(ctx context.Context, id string, update domain.JobUpdate) (*domain.Job, error) {
	args := m.Called(ctx, id, update)
	if j := args.Get(0); j != nil {
		return j.(*domain.Job), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJobUC) DeleteJob(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockHealthUC struct{ mock.Mock }

func (m *MockHealthUC) Check(ctx context.Context) (map[string]string, bool) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]string), args.Bool(1)
}
