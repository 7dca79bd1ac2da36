package objectstore

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	putErr  error
}

func newMemStore() *memStore {
	return &memStore{objects: map[string][]byte{}}
}

func (s *memStore) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	if s.putErr != nil {
		return s.putErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return nil
}

func (s *memStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	if !ok {
		return nil, storage.ErrObjectNotFound
	}
	return data, nil
}

func (s *memStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

type MockMetaRepo struct {
	mock.Mock
}

func (m *MockMetaRepo) Create(ctx context.Context, media *domain.Media) error {
	return m.Called(ctx, media).Error(0)
}
func (m *MockMetaRepo) GetByID(ctx context.Context, id string) (*domain.Media, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Media), args.Error(1)
}
func (m *MockMetaRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func TestMediaRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Should store bytes in the bucket and metadata without them", func(t *testing.T) {
		store := newMemStore()
		meta := new(MockMetaRepo)
		repo := NewMediaRepository(meta, store)
		meta.On("Create", mock.Anything, mock.MatchedBy(func(m *domain.Media) bool {
			return m.ID == "m1" && m.Data == nil && m.Size == 3
		})).Return(nil)

		media := &domain.Media{ID: "m1", ContentType: "image/gif", Data: []byte("GIF"), Size: 3}
		require.NoError(t, repo.Create(ctx, media))
		assert.Equal(t, []byte("GIF"), store.objects["media/m1"])
		assert.Equal(t, []byte("GIF"), media.Data)
	})

	t.Run("Should remove the object when the metadata write fails", func(t *testing.T) {
		store := newMemStore()
		meta := new(MockMetaRepo)
		repo := NewMediaRepository(meta, store)
		meta.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

		err := repo.Create(ctx, &domain.Media{ID: "m1", Data: []byte("x")})
		require.Error(t, err)
		assert.Empty(t, store.objects)
	})

	t.Run("Should not write metadata when the upload fails", func(t *testing.T) {
		store := newMemStore()
		store.putErr = errors.New("bucket unavailable")
		meta := new(MockMetaRepo)
		repo := NewMediaRepository(meta, store)

		require.Error(t, repo.Create(ctx, &domain.Media{ID: "m1", Data: []byte("x")}))
		meta.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should join metadata and bytes on read", func(t *testing.T) {
		store := newMemStore()
		store.objects["media/m1"] = []byte("PNG")
		meta := new(MockMetaRepo)
		repo := NewMediaRepository(meta, store)
		meta.On("GetByID", mock.Anything, "m1").Return(&domain.Media{ID: "m1", ContentType: "image/png"}, nil)

		got, err := repo.GetByID(ctx, "m1")
		require.NoError(t, err)
		assert.Equal(t, []byte("PNG"), got.Data)
		assert.Equal(t, "image/png", got.ContentType)
	})

	t.Run("Should report a missing object as not found", func(t *testing.T) {
		meta := new(MockMetaRepo)
		repo := NewMediaRepository(meta, newMemStore())
		meta.On("GetByID", mock.Anything, "m1").Return(&domain.Media{ID: "m1"}, nil)

		_, err := repo.GetByID(ctx, "m1")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Should delete metadata and object", func(t *testing.T) {
		store := newMemStore()
		store.objects["media/m1"] = []byte("x")
		meta := new(MockMetaRepo)
		repo := NewMediaRepository(meta, store)
		meta.On("Delete", mock.Anything, "m1").Return(nil)

		require.NoError(t, repo.Delete(ctx, "m1"))
		assert.Empty(t, store.objects)
	})

	t.Run("Should keep the object when the metadata is missing", func(t *testing.T) {
		store := newMemStore()
		store.objects["media/m1"] = []byte("x")
		meta := new(MockMetaRepo)
		repo := NewMediaRepository(meta, store)
		meta.On("Delete", mock.Anything, "m1").Return(domain.ErrNotFound)

		assert.ErrorIs(t, repo.Delete(ctx, "m1"), domain.ErrNotFound)
		assert.Len(t, store.objects, 1)
	})
}
