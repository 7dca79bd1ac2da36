// Package objectstore keeps media bytes in an object store while the
// metadata row stays in the primary database.
package objectstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/logger"
	"job-portal-backend/pkg/storage"
)

// KeyPrefix namespaces media objects inside the bucket.
const KeyPrefix = "media/"

type mediaRepo struct {
	meta  domain.MediaRepository
	store storage.ObjectStore
}

// NewMediaRepository wraps meta so that Data is written to store instead.
func NewMediaRepository(meta domain.MediaRepository, store storage.ObjectStore) domain.MediaRepository {
	return &mediaRepo{meta: meta, store: store}
}

func objectKey(id string) string {
	return KeyPrefix + id
}

func (r *mediaRepo) Create(ctx context.Context, media *domain.Media) error {
	key := objectKey(media.ID)
	if err := r.store.Put(ctx, key, bytes.NewReader(media.Data), int64(len(media.Data)), media.ContentType); err != nil {
		return err
	}

	row := *media
	row.Data = nil
	if err := r.meta.Create(ctx, &row); err != nil {
		if delErr := r.store.Delete(ctx, key); delErr != nil {
			logger.Log.Warn("Orphaned media object", "key", key, "error", delErr)
		}
		return err
	}
	return nil
}

func (r *mediaRepo) GetByID(ctx context.Context, id string) (*domain.Media, error) {
	media, err := r.meta.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	data, err := r.store.Get(ctx, objectKey(id))
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: object for media %s", domain.ErrNotFound, id)
		}
		return nil, err
	}
	media.Data = data
	return media, nil
}

// Delete removes the metadata row before the object; a leftover object is unreachable.
func (r *mediaRepo) Delete(ctx context.Context, id string) error {
	if err := r.meta.Delete(ctx, id); err != nil {
		return err
	}
	if err := r.store.Delete(ctx, objectKey(id)); err != nil {
		logger.Log.Warn("Media object delete failed", "media_id", id, "error", err)
	}
	return nil
}
