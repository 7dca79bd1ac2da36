package mongodb

import (
	"context"

	"job-portal-backend/internal/domain"

	"go.mongodb.org/mongo-driver/mongo"
)

type mediaRepo struct {
	coll *mongo.Collection
}

// NewMediaRepository keeps media bytes inside the document (16 MB document
// limit is well above the upload ceiling).
func NewMediaRepository(db *mongo.Database) domain.MediaRepository {
	return &mediaRepo{coll: db.Collection(collMedia)}
}

func (r *mediaRepo) Create(ctx context.Context, media *domain.Media) error {
	_, err := r.coll.InsertOne(ctx, media)
	return mapError(err)
}

func (r *mediaRepo) GetByID(ctx context.Context, id string) (*domain.Media, error) {
	return findOne[domain.Media](ctx, r.coll, id)
}

func (r *mediaRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}
