package mongodb

import (
	"context"

	"job-portal-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type postRepo struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) domain.PostRepository {
	return &postRepo{coll: db.Collection(collPosts)}
}

func (r *postRepo) Create(ctx context.Context, post *domain.Post) error {
	normalizePost(post)
	_, err := r.coll.InsertOne(ctx, post)
	return mapError(err)
}

func (r *postRepo) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	post, err := findOne[domain.Post](ctx, r.coll, id)
	if err != nil {
		return nil, err
	}
	normalizePost(post)
	return post, nil
}

func (r *postRepo) Update(ctx context.Context, post *domain.Post) error {
	normalizePost(post)
	return replaceByID(ctx, r.coll, post.ID, post)
}

func (r *postRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

func (r *postRepo) List(ctx context.Context, filter domain.PostFilter, limit, offset int) ([]domain.Post, int64, error) {
	return r.page(ctx, postFilter(filter), limit, offset)
}

func (r *postRepo) ListWall(ctx context.Context, userID string, limit, offset int) ([]domain.Post, int64, error) {
	return r.page(ctx, wallFilter(userID), limit, offset)
}

func (r *postRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Post, error) {
	opts := options.Find().SetSort(newestFirst("createdAt"))
	posts, err := findAll[domain.Post](ctx, r.coll, bson.M{"user_id": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		normalizePost(&posts[i])
	}
	return posts, nil
}

func (r *postRepo) page(ctx context.Context, filter bson.M, limit, offset int) ([]domain.Post, int64, error) {
	posts, total, err := findPage[domain.Post](ctx, r.coll, filter, newestFirst("createdAt"), limit, offset)
	if err != nil {
		return nil, 0, err
	}
	for i := range posts {
		normalizePost(&posts[i])
	}
	return posts, total, nil
}

// normalizePost keeps array fields as [] rather than null.
func normalizePost(p *domain.Post) {
	p.Images = nonNil(p.Images)
	p.LikedBy = nonNil(p.LikedBy)
}
