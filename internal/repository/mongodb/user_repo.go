package mongodb

import (
	"context"

	"job-portal-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type userRepo struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) domain.UserRepository {
	return &userRepo{coll: db.Collection(collUsers)}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	user.Skills = nonNil(user.Skills)
	_, err := r.coll.InsertOne(ctx, user)
	return mapError(err)
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return findOne[domain.User](ctx, r.coll, id)
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	user.Skills = nonNil(user.Skills)
	return replaceByID(ctx, r.coll, user.ID, user)
}

func (r *userRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}
