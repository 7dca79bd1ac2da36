// Package mongodb implements the domain repositories on MongoDB.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"job-portal-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

// Collection names
const (
	collUsers       = "users"
	collMedia       = "media"
	collPosts       = "posts"
	collMessages    = "messages"
	collJobs        = "jobs"
	collProjects    = "projects"
	collExperiences = "experiences"
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", domain.ErrDuplicate, err)
	}
	return err
}

func byID(id string) bson.M {
	return bson.M{"_id": id}
}

// replaceByID overwrites the document with the given id.
func replaceByID(ctx context.Context, coll *mongo.Collection, id string, doc any) error {
	res, err := coll.ReplaceOne(ctx, byID(id), doc)
	if err != nil {
		return mapError(err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id string) error {
	res, err := coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return mapError(err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, id string) (*T, error) {
	var out T
	if err := coll.FindOne(ctx, byID(id)).Decode(&out); err != nil {
		return nil, mapError(err)
	}
	return &out, nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any, opts *options.FindOptions) ([]T, error) {
	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// findPage runs the page query and the count concurrently.
func findPage[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, sort bson.D, limit, offset int) ([]T, int64, error) {
	var (
		items []T
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		opts := options.Find().SetSort(sort).SetSkip(int64(offset)).SetLimit(int64(limit))
		var err error
		items, err = findAll[T](gctx, coll, filter, opts)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = coll.CountDocuments(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// contains matches s literally anywhere, ignoring case.
func contains(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

func newestFirst(field string) bson.D {
	return bson.D{{Key: field, Value: -1}, {Key: "_id", Value: -1}}
}

func postFilter(filter domain.PostFilter) bson.M {
	q := bson.M{}
	if filter.JobType != "" {
		q["jobType"] = filter.JobType
	}
	if filter.Location != "" {
		q["location"] = filter.Location
	}
	if filter.Search != "" {
		re := contains(filter.Search)
		q["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"description": re},
		}
	}
	return q
}

// wallFilter excludes posts owned by userID and posts userID already liked.
func wallFilter(userID string) bson.M {
	return bson.M{
		"user_id": bson.M{"$ne": userID},
		"likedBy": bson.M{"$ne": userID},
	}
}

func jobFilter(filter domain.JobFilter) bson.M {
	q := bson.M{}
	if filter.JobType != "" {
		q["jobType"] = filter.JobType
	}
	if filter.Location != "" {
		q["location"] = filter.Location
	}
	if filter.Search != "" {
		re := contains(filter.Search)
		q["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"company": re},
			bson.M{"description": re},
		}
	}
	return q
}

func userMessagesFilter(userID string) bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"sender_id": userID},
		bson.M{"receiver_id": userID},
	}}
}

func conversationFilter(a, b string) bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"sender_id": a, "receiver_id": b},
		bson.M{"sender_id": b, "receiver_id": a},
	}}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
