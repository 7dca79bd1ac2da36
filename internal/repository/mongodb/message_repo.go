package mongodb

import (
	"context"

	"job-portal-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type messageRepo struct {
	coll  *mongo.Collection
	users *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) domain.MessageRepository {
	return &messageRepo{
		coll:  db.Collection(collMessages),
		users: db.Collection(collUsers),
	}
}

func (r *messageRepo) Create(ctx context.Context, msg *domain.Message) error {
	_, err := r.coll.InsertOne(ctx, msg)
	return mapError(err)
}

func (r *messageRepo) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	return findOne[domain.Message](ctx, r.coll, id)
}

func (r *messageRepo) Update(ctx context.Context, msg *domain.Message) error {
	res, err := r.coll.UpdateOne(ctx, byID(msg.ID), bson.M{"$set": bson.M{
		"message_text": msg.Text,
		"updated_at":   msg.UpdatedAt,
	}})
	if err != nil {
		return mapError(err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *messageRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

func (r *messageRepo) ListForUser(ctx context.Context, userID string) ([]domain.MessageView, error) {
	opts := options.Find().SetSort(newestFirst("created_at"))
	return r.views(ctx, userMessagesFilter(userID), opts)
}

func (r *messageRepo) ListConversation(ctx context.Context, a, b string) ([]domain.MessageView, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	return r.views(ctx, conversationFilter(a, b), opts)
}

// views loads the messages and then every referenced participant in one query.
func (r *messageRepo) views(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.MessageView, error) {
	msgs, err := findAll[domain.Message](ctx, r.coll, filter, opts)
	if err != nil {
		return nil, err
	}
	if len(msgs) == 0 {
		return []domain.MessageView{}, nil
	}

	ids := participantIDs(msgs)
	proj := options.Find().SetProjection(bson.M{"firstName": 1, "lastName": 1, "profileImage": 1, "role": 1})
	people, err := findAll[domain.Participant](ctx, r.users, bson.M{"_id": bson.M{"$in": ids}}, proj)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Participant, len(people))
	for _, p := range people {
		byID[p.ID] = p
	}

	return buildViews(msgs, byID), nil
}

func participantIDs(msgs []domain.Message) []string {
	seen := make(map[string]struct{}, len(msgs)*2)
	ids := make([]string, 0, len(msgs)*2)
	for _, m := range msgs {
		for _, id := range []string{m.SenderID, m.ReceiverID} {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}
	return ids
}

func buildViews(msgs []domain.Message, people map[string]domain.Participant) []domain.MessageView {
	lookup := func(id string) domain.Participant {
		if p, ok := people[id]; ok {
			return p
		}
		return domain.Participant{ID: id}
	}

	views := make([]domain.MessageView, 0, len(msgs))
	for _, m := range msgs {
		views = append(views, domain.MessageView{
			ID:        m.ID,
			Sender:    lookup(m.SenderID),
			Receiver:  lookup(m.ReceiverID),
			Text:      m.Text,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		})
	}
	return views
}
