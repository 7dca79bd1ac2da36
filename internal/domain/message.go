package domain

import (
	"context"
	"time"
)

type Message struct {
	ID         string    `json:"id" bson:"_id"`
	SenderID   string    `json:"senderId" bson:"sender_id"`
	ReceiverID string    `json:"receiverId" bson:"receiver_id"`
	Text       string    `json:"text" bson:"message_text"`
	CreatedAt  time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updated_at"`
}

// Participant is the display summary of a message sender or receiver.
// Only ID is set when the user no longer exists.
type Participant struct {
	ID           string  `json:"id" bson:"_id"`
	FirstName    string  `json:"firstName,omitempty" bson:"firstName"`
	LastName     string  `json:"lastName,omitempty" bson:"lastName"`
	ProfileImage *string `json:"profileImage,omitempty" bson:"profileImage"`
	Role         string  `json:"role,omitempty" bson:"role"`
}

// MessageView is a message with both participants expanded.
type MessageView struct {
	ID        string      `json:"id"`
	Sender    Participant `json:"sender"`
	Receiver  Participant `json:"receiver"`
	Text      string      `json:"text"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

type CreateMessageInput struct {
	SenderID   string `json:"senderId" validate:"required,uuid"`
	ReceiverID string `json:"receiverId" validate:"required,uuid"`
	Text       string `json:"text" validate:"required,max=5000"`
}

type MessageRepository interface {
	Create(ctx context.Context, msg *Message) error
	GetByID(ctx context.Context, id string) (*Message, error)
	Update(ctx context.Context, msg *Message) error
	Delete(ctx context.Context, id string) error
	// ListForUser returns messages sent or received by userID, newest first.
	ListForUser(ctx context.Context, userID string) ([]MessageView, error)
	// ListConversation returns messages between a and b in either direction, oldest first.
	ListConversation(ctx context.Context, a, b string) ([]MessageView, error)
}

type MessageUsecase interface {
	CreateMessage(ctx context.Context, input CreateMessageInput) (*Message, error)
	ListForUser(ctx context.Context, userID string) ([]MessageView, error)
	GetConversation(ctx context.Context, a, b string) ([]MessageView, error)
	UpdateMessage(ctx context.Context, id, text string) (*Message, error)
	DeleteMessage(ctx context.Context, id string) error
}
