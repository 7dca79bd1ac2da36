package usecase

import (
	"context"
	"strings"
	"time"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type messageUsecase struct {
	messageRepo domain.MessageRepository
	validate    *validator.Validate
	now         func() time.Time
}

func NewMessageUsecase(messageRepo domain.MessageRepository, validate *validator.Validate) domain.MessageUsecase {
	return &messageUsecase{
		messageRepo: messageRepo,
		validate:    validate,
		now:         time.Now,
	}
}

func (u *messageUsecase) CreateMessage(ctx context.Context, input domain.CreateMessageInput) (*domain.Message, error) {
	input.Text = strings.TrimSpace(input.Text)
	if err := validateStruct(u.validate, input); err != nil {
		return nil, err
	}

	now := u.now().UTC()
	msg := &domain.Message{
		ID:         uuid.NewString(),
		SenderID:   input.SenderID,
		ReceiverID: input.ReceiverID,
		Text:       input.Text,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := u.messageRepo.Create(ctx, msg); err != nil {
		return nil, internal(err)
	}
	return msg, nil
}

func (u *messageUsecase) ListForUser(ctx context.Context, userID string) ([]domain.MessageView, error) {
	if err := validateID(userID, "user"); err != nil {
		return nil, err
	}
	msgs, err := u.messageRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, internal(err)
	}
	return nonNilViews(msgs), nil
}

func (u *messageUsecase) GetConversation(ctx context.Context, a, b string) ([]domain.MessageView, error) {
	if err := validateID(a, "user"); err != nil {
		return nil, err
	}
	if err := validateID(b, "user"); err != nil {
		return nil, err
	}
	msgs, err := u.messageRepo.ListConversation(ctx, a, b)
	if err != nil {
		return nil, internal(err)
	}
	return nonNilViews(msgs), nil
}

func (u *messageUsecase) UpdateMessage(ctx context.Context, id, text string) (*domain.Message, error) {
	if err := validateID(id, "message"); err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperror.BadRequest("Message text is required")
	}

	msg, err := u.messageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Message not found")
	}
	msg.Text = text
	msg.UpdatedAt = u.now().UTC()

	if err := u.messageRepo.Update(ctx, msg); err != nil {
		return nil, notFoundOr(err, "Message not found")
	}
	return msg, nil
}

func (u *messageUsecase) DeleteMessage(ctx context.Context, id string) error {
	if err := validateID(id, "message"); err != nil {
		return err
	}
	if err := u.messageRepo.Delete(ctx, id); err != nil {
		return notFoundOr(err, "Message not found")
	}
	return nil
}

func nonNilViews(msgs []domain.MessageView) []domain.MessageView {
	if msgs == nil {
		return []domain.MessageView{}
	}
	return msgs
}
