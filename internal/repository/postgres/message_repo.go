package postgres

import (
	"context"

	"job-portal-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Participants come from LEFT JOINs so messages of deleted users still list with just their id.
const messageViewQuery = `
	SELECT
		m.id, m.message_text, m.created_at, m.updated_at,
		m.sender_id, COALESCE(s.first_name, ''), COALESCE(s.last_name, ''), s.profile_image, COALESCE(s.role, ''),
		m.receiver_id, COALESCE(rc.first_name, ''), COALESCE(rc.last_name, ''), rc.profile_image, COALESCE(rc.role, '')
	FROM messages m
	LEFT JOIN users s ON s.id = m.sender_id
	LEFT JOIN users rc ON rc.id = m.receiver_id`

type messageRepo struct {
	db *pgxpool.Pool
}

func NewMessageRepository(db *pgxpool.Pool) domain.MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, msg *domain.Message) error {
	query := `INSERT INTO messages (id, sender_id, receiver_id, message_text, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query, msg.ID, msg.SenderID, msg.ReceiverID, msg.Text, msg.CreatedAt, msg.UpdatedAt)
	return mapError(err)
}

func (r *messageRepo) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	query := `SELECT id, sender_id, receiver_id, message_text, created_at, updated_at FROM messages WHERE id = $1`
	var m domain.Message
	err := r.db.QueryRow(ctx, query, id).Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Text, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &m, nil
}

func (r *messageRepo) Update(ctx context.Context, msg *domain.Message) error {
	return affected(r.db.Exec(ctx,
		`UPDATE messages SET message_text = $2, updated_at = $3 WHERE id = $1`,
		msg.ID, msg.Text, msg.UpdatedAt,
	))
}

func (r *messageRepo) Delete(ctx context.Context, id string) error {
	return affected(r.db.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id))
}

func (r *messageRepo) ListForUser(ctx context.Context, userID string) ([]domain.MessageView, error) {
	return r.views(ctx, messageViewQuery+`
	WHERE m.sender_id = $1 OR m.receiver_id = $1
	ORDER BY m.created_at DESC`, userID)
}

func (r *messageRepo) ListConversation(ctx context.Context, a, b string) ([]domain.MessageView, error) {
	return r.views(ctx, messageViewQuery+`
	WHERE (m.sender_id = $1 AND m.receiver_id = $2) OR (m.sender_id = $2 AND m.receiver_id = $1)
	ORDER BY m.created_at ASC`, a, b)
}

func (r *messageRepo) views(ctx context.Context, query string, args ...any) ([]domain.MessageView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := []domain.MessageView{}
	for rows.Next() {
		var v domain.MessageView
		if err := rows.Scan(
			&v.ID, &v.Text, &v.CreatedAt, &v.UpdatedAt,
			&v.Sender.ID, &v.Sender.FirstName, &v.Sender.LastName, &v.Sender.ProfileImage, &v.Sender.Role,
			&v.Receiver.ID, &v.Receiver.FirstName, &v.Receiver.LastName, &v.Receiver.ProfileImage, &v.Receiver.Role,
		); err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, rows.Err()
}
