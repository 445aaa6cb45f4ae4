package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/woofwoof-app/backend/internal/domain"
	"github.com/woofwoof-app/backend/internal/repository"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	query := `
		INSERT INTO messages (match_id, sender_id, content, is_read)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query, message.MatchID, message.SenderID, message.Content, message.IsRead).
		Scan(&message.ID, &message.CreatedAt)
}

func (r *messageRepository) ListByMatch(ctx context.Context, matchID int, limit, offset int) ([]*domain.Message, error) {
	var messages []*domain.Message
	query := `
		SELECT * FROM messages
		WHERE match_id = $1
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3
	`
	err := r.db.SelectContext(ctx, &messages, query, matchID, limit, offset)
	return messages, err
}

func (r *messageRepository) MarkRead(ctx context.Context, matchID, readerID int) error {
	query := `
		UPDATE messages SET is_read = true
		WHERE match_id = $1 AND sender_id != $2 AND is_read = false
	`
	_, err := r.db.ExecContext(ctx, query, matchID, readerID)
	return err
}
