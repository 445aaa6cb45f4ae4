package repository

import (
	"context"

	"github.com/woofwoof-app/backend/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	ListByMatch(ctx context.Context, matchID int, limit, offset int) ([]*domain.Message, error)
	// MarkRead marks messages in the match not sent by readerID as read.
	MarkRead(ctx context.Context, matchID, readerID int) error
}
