package message

import (
	"context"
	"fmt"
	"strings"

	"github.com/woofwoof-app/backend/internal/domain"
	"github.com/woofwoof-app/backend/internal/repository"
)

const defaultPageSize = 50

type UseCase struct {
	matchRepo   repository.MatchRepository
	dogRepo     repository.DogRepository
	messageRepo repository.MessageRepository
}

func NewUseCase(
	matchRepo repository.MatchRepository,
	dogRepo repository.DogRepository,
	messageRepo repository.MessageRepository,
) *UseCase {
	return &UseCase{
		matchRepo:   matchRepo,
		dogRepo:     dogRepo,
		messageRepo: messageRepo,
	}
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// ListMessages returns the match conversation, oldest first, and marks the
// other side's messages as read.
func (uc *UseCase) ListMessages(ctx context.Context, userID, matchID, limit, offset int) ([]*domain.Message, error) {
	if err := uc.ensureParticipant(ctx, userID, matchID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultPageSize
	}

	if err := uc.messageRepo.MarkRead(ctx, matchID, userID); err != nil {
		return nil, fmt.Errorf("failed to mark messages read: %w", err)
	}

	messages, err := uc.messageRepo.ListByMatch(ctx, matchID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

func (uc *UseCase) SendMessage(ctx context.Context, userID, matchID int, req *SendMessageRequest) (*domain.Message, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, domain.ErrMessageEmpty
	}

	if err := uc.ensureParticipant(ctx, userID, matchID); err != nil {
		return nil, err
	}

	msg := &domain.Message{
		MatchID:  matchID,
		SenderID: userID,
		Content:  content,
	}
	if err := uc.messageRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}
	return msg, nil
}

// ensureParticipant verifies one of the user's dogs is part of the match.
func (uc *UseCase) ensureParticipant(ctx context.Context, userID, matchID int) error {
	match, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return err
	}

	dogs, err := uc.dogRepo.GetByOwnerID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load dogs: %w", err)
	}
	for _, d := range dogs {
		if match.HasDog(d.ID) {
			return nil
		}
	}
	return domain.ErrNotMatchParticipant
}
