package repository

import (
	"context"

	"github.com/woofwoof-app/backend/internal/domain"
)

type SubscriptionRepository interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Subscription, error)
	Upsert(ctx context.Context, sub *domain.Subscription) error
}
