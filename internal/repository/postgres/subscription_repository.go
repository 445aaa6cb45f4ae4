package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/woofwoof-app/backend/internal/domain"
	"github.com/woofwoof-app/backend/internal/repository"
)

type subscriptionRepository struct {
	db *sqlx.DB
}

func NewSubscriptionRepository(db *sqlx.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) GetByUserID(ctx context.Context, userID int) (*domain.Subscription, error) {
	var sub domain.Subscription
	query := `SELECT * FROM subscriptions WHERE user_id = $1`
	err := r.db.GetContext(ctx, &sub, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) Upsert(ctx context.Context, sub *domain.Subscription) error {
	query := `
		INSERT INTO subscriptions (user_id, plan, is_active)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET plan = EXCLUDED.plan, is_active = EXCLUDED.is_active
		RETURNING id, started_at
	`
	return r.db.QueryRowContext(ctx, query, sub.UserID, sub.Plan, sub.IsActive).
		Scan(&sub.ID, &sub.StartedAt)
}
