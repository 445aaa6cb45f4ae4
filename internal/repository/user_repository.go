package repository

import (
	"context"

	"github.com/woofwoof-app/backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateLocation(ctx context.Context, userID int, lat, lon float64, city string) error
	UpdatePlan(ctx context.Context, userID int, plan domain.PlanTier) error
}
