package repository

import (
	"context"

	"github.com/woofwoof-app/backend/internal/domain"
)

type MatchRepository interface {
	// Create stores the match with canonical (min, max) dog ordering. A
	// concurrent duplicate insert is absorbed and reported via the
	// returned "created" flag.
	Create(ctx context.Context, match *domain.Match) (created bool, err error)
	GetByID(ctx context.Context, id int) (*domain.Match, error)
	GetByDogs(ctx context.Context, dog1ID, dog2ID int) (*domain.Match, error)
	GetActiveByDogIDs(ctx context.Context, dogIDs []int) ([]*domain.Match, error)
	UpdateStatus(ctx context.Context, id int, isActive bool) error
}
