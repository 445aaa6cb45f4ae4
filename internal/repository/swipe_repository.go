package repository

import (
	"context"

	"github.com/woofwoof-app/backend/internal/domain"
)

type SwipeRepository interface {
	// Create persists the swipe. It returns domain.ErrAlreadySwiped when
	// the ordered (swiper, swiped) pair already exists, including when a
	// concurrent insert hits the unique constraint.
	Create(ctx context.Context, swipe *domain.Swipe) error
	GetByDogs(ctx context.Context, swiperDogID, swipedDogID int) (*domain.Swipe, error)
	HasPositiveSwipe(ctx context.Context, swiperDogID, swipedDogID int) (bool, error)
	ListSwipedDogIDs(ctx context.Context, swiperDogID int) ([]int, error)
	// CountToday counts today's swipes made by any of the given dogs.
	// An empty action counts every action class.
	CountToday(ctx context.Context, dogIDs []int, action string) (int, error)
}
