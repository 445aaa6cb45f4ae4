package repository

import (
	"context"

	"github.com/woofwoof-app/backend/internal/domain"
)

// DiscoverFilter narrows the discovery candidate query. ExcludeDogIDs
// carries the requester's already-swiped targets plus its own dog.
type DiscoverFilter struct {
	ExcludeOwnerID int
	ExcludeDogIDs  []int
	Breed          string
	Intention      string
	Sex            string
}

// SearchFilter is the advanced-search criteria set (paid plans only).
type SearchFilter struct {
	Breed         string
	Sex           string
	Intention     string
	MinAgeYears   *int
	MaxAgeYears   *int
	MinWeightKg   *float64
	MaxWeightKg   *float64
	ActivityLevel string
	GoodWithKids  *bool
	GoodWithCats  *bool
	GoodWithDogs  *bool
}

type DogRepository interface {
	Create(ctx context.Context, dog *domain.Dog) error
	GetByID(ctx context.Context, id int) (*domain.Dog, error)
	GetByOwnerID(ctx context.Context, ownerID int) ([]*domain.Dog, error)
	Update(ctx context.Context, dog *domain.Dog) error
	Delete(ctx context.Context, id int) error
	Discover(ctx context.Context, filter DiscoverFilter) ([]*domain.Dog, error)
	Search(ctx context.Context, excludeOwnerID int, filter SearchFilter) ([]*domain.Dog, error)
}
