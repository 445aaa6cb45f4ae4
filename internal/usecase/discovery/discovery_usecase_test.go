package discovery

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woofwoof-app/backend/internal/domain"
	"github.com/woofwoof-app/backend/internal/repository"
)

type fakeUserRepo struct {
	users map[int]*domain.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) error { return nil }

func (r *fakeUserRepo) GetByID(ctx context.Context, id int) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) UpdateLocation(ctx context.Context, userID int, lat, lon float64, city string) error {
	return nil
}

func (r *fakeUserRepo) UpdatePlan(ctx context.Context, userID int, plan domain.PlanTier) error {
	return nil
}

type fakeDogRepo struct {
	dogs map[int]*domain.Dog
}

func (r *fakeDogRepo) Create(ctx context.Context, dog *domain.Dog) error { return nil }

func (r *fakeDogRepo) GetByID(ctx context.Context, id int) (*domain.Dog, error) {
	d, ok := r.dogs[id]
	if !ok {
		return nil, domain.ErrDogNotFound
	}
	return d, nil
}

func (r *fakeDogRepo) GetByOwnerID(ctx context.Context, ownerID int) ([]*domain.Dog, error) {
	var out []*domain.Dog
	for _, d := range r.dogs {
		if d.OwnerID == ownerID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDogRepo) Update(ctx context.Context, dog *domain.Dog) error { return nil }
func (r *fakeDogRepo) Delete(ctx context.Context, id int) error          { return nil }

func (r *fakeDogRepo) Discover(ctx context.Context, filter repository.DiscoverFilter) ([]*domain.Dog, error) {
	excluded := make(map[int]bool, len(filter.ExcludeDogIDs))
	for _, id := range filter.ExcludeDogIDs {
		excluded[id] = true
	}

	var out []*domain.Dog
	for _, d := range r.dogs {
		if d.OwnerID == filter.ExcludeOwnerID || excluded[d.ID] {
			continue
		}
		if filter.Breed != "" && d.Breed != filter.Breed {
			continue
		}
		if filter.Intention != "" && d.Intention != filter.Intention {
			continue
		}
		if filter.Sex != "" && d.Sex != filter.Sex {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *fakeDogRepo) Search(ctx context.Context, excludeOwnerID int, filter repository.SearchFilter) ([]*domain.Dog, error) {
	var out []*domain.Dog
	for _, d := range r.dogs {
		if d.OwnerID == excludeOwnerID {
			continue
		}
		if filter.Breed != "" && d.Breed != filter.Breed {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

type fakeSwipeRepo struct {
	swipedByDog map[int][]int
}

func (r *fakeSwipeRepo) Create(ctx context.Context, swipe *domain.Swipe) error { return nil }

func (r *fakeSwipeRepo) GetByDogs(ctx context.Context, swiperDogID, swipedDogID int) (*domain.Swipe, error) {
	return nil, nil
}

func (r *fakeSwipeRepo) HasPositiveSwipe(ctx context.Context, swiperDogID, swipedDogID int) (bool, error) {
	return false, nil
}

func (r *fakeSwipeRepo) ListSwipedDogIDs(ctx context.Context, swiperDogID int) ([]int, error) {
	return r.swipedByDog[swiperDogID], nil
}

func (r *fakeSwipeRepo) CountToday(ctx context.Context, dogIDs []int, action string) (int, error) {
	return 0, nil
}

func discoveryUser(id int, plan domain.PlanTier, lat, lon *float64) *domain.User {
	return &domain.User{
		ID:        id,
		FullName:  "Owner",
		Plan:      plan,
		Latitude:  lat,
		Longitude: lon,
	}
}

func newTestUseCase(users map[int]*domain.User, dogs map[int]*domain.Dog, swiped map[int][]int) *UseCase {
	return NewUseCase(
		&fakeUserRepo{users: users},
		&fakeDogRepo{dogs: dogs},
		&fakeSwipeRepo{swipedByDog: swiped},
	)
}

func TestDiscoverExcludesSwipedAndOwnDogs(t *testing.T) {
	users := map[int]*domain.User{
		1: discoveryUser(1, domain.PlanCroquette, nil, nil),
		2: discoveryUser(2, domain.PlanCroquette, nil, nil),
	}
	dogs := map[int]*domain.Dog{
		10: testDog(func(d *domain.Dog) { d.ID = 10; d.OwnerID = 1 }),
		11: testDog(func(d *domain.Dog) { d.ID = 11; d.OwnerID = 1 }),
		20: testDog(func(d *domain.Dog) { d.ID = 20; d.OwnerID = 2 }),
		21: testDog(func(d *domain.Dog) { d.ID = 21; d.OwnerID = 2 }),
	}
	swiped := map[int][]int{10: {20}}

	uc := newTestUseCase(users, dogs, swiped)
	cards, err := uc.Discover(context.Background(), 1, DiscoverRequest{DogID: 10})
	require.NoError(t, err)

	require.Len(t, cards, 1)
	assert.Equal(t, 21, cards[0].ID)
	require.NotNil(t, cards[0].CompatibilityScore)
	assert.GreaterOrEqual(t, *cards[0].CompatibilityScore, 0)
	assert.LessOrEqual(t, *cards[0].CompatibilityScore, 100)
}

func TestDiscoverNotOwnedDog(t *testing.T) {
	users := map[int]*domain.User{
		1: discoveryUser(1, domain.PlanCroquette, nil, nil),
		2: discoveryUser(2, domain.PlanCroquette, nil, nil),
	}
	dogs := map[int]*domain.Dog{
		20: testDog(func(d *domain.Dog) { d.ID = 20; d.OwnerID = 2 }),
	}

	uc := newTestUseCase(users, dogs, nil)
	_, err := uc.Discover(context.Background(), 1, DiscoverRequest{DogID: 20})
	assert.ErrorIs(t, err, domain.ErrDogNotFound)
}

func TestDiscoverDistanceRadius(t *testing.T) {
	paris := [2]float64{48.8566, 2.3522}
	versailles := [2]float64{48.8049, 2.1204}
	marseille := [2]float64{43.2965, 5.3698}

	users := map[int]*domain.User{
		1: discoveryUser(1, domain.PlanCroquette, &paris[0], &paris[1]),
		2: discoveryUser(2, domain.PlanCroquette, &versailles[0], &versailles[1]),
		3: discoveryUser(3, domain.PlanCroquette, &marseille[0], &marseille[1]),
		4: discoveryUser(4, domain.PlanCroquette, nil, nil),
	}
	dogs := map[int]*domain.Dog{
		10: testDog(func(d *domain.Dog) { d.ID = 10; d.OwnerID = 1 }),
		20: testDog(func(d *domain.Dog) { d.ID = 20; d.OwnerID = 2 }),
		30: testDog(func(d *domain.Dog) { d.ID = 30; d.OwnerID = 3 }),
		40: testDog(func(d *domain.Dog) { d.ID = 40; d.OwnerID = 4 }),
	}

	uc := newTestUseCase(users, dogs, nil)
	cards, err := uc.Discover(context.Background(), 1, DiscoverRequest{DogID: 10, MaxDistanceKm: 50})
	require.NoError(t, err)

	// Marseille is out of range. The owner without coordinates stays in
	// and sorts after the known distances.
	require.Len(t, cards, 2)
	assert.Equal(t, 20, cards[0].ID)
	require.NotNil(t, cards[0].DistanceKm)
	assert.Equal(t, 40, cards[1].ID)
	assert.Nil(t, cards[1].DistanceKm)
}

func TestDiscoverLimit(t *testing.T) {
	users := map[int]*domain.User{
		1: discoveryUser(1, domain.PlanCroquette, nil, nil),
		2: discoveryUser(2, domain.PlanCroquette, nil, nil),
	}
	dogs := map[int]*domain.Dog{
		10: testDog(func(d *domain.Dog) { d.ID = 10; d.OwnerID = 1 }),
	}
	for i := 0; i < 5; i++ {
		id := 20 + i
		dogs[id] = testDog(func(d *domain.Dog) { d.ID = id; d.OwnerID = 2 })
	}

	uc := newTestUseCase(users, dogs, nil)
	cards, err := uc.Discover(context.Background(), 1, DiscoverRequest{DogID: 10, Limit: 3})
	require.NoError(t, err)
	assert.Len(t, cards, 3)
}

func TestSearchRequiresPaidPlan(t *testing.T) {
	users := map[int]*domain.User{
		1: discoveryUser(1, domain.PlanCroquette, nil, nil),
	}

	uc := newTestUseCase(users, map[int]*domain.Dog{}, nil)
	_, err := uc.Search(context.Background(), 1, SearchRequest{})
	assert.ErrorIs(t, err, domain.ErrPlanUpgradeRequired)
}

func TestSearchSortAndPagination(t *testing.T) {
	users := map[int]*domain.User{
		1: discoveryUser(1, domain.PlanPatee, nil, nil),
		2: discoveryUser(2, domain.PlanCroquette, nil, nil),
	}
	dogs := map[int]*domain.Dog{
		20: testDog(func(d *domain.Dog) { d.ID = 20; d.OwnerID = 2; d.Name = "Caramel" }),
		21: testDog(func(d *domain.Dog) { d.ID = 21; d.OwnerID = 2; d.Name = "athos" }),
		22: testDog(func(d *domain.Dog) { d.ID = 22; d.OwnerID = 2; d.Name = "Balto" }),
	}

	uc := newTestUseCase(users, dogs, nil)

	cards, err := uc.Search(context.Background(), 1, SearchRequest{SortBy: "name"})
	require.NoError(t, err)
	require.Len(t, cards, 3)
	assert.Equal(t, "athos", cards[0].Name)
	assert.Equal(t, "Balto", cards[1].Name)
	assert.Equal(t, "Caramel", cards[2].Name)

	page2, err := uc.Search(context.Background(), 1, SearchRequest{SortBy: "name", Page: 2, PerPage: 2})
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, "Caramel", page2[0].Name)

	empty, err := uc.Search(context.Background(), 1, SearchRequest{SortBy: "name", Page: 5, PerPage: 2})
	require.NoError(t, err)
	assert.Empty(t, empty)
}
