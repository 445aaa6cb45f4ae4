package dog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woofwoof-app/backend/internal/domain"
	"github.com/woofwoof-app/backend/internal/repository"
)

type fakeDogRepo struct {
	dogs   map[int]*domain.Dog
	nextID int
}

func newFakeDogRepo() *fakeDogRepo {
	return &fakeDogRepo{dogs: make(map[int]*domain.Dog)}
}

func (r *fakeDogRepo) Create(ctx context.Context, dog *domain.Dog) error {
	r.nextID++
	dog.ID = r.nextID
	r.dogs[dog.ID] = dog
	return nil
}

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

func (r *fakeDogRepo) Update(ctx context.Context, dog *domain.Dog) error {
	if _, ok := r.dogs[dog.ID]; !ok {
		return domain.ErrDogNotFound
	}
	r.dogs[dog.ID] = dog
	return nil
}

func (r *fakeDogRepo) Delete(ctx context.Context, id int) error {
	delete(r.dogs, id)
	return nil
}

func (r *fakeDogRepo) Discover(ctx context.Context, filter repository.DiscoverFilter) ([]*domain.Dog, error) {
	return nil, nil
}

func (r *fakeDogRepo) Search(ctx context.Context, excludeOwnerID int, filter repository.SearchFilter) ([]*domain.Dog, error) {
	return nil, nil
}

func TestCreateDogDefaults(t *testing.T) {
	uc := NewUseCase(newFakeDogRepo())

	dog, err := uc.CreateDog(context.Background(), 1, &CreateDogRequest{
		Name:  "Rex",
		Breed: "Labrador",
		Sex:   "male",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, dog.OwnerID)
	assert.Equal(t, domain.IntentionBalade, dog.Intention)
	assert.Equal(t, domain.TriUnknown, dog.GoodWithDogs)
}

func TestUpdateDogPartial(t *testing.T) {
	repo := newFakeDogRepo()
	uc := NewUseCase(repo)
	ctx := context.Background()

	dog, err := uc.CreateDog(ctx, 1, &CreateDogRequest{
		Name:      "Rex",
		Breed:     "Labrador",
		Sex:       "male",
		Intention: domain.IntentionReproduction,
	})
	require.NoError(t, err)

	name := "Max"
	good := domain.TriYes
	updated, err := uc.UpdateDog(ctx, 1, dog.ID, &UpdateDogRequest{
		Name:         &name,
		GoodWithDogs: &good,
	})
	require.NoError(t, err)

	assert.Equal(t, "Max", updated.Name)
	assert.Equal(t, domain.TriYes, updated.GoodWithDogs)
	// Untouched fields keep their values.
	assert.Equal(t, "Labrador", updated.Breed)
	assert.Equal(t, domain.IntentionReproduction, updated.Intention)
}

func TestUpdateDogNotOwned(t *testing.T) {
	uc := NewUseCase(newFakeDogRepo())
	ctx := context.Background()

	dog, err := uc.CreateDog(ctx, 1, &CreateDogRequest{Name: "Rex", Breed: "Labrador", Sex: "male"})
	require.NoError(t, err)

	name := "Max"
	_, err = uc.UpdateDog(ctx, 2, dog.ID, &UpdateDogRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrDogNotFound)
}

func TestDeleteDog(t *testing.T) {
	repo := newFakeDogRepo()
	uc := NewUseCase(repo)
	ctx := context.Background()

	dog, err := uc.CreateDog(ctx, 1, &CreateDogRequest{Name: "Rex", Breed: "Labrador", Sex: "male"})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.DeleteDog(ctx, 2, dog.ID), domain.ErrDogNotFound)

	require.NoError(t, uc.DeleteDog(ctx, 1, dog.ID))
	_, err = uc.GetDog(ctx, dog.ID)
	assert.ErrorIs(t, err, domain.ErrDogNotFound)
}

func TestGetMyDogs(t *testing.T) {
	uc := NewUseCase(newFakeDogRepo())
	ctx := context.Background()

	_, err := uc.CreateDog(ctx, 1, &CreateDogRequest{Name: "Rex", Breed: "Labrador", Sex: "male"})
	require.NoError(t, err)
	_, err = uc.CreateDog(ctx, 1, &CreateDogRequest{Name: "Nala", Breed: "Beagle", Sex: "female"})
	require.NoError(t, err)
	_, err = uc.CreateDog(ctx, 2, &CreateDogRequest{Name: "Max", Breed: "Husky", Sex: "male"})
	require.NoError(t, err)

	dogs, err := uc.GetMyDogs(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, dogs, 2)
}
