package dog

import (
	"context"
	"fmt"

	"github.com/woofwoof-app/backend/internal/domain"
	"github.com/woofwoof-app/backend/internal/repository"
)

type UseCase struct {
	dogRepo repository.DogRepository
}

func NewUseCase(dogRepo repository.DogRepository) *UseCase {
	return &UseCase{dogRepo: dogRepo}
}

type CreateDogRequest struct {
	Name          string          `json:"name" binding:"required"`
	Breed         string          `json:"breed" binding:"required"`
	AgeYears      int             `json:"age_years" binding:"min=0"`
	AgeMonths     int             `json:"age_months" binding:"min=0,max=11"`
	WeightKg      *float64        `json:"weight_kg"`
	Sex           string          `json:"sex" binding:"required,oneof=male female"`
	Bio           *string         `json:"bio"`
	Temperament   *string         `json:"temperament"`
	Intention     string          `json:"intention" binding:"omitempty,intention"`
	ActivityLevel *string         `json:"activity_level" binding:"omitempty,activitylevel"`
	GoodWithKids  domain.TriState `json:"good_with_kids"`
	GoodWithCats  domain.TriState `json:"good_with_cats"`
	GoodWithDogs  domain.TriState `json:"good_with_dogs"`
}

func (uc *UseCase) CreateDog(ctx context.Context, userID int, req *CreateDogRequest) (*domain.Dog, error) {
	intention := req.Intention
	if intention == "" {
		intention = domain.IntentionBalade
	}

	dog := &domain.Dog{
		OwnerID:       userID,
		Name:          req.Name,
		Breed:         req.Breed,
		AgeYears:      req.AgeYears,
		AgeMonths:     req.AgeMonths,
		WeightKg:      req.WeightKg,
		Sex:           req.Sex,
		Bio:           req.Bio,
		Temperament:   req.Temperament,
		Intention:     intention,
		ActivityLevel: req.ActivityLevel,
		GoodWithKids:  req.GoodWithKids,
		GoodWithCats:  req.GoodWithCats,
		GoodWithDogs:  req.GoodWithDogs,
	}
	if err := uc.dogRepo.Create(ctx, dog); err != nil {
		return nil, fmt.Errorf("failed to create dog: %w", err)
	}
	return dog, nil
}

func (uc *UseCase) GetMyDogs(ctx context.Context, userID int) ([]*domain.Dog, error) {
	return uc.dogRepo.GetByOwnerID(ctx, userID)
}

func (uc *UseCase) GetDog(ctx context.Context, dogID int) (*domain.Dog, error) {
	return uc.dogRepo.GetByID(ctx, dogID)
}

type UpdateDogRequest struct {
	Name          *string          `json:"name"`
	Breed         *string          `json:"breed"`
	AgeYears      *int             `json:"age_years"`
	AgeMonths     *int             `json:"age_months"`
	WeightKg      *float64         `json:"weight_kg"`
	Bio           *string          `json:"bio"`
	Temperament   *string          `json:"temperament"`
	Intention     *string          `json:"intention" binding:"omitempty,intention"`
	ActivityLevel *string          `json:"activity_level" binding:"omitempty,activitylevel"`
	GoodWithKids  *domain.TriState `json:"good_with_kids"`
	GoodWithCats  *domain.TriState `json:"good_with_cats"`
	GoodWithDogs  *domain.TriState `json:"good_with_dogs"`
}

// UpdateDog applies the provided fields to one of the caller's dogs.
// Dogs of other owners behave as if they do not exist.
func (uc *UseCase) UpdateDog(ctx context.Context, userID, dogID int, req *UpdateDogRequest) (*domain.Dog, error) {
	dog, err := uc.ownedDog(ctx, userID, dogID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		dog.Name = *req.Name
	}
	if req.Breed != nil {
		dog.Breed = *req.Breed
	}
	if req.AgeYears != nil {
		dog.AgeYears = *req.AgeYears
	}
	if req.AgeMonths != nil {
		dog.AgeMonths = *req.AgeMonths
	}
	if req.WeightKg != nil {
		dog.WeightKg = req.WeightKg
	}
	if req.Bio != nil {
		dog.Bio = req.Bio
	}
	if req.Temperament != nil {
		dog.Temperament = req.Temperament
	}
	if req.Intention != nil {
		dog.Intention = *req.Intention
	}
	if req.ActivityLevel != nil {
		dog.ActivityLevel = req.ActivityLevel
	}
	if req.GoodWithKids != nil {
		dog.GoodWithKids = *req.GoodWithKids
	}
	if req.GoodWithCats != nil {
		dog.GoodWithCats = *req.GoodWithCats
	}
	if req.GoodWithDogs != nil {
		dog.GoodWithDogs = *req.GoodWithDogs
	}

	if err := uc.dogRepo.Update(ctx, dog); err != nil {
		return nil, fmt.Errorf("failed to update dog: %w", err)
	}
	return dog, nil
}

func (uc *UseCase) DeleteDog(ctx context.Context, userID, dogID int) error {
	if _, err := uc.ownedDog(ctx, userID, dogID); err != nil {
		return err
	}
	return uc.dogRepo.Delete(ctx, dogID)
}

func (uc *UseCase) ownedDog(ctx context.Context, userID, dogID int) (*domain.Dog, error) {
	dog, err := uc.dogRepo.GetByID(ctx, dogID)
	if err != nil {
		return nil, err
	}
	if dog.OwnerID != userID {
		return nil, domain.ErrDogNotFound
	}
	return dog, nil
}
