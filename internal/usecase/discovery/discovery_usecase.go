package discovery

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/woofwoof-app/backend/internal/domain"
	"github.com/woofwoof-app/backend/internal/repository"
	"github.com/woofwoof-app/backend/internal/usecase/plan"
	"github.com/woofwoof-app/backend/pkg/geo"
)

// unknownDistance sorts cards without coordinates after every card with a
// real distance.
const unknownDistance = 9999.0

const (
	defaultLimit     = 20
	defaultMaxDistKm = 50
)

type UseCase struct {
	userRepo  repository.UserRepository
	dogRepo   repository.DogRepository
	swipeRepo repository.SwipeRepository
}

func NewUseCase(
	userRepo repository.UserRepository,
	dogRepo repository.DogRepository,
	swipeRepo repository.SwipeRepository,
) *UseCase {
	return &UseCase{
		userRepo:  userRepo,
		dogRepo:   dogRepo,
		swipeRepo: swipeRepo,
	}
}

// DogCard is a discovery/search result entry.
type DogCard struct {
	ID                 int             `json:"id"`
	Name               string          `json:"name"`
	Breed              string          `json:"breed"`
	AgeYears           int             `json:"age_years"`
	AgeMonths          int             `json:"age_months"`
	WeightKg           *float64        `json:"weight_kg"`
	Sex                string          `json:"sex"`
	Bio                *string         `json:"bio"`
	Temperament        *string         `json:"temperament"`
	Intention          string          `json:"intention"`
	ActivityLevel      *string         `json:"activity_level"`
	GoodWithKids       domain.TriState `json:"good_with_kids"`
	GoodWithCats       domain.TriState `json:"good_with_cats"`
	GoodWithDogs       domain.TriState `json:"good_with_dogs"`
	OwnerName          string          `json:"owner_name"`
	OwnerCity          *string         `json:"owner_city"`
	DistanceKm         *float64        `json:"distance_km"`
	CompatibilityScore *int            `json:"compatibility_score"`
}

type DiscoverRequest struct {
	DogID         int
	MaxDistanceKm float64
	Breed         string
	Intention     string
	Sex           string
	Limit         int
}

// Discover builds the ranked candidate feed for one of the caller's dogs.
// Already-swiped dogs and the caller's own dogs never appear; candidates
// beyond the distance radius are dropped only when both owners have
// coordinates. Results are sorted by ascending distance with unknown
// distances last, then truncated.
func (uc *UseCase) Discover(ctx context.Context, userID int, req DiscoverRequest) ([]*DogCard, error) {
	myDog, err := uc.ownedDog(ctx, userID, req.DogID)
	if err != nil {
		return nil, err
	}

	me, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load requesting user: %w", err)
	}

	swipedIDs, err := uc.swipeRepo.ListSwipedDogIDs(ctx, req.DogID)
	if err != nil {
		return nil, fmt.Errorf("failed to list swiped dogs: %w", err)
	}

	if req.MaxDistanceKm <= 0 {
		req.MaxDistanceKm = defaultMaxDistKm
	}
	if req.Limit <= 0 {
		req.Limit = defaultLimit
	}

	candidates, err := uc.dogRepo.Discover(ctx, repository.DiscoverFilter{
		ExcludeOwnerID: userID,
		ExcludeDogIDs:  append(swipedIDs, req.DogID),
		Breed:          req.Breed,
		Intention:      req.Intention,
		Sex:            req.Sex,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}

	cards := make([]*DogCard, 0, len(candidates))
	for _, candidate := range candidates {
		owner, err := uc.userRepo.GetByID(ctx, candidate.OwnerID)
		if err != nil {
			continue
		}

		distance := ownerDistance(me, owner)
		if distance != nil && *distance > req.MaxDistanceKm {
			continue
		}

		score := CompatibilityScore(myDog, candidate, distance)
		cards = append(cards, newDogCard(candidate, owner, distance, &score))
	}

	sortByDistance(cards)
	if len(cards) > req.Limit {
		cards = cards[:req.Limit]
	}
	return cards, nil
}

type SearchRequest struct {
	Filter        repository.SearchFilter
	MaxDistanceKm *float64
	SortBy        string
	Page          int
	PerPage       int
}

// Search is the advanced criteria search, reserved for paid tiers.
func (uc *UseCase) Search(ctx context.Context, userID int, req SearchRequest) ([]*DogCard, error) {
	me, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load requesting user: %w", err)
	}

	if !plan.LimitsFor(me.Plan).CanAdvancedSearch {
		return nil, domain.ErrPlanUpgradeRequired
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 50 {
		req.PerPage = defaultLimit
	}

	candidates, err := uc.dogRepo.Search(ctx, userID, req.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query dogs: %w", err)
	}

	cards := make([]*DogCard, 0, len(candidates))
	for _, candidate := range candidates {
		owner, err := uc.userRepo.GetByID(ctx, candidate.OwnerID)
		if err != nil {
			continue
		}

		distance := ownerDistance(me, owner)
		if distance != nil && req.MaxDistanceKm != nil && *distance > *req.MaxDistanceKm {
			continue
		}
		cards = append(cards, newDogCard(candidate, owner, distance, nil))
	}

	switch req.SortBy {
	case "age":
		sort.SliceStable(cards, func(i, j int) bool { return cards[i].AgeYears < cards[j].AgeYears })
	case "name":
		sort.SliceStable(cards, func(i, j int) bool {
			return strings.ToLower(cards[i].Name) < strings.ToLower(cards[j].Name)
		})
	default:
		sortByDistance(cards)
	}

	start := (req.Page - 1) * req.PerPage
	if start >= len(cards) {
		return []*DogCard{}, nil
	}
	end := start + req.PerPage
	if end > len(cards) {
		end = len(cards)
	}
	return cards[start:end], nil
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

// ownerDistance computes the owner-to-owner distance, rounded to 0.1 km,
// or nil when either side has no coordinates.
func ownerDistance(a, b *domain.User) *float64 {
	if !a.HasLocation() || !b.HasLocation() {
		return nil
	}
	d := geo.Distance(*a.Latitude, *a.Longitude, *b.Latitude, *b.Longitude)
	d = math.Round(d*10) / 10
	return &d
}

func sortByDistance(cards []*DogCard) {
	sort.SliceStable(cards, func(i, j int) bool {
		di, dj := unknownDistance, unknownDistance
		if cards[i].DistanceKm != nil {
			di = *cards[i].DistanceKm
		}
		if cards[j].DistanceKm != nil {
			dj = *cards[j].DistanceKm
		}
		return di < dj
	})
}

func newDogCard(dog *domain.Dog, owner *domain.User, distance *float64, score *int) *DogCard {
	card := &DogCard{
		ID:                 dog.ID,
		Name:               dog.Name,
		Breed:              dog.Breed,
		AgeYears:           dog.AgeYears,
		AgeMonths:          dog.AgeMonths,
		WeightKg:           dog.WeightKg,
		Sex:                dog.Sex,
		Bio:                dog.Bio,
		Temperament:        dog.Temperament,
		Intention:          dog.Intention,
		ActivityLevel:      dog.ActivityLevel,
		GoodWithKids:       dog.GoodWithKids,
		GoodWithCats:       dog.GoodWithCats,
		GoodWithDogs:       dog.GoodWithDogs,
		DistanceKm:         distance,
		CompatibilityScore: score,
	}
	if owner != nil {
		card.OwnerName = owner.FullName
		card.OwnerCity = owner.City
	}
	return card
}
