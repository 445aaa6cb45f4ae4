package swipe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/woofwoof-app/backend/internal/domain"
	"github.com/woofwoof-app/backend/internal/metrics"
	"github.com/woofwoof-app/backend/internal/repository"
	"github.com/woofwoof-app/backend/internal/usecase/plan"
)

type UseCase struct {
	userRepo  repository.UserRepository
	dogRepo   repository.DogRepository
	swipeRepo repository.SwipeRepository
	matchRepo repository.MatchRepository
	planUC    *plan.UseCase
	logger    *zap.Logger
}

func NewUseCase(
	userRepo repository.UserRepository,
	dogRepo repository.DogRepository,
	swipeRepo repository.SwipeRepository,
	matchRepo repository.MatchRepository,
	planUC *plan.UseCase,
	logger *zap.Logger,
) *UseCase {
	return &UseCase{
		userRepo:  userRepo,
		dogRepo:   dogRepo,
		swipeRepo: swipeRepo,
		matchRepo: matchRepo,
		planUC:    planUC,
		logger:    logger,
	}
}

type SwipeRequest struct {
	SwiperDogID int    `json:"swiper_dog_id" binding:"required"`
	SwipedDogID int    `json:"swiped_dog_id" binding:"required"`
	Action      string `json:"action" binding:"required,swipeaction"`
}

type SwipeResponse struct {
	IsMatch bool          `json:"is_match"`
	Match   *domain.Match `json:"match,omitempty"`
}

// RecordSwipe runs the unswiped -> swiped transition for the ordered
// (swiper, swiped) pair. All checks happen before the single persisting
// write; a positive swipe then looks for the reciprocal one and creates
// the canonical match idempotently.
func (uc *UseCase) RecordSwipe(ctx context.Context, userID int, req *SwipeRequest) (*SwipeResponse, error) {
	if !domain.IsValidSwipeAction(req.Action) {
		return nil, domain.ErrInvalidSwipeAction
	}
	if req.SwiperDogID == req.SwipedDogID {
		return nil, domain.ErrCannotSwipeSelf
	}

	myDog, err := uc.dogRepo.GetByID(ctx, req.SwiperDogID)
	if err != nil {
		return nil, err
	}
	if myDog.OwnerID != userID {
		return nil, domain.ErrNotDogOwner
	}

	if _, err := uc.dogRepo.GetByID(ctx, req.SwipedDogID); err != nil {
		return nil, err
	}

	existing, err := uc.swipeRepo.GetByDogs(ctx, req.SwiperDogID, req.SwipedDogID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing swipe: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrAlreadySwiped
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := uc.planUC.CheckSwipeAllowed(ctx, user, req.Action); err != nil {
		if errors.Is(err, domain.ErrSwipeLimitReached) || errors.Is(err, domain.ErrSuperLikeLimitReached) {
			metrics.RecordSwipeLimitRejection(string(user.Plan))
		}
		return nil, err
	}

	swipe := &domain.Swipe{
		SwiperDogID: req.SwiperDogID,
		SwipedDogID: req.SwipedDogID,
		Action:      req.Action,
	}
	if err := uc.swipeRepo.Create(ctx, swipe); err != nil {
		return nil, err
	}
	uc.planUC.OnSwipeRecorded(ctx, userID)
	metrics.RecordSwipe(req.Action)

	resp := &SwipeResponse{}
	if !domain.IsPositiveSwipeAction(req.Action) {
		return resp, nil
	}

	reciprocal, err := uc.swipeRepo.HasPositiveSwipe(ctx, req.SwipedDogID, req.SwiperDogID)
	if err != nil {
		return nil, fmt.Errorf("failed to check reciprocal swipe: %w", err)
	}
	if !reciprocal {
		return resp, nil
	}

	match := &domain.Match{IsActive: true}
	match.Dog1ID, match.Dog2ID = domain.CanonicalPair(req.SwiperDogID, req.SwipedDogID)

	if existingMatch, err := uc.matchRepo.GetByDogs(ctx, match.Dog1ID, match.Dog2ID); err == nil && existingMatch != nil {
		return resp, nil
	}

	created, err := uc.matchRepo.Create(ctx, match)
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	if created {
		uc.logger.Info("match created",
			zap.Int("match_id", match.ID),
			zap.Int("dog_1_id", match.Dog1ID),
			zap.Int("dog_2_id", match.Dog2ID),
		)
		metrics.RecordMatchCreated()
		resp.IsMatch = true
		resp.Match = match
	}
	return resp, nil
}

// MatchResponse pairs a match with both dogs, oriented from the caller's
// side.
type MatchResponse struct {
	ID        int         `json:"id"`
	CreatedAt time.Time   `json:"created_at"`
	MyDog     *domain.Dog `json:"my_dog"`
	OtherDog  *domain.Dog `json:"other_dog"`
}

// GetMatches lists active matches involving any of the user's dogs,
// newest first.
func (uc *UseCase) GetMatches(ctx context.Context, userID int) ([]*MatchResponse, error) {
	myDogs, err := uc.dogRepo.GetByOwnerID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load dogs: %w", err)
	}
	if len(myDogs) == 0 {
		return []*MatchResponse{}, nil
	}

	mine := make(map[int]*domain.Dog, len(myDogs))
	dogIDs := make([]int, 0, len(myDogs))
	for _, d := range myDogs {
		mine[d.ID] = d
		dogIDs = append(dogIDs, d.ID)
	}

	matches, err := uc.matchRepo.GetActiveByDogIDs(ctx, dogIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load matches: %w", err)
	}

	responses := make([]*MatchResponse, 0, len(matches))
	for _, m := range matches {
		myDogID := m.Dog1ID
		if _, ok := mine[myDogID]; !ok {
			myDogID = m.Dog2ID
		}
		otherDogID, _ := m.OtherDogID(myDogID)

		otherDog, err := uc.dogRepo.GetByID(ctx, otherDogID)
		if err != nil {
			continue
		}
		responses = append(responses, &MatchResponse{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			MyDog:     mine[myDogID],
			OtherDog:  otherDog,
		})
	}
	return responses, nil
}
