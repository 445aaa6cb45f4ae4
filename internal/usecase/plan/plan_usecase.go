package plan

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/woofwoof-app/backend/internal/domain"
	"github.com/woofwoof-app/backend/internal/repository"
)

// LimitsFor maps a tier to its fixed policy. Unknown tiers fall back to the
// free plan.
func LimitsFor(tier domain.PlanTier) domain.PlanLimits {
	switch tier {
	case domain.PlanPatee:
		return domain.PlanLimits{
			DailySwipes:       domain.UnlimitedQuota(),
			DailySuperLikes:   domain.LimitedQuota(1),
			CanSeeLikes:       true,
			CanAdvancedSearch: true,
			CanPuppyPredictor: true,
		}
	case domain.PlanOsEnOr:
		return domain.PlanLimits{
			DailySwipes:       domain.UnlimitedQuota(),
			DailySuperLikes:   domain.UnlimitedQuota(),
			CanSeeLikes:       true,
			CanAdvancedSearch: true,
			CanPuppyPredictor: true,
			PriorityBoost:     true,
		}
	default:
		return domain.PlanLimits{
			DailySwipes:     domain.LimitedQuota(10),
			DailySuperLikes: domain.LimitedQuota(0),
		}
	}
}

type UseCase struct {
	userRepo  repository.UserRepository
	dogRepo   repository.DogRepository
	swipeRepo repository.SwipeRepository
	subRepo   repository.SubscriptionRepository
	cache     repository.QuotaCache
	logger    *zap.Logger
}

func NewUseCase(
	userRepo repository.UserRepository,
	dogRepo repository.DogRepository,
	swipeRepo repository.SwipeRepository,
	subRepo repository.SubscriptionRepository,
	cache repository.QuotaCache,
	logger *zap.Logger,
) *UseCase {
	return &UseCase{
		userRepo:  userRepo,
		dogRepo:   dogRepo,
		swipeRepo: swipeRepo,
		subRepo:   subRepo,
		cache:     cache,
		logger:    logger,
	}
}

// CheckSwipeAllowed enforces the daily quotas for the requested action.
// Every action consumes the regular swipe quota; super likes are checked
// against their own quota on top of it. Counts are derived from today's
// swipe rows across all the owner's dogs, never from stored counters.
func (uc *UseCase) CheckSwipeAllowed(ctx context.Context, user *domain.User, action string) error {
	limits := LimitsFor(user.Plan)

	if !limits.DailySwipes.Unlimited {
		used, err := uc.usedToday(ctx, user.ID, repository.QuotaClassSwipe)
		if err != nil {
			return fmt.Errorf("failed to count today's swipes: %w", err)
		}
		if !limits.DailySwipes.Allows(used) {
			return domain.ErrSwipeLimitReached
		}
	}

	if action == domain.SwipeActionSuperLike && !limits.DailySuperLikes.Unlimited {
		used, err := uc.usedToday(ctx, user.ID, repository.QuotaClassSuperLike)
		if err != nil {
			return fmt.Errorf("failed to count today's super likes: %w", err)
		}
		if !limits.DailySuperLikes.Allows(used) {
			return domain.ErrSuperLikeLimitReached
		}
	}

	return nil
}

// OnSwipeRecorded drops the owner's cached counts after a new swipe so the
// next quota check recomputes them.
func (uc *UseCase) OnSwipeRecorded(ctx context.Context, userID int) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.InvalidateToday(ctx, userID); err != nil {
		uc.logger.Warn("failed to invalidate quota cache",
			zap.Int("user_id", userID), zap.Error(err))
	}
}

func (uc *UseCase) usedToday(ctx context.Context, userID int, class string) (int, error) {
	if uc.cache != nil {
		count, ok, err := uc.cache.GetTodayCount(ctx, userID, class)
		if err != nil {
			uc.logger.Warn("quota cache read failed",
				zap.Int("user_id", userID), zap.Error(err))
		} else if ok {
			return count, nil
		}
	}

	dogs, err := uc.dogRepo.GetByOwnerID(ctx, userID)
	if err != nil {
		return 0, err
	}
	dogIDs := make([]int, 0, len(dogs))
	for _, d := range dogs {
		dogIDs = append(dogIDs, d.ID)
	}

	action := ""
	if class == repository.QuotaClassSuperLike {
		action = domain.SwipeActionSuperLike
	}
	count, err := uc.swipeRepo.CountToday(ctx, dogIDs, action)
	if err != nil {
		return 0, err
	}

	if uc.cache != nil {
		if err := uc.cache.SetTodayCount(ctx, userID, class, count); err != nil {
			uc.logger.Warn("quota cache write failed",
				zap.Int("user_id", userID), zap.Error(err))
		}
	}
	return count, nil
}
