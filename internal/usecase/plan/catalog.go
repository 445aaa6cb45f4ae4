package plan

import (
	"context"
	"fmt"

	"github.com/woofwoof-app/backend/internal/domain"
	"github.com/woofwoof-app/backend/internal/repository"
)

// PlanFeature is one line of the pricing table.
type PlanFeature struct {
	Label    string `json:"label"`
	Included bool   `json:"included"`
}

type PlanInfo struct {
	ID           domain.PlanTier `json:"id"`
	Name         string          `json:"name"`
	Icon         string          `json:"icon"`
	PriceMonthly float64         `json:"price_monthly"`
	Features     []PlanFeature   `json:"features"`
	IsCurrent    bool            `json:"is_current"`
}

// SwipeLimitResponse reports today's usage. A nil DailyLimit/Remaining
// means the plan is unlimited.
type SwipeLimitResponse struct {
	DailyLimit *int            `json:"daily_limit"`
	UsedToday  int             `json:"used_today"`
	Remaining  *int            `json:"remaining"`
	Plan       domain.PlanTier `json:"plan"`
}

type SubscriptionResponse struct {
	Plan              domain.PlanTier `json:"plan"`
	PlanName          string          `json:"plan_name"`
	PlanIcon          string          `json:"plan_icon"`
	SwipesUsedToday   int             `json:"swipes_used_today"`
	SwipesRemaining   *int            `json:"swipes_remaining"`
	SuperLikesPerDay  *int            `json:"super_likes_per_day"`
	CanSeeLikes       bool            `json:"can_see_likes"`
	CanAdvancedSearch bool            `json:"can_advanced_search"`
	PriorityBoost     bool            `json:"priority_boost"`
}

type planMeta struct {
	tier         domain.PlanTier
	name         string
	icon         string
	priceMonthly float64
	features     []PlanFeature
}

var planCatalog = []planMeta{
	{
		tier: domain.PlanCroquette, name: "Croquette", icon: "🦴", priceMonthly: 0,
		features: []PlanFeature{
			{"10 swipes par jour", true},
			{"Profil basique", true},
			{"Messagerie", true},
			{"Voir qui m'a liké", false},
			{"Recherche avancée", false},
			{"Super Likes", false},
			{"Mise en avant du profil", false},
		},
	},
	{
		tier: domain.PlanPatee, name: "Pâtée", icon: "🥫", priceMonthly: 9.99,
		features: []PlanFeature{
			{"Swipes illimités", true},
			{"Profil complet", true},
			{"Messagerie illimitée", true},
			{"Voir qui m'a liké", true},
			{"Recherche avancée", true},
			{"1 Super Like / jour", true},
			{"Mise en avant du profil", false},
		},
	},
	{
		tier: domain.PlanOsEnOr, name: "Os en Or", icon: "🏆", priceMonthly: 19.99,
		features: []PlanFeature{
			{"Swipes illimités", true},
			{"Profil complet", true},
			{"Messagerie illimitée", true},
			{"Voir qui m'a liké", true},
			{"Recherche avancée", true},
			{"Super Likes illimités", true},
			{"Mise en avant du profil", true},
		},
	},
}

// Plans returns the pricing catalog with the caller's tier flagged.
func (uc *UseCase) Plans(ctx context.Context, userID int) ([]PlanInfo, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	plans := make([]PlanInfo, 0, len(planCatalog))
	for _, meta := range planCatalog {
		plans = append(plans, PlanInfo{
			ID:           meta.tier,
			Name:         meta.name,
			Icon:         meta.icon,
			PriceMonthly: meta.priceMonthly,
			Features:     meta.features,
			IsCurrent:    meta.tier == user.Plan,
		})
	}
	return plans, nil
}

// Subscribe switches the user's tier and records the subscription.
func (uc *UseCase) Subscribe(ctx context.Context, userID int, tier domain.PlanTier) error {
	if !domain.IsValidPlanTier(tier) {
		return domain.ErrInvalidPlan
	}
	if err := uc.userRepo.UpdatePlan(ctx, userID, tier); err != nil {
		return fmt.Errorf("failed to update plan: %w", err)
	}
	sub := &domain.Subscription{UserID: userID, Plan: tier, IsActive: true}
	if err := uc.subRepo.Upsert(ctx, sub); err != nil {
		return fmt.Errorf("failed to store subscription: %w", err)
	}
	return nil
}

// SwipeLimit reports today's regular-swipe usage against the tier quota.
func (uc *UseCase) SwipeLimit(ctx context.Context, userID int) (*SwipeLimitResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	limits := LimitsFor(user.Plan)
	used, err := uc.usedToday(ctx, userID, repository.QuotaClassSwipe)
	if err != nil {
		return nil, err
	}

	resp := &SwipeLimitResponse{UsedToday: used, Plan: user.Plan}
	if remaining, limited := limits.DailySwipes.Remaining(used); limited {
		limit := limits.DailySwipes.PerDay
		resp.DailyLimit = &limit
		resp.Remaining = &remaining
	}
	return resp, nil
}

// MySubscription summarizes the caller's plan and today's usage.
func (uc *UseCase) MySubscription(ctx context.Context, userID int) (*SubscriptionResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	limits := LimitsFor(user.Plan)
	used, err := uc.usedToday(ctx, userID, repository.QuotaClassSwipe)
	if err != nil {
		return nil, err
	}

	resp := &SubscriptionResponse{
		Plan:              user.Plan,
		SwipesUsedToday:   used,
		CanSeeLikes:       limits.CanSeeLikes,
		CanAdvancedSearch: limits.CanAdvancedSearch,
		PriorityBoost:     limits.PriorityBoost,
	}
	for _, meta := range planCatalog {
		if meta.tier == user.Plan {
			resp.PlanName = meta.name
			resp.PlanIcon = meta.icon
		}
	}
	if remaining, limited := limits.DailySwipes.Remaining(used); limited {
		resp.SwipesRemaining = &remaining
	}
	if limits.DailySuperLikes.Unlimited {
		resp.SuperLikesPerDay = nil
	} else {
		perDay := limits.DailySuperLikes.PerDay
		resp.SuperLikesPerDay = &perDay
	}
	return resp, nil
}
