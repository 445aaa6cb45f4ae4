package domain

import "time"

type PlanTier string

const (
	PlanCroquette PlanTier = "croquette"
	PlanPatee     PlanTier = "patee"
	PlanOsEnOr    PlanTier = "os_en_or"
)

func IsValidPlanTier(p PlanTier) bool {
	return p == PlanCroquette || p == PlanPatee || p == PlanOsEnOr
}

// Quota is a daily allowance. Unlimited is its own state instead of a
// magic -1 so callers cannot accidentally compare a count against it.
type Quota struct {
	Unlimited bool
	PerDay    int
}

func LimitedQuota(n int) Quota { return Quota{PerDay: n} }
func UnlimitedQuota() Quota    { return Quota{Unlimited: true} }

// Allows reports whether one more unit may be consumed given the number
// already used today.
func (q Quota) Allows(usedToday int) bool {
	return q.Unlimited || usedToday < q.PerDay
}

// Remaining returns the units left today, and false when the quota is
// unlimited.
func (q Quota) Remaining(usedToday int) (int, bool) {
	if q.Unlimited {
		return 0, false
	}
	left := q.PerDay - usedToday
	if left < 0 {
		left = 0
	}
	return left, true
}

// PlanLimits is the fixed policy attached to a tier.
type PlanLimits struct {
	DailySwipes       Quota
	DailySuperLikes   Quota
	CanSeeLikes       bool
	CanAdvancedSearch bool
	CanPuppyPredictor bool
	PriorityBoost     bool
}

type Subscription struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id"`
	Plan      PlanTier  `json:"plan" db:"plan"`
	StartedAt time.Time `json:"started_at" db:"started_at"`
	IsActive  bool      `json:"is_active" db:"is_active"`
}
