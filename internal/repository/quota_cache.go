package repository

import "context"

// Quota action classes used as cache keys.
const (
	QuotaClassSwipe     = "swipe"
	QuotaClassSuperLike = "super_like"
)

// QuotaCache holds derived per-owner daily swipe counts. Counts are always
// recomputable from the swipes table; the cache only avoids the aggregation
// query and must be invalidated on every new swipe by the owner.
type QuotaCache interface {
	GetTodayCount(ctx context.Context, userID int, class string) (count int, ok bool, err error)
	SetTodayCount(ctx context.Context, userID int, class string, count int) error
	InvalidateToday(ctx context.Context, userID int) error
}
