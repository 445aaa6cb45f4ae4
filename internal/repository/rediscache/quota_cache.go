package rediscache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/woofwoof-app/backend/internal/repository"
)

type quotaCache struct {
	client *redis.Client
}

// NewQuotaCache returns a redis-backed daily swipe count cache. Keys carry
// the calendar day and expire shortly after midnight, so a stale entry can
// never leak into the next day.
func NewQuotaCache(client *redis.Client) repository.QuotaCache {
	return &quotaCache{client: client}
}

func (c *quotaCache) GetTodayCount(ctx context.Context, userID int, class string) (int, bool, error) {
	count, err := c.client.Get(ctx, todayKey(userID, class)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return count, true, nil
}

func (c *quotaCache) SetTodayCount(ctx context.Context, userID int, class string, count int) error {
	return c.client.Set(ctx, todayKey(userID, class), count, untilEndOfDay()).Err()
}

func (c *quotaCache) InvalidateToday(ctx context.Context, userID int) error {
	return c.client.Del(ctx,
		todayKey(userID, repository.QuotaClassSwipe),
		todayKey(userID, repository.QuotaClassSuperLike),
	).Err()
}

func todayKey(userID int, class string) string {
	return fmt.Sprintf("quota:%s:%d:%s", class, userID, time.Now().Format("2006-01-02"))
}

func untilEndOfDay() time.Duration {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).Add(24 * time.Hour)
	// Small grace period past midnight to cover clock skew with postgres.
	return midnight.Sub(now) + time.Minute
}
