package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/woofwoof-app/backend/internal/domain"
	"github.com/woofwoof-app/backend/internal/repository"
)

type swipeRepository struct {
	db *sqlx.DB
}

func NewSwipeRepository(db *sqlx.DB) repository.SwipeRepository {
	return &swipeRepository{db: db}
}

func (r *swipeRepository) Create(ctx context.Context, swipe *domain.Swipe) error {
	query := `
		INSERT INTO swipes (swiper_dog_id, swiped_dog_id, action)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, swipe.SwiperDogID, swipe.SwipedDogID, swipe.Action).
		Scan(&swipe.ID, &swipe.CreatedAt)
	if err != nil {
		// Two requests racing on the same pair are serialized by the
		// (swiper_dog_id, swiped_dog_id) unique constraint; the loser
		// is reported as a duplicate.
		if isUniqueViolation(err) {
			return domain.ErrAlreadySwiped
		}
		return err
	}
	return nil
}

func (r *swipeRepository) GetByDogs(ctx context.Context, swiperDogID, swipedDogID int) (*domain.Swipe, error) {
	var swipe domain.Swipe
	query := `SELECT * FROM swipes WHERE swiper_dog_id = $1 AND swiped_dog_id = $2`
	err := r.db.GetContext(ctx, &swipe, query, swiperDogID, swipedDogID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &swipe, nil
}

func (r *swipeRepository) HasPositiveSwipe(ctx context.Context, swiperDogID, swipedDogID int) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM swipes
			WHERE swiper_dog_id = $1 AND swiped_dog_id = $2
			  AND action IN ('like', 'super_like')
		)
	`
	err := r.db.GetContext(ctx, &exists, query, swiperDogID, swipedDogID)
	return exists, err
}

func (r *swipeRepository) ListSwipedDogIDs(ctx context.Context, swiperDogID int) ([]int, error) {
	var ids []int
	query := `SELECT swiped_dog_id FROM swipes WHERE swiper_dog_id = $1`
	err := r.db.SelectContext(ctx, &ids, query, swiperDogID)
	return ids, err
}

func (r *swipeRepository) CountToday(ctx context.Context, dogIDs []int, action string) (int, error) {
	if len(dogIDs) == 0 {
		return 0, nil
	}

	var count int
	if action == "" {
		query := `
			SELECT COUNT(*) FROM swipes
			WHERE swiper_dog_id = ANY($1) AND created_at::date = CURRENT_DATE
		`
		err := r.db.GetContext(ctx, &count, query, pq.Array(dogIDs))
		return count, err
	}

	query := `
		SELECT COUNT(*) FROM swipes
		WHERE swiper_dog_id = ANY($1) AND action = $2 AND created_at::date = CURRENT_DATE
	`
	err := r.db.GetContext(ctx, &count, query, pq.Array(dogIDs), action)
	return count, err
}
