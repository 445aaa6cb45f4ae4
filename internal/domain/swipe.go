package domain

import "time"

const (
	SwipeActionLike      = "like"
	SwipeActionPass      = "pass"
	SwipeActionSuperLike = "super_like"
)

type Swipe struct {
	ID          int       `json:"id" db:"id"`
	SwiperDogID int       `json:"swiper_dog_id" db:"swiper_dog_id"`
	SwipedDogID int       `json:"swiped_dog_id" db:"swiped_dog_id"`
	Action      string    `json:"action" db:"action"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// IsValidSwipeAction reports whether s is one of the three swipe actions.
func IsValidSwipeAction(s string) bool {
	return s == SwipeActionLike || s == SwipeActionPass || s == SwipeActionSuperLike
}

// IsPositiveSwipeAction reports whether s can lead to a match.
func IsPositiveSwipeAction(s string) bool {
	return s == SwipeActionLike || s == SwipeActionSuperLike
}
