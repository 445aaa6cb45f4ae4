package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyUsed   = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrDogNotFound = errors.New("dog not found")
	ErrNotDogOwner = errors.New("dog does not belong to this user")

	ErrCannotSwipeSelf    = errors.New("a dog cannot swipe itself")
	ErrAlreadySwiped      = errors.New("already swiped on this dog")
	ErrInvalidSwipeAction = errors.New("invalid swipe action")

	ErrSwipeLimitReached     = errors.New("daily swipe limit reached")
	ErrSuperLikeLimitReached = errors.New("daily super like limit reached")

	ErrMatchNotFound       = errors.New("match not found")
	ErrNotMatchParticipant = errors.New("user is not part of this match")
	ErrMessageEmpty        = errors.New("message content is empty")

	ErrInvalidPlan         = errors.New("invalid plan")
	ErrPlanUpgradeRequired = errors.New("feature requires a paid plan")
)
