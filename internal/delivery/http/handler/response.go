package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/woofwoof-app/backend/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps domain sentinel errors to HTTP statuses. Anything
// unrecognized is a 500 with a generic body so internals never leak.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrDogNotFound),
		errors.Is(err, domain.ErrMatchNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrAlreadySwiped),
		errors.Is(err, domain.ErrCannotSwipeSelf),
		errors.Is(err, domain.ErrInvalidSwipeAction),
		errors.Is(err, domain.ErrEmailAlreadyUsed),
		errors.Is(err, domain.ErrInvalidPlan),
		errors.Is(err, domain.ErrMessageEmpty):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotDogOwner),
		errors.Is(err, domain.ErrNotMatchParticipant),
		errors.Is(err, domain.ErrSwipeLimitReached),
		errors.Is(err, domain.ErrSuperLikeLimitReached),
		errors.Is(err, domain.ErrPlanUpgradeRequired):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// currentUserID pulls the authenticated user id set by the auth middleware.
func currentUserID(c *gin.Context) (int, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return 0, false
	}
	return v.(int), true
}
