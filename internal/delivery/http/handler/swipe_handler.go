package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/woofwoof-app/backend/internal/usecase/swipe"
)

type SwipeHandler struct {
	swipeUseCase *swipe.UseCase
}

func NewSwipeHandler(swipeUseCase *swipe.UseCase) *SwipeHandler {
	return &SwipeHandler{
		swipeUseCase: swipeUseCase,
	}
}

// CreateSwipe handles POST /swipe
// @Summary Swipe on a dog
// @Description Record a like/pass/super_like and report a new match
// @Tags swipe
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body swipe.SwipeRequest true "Swipe data"
// @Success 200 {object} swipe.SwipeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /swipe [post]
func (h *SwipeHandler) CreateSwipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req swipe.SwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	resp, err := h.swipeUseCase.RecordSwipe(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetMatches handles GET /matches
func (h *SwipeHandler) GetMatches(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	matches, err := h.swipeUseCase.GetMatches(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}
