package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/woofwoof-app/backend/internal/domain"
	"github.com/woofwoof-app/backend/internal/usecase/plan"
)

type PlanHandler struct {
	planUseCase *plan.UseCase
}

func NewPlanHandler(planUseCase *plan.UseCase) *PlanHandler {
	return &PlanHandler{
		planUseCase: planUseCase,
	}
}

// GetPlans handles GET /plans
func (h *PlanHandler) GetPlans(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	plans, err := h.planUseCase.Plans(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// MySubscription handles GET /my-subscription
func (h *PlanHandler) MySubscription(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	sub, err := h.planUseCase.MySubscription(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

type subscribeRequest struct {
	Plan domain.PlanTier `json:"plan" binding:"required"`
}

// Subscribe handles POST /subscribe
// @Summary Change plan
// @Tags plans
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body subscribeRequest true "Target plan"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Router /subscribe [post]
func (h *PlanHandler) Subscribe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.planUseCase.Subscribe(c.Request.Context(), userID, req.Plan); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "plan": req.Plan})
}

// SwipeLimit handles GET /swipe-limit
func (h *PlanHandler) SwipeLimit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit, err := h.planUseCase.SwipeLimit(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, limit)
}
