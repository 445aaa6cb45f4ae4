package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/woofwoof-app/backend/internal/repository"
	"github.com/woofwoof-app/backend/internal/usecase/discovery"
)

type DiscoveryHandler struct {
	discoveryUseCase *discovery.UseCase
}

func NewDiscoveryHandler(discoveryUseCase *discovery.UseCase) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryUseCase: discoveryUseCase,
	}
}

type discoverQuery struct {
	DogID         int     `form:"dog_id" binding:"required"`
	MaxDistanceKm float64 `form:"max_distance_km"`
	Breed         string  `form:"breed"`
	Intention     string  `form:"intention" binding:"omitempty,intention"`
	Sex           string  `form:"sex" binding:"omitempty,oneof=male female"`
	Limit         int     `form:"limit"`
}

// Discover handles GET /discover
// @Summary Discovery feed
// @Description Ranked candidate dogs for one of the caller's dogs
// @Tags discovery
// @Security BearerAuth
// @Produce json
// @Param dog_id query int true "Requesting dog id"
// @Param max_distance_km query number false "Radius (default 50)"
// @Param breed query string false "Breed filter (substring)"
// @Param intention query string false "Intention filter"
// @Param sex query string false "Sex filter"
// @Param limit query int false "Max results (default 20)"
// @Success 200 {array} discovery.DogCard
// @Failure 404 {object} ErrorResponse
// @Router /discover [get]
func (h *DiscoveryHandler) Discover(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var q discoverQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query parameters"})
		return
	}

	cards, err := h.discoveryUseCase.Discover(c.Request.Context(), userID, discovery.DiscoverRequest{
		DogID:         q.DogID,
		MaxDistanceKm: q.MaxDistanceKm,
		Breed:         q.Breed,
		Intention:     q.Intention,
		Sex:           q.Sex,
		Limit:         q.Limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

type searchQuery struct {
	Breed         string   `form:"breed"`
	Sex           string   `form:"sex" binding:"omitempty,oneof=male female"`
	Intention     string   `form:"intention" binding:"omitempty,intention"`
	MinAgeYears   *int     `form:"min_age_years"`
	MaxAgeYears   *int     `form:"max_age_years"`
	MinWeightKg   *float64 `form:"min_weight_kg"`
	MaxWeightKg   *float64 `form:"max_weight_kg"`
	ActivityLevel string   `form:"activity_level" binding:"omitempty,activitylevel"`
	GoodWithKids  *bool    `form:"good_with_kids"`
	GoodWithCats  *bool    `form:"good_with_cats"`
	GoodWithDogs  *bool    `form:"good_with_dogs"`
	MaxDistanceKm *float64 `form:"max_distance_km"`
	SortBy        string   `form:"sort_by" binding:"omitempty,oneof=distance age name"`
	Page          int      `form:"page"`
	PerPage       int      `form:"per_page"`
}

// Search handles GET /search (paid plans only)
func (h *DiscoveryHandler) Search(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query parameters"})
		return
	}

	cards, err := h.discoveryUseCase.Search(c.Request.Context(), userID, discovery.SearchRequest{
		Filter: repository.SearchFilter{
			Breed:         q.Breed,
			Sex:           q.Sex,
			Intention:     q.Intention,
			MinAgeYears:   q.MinAgeYears,
			MaxAgeYears:   q.MaxAgeYears,
			MinWeightKg:   q.MinWeightKg,
			MaxWeightKg:   q.MaxWeightKg,
			ActivityLevel: q.ActivityLevel,
			GoodWithKids:  q.GoodWithKids,
			GoodWithCats:  q.GoodWithCats,
			GoodWithDogs:  q.GoodWithDogs,
		},
		MaxDistanceKm: q.MaxDistanceKm,
		SortBy:        q.SortBy,
		Page:          q.Page,
		PerPage:       q.PerPage,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}
