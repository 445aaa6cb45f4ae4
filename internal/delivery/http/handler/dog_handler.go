package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/woofwoof-app/backend/internal/usecase/dog"
)

type DogHandler struct {
	dogUseCase *dog.UseCase
}

func NewDogHandler(dogUseCase *dog.UseCase) *DogHandler {
	return &DogHandler{
		dogUseCase: dogUseCase,
	}
}

// CreateDog handles POST /dogs
// @Summary Create a dog profile
// @Tags dogs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dog.CreateDogRequest true "Dog data"
// @Success 201 {object} domain.Dog
// @Failure 400 {object} ErrorResponse
// @Router /dogs [post]
func (h *DogHandler) CreateDog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dog.CreateDogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	created, err := h.dogUseCase.CreateDog(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetMyDogs handles GET /dogs
func (h *DogHandler) GetMyDogs(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dogs, err := h.dogUseCase.GetMyDogs(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dogs)
}

// GetDog handles GET /dogs/:id
func (h *DogHandler) GetDog(c *gin.Context) {
	dogID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid dog id"})
		return
	}

	found, err := h.dogUseCase.GetDog(c.Request.Context(), dogID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// UpdateDog handles PUT /dogs/:id
func (h *DogHandler) UpdateDog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dogID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid dog id"})
		return
	}

	var req dog.UpdateDogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	updated, err := h.dogUseCase.UpdateDog(c.Request.Context(), userID, dogID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteDog handles DELETE /dogs/:id
func (h *DogHandler) DeleteDog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dogID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid dog id"})
		return
	}

	if err := h.dogUseCase.DeleteDog(c.Request.Context(), userID, dogID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
