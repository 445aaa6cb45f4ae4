package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/woofwoof-app/backend/internal/delivery/http/handler"
	"github.com/woofwoof-app/backend/internal/delivery/http/middleware"
)

type Router struct {
	authHandler      *handler.AuthHandler
	dogHandler       *handler.DogHandler
	discoveryHandler *handler.DiscoveryHandler
	swipeHandler     *handler.SwipeHandler
	planHandler      *handler.PlanHandler
	messageHandler   *handler.MessageHandler
	authMiddleware   *middleware.AuthMiddleware
	logger           *zap.Logger
}

func NewRouter(
	authHandler *handler.AuthHandler,
	dogHandler *handler.DogHandler,
	discoveryHandler *handler.DiscoveryHandler,
	swipeHandler *handler.SwipeHandler,
	planHandler *handler.PlanHandler,
	messageHandler *handler.MessageHandler,
	authMiddleware *middleware.AuthMiddleware,
	logger *zap.Logger,
) *Router {
	return &Router{
		authHandler:      authHandler,
		dogHandler:       dogHandler,
		discoveryHandler: discoveryHandler,
		swipeHandler:     swipeHandler,
		planHandler:      planHandler,
		messageHandler:   messageHandler,
		authMiddleware:   authMiddleware,
		logger:           logger,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(r.logger))
	router.Use(middleware.Metrics())

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			protected.PUT("/me/location", r.authHandler.UpdateLocation)

			// Plan catalog, flagged with the caller's current tier
			protected.GET("/plans", r.planHandler.GetPlans)

			// Dog routes
			dogs := protected.Group("/dogs")
			{
				dogs.POST("", r.dogHandler.CreateDog)
				dogs.GET("", r.dogHandler.GetMyDogs)
				dogs.GET("/:id", r.dogHandler.GetDog)
				dogs.PUT("/:id", r.dogHandler.UpdateDog)
				dogs.DELETE("/:id", r.dogHandler.DeleteDog)
			}

			// Discovery routes
			protected.GET("/discover", r.discoveryHandler.Discover)
			protected.GET("/search", r.discoveryHandler.Search)

			// Swipe and match routes
			protected.POST("/swipe", r.swipeHandler.CreateSwipe)
			matches := protected.Group("/matches")
			{
				matches.GET("", r.swipeHandler.GetMatches)
				matches.GET("/:id/messages", r.messageHandler.ListMessages)
				matches.POST("/:id/messages", r.messageHandler.SendMessage)
			}

			// Subscription routes
			protected.GET("/my-subscription", r.planHandler.MySubscription)
			protected.POST("/subscribe", r.planHandler.Subscribe)
			protected.GET("/swipe-limit", r.planHandler.SwipeLimit)
		}
	}

	return router
}
