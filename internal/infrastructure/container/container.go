package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/woofwoof-app/backend/internal/config"
	delivery "github.com/woofwoof-app/backend/internal/delivery/http"
	"github.com/woofwoof-app/backend/internal/delivery/http/handler"
	"github.com/woofwoof-app/backend/internal/delivery/http/middleware"
	"github.com/woofwoof-app/backend/internal/infrastructure/database"
	"github.com/woofwoof-app/backend/internal/infrastructure/server"
	"github.com/woofwoof-app/backend/internal/repository"
	"github.com/woofwoof-app/backend/internal/repository/postgres"
	"github.com/woofwoof-app/backend/internal/repository/rediscache"
	"github.com/woofwoof-app/backend/internal/usecase/auth"
	"github.com/woofwoof-app/backend/internal/usecase/discovery"
	"github.com/woofwoof-app/backend/internal/usecase/dog"
	"github.com/woofwoof-app/backend/internal/usecase/message"
	"github.com/woofwoof-app/backend/internal/usecase/plan"
	"github.com/woofwoof-app/backend/internal/usecase/swipe"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis. The quota cache is an optimization: when Redis is
	// unavailable the counts are computed from swipe rows on every check.
	var redisClient *redis.Client
	var quotaCache repository.QuotaCache
	redisClient, err = database.NewRedisClient(&cfg.Redis)
	if err != nil {
		logger.Warn("redis unavailable, quota caching disabled", zap.Error(err))
		redisClient = nil
	} else {
		quotaCache = rediscache.NewQuotaCache(redisClient)
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	dogRepo := postgres.NewDogRepository(db)
	swipeRepo := postgres.NewSwipeRepository(db)
	matchRepo := postgres.NewMatchRepository(db)
	messageRepo := postgres.NewMessageRepository(db)
	subscriptionRepo := postgres.NewSubscriptionRepository(db)

	// Initialize use cases
	authUseCase := auth.NewUseCase(userRepo, cfg.JWT.Secret, cfg.JWT.TokenTTL())
	dogUseCase := dog.NewUseCase(dogRepo)
	discoveryUseCase := discovery.NewUseCase(userRepo, dogRepo, swipeRepo)
	planUseCase := plan.NewUseCase(userRepo, dogRepo, swipeRepo, subscriptionRepo, quotaCache, logger)
	swipeUseCase := swipe.NewUseCase(userRepo, dogRepo, swipeRepo, matchRepo, planUseCase, logger)
	messageUseCase := message.NewUseCase(matchRepo, dogRepo, messageRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	dogHandler := handler.NewDogHandler(dogUseCase)
	discoveryHandler := handler.NewDiscoveryHandler(discoveryUseCase)
	swipeHandler := handler.NewSwipeHandler(swipeUseCase)
	planHandler := handler.NewPlanHandler(planUseCase)
	messageHandler := handler.NewMessageHandler(messageUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	if err := delivery.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	// Initialize router
	router := delivery.NewRouter(
		authHandler,
		dogHandler,
		discoveryHandler,
		swipeHandler,
		planHandler,
		messageHandler,
		authMiddleware,
		logger,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter, logger)

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	// Close Redis
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Warn("error closing redis", zap.Error(err))
		}
	}

	// Close database
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
