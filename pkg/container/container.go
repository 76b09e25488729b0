package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"craftmarket-backend/internal/config"
	infraCache "craftmarket-backend/internal/infrastructure/cache"
	"craftmarket-backend/internal/infrastructure/database"
	"craftmarket-backend/pkg/cache"
	"craftmarket-backend/pkg/jwt"

	productHandler "craftmarket-backend/internal/domains/product/handler"
	productRepo "craftmarket-backend/internal/domains/product/repository"
	productService "craftmarket-backend/internal/domains/product/service"
	reviewHandler "craftmarket-backend/internal/domains/review/handler"
	reviewRepo "craftmarket-backend/internal/domains/review/repository"
	reviewService "craftmarket-backend/internal/domains/review/service"
	sellerHandler "craftmarket-backend/internal/domains/seller/handler"
	sellerRepo "craftmarket-backend/internal/domains/seller/repository"
	sellerService "craftmarket-backend/internal/domains/seller/service"
	userHandler "craftmarket-backend/internal/domains/user/handler"
	userRepo "craftmarket-backend/internal/domains/user/repository"
	userService "craftmarket-backend/internal/domains/user/service"
)

// =====================================================
// DI CONTAINER
// =====================================================

// Container is the root of the dependency graph. Everything in it is
// a singleton wired once at startup: config, then infrastructure, then
// repositories, services, and handlers.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Redis      *infraCache.RedisClient
	Cache      cache.Cache
	JWTManager *jwt.Manager

	UserRepo    userRepo.UserRepository
	SellerRepo  sellerRepo.SellerRepository
	ProductRepo productRepo.ProductRepository
	ReviewRepo  reviewRepo.ReviewRepository

	Aggregator *reviewService.RatingAggregator

	UserService    userService.ServiceInterface
	SellerService  sellerService.ServiceInterface
	ProductService productService.ServiceInterface
	ReviewService  reviewService.ServiceInterface

	UserHandler    *userHandler.UserHandler
	SellerHandler  *sellerHandler.SellerHandler
	ProductHandler *productHandler.ProductHandler
	ReviewHandler  *reviewHandler.ReviewHandler
}

// NewContainer builds the full dependency graph.
func NewContainer() (*Container, error) {
	c := &Container{}

	log.Println("[Container] Loading configuration...")
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	log.Println("[Container] Connecting to PostgreSQL...")
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}
	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	log.Println("[Container] Connecting to Redis...")
	redisClient := infraCache.NewRedisClient(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if err := redisClient.Connect(context.Background()); err != nil {
		// Cached reads fall through to the database, so a missing
		// Redis is degraded service, not a startup failure.
		log.Printf("[Container] Redis connection failed (non-critical): %v", err)
	}
	c.Redis = redisClient
	c.Cache = redisClient

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Println("[Container] Initialized")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresUserRepository(pool)
	c.SellerRepo = sellerRepo.NewPostgresSellerRepository(pool)
	c.ProductRepo = productRepo.NewPostgresProductRepository(pool)
	c.ReviewRepo = reviewRepo.NewPostgresReviewRepository(pool)
}

func (c *Container) initServices() {
	c.Aggregator = reviewService.NewRatingAggregator(c.ReviewRepo, c.ProductRepo)

	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	c.SellerService = sellerService.NewSellerService(c.SellerRepo, c.ProductRepo, c.UserRepo)
	c.ProductService = productService.NewProductService(c.ProductRepo, c.SellerRepo, c.Cache)
	c.ReviewService = reviewService.NewReviewService(c.ReviewRepo, c.Aggregator, c.Cache)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.SellerHandler = sellerHandler.NewSellerHandler(c.SellerService)
	c.ProductHandler = productHandler.NewProductHandler(c.ProductService)
	c.ReviewHandler = reviewHandler.NewReviewHandler(c.ReviewService)
}

// Cleanup releases infrastructure resources during shutdown.
func (c *Container) Cleanup() {
	log.Println("[Container] Cleaning up...")

	if c.DB != nil {
		c.DB.Close()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Printf("[Container] Failed to close Redis: %v", err)
		}
	}

	log.Println("[Container] Cleanup completed")
}
