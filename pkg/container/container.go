package container

import (
	"context"
	"fmt"
	"time"

	"social-backend/internal/config"
	commentHandler "social-backend/internal/domains/comment/handler"
	commentRepo "social-backend/internal/domains/comment/repository"
	commentService "social-backend/internal/domains/comment/service"
	postHandler "social-backend/internal/domains/post/handler"
	postRepo "social-backend/internal/domains/post/repository"
	postService "social-backend/internal/domains/post/service"
	profileHandler "social-backend/internal/domains/profile/handler"
	profileRepo "social-backend/internal/domains/profile/repository"
	profileService "social-backend/internal/domains/profile/service"
	userHandler "social-backend/internal/domains/user/handler"
	userRepo "social-backend/internal/domains/user/repository"
	userService "social-backend/internal/domains/user/service"
	"social-backend/internal/infrastructure/cache"
	"social-backend/internal/infrastructure/database"
	"social-backend/internal/infrastructure/queue"
	"social-backend/internal/infrastructure/storage"
	"social-backend/pkg/jwt"
	"social-backend/pkg/logger"
)

// Container holds every long-lived dependency of the application.
// Initialization order matters: config, then infrastructure, then
// repositories, services and handlers.
type Container struct {
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       cache.Cache
	Storage     storage.Uploader
	QueueClient *queue.Client
	JWTManager  *jwt.Manager

	UserRepo    userRepo.UserRepository
	ProfileRepo profileRepo.ProfileRepository
	PostRepo    postRepo.PostRepository
	CommentRepo commentRepo.CommentRepository

	UserService    userService.UserService
	ProfileService profileService.ProfileService
	PostService    postService.PostService
	CommentService commentService.CommentService

	UserHandler    *userHandler.UserHandler
	ProfileHandler *profileHandler.ProfileHandler
	PostHandler    *postHandler.PostHandler
	CommentHandler *commentHandler.CommentHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	logger.Init(cfg.App.Environment)
	logger.Info("Configuration loaded", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	ctx := context.Background()

	c.DB = database.NewPostgresDB(&cfg.Database)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logger.Info("PostgreSQL connected", nil)

	redisCache := cache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.Cache = redisCache
	logger.Info("Redis connected", nil)

	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	c.Storage = minioStorage

	c.QueueClient = queue.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info("Container initialized", nil)
	return c, nil
}

func (c *Container) initRepositories() {
	c.UserRepo = userRepo.NewPostgresUserRepository(c.DB.Pool)
	c.ProfileRepo = profileRepo.NewPostgresProfileRepository(c.DB.Pool)
	c.PostRepo = postRepo.NewPostgresPostRepository(c.DB.Pool)
	c.CommentRepo = commentRepo.NewPostgresCommentRepository(c.DB.Pool)
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(c.UserRepo, c.ProfileRepo, c.JWTManager)
	c.ProfileService = profileService.NewProfileService(c.ProfileRepo, c.Storage, c.UserService)
	c.PostService = postService.NewPostService(c.PostRepo, c.ProfileRepo, c.Storage, c.QueueClient, c.Cache)
	c.CommentService = commentService.NewCommentService(c.CommentRepo, c.ProfileRepo)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.ProfileHandler = profileHandler.NewProfileHandler(c.ProfileService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
}

// Cleanup releases infrastructure connections in reverse order.
func (c *Container) Cleanup() {
	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			logger.Error("Failed to close queue client", err)
		}
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			logger.Error("Failed to close redis", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
	logger.Info("Container cleaned up", nil)
}
