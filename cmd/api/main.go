package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"job-portal-backend/config"
	_ "job-portal-backend/docs" // Important for Swagger
	"job-portal-backend/internal/delivery/http/middleware"
	v1 "job-portal-backend/internal/delivery/http/v1"
	"job-portal-backend/internal/domain"
	"job-portal-backend/internal/repository/mongodb"
	"job-portal-backend/internal/repository/objectstore"
	"job-portal-backend/internal/repository/postgres"
	"job-portal-backend/internal/usecase"
	"job-portal-backend/pkg/database"
	"job-portal-backend/pkg/logger"
	"job-portal-backend/pkg/redis"
	"job-portal-backend/pkg/security"
	"job-portal-backend/pkg/storage"
	"job-portal-backend/pkg/validation"

	goredis "github.com/redis/go-redis/v9"
)

type repositories struct {
	users       domain.UserRepository
	media       domain.MediaRepository
	posts       domain.PostRepository
	messages    domain.MessageRepository
	jobs        domain.JobRepository
	projects    domain.ProjectRepository
	experiences domain.ExperienceRepository
	db          domain.Pinger
	close       func()
}

// @title           Job Portal Backend API
// @version         1.0
// @description     Users, posts, messages, jobs, projects and experiences for a job portal.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting job portal backend", "port", cfg.Port, "db_driver", cfg.DBDriver, "media_backend", cfg.MediaBackend)

	ctx := context.Background()

	// 3. Setup Database and Repositories
	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}
	defer repos.close()

	// 4. Optional object storage for media payloads
	var objectPinger domain.Pinger
	if cfg.MediaBackend == config.MediaBackendMinio {
		store, err := storage.NewMinioStore(ctx, cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
		if err != nil {
			logger.Log.Error("Failed to connect to object storage", "endpoint", cfg.MinioEndpoint, "error", err)
			os.Exit(1)
		}
		repos.media = objectstore.NewMediaRepository(repos.media, store)
		objectPinger = store
	}

	// 5. Optional Redis for rate limiting
	var redisClient *goredis.Client
	var redisPinger domain.Pinger
	if cfg.UpstashRedisURL != "" {
		redisClient, err = redis.NewClient(ctx, redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword})
		if err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to memory", "error", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
			redisPinger = redis.Pinger{Client: redisClient}
		}
	}

	// 6. Setup UseCases
	validate := validation.New()
	mediaUC := usecase.NewMediaUsecase(repos.media, usecase.MediaOptions{
		MaxUploadBytes: cfg.MaxUploadBytes,
		MaxDimension:   cfg.MediaMaxDimension,
	})
	userUC := usecase.NewUserUsecase(repos.users, mediaUC, validate)
	postUC := usecase.NewPostUsecase(repos.posts, mediaUC, validate, cfg.MaxPostImages)
	messageUC := usecase.NewMessageUsecase(repos.messages, validate)
	jobUC := usecase.NewJobUsecase(repos.jobs, validate)
	projectUC := usecase.NewProjectUsecase(repos.projects, validate)
	experienceUC := usecase.NewExperienceUsecase(repos.experiences, validate)
	healthUC := usecase.NewHealthUsecase(map[string]domain.Pinger{
		"database":      repos.db,
		"redis":         redisPinger,
		"objectStorage": objectPinger,
	})

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		UserUC:       userUC,
		PostUC:       postUC,
		MessageUC:    messageUC,
		MediaUC:      mediaUC,
		JobUC:        jobUC,
		ProjectUC:    projectUC,
		ExperienceUC: experienceUC,
		HealthUC:     healthUC,
		RateLimiter:  middleware.NewRateLimiter(redisClient),
		LoginTracker: security.NewLoginTracker(redisClient, security.DefaultLoginTrackerConfig()),
		Config:       cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if cfg.DBDriver == config.DriverMongo {
		client, db, err := database.NewMongoConnection(connectCtx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		if err := mongodb.EnsureIndexes(connectCtx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		return &repositories{
			users:       mongodb.NewUserRepository(db),
			media:       mongodb.NewMediaRepository(db),
			posts:       mongodb.NewPostRepository(db),
			messages:    mongodb.NewMessageRepository(db),
			jobs:        mongodb.NewJobRepository(db),
			projects:    mongodb.NewProjectRepository(db),
			experiences: mongodb.NewExperienceRepository(db),
			db:          database.MongoPinger{Client: client},
			close: func() {
				if err := client.Disconnect(context.Background()); err != nil {
					logger.Log.Warn("Mongo disconnect failed", "error", err)
				}
			},
		}, nil
	}

	pool, err := database.NewPostgresConnection(connectCtx, cfg.DBUrl)
	if err != nil {
		return nil, err
	}
	if err := postgres.Migrate(connectCtx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return &repositories{
		users:       postgres.NewUserRepository(pool),
		media:       postgres.NewMediaRepository(pool),
		posts:       postgres.NewPostRepository(pool),
		messages:    postgres.NewMessageRepository(pool),
		jobs:        postgres.NewJobRepository(pool),
		projects:    postgres.NewProjectRepository(pool),
		experiences: postgres.NewExperienceRepository(pool),
		db:          pool,
		close:       pool.Close,
	}, nil
}
