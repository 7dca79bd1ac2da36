package v1

import (
	"time"

	"job-portal-backend/config"
	"job-portal-backend/internal/delivery/http/middleware"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/security"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	UserUC       domain.UserUsecase
	PostUC       domain.PostUsecase
	MessageUC    domain.MessageUsecase
	MediaUC      domain.MediaUsecase
	JobUC        domain.JobUsecase
	ProjectUC    domain.ProjectUsecase
	ExperienceUC domain.ExperienceUsecase
	HealthUC     domain.HealthUsecase
	RateLimiter  *middleware.RateLimiter
	LoginTracker *security.LoginTracker
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	r := gin.New()
	r.MaxMultipartMemory = multipartMemory

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(cfg.FrontendURL, gin.Mode() == gin.ReleaseMode)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	NewHealthHandler(v1, deps.HealthUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second
	rl := deps.RateLimiter
	if rl == nil {
		rl = middleware.NewRateLimiter(nil)
	}

	authMW := []gin.HandlerFunc{
		rl.Middleware(middleware.LoginRateLimitConfig(cfg.RateLimitLoginThreshold, window)),
	}
	// A post carries at most MaxPostImages files plus its text fields.
	uploadMW := []gin.HandlerFunc{
		rl.Middleware(middleware.UploadRateLimitConfig(cfg.RateLimitUploadThreshold, window)),
		middleware.BodyLimit(int64(max(cfg.MaxPostImages, 1))*cfg.MaxUploadBytes + 1<<20),
	}

	NewUserHandler(v1, deps.UserUC, UserHandlerConfig{
		MaxUploadBytes: cfg.MaxUploadBytes,
		LoginTracker:   deps.LoginTracker,
		AuthMW:         authMW,
		UploadMW:       uploadMW,
	})
	NewPostHandler(v1, deps.PostUC, cfg.MaxUploadBytes, uploadMW)
	NewMessageHandler(v1, deps.MessageUC)
	NewMediaHandler(v1, deps.MediaUC)
	NewJobHandler(v1, deps.JobUC)
	NewProjectHandler(v1, deps.ProjectUC)
	NewExperienceHandler(v1, deps.ExperienceUC)

	return r
}

// with appends handler to a copy of the route middleware.
func with(mw []gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, len(mw)+1)
	chain = append(chain, mw...)
	return append(chain, handler)
}

// pageFromQuery reads page and limit; bad values fall back to the defaults.
func pageFromQuery(c *gin.Context) domain.Pagination {
	return domain.NewPagination(c.Query("page"), c.Query("limit"))
}
