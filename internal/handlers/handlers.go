package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"jobify/api/internal/config"
	"jobify/api/internal/middleware"
	"jobify/api/internal/models"
	"jobify/api/internal/repository"
	"jobify/api/internal/security"
	"jobify/api/internal/service"
	"jobify/api/internal/storage"
)

// userStore and jobStore are the slices of the repositories the handlers
// touch directly; everything else goes through the services.
type userStore interface {
	GetByID(ctx context.Context, id string) (models.User, error)
	Count(ctx context.Context) (int, error)
}

type jobStore interface {
	Create(ctx context.Context, job models.Job) error
	GetByID(ctx context.Context, id string) (models.Job, error)
	Update(ctx context.Context, job models.Job) (models.Job, error)
	Delete(ctx context.Context, id string) (models.Job, error)
	Count(ctx context.Context) (int, error)
}

type HandlerSet struct {
	log            zerolog.Logger
	cfg            *config.AppConfig
	demoUserID     string
	authService    *service.AuthService
	jobService     *service.JobService
	profileService *service.ProfileService
	denyList       *security.DenyList
	db             *pgxpool.Pool
	cache          *redis.Client
	users          userStore
	jobs           jobStore
}

func NewHandlerSet(
	log zerolog.Logger,
	cfg *config.AppConfig,
	db *pgxpool.Pool,
	cache *redis.Client,
	avatars *storage.AvatarStore,
	users *repository.UserRepository,
	jobs *repository.JobRepository,
	denyList *security.DenyList,
) *HandlerSet {
	return &HandlerSet{
		log:            log,
		cfg:            cfg,
		authService:    service.NewAuthService(users, denyList, cfg, log),
		jobService:     service.NewJobService(jobs, log),
		profileService: service.NewProfileService(users, avatars, log),
		denyList:       denyList,
		db:             db,
		cache:          cache,
		users:          users,
		jobs:           jobs,
	}
}

// EnsureDemoUser seeds the shared demo account and records its id so the
// session middleware can flag it read-only. Call before Register.
func (h *HandlerSet) EnsureDemoUser(ctx context.Context) (string, error) {
	id, err := h.authService.EnsureDemoUser(ctx)
	if err != nil {
		return "", err
	}
	h.demoUserID = id
	return id, nil
}

func (h *HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	v1 := router.Group("/v1")
	{
		auth := v1.Group("/auth")
		auth.POST("/register", h.RegisterUser)
		auth.POST("/login", h.Login)
		auth.GET("/logout", h.Logout)

		session := middleware.Session(h.cfg, h.denyList, h.demoUserID)
		notDemo := middleware.DenyDemo()

		jobs := v1.Group("/jobs")
		jobs.Use(session)
		jobs.GET("", h.ListJobs)
		jobs.POST("", notDemo, h.CreateJob)
		jobs.GET("/stats", h.JobStats)
		jobs.GET("/:id", h.GetJob)
		jobs.PATCH("/:id", notDemo, h.UpdateJob)
		jobs.DELETE("/:id", notDemo, h.DeleteJob)

		users := v1.Group("/users")
		users.Use(session)
		users.GET("/current-user", h.CurrentUser)
		users.PATCH("/update-user", notDemo, h.UpdateUser)
		users.GET("/admin/app-stats", middleware.RequireRoles(models.UserRoleAdmin), h.AppStats)
	}
}
