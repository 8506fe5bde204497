package v1

import (
	"net/http"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	UserUC        domain.UserUsecase
	RoleUC        domain.RoleUsecase
	SkillUC       domain.SkillUsecase
	CategoryUC    domain.CategoryUsecase
	SeekerUC      domain.SeekerUsecase
	ExperienceUC  domain.ExperienceUsecase
	EducationUC   domain.EducationUsecase
	EmployerUC    domain.EmployerUsecase
	JobPostUC     domain.JobPostUsecase
	ApplicationUC domain.ApplicationUsecase
	InterviewUC   domain.InterviewUsecase
	DashboardUC   domain.DashboardUsecase
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middlewares. CORS must run first so error responses carry the
	// headers too.
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	loginLimiter := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(
		deps.Config.RateLimitLoginThreshold,
		deps.Config.RateLimitWindowSeconds,
	))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config, deps.AuthUC))

	// Admin-only routes
	admin := protected.Group("")
	admin.Use(middleware.RequireRole(domain.RoleAdmin))

	{
		NewAuthHandler(v1, protected, deps.AuthUC, deps.Config, loginLimiter)
		NewUserHandler(admin, deps.UserUC)
		NewRoleHandler(admin, deps.RoleUC)
		NewSkillHandler(protected, admin, deps.SkillUC)
		NewCategoryHandler(protected, admin, deps.CategoryUC)
		NewSeekerHandler(protected, deps.SeekerUC)
		NewHistoryHandler(protected, deps.ExperienceUC, deps.EducationUC)
		NewEmployerHandler(protected, deps.EmployerUC, deps.JobPostUC)
		NewJobPostHandler(v1, protected, deps.JobPostUC)
		NewApplicationHandler(protected, deps.ApplicationUC, deps.SeekerUC)
		NewInterviewHandler(protected, deps.InterviewUC)
		NewDashboardHandler(admin.Group("/admin"), deps.DashboardUC)
	}

	return r
}
