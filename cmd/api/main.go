package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-backend/config"
	_ "go-jobboard-backend/docs" // Important for Swagger
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/redis"
)

// @title           Job Board Backend API
// @version         1.0
// @description     Backend for a job board platform using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job board backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional, rate limiting degrades to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to memory", "error", err)
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	roleRepo := postgres.NewRoleRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)
	categoryRepo := postgres.NewCategoryRepository(dbPool)
	seekerRepo := postgres.NewSeekerRepository(dbPool)
	experienceRepo := postgres.NewExperienceRepository(dbPool)
	educationRepo := postgres.NewEducationRepository(dbPool)
	employerRepo := postgres.NewEmployerRepository(dbPool)
	jobPostRepo := postgres.NewJobPostRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	interviewRepo := postgres.NewInterviewRepository(dbPool)
	dashboardRepo := postgres.NewDashboardRepository(dbPool)

	// 6. Setup UseCases
	authUC := usecase.NewAuthUsecase(userRepo, seekerRepo, employerRepo, cfg.JWTSecret, cfg.TokenTTL)
	userUC := usecase.NewUserUsecase(userRepo, roleRepo)
	roleUC := usecase.NewRoleUsecase(roleRepo)
	skillUC := usecase.NewSkillUsecase(skillRepo)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo)
	seekerUC := usecase.NewSeekerUsecase(seekerRepo, skillRepo, jobPostRepo, categoryRepo, employerRepo)
	experienceUC := usecase.NewExperienceUsecase(experienceRepo, seekerRepo)
	educationUC := usecase.NewEducationUsecase(educationRepo, seekerRepo)
	employerUC := usecase.NewEmployerUsecase(employerRepo, jobPostRepo, interviewRepo)
	jobPostUC := usecase.NewJobPostUsecase(jobPostRepo, employerRepo, categoryRepo, skillRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobPostRepo, seekerRepo)
	interviewUC := usecase.NewInterviewUsecase(interviewRepo, applicationRepo)
	dashboardUC := usecase.NewDashboardUsecase(dashboardRepo)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		UserUC:        userUC,
		RoleUC:        roleUC,
		SkillUC:       skillUC,
		CategoryUC:    categoryUC,
		SeekerUC:      seekerUC,
		ExperienceUC:  experienceUC,
		EducationUC:   educationUC,
		EmployerUC:    employerUC,
		JobPostUC:     jobPostUC,
		ApplicationUC: applicationUC,
		InterviewUC:   interviewUC,
		DashboardUC:   dashboardUC,
		Config:        cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
