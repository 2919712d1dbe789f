package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/trainhub/trainhub-backend/internal/config"
	"github.com/trainhub/trainhub-backend/internal/database"
	"github.com/trainhub/trainhub-backend/internal/handler"
	"github.com/trainhub/trainhub-backend/internal/logger"
	"github.com/trainhub/trainhub-backend/internal/notification"
	"github.com/trainhub/trainhub-backend/internal/repository"
	"github.com/trainhub/trainhub-backend/internal/router"
	"github.com/trainhub/trainhub-backend/internal/service"
	"github.com/trainhub/trainhub-backend/internal/validator"
	"github.com/trainhub/trainhub-backend/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting TrainHub Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	adminRepo := repository.NewAdminRepository(pool)
	otpRepo := repository.NewOtpRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	batchRepo := repository.NewBatchRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	teacherRepo := repository.NewTeacherRepository(pool)
	topicRepo := repository.NewTopicRepository(pool)
	dashboardRepo := repository.NewDashboardRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	mailer := notification.NewMailer(cfg, log)
	authService := service.NewAuthService(cfg)
	otpService := service.NewOtpService(otpRepo, adminRepo, rdb, mailer, cfg, log)
	adminService := service.NewAdminService(adminRepo, authService, otpService, log)
	courseService := service.NewCourseService(courseRepo, log)
	batchService := service.NewBatchService(batchRepo, log)
	studentService := service.NewStudentService(studentRepo, log)
	teacherService := service.NewTeacherService(teacherRepo, log)
	topicService := service.NewTopicService(topicRepo)
	dashboardService := service.NewDashboardService(dashboardRepo)
	mediaService := service.NewMediaService(cfg)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:      handler.NewAuthHandler(adminService, otpService),
		Admin:     handler.NewAdminHandler(adminService),
		Course:    handler.NewCourseHandler(courseService),
		Batch:     handler.NewBatchHandler(batchService),
		Student:   handler.NewStudentHandler(studentService),
		Teacher:   handler.NewTeacherHandler(teacherService),
		Topic:     handler.NewTopicHandler(topicService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Media:     handler.NewMediaHandler(mediaService),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	retentionWorker := worker.NewOtpRetentionWorker(otpRepo, log)
	go retentionWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, adminService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop background workers.
	workerCancel()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
