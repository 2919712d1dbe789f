package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/trainhub/trainhub-backend/internal/config"
	"github.com/trainhub/trainhub-backend/internal/handler"
	"github.com/trainhub/trainhub-backend/internal/middleware"
	"github.com/trainhub/trainhub-backend/internal/response"
	"github.com/trainhub/trainhub-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth      *handler.AuthHandler
	Admin     *handler.AdminHandler
	Course    *handler.CourseHandler
	Batch     *handler.BatchHandler
	Student   *handler.StudentHandler
	Teacher   *handler.TeacherHandler
	Topic     *handler.TopicHandler
	Dashboard *handler.DashboardHandler
	Media     *handler.MediaHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	adminService *service.AdminService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Serve uploaded media files statically with aggressive caching (1 year).
	uploadsGroup := router.Group("/uploads")
	uploadsGroup.Use(middleware.CacheControl(31536000))
	{
		uploadsGroup.Static("/", cfg.UploadDir)
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)
		auth.POST("/send-otp", handlers.Auth.SendOTP)
		auth.POST("/validate-otp", handlers.Auth.ValidateOTP)
		auth.PATCH("/reset", handlers.Auth.ResetPasswordWithOTP)
		auth.PATCH("/reset-password", handlers.Auth.ResetPasswordWithOld)

		// Authenticated profile route.
		auth.GET("/me", middleware.RequireAdmin(authService, adminService), handlers.Auth.Me)
	}

	// ─── 2. Admin Group (JWT) ──────────────────────────────────────────
	api := router.Group("/api/v1")
	api.Use(middleware.RequireAdmin(authService, adminService))
	{
		admins := api.Group("/admins")
		{
			admins.GET("", handlers.Admin.List)
			admins.GET("/:id", handlers.Admin.Get)
			admins.PATCH("/:id", handlers.Admin.Update)
			admins.DELETE("/:id", handlers.Admin.Delete)
		}

		courses := api.Group("/courses")
		{
			courses.GET("", handlers.Course.List)
			courses.GET("/:id", handlers.Course.Get)
			courses.POST("", handlers.Course.Create)
			courses.PUT("/:id", handlers.Course.Update)
			courses.DELETE("/:id", handlers.Course.Delete)
			courses.POST("/import", handlers.Course.Import)
		}

		batches := api.Group("/batches")
		{
			batches.GET("", handlers.Batch.List)
			batches.GET("/:id", handlers.Batch.Get)
			batches.POST("", handlers.Batch.Create)
			batches.PUT("/:id", handlers.Batch.Update)
			batches.DELETE("/:id", handlers.Batch.Delete)
			batches.POST("/import", handlers.Batch.Import)

			// Batch-scoped student import (CSV rows join the batch in :id).
			batches.POST("/:id/students/import", handlers.Student.Import)
		}

		students := api.Group("/students")
		{
			students.GET("", handlers.Student.List)
			students.GET("/:id", handlers.Student.Get)
			students.POST("", handlers.Student.Create)
			students.PUT("/:id", handlers.Student.Update)
			students.DELETE("/:id", handlers.Student.Delete)
		}

		teachers := api.Group("/teachers")
		{
			teachers.GET("", handlers.Teacher.List)
			teachers.GET("/:id", handlers.Teacher.Get)
			teachers.POST("", handlers.Teacher.Create)
			teachers.PUT("/:id", handlers.Teacher.Update)
			teachers.DELETE("/:id", handlers.Teacher.Delete)
			teachers.POST("/import", handlers.Teacher.Import)
		}

		topics := api.Group("/topics")
		{
			topics.GET("", handlers.Topic.List)
			topics.GET("/:id", handlers.Topic.Get)
			topics.POST("", handlers.Topic.Create)
			topics.PUT("/:id", handlers.Topic.Update)
			topics.DELETE("/:id", handlers.Topic.Delete)
		}

		api.GET("/dashboard", handlers.Dashboard.Summary)
		api.POST("/media/upload", handlers.Media.Upload)
	}

	return router
}
