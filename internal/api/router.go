package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/academia-online/courses-api/docs"
	"github.com/academia-online/courses-api/internal/api/handler"
	"github.com/academia-online/courses-api/internal/api/middleware"
	"github.com/academia-online/courses-api/internal/core/domain"
	"github.com/academia-online/courses-api/internal/core/service"
	"github.com/academia-online/courses-api/internal/infrastructure/config"
	mongodb "github.com/academia-online/courses-api/internal/infrastructure/db/mongo"
	"github.com/academia-online/courses-api/internal/infrastructure/db/postgres"
	redisdb "github.com/academia-online/courses-api/internal/infrastructure/db/redis"
	"github.com/academia-online/courses-api/internal/infrastructure/http/handlers"
	"github.com/academia-online/courses-api/internal/infrastructure/queue"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, rdb *redis.Client, mdb *mongo.Database, dispatcher *queue.Dispatcher, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("courses"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	courseRepo := postgres.NewCourseRepository(db)
	enrollmentRepo := postgres.NewEnrollmentRepository(db)
	auditRepo := mongodb.NewAuditRepository(mdb)
	catalogCache := redisdb.NewCatalogCache(rdb, cfg.Redis.CatalogTTL)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	courseService := service.NewCourseService(courseRepo, enrollmentRepo, catalogCache, log)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, courseRepo, userRepo, dispatcher, auditRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userRepo)
	courseHandler := handler.NewCourseHandler(courseService)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentService)

	authRequired := middleware.Auth(cfg.JWTSecret)
	authOptional := middleware.OptionalAuth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Root banner ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message":     "API de academia online",
			"time":        time.Now().UTC().Format(time.RFC3339),
			"environment": cfg.Env,
		})
	})

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb, mdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	apiGroup := e.Group("/api")

	// --- Auth routes ---
	auth := apiGroup.Group("/auth")
	auth.POST("/register", authHandler.Register, authOptional)
	auth.POST("/login", authHandler.Login)

	// --- User routes ---
	user := apiGroup.Group("/user", authRequired)
	user.GET("/perfil", userHandler.Profile)

	// --- Course routes ---
	cursos := apiGroup.Group("/cursos")
	cursos.GET("/publicos", courseHandler.ListPublic)
	cursos.GET("/mis-cursos", courseHandler.ListMine, authRequired)
	cursos.GET("", courseHandler.List, authRequired, adminOnly)
	cursos.GET("/:id", courseHandler.Get, authRequired)
	cursos.POST("", courseHandler.Create, authRequired, adminOnly)
	cursos.PUT("/:id", courseHandler.Update, authRequired, adminOnly)
	cursos.DELETE("/:id", courseHandler.Delete, authRequired, adminOnly)

	// --- Enrollment routes ---
	inscripciones := apiGroup.Group("/inscripciones", authRequired)
	inscripciones.POST("", enrollmentHandler.Enroll, adminOnly)
	inscripciones.GET("", enrollmentHandler.List, adminOnly)
	inscripciones.GET("/mis-inscripciones", enrollmentHandler.ListMine)
	inscripciones.GET("/alumno/:id", enrollmentHandler.ListByStudent, adminOnly)
	inscripciones.PUT("/:id/progreso", enrollmentHandler.UpdateProgress)
	inscripciones.PUT("/:id/cancelar", enrollmentHandler.Cancel)
	inscripciones.GET("/:id/historial", enrollmentHandler.History)

	return e
}
