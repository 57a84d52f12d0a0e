package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskboard/taskboard-api/internal/api/handler"
	"github.com/taskboard/taskboard-api/internal/api/middleware"
	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/ports"
	"github.com/taskboard/taskboard-api/internal/core/service"
	"github.com/taskboard/taskboard-api/internal/infrastructure/config"
	mongodb "github.com/taskboard/taskboard-api/internal/infrastructure/db/mongo"
	redisdb "github.com/taskboard/taskboard-api/internal/infrastructure/db/redis"
	healthhandlers "github.com/taskboard/taskboard-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, directory ports.Directory, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("taskboard"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	groupRepo := mongodb.NewGroupRepository(db)
	sessions := redisdb.NewSessionStore(rdb, cfg.RefreshTokenTTL)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, directory, tokenService, sessions, log)
	taskService := service.NewTaskService(taskRepo, groupRepo, log)
	groupService := service.NewGroupService(groupRepo, log)
	userService := service.NewUserService(userRepo, groupRepo, directory, log)

	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService)
	groupHandler := handler.NewGroupHandler(groupService)
	userHandler := handler.NewUserHandler(userService)

	authRequired := middleware.Auth(tokenService)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth ---
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)
	e.POST("/api/refresh", authHandler.Refresh)

	// --- Tasks ---
	e.POST("/api/record/tasks", taskHandler.Create)
	e.GET("/api/tasks", taskHandler.ListMine, authRequired)
	e.PUT("/api/edit/tasks/:id", taskHandler.Edit)
	e.PUT("/api/tasks/status/:id", taskHandler.UpdateStatus)
	e.DELETE("/api/delete/tasks/:id", taskHandler.Delete)
	e.POST("/api/record/user/task", taskHandler.Assign, authRequired)
	e.GET("/api/user/group/tasks", taskHandler.ListAssigned, authRequired)
	e.GET("/api/groups/:groupName/tasks", taskHandler.ListGroup, authRequired)

	// --- Groups ---
	e.POST("/api/create/groups", groupHandler.Create)
	e.GET("/api/groups", groupHandler.ListMine, authRequired)
	e.GET("/api/user/group", groupHandler.MyGroup, authRequired)
	e.PUT("/api/groups/add-users", groupHandler.AddMembers)
	e.GET("/api/admin/groups", groupHandler.List, authRequired, adminOnly)

	// --- Users ---
	e.GET("/api/users", userHandler.Available)
	e.GET("/api/users/admin", userHandler.List, authRequired, adminOnly)
	e.PUT("/api/users/:email/role", userHandler.ChangeRole, authRequired, adminOnly)
	e.DELETE("/api/delete/users/:email", userHandler.Delete, authRequired, adminOnly)
	e.POST("/api/add/users", userHandler.Add, authRequired, adminOnly)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
