package router

import (
	"log"

	"github.com/anik404/go-blog/backend/internal/auth"
	"github.com/anik404/go-blog/backend/internal/handlers"
	"github.com/anik404/go-blog/backend/internal/middleware"
	"github.com/anik404/go-blog/backend/internal/repositories"
	"github.com/anik404/go-blog/backend/internal/services"
	"github.com/anik404/go-blog/backend/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *mongo.Database, cfg *config.Config) {
	tokenService := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewMongoUserRepository(db)
	postRepo := repositories.NewMongoPostRepository(db)
	commentRepo := repositories.NewMongoCommentRepository(db)

	// --- Initialize Services ---
	userService := services.NewUserService(userRepo, tokenService)
	postService := services.NewPostService(postRepo, userRepo)
	commentService := services.NewCommentService(commentRepo, postRepo, userRepo)
	reconcileService := services.NewReconcileService(userRepo, postRepo, commentRepo)

	// --- Unprotected routes: registration, login, user lookup ---
	public := e.Group("")
	userHandler := handlers.NewUserHandler(userService)
	userHandler.RegisterUserRoutes(public)
	log.Println("User routes configured.")

	// --- Protected routes (require bearer token) ---
	protected := e.Group("", middleware.Authenticate(tokenService))

	postHandler := handlers.NewPostHandler(postService)
	postHandler.RegisterPostRoutes(protected)
	log.Println("Post routes configured.")

	commentHandler := handlers.NewCommentHandler(commentService)
	commentHandler.RegisterCommentRoutes(protected)
	log.Println("Comment routes configured.")

	// --- Admin-only maintenance routes ---
	admin := e.Group("/admin", middleware.RequireRoles(tokenService, "admin"))
	adminHandler := handlers.NewAdminHandler(reconcileService)
	adminHandler.RegisterAdminRoutes(admin)
	log.Println("Admin routes configured.")

	log.Println("All routes configured.")
}
