package server

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/campusarena/backend/config"
	"github.com/campusarena/backend/internal/api"
	"github.com/campusarena/backend/internal/middleware"
	"github.com/campusarena/backend/internal/router"
	"github.com/campusarena/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	engine *gin.Engine
	http   *http.Server
}

// New wires services and handlers and returns a server ready to start.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, elevated service.StudentLister) *Server {
	revocations := service.NewRedisRevocationStore(redisClient)
	emailService := service.NewEmailService(cfg)

	authService := service.NewAuthService(db, cfg.JWTSecret, revocations, emailService, cfg.RequireEmailConfirmation)
	studentService := service.NewStudentService(db)
	directory := service.NewAdminDirectory(elevated, db)

	authHandler := api.NewAuthHandler(authService)
	profileHandler := api.NewProfileHandler(studentService)
	directoryHandler := api.NewDirectoryHandler(directory)
	adminHandler := api.NewAdminHandler(elevated, cfg.AdminPassword)

	throttle := middleware.NewAdminSecretRateLimiter(redisClient).PerClientMiddleware()

	engine := router.SetupRouter(
		authHandler,
		profileHandler,
		directoryHandler,
		adminHandler,
		authService,
		throttle,
		cfg.CORSAllowOrigins,
		db,
	)

	return &Server{
		engine: engine,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: engine,
		},
	}
}

// Start starts the server and blocks until it stops
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
