package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/campusarena/backend/internal/api"
	"github.com/campusarena/backend/internal/database"
	"github.com/campusarena/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	authHandler *api.AuthHandler,
	profileHandler *api.ProfileHandler,
	directoryHandler *api.DirectoryHandler,
	adminHandler *api.AdminHandler,
	validator middleware.TokenValidator,
	adminThrottle gin.HandlerFunc,
	allowOrigins []string,
	db *gorm.DB,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(allowOrigins))

	router.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(c.Request.Context(), db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Auth routes (no session required)
	authHandler.RegisterRoutes(v1)

	// Admin endpoints: shared-secret gated, stateless, no session
	adminHandler.RegisterRoutes(v1, adminThrottle)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(validator))
	{
		protected.POST("/auth/logout", authHandler.Logout)

		profile := protected.Group("/profile")
		{
			profile.GET("", profileHandler.GetProfile)
			profile.PUT("", profileHandler.UpdateProfile)
		}

		protected.GET("/students", directoryHandler.ListStudents)
	}

	return router
}
