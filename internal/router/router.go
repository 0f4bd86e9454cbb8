package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/viharinalla/student-dashboard/internal/config"
	"github.com/viharinalla/student-dashboard/internal/handler"
	"github.com/viharinalla/student-dashboard/internal/logger"
	"github.com/viharinalla/student-dashboard/internal/middleware"
	"github.com/viharinalla/student-dashboard/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Health    *handler.HealthHandler
	Auth      *handler.AuthHandler
	Course    *handler.CourseHandler
	Dashboard *handler.DashboardHandler
	Community *handler.CommunityHandler
}

// SetupRouter configures the /api routes and the global middleware chain.
func SetupRouter(handlers *Handlers, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()

	// Request ID first so every log line and error body can be correlated.
	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(logger.Component(log, "http")))

	// Recovery sits inside Brotli so the 500 body goes through the same writer.
	router.Use(middleware.Brotli())
	router.Use(middleware.Recovery(logger.Component(log, "recovery")))

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", response.HeaderRequestID}
	corsConfig.ExposeHeaders = []string{response.HeaderRequestID}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	api := router.Group("/api")
	{
		getOrHead(api, "/health", handlers.Health.Health)
		api.POST("/auth/login", handlers.Auth.Login)
	}

	// ─── Catalog reads (cacheable) ─────────────────────────────────────
	catalogAPI := api.Group("")
	catalogAPI.Use(middleware.CacheControl(cfg.CacheMaxAge))
	{
		getOrHead(catalogAPI, "/courses/recent", handlers.Course.RecentCourses)
		getOrHead(catalogAPI, "/courses/:id", handlers.Course.GetCourse)
		getOrHead(catalogAPI, "/stats", handlers.Dashboard.Stats)
		getOrHead(catalogAPI, "/assignments/upcoming", handlers.Dashboard.UpcomingAssignments)
		getOrHead(catalogAPI, "/attendance", handlers.Dashboard.Attendance)
		getOrHead(catalogAPI, "/groups", handlers.Community.Groups)
		getOrHead(catalogAPI, "/resources", handlers.Community.Resources)
	}

	router.NoRoute(handler.NotFound)

	return router
}

// getOrHead registers a read route for both GET and HEAD.
func getOrHead(group *gin.RouterGroup, path string, handlers ...gin.HandlerFunc) {
	group.GET(path, handlers...)
	group.HEAD(path, handlers...)
}
