package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rohanv/vibes/internal/api/handler"
	"github.com/rohanv/vibes/internal/api/middleware"
	"github.com/rohanv/vibes/internal/config"
	"github.com/rohanv/vibes/internal/logger"
	"github.com/rohanv/vibes/internal/service"
)

// SetupRouter configures the Gin router with all routes
func SetupRouter(
	recommendService *service.RecommendService,
	preferenceService *service.PreferenceService,
	browseService *service.BrowseService,
	statsService *service.StatsService,
	cfg *config.Config,
	log *logger.Logger,
) *gin.Engine {
	// Set Gin mode
	switch cfg.Server.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	// Add middleware
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware(log))
	r.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins:  cfg.Server.CORS.AllowedOrigins,
		AllowAllOrigins: cfg.Server.CORS.AllowAllOrigins,
	}))

	// Create handlers
	healthHandler := handler.NewHealthHandler()
	recommendHandler := handler.NewRecommendHandler(recommendService, preferenceService, statsService)
	preferenceHandler := handler.NewPreferenceHandler(preferenceService)
	browseHandler := handler.NewBrowseHandler(browseService)

	// Health check
	r.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		// Domains
		v1.GET("/domains", recommendHandler.ListDomains)

		// Preferences
		v1.PUT("/preferences", preferenceHandler.SavePreferences)

		// Stats
		v1.GET("/stats", recommendHandler.GetStats)

		// Per-domain pipeline
		dom := v1.Group("/:domain")
		{
			dom.GET("/options", recommendHandler.GetOptions)
			dom.GET("/selection", recommendHandler.GetSelection)
			dom.POST("/recommendations", recommendHandler.GetRecommendations)
			dom.GET("/recommendations", browseHandler.ListRecommendations)
			dom.GET("/recommendations/:id", browseHandler.GetRecommendation)
			dom.GET("/links", recommendHandler.ResolveLink)
		}
	}

	return r
}
