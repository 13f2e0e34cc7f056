package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/caddie/internal/api/handlers"
	"github.com/stitts-dev/caddie/internal/api/middleware"
	"github.com/stitts-dev/caddie/internal/services"
	"github.com/stitts-dev/caddie/internal/store"
	"github.com/stitts-dev/caddie/pkg/config"
)

// Dependencies are the services the HTTP layer is built on
type Dependencies struct {
	Store       store.Store
	Caddie      *services.CaddieService
	Weather     *services.WeatherService
	RateLimiter *middleware.IPRateLimiter
	Checks      map[string]handlers.Check
	Logger      *logrus.Logger
}

// NewRouter builds the gin engine with middleware, probes and API routes
func NewRouter(cfg *config.Config, deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(cfg.CorsOrigins))

	healthHandler := handlers.NewHealthHandler(deps.Checks)
	router.GET("/health", healthHandler.GetHealth)
	router.GET("/ready", healthHandler.GetReady)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiV1 := router.Group("/api/v1")
	if deps.RateLimiter != nil {
		apiV1.Use(middleware.RateLimit(deps.RateLimiter))
	}
	SetupRoutes(apiV1, cfg, deps)

	return router
}

// SetupRoutes configures all API routes on the given router group
func SetupRoutes(group *gin.RouterGroup, cfg *config.Config, deps Dependencies) {
	recommendationHandler := handlers.NewRecommendationHandler(deps.Caddie, deps.Logger)
	courseHandler := handlers.NewCourseHandler(deps.Store, deps.Caddie, deps.Logger)
	playerHandler := handlers.NewPlayerHandler(deps.Caddie, deps.Logger)
	weatherHandler := handlers.NewWeatherHandler(deps.Weather, deps.Logger)

	// Recommendations
	group.POST("/recommendations", recommendationHandler.CreateRecommendation)

	// Courses
	group.GET("/courses", courseHandler.ListCourses)
	group.GET("/courses/search", courseHandler.SearchCourses)
	group.GET("/courses/:id", courseHandler.GetCourse)
	group.GET("/courses/:id/quality", courseHandler.GetCourseQuality)
	group.POST("/courses", courseHandler.CreateCourse)

	// Weather
	group.GET("/weather/:id", weatherHandler.GetWeather)
	group.GET("/courses/:id/weather", weatherHandler.GetLatestWeather)
	group.POST("/courses/:id/weather/refresh", weatherHandler.RefreshWeather)

	// Players
	group.GET("/players/:id/baseline", playerHandler.GetBaseline)
	authed := group.Group("/players/:id")
	authed.Use(middleware.AuthRequired(cfg.JWTSecret), middleware.RequirePlayer("id"))
	{
		authed.PUT("/baseline", playerHandler.ReplaceBaseline)
		authed.POST("/baseline/defaults", playerHandler.CreateDefaultBaseline)
	}
}
