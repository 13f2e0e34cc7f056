package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/caddie/internal/api"
	"github.com/stitts-dev/caddie/internal/api/handlers"
	"github.com/stitts-dev/caddie/internal/api/middleware"
	"github.com/stitts-dev/caddie/internal/fixtures"
	"github.com/stitts-dev/caddie/internal/recommendation"
	"github.com/stitts-dev/caddie/internal/services"
	"github.com/stitts-dev/caddie/internal/store"
	"github.com/stitts-dev/caddie/pkg/config"
	"github.com/stitts-dev/caddie/pkg/database"
	"github.com/stitts-dev/caddie/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Setup logging
	log := logger.InitLogger(cfg.LogLevel, cfg.IsDevelopment())
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseDriver, cfg.DatabaseURL, cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	st := store.NewGormStore(db.DB)
	if err := st.Migrate(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Redis is optional; without it every lookup goes to the store
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	redisClient := connectRedis(ctx, cfg.RedisURL, log)
	if redisClient != nil {
		defer redisClient.Close()
	}
	cacheService := services.NewCacheService(redisClient)

	// Weather provider
	var provider services.WeatherProvider
	if cfg.OpenWeatherAPIKey != "" {
		breaker := services.NewCircuitBreakerService(cfg.CircuitBreakerThreshold, 30*time.Second, log)
		provider = services.NewOpenWeatherClient(
			cfg.OpenWeatherBaseURL,
			cfg.OpenWeatherAPIKey,
			cfg.ExternalAPITimeout,
			cfg.WeatherRequestsPerMinute,
			breaker,
			log,
		)
	} else {
		log.Warn("OPENWEATHER_API_KEY not set, live weather disabled")
	}
	weatherService := services.NewWeatherService(st, provider, cacheService, cfg.WeatherCacheTTL, log)

	engine := recommendation.NewEngine(recommendation.WithMeasuredClubThreshold(cfg.MeasuredClubThreshold))
	caddieService := services.NewCaddieService(st, weatherService, cacheService, engine, log)

	if cfg.SeedFixtures {
		seedCourses(ctx, caddieService, cfg.FixturesPath, log)
	}

	if cfg.EnableWeatherRefresh && provider != nil {
		refresher := services.NewWeatherRefresher(st, weatherService, log, cfg.WeatherRefreshSchedule, cfg.ExternalAPITimeout)
		if err := refresher.Start(); err != nil {
			log.Errorf("Failed to start weather refresher: %v", err)
		}
		defer refresher.Stop()
	}

	limiter := middleware.NewIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	limiter.StartCleanup(ctx, 5*time.Minute)

	router := api.NewRouter(cfg, api.Dependencies{
		Store:       st,
		Caddie:      caddieService,
		Weather:     weatherService,
		RateLimiter: limiter,
		Checks: map[string]handlers.Check{
			"database": func(context.Context) error { return db.Ping() },
			"cache":    cacheService.Ping,
		},
		Logger: log,
	})

	// Log all registered routes
	log.Info("=== REGISTERED ROUTES ===")
	for _, route := range router.Routes() {
		log.Infof("%s %s", route.Method, route.Path)
	}
	log.Info("=========================")

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}

func connectRedis(ctx context.Context, url string, log *logrus.Logger) *redis.Client {
	if url == "" {
		log.Warn("REDIS_URL not set, caching disabled")
		return nil
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Warnf("Invalid Redis URL, caching disabled: %v", err)
		return nil
	}
	client := redis.NewClient(opt)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warnf("Redis unreachable, caching disabled: %v", err)
		client.Close()
		return nil
	}
	return client
}

func seedCourses(ctx context.Context, caddie *services.CaddieService, dir string, log *logrus.Logger) {
	courses, err := fixtures.LoadCourses(dir)
	if err != nil {
		log.Errorf("Failed to load course fixtures: %v", err)
		return
	}
	for i := range courses {
		report, err := caddie.SaveCourse(ctx, &courses[i])
		if err != nil {
			log.WithError(err).WithField("course_id", courses[i].ID).Error("Failed to seed course")
			continue
		}
		entry := log.WithFields(logrus.Fields{
			"course_id": report.CourseID,
			"holes":     report.HoleCount,
		})
		if report.Clean() {
			entry.Info("Seeded course")
		} else {
			entry.WithField("issues", len(report.Issues)).Warn("Seeded course with data quality issues")
		}
	}
}
