package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/caddie/internal/fixtures"
	"github.com/stitts-dev/caddie/internal/metrics"
	"github.com/stitts-dev/caddie/internal/models"
	"github.com/stitts-dev/caddie/internal/recommendation"
	"github.com/stitts-dev/caddie/internal/store"
	"github.com/stitts-dev/caddie/internal/validation"
)

// RecommendationRequest identifies the records a recommendation is built from.
// When WeatherID is empty the service uses a fresh reading if UseCurrentWeather
// is set and the latest stored snapshot for the hole's course otherwise.
type RecommendationRequest struct {
	PlayerID          string
	HoleID            string
	WeatherID         string
	UseCurrentWeather bool
	Shot              models.ShotContext
}

// RecommendationEnvelope wraps an engine result with request metadata
type RecommendationEnvelope struct {
	RecommendationID string                       `json:"recommendation_id"`
	GeneratedAt      time.Time                    `json:"generated_at"`
	PlayerID         string                       `json:"player_id"`
	HoleID           string                       `json:"hole_id"`
	WeatherID        string                       `json:"weather_id"`
	Recommendation   *models.CaddieRecommendation `json:"recommendation"`
}

// CaddieService resolves records from the store and runs the engine
type CaddieService struct {
	store   store.Store
	weather *WeatherService
	cache   *CacheService
	engine  *recommendation.Engine
	logger  *logrus.Logger
	now     func() time.Time
}

func NewCaddieService(st store.Store, weather *WeatherService, cache *CacheService, engine *recommendation.Engine, logger *logrus.Logger) *CaddieService {
	return &CaddieService{
		store:   st,
		weather: weather,
		cache:   cache,
		engine:  engine,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Recommend resolves the request's records and returns the engine's advice
func (s *CaddieService) Recommend(ctx context.Context, req RecommendationRequest) (*RecommendationEnvelope, error) {
	if err := validation.Shot(&req.Shot); err != nil {
		return nil, err
	}

	baseline, err := s.Baseline(ctx, req.PlayerID)
	if err != nil {
		return nil, err
	}
	if err := validation.Baseline(baseline); err != nil {
		return nil, err
	}

	hole, err := s.hole(ctx, req.HoleID)
	if err != nil {
		return nil, err
	}

	weather, err := s.resolveWeather(ctx, req, hole.CourseID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	rec, err := s.engine.Recommend(recommendation.Input{
		Baseline: *baseline,
		Hole:     *hole,
		Weather:  *weather,
		Shot:     req.Shot,
	})
	if err != nil {
		return nil, err
	}
	metrics.RecordRecommendation(string(rec.Strategy), string(rec.Primary.Club),
		rec.Confidence.OverallConfidence, rec.Fallback, time.Since(start))

	env := &RecommendationEnvelope{
		RecommendationID: uuid.New().String(),
		GeneratedAt:      s.now(),
		PlayerID:         baseline.PlayerID,
		HoleID:           hole.ID,
		WeatherID:        weather.ID,
		Recommendation:   rec,
	}

	s.logger.WithFields(logrus.Fields{
		"recommendation_id": env.RecommendationID,
		"player_id":         env.PlayerID,
		"hole_id":           env.HoleID,
		"club":              rec.Primary.Club,
		"confidence":        rec.Primary.ConfidencePercent,
		"fallback":          rec.Fallback,
	}).Info("Recommendation generated")

	return env, nil
}

func (s *CaddieService) resolveWeather(ctx context.Context, req RecommendationRequest, courseID string) (*models.WeatherSnapshot, error) {
	switch {
	case req.WeatherID != "":
		return s.weather.Get(ctx, req.WeatherID)
	case req.UseCurrentWeather:
		return s.weather.Current(ctx, courseID)
	default:
		return s.weather.Latest(ctx, courseID)
	}
}

func (s *CaddieService) hole(ctx context.Context, id string) (*models.Hole, error) {
	var cached models.Hole
	if err := s.cache.Get(ctx, HoleCacheKey(id), &cached); err == nil {
		return &cached, nil
	}

	hole, err := s.store.GetHole(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, HoleCacheKey(id), hole, time.Hour); err != nil {
		s.logger.WithError(err).Debug("Hole cache write failed")
	}
	return hole, nil
}

// Baseline returns a player's stored bag
func (s *CaddieService) Baseline(ctx context.Context, playerID string) (*models.PlayerBaseline, error) {
	var cached models.PlayerBaseline
	if err := s.cache.Get(ctx, BaselineCacheKey(playerID), &cached); err == nil {
		return &cached, nil
	}

	b, err := s.store.GetPlayerBaseline(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, BaselineCacheKey(playerID), b, time.Hour); err != nil {
		s.logger.WithError(err).Debug("Baseline cache write failed")
	}
	return b, nil
}

// ReplaceBaseline validates and stores a full bag, replacing the old one
func (s *CaddieService) ReplaceBaseline(ctx context.Context, baseline *models.PlayerBaseline) error {
	if err := validation.Baseline(baseline); err != nil {
		return err
	}
	if err := s.store.ReplacePlayerBaseline(ctx, baseline); err != nil {
		return fmt.Errorf("failed to replace baseline: %w", err)
	}
	if err := s.cache.Delete(ctx, BaselineCacheKey(baseline.PlayerID)); err != nil {
		s.logger.WithError(err).Warn("Baseline cache invalidation failed")
	}
	return nil
}

// CreateDefaultBaseline gives a player the generic bag. An existing bag is
// left alone unless overwrite is set.
func (s *CaddieService) CreateDefaultBaseline(ctx context.Context, playerID, playerName string, overwrite bool) (*models.PlayerBaseline, error) {
	if !overwrite {
		existing, err := s.store.GetPlayerBaseline(ctx, playerID)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
	}

	b := fixtures.DefaultBaseline(playerID, playerName)
	if err := s.ReplaceBaseline(ctx, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// SaveCourse validates every hole and stores the course
func (s *CaddieService) SaveCourse(ctx context.Context, course *models.Course) (store.QualityReport, error) {
	for i := range course.Holes {
		h := &course.Holes[i]
		h.CourseID = course.ID
		if h.ID == "" {
			h.ID = models.HoleKey(course.ID, h.Number)
		}
		if err := validation.Hole(h); err != nil {
			return store.QualityReport{}, err
		}
	}

	if err := s.store.SaveCourse(ctx, course); err != nil {
		return store.QualityReport{}, fmt.Errorf("failed to save course: %w", err)
	}

	keys := []string{CourseCacheKey(course.ID)}
	for _, h := range course.Holes {
		keys = append(keys, HoleCacheKey(h.ID))
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.logger.WithError(err).Warn("Course cache invalidation failed")
	}

	report := store.CheckCourse(*course)
	if !report.Clean() {
		s.logger.WithFields(logrus.Fields{
			"course_id": course.ID,
			"issues":    len(report.Issues),
		}).Warn("Course saved with data quality issues")
	}
	return report, nil
}
