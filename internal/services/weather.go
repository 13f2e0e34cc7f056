package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/caddie/internal/models"
	"github.com/stitts-dev/caddie/internal/store"
)

// WeatherService resolves weather snapshots for courses. Fresh readings come
// from the provider, are persisted with their raw payload and cached per course.
type WeatherService struct {
	store    store.Store
	provider WeatherProvider
	cache    *CacheService
	ttl      time.Duration
	logger   *logrus.Logger
}

// NewWeatherService creates a weather service. provider may be nil when no
// upstream is configured, in which case only stored snapshots are served.
func NewWeatherService(st store.Store, provider WeatherProvider, cache *CacheService, ttl time.Duration, logger *logrus.Logger) *WeatherService {
	return &WeatherService{
		store:    st,
		provider: provider,
		cache:    cache,
		ttl:      ttl,
		logger:   logger,
	}
}

// Get returns a stored snapshot by id
func (ws *WeatherService) Get(ctx context.Context, id string) (*models.WeatherSnapshot, error) {
	return ws.store.GetWeather(ctx, id)
}

// Latest returns the most recent stored snapshot for a course
func (ws *WeatherService) Latest(ctx context.Context, courseID string) (*models.WeatherSnapshot, error) {
	return ws.store.LatestWeather(ctx, courseID)
}

// Current returns a cached reading for the course or fetches a new one
func (ws *WeatherService) Current(ctx context.Context, courseID string) (*models.WeatherSnapshot, error) {
	var cached models.WeatherSnapshot
	err := ws.cache.Get(ctx, WeatherCacheKey(courseID), &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		ws.logger.WithError(err).WithField("course_id", courseID).Warn("Weather cache read failed")
	}
	return ws.Refresh(ctx, courseID)
}

// Refresh fetches, stores and caches a new reading for the course
func (ws *WeatherService) Refresh(ctx context.Context, courseID string) (*models.WeatherSnapshot, error) {
	if ws.provider == nil {
		return nil, fmt.Errorf("%w: no provider configured", ErrWeatherUnavailable)
	}

	course, err := ws.store.GetCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !course.HasLocation() {
		return nil, fmt.Errorf("%w: course %s has no coordinates", ErrWeatherUnavailable, courseID)
	}

	obs, err := ws.provider.Current(ctx, course.Latitude, course.Longitude)
	if err != nil {
		return nil, err
	}

	snap := obs.Snapshot
	snap.ID = uuid.New().String()
	snap.CourseID = course.ID

	if err := ws.store.SaveWeather(ctx, &snap, obs.Raw); err != nil {
		return nil, fmt.Errorf("failed to save weather snapshot: %w", err)
	}

	if err := ws.cache.Set(ctx, WeatherCacheKey(course.ID), snap, ws.ttl); err != nil {
		ws.logger.WithError(err).WithField("course_id", course.ID).Warn("Weather cache write failed")
	}

	ws.logger.WithFields(logrus.Fields{
		"course_id":  course.ID,
		"weather_id": snap.ID,
		"wind":       string(snap.WindDirection),
		"wind_mph":   snap.WindSpeedMPH,
	}).Info("Weather refreshed")

	return &snap, nil
}
