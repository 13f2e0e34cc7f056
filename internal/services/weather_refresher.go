package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/caddie/internal/metrics"
	"github.com/stitts-dev/caddie/internal/store"
)

// WeatherRefresher keeps current weather warm for every course with coordinates
type WeatherRefresher struct {
	store     store.Store
	weather   *WeatherService
	logger    *logrus.Logger
	cron      *cron.Cron
	schedule  string
	timeout   time.Duration
	mu        sync.Mutex
	isRunning bool
}

// RefreshResult summarizes one refresh run
type RefreshResult struct {
	Refreshed int
	Skipped   int
	Failed    int
}

func NewWeatherRefresher(st store.Store, weather *WeatherService, logger *logrus.Logger, schedule string, timeout time.Duration) *WeatherRefresher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &WeatherRefresher{
		store:    st,
		weather:  weather,
		logger:   logger,
		cron:     cron.New(),
		schedule: schedule,
		timeout:  timeout,
	}
}

// Start begins the scheduled refresh
func (r *WeatherRefresher) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.isRunning {
		return fmt.Errorf("weather refresher is already running")
	}

	_, err := r.cron.AddFunc(r.schedule, r.run)
	if err != nil {
		return fmt.Errorf("failed to schedule weather refresh: %w", err)
	}

	r.cron.Start()
	r.isRunning = true

	r.logger.WithField("schedule", r.schedule).Info("Weather refresher started")
	return nil
}

// Stop halts the scheduled refresh and waits for a running job
func (r *WeatherRefresher) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isRunning {
		return
	}

	ctx := r.cron.Stop()
	<-ctx.Done()

	r.isRunning = false
	r.logger.Info("Weather refresher stopped")
}

// IsRunning reports whether the schedule is active
func (r *WeatherRefresher) IsRunning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.isRunning
}

func (r *WeatherRefresher) run() {
	defer func() {
		if rec := recover(); rec != nil {
			metrics.WeatherRefreshRuns.WithLabelValues("panic").Inc()
			r.logger.WithField("panic", rec).Error("Weather refresh panicked")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	res, err := r.RefreshAll(ctx)
	if err != nil {
		metrics.WeatherRefreshRuns.WithLabelValues("error").Inc()
		r.logger.WithError(err).Error("Weather refresh failed")
		return
	}
	metrics.WeatherRefreshRuns.WithLabelValues("ok").Inc()
	r.logger.WithFields(logrus.Fields{
		"refreshed": res.Refreshed,
		"skipped":   res.Skipped,
		"failed":    res.Failed,
	}).Info("Completed scheduled weather refresh")
}

// RefreshAll refreshes every course that has coordinates
func (r *WeatherRefresher) RefreshAll(ctx context.Context) (RefreshResult, error) {
	var res RefreshResult

	courses, err := r.store.ListCourses(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to list courses: %w", err)
	}

	for _, c := range courses {
		if !c.HasLocation() {
			res.Skipped++
			continue
		}
		if _, err := r.weather.Refresh(ctx, c.ID); err != nil {
			res.Failed++
			r.logger.WithError(err).WithField("course_id", c.ID).Warn("Failed to refresh course weather")
			continue
		}
		res.Refreshed++
	}

	return res, nil
}
