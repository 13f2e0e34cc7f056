package services

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/caddie/internal/models"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeProvider struct {
	mu    sync.Mutex
	calls int
	err   error
	snap  models.WeatherSnapshot
}

func (f *fakeProvider) Current(_ context.Context, _, _ float64) (*Observation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &Observation{Snapshot: f.snap, Raw: []byte(`{"source":"fake"}`)}, nil
}

func (f *fakeProvider) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func calmSnapshot() models.WeatherSnapshot {
	return models.WeatherSnapshot{
		ObservedAt:    time.Date(2026, 5, 1, 14, 0, 0, 0, time.UTC),
		TemperatureF:  70,
		WindDirection: models.CompassCalm,
		Ground:        models.GroundDry,
	}
}

func testCourse() *models.Course {
	return &models.Course{
		ID:        "lakeside",
		Name:      "Lakeside Links",
		Latitude:  36.56,
		Longitude: -121.95,
		Holes: []models.Hole{
			{Number: 1, Par: 4, HandicapIndex: 7, DistanceToPinYards: 150, ShotBearingDegrees: 0},
			{
				Number: 2, Par: 3, HandicapIndex: 15, DistanceToPinYards: 165, ShotBearingDegrees: 90,
				Hazards: []models.Hazard{{Type: models.HazardWater, Location: models.DirectionLeft, DistanceFromTeeYards: 160}},
			},
		},
	}
}
