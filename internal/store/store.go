// Package store holds the course, player and weather records the engine reads.
package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/stitts-dev/caddie/internal/models"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrCourseNotFound  = wrapNotFound("course")
	ErrHoleNotFound    = wrapNotFound("hole")
	ErrPlayerNotFound  = wrapNotFound("player baseline")
	ErrWeatherNotFound = wrapNotFound("weather snapshot")
)

type notFoundError struct{ kind string }

func (e *notFoundError) Error() string { return e.kind + " not found" }

func (e *notFoundError) Unwrap() error { return ErrNotFound }

func wrapNotFound(kind string) error { return &notFoundError{kind: kind} }

// Store is the read/write surface for reference data. Implementations must
// return copies so callers can never mutate stored state.
type Store interface {
	SaveCourse(ctx context.Context, course *models.Course) error
	GetCourse(ctx context.Context, id string) (*models.Course, error)
	ListCourses(ctx context.Context) ([]models.Course, error)
	SearchCourses(ctx context.Context, query string) ([]models.Course, error)
	GetHole(ctx context.Context, id string) (*models.Hole, error)

	GetPlayerBaseline(ctx context.Context, playerID string) (*models.PlayerBaseline, error)
	// ReplacePlayerBaseline swaps the whole bag. There is no partial update.
	ReplacePlayerBaseline(ctx context.Context, baseline *models.PlayerBaseline) error

	SaveWeather(ctx context.Context, snapshot *models.WeatherSnapshot, raw json.RawMessage) error
	GetWeather(ctx context.Context, id string) (*models.WeatherSnapshot, error)
	LatestWeather(ctx context.Context, courseID string) (*models.WeatherSnapshot, error)
}
