package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/stitts-dev/caddie/internal/models"
)

// MemoryStore is an in-process Store used by the CLI and tests
type MemoryStore struct {
	mu      sync.RWMutex
	courses map[string]models.Course
	holes   map[string]string // hole id -> course id
	players map[string]models.PlayerBaseline
	weather map[string]models.WeatherSnapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		courses: make(map[string]models.Course),
		holes:   make(map[string]string),
		players: make(map[string]models.PlayerBaseline),
		weather: make(map[string]models.WeatherSnapshot),
	}
}

func cloneCourse(c models.Course) models.Course {
	out := c
	out.Aliases = append([]string(nil), c.Aliases...)
	out.Holes = make([]models.Hole, len(c.Holes))
	for i, h := range c.Holes {
		out.Holes[i] = cloneHole(h)
	}
	return out
}

func cloneHole(h models.Hole) models.Hole {
	out := h
	out.Hazards = append([]models.Hazard(nil), h.Hazards...)
	if h.ElevationChangeFeet != nil {
		v := *h.ElevationChangeFeet
		out.ElevationChangeFeet = &v
	}
	return out
}

func cloneBaseline(b models.PlayerBaseline) models.PlayerBaseline {
	out := b
	out.Clubs = append([]models.ClubDistance(nil), b.Clubs...)
	return out
}

func (s *MemoryStore) SaveCourse(_ context.Context, course *models.Course) error {
	c := cloneCourse(*course)
	for i := range c.Holes {
		if c.Holes[i].ID == "" {
			c.Holes[i].ID = models.HoleKey(c.ID, c.Holes[i].Number)
		}
		c.Holes[i].CourseID = c.ID
		c.Holes[i].CourseElevationFeet = c.ElevationFeet
	}
	sort.SliceStable(c.Holes, func(i, j int) bool { return c.Holes[i].Number < c.Holes[j].Number })

	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.courses[c.ID]; ok {
		for _, h := range old.Holes {
			delete(s.holes, h.ID)
		}
	}
	s.courses[c.ID] = c
	for _, h := range c.Holes {
		s.holes[h.ID] = c.ID
	}
	return nil
}

func (s *MemoryStore) GetCourse(_ context.Context, id string) (*models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.courses[id]
	if !ok {
		return nil, fmt.Errorf("course %s: %w", id, ErrCourseNotFound)
	}
	out := cloneCourse(c)
	return &out, nil
}

func (s *MemoryStore) ListCourses(ctx context.Context) ([]models.Course, error) {
	return s.SearchCourses(ctx, "")
}

func (s *MemoryStore) SearchCourses(_ context.Context, query string) ([]models.Course, error) {
	q := strings.ToLower(strings.TrimSpace(query))

	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Course
	for _, c := range s.courses {
		if q == "" || matches(c, q) {
			out = append(out, cloneCourse(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func matches(c models.Course, q string) bool {
	if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.ID), q) {
		return true
	}
	for _, a := range c.Aliases {
		if strings.Contains(strings.ToLower(a), q) {
			return true
		}
	}
	return false
}

func (s *MemoryStore) GetHole(_ context.Context, id string) (*models.Hole, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	courseID, ok := s.holes[id]
	if !ok {
		return nil, fmt.Errorf("hole %s: %w", id, ErrHoleNotFound)
	}
	for _, h := range s.courses[courseID].Holes {
		if h.ID == id {
			out := cloneHole(h)
			return &out, nil
		}
	}
	return nil, fmt.Errorf("hole %s: %w", id, ErrHoleNotFound)
}

func (s *MemoryStore) GetPlayerBaseline(_ context.Context, playerID string) (*models.PlayerBaseline, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.players[playerID]
	if !ok {
		return nil, fmt.Errorf("player %s: %w", playerID, ErrPlayerNotFound)
	}
	out := cloneBaseline(b)
	return &out, nil
}

func (s *MemoryStore) ReplacePlayerBaseline(_ context.Context, baseline *models.PlayerBaseline) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[baseline.PlayerID] = cloneBaseline(*baseline)
	return nil
}

func (s *MemoryStore) SaveWeather(_ context.Context, snapshot *models.WeatherSnapshot, _ json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weather[snapshot.ID] = *snapshot
	return nil
}

func (s *MemoryStore) GetWeather(_ context.Context, id string) (*models.WeatherSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.weather[id]
	if !ok {
		return nil, fmt.Errorf("weather %s: %w", id, ErrWeatherNotFound)
	}
	return &w, nil
}

func (s *MemoryStore) LatestWeather(_ context.Context, courseID string) (*models.WeatherSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var latest *models.WeatherSnapshot
	for _, w := range s.weather {
		if w.CourseID != courseID {
			continue
		}
		if latest == nil || w.ObservedAt.After(latest.ObservedAt) ||
			(w.ObservedAt.Equal(latest.ObservedAt) && w.ID > latest.ID) {
			w := w
			latest = &w
		}
	}
	if latest == nil {
		return nil, fmt.Errorf("latest weather for %s: %w", courseID, ErrWeatherNotFound)
	}
	return latest, nil
}
