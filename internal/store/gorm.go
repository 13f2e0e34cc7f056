package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/stitts-dev/caddie/internal/models"
)

// GormStore is a Store backed by any gorm dialect
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates every table
func (s *GormStore) Migrate() error {
	if err := s.db.AutoMigrate(AllRecords()...); err != nil {
		return fmt.Errorf("failed to migrate store: %w", err)
	}
	return nil
}

func orderedHoles(db *gorm.DB) *gorm.DB {
	return db.Order("number ASC")
}

func orderedHazards(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func (s *GormStore) courses(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("Holes", orderedHoles).
		Preload("Holes.Hazards", orderedHazards)
}

func (s *GormStore) SaveCourse(ctx context.Context, course *models.Course) error {
	rec := courseRecord(course)
	holes := rec.Holes
	rec.Holes = nil

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		holeIDs := tx.Model(&HoleRecord{}).Select("id").Where("course_id = ?", rec.ID)
		if err := tx.Where("hole_id IN (?)", holeIDs).Delete(&HazardRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear hazards: %w", err)
		}
		if err := tx.Where("course_id = ?", rec.ID).Delete(&HoleRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear holes: %w", err)
		}
		if err := tx.Save(&rec).Error; err != nil {
			return fmt.Errorf("failed to save course: %w", err)
		}
		if len(holes) > 0 {
			if err := tx.Create(&holes).Error; err != nil {
				return fmt.Errorf("failed to save holes: %w", err)
			}
		}
		return nil
	})
}

func (s *GormStore) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	var rec CourseRecord
	if err := s.courses(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("course %s: %w", id, ErrCourseNotFound)
		}
		return nil, fmt.Errorf("failed to load course %s: %w", id, err)
	}
	c := rec.toModel()
	return &c, nil
}

func (s *GormStore) ListCourses(ctx context.Context) ([]models.Course, error) {
	var recs []CourseRecord
	if err := s.courses(ctx).Order("name ASC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	out := make([]models.Course, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.toModel())
	}
	return out, nil
}

// SearchCourses matches the query against name, id and aliases, case-insensitively
func (s *GormStore) SearchCourses(ctx context.Context, query string) ([]models.Course, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	var recs []CourseRecord
	err := s.courses(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(id) LIKE ? OR LOWER(aliases) LIKE ?", pattern, pattern, pattern).
		Order("name ASC").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search courses: %w", err)
	}
	out := make([]models.Course, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.toModel())
	}
	return out, nil
}

func (s *GormStore) GetHole(ctx context.Context, id string) (*models.Hole, error) {
	var rec HoleRecord
	err := s.db.WithContext(ctx).Preload("Hazards", orderedHazards).First(&rec, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("hole %s: %w", id, ErrHoleNotFound)
		}
		return nil, fmt.Errorf("failed to load hole %s: %w", id, err)
	}

	var course CourseRecord
	if err := s.db.WithContext(ctx).Select("id", "elevation_feet").First(&course, "id = ?", rec.CourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("course %s of hole %s: %w", rec.CourseID, id, ErrCourseNotFound)
		}
		return nil, fmt.Errorf("failed to load course %s: %w", rec.CourseID, err)
	}

	h := rec.toModel(course.ElevationFeet)
	return &h, nil
}

func (s *GormStore) GetPlayerBaseline(ctx context.Context, playerID string) (*models.PlayerBaseline, error) {
	var rec PlayerRecord
	err := s.db.WithContext(ctx).
		Preload("Clubs", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&rec, "id = ?", playerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("player %s: %w", playerID, ErrPlayerNotFound)
		}
		return nil, fmt.Errorf("failed to load player %s: %w", playerID, err)
	}
	b := rec.toModel()
	return &b, nil
}

func (s *GormStore) ReplacePlayerBaseline(ctx context.Context, baseline *models.PlayerBaseline) error {
	rec := playerRecord(baseline)
	clubs := rec.Clubs
	rec.Clubs = nil

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("player_id = ?", rec.ID).Delete(&ClubRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear clubs: %w", err)
		}
		if err := tx.Save(&rec).Error; err != nil {
			return fmt.Errorf("failed to save player: %w", err)
		}
		if len(clubs) > 0 {
			if err := tx.Create(&clubs).Error; err != nil {
				return fmt.Errorf("failed to save clubs: %w", err)
			}
		}
		return nil
	})
}

func (s *GormStore) SaveWeather(ctx context.Context, snapshot *models.WeatherSnapshot, raw json.RawMessage) error {
	rec := weatherRecord(snapshot, raw)
	if err := s.db.WithContext(ctx).Save(&rec).Error; err != nil {
		return fmt.Errorf("failed to save weather %s: %w", snapshot.ID, err)
	}
	return nil
}

func (s *GormStore) GetWeather(ctx context.Context, id string) (*models.WeatherSnapshot, error) {
	var rec WeatherRecord
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("weather %s: %w", id, ErrWeatherNotFound)
		}
		return nil, fmt.Errorf("failed to load weather %s: %w", id, err)
	}
	w := rec.toModel()
	return &w, nil
}

func (s *GormStore) LatestWeather(ctx context.Context, courseID string) (*models.WeatherSnapshot, error) {
	var rec WeatherRecord
	err := s.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("observed_at DESC").
		Order("id DESC").
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("latest weather for %s: %w", courseID, ErrWeatherNotFound)
		}
		return nil, fmt.Errorf("failed to load latest weather for %s: %w", courseID, err)
	}
	w := rec.toModel()
	return &w, nil
}

// RawWeather returns the provider payload stored with a snapshot
func (s *GormStore) RawWeather(ctx context.Context, id string) (json.RawMessage, error) {
	var rec WeatherRecord
	if err := s.db.WithContext(ctx).Select("id", "raw").First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("weather %s: %w", id, ErrWeatherNotFound)
		}
		return nil, err
	}
	return json.RawMessage(rec.Raw), nil
}
