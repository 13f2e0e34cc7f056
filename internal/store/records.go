package store

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"

	"github.com/stitts-dev/caddie/internal/models"
)

// CourseRecord is a course row
type CourseRecord struct {
	ID            string         `gorm:"primaryKey;type:varchar(64)"`
	Name          string         `gorm:"not null;index"`
	Aliases       pq.StringArray `gorm:"type:text"`
	City          string
	State         string
	ElevationFeet float64
	Latitude      float64
	Longitude     float64
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Holes []HoleRecord `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

func (CourseRecord) TableName() string {
	return "courses"
}

// HoleRecord is a hole row
type HoleRecord struct {
	ID                  string `gorm:"primaryKey;type:varchar(80)"`
	CourseID            string `gorm:"not null;index"`
	Number              int    `gorm:"not null"`
	Par                 int
	HandicapIndex       int
	Yards               float64
	BearingDegrees      float64
	FairwayType         string `gorm:"type:varchar(20)"`
	ElevationChangeFeet *float64
	GreenShape          string
	Notes               string

	Hazards []HazardRecord `gorm:"foreignKey:HoleID;constraint:OnDelete:CASCADE"`
}

func (HoleRecord) TableName() string {
	return "holes"
}

type HazardRecord struct {
	ID              uint   `gorm:"primaryKey;autoIncrement"`
	HoleID          string `gorm:"not null;index"`
	Position        int
	Type            string `gorm:"type:varchar(20);not null"`
	Location        string `gorm:"type:varchar(10);not null"`
	DistanceFromTee float64
	Severity        string
	Description     string
}

func (HazardRecord) TableName() string {
	return "hazards"
}

type PlayerRecord struct {
	ID        string `gorm:"primaryKey;type:varchar(64)"`
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time

	Clubs []ClubRecord `gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE"`
}

func (PlayerRecord) TableName() string {
	return "players"
}

type ClubRecord struct {
	ID              uint   `gorm:"primaryKey;autoIncrement"`
	PlayerID        string `gorm:"not null;index"`
	Position        int
	Club            string `gorm:"type:varchar(20);not null"`
	CarryYards      float64
	TotalYards      float64
	DispersionYards float64
	Method          string `gorm:"type:varchar(20)"`
	LoftDegrees     *float64
}

func (ClubRecord) TableName() string {
	return "player_clubs"
}

// WeatherRecord is a weather snapshot row. Raw keeps the provider payload.
type WeatherRecord struct {
	ID              string    `gorm:"primaryKey;type:varchar(64)"`
	CourseID        string    `gorm:"index:idx_weather_course_time,priority:1"`
	ObservedAt      time.Time `gorm:"index:idx_weather_course_time,priority:2"`
	TemperatureF    float64
	WindSpeedMPH    float64
	WindDirection   string `gorm:"type:varchar(5)"`
	HumidityPercent int
	Rain            bool
	Ground          string `gorm:"type:varchar(10)"`
	Raw             datatypes.JSON
	CreatedAt       time.Time
}

func (WeatherRecord) TableName() string {
	return "weather_snapshots"
}

// AllRecords lists every table for migrations
func AllRecords() []interface{} {
	return []interface{}{
		&CourseRecord{},
		&HoleRecord{},
		&HazardRecord{},
		&PlayerRecord{},
		&ClubRecord{},
		&WeatherRecord{},
	}
}

func courseRecord(c *models.Course) CourseRecord {
	rec := CourseRecord{
		ID:            c.ID,
		Name:          c.Name,
		Aliases:       pq.StringArray(c.Aliases),
		City:          c.City,
		State:         c.State,
		ElevationFeet: c.ElevationFeet,
		Latitude:      c.Latitude,
		Longitude:     c.Longitude,
	}
	for _, h := range c.Holes {
		id := h.ID
		if id == "" {
			id = models.HoleKey(c.ID, h.Number)
		}
		hr := HoleRecord{
			ID:                  id,
			CourseID:            c.ID,
			Number:              h.Number,
			Par:                 h.Par,
			HandicapIndex:       h.HandicapIndex,
			Yards:               h.DistanceToPinYards,
			BearingDegrees:      h.ShotBearingDegrees,
			FairwayType:         string(h.FairwayType),
			ElevationChangeFeet: h.ElevationChangeFeet,
			GreenShape:          h.GreenShape,
			Notes:               h.Notes,
		}
		for i, hz := range h.Hazards {
			hr.Hazards = append(hr.Hazards, HazardRecord{
				HoleID:          id,
				Position:        i,
				Type:            string(hz.Type),
				Location:        string(hz.Location),
				DistanceFromTee: hz.DistanceFromTeeYards,
				Severity:        hz.Severity,
				Description:     hz.Description,
			})
		}
		rec.Holes = append(rec.Holes, hr)
	}
	return rec
}

func (r HoleRecord) toModel(courseElevation float64) models.Hole {
	h := models.Hole{
		ID:                  r.ID,
		CourseID:            r.CourseID,
		Number:              r.Number,
		Par:                 r.Par,
		HandicapIndex:       r.HandicapIndex,
		DistanceToPinYards:  r.Yards,
		ShotBearingDegrees:  r.BearingDegrees,
		FairwayType:         models.FairwayType(r.FairwayType),
		CourseElevationFeet: courseElevation,
		ElevationChangeFeet: r.ElevationChangeFeet,
		GreenShape:          r.GreenShape,
		Notes:               r.Notes,
	}
	for _, hz := range r.Hazards {
		h.Hazards = append(h.Hazards, models.Hazard{
			Type:                 models.HazardType(hz.Type),
			Location:             models.Direction(hz.Location),
			DistanceFromTeeYards: hz.DistanceFromTee,
			Severity:             hz.Severity,
			Description:          hz.Description,
		})
	}
	return h
}

func (r CourseRecord) toModel() models.Course {
	c := models.Course{
		ID:            r.ID,
		Name:          r.Name,
		Aliases:       []string(r.Aliases),
		City:          r.City,
		State:         r.State,
		ElevationFeet: r.ElevationFeet,
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
	}
	for _, h := range r.Holes {
		c.Holes = append(c.Holes, h.toModel(r.ElevationFeet))
	}
	return c
}

func playerRecord(b *models.PlayerBaseline) PlayerRecord {
	rec := PlayerRecord{ID: b.PlayerID, Name: b.PlayerName}
	for i, c := range b.Clubs {
		rec.Clubs = append(rec.Clubs, ClubRecord{
			PlayerID:        b.PlayerID,
			Position:        i,
			Club:            string(c.Club),
			CarryYards:      c.CarryYards,
			TotalYards:      c.TotalYards,
			DispersionYards: c.DispersionYards,
			Method:          string(c.Method),
			LoftDegrees:     c.LoftDegrees,
		})
	}
	return rec
}

func (r PlayerRecord) toModel() models.PlayerBaseline {
	b := models.PlayerBaseline{PlayerID: r.ID, PlayerName: r.Name}
	for _, c := range r.Clubs {
		b.Clubs = append(b.Clubs, models.ClubDistance{
			Club:            models.ClubType(c.Club),
			CarryYards:      c.CarryYards,
			TotalYards:      c.TotalYards,
			DispersionYards: c.DispersionYards,
			Method:          models.MeasurementMethod(c.Method),
			LoftDegrees:     c.LoftDegrees,
		})
	}
	return b
}

func weatherRecord(w *models.WeatherSnapshot, raw []byte) WeatherRecord {
	return WeatherRecord{
		ID:              w.ID,
		CourseID:        w.CourseID,
		ObservedAt:      w.ObservedAt.UTC(),
		TemperatureF:    w.TemperatureF,
		WindSpeedMPH:    w.WindSpeedMPH,
		WindDirection:   string(w.WindDirection),
		HumidityPercent: w.HumidityPercent,
		Rain:            w.Rain,
		Ground:          string(w.Ground),
		Raw:             datatypes.JSON(raw),
	}
}

func (r WeatherRecord) toModel() models.WeatherSnapshot {
	return models.WeatherSnapshot{
		ID:              r.ID,
		CourseID:        r.CourseID,
		ObservedAt:      r.ObservedAt.UTC(),
		TemperatureF:    r.TemperatureF,
		WindSpeedMPH:    r.WindSpeedMPH,
		WindDirection:   models.Compass(r.WindDirection),
		HumidityPercent: r.HumidityPercent,
		Rain:            r.Rain,
		Ground:          models.GroundCondition(r.Ground),
	}
}
