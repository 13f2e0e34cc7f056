package fixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/stitts-dev/caddie/internal/models"
)

// ClubEntry is a club as written in a fixture file
type ClubEntry struct {
	Club       string   `yaml:"club"`
	Carry      float64  `yaml:"carry"`
	Total      float64  `yaml:"total"`
	Dispersion float64  `yaml:"dispersion"`
	Method     string   `yaml:"method"`
	Loft       *float64 `yaml:"loft"`
}

// PlayerEntry is a player baseline as written in a fixture file. With
// UseDefaults set the generic bag is used and Clubs is ignored.
type PlayerEntry struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	UseDefaults bool        `yaml:"use_defaults"`
	Clubs       []ClubEntry `yaml:"clubs"`
}

type HazardEntry struct {
	Type        string  `yaml:"type"`
	Location    string  `yaml:"location"`
	Distance    float64 `yaml:"distance"`
	Severity    string  `yaml:"severity"`
	Description string  `yaml:"description"`
}

type HoleEntry struct {
	Number          int           `yaml:"number"`
	Par             int           `yaml:"par"`
	Handicap        int           `yaml:"handicap"`
	Yards           float64       `yaml:"yards"`
	Bearing         float64       `yaml:"bearing"`
	Fairway         string        `yaml:"fairway"`
	ElevationChange *float64      `yaml:"elevation_change"`
	GreenShape      string        `yaml:"green_shape"`
	Notes           string        `yaml:"notes"`
	Hazards         []HazardEntry `yaml:"hazards"`
}

type CourseEntry struct {
	ID        string      `yaml:"id"`
	Name      string      `yaml:"name"`
	Aliases   []string    `yaml:"aliases"`
	City      string      `yaml:"city"`
	State     string      `yaml:"state"`
	Elevation float64     `yaml:"elevation"`
	Latitude  float64     `yaml:"latitude"`
	Longitude float64     `yaml:"longitude"`
	Holes     []HoleEntry `yaml:"holes"`
}

type WeatherEntry struct {
	TemperatureF  float64   `yaml:"temperature"`
	WindSpeedMPH  float64   `yaml:"wind_speed"`
	WindDirection string    `yaml:"wind_direction"`
	Humidity      int       `yaml:"humidity"`
	Rain          bool      `yaml:"rain"`
	Ground        string    `yaml:"ground"`
	ObservedAt    time.Time `yaml:"observed_at"`
}

type ShotEntry struct {
	DistanceToPin   float64              `yaml:"distance_to_pin"`
	Lie             string               `yaml:"lie"`
	LieQuality      string               `yaml:"lie_quality"`
	Strategy        string               `yaml:"strategy"`
	PinLocation     string               `yaml:"pin_location"`
	Wind            string               `yaml:"wind"`
	ElevationChange *float64             `yaml:"elevation_change"`
	Round           *models.RoundContext `yaml:"round"`
}

// Scenario is one complete shot: who, where, in what weather
type Scenario struct {
	Name    string       `yaml:"name"`
	Player  PlayerEntry  `yaml:"player"`
	Course  CourseEntry  `yaml:"course"`
	Hole    int          `yaml:"hole"`
	Weather WeatherEntry `yaml:"weather"`
	Shot    ShotEntry    `yaml:"shot"`
}

// Resolved is a scenario converted into engine types
type Resolved struct {
	Baseline models.PlayerBaseline
	Course   models.Course
	Hole     models.Hole
	Weather  models.WeatherSnapshot
	Shot     models.ShotContext
}

// ParseScenario decodes a scenario document
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	return &s, nil
}

// LoadScenario reads a scenario file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario %s: %w", path, err)
	}
	return ParseScenario(data)
}

// Resolve converts every loose string in the scenario into its closed type
func (s *Scenario) Resolve() (*Resolved, error) {
	baseline, err := s.Player.Baseline()
	if err != nil {
		return nil, err
	}
	course, err := s.Course.Course()
	if err != nil {
		return nil, err
	}
	number := s.Hole
	if number == 0 {
		number = 1
	}
	hole, ok := course.Hole(number)
	if !ok {
		return nil, fmt.Errorf("course %s has no hole %d", course.ID, number)
	}
	weather, err := s.Weather.Snapshot(course.ID)
	if err != nil {
		return nil, err
	}
	shot, err := s.Shot.Context()
	if err != nil {
		return nil, err
	}
	if shot.DistanceToPinYards == 0 {
		shot.DistanceToPinYards = hole.DistanceToPinYards
	}
	return &Resolved{Baseline: baseline, Course: course, Hole: hole, Weather: weather, Shot: shot}, nil
}

// Baseline converts the player entry
func (p PlayerEntry) Baseline() (models.PlayerBaseline, error) {
	if p.UseDefaults || len(p.Clubs) == 0 {
		return DefaultBaseline(p.ID, p.Name), nil
	}
	b := models.PlayerBaseline{PlayerID: p.ID, PlayerName: p.Name}
	for _, c := range p.Clubs {
		club, err := models.ParseClubType(c.Club)
		if err != nil {
			return b, err
		}
		method, err := models.ParseMeasurementMethod(c.Method)
		if err != nil {
			return b, err
		}
		dispersion := c.Dispersion
		if dispersion == 0 {
			dispersion = DispersionFor(club)
		}
		total := c.Total
		if total == 0 {
			total = c.Carry
		}
		b.Clubs = append(b.Clubs, models.ClubDistance{
			Club:            club,
			CarryYards:      c.Carry,
			TotalYards:      total,
			DispersionYards: dispersion,
			Method:          method,
			LoftDegrees:     c.Loft,
		})
	}
	return b, nil
}

// Course converts the course entry. Hole ids are derived from the course id.
func (c CourseEntry) Course() (models.Course, error) {
	course := models.Course{
		ID:            c.ID,
		Name:          c.Name,
		Aliases:       c.Aliases,
		City:          c.City,
		State:         c.State,
		ElevationFeet: c.Elevation,
		Latitude:      c.Latitude,
		Longitude:     c.Longitude,
	}
	for _, hs := range c.Holes {
		fairway, err := models.ParseFairwayType(hs.Fairway)
		if err != nil {
			return course, err
		}
		hole := models.Hole{
			ID:                  models.HoleKey(c.ID, hs.Number),
			CourseID:            c.ID,
			Number:              hs.Number,
			Par:                 hs.Par,
			HandicapIndex:       hs.Handicap,
			DistanceToPinYards:  hs.Yards,
			ShotBearingDegrees:  hs.Bearing,
			FairwayType:         fairway,
			CourseElevationFeet: c.Elevation,
			ElevationChangeFeet: hs.ElevationChange,
			GreenShape:          hs.GreenShape,
			Notes:               hs.Notes,
		}
		for _, hz := range hs.Hazards {
			typ, err := models.ParseHazardType(hz.Type)
			if err != nil {
				return course, err
			}
			loc, err := models.ParseDirection(hz.Location)
			if err != nil {
				return course, err
			}
			hole.Hazards = append(hole.Hazards, models.Hazard{
				Type:                 typ,
				Location:             loc,
				DistanceFromTeeYards: hz.Distance,
				Severity:             hz.Severity,
				Description:          hz.Description,
			})
		}
		course.Holes = append(course.Holes, hole)
	}
	return course, nil
}

// Snapshot converts the weather entry
func (w WeatherEntry) Snapshot(courseID string) (models.WeatherSnapshot, error) {
	dir, err := models.ParseCompass(w.WindDirection)
	if err != nil {
		return models.WeatherSnapshot{}, err
	}
	ground, err := models.ParseGroundCondition(w.Ground)
	if err != nil {
		return models.WeatherSnapshot{}, err
	}
	temp := w.TemperatureF
	if temp == 0 {
		temp = 70
	}
	return models.WeatherSnapshot{
		CourseID:        courseID,
		ObservedAt:      w.ObservedAt,
		TemperatureF:    temp,
		WindSpeedMPH:    w.WindSpeedMPH,
		WindDirection:   dir,
		HumidityPercent: w.Humidity,
		Rain:            w.Rain,
		Ground:          ground,
	}, nil
}

// Context converts the shot entry
func (s ShotEntry) Context() (models.ShotContext, error) {
	var (
		ctx models.ShotContext
		err error
	)
	lie := s.Lie
	if lie == "" {
		lie = string(models.LieFairway)
	}
	if ctx.Lie, err = models.ParseLie(lie); err != nil {
		return ctx, err
	}
	if ctx.LieQuality, err = models.ParseLieQuality(s.LieQuality); err != nil {
		return ctx, err
	}
	if ctx.Strategy, err = models.ParsePinStrategy(s.Strategy); err != nil {
		return ctx, err
	}
	if ctx.PinLocation, err = models.ParsePinLocation(s.PinLocation); err != nil {
		return ctx, err
	}
	if ctx.WindOverride, err = models.ParseWindRelative(s.Wind); err != nil {
		return ctx, err
	}
	ctx.DistanceToPinYards = s.DistanceToPin
	ctx.ElevationChangeFeet = s.ElevationChange
	ctx.Round = s.Round
	return ctx, nil
}

// LoadCourses reads every *.yaml course file in dir, sorted by file name
func LoadCourses(dir string) ([]models.Course, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	courses := make([]models.Course, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read course %s: %w", p, err)
		}
		var entry CourseEntry
		if err := yaml.Unmarshal(data, &entry); err != nil {
			return nil, fmt.Errorf("failed to parse course %s: %w", p, err)
		}
		course, err := entry.Course()
		if err != nil {
			return nil, fmt.Errorf("invalid course %s: %w", p, err)
		}
		courses = append(courses, course)
	}
	return courses, nil
}
