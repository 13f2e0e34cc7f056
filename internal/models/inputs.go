package models

import "time"

// ClubDistance is a player's reference distance for one club
type ClubDistance struct {
	Club            ClubType          `json:"club" yaml:"club"`
	CarryYards      float64           `json:"carry_yards" yaml:"carry_yards"`
	TotalYards      float64           `json:"total_yards" yaml:"total_yards"`
	DispersionYards float64           `json:"dispersion_yards" yaml:"dispersion_yards"`
	Method          MeasurementMethod `json:"measurement_method" yaml:"measurement_method"`
	LoftDegrees     *float64          `json:"loft_degrees,omitempty" yaml:"loft_degrees,omitempty"`
}

// RollYards is the distance gained after landing
func (c ClubDistance) RollYards() float64 {
	return c.TotalYards - c.CarryYards
}

// PlayerBaseline is a player's ordered bag of club distances
type PlayerBaseline struct {
	PlayerID   string         `json:"player_id" yaml:"player_id"`
	PlayerName string         `json:"player_name,omitempty" yaml:"player_name,omitempty"`
	Clubs      []ClubDistance `json:"clubs" yaml:"clubs"`
}

// MeasuredClubCount counts clubs backed by a real measurement
func (b PlayerBaseline) MeasuredClubCount() int {
	n := 0
	for _, c := range b.Clubs {
		if c.Method.IsMeasured() {
			n++
		}
	}
	return n
}

// Club looks up a club in the bag
func (b PlayerBaseline) Club(club ClubType) (ClubDistance, bool) {
	for _, c := range b.Clubs {
		if c.Club == club {
			return c, true
		}
	}
	return ClubDistance{}, false
}

// Hazard is a static piece of trouble on a hole
type Hazard struct {
	Type                 HazardType `json:"type" yaml:"type"`
	Location             Direction  `json:"location" yaml:"location"`
	DistanceFromTeeYards float64    `json:"distance_from_tee_yards" yaml:"distance_from_tee_yards"`
	Severity             string     `json:"severity,omitempty" yaml:"severity,omitempty"`
	Description          string     `json:"description,omitempty" yaml:"description,omitempty"`
}

// Hole is the geometry of one hole together with its course elevation
type Hole struct {
	ID                  string      `json:"id" yaml:"id"`
	CourseID            string      `json:"course_id" yaml:"course_id"`
	Number              int         `json:"number" yaml:"number"`
	Par                 int         `json:"par" yaml:"par"`
	HandicapIndex       int         `json:"handicap_index" yaml:"handicap_index"`
	DistanceToPinYards  float64     `json:"distance_to_pin_yards" yaml:"distance_to_pin_yards"`
	ShotBearingDegrees  float64     `json:"shot_bearing_degrees" yaml:"shot_bearing_degrees"`
	FairwayType         FairwayType `json:"fairway_type" yaml:"fairway_type"`
	CourseElevationFeet float64     `json:"course_elevation_feet" yaml:"course_elevation_feet"`
	ElevationChangeFeet *float64    `json:"elevation_change_feet,omitempty" yaml:"elevation_change_feet,omitempty"`
	GreenShape          string      `json:"green_shape,omitempty" yaml:"green_shape,omitempty"`
	Notes               string      `json:"notes,omitempty" yaml:"notes,omitempty"`
	Hazards             []Hazard    `json:"hazards" yaml:"hazards"`
}

// WeatherSnapshot is the weather at the course when the shot is played
type WeatherSnapshot struct {
	ID              string          `json:"id" yaml:"id"`
	CourseID        string          `json:"course_id,omitempty" yaml:"course_id,omitempty"`
	ObservedAt      time.Time       `json:"observed_at" yaml:"observed_at"`
	TemperatureF    float64         `json:"temperature_f" yaml:"temperature_f"`
	WindSpeedMPH    float64         `json:"wind_speed_mph" yaml:"wind_speed_mph"`
	WindDirection   Compass         `json:"wind_direction" yaml:"wind_direction"`
	HumidityPercent int             `json:"humidity_percent" yaml:"humidity_percent"`
	Rain            bool            `json:"rain" yaml:"rain"`
	Ground          GroundCondition `json:"ground_conditions" yaml:"ground_conditions"`
}

// HasWindData reports whether the snapshot carries a wind reading at all
func (w WeatherSnapshot) HasWindData() bool {
	return w.WindDirection != CompassUnknown
}

// RoundContext describes how the round is going so far
type RoundContext struct {
	CurrentHole int   `json:"current_hole" yaml:"current_hole"`
	ScoreToPar  int   `json:"score_to_par" yaml:"score_to_par"`
	LastScores  []int `json:"last_scores" yaml:"last_scores"`
	LastPars    []int `json:"last_pars" yaml:"last_pars"`
}

// ShotContext is the per-request description of the shot at hand
type ShotContext struct {
	DistanceToPinYards  float64       `json:"distance_to_pin_yards" yaml:"distance_to_pin_yards"`
	Lie                 Lie           `json:"lie" yaml:"lie"`
	LieQuality          LieQuality    `json:"lie_quality" yaml:"lie_quality"`
	Strategy            PinStrategy   `json:"pin_placement_strategy" yaml:"pin_placement_strategy"`
	PinLocation         PinLocation   `json:"pin_location" yaml:"pin_location"`
	WindOverride        WindRelative  `json:"wind_relative,omitempty" yaml:"wind_relative,omitempty"`
	ElevationChangeFeet *float64      `json:"elevation_change_feet,omitempty" yaml:"elevation_change_feet,omitempty"`
	Round               *RoundContext `json:"round_context,omitempty" yaml:"round_context,omitempty"`
}
