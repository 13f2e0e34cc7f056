package handlers

import (
	"fmt"

	"github.com/stitts-dev/caddie/internal/fixtures"
	"github.com/stitts-dev/caddie/internal/models"
)

type RoundContextRequest struct {
	CurrentHole int   `json:"current_hole" validate:"omitempty,min=1,max=18"`
	ScoreToPar  int   `json:"score_to_par"`
	LastScores  []int `json:"last_scores" validate:"max=3,dive,min=1,max=15"`
	LastPars    []int `json:"last_pars" validate:"max=3,dive,min=3,max=5"`
}

type ShotRequest struct {
	DistanceToPinYards  float64              `json:"distance_to_pin_yards" validate:"required,gt=0,lte=700"`
	Lie                 string               `json:"lie"`
	LieQuality          string               `json:"lie_quality"`
	Strategy            string               `json:"pin_placement_strategy"`
	PinLocation         string               `json:"pin_location"`
	Wind                string               `json:"wind_relative"`
	ElevationChangeFeet *float64             `json:"elevation_change_feet" validate:"omitempty,gte=-300,lte=300"`
	Round               *RoundContextRequest `json:"round_context"`
}

type RecommendationRequest struct {
	PlayerID          string      `json:"player_id" validate:"required,max=64"`
	HoleID            string      `json:"hole_id" validate:"required,max=64"`
	WeatherID         string      `json:"weather_id" validate:"omitempty,max=64"`
	UseCurrentWeather bool        `json:"use_current_weather"`
	Shot              ShotRequest `json:"shot"`
}

// toModel resolves the loose shot vocabulary into a ShotContext
func (s ShotRequest) toModel() (models.ShotContext, error) {
	lie, quality, err := mapLie(s.Lie, s.LieQuality)
	if err != nil {
		return models.ShotContext{}, err
	}
	strategy, err := mapStrategy(s.Strategy)
	if err != nil {
		return models.ShotContext{}, err
	}
	pin, err := mapPin(s.PinLocation)
	if err != nil {
		return models.ShotContext{}, err
	}
	wind, err := mapWind(s.Wind)
	if err != nil {
		return models.ShotContext{}, err
	}

	shot := models.ShotContext{
		DistanceToPinYards:  s.DistanceToPinYards,
		Lie:                 lie,
		LieQuality:          quality,
		Strategy:            strategy,
		PinLocation:         pin,
		WindOverride:        wind,
		ElevationChangeFeet: s.ElevationChangeFeet,
	}
	if s.Round != nil {
		if len(s.Round.LastScores) != len(s.Round.LastPars) {
			return models.ShotContext{}, fmt.Errorf("last_scores and last_pars must have the same length")
		}
		shot.Round = &models.RoundContext{
			CurrentHole: s.Round.CurrentHole,
			ScoreToPar:  s.Round.ScoreToPar,
			LastScores:  append([]int(nil), s.Round.LastScores...),
			LastPars:    append([]int(nil), s.Round.LastPars...),
		}
	}
	return shot, nil
}

type ClubRequest struct {
	Club            string   `json:"club" validate:"required"`
	CarryYards      float64  `json:"carry_yards" validate:"gte=0,lte=400"`
	TotalYards      float64  `json:"total_yards" validate:"gtefield=CarryYards,lte=450"`
	DispersionYards float64  `json:"dispersion_yards" validate:"omitempty,gt=0,lte=60"`
	Method          string   `json:"measurement_method"`
	LoftDegrees     *float64 `json:"loft_degrees" validate:"omitempty,gt=0,lte=70"`
}

type BaselineRequest struct {
	PlayerName string        `json:"player_name" validate:"max=128"`
	Clubs      []ClubRequest `json:"clubs" validate:"required,min=1,max=14,dive"`
}

// toModel builds a baseline, filling a missing dispersion from the generic table
func (b BaselineRequest) toModel(playerID string) (models.PlayerBaseline, error) {
	out := models.PlayerBaseline{PlayerID: playerID, PlayerName: b.PlayerName}
	for _, c := range b.Clubs {
		club, err := mapClub(c.Club)
		if err != nil {
			return models.PlayerBaseline{}, err
		}
		method, err := models.ParseMeasurementMethod(normalizeWord(c.Method))
		if err != nil {
			return models.PlayerBaseline{}, err
		}
		dispersion := c.DispersionYards
		if dispersion == 0 {
			dispersion = fixtures.DispersionFor(club)
		}
		out.Clubs = append(out.Clubs, models.ClubDistance{
			Club:            club,
			CarryYards:      c.CarryYards,
			TotalYards:      c.TotalYards,
			DispersionYards: dispersion,
			Method:          method,
			LoftDegrees:     c.LoftDegrees,
		})
	}
	return out, nil
}

type DefaultBaselineRequest struct {
	PlayerName string `json:"player_name" validate:"max=128"`
	Overwrite  bool   `json:"overwrite"`
}

type HazardRequest struct {
	Type                 string  `json:"type" validate:"required"`
	Location             string  `json:"location" validate:"required"`
	DistanceFromTeeYards float64 `json:"distance_from_tee_yards" validate:"gte=0,lte=700"`
	Severity             string  `json:"severity"`
	Description          string  `json:"description" validate:"max=256"`
}

type HoleRequest struct {
	Number              int             `json:"number" validate:"min=1,max=18"`
	Par                 int             `json:"par" validate:"min=3,max=6"`
	HandicapIndex       int             `json:"handicap_index" validate:"min=0,max=18"`
	DistanceToPinYards  float64         `json:"distance_to_pin_yards" validate:"gt=0,lte=700"`
	ShotBearingDegrees  float64         `json:"shot_bearing_degrees" validate:"gte=0,lt=360"`
	FairwayType         string          `json:"fairway_type"`
	ElevationChangeFeet *float64        `json:"elevation_change_feet" validate:"omitempty,gte=-300,lte=300"`
	GreenShape          string          `json:"green_shape"`
	Notes               string          `json:"notes" validate:"max=512"`
	Hazards             []HazardRequest `json:"hazards" validate:"dive"`
}

type CourseRequest struct {
	ID            string        `json:"id" validate:"required,max=64"`
	Name          string        `json:"name" validate:"required,max=128"`
	Aliases       []string      `json:"aliases" validate:"max=10"`
	City          string        `json:"city"`
	State         string        `json:"state"`
	ElevationFeet float64       `json:"elevation_feet" validate:"gte=-1500,lte=15000"`
	Latitude      float64       `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude     float64       `json:"longitude" validate:"gte=-180,lte=180"`
	Holes         []HoleRequest `json:"holes" validate:"required,min=1,max=18,dive"`
}

func (r CourseRequest) toModel() (models.Course, error) {
	course := models.Course{
		ID:            r.ID,
		Name:          r.Name,
		Aliases:       append([]string(nil), r.Aliases...),
		City:          r.City,
		State:         r.State,
		ElevationFeet: r.ElevationFeet,
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
	}
	for _, h := range r.Holes {
		fairway, err := models.ParseFairwayType(normalizeWord(h.FairwayType))
		if err != nil {
			return models.Course{}, err
		}
		hole := models.Hole{
			Number:              h.Number,
			Par:                 h.Par,
			HandicapIndex:       h.HandicapIndex,
			DistanceToPinYards:  h.DistanceToPinYards,
			ShotBearingDegrees:  h.ShotBearingDegrees,
			FairwayType:         fairway,
			ElevationChangeFeet: h.ElevationChangeFeet,
			GreenShape:          h.GreenShape,
			Notes:               h.Notes,
			Hazards:             []models.Hazard{},
		}
		for _, hz := range h.Hazards {
			kind, err := mapHazard(hz.Type)
			if err != nil {
				return models.Course{}, err
			}
			loc, err := mapDirection(hz.Location)
			if err != nil {
				return models.Course{}, err
			}
			hole.Hazards = append(hole.Hazards, models.Hazard{
				Type:                 kind,
				Location:             loc,
				DistanceFromTeeYards: hz.DistanceFromTeeYards,
				Severity:             hz.Severity,
				Description:          hz.Description,
			})
		}
		course.Holes = append(course.Holes, hole)
	}
	return course, nil
}
