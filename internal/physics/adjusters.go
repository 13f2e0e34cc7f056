// Package physics converts single environmental factors into distance deltas.
// Every function here is pure.
package physics

import (
	"math"

	"github.com/stitts-dev/caddie/internal/models"
)

const (
	referenceTemperatureF = 70.0
	yardsPerTenDegrees    = 2.0

	// 2% per 1000 ft above sea level
	courseElevationCoefficient = 0.00002

	feetPerYardOfElevation = 3.0
	maxShotElevationFrac   = 0.15

	calmWindMPH      = 5.0
	windRangeMPH     = 15.0
	minWindFrac      = 0.03
	windFracSpread   = 0.02
	crosswindPenalty = 0.01

	rainFrac      = 0.05
	wetGroundFrac = 0.03

	wetRollFactor = 0.5
)

// TemperatureAdjustment returns the yard delta for air temperature. Not clamped.
func TemperatureAdjustment(temperatureF float64) float64 {
	return (temperatureF - referenceTemperatureF) / 10 * yardsPerTenDegrees
}

// CourseElevationFraction returns the distance gain fraction for altitude.
// Courses at or below sea level get nothing.
func CourseElevationFraction(elevationFeet float64) float64 {
	if elevationFeet <= 0 {
		return 0
	}
	return elevationFeet * courseElevationCoefficient
}

// CourseElevationAdjustment applies CourseElevationFraction to a baseline distance
func CourseElevationAdjustment(elevationFeet, baselineYards float64) float64 {
	return baselineYards * CourseElevationFraction(elevationFeet)
}

// ShotElevationScale weights an uphill or downhill change by shot length
func ShotElevationScale(baselineYards float64) float64 {
	switch {
	case baselineYards >= 200:
		return 1.0
	case baselineYards >= 150:
		return 0.8
	default:
		return 0.6
	}
}

// ShotElevationAdjustment returns the yard delta for a signed per-shot
// elevation change (positive is uphill). The result never exceeds 15% of
// the baseline in either direction.
func ShotElevationAdjustment(changeFeet, baselineYards float64) float64 {
	if changeFeet == 0 || baselineYards <= 0 {
		return 0
	}
	delta := changeFeet / feetPerYardOfElevation * ShotElevationScale(baselineYards)
	limit := baselineYards * maxShotElevationFrac
	return math.Max(-limit, math.Min(limit, delta))
}

// WindFraction returns the signed distance fraction for a shot-relative wind.
// Headwind is negative, tailwind positive, crosswind a flat small penalty.
func WindFraction(relative models.WindRelative, speedMPH float64) float64 {
	if relative == models.WindNone || relative == models.WindCalm || speedMPH < calmWindMPH {
		return 0
	}
	strength := math.Min(1, (speedMPH-calmWindMPH)/windRangeMPH)
	frac := minWindFrac + windFracSpread*strength
	switch relative {
	case models.WindHeadwind:
		return -frac
	case models.WindTailwind:
		return frac
	case models.WindCrosswindLeft, models.WindCrosswindRight:
		return -crosswindPenalty
	}
	return 0
}

// RainFraction returns the distance reduction fraction for rain or a wet
// course. The value is positive and is subtracted by callers.
func RainFraction(raining bool, ground models.GroundCondition) float64 {
	if raining {
		return rainFrac
	}
	if ground.IsWet() {
		return wetGroundFrac
	}
	return 0
}

// RollLoss returns the roll yards lost on soft ground. Positive, subtracted by callers.
func RollLoss(rollYards float64, raining bool, ground models.GroundCondition) float64 {
	if rollYards <= 0 || !(raining || ground.IsWet()) {
		return 0
	}
	return rollYards * wetRollFactor
}

// LieFraction returns the distance reduction fraction for the lie. The
// value is positive and is subtracted by callers.
func LieFraction(lie models.Lie, quality models.LieQuality) float64 {
	if quality == models.LiePlugged {
		return 0.35
	}
	switch lie {
	case models.LieWoods:
		return 0.35
	case models.LieBunker:
		return 0.20
	case models.LieRough:
		if quality == models.LieThick {
			return 0.25
		}
		return 0.15
	case models.LieSemiRough:
		return 0.05
	}
	return 0
}
