package physics

import (
	"math"

	"github.com/stitts-dev/caddie/internal/models"
)

const compassStepDegrees = 22.5

// WindReading is a wind resolved against a shot line
type WindReading struct {
	Relative models.WindRelative
	SpeedMPH float64
	// AngleDegrees is the signed difference between where the wind comes
	// from and the shot bearing, in (-180, 180].
	AngleDegrees float64
	// Known is false when no wind information was available
	Known bool
}

// CompassDegrees converts a 16-point compass direction to degrees clockwise from north
func CompassDegrees(c models.Compass) (float64, bool) {
	for i, p := range models.CompassPoints {
		if p == c {
			return float64(i) * compassStepDegrees, true
		}
	}
	return 0, false
}

// DegreesToCompass snaps a bearing onto the nearest 16-point compass direction
func DegreesToCompass(deg float64) models.Compass {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	idx := int((deg+compassStepDegrees/2)/compassStepDegrees) % len(models.CompassPoints)
	return models.CompassPoints[idx]
}

// SignedAngle returns a-b normalized to (-180, 180]
func SignedAngle(a, b float64) float64 {
	d := math.Mod(a-b, 360)
	if d <= -180 {
		d += 360
	} else if d > 180 {
		d -= 360
	}
	return d
}

// ResolveWind classifies a compass wind against the shot bearing. The wind
// direction names where the wind blows from, so a wind from the shot bearing
// is a headwind.
func ResolveWind(direction models.Compass, speedMPH, bearingDegrees float64) WindReading {
	if direction == models.CompassUnknown {
		return WindReading{Relative: models.WindCalm}
	}
	if direction == models.CompassCalm || speedMPH < calmWindMPH {
		return WindReading{Relative: models.WindCalm, SpeedMPH: speedMPH, Known: true}
	}

	windDeg, ok := CompassDegrees(direction)
	if !ok {
		return WindReading{Relative: models.WindCalm}
	}

	diff := SignedAngle(windDeg, bearingDegrees)
	reading := WindReading{SpeedMPH: speedMPH, AngleDegrees: diff, Known: true}
	switch abs := math.Abs(diff); {
	case abs <= 45:
		reading.Relative = models.WindHeadwind
	case abs >= 135:
		reading.Relative = models.WindTailwind
	case diff > 0:
		reading.Relative = models.WindCrosswindLeft
	default:
		reading.Relative = models.WindCrosswindRight
	}
	return reading
}

// OverrideWind trusts a caller supplied shot-relative wind as-is
func OverrideWind(relative models.WindRelative, speedMPH float64) WindReading {
	return WindReading{Relative: relative, SpeedMPH: speedMPH, Known: true}
}
