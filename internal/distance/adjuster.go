// Package distance composes the physics adjusters into adjusted carry and
// total distances for a club.
package distance

import (
	"fmt"
	"math"

	"github.com/stitts-dev/caddie/internal/models"
	"github.com/stitts-dev/caddie/internal/physics"
)

// Conditions is the full environment a shot is played in
type Conditions struct {
	TemperatureF        float64
	CourseElevationFeet float64
	// ShotElevationFeet is nil when no per-shot elevation data exists
	ShotElevationFeet *float64
	Wind              physics.WindReading
	Rain              bool
	Ground            models.GroundCondition
	Lie               models.Lie
	LieQuality        models.LieQuality
}

// ElevationChange returns the per-shot elevation change, zero when unknown
func (c Conditions) ElevationChange() float64 {
	if c.ShotElevationFeet == nil {
		return 0
	}
	return *c.ShotElevationFeet
}

// ConditionsFor assembles the conditions for a shot. An explicit wind
// override in the shot bypasses the compass resolver. A hole-level elevation
// change applies to tee shots when the shot itself carries none.
func ConditionsFor(hole models.Hole, weather models.WeatherSnapshot, shot models.ShotContext) Conditions {
	var wind physics.WindReading
	if shot.WindOverride != models.WindNone {
		wind = physics.OverrideWind(shot.WindOverride, weather.WindSpeedMPH)
	} else {
		wind = physics.ResolveWind(weather.WindDirection, weather.WindSpeedMPH, hole.ShotBearingDegrees)
	}

	elevation := shot.ElevationChangeFeet
	if elevation == nil && shot.Lie == models.LieTee {
		elevation = hole.ElevationChangeFeet
	}

	return Conditions{
		TemperatureF:        weather.TemperatureF,
		CourseElevationFeet: hole.CourseElevationFeet,
		ShotElevationFeet:   elevation,
		Wind:                wind,
		Rain:                weather.Rain,
		Ground:              weather.Ground,
		Lie:                 shot.Lie,
		LieQuality:          shot.LieQuality,
	}
}

// Result is a club's distance after every environmental adjustment
type Result struct {
	Club            models.ClubType
	CarryYards      float64
	TotalYards      float64
	DispersionYards float64
	Breakdown       models.AdjustmentBreakdown
}

type terms struct {
	temperature float64
	course      float64
	shot        float64
	wind        float64
	rain        float64
	lie         float64
}

func (t terms) sum() float64 {
	return t.temperature + t.course + t.shot + t.wind + t.rain + t.lie
}

func termsFor(baseline float64, c Conditions) terms {
	return terms{
		temperature: physics.TemperatureAdjustment(c.TemperatureF),
		course:      physics.CourseElevationAdjustment(c.CourseElevationFeet, baseline),
		shot:        physics.ShotElevationAdjustment(c.ElevationChange(), baseline),
		wind:        baseline * physics.WindFraction(c.Wind.Relative, c.Wind.SpeedMPH),
		rain:        -baseline * physics.RainFraction(c.Rain, c.Ground),
		lie:         -baseline * physics.LieFraction(c.Lie, c.LieQuality),
	}
}

// Adjust applies every environmental factor to a club's baseline carry and
// total. Each term depends only on the baseline and its own input, so the
// order in which they are summed never matters.
func Adjust(club models.ClubDistance, c Conditions) Result {
	carryTerms := termsFor(club.CarryYards, c)
	totalTerms := termsFor(club.TotalYards, c)
	roll := -physics.RollLoss(club.RollYards(), c.Rain, c.Ground)

	carry := math.Max(0, club.CarryYards+carryTerms.sum())
	total := math.Max(carry, club.TotalYards+totalTerms.sum()+roll)

	breakdown := models.AdjustmentBreakdown{
		TemperatureYards:     Round(totalTerms.temperature),
		CourseElevationYards: Round(totalTerms.course),
		ShotElevationYards:   Round(totalTerms.shot),
		WindYards:            Round(totalTerms.wind),
		RainYards:            Round(totalTerms.rain),
		LieYards:             Round(totalTerms.lie),
		RollYards:            Round(roll),
		CourseElevationPct:   Round(physics.CourseElevationFraction(c.CourseElevationFeet) * 100),
		WindPct:              Round(physics.WindFraction(c.Wind.Relative, c.Wind.SpeedMPH) * 100),
		RainPct:              Round(-physics.RainFraction(c.Rain, c.Ground) * 100),
		LiePct:               Round(-physics.LieFraction(c.Lie, c.LieQuality) * 100),
		WindRelative:         c.Wind.Relative,
	}
	breakdown.Summary = summarize(breakdown, c)

	return Result{
		Club:            club.Club,
		CarryYards:      Round(carry),
		TotalYards:      Round(total),
		DispersionYards: club.DispersionYards,
		Breakdown:       breakdown,
	}
}

// Round rounds a yard figure to one decimal place. Every yard value that
// leaves this package goes through it.
func Round(yards float64) float64 {
	r := math.Round(yards*10) / 10
	if r == 0 {
		return 0
	}
	return r
}

func summarize(b models.AdjustmentBreakdown, c Conditions) []string {
	var lines []string
	add := func(delta float64, reason string) {
		if delta != 0 {
			lines = append(lines, fmt.Sprintf("%+.1f yards: %s", delta, reason))
		}
	}

	add(b.TemperatureYards, fmt.Sprintf("%.0f°F temperature", c.TemperatureF))
	add(b.CourseElevationYards, fmt.Sprintf("%.0f ft course elevation", c.CourseElevationFeet))
	if change := c.ElevationChange(); change > 0 {
		add(b.ShotElevationYards, fmt.Sprintf("%.0f ft uphill", change))
	} else {
		add(b.ShotElevationYards, fmt.Sprintf("%.0f ft downhill", -change))
	}
	add(b.WindYards, fmt.Sprintf("%.0f mph %s", c.Wind.SpeedMPH, c.Wind.Relative.Label()))
	if c.Rain {
		add(b.RainYards, "rain")
	} else {
		add(b.RainYards, fmt.Sprintf("%s ground", c.Ground))
	}
	lie := string(c.Lie)
	if c.LieQuality == models.LieThick || c.LieQuality == models.LiePlugged {
		lie = fmt.Sprintf("%s (%s)", c.Lie, c.LieQuality)
	}
	add(b.LieYards, fmt.Sprintf("%s lie", lie))
	add(b.RollYards, "soft ground reduces roll")
	return lines
}
