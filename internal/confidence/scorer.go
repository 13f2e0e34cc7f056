// Package confidence turns the certainty of each recommendation input into a
// single calibrated confidence value.
package confidence

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/stitts-dev/caddie/internal/models"
)

// DefaultMeasuredClubs is how many measured clubs a player needs before their
// data counts as high quality
const DefaultMeasuredClubs = 8

// Threshold below which a factor is called out in the explanation
const Threshold = 0.85

// LowThreshold marks a factor as badly uncertain. Two of them, or three
// marginal factors, drop the explanation to the low tier.
const LowThreshold = 0.6

const fallbackNote = "No club reaches the target within its normal dispersion, so this is the closest option."

// Weights of each factor in the overall geometric mean, in Factors order
var Weights = []float64{0.35, 0.15, 0.15, 0.20, 0.15}

// Inputs is everything the scorer looks at
type Inputs struct {
	TargetYards     float64
	AdjustedYards   float64
	DispersionYards float64

	ElevationKnown      bool
	ElevationChangeFeet float64

	WindKnown    bool
	WindSpeedMPH float64

	Lie        models.Lie
	LieQuality models.LieQuality

	MeasuredClubs  int
	MeasuredNeeded int

	Fallback bool
}

// DistanceCertainty scores how closely the adjusted distance matches the target
func DistanceCertainty(target, adjusted, dispersion float64) float64 {
	if dispersion <= 0 {
		return 0.4
	}
	diff := math.Abs(adjusted - target)
	switch {
	case diff <= dispersion*0.5:
		return 1.0
	case diff <= dispersion:
		return 0.85
	case diff <= dispersion*1.5:
		return 0.7
	case diff <= dispersion*2:
		return 0.55
	}
	return 0.4
}

// ElevationCertainty scores the per-shot elevation data
func ElevationCertainty(known bool, changeFeet float64) float64 {
	switch {
	case !known:
		return 0.7
	case changeFeet == 0:
		return 1.0
	case math.Abs(changeFeet) > 10:
		return 0.95
	}
	return 0.9
}

// WindCertainty scores the wind data
func WindCertainty(known bool, speedMPH float64) float64 {
	switch {
	case !known:
		return 0.75
	case speedMPH < 5:
		return 1.0
	case speedMPH < 10:
		return 0.9
	}
	return 0.8
}

// LieCertainty scores how predictable strike quality is from the lie
func LieCertainty(lie models.Lie, quality models.LieQuality) float64 {
	if quality == models.LiePlugged {
		return 0.5
	}
	switch lie {
	case models.LieTee:
		return 1.0
	case models.LieFairway:
		if quality == models.LieThick {
			return 0.75
		}
		return 1.0
	case models.LieSemiRough:
		return 0.8
	case models.LieRough:
		if quality == models.LieThick {
			return 0.6
		}
		return 0.7
	case models.LieBunker:
		return 0.65
	case models.LieWoods:
		return 0.5
	}
	return 0.7
}

// PlayerDataQuality scores how much of the bag is measured
func PlayerDataQuality(measured, needed int) float64 {
	if needed <= 0 {
		needed = DefaultMeasuredClubs
	}
	if measured >= needed {
		return 0.95
	}
	return 0.7
}

// Overall combines the five factors with a weighted geometric mean, so one
// poor factor drags the result down hard.
func Overall(distance, elevation, wind, lie, player float64) float64 {
	return stat.GeometricMean([]float64{distance, elevation, wind, lie, player}, Weights)
}

// Score computes every factor and the overall confidence
func Score(in Inputs) models.ConfidenceScore {
	s := models.ConfidenceScore{
		DistanceCertainty:  DistanceCertainty(in.TargetYards, in.AdjustedYards, in.DispersionYards),
		ElevationCertainty: ElevationCertainty(in.ElevationKnown, in.ElevationChangeFeet),
		WindCertainty:      WindCertainty(in.WindKnown, in.WindSpeedMPH),
		LieCertainty:       LieCertainty(in.Lie, in.LieQuality),
		PlayerDataQuality:  PlayerDataQuality(in.MeasuredClubs, in.MeasuredNeeded),
	}
	s.OverallConfidence = Overall(s.DistanceCertainty, s.ElevationCertainty, s.WindCertainty,
		s.LieCertainty, s.PlayerDataQuality)
	s.Explanation = Explain(s, in.WindKnown, in.Fallback)
	return s
}

// Explain writes the confidence explanation from the weak factors
func Explain(s models.ConfidenceScore, windKnown, fallback bool) string {
	var weak []string
	if s.DistanceCertainty < Threshold {
		weak = append(weak, "distance match marginal")
	}
	if s.ElevationCertainty < Threshold {
		weak = append(weak, "elevation estimated")
	}
	if s.WindCertainty < Threshold {
		if windKnown {
			weak = append(weak, "wind variable")
		} else {
			weak = append(weak, "wind estimated")
		}
	}
	if s.LieCertainty < Threshold {
		weak = append(weak, "challenging lie")
	}
	if s.PlayerDataQuality < Threshold {
		weak = append(weak, "default distances")
	}

	low := 0
	for _, f := range []float64{s.DistanceCertainty, s.ElevationCertainty, s.WindCertainty, s.LieCertainty, s.PlayerDataQuality} {
		if f < LowThreshold {
			low++
		}
	}

	var msg string
	switch {
	case len(weak) == 0:
		msg = "High confidence: great club match with reliable data."
	case len(weak) <= 2 && low < 2:
		msg = "Moderate confidence: " + strings.Join(weak, ", ") + "."
	default:
		msg = "Low confidence: " + strings.Join(weak, ", ") + "."
	}
	if fallback {
		msg += " " + fallbackNote
	}
	return msg
}
