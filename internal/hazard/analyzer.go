// Package hazard decides which hazards a shot brings into play.
package hazard

import (
	"math"
	"sort"

	"github.com/stitts-dev/caddie/internal/models"
)

// bunkerProximityYards is how close a bunker must sit to the expected
// landing spot to count as medium risk
const bunkerProximityYards = 10.0

// InCorridor reports whether a hazard distance lies in the landing corridor
// [expected-dispersion, expected+dispersion]
func InCorridor(expectedYards, dispersionYards, hazardYards float64) bool {
	return hazardYards >= expectedYards-dispersionYards && hazardYards <= expectedYards+dispersionYards
}

// Classify rates a hazard that is already in the landing corridor
func Classify(hazardType models.HazardType, expectedYards, hazardYards float64) models.RiskLevel {
	switch hazardType {
	case models.HazardWater, models.HazardOutOfBounds:
		return models.RiskHigh
	case models.HazardBunker:
		if math.Abs(expectedYards-hazardYards) < bunkerProximityYards {
			return models.RiskMedium
		}
		return models.RiskLow
	case models.HazardTrees:
		return models.RiskMedium
	}
	return models.RiskLow
}

// Analyze returns the hazards in play for a shot expected to travel
// expectedYards from a ball originYards down the hole from the tee. Hazard
// distances are measured from the tee, so they are shifted by the origin
// before the corridor test.
func Analyze(expectedYards, dispersionYards float64, hazards []models.Hazard, originYards float64) models.HazardAnalysis {
	inPlay := make([]models.HazardInPlay, 0, len(hazards))
	for _, h := range hazards {
		fromBall := h.DistanceFromTeeYards - originYards
		if !InCorridor(expectedYards, dispersionYards, fromBall) {
			continue
		}
		inPlay = append(inPlay, models.HazardInPlay{
			Type:                 h.Type,
			Location:             h.Location,
			DistanceFromTeeYards: h.DistanceFromTeeYards,
			DistanceFromBall:     fromBall,
			Risk:                 Classify(h.Type, expectedYards, fromBall),
			Description:          h.Description,
		})
	}

	sort.SliceStable(inPlay, func(i, j int) bool {
		return inPlay[i].Risk.Rank() > inPlay[j].Risk.Rank()
	})

	return models.HazardAnalysis{
		HazardsInPlay:     inPlay,
		SafeMissDirection: SafeMiss(inPlay),
	}
}

// SafeMiss picks the side away from high-risk trouble. Lateral trouble wins
// over short or long trouble; with nothing high-risk, or trouble balanced on
// both sides, the answer is center.
func SafeMiss(inPlay []models.HazardInPlay) models.Direction {
	counts := map[models.Direction]int{}
	for _, h := range inPlay {
		if h.Risk == models.RiskHigh {
			counts[h.Location]++
		}
	}

	for _, pair := range [][2]models.Direction{
		{models.DirectionLeft, models.DirectionRight},
		{models.DirectionShort, models.DirectionLong},
	} {
		a, b := pair[0], pair[1]
		switch {
		case counts[a] > counts[b]:
			return a.Opposite()
		case counts[b] > counts[a]:
			return b.Opposite()
		}
	}
	return models.DirectionCenter
}

// Nearest returns the in-play hazard closest to the ball, preferring higher risk on ties
func Nearest(inPlay []models.HazardInPlay) (models.HazardInPlay, bool) {
	if len(inPlay) == 0 {
		return models.HazardInPlay{}, false
	}
	best := inPlay[0]
	for _, h := range inPlay[1:] {
		if h.DistanceFromBall < best.DistanceFromBall ||
			(h.DistanceFromBall == best.DistanceFromBall && h.Risk.Rank() > best.Risk.Rank()) {
			best = h
		}
	}
	return best, true
}
