package recommendation

import (
	"fmt"
	"sort"

	"github.com/stitts-dev/caddie/internal/models"
)

// alternatives offers at most one "less club" and one "more club" option.
// Ranked viable clubs are considered first, then the rest of the bag by how
// close each gets to the target.
func alternatives(primary *candidate, viable, all []*candidate, target float64) []models.AlternativeClub {
	pool := make([]*candidate, 0, len(all))
	seen := map[int]bool{primary.order: true}
	for _, c := range viable {
		if !seen[c.order] {
			seen[c.order] = true
			pool = append(pool, c)
		}
	}
	rest := make([]*candidate, 0, len(all))
	for _, c := range all {
		if !seen[c.order] {
			rest = append(rest, c)
		}
	}
	sort.SliceStable(rest, func(i, j int) bool {
		return rest[i].absDiff() < rest[j].absDiff()
	})
	pool = append(pool, rest...)

	var less, more *candidate
	for _, c := range pool {
		switch {
		case less == nil && c.total() <= primary.total()-materialDiffYards:
			less = c
		case more == nil && c.total() >= primary.total()+materialDiffYards:
			more = c
		}
	}

	out := make([]models.AlternativeClub, 0, maxAlternatives)
	for _, c := range pool {
		if c == less || c == more {
			out = append(out, alternativeFor(c, primary, target))
		}
	}
	return out
}

func alternativeFor(c, primary *candidate, target float64) models.AlternativeClub {
	alt := models.AlternativeClub{
		Club:       c.club.Club,
		ClubName:   c.club.Club.DisplayName(),
		CarryYards: c.result.CarryYards,
		TotalYards: c.total(),
	}
	if c.total() < primary.total() {
		alt.Scenario = "If you want safety or wind picks up"
		alt.Target = fmt.Sprintf("Lay up to %.0f yards", c.total())
	} else {
		alt.Scenario = "If you want more club or wind dies"
		alt.Target = fmt.Sprintf("Take dead aim, %.0f yards", c.total())
	}
	alt.Rationale = rationale(c, primary, target)
	return alt
}

func rationale(c, primary *candidate, target float64) string {
	if c.total() < primary.total() {
		if shortOfTrouble(c, primary) {
			return "Lay up short of hazard"
		}
		if c.total() < target-10 {
			return "Conservative play, lays up short and takes hazards out"
		}
		return "Safer option with less risk"
	}
	if c.total() > target+10 {
		return "Aggressive play, carries hazards and goes long"
	}
	return "More club for confidence"
}

// shortOfTrouble reports whether c stops before a high-risk hazard the
// primary club brings into play
func shortOfTrouble(c, primary *candidate) bool {
	if c.hazards.HighRiskCount() >= primary.hazards.HighRiskCount() {
		return false
	}
	for _, h := range primary.hazards.HighRisk() {
		if c.total()+c.club.DispersionYards < h.DistanceFromBall {
			return true
		}
	}
	return false
}
