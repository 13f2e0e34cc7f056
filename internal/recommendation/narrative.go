package recommendation

import (
	"fmt"
	"strings"

	"github.com/stitts-dev/caddie/internal/hazard"
	"github.com/stitts-dev/caddie/internal/models"
	"github.com/stitts-dev/caddie/internal/roundctx"
)

// narrator renders the text parts of a recommendation
type narrator struct {
	hole     models.Hole
	shot     models.ShotContext
	strategy models.PinStrategy
	target   float64
	wind     models.WindRelative
	primary  *candidate
}

func (n narrator) highRisk() []models.HazardInPlay {
	return n.primary.hazards.HighRisk()
}

func describe(hs []models.HazardInPlay) string {
	parts := make([]string, 0, len(hs))
	for _, h := range hs {
		parts = append(parts, fmt.Sprintf("%s %s", h.Type.Label(), h.Location))
	}
	return strings.Join(parts, ", ")
}

func (n narrator) targetArea() string {
	inPlay := n.primary.hazards.HazardsInPlay
	pin := n.shot.PinLocation
	if len(inPlay) == 0 {
		return fmt.Sprintf("Aim %s of green, no major hazards", pin)
	}
	if high := n.highRisk(); len(high) > 0 {
		return fmt.Sprintf("Aim %s, avoid %s", n.primary.hazards.SafeMissDirection, describe(high))
	}
	nearest, _ := hazard.Nearest(inPlay)
	return fmt.Sprintf("Aim center, %s pin position, %s %s in range", pin, nearest.Type.Label(), nearest.Location)
}

func (n narrator) strategyNarrative() string {
	if high := n.highRisk(); len(high) > 0 {
		switch n.strategy {
		case models.StrategyConservative:
			return fmt.Sprintf("Conservative play recommended: high-risk %s in play. Play for center of green.", high[0].Type.Label())
		case models.StrategyAggressive:
			return fmt.Sprintf("Attacking line: %s %s is in play, so commit fully and carry it.", high[0].Type.Label(), high[0].Location)
		}
		return fmt.Sprintf("Caution: %s %s is in play. Commit to your line.", high[0].Type.Label(), high[0].Location)
	}
	switch n.shot.PinLocation {
	case models.PinFront:
		return "Pin is accessible at the front of the green, good birdie opportunity."
	case models.PinBack:
		return "Back pin. Take enough club, don't leave it short."
	}
	return "Clean look at the flag. Trust your distance."
}

func (n narrator) caddieCall(targetArea string) string {
	return fmt.Sprintf("%s, %s. Trust it.", n.primary.club.Club.DisplayName(), strings.ToLower(targetArea))
}

func (n narrator) caddieNote(round *roundctx.Assessment) string {
	if round != nil {
		return round.Note
	}
	return roundctx.CaddieNote(roundctx.MomentumSteady, roundctx.PhaseMiddle, 0, 0, 0, n.hole.Par, roundctx.DifficultyAverage)
}

func (n narrator) why() string {
	b := n.primary.result.Breakdown
	var parts []string
	if elev := b.CourseElevationYards + b.ShotElevationYards; elev > 0 {
		parts = append(parts, fmt.Sprintf("%+.1fy elevation", elev))
	}
	if b.WindYards != 0 {
		parts = append(parts, fmt.Sprintf("%+.1fy %s", b.WindYards, n.wind.Label()))
	}
	if b.TemperatureYards != 0 {
		parts = append(parts, fmt.Sprintf("%+.1fy temp", b.TemperatureYards))
	}
	if high := n.highRisk(); len(high) > 0 {
		names := make([]string, 0, len(high))
		for _, h := range high {
			names = append(names, h.Type.Label())
		}
		parts = append(parts, "avoid "+strings.Join(names, ", "))
	}

	club := n.primary.club.Club.DisplayName()
	if len(parts) == 0 {
		return fmt.Sprintf("%s is the right club for %.0f yards.", club, n.target)
	}
	return fmt.Sprintf("%s plays %.1f yards here (%s).", club, n.primary.total(), strings.Join(parts, ", "))
}

func (n narrator) optimalMiss() string {
	miss := n.primary.hazards.SafeMissDirection
	if miss == "" || miss == models.DirectionCenter {
		return "Center is fine"
	}
	return fmt.Sprintf("Miss %s is safe", miss)
}

func (n narrator) dangerZone() string {
	high := n.highRisk()
	if len(high) == 0 {
		return "No major danger zones"
	}
	return "Do not miss " + describe(high)
}

func (n narrator) riskReward() models.RiskReward {
	high := n.highRisk()
	if n.strategy == models.StrategyAggressive {
		rr := models.RiskReward{
			AggressiveUpside:     fmt.Sprintf("Birdie putt from %d feet", 10+n.hole.Par*2),
			AggressiveDownside:   "Tough up-and-down",
			ConservativeUpside:   "25-30 foot putt, makeable for birdie",
			ConservativeDownside: "Easy two-putt par",
		}
		if len(high) > 0 {
			rr.AggressiveDownside = fmt.Sprintf("Possible %s if missed", high[0].Type.Label())
		}
		return rr
	}

	rr := models.RiskReward{
		AggressiveUpside:     "Close look at birdie",
		AggressiveDownside:   "Difficult recovery",
		ConservativeUpside:   "Safe par with birdie chance",
		ConservativeDownside: "Comfortable two-putt",
	}
	if len(high) > 0 {
		rr.AggressiveDownside = fmt.Sprintf("Risk of %s", high[0].Type.Label())
	}
	return rr
}
