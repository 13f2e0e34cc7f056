// Package recommendation picks a club and a plan for a shot. It composes the
// distance, hazard and confidence packages and never performs I/O, so a
// single Engine is safe for concurrent use.
package recommendation

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/stitts-dev/caddie/internal/confidence"
	"github.com/stitts-dev/caddie/internal/distance"
	"github.com/stitts-dev/caddie/internal/hazard"
	"github.com/stitts-dev/caddie/internal/models"
	"github.com/stitts-dev/caddie/internal/roundctx"
)

// ErrInvalidInput is returned when the input bundle breaks a precondition
// that boundary validation should already have caught
var ErrInvalidInput = errors.New("invalid recommendation input")

const (
	highRiskPenalty   = 15.0
	mediumRiskPenalty = 5.0
	strategyBonus     = 10.0
	attackWindowYards = 5.0
	materialDiffYards = 5.0
	maxAlternatives   = 2
)

// Input is the fully resolved bundle a recommendation is computed from
type Input struct {
	Baseline models.PlayerBaseline
	Hole     models.Hole
	Weather  models.WeatherSnapshot
	Shot     models.ShotContext
}

// Engine produces caddie recommendations
type Engine struct {
	measuredClubs int
}

// Option configures an Engine
type Option func(*Engine)

// WithMeasuredClubThreshold sets how many measured clubs count as good player data
func WithMeasuredClubThreshold(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.measuredClubs = n
		}
	}
}

// NewEngine creates an Engine
func NewEngine(opts ...Option) *Engine {
	e := &Engine{measuredClubs: confidence.DefaultMeasuredClubs}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type candidate struct {
	club    models.ClubDistance
	order   int
	result  distance.Result
	diff    float64
	hazards models.HazardAnalysis
	score   float64
}

func (c *candidate) absDiff() float64 { return math.Abs(c.diff) }

func (c *candidate) total() float64 { return c.result.TotalYards }

// Recommend computes a recommendation. The result depends only on the input.
func (e *Engine) Recommend(in Input) (*models.CaddieRecommendation, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}

	shot := withDefaults(in.Shot)
	strategy := shot.Strategy
	var round *roundctx.Assessment
	if shot.Round != nil {
		a := roundctx.Assess(*shot.Round, in.Hole)
		round = &a
		strategy = roundctx.ApplyStrategy(strategy, a)
	}

	cond := distance.ConditionsFor(in.Hole, in.Weather, shot)
	target := shot.DistanceToPinYards
	origin := math.Max(0, in.Hole.DistanceToPinYards-target)

	all := make([]*candidate, 0, len(in.Baseline.Clubs))
	for i, club := range in.Baseline.Clubs {
		res := distance.Adjust(club, cond)
		all = append(all, &candidate{
			club:    club,
			order:   i,
			result:  res,
			diff:    res.TotalYards - target,
			hazards: hazard.Analyze(res.TotalYards, club.DispersionYards, in.Hole.Hazards, origin),
		})
	}

	viable := reachable(all)
	fallback := len(viable) == 0
	if fallback {
		viable = nearestPair(all)
	}

	for _, c := range viable {
		c.score = matchScore(c)
		c.score += strategyAdjustment(c, strategy)
	}
	rank(viable)
	primary := viable[0]

	conf := confidence.Score(confidence.Inputs{
		TargetYards:         target,
		AdjustedYards:       primary.total(),
		DispersionYards:     primary.club.DispersionYards,
		ElevationKnown:      cond.ShotElevationFeet != nil,
		ElevationChangeFeet: cond.ElevationChange(),
		WindKnown:           cond.Wind.Known,
		WindSpeedMPH:        cond.Wind.SpeedMPH,
		Lie:                 shot.Lie,
		LieQuality:          shot.LieQuality,
		MeasuredClubs:       in.Baseline.MeasuredClubCount(),
		MeasuredNeeded:      e.measuredClubs,
		Fallback:            fallback,
	})

	n := narrator{
		hole:     in.Hole,
		shot:     shot,
		strategy: strategy,
		target:   target,
		wind:     cond.Wind.Relative,
		primary:  primary,
	}
	targetArea := n.targetArea()

	rec := &models.CaddieRecommendation{
		Primary: models.PrimaryRecommendation{
			Club:              primary.club.Club,
			ClubName:          primary.club.Club.DisplayName(),
			TargetArea:        targetArea,
			CarryYards:        primary.result.CarryYards,
			TotalYards:        primary.total(),
			DispersionYards:   primary.club.DispersionYards,
			ConfidencePercent: conf.Percent(),
		},
		Adjustments:       primary.result.Breakdown,
		Alternatives:      alternatives(primary, viable, all, target),
		Hazards:           primary.hazards,
		Confidence:        conf,
		Strategy:          strategy,
		StrategyNarrative: n.strategyNarrative(),
		CaddieCall:        n.caddieCall(targetArea),
		CaddieNote:        n.caddieNote(round),
		Why:               n.why(),
		OptimalMiss:       n.optimalMiss(),
		DangerZone:        n.dangerZone(),
		RiskReward:        n.riskReward(),
		Fallback:          fallback,
	}
	return rec, nil
}

func checkInput(in Input) error {
	if len(in.Baseline.Clubs) == 0 {
		return fmt.Errorf("%w: player %q has no clubs", ErrInvalidInput, in.Baseline.PlayerID)
	}
	if in.Shot.DistanceToPinYards <= 0 {
		return fmt.Errorf("%w: distance to pin must be positive", ErrInvalidInput)
	}
	for _, c := range in.Baseline.Clubs {
		if c.DispersionYards <= 0 {
			return fmt.Errorf("%w: %s dispersion must be positive", ErrInvalidInput, c.Club)
		}
		if c.CarryYards < 0 || c.TotalYards < c.CarryYards {
			return fmt.Errorf("%w: %s must satisfy total >= carry >= 0", ErrInvalidInput, c.Club)
		}
	}
	return nil
}

func withDefaults(shot models.ShotContext) models.ShotContext {
	if shot.Lie == "" {
		shot.Lie = models.LieFairway
	}
	if shot.LieQuality == "" {
		shot.LieQuality = models.LieNormal
	}
	if shot.Strategy == "" {
		shot.Strategy = models.StrategyBalanced
	}
	if shot.PinLocation == "" {
		shot.PinLocation = models.PinCenter
	}
	return shot
}

func reachable(all []*candidate) []*candidate {
	var out []*candidate
	for _, c := range all {
		if c.absDiff() <= c.club.DispersionYards {
			out = append(out, c)
		}
	}
	return out
}

// nearestPair returns the closest club at or beyond the target and the
// closest club short of it
func nearestPair(all []*candidate) []*candidate {
	var over, under *candidate
	for _, c := range all {
		if c.diff >= 0 {
			if over == nil || c.diff < over.diff {
				over = c
			}
		} else if under == nil || c.diff > under.diff {
			under = c
		}
	}

	var out []*candidate
	for _, c := range []*candidate{over, under} {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// matchScore rewards closeness to the target in raw yards, so a nearer club
// always outscores a farther one before hazard and strategy adjustments
func matchScore(c *candidate) float64 {
	score := math.Max(0, 100-c.absDiff())
	return score - highRiskPenalty*float64(c.hazards.HighRiskCount())
}

func strategyAdjustment(c *candidate, strategy models.PinStrategy) float64 {
	switch strategy {
	case models.StrategyConservative:
		adj := -mediumRiskPenalty * float64(c.hazards.MediumRiskCount())
		if c.diff < 0 {
			adj += strategyBonus
		}
		return adj
	case models.StrategyAggressive:
		if c.absDiff() < attackWindowYards {
			return strategyBonus
		}
	}
	return 0
}

// rank orders by score, then closeness to the target, then bag order
func rank(cs []*candidate) {
	sort.SliceStable(cs, func(i, j int) bool {
		if cs[i].score != cs[j].score {
			return cs[i].score > cs[j].score
		}
		if cs[i].absDiff() != cs[j].absDiff() {
			return cs[i].absDiff() < cs[j].absDiff()
		}
		return cs[i].order < cs[j].order
	})
}
