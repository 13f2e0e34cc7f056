// Package roundctx reads how a round is going and tempers shot strategy to match.
package roundctx

import "github.com/stitts-dev/caddie/internal/models"

type Momentum string

const (
	MomentumHot    Momentum = "hot"
	MomentumSteady Momentum = "steady"
	MomentumCold   Momentum = "cold"
)

type Phase string

const (
	PhaseEarly   Phase = "early"
	PhaseMiddle  Phase = "middle"
	PhaseClosing Phase = "closing"
)

// Difficulty buckets a hole by its handicap index
type Difficulty string

const (
	DifficultyHard    Difficulty = "hard"
	DifficultyAverage Difficulty = "average"
	DifficultyEasy    Difficulty = "easy"
)

// Lean is the direction a round situation pushes strategy
type Lean string

const (
	LeanConservative Lean = "conservative"
	LeanStandard     Lean = "standard"
	LeanAggressive   Lean = "aggressive"
)

// Adjustment is a suggested lean and how strongly to apply it, 0..1
type Adjustment struct {
	Lean      Lean    `json:"lean"`
	Magnitude float64 `json:"magnitude"`
}

// Assessment is everything derived from a round context
type Assessment struct {
	Momentum   Momentum   `json:"momentum"`
	Phase      Phase      `json:"phase"`
	Adjustment Adjustment `json:"adjustment"`
	Note       string     `json:"caddie_note"`
	// Override is set when the requested strategy should be replaced
	Override bool `json:"override"`
}

// CalculateMomentum reads the last three holes. Fewer than three is steady.
func CalculateMomentum(scores, pars []int) Momentum {
	if len(scores) < 3 || len(pars) < 3 {
		return MomentumSteady
	}
	scores, pars = scores[len(scores)-3:], pars[len(pars)-3:]

	var total, birdies int
	for i := range scores {
		rel := scores[i] - pars[i]
		if rel >= 2 {
			return MomentumCold
		}
		if rel < 0 {
			birdies++
		}
		total += rel
	}
	avg := float64(total) / 3

	switch {
	case birdies >= 2, avg <= -0.5:
		return MomentumHot
	case avg >= 1.0:
		return MomentumCold
	}
	return MomentumSteady
}

// PhaseOf maps a hole number onto early (1-6), middle (7-12) or closing (13-18)
func PhaseOf(hole int) Phase {
	switch {
	case hole <= 6:
		return PhaseEarly
	case hole <= 12:
		return PhaseMiddle
	}
	return PhaseClosing
}

// DifficultyOf treats handicap 1-6 as hard and 13-18 as easy. Unknown is average.
func DifficultyOf(handicapIndex int) Difficulty {
	switch {
	case handicapIndex >= 1 && handicapIndex <= 6:
		return DifficultyHard
	case handicapIndex >= 13 && handicapIndex <= 18:
		return DifficultyEasy
	}
	return DifficultyAverage
}

// StrategyAdjustment suggests a lean for the situation
func StrategyAdjustment(m Momentum, p Phase, scoreToPar int, d Difficulty) Adjustment {
	switch {
	case m == MomentumCold:
		return Adjustment{LeanConservative, 0.8}
	case m == MomentumHot && p == PhaseClosing:
		return Adjustment{LeanStandard, 0.5}
	case m == MomentumHot:
		return Adjustment{LeanAggressive, 0.6}
	case p == PhaseClosing && scoreToPar <= 0:
		return Adjustment{LeanConservative, 0.7}
	case p == PhaseClosing && scoreToPar > 3 && d == DifficultyEasy:
		return Adjustment{LeanAggressive, 0.8}
	}
	return Adjustment{LeanStandard, 0.5}
}

// CaddieNote picks the line a caddie would say walking to the ball
func CaddieNote(m Momentum, p Phase, scoreToPar, lastScore, lastPar, holePar int, d Difficulty) string {
	switch {
	case lastPar > 0 && lastScore >= lastPar+2:
		return "Let's just find the fairway here and give ourselves a look. Shake off that last one."
	case m == MomentumHot && d == DifficultyEasy && holePar == 3:
		return "Good number here. This is a birdie hole for you, let's be aggressive to the pin."
	case m == MomentumHot && d == DifficultyEasy:
		return "You're swinging well. Trust your line and be aggressive."
	case m == MomentumHot:
		return "Stay patient. You're playing great golf."
	case p == PhaseClosing && scoreToPar <= 0 && d == DifficultyEasy:
		return "Smart play here. Let's take what the hole gives us."
	case p == PhaseClosing && scoreToPar <= 0:
		return "Conservative is smart. Protect your score."
	case p == PhaseClosing && scoreToPar > 3 && d == DifficultyEasy:
		return "We need this one. Birdie opportunity, let's attack it."
	case p == PhaseClosing && scoreToPar > 3:
		return "Stay aggressive but smart. Par is fine here."
	case p == PhaseEarly && lastPar > 0 && lastScore == lastPar+1:
		return "Plenty of golf left. Let's get that shot back."
	case holePar == 3:
		return "Good par 3. Trust your distance."
	case holePar == 5:
		return "Scoring hole. Let's make birdie."
	}
	return "Fairway first, then we'll go at the pin."
}

// ShouldOverride reports whether the situation trumps the player's stated strategy
func ShouldOverride(m Momentum, a Adjustment) bool {
	return m == MomentumCold && a.Lean == LeanConservative
}

// Assess derives the full round assessment for a hole
func Assess(rc models.RoundContext, hole models.Hole) Assessment {
	momentum := CalculateMomentum(rc.LastScores, rc.LastPars)
	number := rc.CurrentHole
	if number == 0 {
		number = hole.Number
	}
	phase := PhaseOf(number)
	difficulty := DifficultyOf(hole.HandicapIndex)
	adj := StrategyAdjustment(momentum, phase, rc.ScoreToPar, difficulty)

	var lastScore, lastPar int
	if n := len(rc.LastScores); n > 0 && len(rc.LastPars) > 0 {
		lastScore = rc.LastScores[n-1]
		lastPar = rc.LastPars[len(rc.LastPars)-1]
	}

	return Assessment{
		Momentum:   momentum,
		Phase:      phase,
		Adjustment: adj,
		Note:       CaddieNote(momentum, phase, rc.ScoreToPar, lastScore, lastPar, hole.Par, difficulty),
		Override:   ShouldOverride(momentum, adj),
	}
}

// ApplyStrategy returns the strategy to play given the assessment
func ApplyStrategy(requested models.PinStrategy, a Assessment) models.PinStrategy {
	if a.Override {
		return models.StrategyConservative
	}
	return requested
}
