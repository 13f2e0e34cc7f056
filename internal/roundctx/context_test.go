package roundctx

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stitts-dev/caddie/internal/models"
)

func TestCalculateMomentum(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		pars   []int
		want   Momentum
	}{
		{"not enough holes", []int{4, 4}, []int{4, 4}, MomentumSteady},
		{"pars", []int{4, 3, 5}, []int{4, 3, 5}, MomentumSteady},
		{"double bogey", []int{3, 4, 6}, []int{3, 4, 4}, MomentumCold},
		{"two birdies", []int{3, 3, 5}, []int{4, 4, 4}, MomentumHot},
		{"one birdie two pars", []int{3, 4, 4}, []int{4, 4, 4}, MomentumSteady},
		{"three bogeys", []int{5, 5, 5}, []int{4, 4, 4}, MomentumCold},
		{"uses last three", []int{8, 4, 3, 3}, []int{4, 4, 4, 4}, MomentumHot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateMomentum(tt.scores, tt.pars))
		})
	}
}

func TestPhaseAndDifficulty(t *testing.T) {
	assert.Equal(t, PhaseEarly, PhaseOf(1))
	assert.Equal(t, PhaseEarly, PhaseOf(6))
	assert.Equal(t, PhaseMiddle, PhaseOf(7))
	assert.Equal(t, PhaseMiddle, PhaseOf(12))
	assert.Equal(t, PhaseClosing, PhaseOf(13))

	assert.Equal(t, DifficultyHard, DifficultyOf(1))
	assert.Equal(t, DifficultyAverage, DifficultyOf(9))
	assert.Equal(t, DifficultyEasy, DifficultyOf(18))
	assert.Equal(t, DifficultyAverage, DifficultyOf(0))
}

func TestStrategyAdjustment(t *testing.T) {
	assert.Equal(t, Adjustment{LeanConservative, 0.8}, StrategyAdjustment(MomentumCold, PhaseEarly, 5, DifficultyEasy))
	assert.Equal(t, Adjustment{LeanAggressive, 0.6}, StrategyAdjustment(MomentumHot, PhaseMiddle, -2, DifficultyHard))
	assert.Equal(t, Adjustment{LeanStandard, 0.5}, StrategyAdjustment(MomentumHot, PhaseClosing, -2, DifficultyHard))
	assert.Equal(t, Adjustment{LeanConservative, 0.7}, StrategyAdjustment(MomentumSteady, PhaseClosing, 0, DifficultyHard))
	assert.Equal(t, Adjustment{LeanAggressive, 0.8}, StrategyAdjustment(MomentumSteady, PhaseClosing, 5, DifficultyEasy))
	assert.Equal(t, Adjustment{LeanStandard, 0.5}, StrategyAdjustment(MomentumSteady, PhaseClosing, 5, DifficultyHard))
}

func TestCaddieNote(t *testing.T) {
	assert.Contains(t, CaddieNote(MomentumSteady, PhaseMiddle, 2, 7, 4, 4, DifficultyAverage), "Shake off that last one")
	assert.Contains(t, CaddieNote(MomentumHot, PhaseMiddle, -2, 3, 4, 3, DifficultyEasy), "birdie hole")
	assert.Contains(t, CaddieNote(MomentumSteady, PhaseClosing, -1, 4, 4, 4, DifficultyHard), "Protect your score")
	assert.Contains(t, CaddieNote(MomentumSteady, PhaseEarly, 1, 5, 4, 4, DifficultyAverage), "Plenty of golf left")
	assert.Equal(t, "Scoring hole. Let's make birdie.", CaddieNote(MomentumSteady, PhaseMiddle, 1, 4, 4, 5, DifficultyAverage))
	assert.Equal(t, "Fairway first, then we'll go at the pin.", CaddieNote(MomentumSteady, PhaseMiddle, 1, 0, 0, 4, DifficultyAverage))
}

func TestAssessColdOverridesStrategy(t *testing.T) {
	rc := models.RoundContext{
		CurrentHole: 8,
		ScoreToPar:  6,
		LastScores:  []int{4, 5, 7},
		LastPars:    []int{4, 4, 4},
	}
	a := Assess(rc, models.Hole{Number: 8, Par: 4, HandicapIndex: 3})

	assert.Equal(t, MomentumCold, a.Momentum)
	assert.Equal(t, PhaseMiddle, a.Phase)
	assert.True(t, a.Override)
	assert.Equal(t, models.StrategyConservative, ApplyStrategy(models.StrategyAggressive, a))
}

func TestAssessSteadyKeepsStrategy(t *testing.T) {
	rc := models.RoundContext{LastScores: []int{4, 4, 3}, LastPars: []int{4, 4, 3}}
	a := Assess(rc, models.Hole{Number: 14, Par: 3, HandicapIndex: 17})

	assert.Equal(t, PhaseClosing, a.Phase)
	assert.False(t, a.Override)
	assert.Equal(t, models.StrategyAggressive, ApplyStrategy(models.StrategyAggressive, a))
	assert.Equal(t, "Smart play here. Let's take what the hole gives us.", a.Note)
}
