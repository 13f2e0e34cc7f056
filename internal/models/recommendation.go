package models

// ConfidenceScore holds the certainty factors behind a recommendation
type ConfidenceScore struct {
	DistanceCertainty  float64 `json:"distance_certainty"`
	ElevationCertainty float64 `json:"elevation_certainty"`
	WindCertainty      float64 `json:"wind_certainty"`
	LieCertainty       float64 `json:"lie_certainty"`
	PlayerDataQuality  float64 `json:"player_data_quality"`
	OverallConfidence  float64 `json:"overall_confidence"`
	Explanation        string  `json:"explanation"`
}

// Percent returns overall confidence as a whole percentage
func (c ConfidenceScore) Percent() int {
	return int(c.OverallConfidence*100 + 0.5)
}

// AdjustmentBreakdown itemizes each environmental effect on the total distance
type AdjustmentBreakdown struct {
	TemperatureYards     float64      `json:"temperature_yards"`
	CourseElevationYards float64      `json:"course_elevation_yards"`
	ShotElevationYards   float64      `json:"shot_elevation_yards"`
	WindYards            float64      `json:"wind_yards"`
	RainYards            float64      `json:"rain_yards"`
	LieYards             float64      `json:"lie_yards"`
	RollYards            float64      `json:"roll_yards"`
	CourseElevationPct   float64      `json:"course_elevation_percent"`
	WindPct              float64      `json:"wind_percent"`
	RainPct              float64      `json:"rain_percent"`
	LiePct               float64      `json:"lie_percent"`
	WindRelative         WindRelative `json:"wind_relative"`
	Summary              []string     `json:"human_readable_summary"`
}

// TotalYards sums every yard delta in the breakdown
func (a AdjustmentBreakdown) TotalYards() float64 {
	return a.TemperatureYards + a.CourseElevationYards + a.ShotElevationYards +
		a.WindYards + a.RainYards + a.LieYards + a.RollYards
}

// PrimaryRecommendation is the club the caddie hands over
type PrimaryRecommendation struct {
	Club              ClubType `json:"club"`
	ClubName          string   `json:"club_name"`
	TargetArea        string   `json:"target_area"`
	CarryYards        float64  `json:"expected_carry_yards"`
	TotalYards        float64  `json:"expected_total_yards"`
	DispersionYards   float64  `json:"dispersion_yards"`
	ConfidencePercent int      `json:"confidence_percent"`
}

// AlternativeClub is a secondary option with a different strategic purpose
type AlternativeClub struct {
	Club       ClubType `json:"club"`
	ClubName   string   `json:"club_name"`
	CarryYards float64  `json:"expected_carry_yards"`
	TotalYards float64  `json:"expected_total_yards"`
	Target     string   `json:"target"`
	Scenario   string   `json:"scenario"`
	Rationale  string   `json:"rationale"`
}

// HazardInPlay is a hazard inside the landing corridor of a shot
type HazardInPlay struct {
	Type                 HazardType `json:"hazard_type"`
	Location             Direction  `json:"location"`
	DistanceFromTeeYards float64    `json:"distance_from_tee_yards"`
	DistanceFromBall     float64    `json:"distance_from_ball_yards"`
	Risk                 RiskLevel  `json:"risk_level"`
	Description          string     `json:"description,omitempty"`
}

// HazardAnalysis is the hazard exposure of one club choice
type HazardAnalysis struct {
	HazardsInPlay     []HazardInPlay `json:"hazards_in_play"`
	SafeMissDirection Direction      `json:"safe_miss_direction"`
}

// HighRiskCount counts hazards rated high
func (h HazardAnalysis) HighRiskCount() int {
	return h.countRisk(RiskHigh)
}

// MediumRiskCount counts hazards rated medium
func (h HazardAnalysis) MediumRiskCount() int {
	return h.countRisk(RiskMedium)
}

func (h HazardAnalysis) countRisk(level RiskLevel) int {
	n := 0
	for _, hz := range h.HazardsInPlay {
		if hz.Risk == level {
			n++
		}
	}
	return n
}

// HighRisk returns the high-risk hazards in their ranked order
func (h HazardAnalysis) HighRisk() []HazardInPlay {
	var out []HazardInPlay
	for _, hz := range h.HazardsInPlay {
		if hz.Risk == RiskHigh {
			out = append(out, hz)
		}
	}
	return out
}

// RiskReward frames the aggressive and conservative outcomes
type RiskReward struct {
	AggressiveUpside     string `json:"aggressive_upside"`
	AggressiveDownside   string `json:"aggressive_downside"`
	ConservativeUpside   string `json:"conservative_upside"`
	ConservativeDownside string `json:"conservative_downside"`
}

// CaddieRecommendation is the complete output of one recommendation
type CaddieRecommendation struct {
	Primary           PrimaryRecommendation `json:"primary"`
	Adjustments       AdjustmentBreakdown   `json:"adjustments"`
	Alternatives      []AlternativeClub     `json:"alternatives"`
	Hazards           HazardAnalysis        `json:"hazard_analysis"`
	Confidence        ConfidenceScore       `json:"confidence"`
	Strategy          PinStrategy           `json:"strategy"`
	StrategyNarrative string                `json:"strategy_narrative"`
	CaddieCall        string                `json:"caddie_call"`
	CaddieNote        string                `json:"caddie_note"`
	Why               string                `json:"why"`
	OptimalMiss       string                `json:"optimal_miss"`
	DangerZone        string                `json:"danger_zone"`
	RiskReward        RiskReward            `json:"risk_reward"`
	Fallback          bool                  `json:"fallback"`
}
