package handlers

import (
	"fmt"
	"strings"

	"github.com/stitts-dev/caddie/internal/models"
)

// Loose vocabulary accepted from clients. Only this layer knows these words;
// everything past the handlers works with the closed model types.

var lieWords = map[string]struct {
	lie     models.Lie
	quality models.LieQuality
}{
	"tee":          {models.LieTee, models.LieNormal},
	"tee_box":      {models.LieTee, models.LieNormal},
	"fairway":      {models.LieFairway, models.LieNormal},
	"fw":           {models.LieFairway, models.LieNormal},
	"first_cut":    {models.LieSemiRough, models.LieNormal},
	"light_rough":  {models.LieSemiRough, models.LieNormal},
	"semi_rough":   {models.LieSemiRough, models.LieNormal},
	"rough":        {models.LieRough, models.LieNormal},
	"heavy_rough":  {models.LieRough, models.LieThick},
	"thick_rough":  {models.LieRough, models.LieThick},
	"deep_rough":   {models.LieRough, models.LieThick},
	"sand":         {models.LieBunker, models.LieNormal},
	"trap":         {models.LieBunker, models.LieNormal},
	"bunker":       {models.LieBunker, models.LieNormal},
	"fairway_sand": {models.LieBunker, models.LieNormal},
	"plugged":      {models.LieBunker, models.LiePlugged},
	"fried_egg":    {models.LieBunker, models.LiePlugged},
	"trees":        {models.LieWoods, models.LieNormal},
	"woods":        {models.LieWoods, models.LieNormal},
	"forest":       {models.LieWoods, models.LieNormal},
}

var windWords = map[string]models.WindRelative{
	"into":            models.WindHeadwind,
	"in":              models.WindHeadwind,
	"head":            models.WindHeadwind,
	"headwind":        models.WindHeadwind,
	"in_your_face":    models.WindHeadwind,
	"down":            models.WindTailwind,
	"downwind":        models.WindTailwind,
	"helping":         models.WindTailwind,
	"tail":            models.WindTailwind,
	"tailwind":        models.WindTailwind,
	"right_to_left":   models.WindCrosswindLeft,
	"crosswind_left":  models.WindCrosswindLeft,
	"left_to_right":   models.WindCrosswindRight,
	"crosswind_right": models.WindCrosswindRight,
	"calm":            models.WindCalm,
	"none":            models.WindCalm,
	"still":           models.WindCalm,
}

var strategyWords = map[string]models.PinStrategy{
	"safe":         models.StrategyConservative,
	"play_it_safe": models.StrategyConservative,
	"lay_up":       models.StrategyConservative,
	"conservative": models.StrategyConservative,
	"normal":       models.StrategyBalanced,
	"standard":     models.StrategyBalanced,
	"smart":        models.StrategyBalanced,
	"balanced":     models.StrategyBalanced,
	"attack":       models.StrategyAggressive,
	"go_for_it":    models.StrategyAggressive,
	"flag_hunting": models.StrategyAggressive,
	"aggressive":   models.StrategyAggressive,
}

var pinWords = map[string]models.PinLocation{
	"front":  models.PinFront,
	"short":  models.PinFront,
	"middle": models.PinCenter,
	"center": models.PinCenter,
	"centre": models.PinCenter,
	"back":   models.PinBack,
	"long":   models.PinBack,
}

var hazardWords = map[string]models.HazardType{
	"water":         models.HazardWater,
	"lake":          models.HazardWater,
	"pond":          models.HazardWater,
	"creek":         models.HazardWater,
	"sand":          models.HazardBunker,
	"trap":          models.HazardBunker,
	"bunker":        models.HazardBunker,
	"ob":            models.HazardOutOfBounds,
	"out_of_bounds": models.HazardOutOfBounds,
	"trees":         models.HazardTrees,
	"woods":         models.HazardTrees,
}

var clubWords = map[string]models.ClubType{
	"d":      models.ClubDriver,
	"dr":     models.ClubDriver,
	"1w":     models.ClubDriver,
	"3w":     models.ClubWood3,
	"3_wood": models.ClubWood3,
	"5w":     models.ClubWood5,
	"5_wood": models.ClubWood5,
	"hy":     models.ClubHybrid,
	"rescue": models.ClubHybrid,
	"pw":     models.ClubPitchingWedge,
	"gw":     models.ClubGapWedge,
	"aw":     models.ClubGapWedge,
	"sw":     models.ClubSandWedge,
	"lw":     models.ClubLobWedge,
}

// normalizeWord lowercases and joins words with underscores
func normalizeWord(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return strings.Join(strings.Fields(s), "_")
}

// mapLie resolves a lie and an optional explicit quality
func mapLie(raw, quality string) (models.Lie, models.LieQuality, error) {
	var lie models.Lie
	q := models.LieNormal
	if w := normalizeWord(raw); w != "" {
		entry, ok := lieWords[w]
		if !ok {
			return "", "", fmt.Errorf("unknown lie %q", raw)
		}
		lie, q = entry.lie, entry.quality
	}
	if strings.TrimSpace(quality) != "" {
		parsed, err := models.ParseLieQuality(normalizeWord(quality))
		if err != nil {
			return "", "", err
		}
		q = parsed
	}
	return lie, q, nil
}

func mapWind(raw string) (models.WindRelative, error) {
	w := normalizeWord(raw)
	if w == "" {
		return models.WindNone, nil
	}
	if rel, ok := windWords[w]; ok {
		return rel, nil
	}
	return "", fmt.Errorf("unknown wind %q", raw)
}

func mapStrategy(raw string) (models.PinStrategy, error) {
	w := normalizeWord(raw)
	if w == "" {
		return models.StrategyBalanced, nil
	}
	if s, ok := strategyWords[w]; ok {
		return s, nil
	}
	return "", fmt.Errorf("unknown strategy %q", raw)
}

func mapPin(raw string) (models.PinLocation, error) {
	w := normalizeWord(raw)
	if w == "" {
		return models.PinCenter, nil
	}
	if p, ok := pinWords[w]; ok {
		return p, nil
	}
	return "", fmt.Errorf("unknown pin location %q", raw)
}

func mapHazard(raw string) (models.HazardType, error) {
	if h, ok := hazardWords[normalizeWord(raw)]; ok {
		return h, nil
	}
	return "", fmt.Errorf("unknown hazard type %q", raw)
}

func mapDirection(raw string) (models.Direction, error) {
	w := normalizeWord(raw)
	switch w {
	case "middle":
		return models.DirectionCenter, nil
	case "over", "behind":
		return models.DirectionLong, nil
	}
	return models.ParseDirection(w)
}

// mapClub accepts canonical ids, short forms like "7i" and spoken forms like "7 iron"
func mapClub(raw string) (models.ClubType, error) {
	w := normalizeWord(raw)
	if c, ok := clubWords[w]; ok {
		return c, nil
	}
	if c, err := models.ParseClubType(w); err == nil {
		return c, nil
	}
	digits := strings.TrimSuffix(strings.TrimSuffix(strings.TrimSuffix(w, "_iron"), "iron"), "i")
	if len(digits) == 1 && digits[0] >= '2' && digits[0] <= '9' {
		return models.ParseClubType("iron_" + digits)
	}
	return "", fmt.Errorf("unknown club %q", raw)
}
