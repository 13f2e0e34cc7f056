package models

import (
	"fmt"
	"strings"
)

// ClubType identifies a club in a player's bag
type ClubType string

const (
	ClubDriver        ClubType = "driver"
	ClubWood3         ClubType = "wood_3"
	ClubWood5         ClubType = "wood_5"
	ClubHybrid        ClubType = "hybrid"
	ClubIron2         ClubType = "iron_2"
	ClubIron3         ClubType = "iron_3"
	ClubIron4         ClubType = "iron_4"
	ClubIron5         ClubType = "iron_5"
	ClubIron6         ClubType = "iron_6"
	ClubIron7         ClubType = "iron_7"
	ClubIron8         ClubType = "iron_8"
	ClubIron9         ClubType = "iron_9"
	ClubPitchingWedge ClubType = "pitching_wedge"
	ClubGapWedge      ClubType = "gap_wedge"
	ClubSandWedge     ClubType = "sand_wedge"
	ClubLobWedge      ClubType = "lob_wedge"
)

var clubDisplayNames = map[ClubType]string{
	ClubDriver:        "Driver",
	ClubWood3:         "3 Wood",
	ClubWood5:         "5 Wood",
	ClubHybrid:        "Hybrid",
	ClubIron2:         "2 Iron",
	ClubIron3:         "3 Iron",
	ClubIron4:         "4 Iron",
	ClubIron5:         "5 Iron",
	ClubIron6:         "6 Iron",
	ClubIron7:         "7 Iron",
	ClubIron8:         "8 Iron",
	ClubIron9:         "9 Iron",
	ClubPitchingWedge: "Pitching Wedge",
	ClubGapWedge:      "Gap Wedge",
	ClubSandWedge:     "Sand Wedge",
	ClubLobWedge:      "Lob Wedge",
}

// DisplayName returns the club as a golfer would say it
func (c ClubType) DisplayName() string {
	if name, ok := clubDisplayNames[c]; ok {
		return name
	}
	return strings.ReplaceAll(string(c), "_", " ")
}

// ParseClubType converts a raw club identifier into a ClubType
func ParseClubType(s string) (ClubType, error) {
	c := ClubType(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := clubDisplayNames[c]; !ok {
		return "", fmt.Errorf("unknown club type %q", s)
	}
	return c, nil
}

// MeasurementMethod records how a baseline distance was obtained
type MeasurementMethod string

const (
	MeasuredRangefinder   MeasurementMethod = "rangefinder"
	MeasuredGPSWatch      MeasurementMethod = "gps_watch"
	MeasuredCourseMarkers MeasurementMethod = "course_markers"
	MeasuredLaunchMonitor MeasurementMethod = "launch_monitor"
	MeasuredEstimated     MeasurementMethod = "estimated"
	MeasuredDefault       MeasurementMethod = "default"
)

// IsMeasured reports whether the distance came from a real measurement
func (m MeasurementMethod) IsMeasured() bool {
	switch m {
	case MeasuredRangefinder, MeasuredGPSWatch, MeasuredCourseMarkers, MeasuredLaunchMonitor:
		return true
	}
	return false
}

// ParseMeasurementMethod converts a raw method string
func ParseMeasurementMethod(s string) (MeasurementMethod, error) {
	m := MeasurementMethod(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case MeasuredRangefinder, MeasuredGPSWatch, MeasuredCourseMarkers, MeasuredLaunchMonitor, MeasuredEstimated, MeasuredDefault:
		return m, nil
	case "":
		return MeasuredEstimated, nil
	}
	return "", fmt.Errorf("unknown measurement method %q", s)
}

// HazardType is the kind of trouble on a hole
type HazardType string

const (
	HazardWater       HazardType = "water"
	HazardBunker      HazardType = "bunker"
	HazardOutOfBounds HazardType = "out_of_bounds"
	HazardTrees       HazardType = "trees"
)

// ParseHazardType converts a raw hazard type
func ParseHazardType(s string) (HazardType, error) {
	h := HazardType(strings.ToLower(strings.TrimSpace(s)))
	switch h {
	case HazardWater, HazardBunker, HazardOutOfBounds, HazardTrees:
		return h, nil
	}
	return "", fmt.Errorf("unknown hazard type %q", s)
}

// Label returns a readable hazard name
func (h HazardType) Label() string {
	if h == HazardOutOfBounds {
		return "OB"
	}
	return string(h)
}

// Direction is a qualitative side relative to the target line. Hazard
// locations and safe-miss directions share it.
type Direction string

const (
	DirectionLeft   Direction = "left"
	DirectionRight  Direction = "right"
	DirectionCenter Direction = "center"
	DirectionShort  Direction = "short"
	DirectionLong   Direction = "long"
)

// Opposite returns the side facing away from d
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	case DirectionShort:
		return DirectionLong
	case DirectionLong:
		return DirectionShort
	}
	return DirectionCenter
}

// ParseDirection converts a raw location string
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case DirectionLeft, DirectionRight, DirectionCenter, DirectionShort, DirectionLong:
		return d, nil
	}
	return "", fmt.Errorf("unknown direction %q", s)
}

// RiskLevel classifies how dangerous a hazard is for a given shot
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Rank orders risk levels so that higher is more dangerous
func (r RiskLevel) Rank() int {
	switch r {
	case RiskHigh:
		return 3
	case RiskMedium:
		return 2
	case RiskLow:
		return 1
	}
	return 0
}

// Compass is a 16-point compass direction the wind blows from. The zero
// value means no wind direction was reported.
type Compass string

const (
	CompassUnknown Compass = ""
	CompassCalm    Compass = "calm"
	CompassN       Compass = "N"
	CompassNNE     Compass = "NNE"
	CompassNE      Compass = "NE"
	CompassENE     Compass = "ENE"
	CompassE       Compass = "E"
	CompassESE     Compass = "ESE"
	CompassSE      Compass = "SE"
	CompassSSE     Compass = "SSE"
	CompassS       Compass = "S"
	CompassSSW     Compass = "SSW"
	CompassSW      Compass = "SW"
	CompassWSW     Compass = "WSW"
	CompassW       Compass = "W"
	CompassWNW     Compass = "WNW"
	CompassNW      Compass = "NW"
	CompassNNW     Compass = "NNW"
)

// CompassPoints lists the 16 points clockwise from north
var CompassPoints = []Compass{
	CompassN, CompassNNE, CompassNE, CompassENE,
	CompassE, CompassESE, CompassSE, CompassSSE,
	CompassS, CompassSSW, CompassSW, CompassWSW,
	CompassW, CompassWNW, CompassNW, CompassNNW,
}

// ParseCompass converts a raw compass string. Empty input yields CompassUnknown.
func ParseCompass(s string) (Compass, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return CompassUnknown, nil
	}
	if strings.EqualFold(trimmed, "calm") {
		return CompassCalm, nil
	}
	c := Compass(strings.ToUpper(trimmed))
	for _, p := range CompassPoints {
		if p == c {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown compass direction %q", s)
}

// GroundCondition is the moisture state of the fairways
type GroundCondition string

const (
	GroundDry   GroundCondition = "dry"
	GroundDamp  GroundCondition = "damp"
	GroundWet   GroundCondition = "wet"
	GroundMuddy GroundCondition = "muddy"
)

// IsWet reports whether the ground holds enough water to matter
func (g GroundCondition) IsWet() bool {
	return g == GroundDamp || g == GroundWet || g == GroundMuddy
}

// ParseGroundCondition converts a raw ground condition, defaulting to dry
func ParseGroundCondition(s string) (GroundCondition, error) {
	g := GroundCondition(strings.ToLower(strings.TrimSpace(s)))
	switch g {
	case "":
		return GroundDry, nil
	case GroundDry, GroundDamp, GroundWet, GroundMuddy:
		return g, nil
	}
	return "", fmt.Errorf("unknown ground condition %q", s)
}

// Lie is the surface the ball rests on
type Lie string

const (
	LieTee       Lie = "tee"
	LieFairway   Lie = "fairway"
	LieSemiRough Lie = "semi_rough"
	LieRough     Lie = "rough"
	LieBunker    Lie = "bunker"
	LieWoods     Lie = "woods"
)

// ParseLie converts a raw lie string
func ParseLie(s string) (Lie, error) {
	l := Lie(strings.ToLower(strings.TrimSpace(s)))
	switch l {
	case LieTee, LieFairway, LieSemiRough, LieRough, LieBunker, LieWoods:
		return l, nil
	}
	return "", fmt.Errorf("unknown lie %q", s)
}

// LieQuality refines the lie
type LieQuality string

const (
	LieClean   LieQuality = "clean"
	LieNormal  LieQuality = "normal"
	LieThick   LieQuality = "thick"
	LiePlugged LieQuality = "plugged"
)

// ParseLieQuality converts a raw lie quality, defaulting to normal
func ParseLieQuality(s string) (LieQuality, error) {
	q := LieQuality(strings.ToLower(strings.TrimSpace(s)))
	switch q {
	case "":
		return LieNormal, nil
	case LieClean, LieNormal, LieThick, LiePlugged:
		return q, nil
	}
	return "", fmt.Errorf("unknown lie quality %q", s)
}

// PinStrategy is the player's appetite for risk on this shot
type PinStrategy string

const (
	StrategyAggressive   PinStrategy = "aggressive"
	StrategyBalanced     PinStrategy = "balanced"
	StrategyConservative PinStrategy = "conservative"
)

// ParsePinStrategy converts a raw strategy, defaulting to balanced
func ParsePinStrategy(s string) (PinStrategy, error) {
	p := PinStrategy(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case "":
		return StrategyBalanced, nil
	case StrategyAggressive, StrategyBalanced, StrategyConservative:
		return p, nil
	}
	return "", fmt.Errorf("unknown pin placement strategy %q", s)
}

// WindRelative is the wind expressed against the shot line. The zero value
// means no override was supplied.
type WindRelative string

const (
	WindNone           WindRelative = ""
	WindHeadwind       WindRelative = "headwind"
	WindTailwind       WindRelative = "tailwind"
	WindCrosswindLeft  WindRelative = "crosswind_left"
	WindCrosswindRight WindRelative = "crosswind_right"
	WindCalm           WindRelative = "calm"
)

// IsCrosswind reports whether the wind blows across the line
func (w WindRelative) IsCrosswind() bool {
	return w == WindCrosswindLeft || w == WindCrosswindRight
}

// Label returns the wind as it reads in a sentence
func (w WindRelative) Label() string {
	return strings.ReplaceAll(string(w), "_", " ")
}

// ParseWindRelative converts a raw override. Empty input yields WindNone.
func ParseWindRelative(s string) (WindRelative, error) {
	w := WindRelative(strings.ToLower(strings.TrimSpace(s)))
	switch w {
	case WindNone, WindHeadwind, WindTailwind, WindCrosswindLeft, WindCrosswindRight, WindCalm:
		return w, nil
	}
	return "", fmt.Errorf("unknown relative wind %q", s)
}

// PinLocation is where the flag sits on the green
type PinLocation string

const (
	PinFront  PinLocation = "front"
	PinCenter PinLocation = "center"
	PinBack   PinLocation = "back"
)

// ParsePinLocation converts a raw pin location, defaulting to center
func ParsePinLocation(s string) (PinLocation, error) {
	p := PinLocation(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case "":
		return PinCenter, nil
	case PinFront, PinCenter, PinBack:
		return p, nil
	}
	return "", fmt.Errorf("unknown pin location %q", s)
}

// FairwayType is the dominant surface of the landing area
type FairwayType string

const (
	FairwayStandard FairwayType = "fairway"
	FairwayRough    FairwayType = "rough"
	FairwaySand     FairwayType = "sand"
	FairwayWater    FairwayType = "water"
)

// ParseFairwayType converts a raw fairway type, defaulting to fairway
func ParseFairwayType(s string) (FairwayType, error) {
	f := FairwayType(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case "":
		return FairwayStandard, nil
	case FairwayStandard, FairwayRough, FairwaySand, FairwayWater:
		return f, nil
	}
	return "", fmt.Errorf("unknown fairway type %q", s)
}
