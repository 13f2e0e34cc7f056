package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCompass(t *testing.T) {
	tests := []struct {
		input   string
		want    Compass
		wantErr bool
	}{
		{"", CompassUnknown, false},
		{"calm", CompassCalm, false},
		{"Calm", CompassCalm, false},
		{"nne", CompassNNE, false},
		{" SW ", CompassSW, false},
		{"NNNE", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCompass(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDefaults(t *testing.T) {
	q, err := ParseLieQuality("")
	require.NoError(t, err)
	assert.Equal(t, LieNormal, q)

	s, err := ParsePinStrategy("")
	require.NoError(t, err)
	assert.Equal(t, StrategyBalanced, s)

	g, err := ParseGroundCondition("")
	require.NoError(t, err)
	assert.Equal(t, GroundDry, g)

	p, err := ParsePinLocation("")
	require.NoError(t, err)
	assert.Equal(t, PinCenter, p)

	w, err := ParseWindRelative("")
	require.NoError(t, err)
	assert.Equal(t, WindNone, w)

	_, err = ParseLie("sand")
	assert.Error(t, err)
}

func TestMeasurementMethod(t *testing.T) {
	assert.True(t, MeasuredRangefinder.IsMeasured())
	assert.True(t, MeasuredLaunchMonitor.IsMeasured())
	assert.False(t, MeasuredEstimated.IsMeasured())
	assert.False(t, MeasuredDefault.IsMeasured())

	baseline := PlayerBaseline{Clubs: []ClubDistance{
		{Club: ClubIron7, Method: MeasuredGPSWatch},
		{Club: ClubIron8, Method: MeasuredDefault},
		{Club: ClubIron9, Method: MeasuredCourseMarkers},
	}}
	assert.Equal(t, 2, baseline.MeasuredClubCount())

	c, ok := baseline.Club(ClubIron8)
	assert.True(t, ok)
	assert.Equal(t, MeasuredDefault, c.Method)
}

func TestDirectionOpposite(t *testing.T) {
	assert.Equal(t, DirectionRight, DirectionLeft.Opposite())
	assert.Equal(t, DirectionLeft, DirectionRight.Opposite())
	assert.Equal(t, DirectionLong, DirectionShort.Opposite())
	assert.Equal(t, DirectionShort, DirectionLong.Opposite())
	assert.Equal(t, DirectionCenter, DirectionCenter.Opposite())
}

func TestClubDisplayName(t *testing.T) {
	assert.Equal(t, "7 Iron", ClubIron7.DisplayName())
	assert.Equal(t, "Pitching Wedge", ClubPitchingWedge.DisplayName())

	c, err := ParseClubType("WOOD_3")
	require.NoError(t, err)
	assert.Equal(t, ClubWood3, c)
}

func TestConfidencePercent(t *testing.T) {
	assert.Equal(t, 85, ConfidenceScore{OverallConfidence: 0.849}.Percent())
	assert.Equal(t, 100, ConfidenceScore{OverallConfidence: 1}.Percent())
}
