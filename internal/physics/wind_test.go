package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/caddie/internal/models"
)

func TestCompassDegrees(t *testing.T) {
	deg, ok := CompassDegrees(models.CompassN)
	require.True(t, ok)
	assert.Equal(t, 0.0, deg)

	deg, ok = CompassDegrees(models.CompassSSW)
	require.True(t, ok)
	assert.Equal(t, 202.5, deg)

	_, ok = CompassDegrees(models.CompassCalm)
	assert.False(t, ok)
}

func TestDegreesToCompass(t *testing.T) {
	assert.Equal(t, models.CompassN, DegreesToCompass(0))
	assert.Equal(t, models.CompassN, DegreesToCompass(355))
	assert.Equal(t, models.CompassNNE, DegreesToCompass(20))
	assert.Equal(t, models.CompassE, DegreesToCompass(90))
	assert.Equal(t, models.CompassW, DegreesToCompass(-90))

	for _, p := range models.CompassPoints {
		deg, _ := CompassDegrees(p)
		assert.Equal(t, p, DegreesToCompass(deg))
	}
}

func TestSignedAngle(t *testing.T) {
	assert.Equal(t, 90.0, SignedAngle(90, 0))
	assert.Equal(t, -90.0, SignedAngle(270, 0))
	assert.Equal(t, 180.0, SignedAngle(180, 0))
	assert.Equal(t, 180.0, SignedAngle(0, 180))
	assert.Equal(t, 20.0, SignedAngle(10, 350))
}

func TestResolveWind(t *testing.T) {
	tests := []struct {
		name      string
		direction models.Compass
		speed     float64
		bearing   float64
		want      models.WindRelative
		known     bool
	}{
		{"into the wind", models.CompassN, 12, 0, models.WindHeadwind, true},
		{"off the left shoulder is still head", models.CompassNE, 12, 0, models.WindHeadwind, true},
		{"downwind", models.CompassS, 12, 0, models.WindTailwind, true},
		{"downwind quartering", models.CompassSE, 12, 0, models.WindTailwind, true},
		{"east wind on north shot", models.CompassE, 12, 0, models.WindCrosswindLeft, true},
		{"west wind on north shot", models.CompassW, 12, 0, models.WindCrosswindRight, true},
		{"wraps around north", models.CompassNNW, 12, 10, models.WindHeadwind, true},
		{"light air is calm", models.CompassN, 3, 0, models.WindCalm, true},
		{"calm reported", models.CompassCalm, 0, 90, models.WindCalm, true},
		{"no data", models.CompassUnknown, 15, 90, models.WindCalm, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ResolveWind(tt.direction, tt.speed, tt.bearing)
			assert.Equal(t, tt.want, r.Relative)
			assert.Equal(t, tt.known, r.Known)
		})
	}
}

func TestOverrideWindIsTrusted(t *testing.T) {
	r := OverrideWind(models.WindTailwind, 2)
	assert.Equal(t, models.WindTailwind, r.Relative)
	assert.True(t, r.Known)
}
