package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestInitLoggerLevels(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	log := InitLogger("warn", false)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)

	log = InitLogger("", true)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)

	log = InitLogger("loud", false)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestInitLoggerJSONOverride(t *testing.T) {
	t.Setenv("LOG_FORMAT", "json")
	log := InitLogger("info", true)
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)
}

func TestContextHelpers(t *testing.T) {
	InitLogger("info", false)

	entry := WithRecommendationContext("p-1", "")
	assert.Equal(t, "p-1", entry.Data["player_id"])
	_, hasHole := entry.Data["hole_id"]
	assert.False(t, hasHole)

	assert.Equal(t, "caddie", WithService("caddie").Data["service"])
	assert.Equal(t, "r-1", WithRequestID("r-1").Data["request_id"])
	assert.Equal(t, "pebble", WithCourse("pebble").Data["course_id"])
}
