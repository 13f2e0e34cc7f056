package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/caddie/internal/models"
)

func newTestClient(url string, threshold int) *OpenWeatherClient {
	log := quietLogger()
	breaker := NewCircuitBreakerService(threshold, time.Minute, log)
	return NewOpenWeatherClient(url, "test-key", 2*time.Second, 6000, breaker, log)
}

func TestOpenWeatherCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "imperial", r.URL.Query().Get("units"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "36.560000", r.URL.Query().Get("lat"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"dt": 1700000000,
			"main": {"temp": 55.4, "humidity": 80},
			"wind": {"speed": 12, "deg": 350},
			"weather": [{"main": "Rain"}],
			"rain": {"1h": 3.1}
		}`))
	}))
	defer srv.Close()

	obs, err := newTestClient(srv.URL, 3).Current(context.Background(), 36.56, -121.95)
	require.NoError(t, err)

	snap := obs.Snapshot
	assert.Equal(t, 55.4, snap.TemperatureF)
	assert.Equal(t, 80, snap.HumidityPercent)
	assert.Equal(t, 12.0, snap.WindSpeedMPH)
	assert.Equal(t, models.CompassN, snap.WindDirection)
	assert.True(t, snap.Rain)
	assert.Equal(t, models.GroundWet, snap.Ground)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), snap.ObservedAt)
	assert.Contains(t, string(obs.Raw), `"humidity": 80`)
}

func TestOpenWeatherSnapshotWind(t *testing.T) {
	tests := []struct {
		name string
		body string
		want models.Compass
		rain bool
		grnd models.GroundCondition
	}{
		{"no wind block", `{"main":{"temp":70}}`, models.CompassUnknown, false, models.GroundDry},
		{"still air", `{"main":{"temp":70},"wind":{"speed":0,"deg":90}}`, models.CompassCalm, false, models.GroundDry},
		{"speed without direction", `{"main":{"temp":70},"wind":{"speed":8}}`, models.CompassUnknown, false, models.GroundDry},
		{"south west drizzle", `{"main":{"temp":60},"wind":{"speed":8,"deg":225},"weather":[{"main":"Drizzle"}],"rain":{"1h":0.4}}`, models.CompassSW, true, models.GroundDamp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			obs, err := newTestClient(srv.URL, 3).Current(context.Background(), 1, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, obs.Snapshot.WindDirection)
			assert.Equal(t, tt.rain, obs.Snapshot.Rain)
			assert.Equal(t, tt.grnd, obs.Snapshot.Ground)
		})
	}
}

func TestOpenWeatherBreakerOpens(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 2)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := client.Current(ctx, 1, 1)
		assert.ErrorIs(t, err, ErrWeatherUnavailable)
	}
	assert.Equal(t, gobreaker.StateOpen, client.breaker.GetState(weatherBreaker))

	_, err := client.Current(ctx, 1, 1)
	assert.ErrorIs(t, err, ErrWeatherUnavailable)
	assert.Contains(t, err.Error(), "circuit open")
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestOpenWeatherRespectsContext(t *testing.T) {
	log := quietLogger()
	client := NewOpenWeatherClient("http://127.0.0.1:1", "k", time.Second, 1,
		NewCircuitBreakerService(5, time.Minute, log), log)
	// drain the single token so the next call must wait a full minute
	require.True(t, client.rateLimiter.Allow())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := client.Current(ctx, 1, 1)
	assert.ErrorContains(t, err, "rate limiter")
}

func TestCircuitBreakerUnknownService(t *testing.T) {
	cb := NewCircuitBreakerService(1, time.Minute, quietLogger())
	out, err := cb.Execute("nope", func() (interface{}, error) { return 42, nil })
	require.NoError(t, err)
	assert.Equal(t, 42, out)
	assert.Equal(t, gobreaker.StateClosed, cb.GetState("nope"))
	assert.Equal(t, gobreaker.Counts{}, cb.GetCounts("nope"))
}
