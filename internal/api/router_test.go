package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/stitts-dev/caddie/internal/api/handlers"
	"github.com/stitts-dev/caddie/internal/api/middleware"
	"github.com/stitts-dev/caddie/internal/fixtures"
	"github.com/stitts-dev/caddie/internal/models"
	"github.com/stitts-dev/caddie/internal/recommendation"
	"github.com/stitts-dev/caddie/internal/services"
	"github.com/stitts-dev/caddie/internal/store"
	"github.com/stitts-dev/caddie/pkg/config"
)

const jwtSecret = "router-test-secret"

type stubProvider struct {
	err error
}

func (p *stubProvider) Current(_ context.Context, _, _ float64) (*services.Observation, error) {
	if p.err != nil {
		return nil, p.err
	}
	return &services.Observation{
		Snapshot: models.WeatherSnapshot{
			ObservedAt:    time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
			TemperatureF:  80,
			WindSpeedMPH:  10,
			WindDirection: models.CompassS,
			Ground:        models.GroundDry,
		},
		Raw: []byte(`{}`),
	}, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string      `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details"`
	} `json:"error"`
	Meta *struct {
		Total     int    `json:"total"`
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type RouterSuite struct {
	suite.Suite
	router   *gin.Engine
	store    *store.MemoryStore
	provider *stubProvider
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	log := logrus.New()
	log.SetOutput(io.Discard)

	s.store = store.NewMemoryStore()
	s.Require().NoError(s.store.SaveCourse(ctx, &models.Course{
		ID: "lakeside", Name: "Lakeside Links", Aliases: []string{"The Lake"},
		Latitude: 36.5, Longitude: -121.9,
		Holes: []models.Hole{
			{Number: 1, Par: 4, HandicapIndex: 5, DistanceToPinYards: 150},
			{
				Number: 2, Par: 3, HandicapIndex: 11, DistanceToPinYards: 160,
				Hazards: []models.Hazard{{Type: models.HazardWater, Location: models.DirectionLeft, DistanceFromTeeYards: 155}},
			},
		},
	}))
	baseline := fixtures.DefaultBaseline("p-1", "Pat")
	s.Require().NoError(s.store.ReplacePlayerBaseline(ctx, &baseline))
	w := models.WeatherSnapshot{
		ID: "w-1", CourseID: "lakeside", TemperatureF: 70,
		WindDirection: models.CompassCalm, Ground: models.GroundDry,
		ObservedAt: time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.store.SaveWeather(ctx, &w, nil))

	cfg := &config.Config{JWTSecret: jwtSecret, CorsOrigins: []string{"*"}}
	cache := services.NewCacheService(nil)
	s.provider = &stubProvider{}
	weather := services.NewWeatherService(s.store, s.provider, cache, time.Minute, log)
	caddie := services.NewCaddieService(s.store, weather, cache, recommendation.NewEngine(), log)

	s.router = NewRouter(cfg, Dependencies{
		Store:       s.store,
		Caddie:      caddie,
		Weather:     weather,
		RateLimiter: middleware.NewIPRateLimiter(1000, 1000),
		Checks: map[string]handlers.Check{
			"store": func(context.Context) error { return nil },
		},
		Logger: log,
	})
}

func (s *RouterSuite) token(subject string) string {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}})
	signed, err := tok.SignedString([]byte(jwtSecret))
	s.Require().NoError(err)
	return signed
}

func (s *RouterSuite) do(method, path string, body interface{}, headers ...string) (*httptest.ResponseRecorder, envelope) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") != "" {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

func (s *RouterSuite) TestHealthAndReady() {
	w, _ := s.do(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, w.Code)

	w, _ = s.do(http.MethodGet, "/ready", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"store":"ok"`)

	w, _ = s.do(http.MethodGet, "/metrics", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "caddie_api_requests_total")
}

func (s *RouterSuite) TestRecommendation() {
	w, env := s.do(http.MethodPost, "/api/v1/recommendations", gin.H{
		"player_id":  "p-1",
		"hole_id":    "lakeside-1",
		"weather_id": "w-1",
		"shot":       gin.H{"distance_to_pin_yards": 150, "lie": "fairway", "pin_placement_strategy": "normal"},
	}, middleware.RequestIDHeader, "req-42")

	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.True(env.Success)
	s.Require().NotNil(env.Meta)
	s.Equal("req-42", env.Meta.RequestID)

	var out services.RecommendationEnvelope
	s.Require().NoError(json.Unmarshal(env.Data, &out))
	s.NotEmpty(out.RecommendationID)
	s.Equal("w-1", out.WeatherID)
	s.Require().NotNil(out.Recommendation)
	s.NotEmpty(out.Recommendation.Primary.Club)
	s.Equal(models.StrategyBalanced, out.Recommendation.Strategy)
}

func (s *RouterSuite) TestRecommendationLooseVocabulary() {
	w, env := s.do(http.MethodPost, "/api/v1/recommendations", gin.H{
		"player_id": "p-1",
		"hole_id":   "lakeside-2",
		"shot": gin.H{
			"distance_to_pin_yards":  160,
			"lie":                    "heavy rough",
			"wind_relative":          "into",
			"pin_placement_strategy": "play it safe",
		},
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var out services.RecommendationEnvelope
	s.Require().NoError(json.Unmarshal(env.Data, &out))
	s.Equal(models.StrategyConservative, out.Recommendation.Strategy)
	s.Equal(models.WindHeadwind, out.Recommendation.Adjustments.WindRelative)
}

func (s *RouterSuite) TestRecommendationErrors() {
	tests := []struct {
		name   string
		body   gin.H
		status int
		code   string
	}{
		{"missing fields", gin.H{"shot": gin.H{"distance_to_pin_yards": 150}}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"zero distance", gin.H{"player_id": "p-1", "hole_id": "lakeside-1", "shot": gin.H{}}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"unknown lie", gin.H{"player_id": "p-1", "hole_id": "lakeside-1", "shot": gin.H{"distance_to_pin_yards": 150, "lie": "cart path"}}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"unknown player", gin.H{"player_id": "ghost", "hole_id": "lakeside-1", "shot": gin.H{"distance_to_pin_yards": 150}}, http.StatusNotFound, "NOT_FOUND"},
		{"unknown hole", gin.H{"player_id": "p-1", "hole_id": "lakeside-9", "shot": gin.H{"distance_to_pin_yards": 150}}, http.StatusNotFound, "NOT_FOUND"},
		{"unknown weather", gin.H{"player_id": "p-1", "hole_id": "lakeside-1", "weather_id": "nope", "shot": gin.H{"distance_to_pin_yards": 150}}, http.StatusNotFound, "NOT_FOUND"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			w, env := s.do(http.MethodPost, "/api/v1/recommendations", tt.body)
			s.Equal(tt.status, w.Code, w.Body.String())
			s.False(env.Success)
			s.Require().NotNil(env.Error)
			s.Equal(tt.code, env.Error.Code)
		})
	}

	w, env := s.do(http.MethodPost, "/api/v1/recommendations", gin.H{
		"player_id": "ghost", "hole_id": "lakeside-1", "shot": gin.H{"distance_to_pin_yards": 150},
	})
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("Player baseline not found", env.Error.Message)
}

func (s *RouterSuite) TestRecommendationUpstreamDown() {
	s.provider.err = services.ErrWeatherUnavailable
	w, env := s.do(http.MethodPost, "/api/v1/recommendations", gin.H{
		"player_id": "p-1", "hole_id": "lakeside-1", "use_current_weather": true,
		"shot": gin.H{"distance_to_pin_yards": 150},
	})
	s.Equal(http.StatusServiceUnavailable, w.Code)
	s.Equal("UPSTREAM_UNAVAILABLE", env.Error.Code)
}

func (s *RouterSuite) TestCourses() {
	w, env := s.do(http.MethodGet, "/api/v1/courses", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal(1, env.Meta.Total)

	w, env = s.do(http.MethodGet, "/api/v1/courses/search?q=lake", nil)
	s.Equal(http.StatusOK, w.Code)
	var found []models.Course
	s.Require().NoError(json.Unmarshal(env.Data, &found))
	s.Len(found, 1)

	w, _ = s.do(http.MethodGet, "/api/v1/courses/search", nil)
	s.Equal(http.StatusBadRequest, w.Code)

	w, _ = s.do(http.MethodGet, "/api/v1/courses/lakeside", nil)
	s.Equal(http.StatusOK, w.Code)

	w, env = s.do(http.MethodGet, "/api/v1/courses/nowhere", nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("Course not found", env.Error.Message)

	w, env = s.do(http.MethodGet, "/api/v1/courses/lakeside/quality", nil)
	s.Equal(http.StatusOK, w.Code)
	var report store.QualityReport
	s.Require().NoError(json.Unmarshal(env.Data, &report))
	s.False(report.Clean())
}

func (s *RouterSuite) TestCreateCourse() {
	w, _ := s.do(http.MethodPost, "/api/v1/courses", gin.H{
		"id":   "pines",
		"name": "The Pines",
		"holes": []gin.H{{
			"number": 1, "par": 3, "handicap_index": 17, "distance_to_pin_yards": 140,
			"hazards": []gin.H{{"type": "sand", "location": "short", "distance_from_tee_yards": 125}},
		}},
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	hole, err := s.store.GetHole(context.Background(), "pines-1")
	s.Require().NoError(err)
	s.Require().Len(hole.Hazards, 1)
	s.Equal(models.HazardBunker, hole.Hazards[0].Type)

	w, _ = s.do(http.MethodPost, "/api/v1/courses", gin.H{"id": "bad", "name": "Bad", "holes": []gin.H{{"number": 30, "par": 4, "distance_to_pin_yards": 300}}})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterSuite) TestBaselineEndpoints() {
	w, _ := s.do(http.MethodGet, "/api/v1/players/p-1/baseline", nil)
	s.Equal(http.StatusOK, w.Code)

	body := gin.H{"clubs": []gin.H{{"club": "7 iron", "carry_yards": 160, "total_yards": 170, "measurement_method": "rangefinder"}}}

	w, _ = s.do(http.MethodPut, "/api/v1/players/p-1/baseline", body)
	s.Equal(http.StatusUnauthorized, w.Code)

	w, _ = s.do(http.MethodPut, "/api/v1/players/p-1/baseline", body, "Authorization", "Bearer "+s.token("p-2"))
	s.Equal(http.StatusForbidden, w.Code)

	w, _ = s.do(http.MethodPut, "/api/v1/players/p-1/baseline", body, "Authorization", "Bearer "+s.token("p-1"))
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	got, err := s.store.GetPlayerBaseline(context.Background(), "p-1")
	s.Require().NoError(err)
	s.Require().Len(got.Clubs, 1)
	s.Equal(models.ClubIron7, got.Clubs[0].Club)

	bad := gin.H{"clubs": []gin.H{{"club": "7 iron", "carry_yards": 160, "total_yards": 150}}}
	w, env := s.do(http.MethodPut, "/api/v1/players/p-1/baseline", bad, "Authorization", "Bearer "+s.token("p-1"))
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("VALIDATION_ERROR", env.Error.Code)
}

func (s *RouterSuite) TestDefaultBaseline() {
	w, env := s.do(http.MethodPost, "/api/v1/players/p-9/baseline/defaults", nil, "Authorization", "Bearer "+s.token("p-9"))
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var b models.PlayerBaseline
	s.Require().NoError(json.Unmarshal(env.Data, &b))
	s.Equal("p-9", b.PlayerID)
	s.Len(b.Clubs, len(fixtures.DefaultClubs()))
}

func (s *RouterSuite) TestWeatherEndpoints() {
	w, _ := s.do(http.MethodGet, "/api/v1/weather/w-1", nil)
	s.Equal(http.StatusOK, w.Code)

	w, _ = s.do(http.MethodGet, "/api/v1/weather/missing", nil)
	s.Equal(http.StatusNotFound, w.Code)

	w, env := s.do(http.MethodPost, "/api/v1/courses/lakeside/weather/refresh", nil)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var snap models.WeatherSnapshot
	s.Require().NoError(json.Unmarshal(env.Data, &snap))
	s.Equal(models.CompassS, snap.WindDirection)

	w, env = s.do(http.MethodGet, "/api/v1/courses/lakeside/weather", nil)
	s.Equal(http.StatusOK, w.Code)
	var latest models.WeatherSnapshot
	s.Require().NoError(json.Unmarshal(env.Data, &latest))
	s.Equal(snap.ID, latest.ID)
}

func TestRateLimitedRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetOutput(io.Discard)
	st := store.NewMemoryStore()
	cache := services.NewCacheService(nil)
	weather := services.NewWeatherService(st, nil, cache, time.Minute, log)

	router := NewRouter(&config.Config{JWTSecret: jwtSecret}, Dependencies{
		Store:       st,
		Caddie:      services.NewCaddieService(st, weather, cache, recommendation.NewEngine(), log),
		Weather:     weather,
		RateLimiter: middleware.NewIPRateLimiter(0.001, 1),
		Checks: map[string]handlers.Check{
			"store": func(context.Context) error { return errors.New("down") },
		},
		Logger: log,
	})

	codes := []int{}
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}
