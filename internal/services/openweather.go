package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/stitts-dev/caddie/internal/metrics"
	"github.com/stitts-dev/caddie/internal/models"
	"github.com/stitts-dev/caddie/internal/physics"
)

// ErrWeatherUnavailable means no current reading could be obtained upstream
var ErrWeatherUnavailable = errors.New("weather provider unavailable")

// wetRainMM is the hourly rainfall above which fairways count as wet
const wetRainMM = 2.5

// Observation is a provider reading plus the payload it was decoded from
type Observation struct {
	Snapshot models.WeatherSnapshot
	Raw      json.RawMessage
}

// WeatherProvider fetches the current weather at a coordinate
type WeatherProvider interface {
	Current(ctx context.Context, lat, lon float64) (*Observation, error)
}

// OpenWeatherClient reads current conditions from the OpenWeather API in
// imperial units
type OpenWeatherClient struct {
	baseURL     string
	apiKey      string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	breaker     *CircuitBreakerService
	logger      *logrus.Logger
}

// NewOpenWeatherClient creates a client allowing requestsPerMinute upstream calls
func NewOpenWeatherClient(
	baseURL, apiKey string,
	timeout time.Duration,
	requestsPerMinute int,
	breaker *CircuitBreakerService,
	logger *logrus.Logger,
) *OpenWeatherClient {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 60
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &OpenWeatherClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		rateLimiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), 1),
		breaker:     breaker,
		logger:      logger,
	}
}

type owmResponse struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind *struct {
		Speed float64  `json:"speed"`
		Deg   *float64 `json:"deg"`
	} `json:"wind"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	Rain *struct {
		OneHour float64 `json:"1h"`
	} `json:"rain"`
}

// Current fetches the reading at lat/lon, honoring the rate limit and breaker
func (c *OpenWeatherClient) Current(ctx context.Context, lat, lon float64) (*Observation, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	result, err := c.breaker.Execute(weatherBreaker, func() (interface{}, error) {
		return c.fetch(ctx, lat, lon)
	})
	if err != nil {
		metrics.WeatherFetches.WithLabelValues("error").Inc()
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: circuit open", ErrWeatherUnavailable)
		}
		return nil, fmt.Errorf("%w: %v", ErrWeatherUnavailable, err)
	}
	metrics.WeatherFetches.WithLabelValues("ok").Inc()
	return result.(*Observation), nil
}

func (c *OpenWeatherClient) fetch(ctx context.Context, lat, lon float64) (*Observation, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', 6, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', 6, 64))
	q.Set("units", "imperial")
	q.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/weather?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weather: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read weather response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather API returned status %d", resp.StatusCode)
	}

	var payload owmResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"lat":  lat,
		"lon":  lon,
		"temp": payload.Main.Temp,
	}).Debug("Fetched current weather")

	return &Observation{Snapshot: payload.snapshot(), Raw: json.RawMessage(body)}, nil
}

func (p owmResponse) snapshot() models.WeatherSnapshot {
	observed := time.Now().UTC()
	if p.Dt > 0 {
		observed = time.Unix(p.Dt, 0).UTC()
	}

	snap := models.WeatherSnapshot{
		ObservedAt:      observed,
		TemperatureF:    p.Main.Temp,
		HumidityPercent: p.Main.Humidity,
		Ground:          models.GroundDry,
	}

	switch {
	case p.Wind == nil:
		snap.WindDirection = models.CompassUnknown
	case p.Wind.Speed == 0:
		snap.WindDirection = models.CompassCalm
	case p.Wind.Deg == nil:
		snap.WindSpeedMPH = p.Wind.Speed
		snap.WindDirection = models.CompassUnknown
	default:
		snap.WindSpeedMPH = p.Wind.Speed
		snap.WindDirection = physics.DegreesToCompass(*p.Wind.Deg)
	}

	for _, w := range p.Weather {
		switch w.Main {
		case "Rain", "Drizzle", "Thunderstorm":
			snap.Rain = true
		}
	}

	if p.Rain != nil {
		switch {
		case p.Rain.OneHour >= wetRainMM:
			snap.Ground = models.GroundWet
		case p.Rain.OneHour > 0:
			snap.Ground = models.GroundDamp
		}
	}

	return snap
}
