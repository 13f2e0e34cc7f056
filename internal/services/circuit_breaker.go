package services

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/stitts-dev/caddie/internal/metrics"
)

const weatherBreaker = "openweather"

// CircuitBreakerService guards calls to external weather upstreams
type CircuitBreakerService struct {
	breakers map[string]*gobreaker.CircuitBreaker
	logger   *logrus.Logger
}

// NewCircuitBreakerService builds one breaker per upstream. A breaker opens
// after threshold consecutive failures and lets a single probe through once
// timeout has passed.
func NewCircuitBreakerService(threshold int, timeout time.Duration, logger *logrus.Logger) *CircuitBreakerService {
	if threshold <= 0 {
		threshold = 5
	}
	cb := &CircuitBreakerService{
		breakers: make(map[string]*gobreaker.CircuitBreaker),
		logger:   logger,
	}
	cb.breakers[weatherBreaker] = gobreaker.NewCircuitBreaker(cb.settings(weatherBreaker, uint32(threshold), timeout))
	metrics.CircuitBreakerState.WithLabelValues(weatherBreaker).Set(float64(gobreaker.StateClosed))
	return cb
}

func (cb *CircuitBreakerService) settings(name string, threshold uint32, timeout time.Duration) gobreaker.Settings {
	return gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: cb.stateChanged,
	}
}

func (cb *CircuitBreakerService) stateChanged(name string, from, to gobreaker.State) {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))

	entry := cb.logger.WithFields(logrus.Fields{
		"upstream": name,
		"from":     from.String(),
		"to":       to.String(),
	})
	if to == gobreaker.StateOpen {
		entry.Warn("Weather upstream breaker opened")
		return
	}
	entry.Info("Weather upstream breaker state changed")
}

// Execute runs fn behind the named breaker. Unknown upstreams run unguarded.
func (cb *CircuitBreakerService) Execute(upstream string, fn func() (interface{}, error)) (interface{}, error) {
	breaker, ok := cb.breakers[upstream]
	if !ok {
		cb.logger.WithField("upstream", upstream).Debug("No breaker registered, calling upstream directly")
		return fn()
	}
	return breaker.Execute(fn)
}

// GetState reports the breaker state, closed for unknown upstreams
func (cb *CircuitBreakerService) GetState(upstream string) gobreaker.State {
	if breaker, ok := cb.breakers[upstream]; ok {
		return breaker.State()
	}
	return gobreaker.StateClosed
}

func (cb *CircuitBreakerService) GetCounts(upstream string) gobreaker.Counts {
	if breaker, ok := cb.breakers[upstream]; ok {
		return breaker.Counts()
	}
	return gobreaker.Counts{}
}
