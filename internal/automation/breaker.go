package automation

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"github.com/brokerguard/dbp/internal/domain"
	"github.com/brokerguard/dbp/internal/logger"
)

var breakerTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "dbp_automation_breaker_transitions_total",
	Help: "Circuit breaker state transitions per broker",
}, []string{"broker", "from", "to"})

// BreakerRunner stops calling the engine for a broker after repeated failures.
// Each broker has its own circuit so one broken site does not block the others.
type BreakerRunner struct {
	runner   Runner
	failures uint32
	cooldown time.Duration

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker[[]domain.ExtractedProfile]
}

// NewBreakerRunner wraps runner with a per-broker circuit breaker that opens after
// failures consecutive errors and half-opens after cooldown
func NewBreakerRunner(runner Runner, failures uint32, cooldown time.Duration) *BreakerRunner {
	return &BreakerRunner{
		runner:   runner,
		failures: failures,
		cooldown: cooldown,
		breakers: make(map[string]*gobreaker.CircuitBreaker[[]domain.ExtractedProfile]),
	}
}

func (r *BreakerRunner) Scan(ctx context.Context, broker domain.Broker, query domain.ProfileQuery) ([]domain.ExtractedProfile, error) {
	profiles, err := r.breaker(broker.Name).Execute(func() ([]domain.ExtractedProfile, error) {
		return r.runner.Scan(ctx, broker, query)
	})
	return profiles, translateBreakerError(broker.Name, err)
}

func (r *BreakerRunner) OptOut(ctx context.Context, broker domain.Broker, query domain.ProfileQuery, extracted domain.ExtractedProfile) error {
	_, err := r.breaker(broker.Name).Execute(func() ([]domain.ExtractedProfile, error) {
		return nil, r.runner.OptOut(ctx, broker, query, extracted)
	})
	return translateBreakerError(broker.Name, err)
}

// State returns the circuit state of a broker
func (r *BreakerRunner) State(brokerName string) gobreaker.State {
	return r.breaker(brokerName).State()
}

func (r *BreakerRunner) breaker(name string) *gobreaker.CircuitBreaker[[]domain.ExtractedProfile] {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cb, ok := r.breakers[name]; ok {
		return cb
	}
	cb := gobreaker.NewCircuitBreaker[[]domain.ExtractedProfile](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     r.cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= r.failures
		},
		IsSuccessful: func(err error) bool {
			// a cancelled run says nothing about the broker
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Automation circuit changed state",
				zap.String("broker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
			breakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})
	r.breakers[name] = cb
	return cb
}

func translateBreakerError(broker string, err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return domain.NewAutomationError(domain.AutomationErrorCircuitOpen, "%s: %v", broker, err)
	}
	return err
}
