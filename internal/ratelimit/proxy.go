package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/brokerguard/dbp/internal/logger"
)

var (
	// ErrClosed is returned for requests made after Close
	ErrClosed = errors.New("rate limit proxy is closed")

	// ErrQueueTimeout is returned when no token became available within the maximum queue time
	ErrQueueTimeout = errors.New("timed out waiting for rate limit token")
)

// Config holds the rate applied to every key
type Config struct {
	RequestsPerMinute float64       // Sustained rate per key
	Burst             int           // Requests allowed at once per key
	MaxQueueTime      time.Duration // Longest wait for a token
}

// RequestFunc performs the rate-limited work
type RequestFunc func(ctx context.Context) (interface{}, error)

// Proxy spaces out requests per key, each key getting its own token bucket
//
//go:generate mockgen -source=proxy.go -destination=../mocks/ratelimit_proxy.go -package=mocks -mock_names=Proxy=MockRateLimitProxy
type Proxy interface {
	// Request waits for a token of key and runs fn
	Request(ctx context.Context, key string, fn RequestFunc) (interface{}, error)

	// Close rejects further requests
	Close() error
}

type proxy struct {
	config Config

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	closed   atomic.Bool
}

// NewProxy creates a new rate-limiting proxy
func NewProxy(cfg Config) (Proxy, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Info("Rate limit proxy initialized",
		zap.Float64("requests_per_minute", cfg.RequestsPerMinute),
		zap.Int("burst", cfg.Burst),
		zap.Duration("max_queue_time", cfg.MaxQueueTime),
	)

	return &proxy{
		config:   cfg,
		limiters: make(map[string]*rate.Limiter),
	}, nil
}

// Request runs fn through the proxy and returns its typed result
func Request[T any](ctx context.Context, p Proxy, key string, fn func(ctx context.Context) (T, error)) (T, error) {
	// If proxy is nil, execute the function directly
	if p == nil {
		return fn(ctx)
	}

	var zero T
	result, err := p.Request(ctx, key, func(ctx context.Context) (interface{}, error) {
		return fn(ctx)
	})
	if err != nil {
		return zero, err
	}
	if result == nil {
		return zero, nil
	}
	return result.(T), nil
}

func (p *proxy) Request(ctx context.Context, key string, fn RequestFunc) (interface{}, error) {
	if p.closed.Load() {
		return nil, ErrClosed
	}

	if err := p.acquireToken(ctx, key); err != nil {
		return nil, err
	}

	// the work itself is not bounded by the queue time
	return fn(ctx)
}

// acquireToken blocks until a token of key is available or the queue time elapses
func (p *proxy) acquireToken(ctx context.Context, key string) error {
	queueCtx, cancel := context.WithTimeout(ctx, p.config.MaxQueueTime)
	defer cancel()

	limiter := p.limiter(key)
	if limiter.Allow() {
		return nil
	}

	logger.DebugCtx(ctx, "Rate limit token unavailable, waiting", zap.String("key", key))
	if err := limiter.Wait(queueCtx); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w for %s", ErrQueueTimeout, key)
	}
	return nil
}

func (p *proxy) limiter(key string) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()

	l, ok := p.limiters[key]
	if !ok {
		l = rate.NewLimiter(rate.Limit(p.config.RequestsPerMinute/60), p.config.Burst)
		p.limiters[key] = l
	}
	return l
}

func (p *proxy) Close() error {
	if p.closed.CompareAndSwap(false, true) {
		logger.Info("Rate limit proxy closed")
	}
	return nil
}

// validateConfig validates and sets defaults for the configuration
func validateConfig(cfg *Config) error {
	if cfg.RequestsPerMinute <= 0 {
		return fmt.Errorf("requests_per_minute must be positive")
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.MaxQueueTime <= 0 {
		cfg.MaxQueueTime = 5 * time.Minute
	}
	return nil
}
