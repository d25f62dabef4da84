package automation

import (
	"context"
	"errors"

	"github.com/brokerguard/dbp/internal/domain"
	"github.com/brokerguard/dbp/internal/ratelimit"
)

// ThrottledRunner spaces out engine runs against the same broker
type ThrottledRunner struct {
	runner Runner
	proxy  ratelimit.Proxy
}

// NewThrottledRunner wraps runner so that every call first takes a token of the broker
func NewThrottledRunner(runner Runner, proxy ratelimit.Proxy) *ThrottledRunner {
	return &ThrottledRunner{runner: runner, proxy: proxy}
}

func (r *ThrottledRunner) Scan(ctx context.Context, broker domain.Broker, query domain.ProfileQuery) ([]domain.ExtractedProfile, error) {
	profiles, err := ratelimit.Request(ctx, r.proxy, broker.Name, func(ctx context.Context) ([]domain.ExtractedProfile, error) {
		return r.runner.Scan(ctx, broker, query)
	})
	return profiles, translateRateLimitError(broker.Name, err)
}

func (r *ThrottledRunner) OptOut(ctx context.Context, broker domain.Broker, query domain.ProfileQuery, extracted domain.ExtractedProfile) error {
	_, err := ratelimit.Request(ctx, r.proxy, broker.Name, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, r.runner.OptOut(ctx, broker, query, extracted)
	})
	return translateRateLimitError(broker.Name, err)
}

// Close stops handing out tokens
func (r *ThrottledRunner) Close() error {
	return r.proxy.Close()
}

func translateRateLimitError(broker string, err error) error {
	if errors.Is(err, ratelimit.ErrQueueTimeout) || errors.Is(err, ratelimit.ErrClosed) {
		return domain.NewAutomationError(domain.AutomationErrorRateLimited, "%s: %v", broker, err)
	}
	return err
}
