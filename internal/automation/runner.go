package automation

import (
	"context"

	"github.com/brokerguard/dbp/internal/domain"
)

// Runner performs the broker site interactions of scans and opt-outs
//
//go:generate mockgen -source=runner.go -destination=../mocks/runner.go -package=mocks -mock_names=Runner=MockRunner
type Runner interface {
	// Scan searches the broker for the query and returns the matching records
	Scan(ctx context.Context, broker domain.Broker, query domain.ProfileQuery) ([]domain.ExtractedProfile, error)

	// OptOut submits a removal request for an extracted record
	OptOut(ctx context.Context, broker domain.Broker, query domain.ProfileQuery, extracted domain.ExtractedProfile) error
}

type showWebViewKey struct{}

// WithShowWebView marks the runs started with ctx as visible to the user
func WithShowWebView(ctx context.Context, show bool) context.Context {
	return context.WithValue(ctx, showWebViewKey{}, show)
}

// ShowWebView reports whether runs started with ctx should be visible
func ShowWebView(ctx context.Context) bool {
	show, _ := ctx.Value(showWebViewKey{}).(bool)
	return show
}

// UnavailableRunner is used when no automation engine is configured.
// Every run fails with a retryable engineUnavailable error.
type UnavailableRunner struct{}

// NewUnavailableRunner creates a runner that always reports the engine missing
func NewUnavailableRunner() Runner {
	return &UnavailableRunner{}
}

func (r *UnavailableRunner) Scan(ctx context.Context, broker domain.Broker, query domain.ProfileQuery) ([]domain.ExtractedProfile, error) {
	return nil, domain.NewAutomationError(domain.AutomationErrorEngineUnavailable, "no automation engine configured")
}

func (r *UnavailableRunner) OptOut(ctx context.Context, broker domain.Broker, query domain.ProfileQuery, extracted domain.ExtractedProfile) error {
	return domain.NewAutomationError(domain.AutomationErrorEngineUnavailable, "no automation engine configured")
}
