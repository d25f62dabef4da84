package automation_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brokerguard/dbp/internal/automation"
	"github.com/brokerguard/dbp/internal/domain"
	"github.com/brokerguard/dbp/internal/mocks"
	"github.com/brokerguard/dbp/internal/ratelimit"
)

func newThrottle(t *testing.T, inner automation.Runner) *automation.ThrottledRunner {
	// one run per broker per hour with a single token of burst
	proxy, err := ratelimit.NewProxy(ratelimit.Config{RequestsPerMinute: 1.0 / 60, Burst: 1, MaxQueueTime: 20 * time.Millisecond})
	require.NoError(t, err)
	return automation.NewThrottledRunner(inner, proxy)
}

func TestThrottledRunner_LimitsPerBroker(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockRunner(ctrl)
	runner := newThrottle(t, inner)
	ctx := context.Background()

	inner.EXPECT().Scan(gomock.Any(), testBroker, testQuery).Return([]domain.ExtractedProfile{{}}, nil)
	got, err := runner.Scan(ctx, testBroker, testQuery)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	// second call on the same broker never reaches the engine
	err = runner.OptOut(ctx, testBroker, testQuery, domain.ExtractedProfile{})
	assert.Equal(t, domain.AutomationErrorRateLimited, domain.AsAutomationError(err).Kind)

	other := testBroker
	other.Name = "broker-b.com"
	inner.EXPECT().OptOut(gomock.Any(), other, testQuery, gomock.Any()).Return(nil)
	require.NoError(t, runner.OptOut(ctx, other, testQuery, domain.ExtractedProfile{}))
}

func TestThrottledRunner_PassesEngineErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockRunner(ctrl)
	runner := newThrottle(t, inner)

	failure := domain.NewAutomationError(domain.AutomationErrorCaptcha, "challenge")
	inner.EXPECT().Scan(gomock.Any(), testBroker, testQuery).Return(nil, failure)

	_, err := runner.Scan(context.Background(), testBroker, testQuery)
	assert.Same(t, failure, domain.AsAutomationError(err))
}

func TestThrottledRunner_Closed(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := newThrottle(t, mocks.NewMockRunner(ctrl))
	require.NoError(t, runner.Close())

	_, err := runner.Scan(context.Background(), testBroker, testQuery)
	assert.Equal(t, domain.AutomationErrorRateLimited, domain.AsAutomationError(err).Kind)
}
