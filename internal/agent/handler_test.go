package agent_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brokerguard/dbp/internal/agent"
	"github.com/brokerguard/dbp/internal/mocks"
	"github.com/brokerguard/dbp/internal/scheduler"
)

func setupHandler(t *testing.T) (*agent.Handler, *mocks.MockScheduler, *mocks.MockProcessLauncher) {
	ctrl := gomock.NewController(t)
	s := mocks.NewMockScheduler(ctrl)
	launcher := mocks.NewMockProcessLauncher(ctrl)
	return agent.NewHandler(context.Background(), s, launcher, "1.0.0"), s, launcher
}

func TestHandler_ProfileSaved(t *testing.T) {
	h, s, _ := setupHandler(t)
	ctx := context.Background()

	gomock.InOrder(
		s.EXPECT().StartImmediateOperations(gomock.Any(), false).Return(nil),
		s.EXPECT().StartScheduledOperations(gomock.Any(), false),
	)

	require.NoError(t, h.ProfileSaved(ctx))
	h.Wait()
}

func TestHandler_ProfileSavedImmediateFailure(t *testing.T) {
	h, s, _ := setupHandler(t)

	s.EXPECT().StartImmediateOperations(gomock.Any(), false).Return(errors.New("scheduler is stopped"))
	s.EXPECT().StartScheduledOperations(gomock.Any(), gomock.Any()).Times(0)

	// the failure is logged, the request itself is acknowledged
	require.NoError(t, h.ProfileSaved(context.Background()))
	h.Wait()
}

func TestHandler_LongOperationsAreAcknowledgedFirst(t *testing.T) {
	h, s, _ := setupHandler(t)
	release := make(chan struct{})

	s.EXPECT().RunAllOptOuts(gomock.Any(), true).DoAndReturn(func(context.Context, bool) error {
		<-release
		return nil
	})
	s.EXPECT().StartImmediateOperations(gomock.Any(), true).DoAndReturn(func(context.Context, bool) error {
		<-release
		return nil
	})

	acked := make(chan struct{})
	go func() {
		_ = h.RunAllOptOuts(context.Background(), true)
		_ = h.StartImmediateOperations(context.Background(), true)
		close(acked)
	}()

	select {
	case <-acked:
	case <-time.After(2 * time.Second):
		t.Fatal("handler blocked on a long operation")
	}
	close(release)
	h.Wait()
}

func TestHandler_ScheduledOperations(t *testing.T) {
	h, s, _ := setupHandler(t)

	s.EXPECT().StartScheduledOperations(gomock.Any(), false)
	s.EXPECT().StartScheduledOperations(gomock.Any(), true)

	require.NoError(t, h.AppLaunched(context.Background()))
	require.NoError(t, h.StartScheduledOperations(context.Background(), true))
}

func TestHandler_OpenBrowser(t *testing.T) {
	tests := []struct {
		name    string
		domain  string
		wantURL string
		wantErr bool
	}{
		{name: "bare domain", domain: "broker-a.com", wantURL: "https://broker-a.com"},
		{name: "full url", domain: "http://broker-a.com/optout", wantURL: "http://broker-a.com/optout"},
		{name: "unsupported scheme", domain: "file:///etc/passwd", wantErr: true},
		{name: "no host", domain: "https://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, launcher := setupHandler(t)
			if !tt.wantErr {
				p := mocks.NewMockProcess(gomock.NewController(t))
				p.EXPECT().Wait().Return(nil).AnyTimes()
				launcher.EXPECT().Start(gomock.Any(), []string{tt.wantURL}, gomock.Nil()).Return(p, nil)
			}

			err := h.OpenBrowser(context.Background(), tt.domain)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestHandler_DebugMetadata(t *testing.T) {
	h, s, _ := setupHandler(t)
	finished := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	s.EXPECT().Status().Return(scheduler.Status{
		Scheduled:       true,
		LastRunFinished: &finished,
		ScansRun:        3,
		OptOutsRun:      1,
		Failures:        2,
	})

	md, err := h.DebugMetadata(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", md.AgentVersion)
	assert.Positive(t, md.AgentPID)
	assert.True(t, md.Scheduled)
	assert.Equal(t, &finished, md.LastRunFinished)
	assert.Equal(t, int64(3), md.ScansRun)
	assert.Equal(t, int64(1), md.OptOutsRun)
	assert.Equal(t, int64(2), md.Failures)
}
