package loginitem_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brokerguard/dbp/internal/ipc"
	"github.com/brokerguard/dbp/internal/loginitem"
	"github.com/brokerguard/dbp/internal/mocks"
	"github.com/brokerguard/dbp/internal/pixels"
)

type bridgeEnv struct {
	bridge loginitem.Bridge
	item   *mocks.MockLoginItem
	client *mocks.MockIPCClient

	mu    sync.Mutex
	fired []string
}

func (e *bridgeEnv) pixelNames() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.fired...)
}

func setupBridge(t *testing.T) *bridgeEnv {
	ctrl := gomock.NewController(t)
	env := &bridgeEnv{
		item:   mocks.NewMockLoginItem(ctrl),
		client: mocks.NewMockIPCClient(ctrl),
	}
	handler := mocks.NewMockPixelHandler(ctrl)
	handler.EXPECT().Fire(gomock.Any()).Do(func(p pixels.Pixel) {
		env.mu.Lock()
		env.fired = append(env.fired, p.Name)
		env.mu.Unlock()
	}).AnyTimes()
	env.bridge = loginitem.NewBridge(env.item, env.client, handler)
	return env
}

// wait runs a fire-and-forget call and returns the error given to its completion
func wait(t *testing.T, call func(loginitem.Completion)) error {
	t.Helper()
	done := make(chan error, 1)
	call(func(err error) { done <- err })
	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("completion not called")
		return nil
	}
}

type verbMatcher ipc.Verb

func (m verbMatcher) Matches(x interface{}) bool {
	req, ok := x.(ipc.Request)
	return ok && req.Verb == ipc.Verb(m)
}

func (m verbMatcher) String() string {
	return "request with verb " + string(m)
}

func verbIs(verb ipc.Verb) gomock.Matcher {
	return verbMatcher(verb)
}

func TestBridge_ProfileSavedEnablesAgentFirst(t *testing.T) {
	env := setupBridge(t)

	gomock.InOrder(
		env.item.EXPECT().Enable(gomock.Any()).Return(nil),
		env.client.EXPECT().WaitReady(gomock.Any()).Return(nil),
		env.client.EXPECT().Send(gomock.Any(), verbIs(ipc.VerbProfileSaved)).Return(&ipc.Response{OK: true}, nil),
	)

	require.NoError(t, wait(t, env.bridge.ProfileSaved))
	assert.Equal(t, []string{"ipc.profileSaved.called", "ipc.profileSaved.acknowledged"}, env.pixelNames())
}

func TestBridge_ProfileSavedAgentNeverReady(t *testing.T) {
	env := setupBridge(t)

	env.item.EXPECT().Enable(gomock.Any()).Return(nil)
	env.client.EXPECT().WaitReady(gomock.Any()).Return(errors.New("agent did not become ready"))
	env.client.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

	assert.Error(t, wait(t, env.bridge.ProfileSaved))
	assert.Empty(t, env.pixelNames())
}

func TestBridge_AppLaunched(t *testing.T) {
	t.Run("not enabled", func(t *testing.T) {
		env := setupBridge(t)
		env.item.EXPECT().IsEnabled().Return(false)
		env.client.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

		require.NoError(t, wait(t, env.bridge.AppLaunched))
		assert.Empty(t, env.pixelNames())
	})

	t.Run("enabled", func(t *testing.T) {
		env := setupBridge(t)
		env.item.EXPECT().IsEnabled().Return(true)
		env.item.EXPECT().Enable(gomock.Any()).Return(nil)
		env.client.EXPECT().WaitReady(gomock.Any()).Return(nil)
		env.client.EXPECT().Send(gomock.Any(), verbIs(ipc.VerbAppLaunched)).Return(&ipc.Response{OK: true}, nil)

		require.NoError(t, wait(t, env.bridge.AppLaunched))
		assert.Equal(t, []string{"ipc.appLaunched.called", "ipc.appLaunched.acknowledged"}, env.pixelNames())
	})
}

func TestBridge_DataDeletedDisablesAgent(t *testing.T) {
	env := setupBridge(t)
	env.client.EXPECT().Close()
	env.item.EXPECT().Disable(gomock.Any()).Return(nil)

	require.NoError(t, wait(t, env.bridge.DataDeleted))
}

func TestBridge_Commands(t *testing.T) {
	tests := []struct {
		name string
		call func(b loginitem.Bridge, c loginitem.Completion)
		want ipc.Request
	}{
		{
			name: "immediate operations",
			call: func(b loginitem.Bridge, c loginitem.Completion) { b.StartImmediateOperations(true, c) },
			want: ipc.Request{Verb: ipc.VerbStartImmediateOperations, ShowWebView: true},
		},
		{
			name: "scheduled operations",
			call: func(b loginitem.Bridge, c loginitem.Completion) { b.StartScheduledOperations(false, c) },
			want: ipc.Request{Verb: ipc.VerbStartScheduledOperations},
		},
		{
			name: "run all opt-outs",
			call: func(b loginitem.Bridge, c loginitem.Completion) { b.RunAllOptOuts(true, c) },
			want: ipc.Request{Verb: ipc.VerbRunAllOptOuts, ShowWebView: true},
		},
		{
			name: "open browser",
			call: func(b loginitem.Bridge, c loginitem.Completion) { b.OpenBrowser("broker-a.com", c) },
			want: ipc.Request{Verb: ipc.VerbOpenBrowser, Domain: "broker-a.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupBridge(t)
			env.client.EXPECT().Send(gomock.Any(), tt.want).Return(&ipc.Response{OK: true}, nil)

			require.NoError(t, wait(t, func(c loginitem.Completion) { tt.call(env.bridge, c) }))
			verb := string(tt.want.Verb)
			assert.Equal(t, []string{"ipc." + verb + ".called", "ipc." + verb + ".acknowledged"}, env.pixelNames())
		})
	}
}

func TestBridge_FailedCallIsObservable(t *testing.T) {
	env := setupBridge(t)
	env.client.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil, ipc.ErrNoResponder)

	err := wait(t, func(c loginitem.Completion) { env.bridge.RunAllOptOuts(false, c) })
	assert.ErrorIs(t, err, ipc.ErrNoResponder)
	assert.Equal(t, []string{"ipc.runAllOptOuts.called", "ipc.runAllOptOuts.failed"}, env.pixelNames())
}

func TestBridge_NilCompletion(t *testing.T) {
	env := setupBridge(t)
	env.client.EXPECT().Send(gomock.Any(), gomock.Any()).Return(&ipc.Response{OK: true}, nil)

	env.bridge.StartScheduledOperations(false, nil)
	env.bridge.Wait()
	assert.Len(t, env.pixelNames(), 2)
}

func TestBridge_GetDebugMetadata(t *testing.T) {
	env := setupBridge(t)
	md := &ipc.DebugMetadata{AgentVersion: "1.0.0"}
	env.client.EXPECT().Send(gomock.Any(), verbIs(ipc.VerbGetDebugMetadata)).Return(&ipc.Response{OK: true, Metadata: md}, nil)

	got, err := env.bridge.GetDebugMetadata(context.Background())
	require.NoError(t, err)
	assert.Same(t, md, got)
}
