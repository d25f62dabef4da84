package ipc_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brokerguard/dbp/internal/adapter"
	"github.com/brokerguard/dbp/internal/ipc"
	"github.com/brokerguard/dbp/internal/mocks"
)

const prefix = "test.agent"

var readyAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type ipcEnv struct {
	server  *ipc.Server
	handler *mocks.MockIPCHandler
	client  ipc.Client
}

func setupIPC(t *testing.T) *ipcEnv {
	ctrl := gomock.NewController(t)
	handler := mocks.NewMockIPCHandler(ctrl)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(readyAt).AnyTimes()

	server := ipc.NewServer(ipc.ServerConfig{Host: "127.0.0.1", Port: -1, SubjectPrefix: prefix},
		handler, adapter.NewJSON(), adapter.NewNatsConnector(), clock)
	require.NoError(t, server.Start())
	t.Cleanup(server.Shutdown)

	client := ipc.NewClient(ipc.ClientConfig{
		URL:            server.ClientURL(),
		SubjectPrefix:  prefix,
		RequestTimeout: 2 * time.Second,
		ReadyTimeout:   2 * time.Second,
	}, adapter.NewNatsConnector(), adapter.NewJSON())
	t.Cleanup(client.Close)

	return &ipcEnv{server: server, handler: handler, client: client}
}

func TestPing_OnlyAfterReady(t *testing.T) {
	env := setupIPC(t)
	ctx := context.Background()

	_, err := env.client.Send(ctx, ipc.Request{Verb: ipc.VerbPing})
	assert.ErrorIs(t, err, ipc.ErrNotReady)

	// commands are refused as well while starting
	_, err = env.client.Send(ctx, ipc.Request{Verb: ipc.VerbAppLaunched})
	assert.ErrorIs(t, err, ipc.ErrNotReady)

	require.NoError(t, env.server.MarkReady())

	resp, err := env.client.Send(ctx, ipc.Request{Verb: ipc.VerbPing})
	require.NoError(t, err)
	assert.True(t, resp.OK)
	assert.NotEmpty(t, resp.ID)
}

func TestWaitReady(t *testing.T) {
	env := setupIPC(t)

	go func() {
		time.Sleep(200 * time.Millisecond)
		_ = env.server.MarkReady()
	}()

	require.NoError(t, env.client.WaitReady(context.Background()))
	require.NotNil(t, env.server.ReadySince())
	assert.Equal(t, readyAt, *env.server.ReadySince())
}

func TestWaitReady_TimesOut(t *testing.T) {
	env := setupIPC(t)
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	assert.Error(t, env.client.WaitReady(ctx))
}

func TestWaitReady_WakesOnReadyAnnouncement(t *testing.T) {
	env := setupIPC(t)
	// pings back off far beyond the test's patience, only the announcement can end the wait in time
	client := ipc.NewClient(ipc.ClientConfig{
		URL:           env.server.ClientURL(),
		SubjectPrefix: prefix,
		ReadyTimeout:  10 * time.Second,
		ReadyPollMax:  time.Minute,
	}, adapter.NewNatsConnector(), adapter.NewJSON())
	defer client.Close()

	markedAt := make(chan time.Time, 1)
	go func() {
		time.Sleep(2 * time.Second)
		markedAt <- time.Now()
		_ = env.server.MarkReady()
	}()

	require.NoError(t, client.WaitReady(context.Background()))
	returned := time.Now()
	assert.Less(t, returned.Sub(<-markedAt), 500*time.Millisecond)
}

func TestReadyAnnouncement(t *testing.T) {
	env := setupIPC(t)

	nc, err := nats.Connect(env.server.ClientURL())
	require.NoError(t, err)
	defer nc.Close()

	announced := make(chan *nats.Msg, 1)
	_, err = nc.ChanSubscribe(ipc.ReadySubject(prefix), announced)
	require.NoError(t, err)
	require.NoError(t, nc.Flush())

	require.NoError(t, env.server.MarkReady())

	select {
	case msg := <-announced:
		ts, err := time.Parse(time.RFC3339Nano, string(msg.Data))
		require.NoError(t, err)
		assert.True(t, readyAt.Equal(ts))
	case <-time.After(2 * time.Second):
		t.Fatal("ready announcement not received")
	}
}

func TestDispatch(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name    string
		req     ipc.Request
		setup   func(h *mocks.MockIPCHandler)
		wantErr string
	}{
		{
			name:  "profile saved",
			req:   ipc.Request{Verb: ipc.VerbProfileSaved},
			setup: func(h *mocks.MockIPCHandler) { h.EXPECT().ProfileSaved(gomock.Any()).Return(nil) },
		},
		{
			name:  "app launched",
			req:   ipc.Request{Verb: ipc.VerbAppLaunched},
			setup: func(h *mocks.MockIPCHandler) { h.EXPECT().AppLaunched(gomock.Any()).Return(nil) },
		},
		{
			name: "immediate operations",
			req:  ipc.Request{Verb: ipc.VerbStartImmediateOperations, ShowWebView: true},
			setup: func(h *mocks.MockIPCHandler) {
				h.EXPECT().StartImmediateOperations(gomock.Any(), true).Return(nil)
			},
		},
		{
			name: "scheduled operations",
			req:  ipc.Request{Verb: ipc.VerbStartScheduledOperations},
			setup: func(h *mocks.MockIPCHandler) {
				h.EXPECT().StartScheduledOperations(gomock.Any(), false).Return(nil)
			},
		},
		{
			name:  "run all opt-outs",
			req:   ipc.Request{Verb: ipc.VerbRunAllOptOuts, ShowWebView: true},
			setup: func(h *mocks.MockIPCHandler) { h.EXPECT().RunAllOptOuts(gomock.Any(), true).Return(nil) },
		},
		{
			name:  "open browser",
			req:   ipc.Request{Verb: ipc.VerbOpenBrowser, Domain: "broker-a.com"},
			setup: func(h *mocks.MockIPCHandler) { h.EXPECT().OpenBrowser(gomock.Any(), "broker-a.com").Return(nil) },
		},
		{
			name:    "handler error",
			req:     ipc.Request{Verb: ipc.VerbAppLaunched},
			setup:   func(h *mocks.MockIPCHandler) { h.EXPECT().AppLaunched(gomock.Any()).Return(boom) },
			wantErr: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupIPC(t)
			require.NoError(t, env.server.MarkReady())
			tt.setup(env.handler)

			resp, err := env.client.Send(context.Background(), tt.req)
			if tt.wantErr != "" {
				var remote *ipc.RemoteError
				require.ErrorAs(t, err, &remote)
				assert.Equal(t, tt.req.Verb, remote.Verb)
				assert.Equal(t, tt.wantErr, remote.Message)
				return
			}
			require.NoError(t, err)
			assert.True(t, resp.OK)
		})
	}
}

func TestDebugMetadata(t *testing.T) {
	env := setupIPC(t)
	require.NoError(t, env.server.MarkReady())

	env.handler.EXPECT().DebugMetadata(gomock.Any()).Return(&ipc.DebugMetadata{
		AgentVersion: "1.2.3",
		AgentPID:     42,
		Scheduled:    true,
		ScansRun:     7,
	}, nil)

	resp, err := env.client.Send(context.Background(), ipc.Request{Verb: ipc.VerbGetDebugMetadata})
	require.NoError(t, err)
	require.NotNil(t, resp.Metadata)
	assert.Equal(t, "1.2.3", resp.Metadata.AgentVersion)
	assert.Equal(t, 42, resp.Metadata.AgentPID)
	assert.True(t, resp.Metadata.Scheduled)
	assert.Equal(t, int64(7), resp.Metadata.ScansRun)
	require.NotNil(t, resp.Metadata.ReadySince)
	assert.True(t, readyAt.Equal(*resp.Metadata.ReadySince))
}

func TestUnknownVerbGetsErrorResponse(t *testing.T) {
	env := setupIPC(t)
	require.NoError(t, env.server.MarkReady())

	// the client refuses to send unknown verbs
	_, err := env.client.Send(context.Background(), ipc.Request{Verb: "selfDestruct"})
	assert.ErrorIs(t, err, ipc.ErrUnknownVerb)

	nc, err := nats.Connect(env.server.ClientURL())
	require.NoError(t, err)
	defer nc.Close()

	msg, err := nc.Request(ipc.CommandSubject(prefix), []byte(`{"id":"1","verb":"selfDestruct"}`), 2*time.Second)
	require.NoError(t, err)
	var resp ipc.Response
	require.NoError(t, adapter.NewJSON().Unmarshal(msg.Data, &resp))
	assert.Equal(t, "1", resp.ID)
	assert.False(t, resp.OK)
	assert.Contains(t, resp.Error, "unknown verb")

	msg, err = nc.Request(ipc.CommandSubject(prefix), []byte(`not json`), 2*time.Second)
	require.NoError(t, err)
	require.NoError(t, adapter.NewJSON().Unmarshal(msg.Data, &resp))
	assert.False(t, resp.OK)
	assert.Contains(t, resp.Error, "malformed request")
}

func TestSend_NoAgent(t *testing.T) {
	client := ipc.NewClient(ipc.ClientConfig{
		URL:            "nats://127.0.0.1:1",
		SubjectPrefix:  prefix,
		RequestTimeout: time.Second,
	}, adapter.NewNatsConnector(), adapter.NewJSON())
	defer client.Close()

	_, err := client.Send(context.Background(), ipc.Request{Verb: ipc.VerbPing})
	assert.Error(t, err)
}

func TestSend_NoResponder(t *testing.T) {
	env := setupIPC(t)
	other := ipc.NewClient(ipc.ClientConfig{
		URL:            env.server.ClientURL(),
		SubjectPrefix:  "nobody.home",
		RequestTimeout: time.Second,
	}, adapter.NewNatsConnector(), adapter.NewJSON())
	defer other.Close()

	_, err := other.Send(context.Background(), ipc.Request{Verb: ipc.VerbPing})
	assert.ErrorIs(t, err, ipc.ErrNoResponder)
}

func TestRequest_Validate(t *testing.T) {
	assert.NoError(t, ipc.Request{Verb: ipc.VerbPing}.Validate())
	assert.Error(t, ipc.Request{Verb: ipc.VerbOpenBrowser}.Validate())
	assert.NoError(t, ipc.Request{Verb: ipc.VerbOpenBrowser, Domain: "broker-a.com"}.Validate())
	assert.ErrorIs(t, ipc.Request{Verb: "nope"}.Validate(), ipc.ErrUnknownVerb)
}
