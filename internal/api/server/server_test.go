package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brokerguard/dbp/internal/api/server"
	"github.com/brokerguard/dbp/internal/mocks"
	"github.com/brokerguard/dbp/internal/scheduler"
)

func TestHealth(t *testing.T) {
	readyAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		ready      *time.Time
		wantStatus int
		wantBody   string
	}{
		{name: "starting", ready: nil, wantStatus: http.StatusServiceUnavailable, wantBody: "starting"},
		{name: "ready", ready: &readyAt, wantStatus: http.StatusOK, wantBody: "ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			s := server.New(server.Config{}, mocks.NewMockScheduler(ctrl), func() *time.Time { return tt.ready })

			rec := httptest.NewRecorder()
			s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body["status"])
		})
	}
}

func TestStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	sched := mocks.NewMockScheduler(ctrl)
	sched.EXPECT().Status().Return(scheduler.Status{Scheduled: true, ScansRun: 4, OptOutsRun: 2, Aborted: 1})

	s := server.New(server.Config{}, sched, func() *time.Time { return nil })
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["scheduled"])
	assert.Equal(t, float64(4), body["scansRun"])
	assert.Equal(t, float64(2), body["optOutsRun"])
	assert.Equal(t, float64(1), body["aborted"])
}

func TestMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := server.New(server.Config{}, mocks.NewMockScheduler(ctrl), func() *time.Time { return nil })

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
