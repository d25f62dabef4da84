package logger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/brokerguard/dbp/internal/logger"
)

func TestDefault_BeforeInitialize(t *testing.T) {
	assert.NotNil(t, logger.Default())
	assert.NotPanics(t, func() {
		logger.Info("not initialized yet", zap.Int64("broker_id", 1))
		logger.ErrorCtx(context.Background(), errors.New("boom"))
	})
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name string
		cfg  func(t *testing.T) logger.Config
	}{
		{
			name: "debug without sentry",
			cfg: func(t *testing.T) logger.Config {
				return logger.Config{Debug: true}
			},
		},
		{
			name: "production without sentry",
			cfg: func(t *testing.T) logger.Config {
				return logger.Config{}
			},
		},
		{
			name: "with sentry client",
			cfg: func(t *testing.T) logger.Config {
				client, err := sentry.NewClient(sentry.ClientOptions{})
				require.NoError(t, err)
				return logger.Config{
					SentryClient: client,
					Tags:         map[string]string{"service": "test"},
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, logger.Initialize(tt.cfg(t)))
			assert.NotNil(t, logger.Default())
			assert.NotNil(t, logger.Named("store"))
			assert.NotPanics(t, func() {
				logger.InfoCtx(context.Background(), "initialized")
				logger.Error(nil)
				logger.Flush(100 * time.Millisecond)
			})
		})
	}
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := logger.Replace(zap.New(core))
	defer restore()

	ctx := logger.WithFields(context.Background(), zap.String("job", "scan-1-2"))
	ctx = logger.WithFields(ctx, zap.String("job_kind", "scan"))
	logger.InfoCtx(ctx, "Scan finished")
	logger.InfoCtx(context.Background(), "Cycle completed")

	entries := logs.All()
	require.Len(t, entries, 2)
	fields := entries[0].ContextMap()
	assert.Equal(t, "scan-1-2", fields["job"])
	assert.Equal(t, "scan", fields["job_kind"])
	assert.NotContains(t, entries[1].ContextMap(), "job")
}
