package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAgentConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		env         map[string]string
		expectError bool
		validate    func(*testing.T, *AgentConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
storage:
  dir: /tmp/dbp-test
  db_file: Test.db
keystore:
  service_name: com.example.dbp
  backends: [file]
ipc:
  host: 127.0.0.1
  port: 5000
  subject_prefix: test.agent
  request_timeout: 3s
scheduler:
  tick_interval: 5m
  pool_size: 4
  queue_size: 10
  max_error_backoff: 12h
automation:
  engine_path: /usr/local/bin/engine
  timeout: 1m
  breaker_failures: 5
  breaker_cooldown: 30m
  rate_per_minute: 6
  rate_burst: 2
  rate_max_wait: 1m
brokers:
  dir: /etc/dbp/brokers
metrics:
  listen: "127.0.0.1:9090"
`,
			validate: func(t *testing.T, cfg *AgentConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "/tmp/dbp-test/Test.db", cfg.Storage.DBPath())
				assert.Equal(t, "com.example.dbp", cfg.Keystore.ServiceName)
				assert.Equal(t, []string{"file"}, cfg.Keystore.Backends)
				assert.Equal(t, "/tmp/dbp-test/keys", cfg.Keystore.FileDir)
				assert.Equal(t, "nats://127.0.0.1:5000", cfg.IPC.URL())
				assert.Equal(t, "test.agent", cfg.IPC.SubjectPrefix)
				assert.Equal(t, 3*time.Second, cfg.IPC.RequestTimeout)
				assert.Equal(t, 5*time.Minute, cfg.Scheduler.TickInterval)
				assert.Equal(t, 4, cfg.Scheduler.PoolSize)
				assert.Equal(t, 10, cfg.Scheduler.QueueSize)
				assert.Equal(t, 12*time.Hour, cfg.Scheduler.MaxErrorBackoff)
				assert.Equal(t, "/usr/local/bin/engine", cfg.Automation.EnginePath)
				assert.Equal(t, uint32(5), cfg.Automation.BreakerFailures)
				assert.Equal(t, 30*time.Minute, cfg.Automation.BreakerCooldown)
				assert.Equal(t, 6.0, cfg.Automation.RatePerMinute)
				assert.Equal(t, 2, cfg.Automation.RateBurst)
				assert.Equal(t, time.Minute, cfg.Automation.RateMaxWait)
				assert.Equal(t, "/etc/dbp/brokers", cfg.Brokers.Dir)
				assert.Equal(t, "127.0.0.1:9090", cfg.Metrics.Listen)
			},
		},
		{
			name: "config with defaults",
			configFile: `
storage:
  dir: /tmp/dbp-defaults
`,
			validate: func(t *testing.T, cfg *AgentConfig) {
				assert.False(t, cfg.Debug)
				assert.Equal(t, "Vault.db", cfg.Storage.DBFile)
				assert.Equal(t, "com.brokerguard.dbp", cfg.Keystore.ServiceName)
				assert.Equal(t, "127.0.0.1", cfg.IPC.Host)
				assert.Equal(t, 4333, cfg.IPC.Port)
				assert.Equal(t, "dbp.agent", cfg.IPC.SubjectPrefix)
				assert.Equal(t, 10*time.Second, cfg.IPC.RequestTimeout)
				assert.Equal(t, 30*time.Second, cfg.IPC.ReadyTimeout)
				assert.Equal(t, 20*time.Minute, cfg.Scheduler.TickInterval)
				assert.Equal(t, 2, cfg.Scheduler.PoolSize)
				assert.Equal(t, 100, cfg.Scheduler.QueueSize)
				assert.Equal(t, 48*time.Hour, cfg.Scheduler.MaxErrorBackoff)
				assert.Equal(t, 5*time.Minute, cfg.Automation.Timeout)
				assert.Equal(t, uint32(3), cfg.Automation.BreakerFailures)
				assert.Equal(t, time.Hour, cfg.Automation.BreakerCooldown)
				assert.Equal(t, 2.0, cfg.Automation.RatePerMinute)
				assert.Equal(t, 1, cfg.Automation.RateBurst)
				assert.Equal(t, 5*time.Minute, cfg.Automation.RateMaxWait)
				assert.Empty(t, cfg.Automation.EnginePath)
			},
		},
		{
			name:       "missing config file uses env",
			configFile: "",
			env: map[string]string{
				"DBP_STORAGE_DIR":         "/tmp/from-env",
				"DBP_SCHEDULER_POOL_SIZE": "3",
				"DBP_IPC_PORT":            "6000",
			},
			validate: func(t *testing.T, cfg *AgentConfig) {
				assert.Equal(t, "/tmp/from-env", cfg.Storage.Dir)
				assert.Equal(t, 3, cfg.Scheduler.PoolSize)
				assert.Equal(t, 6000, cfg.IPC.Port)
			},
		},
		{
			name: "invalid pool size",
			configFile: `
scheduler:
  pool_size: 0
`,
			expectError: true,
		},
		{
			name: "invalid automation rate",
			configFile: `
automation:
  rate_per_minute: 0
`,
			expectError: true,
		},
		{
			name: "invalid port",
			configFile: `
ipc:
  port: 70000
`,
			expectError: true,
		},
		{
			name: "invalid yaml",
			configFile: `
				scheduler:
				  pool_size: invalid
			`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			var configFile string
			if tt.configFile != "" {
				configFile = filepath.Join(tmpDir, "config.yaml")
				err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
				require.NoError(t, err)
			} else {
				configFile = filepath.Join(tmpDir, "nonexistent.yaml")
			}

			cfg, err := LoadAgentConfig(configFile, tmpDir)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadClientConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		envFile     string
		expectError bool
		validate    func(*testing.T, *ClientConfig)
	}{
		{
			name: "valid config file",
			configFile: `
agent:
  binary_path: /opt/dbp/dbp-agent
  config_file: /opt/dbp/agent.yaml
features:
  enabled: false
  rollout_percent: 25
`,
			validate: func(t *testing.T, cfg *ClientConfig) {
				assert.Equal(t, "/opt/dbp/dbp-agent", cfg.Agent.BinaryPath)
				assert.Equal(t, "/opt/dbp/agent.yaml", cfg.Agent.ConfigFile)
				assert.False(t, cfg.Features.Enabled)
				assert.Equal(t, 25, cfg.Features.RolloutPercent)
			},
		},
		{
			name:       "defaults",
			configFile: "debug: false\n",
			validate: func(t *testing.T, cfg *ClientConfig) {
				assert.True(t, cfg.Features.Enabled)
				assert.Equal(t, 100, cfg.Features.RolloutPercent)
				assert.True(t, cfg.Features.Entitled)
				assert.Equal(t, 4333, cfg.IPC.Port)
			},
		},
		{
			name:       "env file overrides",
			configFile: "debug: false\n",
			envFile:    "DBP_FEATURES_ROLLOUT_PERCENT=10\nDBP_KEYSTORE_FILE_PASSWORD=secret\n",
			validate: func(t *testing.T, cfg *ClientConfig) {
				assert.Equal(t, 10, cfg.Features.RolloutPercent)
				assert.Equal(t, "secret", cfg.Keystore.FilePassword)
			},
		},
		{
			name: "rollout out of range",
			configFile: `
features:
  rollout_percent: 150
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			require.NoError(t, os.WriteFile(configFile, []byte(tt.configFile), 0600))

			if tt.envFile != "" {
				require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".env.dbp.local"), []byte(tt.envFile), 0600))
				// godotenv writes straight into the process environment
				t.Setenv("DBP_FEATURES_ROLLOUT_PERCENT", "")
				t.Setenv("DBP_KEYSTORE_FILE_PASSWORD", "")
			}

			cfg, err := LoadClientConfig(configFile, tmpDir)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}
