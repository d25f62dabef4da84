package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPrefix      = "DBP"
	defaultDBFile  = "Vault.db"
	defaultService = "com.brokerguard.dbp"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// StorageConfig holds the location of the encrypted database
type StorageConfig struct {
	Dir    string `mapstructure:"dir"`
	DBFile string `mapstructure:"db_file"`
}

// DBPath returns the full path of the database file
func (c *StorageConfig) DBPath() string {
	return filepath.Join(c.Dir, c.DBFile)
}

// KeystoreConfig holds keychain configuration
type KeystoreConfig struct {
	ServiceName  string   `mapstructure:"service_name"`
	Backends     []string `mapstructure:"backends"`
	FileDir      string   `mapstructure:"file_dir"`
	FilePassword string   `mapstructure:"file_password"`
}

// IPCConfig holds the agent IPC configuration shared by both processes
type IPCConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	SubjectPrefix  string        `mapstructure:"subject_prefix"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	ReadyTimeout   time.Duration `mapstructure:"ready_timeout"`
}

// URL returns the NATS client URL of the agent
func (c *IPCConfig) URL() string {
	return fmt.Sprintf("nats://%s:%d", c.Host, c.Port)
}

// SchedulerConfig holds scheduler configuration
type SchedulerConfig struct {
	TickInterval    time.Duration `mapstructure:"tick_interval"`
	PoolSize        int           `mapstructure:"pool_size"`
	QueueSize       int           `mapstructure:"queue_size"`
	MaxErrorBackoff time.Duration `mapstructure:"max_error_backoff"`
}

// AutomationConfig holds configuration of the external broker automation engine
type AutomationConfig struct {
	EnginePath      string        `mapstructure:"engine_path"`
	Timeout         time.Duration `mapstructure:"timeout"`
	BreakerFailures uint32        `mapstructure:"breaker_failures"`
	BreakerCooldown time.Duration `mapstructure:"breaker_cooldown"`
	RatePerMinute   float64       `mapstructure:"rate_per_minute"`
	RateBurst       int           `mapstructure:"rate_burst"`
	RateMaxWait     time.Duration `mapstructure:"rate_max_wait"`
}

// BrokersConfig holds the broker definition feed location
type BrokersConfig struct {
	Dir string `mapstructure:"dir"`
}

// AgentLaunchConfig tells the app where the agent binary lives
type AgentLaunchConfig struct {
	BinaryPath string `mapstructure:"binary_path"`
	ConfigFile string `mapstructure:"config_file"`
}

// FeaturesConfig holds the privacy configuration and rollout of the feature
type FeaturesConfig struct {
	Enabled        bool `mapstructure:"enabled"`
	RolloutPercent int  `mapstructure:"rollout_percent"`
	Entitled       bool `mapstructure:"entitled"`
}

// MetricsConfig holds the prometheus endpoint configuration
type MetricsConfig struct {
	Listen string `mapstructure:"listen"`
}

// AgentConfig holds configuration for dbp-agent
type AgentConfig struct {
	BaseConfig `mapstructure:",squash"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Keystore   KeystoreConfig   `mapstructure:"keystore"`
	IPC        IPCConfig        `mapstructure:"ipc"`
	Scheduler  SchedulerConfig  `mapstructure:"scheduler"`
	Automation AutomationConfig `mapstructure:"automation"`
	Brokers    BrokersConfig    `mapstructure:"brokers"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// ClientConfig holds configuration for the dbp control binary
type ClientConfig struct {
	BaseConfig `mapstructure:",squash"`
	Storage    StorageConfig     `mapstructure:"storage"`
	Keystore   KeystoreConfig    `mapstructure:"keystore"`
	IPC        IPCConfig         `mapstructure:"ipc"`
	Agent      AgentLaunchConfig `mapstructure:"agent"`
	Features   FeaturesConfig    `mapstructure:"features"`
	Brokers    BrokersConfig     `mapstructure:"brokers"`
}

// LoadAgentConfig loads configuration for dbp-agent
func LoadAgentConfig(configFile string, envPath string) (*AgentConfig, error) {
	v := configureViper("dbp-agent", configFile, envPath)

	setCommonDefaults(v)
	v.SetDefault("scheduler.tick_interval", "20m")
	v.SetDefault("scheduler.pool_size", 2)
	v.SetDefault("scheduler.queue_size", 100)
	v.SetDefault("scheduler.max_error_backoff", "48h")
	v.SetDefault("automation.timeout", "5m")
	v.SetDefault("automation.breaker_failures", 3)
	v.SetDefault("automation.breaker_cooldown", "1h")
	v.SetDefault("automation.rate_per_minute", 2)
	v.SetDefault("automation.rate_burst", 1)
	v.SetDefault("automation.rate_max_wait", "5m")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config AgentConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	finalizeKeystore(&config.Keystore, &config.Storage)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadClientConfig loads configuration for the dbp control binary
func LoadClientConfig(configFile string, envPath string) (*ClientConfig, error) {
	v := configureViper("dbp", configFile, envPath)

	setCommonDefaults(v)
	v.SetDefault("features.enabled", true)
	v.SetDefault("features.rollout_percent", 100)
	v.SetDefault("features.entitled", true)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config ClientConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	finalizeKeystore(&config.Keystore, &config.Storage)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks value ranges viper cannot express
func (c *AgentConfig) Validate() error {
	if err := validateIPC(&c.IPC); err != nil {
		return err
	}
	if c.Scheduler.PoolSize < 1 {
		return fmt.Errorf("scheduler.pool_size must be at least 1, got %d", c.Scheduler.PoolSize)
	}
	if c.Automation.RatePerMinute <= 0 {
		return fmt.Errorf("automation.rate_per_minute must be positive, got %v", c.Automation.RatePerMinute)
	}
	return nil
}

// Validate checks value ranges viper cannot express
func (c *ClientConfig) Validate() error {
	if err := validateIPC(&c.IPC); err != nil {
		return err
	}
	if c.Features.RolloutPercent < 0 || c.Features.RolloutPercent > 100 {
		return fmt.Errorf("features.rollout_percent must be within 0..100, got %d", c.Features.RolloutPercent)
	}
	return nil
}

func validateIPC(c *IPCConfig) error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("ipc.port must be within 0..65535, got %d", c.Port)
	}
	return nil
}

func setCommonDefaults(v *viper.Viper) {
	v.SetDefault("storage.dir", filepath.Join(xdg.DataHome, "dbp"))
	v.SetDefault("storage.db_file", defaultDBFile)
	v.SetDefault("keystore.service_name", defaultService)
	v.SetDefault("ipc.host", "127.0.0.1")
	v.SetDefault("ipc.port", 4333)
	v.SetDefault("ipc.subject_prefix", "dbp.agent")
	v.SetDefault("ipc.request_timeout", "10s")
	v.SetDefault("ipc.ready_timeout", "30s")
}

// finalizeKeystore derives defaults that depend on other keys
func finalizeKeystore(k *KeystoreConfig, s *StorageConfig) {
	if k.FileDir == "" {
		k.FileDir = filepath.Join(s.Dir, "keys")
	}
}

// readConfig reads the config file, tolerating its absence
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			// Config file not found, use environment variables
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Storage
		"storage.dir",
		"storage.db_file",
		// Keystore
		"keystore.service_name",
		"keystore.backends",
		"keystore.file_dir",
		"keystore.file_password",
		// IPC
		"ipc.host",
		"ipc.port",
		"ipc.subject_prefix",
		"ipc.request_timeout",
		"ipc.ready_timeout",
		// Scheduler
		"scheduler.tick_interval",
		"scheduler.pool_size",
		"scheduler.queue_size",
		"scheduler.max_error_backoff",
		// Automation
		"automation.engine_path",
		"automation.timeout",
		"automation.breaker_failures",
		"automation.breaker_cooldown",
		"automation.rate_per_minute",
		"automation.rate_burst",
		"automation.rate_max_wait",
		// Brokers
		"brokers.dir",
		// Agent launch
		"agent.binary_path",
		"agent.config_file",
		// Features
		"features.enabled",
		"features.rollout_percent",
		"features.entitled",
		// Metrics
		"metrics.listen",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the closest parent holding a config directory
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}
