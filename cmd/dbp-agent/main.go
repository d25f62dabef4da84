package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/brokerguard/dbp/internal/adapter"
	"github.com/brokerguard/dbp/internal/agent"
	apiserver "github.com/brokerguard/dbp/internal/api/server"
	"github.com/brokerguard/dbp/internal/automation"
	"github.com/brokerguard/dbp/internal/brokers"
	"github.com/brokerguard/dbp/internal/config"
	"github.com/brokerguard/dbp/internal/datamanager"
	"github.com/brokerguard/dbp/internal/ipc"
	"github.com/brokerguard/dbp/internal/logger"
	"github.com/brokerguard/dbp/internal/mapper"
	"github.com/brokerguard/dbp/internal/pixels"
	"github.com/brokerguard/dbp/internal/ratelimit"
	"github.com/brokerguard/dbp/internal/scheduler"
	"github.com/brokerguard/dbp/internal/securevault"
	"github.com/brokerguard/dbp/internal/store"
)

var version = "dev"

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadAgentConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "dbp-agent",
			"version": version,
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting DBP agent", zap.String("version", version))

	// Open the keychain and unlock the vault
	kr, err := adapter.OpenKeyring(adapter.KeyringConfig{
		ServiceName:  cfg.Keystore.ServiceName,
		Backends:     cfg.Keystore.Backends,
		FileDir:      cfg.Keystore.FileDir,
		FilePassword: cfg.Keystore.FilePassword,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to open keychain", zap.Error(err))
	}
	vault := securevault.NewVault(securevault.NewCryptoProvider(), securevault.NewKeyStoreProvider(kr))
	if err := vault.Bootstrap(); err != nil {
		logger.FatalCtx(ctx, "Failed to bootstrap vault", zap.Error(err))
	}
	if err := vault.Unlock(); err != nil {
		logger.FatalCtx(ctx, "Failed to unlock vault", zap.Error(err))
	}
	defer vault.Lock()

	// Open the database
	db, err := store.Open(cfg.Storage.DBPath())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to open database", zap.Error(err), zap.String("path", cfg.Storage.DBPath()))
	}
	defer func() {
		if err := store.Close(db); err != nil {
			logger.Error(err)
		}
	}()
	logger.InfoCtx(ctx, "Opened database", zap.String("path", cfg.Storage.DBPath()))

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	launcher := adapter.NewProcessLauncher()

	dataManager := datamanager.NewDataManager(
		store.NewSQLiteStore(db),
		mapper.NewMapper(mapper.VaultMechanism(vault), jsonAdapter),
		clock,
		nil,
	)

	// Refresh broker definitions
	if cfg.Brokers.Dir != "" {
		refresher := brokers.NewRefresher(brokers.NewLoader(adapter.NewFileSystem(), jsonAdapter), cfg.Brokers.Dir, dataManager)
		if err := refresher.Refresh(ctx); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("dir", cfg.Brokers.Dir))
		}
	}

	// Initialize the automation runner
	var runner automation.Runner
	if cfg.Automation.EnginePath == "" {
		logger.WarnCtx(ctx, "No automation engine configured, jobs will fail and retry")
		runner = automation.NewUnavailableRunner()
	} else {
		runner = automation.NewExecRunner(cfg.Automation.EnginePath, cfg.Automation.Timeout, jsonAdapter, launcher)
	}
	runner = automation.NewBreakerRunner(runner, cfg.Automation.BreakerFailures, cfg.Automation.BreakerCooldown)

	rateProxy, err := ratelimit.NewProxy(ratelimit.Config{
		RequestsPerMinute: cfg.Automation.RatePerMinute,
		Burst:             cfg.Automation.RateBurst,
		MaxQueueTime:      cfg.Automation.RateMaxWait,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create rate limit proxy", zap.Error(err))
	}
	throttled := automation.NewThrottledRunner(runner, rateProxy)
	defer func() { _ = throttled.Close() }()
	runner = throttled

	// Initialize the scheduler
	jobs := scheduler.NewJobs(
		dataManager,
		runner,
		scheduler.NewCalculator(clock, cfg.Scheduler.MaxErrorBackoff),
		clock,
		pixels.NewHandler(),
	)
	sched := scheduler.NewScheduler(scheduler.Config{
		TickInterval: cfg.Scheduler.TickInterval,
		PoolSize:     cfg.Scheduler.PoolSize,
		QueueSize:    cfg.Scheduler.QueueSize,
	}, dataManager, jobs, clock)

	// Start the IPC server
	handler := agent.NewHandler(ctx, sched, launcher, version)
	ipcServer := ipc.NewServer(ipc.ServerConfig{
		Host:          cfg.IPC.Host,
		Port:          cfg.IPC.Port,
		SubjectPrefix: cfg.IPC.SubjectPrefix,
		Debug:         cfg.Debug,
	}, handler, jsonAdapter, adapter.NewNatsConnector(), clock)
	if err := ipcServer.Start(); err != nil {
		logger.FatalCtx(ctx, "Failed to start IPC server", zap.Error(err))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sched.Start(gctx)
	})

	var diagnostics *apiserver.Server
	if cfg.Metrics.Listen != "" {
		diagnostics = apiserver.New(apiserver.Config{Debug: cfg.Debug, Listen: cfg.Metrics.Listen}, sched, ipcServer.ReadySince)
		g.Go(diagnostics.Start)
	}

	if err := ipcServer.MarkReady(); err != nil {
		logger.ErrorCtx(ctx, err)
	}

	g.Go(func() error {
		<-gctx.Done()

		// Give running jobs time to finish
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		ipcServer.Shutdown()
		if diagnostics != nil {
			if err := diagnostics.Shutdown(shutdownCtx); err != nil {
				logger.ErrorCtx(shutdownCtx, err)
			}
		}
		if err := sched.Stop(shutdownCtx); err != nil {
			logger.ErrorCtx(shutdownCtx, err)
		}
		handler.Wait()
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.ErrorCtx(ctx, err)
	}
	logger.Info("DBP agent stopped")
}
