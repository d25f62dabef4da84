package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"github.com/brokerguard/dbp/internal/adapter"
	"github.com/brokerguard/dbp/internal/config"
	"github.com/brokerguard/dbp/internal/datamanager"
	"github.com/brokerguard/dbp/internal/feature"
	"github.com/brokerguard/dbp/internal/ipc"
	"github.com/brokerguard/dbp/internal/logger"
	"github.com/brokerguard/dbp/internal/loginitem"
	"github.com/brokerguard/dbp/internal/mapper"
	"github.com/brokerguard/dbp/internal/pixels"
	"github.com/brokerguard/dbp/internal/securevault"
	"github.com/brokerguard/dbp/internal/store"
)

// app holds the app side services shared by the commands
type app struct {
	cfg        *config.ClientConfig
	db         *gorm.DB
	vault      *securevault.Vault
	dm         datamanager.DataManager
	item       loginitem.LoginItem
	bridge     loginitem.Bridge
	client     ipc.Client
	gatekeeper feature.Gatekeeper
	disabler   *feature.Disabler
	delegate   *bridgeDelegate
}

// openApp loads configuration and wires the services
func openApp() (*app, error) {
	cfg, err := config.LoadClientConfig(configFile, envPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "dbp",
			"version": version,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	kr, err := adapter.OpenKeyring(adapter.KeyringConfig{
		ServiceName:  cfg.Keystore.ServiceName,
		Backends:     cfg.Keystore.Backends,
		FileDir:      cfg.Keystore.FileDir,
		FilePassword: cfg.Keystore.FilePassword,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open keychain: %w", err)
	}
	vault := securevault.NewVault(securevault.NewCryptoProvider(), securevault.NewKeyStoreProvider(kr))
	if err := vault.Bootstrap(); err != nil {
		return nil, fmt.Errorf("failed to bootstrap vault: %w", err)
	}
	if err := vault.Unlock(); err != nil {
		return nil, fmt.Errorf("failed to unlock vault: %w", err)
	}

	db, err := store.Open(cfg.Storage.DBPath())
	if err != nil {
		return nil, err
	}
	st := store.NewSQLiteStore(db)

	jsonAdapter := adapter.NewJSON()
	client := ipc.NewClient(ipc.ClientConfig{
		URL:            cfg.IPC.URL(),
		SubjectPrefix:  cfg.IPC.SubjectPrefix,
		RequestTimeout: cfg.IPC.RequestTimeout,
		ReadyTimeout:   cfg.IPC.ReadyTimeout,
	}, adapter.NewNatsConnector(), jsonAdapter)

	item := loginitem.NewLoginItem(loginitem.Config{
		AgentPath:       cfg.Agent.BinaryPath,
		AgentConfigFile: cfg.Agent.ConfigFile,
		StateDir:        filepath.Join(cfg.Storage.Dir, "agent"),
	}, adapter.NewFileSystem(), adapter.NewProcessLauncher())
	bridge := loginitem.NewBridge(item, client, pixels.NewHandler())
	delegate := &bridgeDelegate{bridge: bridge}

	dm := datamanager.NewDataManager(st, mapper.NewMapper(mapper.VaultMechanism(vault), jsonAdapter), adapter.NewClock(), delegate)

	gatekeeper := feature.NewGatekeeper(
		feature.StaticPrivacyConfig{feature.Name: cfg.Features.Enabled},
		feature.NewRollout(st),
		cfg.Features.RolloutPercent,
		feature.StaticEntitlement(cfg.Features.Entitled),
	)

	return &app{
		cfg:        cfg,
		db:         db,
		vault:      vault,
		dm:         dm,
		item:       item,
		bridge:     bridge,
		client:     client,
		gatekeeper: gatekeeper,
		disabler:   feature.NewDisabler(dm, vault, bridge, gatekeeper),
		delegate:   delegate,
	}, nil
}

// Close waits for calls in flight and releases resources
func (a *app) Close() {
	a.bridge.Wait()
	a.client.Close()
	a.vault.Lock()
	if err := store.Close(a.db); err != nil {
		logger.Error(err)
	}
	logger.Flush(2 * time.Second)
}

// requireEnabled fails when the gatekeeper does not allow the feature
func (a *app) requireEnabled(ctx context.Context) error {
	enabled, err := a.gatekeeper.IsEnabled(ctx)
	if err != nil {
		return err
	}
	if !enabled {
		return errors.New("data broker protection is not available on this install")
	}
	return nil
}

// call runs a fire-and-forget bridge call and waits for its completion
func call(ctx context.Context, fn func(loginitem.Completion)) error {
	done := make(chan error, 1)
	fn(func(err error) { done <- err })
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// bridgeDelegate forwards data manager notifications to the agent
type bridgeDelegate struct {
	bridge loginitem.Bridge

	mu  sync.Mutex
	err error
}

func (d *bridgeDelegate) OnProfileSaved(ctx context.Context) {
	d.bridge.ProfileSaved(func(err error) {
		if err == nil {
			return
		}
		logger.WarnCtx(ctx, "Agent was not notified of the saved profile", zap.Error(err))
		d.mu.Lock()
		d.err = err
		d.mu.Unlock()
	})
}

// OnProfileDeleted does nothing; the disabler stops the agent itself
func (d *bridgeDelegate) OnProfileDeleted(context.Context) {}

// Err returns the last notification failure
func (d *bridgeDelegate) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.err
}
