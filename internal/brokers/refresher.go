package brokers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/brokerguard/dbp/internal/datamanager"
	"github.com/brokerguard/dbp/internal/logger"
)

// Refresher pushes the broker definitions found on disk into the database
type Refresher struct {
	loader *Loader
	dir    string
	dm     datamanager.DataManager
}

// NewRefresher creates a refresher for the definitions in dir
func NewRefresher(loader *Loader, dir string, dm datamanager.DataManager) *Refresher {
	return &Refresher{loader: loader, dir: dir, dm: dm}
}

// Refresh loads the definitions and upserts them.
// New brokers get scans for every active profile query; changed versions replace the stored definition.
func (r *Refresher) Refresh(ctx context.Context) error {
	brokers, err := r.loader.LoadDirectory(r.dir)
	if err != nil {
		return err
	}
	if err := r.dm.UpsertBrokers(ctx, brokers); err != nil {
		return fmt.Errorf("failed to upsert brokers: %w", err)
	}

	logger.InfoCtx(ctx, "Refreshed broker definitions",
		zap.String("dir", r.dir),
		zap.Int("brokers", len(brokers)))
	return nil
}
