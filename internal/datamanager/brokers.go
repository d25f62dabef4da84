package datamanager

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/brokerguard/dbp/internal/domain"
	"github.com/brokerguard/dbp/internal/logger"
)

// UpsertBrokers stores the broker feed.
// A new broker gets a scan, due now, for every active query of the current profile.
// A failing broker does not stop the others.
func (d *dataManager) UpsertBrokers(ctx context.Context, brokers []domain.Broker) error {
	activeQueries, err := d.activeQueryIDs(ctx)
	if err != nil {
		return err
	}

	var errs []error
	for _, broker := range brokers {
		if err := d.upsertBroker(ctx, broker, activeQueries); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("broker", broker.Name))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (d *dataManager) upsertBroker(ctx context.Context, broker domain.Broker, activeQueries []int64) error {
	existing, err := d.store.FetchBrokerByName(ctx, broker.Name)
	if err != nil {
		return fmt.Errorf("failed to fetch broker %s: %w", broker.Name, err)
	}

	if existing != nil {
		if existing.Version == broker.Version {
			return nil
		}
		broker.ID = &existing.ID
		row, err := d.mapper.BrokerToDB(broker)
		if err != nil {
			return err
		}
		if err := d.store.UpdateBroker(ctx, row); err != nil {
			return fmt.Errorf("failed to update broker %s: %w", broker.Name, err)
		}
		logger.InfoCtx(ctx, "Updated broker",
			zap.String("broker", broker.Name),
			zap.String("from_version", existing.Version),
			zap.String("to_version", broker.Version))
		return nil
	}

	broker.ID = nil
	row, err := d.mapper.BrokerToDB(broker)
	if err != nil {
		return err
	}
	brokerID, err := d.store.SaveBroker(ctx, row)
	if err != nil {
		return fmt.Errorf("failed to save broker %s: %w", broker.Name, err)
	}

	now := d.clock.Now()
	for _, queryID := range activeQueries {
		if err := d.store.SaveScan(ctx, brokerID, queryID, nil, &now); err != nil {
			return fmt.Errorf("failed to save scan for broker %s: %w", broker.Name, err)
		}
	}
	logger.InfoCtx(ctx, "Added broker",
		zap.String("broker", broker.Name),
		zap.Int("scans", len(activeQueries)))
	return nil
}

func (d *dataManager) activeQueryIDs(ctx context.Context) ([]int64, error) {
	current, err := d.store.FetchCurrentProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	if current == nil {
		return nil, nil
	}
	rows, err := d.store.FetchAllProfileQueries(ctx, current.Profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile queries: %w", err)
	}
	var ids []int64
	for _, row := range rows {
		if !row.Deprecated {
			ids = append(ids, row.ID)
		}
	}
	return ids, nil
}
