package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/brokerguard/dbp/internal/store/schema"
)

func (s *sqliteStore) SaveScan(ctx context.Context, brokerID, profileQueryID int64, lastRunDate, preferredRunDate *time.Time) error {
	return s.write(ctx, "save scan", func(tx *gorm.DB) error {
		return tx.Create(&schema.ScanDB{
			BrokerID:         brokerID,
			ProfileQueryID:   profileQueryID,
			LastRunDate:      utc(lastRunDate),
			PreferredRunDate: utc(preferredRunDate),
		}).Error
	})
}

func (s *sqliteStore) UpdateScanPreferredRunDate(ctx context.Context, brokerID, profileQueryID int64, date *time.Time) error {
	return s.updateScan(ctx, "update scan preferred run date", brokerID, profileQueryID, "preferred_run_date", utc(date))
}

func (s *sqliteStore) UpdateScanLastRunDate(ctx context.Context, brokerID, profileQueryID int64, date *time.Time) error {
	return s.updateScan(ctx, "update scan last run date", brokerID, profileQueryID, "last_run_date", utc(date))
}

func (s *sqliteStore) updateScan(ctx context.Context, op string, brokerID, profileQueryID int64, column string, value *time.Time) error {
	return s.write(ctx, op, func(tx *gorm.DB) error {
		where := tx.Where("broker_id = ? AND profile_query_id = ?", brokerID, profileQueryID)
		if err := takeOrNotFound(where, &schema.ScanDB{}); err != nil {
			return err
		}
		return tx.Model(&schema.ScanDB{}).
			Where("broker_id = ? AND profile_query_id = ?", brokerID, profileQueryID).
			Updates(map[string]interface{}{column: value}).Error
	})
}

func (s *sqliteStore) FetchScan(ctx context.Context, brokerID, profileQueryID int64) (*schema.ScanDB, error) {
	var scan *schema.ScanDB
	err := s.read(ctx, "fetch scan", func(tx *gorm.DB) error {
		var err error
		scan, err = takeOrNil[schema.ScanDB](tx.Where("broker_id = ? AND profile_query_id = ?", brokerID, profileQueryID))
		return err
	})
	if err != nil {
		return nil, err
	}
	return scan, nil
}

func (s *sqliteStore) FetchAllScans(ctx context.Context) ([]schema.ScanDB, error) {
	var scans []schema.ScanDB
	err := s.read(ctx, "fetch all scans", func(tx *gorm.DB) error {
		return tx.Order("broker_id ASC, profile_query_id ASC").Find(&scans).Error
	})
	if err != nil {
		return nil, err
	}
	return scans, nil
}

func (s *sqliteStore) SaveScanEvent(ctx context.Context, event schema.ScanHistoryEventDB) error {
	event.Timestamp = event.Timestamp.UTC()
	return s.write(ctx, "save scan event", func(tx *gorm.DB) error {
		return tx.Create(&event).Error
	})
}

func (s *sqliteStore) FetchScanEvents(ctx context.Context, brokerID, profileQueryID int64) ([]schema.ScanHistoryEventDB, error) {
	var events []schema.ScanHistoryEventDB
	err := s.read(ctx, "fetch scan events", func(tx *gorm.DB) error {
		return tx.Where("broker_id = ? AND profile_query_id = ?", brokerID, profileQueryID).
			Order("timestamp ASC").
			Find(&events).Error
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}
