package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/brokerguard/dbp/internal/store/schema"
)

func (s *sqliteStore) SaveBroker(ctx context.Context, broker schema.BrokerDB) (int64, error) {
	broker.ID = 0
	err := s.write(ctx, "save broker", func(tx *gorm.DB) error {
		return tx.Create(&broker).Error
	})
	if err != nil {
		return 0, err
	}
	return broker.ID, nil
}

func (s *sqliteStore) UpdateBroker(ctx context.Context, broker schema.BrokerDB) error {
	return s.write(ctx, "update broker", func(tx *gorm.DB) error {
		if err := takeOrNotFound(tx.Where("id = ?", broker.ID), &schema.BrokerDB{}); err != nil {
			return err
		}
		return tx.Model(&schema.BrokerDB{}).Where("id = ?", broker.ID).Updates(map[string]interface{}{
			"name":    broker.Name,
			"json":    broker.JSON,
			"version": broker.Version,
			"url":     broker.URL,
		}).Error
	})
}

func (s *sqliteStore) FetchBroker(ctx context.Context, id int64) (*schema.BrokerDB, error) {
	var broker *schema.BrokerDB
	err := s.read(ctx, "fetch broker", func(tx *gorm.DB) error {
		var err error
		broker, err = takeOrNil[schema.BrokerDB](tx.Where("id = ?", id))
		return err
	})
	if err != nil {
		return nil, err
	}
	return broker, nil
}

func (s *sqliteStore) FetchBrokerByName(ctx context.Context, name string) (*schema.BrokerDB, error) {
	var broker *schema.BrokerDB
	err := s.read(ctx, "fetch broker by name", func(tx *gorm.DB) error {
		var err error
		broker, err = takeOrNil[schema.BrokerDB](tx.Where("name = ?", name))
		return err
	})
	if err != nil {
		return nil, err
	}
	return broker, nil
}

func (s *sqliteStore) FetchAllBrokers(ctx context.Context) ([]schema.BrokerDB, error) {
	var brokers []schema.BrokerDB
	err := s.read(ctx, "fetch all brokers", func(tx *gorm.DB) error {
		return tx.Order("id ASC").Find(&brokers).Error
	})
	if err != nil {
		return nil, err
	}
	return brokers, nil
}

// takeOrNil loads a single row, returning nil when it does not exist
func takeOrNil[T any](query *gorm.DB) (*T, error) {
	var row T
	if err := query.Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// takeOrNotFound loads a single row into dest, mapping a missing row to ErrElementNotFound
func takeOrNotFound(query *gorm.DB, dest interface{}) error {
	if err := query.Take(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrElementNotFound
		}
		return err
	}
	return nil
}
