package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/brokerguard/dbp/internal/store/schema"
)

func (s *sqliteStore) GetKeyValue(ctx context.Context, key string) (*string, error) {
	var value *string
	err := s.read(ctx, "get key value", func(tx *gorm.DB) error {
		kv, err := takeOrNil[schema.KeyValueStore](tx.Where("`key` = ?", key))
		if err != nil || kv == nil {
			return err
		}
		value = &kv.Value
		return nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *sqliteStore) SetKeyValue(ctx context.Context, key string, value string) error {
	return s.write(ctx, "set key value", func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&schema.KeyValueStore{Key: key, Value: value}).Error
	})
}
