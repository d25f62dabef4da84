package schema

import "time"

// KeyValueStore stores non-PII agent state such as the rollout roll and the last scheduler run
type KeyValueStore struct {
	Key       string    `gorm:"column:key;primaryKey;type:text"`
	Value     string    `gorm:"column:value;type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (KeyValueStore) TableName() string {
	return "key_value_store"
}

// SchemaMigration records an applied migration
type SchemaMigration struct {
	Version   string    `gorm:"column:version;primaryKey;type:text"`
	AppliedAt time.Time `gorm:"column:applied_at;not null"`
}

func (SchemaMigration) TableName() string {
	return "schema_migrations"
}
