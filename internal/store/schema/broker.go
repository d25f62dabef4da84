package schema

import "gorm.io/datatypes"

// BrokerDB is a broker definition; JSON holds the full versioned payload
type BrokerDB struct {
	ID      int64          `gorm:"column:id;primaryKey;autoIncrement"`
	Name    string         `gorm:"column:name;uniqueIndex;not null"`
	JSON    datatypes.JSON `gorm:"column:json;not null"`
	Version string         `gorm:"column:version;not null"`
	URL     string         `gorm:"column:url;not null"`
}

func (BrokerDB) TableName() string {
	return "broker"
}
