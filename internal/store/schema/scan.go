package schema

import "time"

// ScanDB schedules discovery for a (broker, profile query) pair.
// A nil PreferredRunDate means the scan is not scheduled.
type ScanDB struct {
	BrokerID         int64      `gorm:"column:broker_id;primaryKey"`
	ProfileQueryID   int64      `gorm:"column:profile_query_id;primaryKey"`
	LastRunDate      *time.Time `gorm:"column:last_run_date"`
	PreferredRunDate *time.Time `gorm:"column:preferred_run_date"`
}

func (ScanDB) TableName() string {
	return "scan"
}

// ScanHistoryEventDB is an audit log entry of a scan; Event is the JSON encoded event type
type ScanHistoryEventDB struct {
	BrokerID       int64     `gorm:"column:broker_id;primaryKey"`
	ProfileQueryID int64     `gorm:"column:profile_query_id;primaryKey"`
	Event          []byte    `gorm:"column:event;primaryKey"`
	Timestamp      time.Time `gorm:"column:timestamp;primaryKey"`
}

func (ScanHistoryEventDB) TableName() string {
	return "scan_history_event"
}
