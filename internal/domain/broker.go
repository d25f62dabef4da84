package domain

import (
	"encoding/json"
	"time"
)

// SchedulingConfig tells the scheduler how often a broker is visited.
// Intervals are in hours.
type SchedulingConfig struct {
	RetryError        int `json:"retryError" validate:"gt=0"`
	ConfirmOptOutScan int `json:"confirmOptOutScan" validate:"gt=0"`
	MaintenanceScan   int `json:"maintenanceScan" validate:"gt=0"`
	// MaxAttempts caps opt-out submissions, zero or less means unlimited
	MaxAttempts int `json:"maxAttempts,omitempty"`
}

// RetryErrorInterval returns the base delay after a failed run
func (c SchedulingConfig) RetryErrorInterval() time.Duration {
	return time.Duration(c.RetryError) * time.Hour
}

// ConfirmOptOutScanInterval returns the delay before re-scanning a broker after an opt-out request
func (c SchedulingConfig) ConfirmOptOutScanInterval() time.Duration {
	return time.Duration(c.ConfirmOptOutScan) * time.Hour
}

// MaintenanceScanInterval returns the delay between routine scans
func (c SchedulingConfig) MaintenanceScanInterval() time.Duration {
	return time.Duration(c.MaintenanceScan) * time.Hour
}

// Broker is a data broker site definition
type Broker struct {
	ID               *int64           `json:"-"`
	Name             string           `json:"name" validate:"required"`
	URL              string           `json:"url" validate:"required,url"`
	Version          string           `json:"version" validate:"required"`
	Steps            json.RawMessage  `json:"steps"`
	SchedulingConfig SchedulingConfig `json:"schedulingConfig"`
}
