package schema

import "time"

// ExtractedProfileDB is a broker record matching a profile query; Profile is encrypted JSON
type ExtractedProfileDB struct {
	ID             int64      `gorm:"column:id;primaryKey;autoIncrement"`
	ProfileQueryID int64      `gorm:"column:profile_query_id;not null"`
	BrokerID       int64      `gorm:"column:broker_id;not null"`
	Profile        []byte     `gorm:"column:profile;not null"`
	RemovedDate    *time.Time `gorm:"column:removed_date"`
}

func (ExtractedProfileDB) TableName() string {
	return "extracted_profile"
}

// OptOutDB schedules removal of an extracted profile from a broker
type OptOutDB struct {
	BrokerID                            int64      `gorm:"column:broker_id;primaryKey"`
	ProfileQueryID                      int64      `gorm:"column:profile_query_id;primaryKey"`
	ExtractedProfileID                  int64      `gorm:"column:extracted_profile_id;primaryKey"`
	LastRunDate                         *time.Time `gorm:"column:last_run_date"`
	PreferredRunDate                    *time.Time `gorm:"column:preferred_run_date"`
	CreatedDate                         time.Time  `gorm:"column:created_date;not null"`
	AttemptCount                        int64      `gorm:"column:attempt_count;not null"`
	SubmittedSuccessfullyDate           *time.Time `gorm:"column:submitted_successfully_date"`
	SevenDaysConfirmationPixelFired     bool       `gorm:"column:seven_days_confirmation_pixel_fired;not null"`
	FourteenDaysConfirmationPixelFired  bool       `gorm:"column:fourteen_days_confirmation_pixel_fired;not null"`
	TwentyOneDaysConfirmationPixelFired bool       `gorm:"column:twenty_one_days_confirmation_pixel_fired;not null"`
}

func (OptOutDB) TableName() string {
	return "opt_out"
}

// OptOutHistoryEventDB is an audit log entry of an opt-out
type OptOutHistoryEventDB struct {
	BrokerID           int64     `gorm:"column:broker_id;primaryKey"`
	ProfileQueryID     int64     `gorm:"column:profile_query_id;primaryKey"`
	ExtractedProfileID int64     `gorm:"column:extracted_profile_id;primaryKey"`
	Event              []byte    `gorm:"column:event;primaryKey"`
	Timestamp          time.Time `gorm:"column:timestamp;primaryKey"`
}

func (OptOutHistoryEventDB) TableName() string {
	return "opt_out_history_event"
}

// OptOutAttemptDB tracks the stages of the latest opt-out submission of an extracted profile
type OptOutAttemptDB struct {
	ExtractedProfileID int64     `gorm:"column:extracted_profile_id;primaryKey"`
	DataBroker         string    `gorm:"column:data_broker;not null"`
	AttemptID          string    `gorm:"column:attempt_id;not null"`
	LastStageDate      time.Time `gorm:"column:last_stage_date;not null"`
	StartDate          time.Time `gorm:"column:start_date;not null"`
}

func (OptOutAttemptDB) TableName() string {
	return "opt_out_attempt"
}
