package domain

import "time"

// ScanJobData is the scan row of a (broker, profile query) pair with its history
type ScanJobData struct {
	BrokerID         int64
	ProfileQueryID   int64
	PreferredRunDate *time.Time
	LastRunDate      *time.Time
	History          []HistoryEvent
}

// OptOutJobData is an opt-out row with its extracted profile and history
type OptOutJobData struct {
	BrokerID                            int64
	ProfileQueryID                      int64
	ExtractedProfile                    ExtractedProfile
	CreatedDate                         time.Time
	PreferredRunDate                    *time.Time
	LastRunDate                         *time.Time
	AttemptCount                        int64
	SubmittedSuccessfullyDate           *time.Time
	SevenDaysConfirmationPixelFired     bool
	FourteenDaysConfirmationPixelFired  bool
	TwentyOneDaysConfirmationPixelFired bool
	History                             []HistoryEvent
}

// ExtractedProfileID returns the id of the opt-out's extracted profile
func (o OptOutJobData) ExtractedProfileID() int64 {
	if o.ExtractedProfile.ID == nil {
		return 0
	}
	return *o.ExtractedProfile.ID
}

// BrokerProfileQueryData groups everything known about one (broker, profile query) pair
type BrokerProfileQueryData struct {
	Broker        Broker
	ProfileQuery  ProfileQuery
	ScanJobData   ScanJobData
	OptOutJobData []OptOutJobData
}

// OptOutAttempt records the progress of the latest opt-out submission for an extracted profile
type OptOutAttempt struct {
	ExtractedProfileID int64
	DataBroker         string
	AttemptID          string
	LastStageDate      time.Time
	StartDate          time.Time
}
