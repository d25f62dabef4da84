package mapper

import (
	"time"

	"github.com/brokerguard/dbp/internal/domain"
	"github.com/brokerguard/dbp/internal/store"
	"github.com/brokerguard/dbp/internal/store/schema"
)

// ScanToModel builds scan job data from a scan row and its history rows
func (m *Mapper) ScanToModel(scan schema.ScanDB, events []schema.ScanHistoryEventDB) (domain.ScanJobData, error) {
	data := domain.ScanJobData{
		BrokerID:         scan.BrokerID,
		ProfileQueryID:   scan.ProfileQueryID,
		PreferredRunDate: scan.PreferredRunDate,
		LastRunDate:      scan.LastRunDate,
	}
	for _, row := range events {
		ev, err := m.ScanEventToModel(row)
		if err != nil {
			return data, err
		}
		data.History = append(data.History, ev)
	}
	return data, nil
}

// OptOutToModel builds opt-out job data from a joined row and its history rows
func (m *Mapper) OptOutToModel(row store.OptOutWithExtractedProfile, events []schema.OptOutHistoryEventDB) (domain.OptOutJobData, error) {
	extracted, err := m.ExtractedProfileToModel(row.ExtractedProfile)
	if err != nil {
		return domain.OptOutJobData{}, err
	}
	o := row.OptOut
	data := domain.OptOutJobData{
		BrokerID:                            o.BrokerID,
		ProfileQueryID:                      o.ProfileQueryID,
		ExtractedProfile:                    extracted,
		CreatedDate:                         o.CreatedDate,
		PreferredRunDate:                    o.PreferredRunDate,
		LastRunDate:                         o.LastRunDate,
		AttemptCount:                        o.AttemptCount,
		SubmittedSuccessfullyDate:           o.SubmittedSuccessfullyDate,
		SevenDaysConfirmationPixelFired:     o.SevenDaysConfirmationPixelFired,
		FourteenDaysConfirmationPixelFired:  o.FourteenDaysConfirmationPixelFired,
		TwentyOneDaysConfirmationPixelFired: o.TwentyOneDaysConfirmationPixelFired,
	}
	for _, r := range events {
		ev, err := m.OptOutEventToModel(r)
		if err != nil {
			return data, err
		}
		data.History = append(data.History, ev)
	}
	return data, nil
}

// OptOutToDB builds the opt-out row of a newly found extracted profile
func OptOutToDB(brokerID, profileQueryID int64, createdDate time.Time, preferredRunDate *time.Time) schema.OptOutDB {
	return schema.OptOutDB{
		BrokerID:         brokerID,
		ProfileQueryID:   profileQueryID,
		CreatedDate:      createdDate.UTC(),
		PreferredRunDate: preferredRunDate,
	}
}

func OptOutAttemptToDB(a domain.OptOutAttempt) schema.OptOutAttemptDB {
	return schema.OptOutAttemptDB{
		ExtractedProfileID: a.ExtractedProfileID,
		DataBroker:         a.DataBroker,
		AttemptID:          a.AttemptID,
		LastStageDate:      a.LastStageDate.UTC(),
		StartDate:          a.StartDate.UTC(),
	}
}

func OptOutAttemptToModel(row schema.OptOutAttemptDB) domain.OptOutAttempt {
	return domain.OptOutAttempt{
		ExtractedProfileID: row.ExtractedProfileID,
		DataBroker:         row.DataBroker,
		AttemptID:          row.AttemptID,
		LastStageDate:      row.LastStageDate,
		StartDate:          row.StartDate,
	}
}
