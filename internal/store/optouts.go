package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/brokerguard/dbp/internal/store/schema"
)

const optOutKey = "broker_id = ? AND profile_query_id = ? AND extracted_profile_id = ?"

// confirmationPixelColumns maps a check-in day to the flag recording it
var confirmationPixelColumns = map[int]string{
	7:  "seven_days_confirmation_pixel_fired",
	14: "fourteen_days_confirmation_pixel_fired",
	21: "twenty_one_days_confirmation_pixel_fired",
}

func (s *sqliteStore) SaveOptOutWithNewExtractedProfile(ctx context.Context, optOut schema.OptOutDB, extracted schema.ExtractedProfileDB) (int64, error) {
	extracted.ID = 0
	extracted.BrokerID = optOut.BrokerID
	extracted.ProfileQueryID = optOut.ProfileQueryID
	extracted.RemovedDate = utc(extracted.RemovedDate)

	err := s.write(ctx, "save opt-out with extracted profile", func(tx *gorm.DB) error {
		if err := tx.Create(&extracted).Error; err != nil {
			return err
		}
		optOut.ExtractedProfileID = extracted.ID
		return createOptOut(tx, optOut)
	})
	if err != nil {
		return 0, err
	}
	return extracted.ID, nil
}

func (s *sqliteStore) SaveOptOut(ctx context.Context, optOut schema.OptOutDB) error {
	return s.write(ctx, "save opt-out", func(tx *gorm.DB) error {
		return createOptOut(tx, optOut)
	})
}

func createOptOut(tx *gorm.DB, optOut schema.OptOutDB) error {
	optOut.CreatedDate = optOut.CreatedDate.UTC()
	optOut.LastRunDate = utc(optOut.LastRunDate)
	optOut.PreferredRunDate = utc(optOut.PreferredRunDate)
	optOut.SubmittedSuccessfullyDate = utc(optOut.SubmittedSuccessfullyDate)
	return tx.Create(&optOut).Error
}

func (s *sqliteStore) UpdateOptOutPreferredRunDate(ctx context.Context, brokerID, profileQueryID, extractedProfileID int64, date *time.Time) error {
	return s.updateOptOut(ctx, "update opt-out preferred run date", brokerID, profileQueryID, extractedProfileID,
		map[string]interface{}{"preferred_run_date": utc(date)})
}

func (s *sqliteStore) UpdateOptOutLastRunDate(ctx context.Context, brokerID, profileQueryID, extractedProfileID int64, date *time.Time) error {
	return s.updateOptOut(ctx, "update opt-out last run date", brokerID, profileQueryID, extractedProfileID,
		map[string]interface{}{"last_run_date": utc(date)})
}

func (s *sqliteStore) IncrementOptOutAttemptCount(ctx context.Context, brokerID, profileQueryID, extractedProfileID int64) error {
	return s.updateOptOut(ctx, "increment opt-out attempt count", brokerID, profileQueryID, extractedProfileID,
		map[string]interface{}{"attempt_count": gorm.Expr("attempt_count + 1")})
}

func (s *sqliteStore) UpdateOptOutSubmittedSuccessfullyDate(ctx context.Context, brokerID, profileQueryID, extractedProfileID int64, date *time.Time) error {
	return s.updateOptOut(ctx, "update opt-out submitted date", brokerID, profileQueryID, extractedProfileID,
		map[string]interface{}{"submitted_successfully_date": utc(date)})
}

func (s *sqliteStore) UpdateOptOutConfirmationPixelFired(ctx context.Context, brokerID, profileQueryID, extractedProfileID int64, days int) error {
	column, ok := confirmationPixelColumns[days]
	if !ok {
		return fmt.Errorf("no confirmation pixel for %d days", days)
	}
	return s.updateOptOut(ctx, "update opt-out confirmation pixel", brokerID, profileQueryID, extractedProfileID,
		map[string]interface{}{column: true})
}

func (s *sqliteStore) updateOptOut(ctx context.Context, op string, brokerID, profileQueryID, extractedProfileID int64, values map[string]interface{}) error {
	return s.write(ctx, op, func(tx *gorm.DB) error {
		if err := takeOrNotFound(tx.Where(optOutKey, brokerID, profileQueryID, extractedProfileID), &schema.OptOutDB{}); err != nil {
			return err
		}
		return tx.Model(&schema.OptOutDB{}).
			Where(optOutKey, brokerID, profileQueryID, extractedProfileID).
			Updates(values).Error
	})
}

func (s *sqliteStore) FetchOptOut(ctx context.Context, brokerID, profileQueryID, extractedProfileID int64) (*OptOutWithExtractedProfile, error) {
	var result *OptOutWithExtractedProfile
	err := s.read(ctx, "fetch opt-out", func(tx *gorm.DB) error {
		var optOuts []schema.OptOutDB
		if err := tx.Where(optOutKey, brokerID, profileQueryID, extractedProfileID).Limit(1).Find(&optOuts).Error; err != nil {
			return err
		}
		joined, err := joinExtractedProfiles(tx, optOuts)
		if err != nil {
			return err
		}
		if len(joined) > 0 {
			result = &joined[0]
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *sqliteStore) FetchOptOuts(ctx context.Context, brokerID, profileQueryID int64) ([]OptOutWithExtractedProfile, error) {
	var result []OptOutWithExtractedProfile
	err := s.read(ctx, "fetch opt-outs", func(tx *gorm.DB) error {
		var optOuts []schema.OptOutDB
		if err := tx.Where("broker_id = ? AND profile_query_id = ?", brokerID, profileQueryID).
			Order("extracted_profile_id ASC").
			Find(&optOuts).Error; err != nil {
			return err
		}
		var err error
		result, err = joinExtractedProfiles(tx, optOuts)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *sqliteStore) FetchAllOptOuts(ctx context.Context) ([]OptOutWithExtractedProfile, error) {
	var result []OptOutWithExtractedProfile
	err := s.read(ctx, "fetch all opt-outs", func(tx *gorm.DB) error {
		var optOuts []schema.OptOutDB
		if err := tx.Order("broker_id ASC, profile_query_id ASC, extracted_profile_id ASC").Find(&optOuts).Error; err != nil {
			return err
		}
		var err error
		result, err = joinExtractedProfiles(tx, optOuts)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// joinExtractedProfiles attaches extracted profiles to opt-outs, dropping opt-outs whose profile is gone
func joinExtractedProfiles(tx *gorm.DB, optOuts []schema.OptOutDB) ([]OptOutWithExtractedProfile, error) {
	if len(optOuts) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(optOuts))
	for _, o := range optOuts {
		ids = append(ids, o.ExtractedProfileID)
	}

	var profiles []schema.ExtractedProfileDB
	if err := tx.Where("id IN ?", ids).Find(&profiles).Error; err != nil {
		return nil, err
	}
	byID := make(map[int64]schema.ExtractedProfileDB, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}

	result := make([]OptOutWithExtractedProfile, 0, len(optOuts))
	for _, o := range optOuts {
		p, ok := byID[o.ExtractedProfileID]
		if !ok {
			continue
		}
		result = append(result, OptOutWithExtractedProfile{OptOut: o, ExtractedProfile: p})
	}
	return result, nil
}

func (s *sqliteStore) SaveOptOutEvent(ctx context.Context, event schema.OptOutHistoryEventDB) error {
	event.Timestamp = event.Timestamp.UTC()
	return s.write(ctx, "save opt-out event", func(tx *gorm.DB) error {
		return tx.Create(&event).Error
	})
}

func (s *sqliteStore) FetchOptOutEvents(ctx context.Context, brokerID, profileQueryID, extractedProfileID int64) ([]schema.OptOutHistoryEventDB, error) {
	var events []schema.OptOutHistoryEventDB
	err := s.read(ctx, "fetch opt-out events", func(tx *gorm.DB) error {
		return tx.Where(optOutKey, brokerID, profileQueryID, extractedProfileID).
			Order("timestamp ASC").
			Find(&events).Error
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (s *sqliteStore) FetchExtractedProfile(ctx context.Context, id int64) (*schema.ExtractedProfileDB, error) {
	var profile *schema.ExtractedProfileDB
	err := s.read(ctx, "fetch extracted profile", func(tx *gorm.DB) error {
		var err error
		profile, err = takeOrNil[schema.ExtractedProfileDB](tx.Where("id = ?", id))
		return err
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *sqliteStore) FetchExtractedProfiles(ctx context.Context, brokerID, profileQueryID int64) ([]schema.ExtractedProfileDB, error) {
	var profiles []schema.ExtractedProfileDB
	err := s.read(ctx, "fetch extracted profiles", func(tx *gorm.DB) error {
		return tx.Where("broker_id = ? AND profile_query_id = ?", brokerID, profileQueryID).
			Order("id ASC").
			Find(&profiles).Error
	})
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (s *sqliteStore) UpdateRemovedDate(ctx context.Context, extractedProfileID int64, date *time.Time) error {
	return s.write(ctx, "update removed date", func(tx *gorm.DB) error {
		if err := takeOrNotFound(tx.Where("id = ?", extractedProfileID), &schema.ExtractedProfileDB{}); err != nil {
			return err
		}
		return tx.Model(&schema.ExtractedProfileDB{}).
			Where("id = ?", extractedProfileID).
			Updates(map[string]interface{}{"removed_date": utc(date)}).Error
	})
}
