package store

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/brokerguard/dbp/internal/store/schema"
)

func (s *sqliteStore) SaveOptOutAttempt(ctx context.Context, attempt schema.OptOutAttemptDB) error {
	attempt.StartDate = attempt.StartDate.UTC()
	attempt.LastStageDate = attempt.LastStageDate.UTC()
	return s.write(ctx, "save opt-out attempt", func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "extracted_profile_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"data_broker", "attempt_id", "last_stage_date", "start_date"}),
		}).Create(&attempt).Error
	})
}

func (s *sqliteStore) UpdateOptOutAttemptLastStageDate(ctx context.Context, extractedProfileID int64, date time.Time) error {
	return s.write(ctx, "update opt-out attempt", func(tx *gorm.DB) error {
		if err := takeOrNotFound(tx.Where("extracted_profile_id = ?", extractedProfileID), &schema.OptOutAttemptDB{}); err != nil {
			return err
		}
		return tx.Model(&schema.OptOutAttemptDB{}).
			Where("extracted_profile_id = ?", extractedProfileID).
			Updates(map[string]interface{}{"last_stage_date": date.UTC()}).Error
	})
}

func (s *sqliteStore) FetchOptOutAttempt(ctx context.Context, extractedProfileID int64) (*schema.OptOutAttemptDB, error) {
	var attempt *schema.OptOutAttemptDB
	err := s.read(ctx, "fetch opt-out attempt", func(tx *gorm.DB) error {
		var err error
		attempt, err = takeOrNil[schema.OptOutAttemptDB](tx.Where("extracted_profile_id = ?", extractedProfileID))
		return err
	})
	if err != nil {
		return nil, err
	}
	return attempt, nil
}
