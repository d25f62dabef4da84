package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/brokerguard/dbp/internal/store/schema"
)

func (s *sqliteStore) SaveProfileQuery(ctx context.Context, query schema.ProfileQueryDB, profileID int64) (int64, error) {
	query.ID = 0
	query.ProfileID = profileID
	query.Middle, query.Suffix = blob(query.Middle), blob(query.Suffix)
	query.Street, query.ZipCode, query.Phone = blob(query.Street), blob(query.ZipCode), blob(query.Phone)
	err := s.write(ctx, "save profile query", func(tx *gorm.DB) error {
		return tx.Create(&query).Error
	})
	if err != nil {
		return 0, err
	}
	return query.ID, nil
}

func (s *sqliteStore) UpdateProfileQuery(ctx context.Context, query schema.ProfileQueryDB) error {
	return s.write(ctx, "update profile query", func(tx *gorm.DB) error {
		if err := takeOrNotFound(tx.Where("id = ?", query.ID), &schema.ProfileQueryDB{}); err != nil {
			return err
		}
		return tx.Model(&schema.ProfileQueryDB{}).Where("id = ?", query.ID).Updates(map[string]interface{}{
			"first":      query.First,
			"last":       query.Last,
			"middle":     blob(query.Middle),
			"suffix":     blob(query.Suffix),
			"city":       query.City,
			"state":      query.State,
			"street":     blob(query.Street),
			"zip_code":   blob(query.ZipCode),
			"phone":      blob(query.Phone),
			"birth_year": query.BirthYear,
			"deprecated": query.Deprecated,
		}).Error
	})
}

func (s *sqliteStore) FetchProfileQuery(ctx context.Context, id int64) (*schema.ProfileQueryDB, error) {
	var query *schema.ProfileQueryDB
	err := s.read(ctx, "fetch profile query", func(tx *gorm.DB) error {
		var err error
		query, err = takeOrNil[schema.ProfileQueryDB](tx.Where("id = ?", id))
		return err
	})
	if err != nil {
		return nil, err
	}
	return query, nil
}

func (s *sqliteStore) FetchAllProfileQueries(ctx context.Context, profileID int64) ([]schema.ProfileQueryDB, error) {
	var queries []schema.ProfileQueryDB
	err := s.read(ctx, "fetch all profile queries", func(tx *gorm.DB) error {
		return tx.Where("profile_id = ?", profileID).Order("id ASC").Find(&queries).Error
	})
	if err != nil {
		return nil, err
	}
	return queries, nil
}

// blob turns a nil optional column into the zero-length absent marker
func blob(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return b
}
