package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/brokerguard/dbp/internal/store/schema"
)

func (s *sqliteStore) SaveProfile(ctx context.Context, profile schema.ProfileDB, names []schema.NameDB, addresses []schema.AddressDB, phones []schema.PhoneDB) (int64, error) {
	var id int64
	err := s.write(ctx, "save profile", func(tx *gorm.DB) error {
		profile.ID = 0
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		id = profile.ID
		return insertProfileChildren(tx, id, names, addresses, phones)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *sqliteStore) UpdateProfile(ctx context.Context, profile schema.ProfileDB, names []schema.NameDB, addresses []schema.AddressDB, phones []schema.PhoneDB) error {
	return s.write(ctx, "update profile", func(tx *gorm.DB) error {
		var existing schema.ProfileDB
		if err := takeOrNotFound(tx.Where("id = ?", profile.ID), &existing); err != nil {
			return err
		}

		existing.BirthYear = profile.BirthYear
		if err := tx.Model(&schema.ProfileDB{}).Where("id = ?", existing.ID).
			Update("birth_year", existing.BirthYear).Error; err != nil {
			return err
		}

		for _, model := range []interface{}{&schema.NameDB{}, &schema.AddressDB{}, &schema.PhoneDB{}} {
			if err := tx.Where("profile_id = ?", existing.ID).Delete(model).Error; err != nil {
				return err
			}
		}
		return insertProfileChildren(tx, existing.ID, names, addresses, phones)
	})
}

func insertProfileChildren(tx *gorm.DB, profileID int64, names []schema.NameDB, addresses []schema.AddressDB, phones []schema.PhoneDB) error {
	// rows are inserted one by one so a duplicate fails the whole transaction
	for i := range names {
		names[i].ProfileID = profileID
		names[i].Middle, names[i].Suffix = blob(names[i].Middle), blob(names[i].Suffix)
		if err := tx.Create(&names[i]).Error; err != nil {
			return err
		}
	}
	for i := range addresses {
		addresses[i].ProfileID = profileID
		addresses[i].Street, addresses[i].ZipCode = blob(addresses[i].Street), blob(addresses[i].ZipCode)
		if err := tx.Create(&addresses[i]).Error; err != nil {
			return err
		}
	}
	for i := range phones {
		phones[i].ProfileID = profileID
		if err := tx.Create(&phones[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *sqliteStore) FetchProfile(ctx context.Context, id int64) (*ProfileWithChildren, error) {
	var result *ProfileWithChildren
	err := s.read(ctx, "fetch profile", func(tx *gorm.DB) error {
		var err error
		result, err = fetchProfileWithChildren(tx, tx.Where("id = ?", id))
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *sqliteStore) FetchCurrentProfile(ctx context.Context) (*ProfileWithChildren, error) {
	var result *ProfileWithChildren
	err := s.read(ctx, "fetch current profile", func(tx *gorm.DB) error {
		var err error
		result, err = fetchProfileWithChildren(tx, tx.Order("id ASC"))
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func fetchProfileWithChildren(tx *gorm.DB, query *gorm.DB) (*ProfileWithChildren, error) {
	profile, err := takeOrNil[schema.ProfileDB](query)
	if err != nil || profile == nil {
		return nil, err
	}

	result := &ProfileWithChildren{Profile: *profile}
	if err := tx.Where("profile_id = ?", profile.ID).Find(&result.Names).Error; err != nil {
		return nil, err
	}
	if err := tx.Where("profile_id = ?", profile.ID).Find(&result.Addresses).Error; err != nil {
		return nil, err
	}
	if err := tx.Where("profile_id = ?", profile.ID).Find(&result.Phones).Error; err != nil {
		return nil, err
	}
	return result, nil
}

func (s *sqliteStore) DeleteProfileData(ctx context.Context) error {
	return s.write(ctx, "delete profile data", func(tx *gorm.DB) error {
		// children first so the wipe does not depend on foreign key enforcement
		tables := []string{
			"opt_out_attempt",
			"opt_out_history_event",
			"opt_out",
			"extracted_profile",
			"scan_history_event",
			"scan",
			"profile_query",
			"name",
			"address",
			"phone",
			"profile",
		}
		for _, table := range tables {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
