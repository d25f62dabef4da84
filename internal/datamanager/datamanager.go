package datamanager

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/brokerguard/dbp/internal/adapter"
	"github.com/brokerguard/dbp/internal/domain"
	"github.com/brokerguard/dbp/internal/logger"
	"github.com/brokerguard/dbp/internal/mapper"
	"github.com/brokerguard/dbp/internal/store"
	"github.com/brokerguard/dbp/internal/store/schema"
)

// Delegate is notified after the stored profile changes
//
//go:generate mockgen -source=datamanager.go -destination=../mocks/datamanager.go -package=mocks -mock_names=Delegate=MockDataManagerDelegate,DataManager=MockDataManager
type Delegate interface {
	OnProfileSaved(ctx context.Context)
	OnProfileDeleted(ctx context.Context)
}

// DataManager is the domain facing API over the encrypted store
type DataManager interface {
	// SaveProfile validates and stores the profile, deriving its queries and scans
	SaveProfile(ctx context.Context, profile domain.Profile) error
	// FetchProfile returns the stored profile, nil when there is none
	FetchProfile(ctx context.Context) (*domain.Profile, error)
	// DeleteAllData removes the profile and everything derived from it
	DeleteAllData(ctx context.Context) error
	// FetchBrokerProfileQueryData returns every (broker, profile query) pair that has a scan
	FetchBrokerProfileQueryData(ctx context.Context) ([]domain.BrokerProfileQueryData, error)

	// FetchBroker returns a broker, nil when it does not exist
	FetchBroker(ctx context.Context, id int64) (*domain.Broker, error)
	// FetchProfileQuery returns a profile query, nil when it does not exist
	FetchProfileQuery(ctx context.Context, id int64) (*domain.ProfileQuery, error)
	// ScanJob returns the scan job of a pair with its history, nil when there is no scan
	ScanJob(ctx context.Context, brokerID, profileQueryID int64) (*domain.ScanJobData, error)
	// OptOutJob returns an opt-out job with its history, nil when there is none
	OptOutJob(ctx context.Context, brokerID, profileQueryID, extractedProfileID int64) (*domain.OptOutJobData, error)
	// OptOutJobs returns the opt-out jobs of a pair with their history
	OptOutJobs(ctx context.Context, brokerID, profileQueryID int64) ([]domain.OptOutJobData, error)
	// AddScanEvent appends to the history of a scan
	AddScanEvent(ctx context.Context, event domain.HistoryEvent) error
	// AddOptOutEvent appends to the history of an opt-out
	AddOptOutEvent(ctx context.Context, event domain.HistoryEvent) error
	// UpdateScanDates records a finished scan run and its next run date
	UpdateScanDates(ctx context.Context, brokerID, profileQueryID int64, lastRunDate time.Time, preferredRunDate *time.Time) error
	// UpdateScanPreferredRunDate reschedules a scan
	UpdateScanPreferredRunDate(ctx context.Context, brokerID, profileQueryID int64, preferredRunDate *time.Time) error
	// UpdateOptOutDates records a finished opt-out run and its next run date
	UpdateOptOutDates(ctx context.Context, brokerID, profileQueryID, extractedProfileID int64, lastRunDate time.Time, preferredRunDate *time.Time) error
	// UpdateOptOutPreferredRunDate reschedules an opt-out
	UpdateOptOutPreferredRunDate(ctx context.Context, brokerID, profileQueryID, extractedProfileID int64, preferredRunDate *time.Time) error
	// SaveNewOptOut stores a newly found extracted profile with its opt-out and returns the extracted profile id
	SaveNewOptOut(ctx context.Context, brokerID, profileQueryID int64, extracted domain.ExtractedProfile, preferredRunDate *time.Time) (int64, error)
	// UpdateRemovedDate marks an extracted profile removed, or listed again with nil
	UpdateRemovedDate(ctx context.Context, extractedProfileID int64, date *time.Time) error
	// IncrementAttempt counts an opt-out submission
	IncrementAttempt(ctx context.Context, brokerID, profileQueryID, extractedProfileID int64) error
	// MarkSubmitted records when the broker accepted the removal request
	MarkSubmitted(ctx context.Context, brokerID, profileQueryID, extractedProfileID int64, date time.Time) error
	// MarkConfirmationPixelFired records a fired 7, 14 or 21 day check-in
	MarkConfirmationPixelFired(ctx context.Context, brokerID, profileQueryID, extractedProfileID int64, days int) error
	// SaveOptOutAttempt starts a new attempt record for an extracted profile
	SaveOptOutAttempt(ctx context.Context, attempt domain.OptOutAttempt) error
	// UpdateOptOutAttemptStage records progress of the current attempt
	UpdateOptOutAttemptStage(ctx context.Context, extractedProfileID int64, date time.Time) error
	// FetchOptOutAttempt returns the attempt record of an extracted profile, nil when there is none
	FetchOptOutAttempt(ctx context.Context, extractedProfileID int64) (*domain.OptOutAttempt, error)
	// UpsertBrokers inserts new brokers and updates those whose version changed
	UpsertBrokers(ctx context.Context, brokers []domain.Broker) error
}

type dataManager struct {
	store    store.Store
	mapper   *mapper.Mapper
	clock    adapter.Clock
	delegate Delegate
	validate *validator.Validate
}

// NewDataManager creates a new data manager; delegate may be nil
func NewDataManager(store store.Store, mapper *mapper.Mapper, clock adapter.Clock, delegate Delegate) DataManager {
	return &dataManager{
		store:    store,
		mapper:   mapper,
		clock:    clock,
		delegate: delegate,
		validate: validator.New(),
	}
}

func (d *dataManager) validateProfile(profile domain.Profile) error {
	if err := d.validate.Struct(profile); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidProfile, err)
	}
	if year := d.clock.Now().Year(); profile.BirthYear > year {
		return fmt.Errorf("%w: birth year %d is after %d", domain.ErrInvalidProfile, profile.BirthYear, year)
	}
	return nil
}

// SaveProfile validates and stores the profile.
// The first save derives queries and schedules a scan of every broker for each;
// later saves deprecate vanished queries and add new ones.
func (d *dataManager) SaveProfile(ctx context.Context, profile domain.Profile) error {
	if err := d.validateProfile(profile); err != nil {
		return err
	}

	current, err := d.store.FetchCurrentProfile(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch current profile: %w", err)
	}

	if current == nil {
		err = d.saveNewProfile(ctx, profile)
	} else {
		err = d.updateProfile(ctx, current.Profile.ID, profile)
	}
	if err != nil {
		return err
	}

	if d.delegate != nil {
		d.delegate.OnProfileSaved(ctx)
	}
	return nil
}

func (d *dataManager) saveNewProfile(ctx context.Context, profile domain.Profile) error {
	profile.ID = nil
	rows, err := d.mapper.ProfileToDB(profile)
	if err != nil {
		return err
	}
	profileID, err := d.store.SaveProfile(ctx, rows.Profile, rows.Names, rows.Addresses, rows.Phones)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	brokers, err := d.store.FetchAllBrokers(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch brokers: %w", err)
	}

	now := d.clock.Now()
	for _, q := range profile.Queries() {
		if _, err := d.insertQuery(ctx, profileID, q, brokerIDs(brokers), now); err != nil {
			return err
		}
	}

	logger.InfoCtx(ctx, "Saved new profile",
		zap.Int64("profile_id", profileID),
		zap.Int("brokers", len(brokers)))
	return nil
}

func (d *dataManager) updateProfile(ctx context.Context, profileID int64, profile domain.Profile) error {
	profile.ID = &profileID
	rows, err := d.mapper.ProfileToDB(profile)
	if err != nil {
		return err
	}
	if err := d.store.UpdateProfile(ctx, rows.Profile, rows.Names, rows.Addresses, rows.Phones); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	storedQueries, err := d.store.FetchAllProfileQueries(ctx, profileID)
	if err != nil {
		return fmt.Errorf("failed to fetch profile queries: %w", err)
	}
	existing := make(map[string]domain.ProfileQuery, len(storedQueries))
	for _, row := range storedQueries {
		q, err := d.mapper.ProfileQueryToModel(row)
		if err != nil {
			return err
		}
		existing[q.Identity()] = q
	}

	brokers, err := d.store.FetchAllBrokers(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch brokers: %w", err)
	}
	ids := brokerIDs(brokers)
	now := d.clock.Now()

	wanted := make(map[string]bool)
	var added, revived, deprecated int
	for _, q := range profile.Queries() {
		key := q.Identity()
		wanted[key] = true

		old, ok := existing[key]
		if !ok {
			if _, err := d.insertQuery(ctx, profileID, q, ids, now); err != nil {
				return err
			}
			added++
			continue
		}
		if !old.Deprecated && old.BirthYear == q.BirthYear {
			continue
		}

		q.ID = old.ID
		if err := d.storeQuery(ctx, q); err != nil {
			return err
		}
		if err := d.rescheduleQuery(ctx, *old.ID, ids, &now); err != nil {
			return err
		}
		revived++
	}

	for key, old := range existing {
		if wanted[key] || old.Deprecated {
			continue
		}
		old.Deprecated = true
		if err := d.storeQuery(ctx, old); err != nil {
			return err
		}
		if err := d.rescheduleQuery(ctx, *old.ID, ids, nil); err != nil {
			return err
		}
		deprecated++
	}

	logger.InfoCtx(ctx, "Updated profile",
		zap.Int64("profile_id", profileID),
		zap.Int("queries_added", added),
		zap.Int("queries_revived", revived),
		zap.Int("queries_deprecated", deprecated))
	return nil
}

// insertQuery stores a new query and schedules its scans on every broker
func (d *dataManager) insertQuery(ctx context.Context, profileID int64, q domain.ProfileQuery, brokerIDs []int64, now time.Time) (int64, error) {
	q.ID = nil
	q.Deprecated = false
	row, err := d.mapper.ProfileQueryToDB(q)
	if err != nil {
		return 0, err
	}
	queryID, err := d.store.SaveProfileQuery(ctx, row, profileID)
	if err != nil {
		return 0, fmt.Errorf("failed to save profile query: %w", err)
	}
	for _, brokerID := range brokerIDs {
		if err := d.store.SaveScan(ctx, brokerID, queryID, nil, &now); err != nil {
			return 0, fmt.Errorf("failed to save scan: %w", err)
		}
	}
	return queryID, nil
}

func (d *dataManager) storeQuery(ctx context.Context, q domain.ProfileQuery) error {
	row, err := d.mapper.ProfileQueryToDB(q)
	if err != nil {
		return err
	}
	if err := d.store.UpdateProfileQuery(ctx, row); err != nil {
		return fmt.Errorf("failed to update profile query: %w", err)
	}
	return nil
}

// rescheduleQuery moves the scans and opt-outs of a query to date; nil unschedules them.
// Missing scans are created when scheduling.
func (d *dataManager) rescheduleQuery(ctx context.Context, queryID int64, brokerIDs []int64, date *time.Time) error {
	for _, brokerID := range brokerIDs {
		err := d.store.UpdateScanPreferredRunDate(ctx, brokerID, queryID, date)
		if errors.Is(err, store.ErrElementNotFound) && date != nil {
			err = d.store.SaveScan(ctx, brokerID, queryID, nil, date)
		}
		if err != nil && !errors.Is(err, store.ErrElementNotFound) {
			return fmt.Errorf("failed to reschedule scan: %w", err)
		}

		optOuts, err := d.store.FetchOptOuts(ctx, brokerID, queryID)
		if err != nil {
			return fmt.Errorf("failed to fetch opt-outs: %w", err)
		}
		for _, o := range optOuts {
			if date != nil && o.ExtractedProfile.RemovedDate != nil {
				continue
			}
			if err := d.store.UpdateOptOutPreferredRunDate(ctx, brokerID, queryID, o.OptOut.ExtractedProfileID, date); err != nil {
				return fmt.Errorf("failed to reschedule opt-out: %w", err)
			}
		}
	}
	return nil
}

func (d *dataManager) FetchProfile(ctx context.Context) (*domain.Profile, error) {
	stored, err := d.store.FetchCurrentProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	if stored == nil {
		return nil, nil
	}
	return d.mapper.ProfileToModel(*stored)
}

func (d *dataManager) DeleteAllData(ctx context.Context) error {
	if err := d.store.DeleteProfileData(ctx); err != nil {
		return fmt.Errorf("failed to delete profile data: %w", err)
	}
	logger.InfoCtx(ctx, "Deleted all profile data")

	if d.delegate != nil {
		d.delegate.OnProfileDeleted(ctx)
	}
	return nil
}

func (d *dataManager) FetchBrokerProfileQueryData(ctx context.Context) ([]domain.BrokerProfileQueryData, error) {
	current, err := d.store.FetchCurrentProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	if current == nil {
		return nil, nil
	}

	brokerRows, err := d.store.FetchAllBrokers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch brokers: %w", err)
	}
	queryRows, err := d.store.FetchAllProfileQueries(ctx, current.Profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile queries: %w", err)
	}

	queries := make([]domain.ProfileQuery, 0, len(queryRows))
	for _, row := range queryRows {
		q, err := d.mapper.ProfileQueryToModel(row)
		if err != nil {
			return nil, err
		}
		queries = append(queries, q)
	}

	var result []domain.BrokerProfileQueryData
	for _, brokerRow := range brokerRows {
		broker, err := d.mapper.BrokerToModel(brokerRow)
		if err != nil {
			return nil, err
		}
		for _, q := range queries {
			scan, err := d.ScanJob(ctx, brokerRow.ID, *q.ID)
			if err != nil {
				return nil, err
			}
			if scan == nil {
				continue
			}
			optOuts, err := d.OptOutJobs(ctx, brokerRow.ID, *q.ID)
			if err != nil {
				return nil, err
			}
			result = append(result, domain.BrokerProfileQueryData{
				Broker:        broker,
				ProfileQuery:  q,
				ScanJobData:   *scan,
				OptOutJobData: optOuts,
			})
		}
	}
	return result, nil
}

func brokerIDs(brokers []schema.BrokerDB) []int64 {
	ids := make([]int64, 0, len(brokers))
	for _, b := range brokers {
		ids = append(ids, b.ID)
	}
	return ids
}
