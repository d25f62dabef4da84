package store

import (
	"context"
	"time"

	"github.com/brokerguard/dbp/internal/store/schema"
)

// ProfileWithChildren is a profile row with its names, addresses and phones
type ProfileWithChildren struct {
	Profile   schema.ProfileDB
	Names     []schema.NameDB
	Addresses []schema.AddressDB
	Phones    []schema.PhoneDB
}

// OptOutWithExtractedProfile pairs an opt-out with the record it removes
type OptOutWithExtractedProfile struct {
	OptOut           schema.OptOutDB
	ExtractedProfile schema.ExtractedProfileDB
}

// Store defines the interface for database operations.
//
// Single-row fetches return (nil, nil) when the row does not exist.
// Updates return ErrElementNotFound when the row does not exist.
// Every other failure is a *DatabaseError.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// SaveProfile inserts a profile and its children atomically and returns the profile id
	SaveProfile(ctx context.Context, profile schema.ProfileDB, names []schema.NameDB, addresses []schema.AddressDB, phones []schema.PhoneDB) (int64, error)
	// UpdateProfile replaces the birth year and the children of an existing profile
	UpdateProfile(ctx context.Context, profile schema.ProfileDB, names []schema.NameDB, addresses []schema.AddressDB, phones []schema.PhoneDB) error
	// FetchProfile retrieves a profile with its children
	FetchProfile(ctx context.Context, id int64) (*ProfileWithChildren, error)
	// FetchCurrentProfile retrieves the oldest stored profile with its children
	FetchCurrentProfile(ctx context.Context) (*ProfileWithChildren, error)
	// DeleteProfileData removes every profile and everything derived from it; brokers and agent state stay
	DeleteProfileData(ctx context.Context) error

	// SaveBroker inserts a broker and returns its id
	SaveBroker(ctx context.Context, broker schema.BrokerDB) (int64, error)
	// UpdateBroker updates an existing broker
	UpdateBroker(ctx context.Context, broker schema.BrokerDB) error
	// FetchBroker retrieves a broker by id
	FetchBroker(ctx context.Context, id int64) (*schema.BrokerDB, error)
	// FetchBrokerByName retrieves a broker by its unique name
	FetchBrokerByName(ctx context.Context, name string) (*schema.BrokerDB, error)
	// FetchAllBrokers retrieves every broker
	FetchAllBrokers(ctx context.Context) ([]schema.BrokerDB, error)

	// SaveProfileQuery inserts a profile query for a profile and returns its id
	SaveProfileQuery(ctx context.Context, query schema.ProfileQueryDB, profileID int64) (int64, error)
	// UpdateProfileQuery updates an existing profile query
	UpdateProfileQuery(ctx context.Context, query schema.ProfileQueryDB) error
	// FetchProfileQuery retrieves a profile query by id
	FetchProfileQuery(ctx context.Context, id int64) (*schema.ProfileQueryDB, error)
	// FetchAllProfileQueries retrieves the profile queries of a profile
	FetchAllProfileQueries(ctx context.Context, profileID int64) ([]schema.ProfileQueryDB, error)

	// SaveScan creates the scan of a (broker, profile query) pair
	SaveScan(ctx context.Context, brokerID, profileQueryID int64, lastRunDate, preferredRunDate *time.Time) error
	// UpdateScanPreferredRunDate sets when the scan should run next
	UpdateScanPreferredRunDate(ctx context.Context, brokerID, profileQueryID int64, date *time.Time) error
	// UpdateScanLastRunDate sets when the scan last ran
	UpdateScanLastRunDate(ctx context.Context, brokerID, profileQueryID int64, date *time.Time) error
	// FetchScan retrieves a scan
	FetchScan(ctx context.Context, brokerID, profileQueryID int64) (*schema.ScanDB, error)
	// FetchAllScans retrieves every scan
	FetchAllScans(ctx context.Context) ([]schema.ScanDB, error)
	// SaveScanEvent appends a scan history event
	SaveScanEvent(ctx context.Context, event schema.ScanHistoryEventDB) error
	// FetchScanEvents retrieves the history of a scan ordered by timestamp
	FetchScanEvents(ctx context.Context, brokerID, profileQueryID int64) ([]schema.ScanHistoryEventDB, error)

	// SaveOptOutWithNewExtractedProfile inserts a newly discovered extracted profile and its opt-out, returning the extracted profile id
	SaveOptOutWithNewExtractedProfile(ctx context.Context, optOut schema.OptOutDB, extracted schema.ExtractedProfileDB) (int64, error)
	// SaveOptOut inserts an opt-out for an already stored extracted profile
	SaveOptOut(ctx context.Context, optOut schema.OptOutDB) error
	// UpdateOptOutPreferredRunDate sets when the opt-out should run next
	UpdateOptOutPreferredRunDate(ctx context.Context, brokerID, profileQueryID, extractedProfileID int64, date *time.Time) error
	// UpdateOptOutLastRunDate sets when the opt-out last ran
	UpdateOptOutLastRunDate(ctx context.Context, brokerID, profileQueryID, extractedProfileID int64, date *time.Time) error
	// IncrementOptOutAttemptCount adds one to the submission attempt counter
	IncrementOptOutAttemptCount(ctx context.Context, brokerID, profileQueryID, extractedProfileID int64) error
	// UpdateOptOutSubmittedSuccessfullyDate records when the removal request was accepted
	UpdateOptOutSubmittedSuccessfullyDate(ctx context.Context, brokerID, profileQueryID, extractedProfileID int64, date *time.Time) error
	// UpdateOptOutConfirmationPixelFired flags the 7, 14 or 21 day check-in as fired
	UpdateOptOutConfirmationPixelFired(ctx context.Context, brokerID, profileQueryID, extractedProfileID int64, days int) error
	// FetchOptOut retrieves an opt-out with its extracted profile
	FetchOptOut(ctx context.Context, brokerID, profileQueryID, extractedProfileID int64) (*OptOutWithExtractedProfile, error)
	// FetchOptOuts retrieves the opt-outs of a (broker, profile query) pair with their extracted profiles
	FetchOptOuts(ctx context.Context, brokerID, profileQueryID int64) ([]OptOutWithExtractedProfile, error)
	// FetchAllOptOuts retrieves every opt-out with its extracted profile
	FetchAllOptOuts(ctx context.Context) ([]OptOutWithExtractedProfile, error)
	// SaveOptOutEvent appends an opt-out history event
	SaveOptOutEvent(ctx context.Context, event schema.OptOutHistoryEventDB) error
	// FetchOptOutEvents retrieves the history of an opt-out ordered by timestamp
	FetchOptOutEvents(ctx context.Context, brokerID, profileQueryID, extractedProfileID int64) ([]schema.OptOutHistoryEventDB, error)

	// FetchExtractedProfile retrieves an extracted profile by id
	FetchExtractedProfile(ctx context.Context, id int64) (*schema.ExtractedProfileDB, error)
	// FetchExtractedProfiles retrieves the extracted profiles of a (broker, profile query) pair
	FetchExtractedProfiles(ctx context.Context, brokerID, profileQueryID int64) ([]schema.ExtractedProfileDB, error)
	// UpdateRemovedDate marks an extracted profile as removed, or clears the mark with nil
	UpdateRemovedDate(ctx context.Context, extractedProfileID int64, date *time.Time) error

	// SaveOptOutAttempt creates or replaces the attempt record of an extracted profile
	SaveOptOutAttempt(ctx context.Context, attempt schema.OptOutAttemptDB) error
	// UpdateOptOutAttemptLastStageDate records progress of the current attempt
	UpdateOptOutAttemptLastStageDate(ctx context.Context, extractedProfileID int64, date time.Time) error
	// FetchOptOutAttempt retrieves the attempt record of an extracted profile
	FetchOptOutAttempt(ctx context.Context, extractedProfileID int64) (*schema.OptOutAttemptDB, error)

	// GetKeyValue retrieves a value, nil when the key is not set
	GetKeyValue(ctx context.Context, key string) (*string, error)
	// SetKeyValue stores a value
	SetKeyValue(ctx context.Context, key string, value string) error
}
