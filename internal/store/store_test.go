package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/brokerguard/dbp/internal/store"
	"github.com/brokerguard/dbp/internal/store/schema"
)

type testStore struct {
	store store.Store
	db    *gorm.DB
	path  string
}

func setupTestStore(t *testing.T) *testStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Vault.db")
	db, err := store.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(db) })
	return &testStore{store: store.NewSQLiteStore(db), db: db, path: path}
}

func b(s string) []byte { return []byte(s) }

func saveProfile(t *testing.T, s store.Store) int64 {
	t.Helper()
	id, err := s.SaveProfile(context.Background(),
		schema.ProfileDB{BirthYear: b("1980")},
		[]schema.NameDB{{First: b("John"), Last: b("Doe")}},
		[]schema.AddressDB{{City: b("Austin"), State: b("TX")}},
		[]schema.PhoneDB{{PhoneNumber: b("5125550100")}},
	)
	require.NoError(t, err)
	return id
}

func saveBroker(t *testing.T, s store.Store, name string) int64 {
	t.Helper()
	id, err := s.SaveBroker(context.Background(), schema.BrokerDB{
		Name:    name,
		JSON:    datatypes.JSON(`{"name":"` + name + `"}`),
		Version: "0.1.0",
		URL:     name,
	})
	require.NoError(t, err)
	return id
}

func saveQuery(t *testing.T, s store.Store, profileID int64) int64 {
	t.Helper()
	id, err := s.SaveProfileQuery(context.Background(), schema.ProfileQueryDB{
		First:     b("John"),
		Last:      b("Doe"),
		City:      b("Austin"),
		State:     b("TX"),
		BirthYear: b("1980"),
	}, profileID)
	require.NoError(t, err)
	return id
}

func TestOpen_ReopenKeepsDataAndSchemaVersion(t *testing.T) {
	ts := setupTestStore(t)
	ctx := context.Background()
	profileID := saveProfile(t, ts.store)
	require.NoError(t, store.Close(ts.db))

	db, err := store.Open(ts.path)
	require.NoError(t, err)
	defer func() { _ = store.Close(db) }()

	var migrations []schema.SchemaMigration
	require.NoError(t, db.Find(&migrations).Error)
	require.Len(t, migrations, 1)
	assert.Equal(t, "v1", migrations[0].Version)

	profile, err := store.NewSQLiteStore(db).FetchProfile(ctx, profileID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, b("1980"), profile.Profile.BirthYear)
}

func TestSaveProfile(t *testing.T) {
	ts := setupTestStore(t)
	ctx := context.Background()

	id := saveProfile(t, ts.store)
	profile, err := ts.store.FetchProfile(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, profile)
	require.Len(t, profile.Names, 1)
	assert.Equal(t, b("John"), profile.Names[0].First)
	assert.Empty(t, profile.Names[0].Middle)
	require.Len(t, profile.Addresses, 1)
	require.Len(t, profile.Phones, 1)

	current, err := ts.store.FetchCurrentProfile(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, id, current.Profile.ID)

	missing, err := ts.store.FetchProfile(ctx, id+100)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSaveProfile_DuplicateNameIsRejectedAtomically(t *testing.T) {
	ts := setupTestStore(t)
	ctx := context.Background()

	_, err := ts.store.SaveProfile(ctx,
		schema.ProfileDB{BirthYear: b("1980")},
		[]schema.NameDB{{First: b("John"), Last: b("Doe")}, {First: b("John"), Last: b("Doe")}},
		[]schema.AddressDB{{City: b("Austin"), State: b("TX")}},
		nil,
	)
	require.Error(t, err)
	assert.True(t, store.IsConstraintViolation(err))
	var dbErr *store.DatabaseError
	assert.ErrorAs(t, err, &dbErr)

	current, err := ts.store.FetchCurrentProfile(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestSaveProfile_DuplicateChildRowsAreRejected(t *testing.T) {
	names := []schema.NameDB{{First: b("John"), Last: b("Doe")}}
	tests := []struct {
		name      string
		addresses []schema.AddressDB
		phones    []schema.PhoneDB
	}{
		{
			name:      "address",
			addresses: []schema.AddressDB{{City: b("Austin"), State: b("TX")}, {City: b("Austin"), State: b("TX")}},
		},
		{
			name:      "address with street",
			addresses: []schema.AddressDB{{City: b("Austin"), State: b("TX"), Street: b("1 Main St")}, {City: b("Austin"), State: b("TX"), Street: b("1 Main St")}},
		},
		{
			name:      "phone",
			addresses: []schema.AddressDB{{City: b("Austin"), State: b("TX")}},
			phones:    []schema.PhoneDB{{PhoneNumber: b("5125550100")}, {PhoneNumber: b("5125550100")}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := setupTestStore(t)
			ctx := context.Background()

			_, err := ts.store.SaveProfile(ctx, schema.ProfileDB{BirthYear: b("1980")}, names, tt.addresses, tt.phones)
			require.Error(t, err)
			assert.True(t, store.IsConstraintViolation(err))

			current, err := ts.store.FetchCurrentProfile(ctx)
			require.NoError(t, err)
			assert.Nil(t, current)
		})
	}
}

func TestUpdateProfile_DuplicateChildRowsKeepPreviousProfile(t *testing.T) {
	ts := setupTestStore(t)
	ctx := context.Background()
	id := saveProfile(t, ts.store)

	err := ts.store.UpdateProfile(ctx,
		schema.ProfileDB{ID: id, BirthYear: b("1981")},
		[]schema.NameDB{{First: b("John"), Last: b("Doe")}},
		[]schema.AddressDB{{City: b("Austin"), State: b("TX")}},
		[]schema.PhoneDB{{PhoneNumber: b("5125550199")}, {PhoneNumber: b("5125550199")}},
	)
	require.Error(t, err)
	assert.True(t, store.IsConstraintViolation(err))

	profile, err := ts.store.FetchProfile(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, b("1980"), profile.Profile.BirthYear)
	require.Len(t, profile.Phones, 1)
	assert.Equal(t, b("5125550100"), profile.Phones[0].PhoneNumber)
}

func TestUpdateProfile(t *testing.T) {
	ts := setupTestStore(t)
	ctx := context.Background()
	id := saveProfile(t, ts.store)

	err := ts.store.UpdateProfile(ctx,
		schema.ProfileDB{ID: id, BirthYear: b("1981")},
		[]schema.NameDB{{First: b("Jane"), Last: b("Doe")}, {First: b("Jane"), Last: b("Roe")}},
		[]schema.AddressDB{{City: b("Dallas"), State: b("TX"), Street: b("1 Main St")}},
		nil,
	)
	require.NoError(t, err)

	profile, err := ts.store.FetchProfile(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, b("1981"), profile.Profile.BirthYear)
	assert.Len(t, profile.Names, 2)
	require.Len(t, profile.Addresses, 1)
	assert.Equal(t, b("1 Main St"), profile.Addresses[0].Street)
	assert.Empty(t, profile.Phones)

	err = ts.store.UpdateProfile(ctx, schema.ProfileDB{ID: id + 1, BirthYear: b("1")}, nil, nil, nil)
	assert.ErrorIs(t, err, store.ErrElementNotFound)
}

func TestBrokers(t *testing.T) {
	ts := setupTestStore(t)
	ctx := context.Background()

	id := saveBroker(t, ts.store, "broker-a.com")
	_, err := ts.store.SaveBroker(ctx, schema.BrokerDB{Name: "broker-a.com", JSON: datatypes.JSON(`{}`), Version: "1", URL: "x"})
	assert.True(t, store.IsConstraintViolation(err))

	require.NoError(t, ts.store.UpdateBroker(ctx, schema.BrokerDB{ID: id, Name: "broker-a.com", JSON: datatypes.JSON(`{"v":2}`), Version: "0.2.0", URL: "broker-a.com"}))

	broker, err := ts.store.FetchBrokerByName(ctx, "broker-a.com")
	require.NoError(t, err)
	require.NotNil(t, broker)
	assert.Equal(t, "0.2.0", broker.Version)
	assert.JSONEq(t, `{"v":2}`, string(broker.JSON))

	missing, err := ts.store.FetchBroker(ctx, id+1)
	require.NoError(t, err)
	assert.Nil(t, missing)

	err = ts.store.UpdateBroker(ctx, schema.BrokerDB{ID: id + 1, Name: "other"})
	assert.ErrorIs(t, err, store.ErrElementNotFound)

	saveBroker(t, ts.store, "broker-b.com")
	all, err := ts.store.FetchAllBrokers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestProfileQueries(t *testing.T) {
	ts := setupTestStore(t)
	ctx := context.Background()
	profileID := saveProfile(t, ts.store)

	id := saveQuery(t, ts.store, profileID)
	query, err := ts.store.FetchProfileQuery(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, query)
	assert.Equal(t, profileID, query.ProfileID)
	assert.False(t, query.Deprecated)

	query.Deprecated = true
	require.NoError(t, ts.store.UpdateProfileQuery(ctx, *query))

	queries, err := ts.store.FetchAllProfileQueries(ctx, profileID)
	require.NoError(t, err)
	require.Len(t, queries, 1)
	assert.True(t, queries[0].Deprecated)

	_, err = ts.store.SaveProfileQuery(ctx, schema.ProfileQueryDB{First: b("x"), Last: b("y"), City: b("c"), State: b("s"), BirthYear: b("1")}, profileID+10)
	assert.True(t, store.IsConstraintViolation(err))

	err = ts.store.UpdateProfileQuery(ctx, schema.ProfileQueryDB{ID: id + 10})
	assert.ErrorIs(t, err, store.ErrElementNotFound)
}

func TestScans(t *testing.T) {
	ts := setupTestStore(t)
	ctx := context.Background()
	profileID := saveProfile(t, ts.store)
	brokerID := saveBroker(t, ts.store, "broker-a.com")
	queryID := saveQuery(t, ts.store, profileID)

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("EST", -5*3600))
	require.NoError(t, ts.store.SaveScan(ctx, brokerID, queryID, nil, &now))

	scan, err := ts.store.FetchScan(ctx, brokerID, queryID)
	require.NoError(t, err)
	require.NotNil(t, scan)
	require.NotNil(t, scan.PreferredRunDate)
	assert.True(t, now.Equal(*scan.PreferredRunDate))
	assert.Nil(t, scan.LastRunDate)

	later := now.Add(time.Hour)
	require.NoError(t, ts.store.UpdateScanLastRunDate(ctx, brokerID, queryID, &later))
	require.NoError(t, ts.store.UpdateScanPreferredRunDate(ctx, brokerID, queryID, nil))

	scan, err = ts.store.FetchScan(ctx, brokerID, queryID)
	require.NoError(t, err)
	require.NotNil(t, scan.LastRunDate)
	assert.True(t, later.Equal(*scan.LastRunDate))
	assert.Nil(t, scan.PreferredRunDate)

	err = ts.store.UpdateScanLastRunDate(ctx, brokerID, queryID+1, &later)
	assert.ErrorIs(t, err, store.ErrElementNotFound)
	err = ts.store.UpdateScanPreferredRunDate(ctx, brokerID, queryID+1, &later)
	assert.ErrorIs(t, err, store.ErrElementNotFound)
	err = ts.store.UpdateScanPreferredRunDate(ctx, brokerID+1, queryID, nil)
	assert.ErrorIs(t, err, store.ErrElementNotFound)

	err = ts.store.SaveScan(ctx, brokerID, queryID, nil, nil)
	assert.True(t, store.IsConstraintViolation(err))

	all, err := ts.store.FetchAllScans(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpdateScanLastRunDate_LeavesEmptyPreferredRunDate(t *testing.T) {
	ts := setupTestStore(t)
	ctx := context.Background()
	profileID := saveProfile(t, ts.store)
	brokerID := saveBroker(t, ts.store, "broker-a.com")
	queryID := saveQuery(t, ts.store, profileID)
	require.NoError(t, ts.store.SaveScan(ctx, brokerID, queryID, nil, nil))

	ran := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, ts.store.UpdateScanLastRunDate(ctx, brokerID, queryID, &ran))

	scan, err := ts.store.FetchScan(ctx, brokerID, queryID)
	require.NoError(t, err)
	require.NotNil(t, scan)
	require.NotNil(t, scan.LastRunDate)
	assert.True(t, ran.Equal(*scan.LastRunDate))
	assert.Nil(t, scan.PreferredRunDate)
}

func TestScanEvents_OrderedByTimestamp(t *testing.T) {
	ts := setupTestStore(t)
	ctx := context.Background()
	profileID := saveProfile(t, ts.store)
	brokerID := saveBroker(t, ts.store, "broker-a.com")
	queryID := saveQuery(t, ts.store, profileID)
	require.NoError(t, ts.store.SaveScan(ctx, brokerID, queryID, nil, nil))

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, kind := range []string{"c", "a", "b"} {
		require.NoError(t, ts.store.SaveScanEvent(ctx, schema.ScanHistoryEventDB{
			BrokerID:       brokerID,
			ProfileQueryID: queryID,
			Event:          b(`{"kind":"` + kind + `"}`),
			Timestamp:      base.Add(time.Duration(2-i) * time.Minute),
		}))
	}

	events, err := ts.store.FetchScanEvents(ctx, brokerID, queryID)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, `{"kind":"b"}`, string(events[0].Event))
	assert.Equal(t, `{"kind":"a"}`, string(events[1].Event))
	assert.Equal(t, `{"kind":"c"}`, string(events[2].Event))
}

func TestOptOuts(t *testing.T) {
	ts := setupTestStore(t)
	ctx := context.Background()
	profileID := saveProfile(t, ts.store)
	brokerID := saveBroker(t, ts.store, "broker-a.com")
	queryID := saveQuery(t, ts.store, profileID)
	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	extractedID, err := ts.store.SaveOptOutWithNewExtractedProfile(ctx,
		schema.OptOutDB{BrokerID: brokerID, ProfileQueryID: queryID, CreatedDate: created, PreferredRunDate: &created},
		schema.ExtractedProfileDB{Profile: b("encrypted")},
	)
	require.NoError(t, err)
	assert.NotZero(t, extractedID)

	require.NoError(t, ts.store.IncrementOptOutAttemptCount(ctx, brokerID, queryID, extractedID))
	require.NoError(t, ts.store.IncrementOptOutAttemptCount(ctx, brokerID, queryID, extractedID))
	require.NoError(t, ts.store.UpdateOptOutSubmittedSuccessfullyDate(ctx, brokerID, queryID, extractedID, &created))
	require.NoError(t, ts.store.UpdateOptOutConfirmationPixelFired(ctx, brokerID, queryID, extractedID, 14))
	assert.Error(t, ts.store.UpdateOptOutConfirmationPixelFired(ctx, brokerID, queryID, extractedID, 10))

	optOut, err := ts.store.FetchOptOut(ctx, brokerID, queryID, extractedID)
	require.NoError(t, err)
	require.NotNil(t, optOut)
	assert.Equal(t, int64(2), optOut.OptOut.AttemptCount)
	assert.False(t, optOut.OptOut.SevenDaysConfirmationPixelFired)
	assert.True(t, optOut.OptOut.FourteenDaysConfirmationPixelFired)
	require.NotNil(t, optOut.OptOut.SubmittedSuccessfullyDate)
	assert.True(t, created.Equal(*optOut.OptOut.SubmittedSuccessfullyDate))
	assert.Equal(t, b("encrypted"), optOut.ExtractedProfile.Profile)
	assert.Equal(t, brokerID, optOut.ExtractedProfile.BrokerID)

	removed := created.Add(48 * time.Hour)
	require.NoError(t, ts.store.UpdateRemovedDate(ctx, extractedID, &removed))
	extracted, err := ts.store.FetchExtractedProfile(ctx, extractedID)
	require.NoError(t, err)
	require.NotNil(t, extracted.RemovedDate)
	assert.True(t, removed.Equal(*extracted.RemovedDate))

	// same date again is accepted and changes nothing
	require.NoError(t, ts.store.UpdateRemovedDate(ctx, extractedID, &removed))
	extracted, err = ts.store.FetchExtractedProfile(ctx, extractedID)
	require.NoError(t, err)
	require.NotNil(t, extracted.RemovedDate)
	assert.True(t, removed.Equal(*extracted.RemovedDate))

	require.NoError(t, ts.store.UpdateRemovedDate(ctx, extractedID, nil))
	extracted, err = ts.store.FetchExtractedProfile(ctx, extractedID)
	require.NoError(t, err)
	assert.Nil(t, extracted.RemovedDate)

	err = ts.store.UpdateOptOutLastRunDate(ctx, brokerID, queryID, extractedID+1, &created)
	assert.ErrorIs(t, err, store.ErrElementNotFound)
	err = ts.store.UpdateOptOutPreferredRunDate(ctx, brokerID, queryID, extractedID+1, &created)
	assert.ErrorIs(t, err, store.ErrElementNotFound)
	err = ts.store.UpdateOptOutPreferredRunDate(ctx, brokerID+1, queryID, extractedID, &created)
	assert.ErrorIs(t, err, store.ErrElementNotFound)
	err = ts.store.UpdateRemovedDate(ctx, extractedID+1, nil)
	assert.ErrorIs(t, err, store.ErrElementNotFound)

	missing, err := ts.store.FetchOptOut(ctx, brokerID, queryID, extractedID+1)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSaveOptOut_UnknownBrokerViolatesForeignKey(t *testing.T) {
	ts := setupTestStore(t)
	ctx := context.Background()
	profileID := saveProfile(t, ts.store)
	queryID := saveQuery(t, ts.store, profileID)

	_, err := ts.store.SaveOptOutWithNewExtractedProfile(ctx,
		schema.OptOutDB{BrokerID: 999, ProfileQueryID: queryID, CreatedDate: time.Now()},
		schema.ExtractedProfileDB{Profile: b("p")},
	)
	require.Error(t, err)
	assert.True(t, store.IsConstraintViolation(err))

	profiles, err := ts.store.FetchExtractedProfiles(ctx, 999, queryID)
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestFetchAllOptOuts_SkipsOptOutsWithoutExtractedProfile(t *testing.T) {
	ts := setupTestStore(t)
	ctx := context.Background()
	profileID := saveProfile(t, ts.store)
	brokerID := saveBroker(t, ts.store, "broker-a.com")
	queryID := saveQuery(t, ts.store, profileID)

	var ids []int64
	for _, p := range []string{"one", "two"} {
		id, err := ts.store.SaveOptOutWithNewExtractedProfile(ctx,
			schema.OptOutDB{BrokerID: brokerID, ProfileQueryID: queryID, CreatedDate: time.Now()},
			schema.ExtractedProfileDB{Profile: b(p)},
		)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	require.NoError(t, ts.db.Exec("PRAGMA foreign_keys = OFF").Error)
	require.NoError(t, ts.db.Exec("DELETE FROM extracted_profile WHERE id = ?", ids[0]).Error)
	require.NoError(t, ts.db.Exec("PRAGMA foreign_keys = ON").Error)

	all, err := ts.store.FetchAllOptOuts(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, ids[1], all[0].OptOut.ExtractedProfileID)

	pair, err := ts.store.FetchOptOuts(ctx, brokerID, queryID)
	require.NoError(t, err)
	assert.Len(t, pair, 1)
}

func TestOptOutEvents(t *testing.T) {
	ts := setupTestStore(t)
	ctx := context.Background()
	profileID := saveProfile(t, ts.store)
	brokerID := saveBroker(t, ts.store, "broker-a.com")
	queryID := saveQuery(t, ts.store, profileID)
	extractedID, err := ts.store.SaveOptOutWithNewExtractedProfile(ctx,
		schema.OptOutDB{BrokerID: brokerID, ProfileQueryID: queryID, CreatedDate: time.Now()},
		schema.ExtractedProfileDB{Profile: b("p")},
	)
	require.NoError(t, err)

	ts1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	event := schema.OptOutHistoryEventDB{BrokerID: brokerID, ProfileQueryID: queryID, ExtractedProfileID: extractedID, Event: b(`{"kind":"optOutStarted"}`), Timestamp: ts1}
	require.NoError(t, ts.store.SaveOptOutEvent(ctx, event))
	assert.True(t, store.IsConstraintViolation(ts.store.SaveOptOutEvent(ctx, event)))

	event.Event = b(`{"kind":"optOutRequested"}`)
	event.Timestamp = ts1.Add(time.Minute)
	require.NoError(t, ts.store.SaveOptOutEvent(ctx, event))

	events, err := ts.store.FetchOptOutEvents(ctx, brokerID, queryID, extractedID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, `{"kind":"optOutStarted"}`, string(events[0].Event))
}

func TestOptOutAttempts(t *testing.T) {
	ts := setupTestStore(t)
	ctx := context.Background()
	profileID := saveProfile(t, ts.store)
	brokerID := saveBroker(t, ts.store, "broker-a.com")
	queryID := saveQuery(t, ts.store, profileID)
	extractedID, err := ts.store.SaveOptOutWithNewExtractedProfile(ctx,
		schema.OptOutDB{BrokerID: brokerID, ProfileQueryID: queryID, CreatedDate: time.Now()},
		schema.ExtractedProfileDB{Profile: b("p")},
	)
	require.NoError(t, err)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, ts.store.SaveOptOutAttempt(ctx, schema.OptOutAttemptDB{
		ExtractedProfileID: extractedID, DataBroker: "broker-a.com", AttemptID: "first", StartDate: start, LastStageDate: start,
	}))
	require.NoError(t, ts.store.SaveOptOutAttempt(ctx, schema.OptOutAttemptDB{
		ExtractedProfileID: extractedID, DataBroker: "broker-a.com", AttemptID: "second", StartDate: start.Add(time.Hour), LastStageDate: start.Add(time.Hour),
	}))

	stage := start.Add(2 * time.Hour)
	require.NoError(t, ts.store.UpdateOptOutAttemptLastStageDate(ctx, extractedID, stage))

	attempt, err := ts.store.FetchOptOutAttempt(ctx, extractedID)
	require.NoError(t, err)
	require.NotNil(t, attempt)
	assert.Equal(t, "second", attempt.AttemptID)
	assert.True(t, stage.Equal(attempt.LastStageDate))

	assert.ErrorIs(t, ts.store.UpdateOptOutAttemptLastStageDate(ctx, extractedID+1, stage), store.ErrElementNotFound)
}

func TestKeyValue(t *testing.T) {
	ts := setupTestStore(t)
	ctx := context.Background()

	value, err := ts.store.GetKeyValue(ctx, "rollout")
	require.NoError(t, err)
	assert.Nil(t, value)

	require.NoError(t, ts.store.SetKeyValue(ctx, "rollout", "42"))
	require.NoError(t, ts.store.SetKeyValue(ctx, "rollout", "43"))

	value, err = ts.store.GetKeyValue(ctx, "rollout")
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, "43", *value)
}

func TestDeleteProfileData(t *testing.T) {
	ts := setupTestStore(t)
	ctx := context.Background()
	profileID := saveProfile(t, ts.store)
	brokerID := saveBroker(t, ts.store, "broker-a.com")
	queryID := saveQuery(t, ts.store, profileID)
	require.NoError(t, ts.store.SaveScan(ctx, brokerID, queryID, nil, nil))
	_, err := ts.store.SaveOptOutWithNewExtractedProfile(ctx,
		schema.OptOutDB{BrokerID: brokerID, ProfileQueryID: queryID, CreatedDate: time.Now()},
		schema.ExtractedProfileDB{Profile: b("p")},
	)
	require.NoError(t, err)
	require.NoError(t, ts.store.SetKeyValue(ctx, "rollout", "1"))

	require.NoError(t, ts.store.DeleteProfileData(ctx))

	current, err := ts.store.FetchCurrentProfile(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
	scans, err := ts.store.FetchAllScans(ctx)
	require.NoError(t, err)
	assert.Empty(t, scans)
	optOuts, err := ts.store.FetchAllOptOuts(ctx)
	require.NoError(t, err)
	assert.Empty(t, optOuts)

	brokers, err := ts.store.FetchAllBrokers(ctx)
	require.NoError(t, err)
	assert.Len(t, brokers, 1)
	value, err := ts.store.GetKeyValue(ctx, "rollout")
	require.NoError(t, err)
	assert.NotNil(t, value)
}

func TestEngineErrorsAreWrapped(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectQuery(regexp.QuoteMeta("select sqlite_version()")).
		WillReturnRows(sqlmock.NewRows([]string{"v"}).AddRow("3.45.1"))
	db, err := store.OpenDialector(sqlite.New(sqlite.Config{Conn: sqlDB}))
	require.NoError(t, err)

	engineErr := errors.New("disk I/O error")
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `scan`").WillReturnError(engineErr)
	mock.ExpectRollback()

	now := time.Now()
	err = store.NewSQLiteStore(db).UpdateScanLastRunDate(context.Background(), 1, 2, &now)

	var dbErr *store.DatabaseError
	require.ErrorAs(t, err, &dbErr)
	assert.ErrorIs(t, err, engineErr)
	assert.NotErrorIs(t, err, store.ErrElementNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
