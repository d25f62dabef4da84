package scheduler_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/brokerguard/dbp/internal/adapter"
	"github.com/brokerguard/dbp/internal/datamanager"
	"github.com/brokerguard/dbp/internal/domain"
	"github.com/brokerguard/dbp/internal/mapper"
	"github.com/brokerguard/dbp/internal/mocks"
	"github.com/brokerguard/dbp/internal/pixels"
	"github.com/brokerguard/dbp/internal/scheduler"
	"github.com/brokerguard/dbp/internal/store"
)

var start = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

var testConfig = domain.SchedulingConfig{RetryError: 48, ConfirmOptOutScan: 72, MaintenanceScan: 240}

// testEnv is a job runner over a real database with a mocked engine and clock
type testEnv struct {
	ctrl   *gomock.Controller
	clock  *mocks.MockClock
	runner *mocks.MockRunner
	dm     datamanager.DataManager
	jobs   *scheduler.Jobs

	brokerID int64
	queryID  int64

	mu    sync.Mutex
	now   time.Time
	fired []pixels.Pixel
}

func setupTestEnv(t *testing.T, cities ...string) *testEnv {
	if len(cities) == 0 {
		cities = []string{"Austin"}
	}
	ctrl := gomock.NewController(t)
	env := &testEnv{
		ctrl:   ctrl,
		clock:  mocks.NewMockClock(ctrl),
		runner: mocks.NewMockRunner(ctrl),
		now:    start,
	}
	env.clock.EXPECT().Now().DoAndReturn(env.Now).AnyTimes()
	env.clock.EXPECT().Since(gomock.Any()).Return(time.Duration(0)).AnyTimes()
	env.clock.EXPECT().After(gomock.Any()).Return(make(chan time.Time)).AnyTimes()

	handler := mocks.NewMockPixelHandler(ctrl)
	handler.EXPECT().Fire(gomock.Any()).Do(func(p pixels.Pixel) {
		env.mu.Lock()
		defer env.mu.Unlock()
		env.fired = append(env.fired, p)
	}).AnyTimes()

	db, err := store.Open(filepath.Join(t.TempDir(), "Vault.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(db) })

	plain := mapper.EncryptionMechanism{
		Encrypt: func(b []byte) ([]byte, error) { return append([]byte("x"), b...), nil },
		Decrypt: func(b []byte) ([]byte, error) { return b[1:], nil },
	}
	env.dm = datamanager.NewDataManager(store.NewSQLiteStore(db), mapper.NewMapper(plain, adapter.NewJSON()), env.clock, nil)
	env.jobs = scheduler.NewJobs(env.dm, env.runner, scheduler.NewCalculator(env.clock, 72*time.Hour), env.clock, handler)

	ctx := context.Background()
	require.NoError(t, env.dm.UpsertBrokers(ctx, []domain.Broker{{
		Name: "broker-a.com", URL: "https://broker-a.com", Version: "1.0", Steps: []byte(`[]`), SchedulingConfig: testConfig,
	}}))

	profile := domain.Profile{Names: []domain.Name{{First: "John", Last: "Doe"}}, BirthYear: 1980}
	for _, c := range cities {
		profile.Addresses = append(profile.Addresses, domain.Address{City: c, State: "TX"})
	}
	require.NoError(t, env.dm.SaveProfile(ctx, profile))

	data, err := env.dm.FetchBrokerProfileQueryData(ctx)
	require.NoError(t, err)
	require.Len(t, data, len(cities))
	env.brokerID = *data[0].Broker.ID
	env.queryID = *data[0].ProfileQuery.ID
	return env
}

func (e *testEnv) Now() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.now
}

func (e *testEnv) advance(d time.Duration) time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.now = e.now.Add(d)
	return e.now
}

func (e *testEnv) pixelNames() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	names := make([]string, 0, len(e.fired))
	for _, p := range e.fired {
		names = append(names, p.Name)
	}
	return names
}

func (e *testEnv) optOuts(t *testing.T) map[string]domain.OptOutJobData {
	jobs, err := e.dm.OptOutJobs(context.Background(), e.brokerID, e.queryID)
	require.NoError(t, err)
	byName := make(map[string]domain.OptOutJobData, len(jobs))
	for _, o := range jobs {
		byName[*o.ExtractedProfile.Name] = o
	}
	return byName
}

func match(name string) domain.ExtractedProfile {
	return domain.ExtractedProfile{Name: &name, Age: ptr("44")}
}

func ptr(s string) *string { return &s }
