package scheduler_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brokerguard/dbp/internal/automation"
	"github.com/brokerguard/dbp/internal/domain"
	"github.com/brokerguard/dbp/internal/scheduler"
)

func newTestScheduler(env *testEnv) scheduler.Scheduler {
	return scheduler.NewScheduler(scheduler.Config{TickInterval: time.Hour, PoolSize: 2, QueueSize: 10}, env.dm, env.jobs, env.clock)
}

func TestScheduler_StartImmediateOperations(t *testing.T) {
	env := setupTestEnv(t, "Austin", "Dallas", "Houston")
	ctx := context.Background()
	s := newTestScheduler(env)
	t.Cleanup(func() { _ = s.Stop(context.Background()) })

	var scans, optOuts atomic.Int32
	env.runner.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ domain.Broker, q domain.ProfileQuery) ([]domain.ExtractedProfile, error) {
			scans.Add(1)
			assert.True(t, automation.ShowWebView(ctx))
			if q.City == "Dallas" {
				return []domain.ExtractedProfile{match("John Doe")}, nil
			}
			return nil, nil
		}).Times(3)
	env.runner.EXPECT().OptOut(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.Broker, domain.ProfileQuery, domain.ExtractedProfile) error {
			optOuts.Add(1)
			return nil
		}).Times(1)

	require.NoError(t, s.StartImmediateOperations(ctx, true))

	// the match found by the scan is opted out within the same cycle
	assert.Equal(t, int32(3), scans.Load())
	assert.Equal(t, int32(1), optOuts.Load())

	status := s.Status()
	assert.False(t, status.Running)
	assert.False(t, status.Scheduled)
	assert.Equal(t, int64(3), status.ScansRun)
	assert.Equal(t, int64(1), status.OptOutsRun)
	assert.NotNil(t, status.LastRunFinished)

	data, err := env.dm.FetchBrokerProfileQueryData(ctx)
	require.NoError(t, err)
	for _, d := range data {
		assert.True(t, start.Equal(*d.ScanJobData.LastRunDate))
	}
}

func TestScheduler_ScheduledCycleRunsOnlyDueJobs(t *testing.T) {
	env := setupTestEnv(t, "Austin", "Dallas")
	ctx := context.Background()

	// push the Dallas scan into the future
	data, err := env.dm.FetchBrokerProfileQueryData(ctx)
	require.NoError(t, err)
	future := start.Add(time.Hour)
	var dallas int64
	for _, d := range data {
		if d.ProfileQuery.City == "Dallas" {
			dallas = *d.ProfileQuery.ID
			require.NoError(t, env.dm.UpdateScanPreferredRunDate(ctx, env.brokerID, dallas, &future))
		}
	}

	ran := make(chan string, 4)
	env.runner.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Broker, q domain.ProfileQuery) ([]domain.ExtractedProfile, error) {
			ran <- q.City
			return nil, nil
		}).Times(1)

	s := newTestScheduler(env)
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	s.StartScheduledOperations(ctx, false)

	select {
	case city := <-ran:
		assert.Equal(t, "Austin", city)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduled cycle did not run")
	}
	assert.Eventually(t, func() bool {
		st := s.Status()
		return st.Scheduled && !st.Running && st.LastRunFinished != nil
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, s.Stop(ctx))
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
	}

	scan, err := env.dm.ScanJob(ctx, env.brokerID, dallas)
	require.NoError(t, err)
	assert.Nil(t, scan.LastRunDate)

	// a stopped scheduler refuses new cycles
	assert.Error(t, s.StartImmediateOperations(ctx, false))
}

func TestScheduler_RunAllOptOutsIgnoresDates(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	s := newTestScheduler(env)
	t.Cleanup(func() { _ = s.Stop(context.Background()) })

	later := start.Add(30 * 24 * time.Hour)
	_, err := env.dm.SaveNewOptOut(ctx, env.brokerID, env.queryID, match("John Doe"), &later)
	require.NoError(t, err)
	removedID, err := env.dm.SaveNewOptOut(ctx, env.brokerID, env.queryID, match("Johnny Doe"), &later)
	require.NoError(t, err)
	require.NoError(t, env.dm.UpdateRemovedDate(ctx, removedID, &start))

	env.runner.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	env.runner.EXPECT().OptOut(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Broker, _ domain.ProfileQuery, p domain.ExtractedProfile) error {
			assert.Equal(t, "John Doe", *p.Name)
			return nil
		}).Times(1)

	require.NoError(t, s.RunAllOptOuts(ctx, false))
	assert.Equal(t, int64(1), s.Status().OptOutsRun)
}

func TestScheduler_StartTwice(t *testing.T) {
	env := setupTestEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	s := newTestScheduler(env)

	env.runner.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	// a finished scheduled cycle proves the loop is running
	s.StartScheduledOperations(ctx, false)
	require.Eventually(t, func() bool {
		return s.Status().LastRunFinished != nil
	}, 5*time.Second, 10*time.Millisecond)

	assert.EqualError(t, s.Start(ctx), "scheduler already running")

	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, "scheduler", s.Name())
	require.NoError(t, s.Stop(context.Background()))
}

func TestScheduler_ResubmitsOptOutWhileMatchIsListed(t *testing.T) {
	env := setupTestEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s := newTestScheduler(env)

	var scans, submissions atomic.Int32
	env.runner.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.Broker, domain.ProfileQuery) ([]domain.ExtractedProfile, error) {
			scans.Add(1)
			return []domain.ExtractedProfile{match("John Doe")}, nil
		}).AnyTimes()
	env.runner.EXPECT().OptOut(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.Broker, domain.ProfileQuery, domain.ExtractedProfile) error {
			submissions.Add(1)
			return nil
		}).AnyTimes()

	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	// one scheduled cycle per day for 45 days; due scans run before due opt-outs
	for day := 0; day < 45; day++ {
		now := env.advance(24 * time.Hour)
		s.StartScheduledOperations(ctx, false)
		require.Eventually(t, func() bool {
			st := s.Status()
			return !st.Running && st.LastRunFinished != nil && st.LastRunFinished.Equal(now)
		}, 5*time.Second, 5*time.Millisecond, "cycle of day %d", day)
	}

	cancel()
	require.NoError(t, <-done)
	require.NoError(t, s.Stop(context.Background()))

	// the removal is requested again after every maintenance interval the match survives
	assert.GreaterOrEqual(t, submissions.Load(), int32(4))
	assert.GreaterOrEqual(t, scans.Load(), int32(4))

	job := env.optOuts(t)["John Doe"]
	assert.Equal(t, int64(submissions.Load()), job.AttemptCount)
	require.NotNil(t, job.PreferredRunDate)
	assert.True(t, job.PreferredRunDate.Before(env.Now().Add(testConfig.MaintenanceScanInterval()+time.Hour)))
}
