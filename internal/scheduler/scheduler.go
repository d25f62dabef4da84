package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/brokerguard/dbp/internal/adapter"
	"github.com/brokerguard/dbp/internal/automation"
	"github.com/brokerguard/dbp/internal/datamanager"
	"github.com/brokerguard/dbp/internal/domain"
	"github.com/brokerguard/dbp/internal/logger"
)

// Config holds scheduler configuration
type Config struct {
	TickInterval time.Duration // Time between scheduled cycles
	PoolSize     int           // Concurrent jobs
	QueueSize    int           // Jobs waiting for a worker
}

// Status is a snapshot of the scheduler state
type Status struct {
	Scheduled       bool
	Running         bool
	LastRunStarted  *time.Time
	LastRunFinished *time.Time
	ScansRun        int64
	OptOutsRun      int64
	Failures        int64
	Aborted         int64
}

// Scheduler runs due scans and opt-outs in the agent.
// It is a long-running background task with the same lifecycle as the other agent services.
//
//go:generate mockgen -source=scheduler.go -destination=../mocks/scheduler.go -package=mocks -mock_names=Scheduler=MockScheduler
type Scheduler interface {
	// Start runs the tick loop until the context is canceled or Stop is called
	Start(ctx context.Context) error

	// Stop prevents future runs and waits for running jobs, which are never interrupted
	Stop(ctx context.Context) error

	// Name returns the scheduler's name for logging
	Name() string

	// StartScheduledOperations enables the tick loop and triggers a cycle right away
	StartScheduledOperations(ctx context.Context, showWebView bool)

	// StartImmediateOperations runs every active scan, then the due opt-outs, and waits for them
	StartImmediateOperations(ctx context.Context, showWebView bool) error

	// RunAllOptOuts runs every opt-out that is not removed regardless of its date
	RunAllOptOuts(ctx context.Context, showWebView bool) error

	// Status returns a snapshot of the scheduler state
	Status() Status
}

type mode int

const (
	modeScheduled mode = iota
	modeImmediate
	modeAllOptOuts
)

func (m mode) String() string {
	switch m {
	case modeImmediate:
		return "immediate"
	case modeAllOptOuts:
		return "all-opt-outs"
	default:
		return "scheduled"
	}
}

type job struct {
	kind string
	key  string
	run  func(ctx context.Context) (Outcome, error)
}

type scheduler struct {
	config Config
	dm     datamanager.DataManager
	jobs   *Jobs
	clock  adapter.Clock
	locks  *KeyLocks
	pool   pond.Pool

	started     atomic.Bool
	stopping    atomic.Bool
	scheduled   atomic.Bool
	showWebView atomic.Bool
	trigger     chan struct{}
	stopOnce    sync.Once
	stopChan    chan struct{}
	stoppedCh   chan struct{}

	// cycles never overlap
	cycleMu sync.Mutex

	statusMu sync.RWMutex
	status   Status
}

// NewScheduler creates a scheduler over the data manager
func NewScheduler(config Config, dm datamanager.DataManager, jobs *Jobs, clock adapter.Clock) Scheduler {
	return &scheduler{
		config:    config,
		dm:        dm,
		jobs:      jobs,
		clock:     clock,
		locks:     NewKeyLocks(),
		pool:      pond.NewPool(config.PoolSize, pond.WithQueueSize(config.QueueSize)),
		trigger:   make(chan struct{}, 1),
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

func (s *scheduler) Name() string {
	return "scheduler"
}

func (s *scheduler) Start(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return fmt.Errorf("scheduler already running")
	}
	defer close(s.stoppedCh)

	logger.InfoCtx(ctx, "Starting scheduler",
		zap.Duration("tick_interval", s.config.TickInterval),
		zap.Int("pool_size", s.config.PoolSize))

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Scheduler stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Scheduler stop requested")
			return nil
		case <-s.trigger:
		case <-s.clock.After(s.config.TickInterval):
		}

		if !s.scheduled.Load() || s.stopping.Load() {
			continue
		}
		if err := s.runCycle(ctx, modeScheduled, s.showWebView.Load()); err != nil && !errors.Is(err, context.Canceled) {
			logger.ErrorCtx(ctx, err)
		}
	}
}

func (s *scheduler) Stop(ctx context.Context) error {
	s.stopOnce.Do(func() {
		s.stopping.Store(true)
		close(s.stopChan)
	})
	logger.InfoCtx(ctx, "Stopping scheduler")

	done := make(chan struct{})
	go func() {
		s.pool.StopAndWait()
		if s.started.Load() {
			<-s.stoppedCh
		}
		close(done)
	}()

	select {
	case <-done:
		logger.InfoCtx(ctx, "Scheduler stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Scheduler stop interrupted by context timeout")
		return ctx.Err()
	}
}

func (s *scheduler) StartScheduledOperations(ctx context.Context, showWebView bool) {
	s.showWebView.Store(showWebView)
	s.scheduled.Store(true)
	s.statusMu.Lock()
	s.status.Scheduled = true
	s.statusMu.Unlock()

	select {
	case s.trigger <- struct{}{}:
	default:
	}
	logger.InfoCtx(ctx, "Scheduled operations started", zap.Bool("show_web_view", showWebView))
}

func (s *scheduler) StartImmediateOperations(ctx context.Context, showWebView bool) error {
	return s.runCycle(ctx, modeImmediate, showWebView)
}

func (s *scheduler) RunAllOptOuts(ctx context.Context, showWebView bool) error {
	return s.runCycle(ctx, modeAllOptOuts, showWebView)
}

func (s *scheduler) Status() Status {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status
}

// runCycle runs scans first, then opt-outs, then fires confirmation pixels
func (s *scheduler) runCycle(ctx context.Context, m mode, showWebView bool) error {
	if s.stopping.Load() {
		return errors.New("scheduler is stopped")
	}
	s.cycleMu.Lock()
	defer s.cycleMu.Unlock()

	start := s.clock.Now()
	s.statusMu.Lock()
	s.status.Running = true
	s.status.LastRunStarted = &start
	s.statusMu.Unlock()
	defer func() {
		finished := s.clock.Now()
		s.statusMu.Lock()
		s.status.Running = false
		s.status.LastRunFinished = &finished
		s.statusMu.Unlock()
	}()

	ctx = automation.WithShowWebView(ctx, showWebView)
	logger.InfoCtx(ctx, "Starting cycle", zap.Stringer("mode", m))

	if m != modeAllOptOuts {
		data, err := s.dm.FetchBrokerProfileQueryData(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch jobs: %w", err)
		}
		s.runJobs(ctx, s.scanJobs(data, m, s.clock.Now()))
	}

	data, err := s.dm.FetchBrokerProfileQueryData(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch jobs: %w", err)
	}
	s.runJobs(ctx, s.optOutJobs(data, m, s.clock.Now()))

	data, err = s.dm.FetchBrokerProfileQueryData(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch jobs: %w", err)
	}
	if err := s.jobs.FireConfirmationPixels(ctx, data); err != nil {
		return fmt.Errorf("failed to fire confirmation pixels: %w", err)
	}

	logger.InfoCtx(ctx, "Cycle completed",
		zap.Stringer("mode", m),
		zap.Duration("duration", s.clock.Since(start)))
	return nil
}

func (s *scheduler) scanJobs(data []domain.BrokerProfileQueryData, m mode, now time.Time) []job {
	var jobs []job
	for _, d := range data {
		if d.ProfileQuery.Deprecated {
			continue
		}
		if m == modeScheduled && !isDue(d.ScanJobData.PreferredRunDate, now) {
			continue
		}
		brokerID, queryID := d.ScanJobData.BrokerID, d.ScanJobData.ProfileQueryID
		jobs = append(jobs, job{
			kind: "scan",
			key:  ScanKey(brokerID, queryID),
			run: func(ctx context.Context) (Outcome, error) {
				return s.jobs.RunScan(ctx, brokerID, queryID)
			},
		})
	}
	return jobs
}

func (s *scheduler) optOutJobs(data []domain.BrokerProfileQueryData, m mode, now time.Time) []job {
	var jobs []job
	for _, d := range data {
		if d.ProfileQuery.Deprecated {
			continue
		}
		for _, o := range d.OptOutJobData {
			if o.ExtractedProfile.IsRemoved() {
				continue
			}
			if m != modeAllOptOuts && !isDue(o.PreferredRunDate, now) {
				continue
			}
			brokerID, queryID, extractedID := o.BrokerID, o.ProfileQueryID, o.ExtractedProfileID()
			jobs = append(jobs, job{
				kind: "optOut",
				key:  OptOutKey(brokerID, queryID, extractedID),
				run: func(ctx context.Context) (Outcome, error) {
					return s.jobs.RunOptOut(ctx, brokerID, queryID, extractedID)
				},
			})
		}
	}
	return jobs
}

// runJobs runs jobs on the pool and waits for all of them.
// Jobs run detached from ctx cancellation so an in-flight automation step always completes.
func (s *scheduler) runJobs(ctx context.Context, jobs []job) {
	if len(jobs) == 0 {
		return
	}
	detached := context.WithoutCancel(ctx)
	group := s.pool.NewGroup()
	for _, j := range jobs {
		group.Submit(func() {
			if s.stopping.Load() || ctx.Err() != nil {
				return
			}
			if !s.locks.TryLock(j.key) {
				logger.DebugCtx(ctx, "Job already running", zap.String("key", j.key))
				return
			}
			defer s.locks.Unlock(j.key)
			s.runJob(detached, j)
		})
	}
	if err := group.Wait(); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to run jobs: %w", err))
	}
}

func (s *scheduler) runJob(ctx context.Context, j job) {
	ctx = logger.WithFields(ctx, zap.String("job", j.key), zap.String("job_kind", j.kind))
	start := s.clock.Now()
	outcome, err := j.run(ctx)
	jobDuration.WithLabelValues(j.kind).Observe(s.clock.Since(start).Seconds())

	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	if err != nil {
		// storage failures break the job contract and are not retried within the cycle
		jobsTotal.WithLabelValues(j.kind, "aborted").Inc()
		s.status.Aborted++
		logger.ErrorCtx(ctx, fmt.Errorf("%s job %s aborted: %w", j.kind, j.key, err))
		return
	}
	jobsTotal.WithLabelValues(j.kind, string(outcome)).Inc()
	if outcome == OutcomeFailed {
		s.status.Failures++
	}
	if outcome == OutcomeSkipped {
		return
	}
	if j.kind == "scan" {
		s.status.ScansRun++
	} else {
		s.status.OptOutsRun++
	}
}

func isDue(preferred *time.Time, now time.Time) bool {
	return preferred != nil && !preferred.After(now)
}
