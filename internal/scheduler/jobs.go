package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/brokerguard/dbp/internal/adapter"
	"github.com/brokerguard/dbp/internal/automation"
	"github.com/brokerguard/dbp/internal/datamanager"
	"github.com/brokerguard/dbp/internal/domain"
	"github.com/brokerguard/dbp/internal/logger"
	"github.com/brokerguard/dbp/internal/pixels"
	"github.com/brokerguard/dbp/internal/store"
	"github.com/brokerguard/dbp/internal/types"
)

// Outcome is the result of a job that reached the automation engine or was skipped
type Outcome string

const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
	OutcomeSkipped   Outcome = "skipped"
)

// Jobs executes single scans and opt-outs and records their results.
// Automation failures become history events and a backoff; storage failures are returned.
type Jobs struct {
	dm     datamanager.DataManager
	runner automation.Runner
	calc   *Calculator
	clock  adapter.Clock
	pixels pixels.Handler
}

// NewJobs creates the job executor
func NewJobs(dm datamanager.DataManager, runner automation.Runner, calc *Calculator, clock adapter.Clock, pixelHandler pixels.Handler) *Jobs {
	return &Jobs{
		dm:     dm,
		runner: runner,
		calc:   calc,
		clock:  clock,
		pixels: pixelHandler,
	}
}

// RunScan scans a broker for a profile query and reconciles the opt-outs of the pair with the results
func (j *Jobs) RunScan(ctx context.Context, brokerID, profileQueryID int64) (Outcome, error) {
	broker, query, err := j.fetchPair(ctx, brokerID, profileQueryID)
	if err != nil {
		return "", err
	}
	scan, err := j.dm.ScanJob(ctx, brokerID, profileQueryID)
	if err != nil {
		return "", err
	}
	if scan == nil {
		return "", fmt.Errorf("scan %s: %w", ScanKey(brokerID, profileQueryID), store.ErrElementNotFound)
	}
	if query.Deprecated {
		return OutcomeSkipped, j.dm.UpdateScanPreferredRunDate(ctx, brokerID, profileQueryID, nil)
	}

	config := broker.SchedulingConfig
	now := j.clock.Now()
	events := scan.History

	started := domain.NewEvent(brokerID, profileQueryID, nil, domain.EventScanStarted, now)
	if err := j.dm.AddScanEvent(ctx, started); err != nil {
		return "", err
	}
	events = append(events, started)

	profiles, runErr := j.runner.Scan(ctx, *broker, *query)
	if runErr != nil {
		ae := domain.AsAutomationError(runErr)
		failed := domain.NewErrorEvent(brokerID, profileQueryID, nil, ae, j.eventTime(now))
		if err := j.dm.AddScanEvent(ctx, failed); err != nil {
			return "", err
		}
		events = append(events, failed)

		preferred := j.calc.ScanPreferredRunDate(scan.PreferredRunDate, events, config, false)
		if err := j.dm.UpdateScanDates(ctx, brokerID, profileQueryID, now, preferred); err != nil {
			return "", err
		}

		logger.WarnCtx(ctx, "Scan failed",
			zap.String("broker", broker.Name),
			zap.Int64("profile_query_id", profileQueryID),
			zap.String("kind", string(ae.Kind)),
			zap.Timep("next_run", preferred))
		j.pixels.Fire(pixels.New(pixels.ScanFailed, "data_broker", broker.Name, "kind", string(ae.Kind)))
		return OutcomeFailed, nil
	}

	var result domain.HistoryEvent
	if len(profiles) == 0 {
		result = domain.NewEvent(brokerID, profileQueryID, nil, domain.EventNoMatchFound, j.eventTime(now))
	} else {
		result = domain.NewMatchesFoundEvent(brokerID, profileQueryID, len(profiles), j.eventTime(now))
	}
	if err := j.dm.AddScanEvent(ctx, result); err != nil {
		return "", err
	}
	events = append(events, result)

	if err := j.reconcile(ctx, broker, profileQueryID, profiles); err != nil {
		return "", err
	}

	preferred := j.calc.ScanPreferredRunDate(scan.PreferredRunDate, events, config, false)
	if err := j.dm.UpdateScanDates(ctx, brokerID, profileQueryID, now, preferred); err != nil {
		return "", err
	}
	if err := j.rescheduleOptOuts(ctx, broker, profileQueryID); err != nil {
		return "", err
	}

	logger.InfoCtx(ctx, "Scan finished",
		zap.String("broker", broker.Name),
		zap.Int64("profile_query_id", profileQueryID),
		zap.Int("matches", len(profiles)),
		zap.Timep("next_run", preferred))
	j.pixels.Fire(pixels.New(pixels.ScanSucceeded, "data_broker", broker.Name))
	return OutcomeSucceeded, nil
}

// reconcile stores new matches, revives matches that reappeared and marks vanished ones removed
func (j *Jobs) reconcile(ctx context.Context, broker *domain.Broker, profileQueryID int64, profiles []domain.ExtractedProfile) error {
	brokerID := *broker.ID
	existing, err := j.dm.OptOutJobs(ctx, brokerID, profileQueryID)
	if err != nil {
		return err
	}
	known := make(map[string]domain.OptOutJobData, len(existing))
	for _, o := range existing {
		known[o.ExtractedProfile.IdentityKey()] = o
	}

	now := j.clock.Now()
	found := make(map[string]bool, len(profiles))
	var added int
	for _, p := range profiles {
		key := p.IdentityKey()
		if found[key] {
			continue
		}
		found[key] = true

		o, ok := known[key]
		if !ok {
			if _, err := j.dm.SaveNewOptOut(ctx, brokerID, profileQueryID, p, &now); err != nil {
				return err
			}
			added++
			continue
		}
		if !o.ExtractedProfile.IsRemoved() {
			continue
		}

		id := o.ExtractedProfileID()
		if err := j.dm.UpdateRemovedDate(ctx, id, nil); err != nil {
			return err
		}
		if err := j.dm.AddOptOutEvent(ctx, domain.NewEvent(brokerID, profileQueryID, types.Int64Ptr(id), domain.EventReAppearance, now)); err != nil {
			return err
		}
		j.pixels.Fire(pixels.New(pixels.ProfileReappeared, "data_broker", broker.Name))
	}

	var removed int
	for key, o := range known {
		if found[key] || o.ExtractedProfile.IsRemoved() {
			continue
		}
		id := o.ExtractedProfileID()
		if err := j.dm.UpdateRemovedDate(ctx, id, &now); err != nil {
			return err
		}
		if err := j.dm.AddOptOutEvent(ctx, domain.NewEvent(brokerID, profileQueryID, types.Int64Ptr(id), domain.EventOptOutConfirmed, now)); err != nil {
			return err
		}
		removed++
	}

	if added > 0 || removed > 0 {
		logger.InfoCtx(ctx, "Reconciled extracted profiles",
			zap.String("broker", broker.Name),
			zap.Int64("profile_query_id", profileQueryID),
			zap.Int("added", added),
			zap.Int("removed", removed))
	}
	return nil
}

// rescheduleOptOuts recomputes the preferred run date of every opt-out of the pair
func (j *Jobs) rescheduleOptOuts(ctx context.Context, broker *domain.Broker, profileQueryID int64) error {
	optOuts, err := j.dm.OptOutJobs(ctx, *broker.ID, profileQueryID)
	if err != nil {
		return err
	}
	for _, o := range optOuts {
		preferred := j.calc.OptOutPreferredRunDate(o.PreferredRunDate, o.History, broker.SchedulingConfig, o.AttemptCount, o.ExtractedProfile.IsRemoved())
		if types.TimeEqual(preferred, o.PreferredRunDate) {
			continue
		}
		if err := j.dm.UpdateOptOutPreferredRunDate(ctx, *broker.ID, profileQueryID, o.ExtractedProfileID(), preferred); err != nil {
			return err
		}
	}
	return nil
}

// RunOptOut submits a removal request for an extracted profile
func (j *Jobs) RunOptOut(ctx context.Context, brokerID, profileQueryID, extractedProfileID int64) (Outcome, error) {
	broker, query, err := j.fetchPair(ctx, brokerID, profileQueryID)
	if err != nil {
		return "", err
	}
	job, err := j.dm.OptOutJob(ctx, brokerID, profileQueryID, extractedProfileID)
	if err != nil {
		return "", err
	}
	if job == nil {
		return "", fmt.Errorf("opt-out %s: %w", OptOutKey(brokerID, profileQueryID, extractedProfileID), store.ErrElementNotFound)
	}

	config := broker.SchedulingConfig
	if job.ExtractedProfile.IsRemoved() || query.Deprecated {
		return OutcomeSkipped, nil
	}
	if config.MaxAttempts > 0 && job.AttemptCount >= int64(config.MaxAttempts) {
		logger.InfoCtx(ctx, "Opt-out reached its attempt limit",
			zap.String("broker", broker.Name),
			zap.Int64("extracted_profile_id", extractedProfileID),
			zap.Int64("attempts", job.AttemptCount))
		return OutcomeSkipped, j.dm.UpdateOptOutPreferredRunDate(ctx, brokerID, profileQueryID, extractedProfileID, nil)
	}

	now := j.clock.Now()
	eid := types.Int64Ptr(extractedProfileID)
	events := job.History

	started := domain.NewEvent(brokerID, profileQueryID, eid, domain.EventOptOutStarted, now)
	if err := j.dm.AddOptOutEvent(ctx, started); err != nil {
		return "", err
	}
	events = append(events, started)
	if err := j.dm.IncrementAttempt(ctx, brokerID, profileQueryID, extractedProfileID); err != nil {
		return "", err
	}
	err = j.dm.SaveOptOutAttempt(ctx, domain.OptOutAttempt{
		ExtractedProfileID: extractedProfileID,
		DataBroker:         broker.Name,
		AttemptID:          ulid.Make().String(),
		StartDate:          now,
		LastStageDate:      now,
	})
	if err != nil {
		return "", err
	}

	outcome := OutcomeSucceeded
	runErr := j.runner.OptOut(ctx, *broker, *query, job.ExtractedProfile)
	finished := j.clock.Now()
	if runErr != nil {
		ae := domain.AsAutomationError(runErr)
		failed := domain.NewErrorEvent(brokerID, profileQueryID, eid, ae, j.eventTime(now))
		if err := j.dm.AddOptOutEvent(ctx, failed); err != nil {
			return "", err
		}
		events = append(events, failed)
		outcome = OutcomeFailed

		logger.WarnCtx(ctx, "Opt-out failed",
			zap.String("broker", broker.Name),
			zap.Int64("extracted_profile_id", extractedProfileID),
			zap.String("kind", string(ae.Kind)))
		j.pixels.Fire(pixels.New(pixels.OptOutFailed, "data_broker", broker.Name, "kind", string(ae.Kind)))
	} else {
		requested := domain.NewEvent(brokerID, profileQueryID, eid, domain.EventOptOutRequested, j.eventTime(now))
		if err := j.dm.AddOptOutEvent(ctx, requested); err != nil {
			return "", err
		}
		events = append(events, requested)
		if err := j.dm.MarkSubmitted(ctx, brokerID, profileQueryID, extractedProfileID, finished); err != nil {
			return "", err
		}
		if err := j.dm.UpdateOptOutAttemptStage(ctx, extractedProfileID, finished); err != nil {
			return "", err
		}
		if err := j.scheduleConfirmationScan(ctx, broker, profileQueryID, finished); err != nil {
			return "", err
		}

		logger.InfoCtx(ctx, "Opt-out requested",
			zap.String("broker", broker.Name),
			zap.Int64("extracted_profile_id", extractedProfileID))
		j.pixels.Fire(pixels.New(pixels.OptOutSubmitted, "data_broker", broker.Name))
	}

	preferred := j.calc.OptOutPreferredRunDate(job.PreferredRunDate, events, config, job.AttemptCount+1, false)
	if err := j.dm.UpdateOptOutDates(ctx, brokerID, profileQueryID, extractedProfileID, now, preferred); err != nil {
		return "", err
	}
	return outcome, nil
}

// scheduleConfirmationScan brings the pair's scan forward so a requested removal gets verified
func (j *Jobs) scheduleConfirmationScan(ctx context.Context, broker *domain.Broker, profileQueryID int64, requested time.Time) error {
	scan, err := j.dm.ScanJob(ctx, *broker.ID, profileQueryID)
	if err != nil {
		return err
	}
	if scan == nil {
		return nil
	}
	confirm := requested.Add(broker.SchedulingConfig.ConfirmOptOutScanInterval())
	if scan.PreferredRunDate != nil && scan.PreferredRunDate.Before(confirm) {
		return nil
	}
	return j.dm.UpdateScanPreferredRunDate(ctx, *broker.ID, profileQueryID, &confirm)
}

// eventTime returns a timestamp later than started so the events of one run read back in order
func (j *Jobs) eventTime(started time.Time) time.Time {
	now := j.clock.Now()
	if now.After(started) {
		return now
	}
	return started.Add(time.Millisecond)
}

func (j *Jobs) fetchPair(ctx context.Context, brokerID, profileQueryID int64) (*domain.Broker, *domain.ProfileQuery, error) {
	broker, err := j.dm.FetchBroker(ctx, brokerID)
	if err != nil {
		return nil, nil, err
	}
	if broker == nil {
		return nil, nil, fmt.Errorf("broker %d: %w", brokerID, domain.ErrBrokerNotFound)
	}
	query, err := j.dm.FetchProfileQuery(ctx, profileQueryID)
	if err != nil {
		return nil, nil, err
	}
	if query == nil {
		return nil, nil, fmt.Errorf("profile query %d: %w", profileQueryID, store.ErrElementNotFound)
	}
	return broker, query, nil
}
