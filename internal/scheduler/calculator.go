package scheduler

import (
	"math"
	"slices"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/brokerguard/dbp/internal/adapter"
	"github.com/brokerguard/dbp/internal/domain"
)

// Calculator derives the next preferred run date of a job from its history
type Calculator struct {
	clock           adapter.Clock
	maxErrorBackoff time.Duration
}

// NewCalculator creates a calculator whose error backoff never exceeds maxErrorBackoff.
// A non-positive maxErrorBackoff leaves the backoff uncapped.
func NewCalculator(clock adapter.Clock, maxErrorBackoff time.Duration) *Calculator {
	return &Calculator{clock: clock, maxErrorBackoff: maxErrorBackoff}
}

// ScanPreferredRunDate returns when a scan should run next, nil meaning never
func (c *Calculator) ScanPreferredRunDate(current *time.Time, events []domain.HistoryEvent, config domain.SchedulingConfig, deprecated bool) *time.Time {
	if deprecated {
		return nil
	}
	last := domain.LastEvent(events)
	if last == nil {
		return current
	}

	switch last.Type.Kind {
	case domain.EventNoMatchFound, domain.EventMatchesFound, domain.EventReAppearance:
		return c.after(config.MaintenanceScanInterval())
	case domain.EventError:
		return c.after(c.ErrorBackoff(events, config))
	case domain.EventOptOutRequested, domain.EventOptOutConfirmed:
		return c.after(config.ConfirmOptOutScanInterval())
	case domain.EventMatchRemovedByUser:
		return nil
	default:
		return current
	}
}

// OptOutPreferredRunDate returns when an opt-out should run next, nil meaning never
func (c *Calculator) OptOutPreferredRunDate(current *time.Time, events []domain.HistoryEvent, config domain.SchedulingConfig, attemptCount int64, removed bool) *time.Time {
	if removed {
		return nil
	}
	if config.MaxAttempts > 0 && attemptCount >= int64(config.MaxAttempts) {
		return nil
	}
	last := domain.LastEvent(events)
	if last == nil {
		return current
	}

	// intervals run from the event itself so that rescheduling after every scan
	// does not keep pushing the opt-out into the future
	switch last.Type.Kind {
	case domain.EventReAppearance:
		return c.after(0)
	case domain.EventError:
		return since(last.Date, c.ErrorBackoff(events, config))
	case domain.EventOptOutRequested:
		return since(last.Date, config.MaintenanceScanInterval())
	case domain.EventOptOutConfirmed, domain.EventMatchRemovedByUser:
		return nil
	default:
		return current
	}
}

// ErrorBackoff doubles the broker's retry interval for every consecutive error at the end of the history
func (c *Calculator) ErrorBackoff(events []domain.HistoryEvent, config domain.SchedulingConfig) time.Duration {
	initial := config.RetryErrorInterval()
	if initial <= 0 {
		initial = time.Hour
	}
	maxInterval := c.maxErrorBackoff
	if maxInterval <= 0 {
		maxInterval = time.Duration(math.MaxInt64)
	}
	if initial >= maxInterval {
		return maxInterval
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = initial
	b.MaxInterval = maxInterval
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	b.Reset()

	next := b.NextBackOff()
	for i := 1; i < trailingErrors(events); i++ {
		next = b.NextBackOff()
	}
	return next
}

func since(t time.Time, d time.Duration) *time.Time {
	next := t.Add(d)
	return &next
}

func (c *Calculator) after(d time.Duration) *time.Time {
	t := c.clock.Now().Add(d)
	return &t
}

// trailingErrors counts the error events after the last non-error event
func trailingErrors(events []domain.HistoryEvent) int {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b domain.HistoryEvent) int {
		return a.Date.Compare(b.Date)
	})

	n := 0
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i].Type.Kind == domain.EventError {
			n++
			continue
		}
		// a run's own start event does not break the streak
		if sorted[i].Type.Kind == domain.EventScanStarted || sorted[i].Type.Kind == domain.EventOptOutStarted {
			continue
		}
		break
	}
	return n
}
