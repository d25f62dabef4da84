package domain

import "time"

// HistoryEventKind identifies what happened to a scan or opt-out
type HistoryEventKind string

const (
	EventScanStarted        HistoryEventKind = "scanStarted"
	EventNoMatchFound       HistoryEventKind = "noMatchFound"
	EventMatchesFound       HistoryEventKind = "matchesFound"
	EventError              HistoryEventKind = "error"
	EventOptOutStarted      HistoryEventKind = "optOutStarted"
	EventOptOutRequested    HistoryEventKind = "optOutRequested"
	EventOptOutConfirmed    HistoryEventKind = "optOutConfirmed"
	EventReAppearance       HistoryEventKind = "reAppearance"
	EventMatchRemovedByUser HistoryEventKind = "matchRemovedByUser"
)

// HistoryEventType is the payload of a history event
type HistoryEventType struct {
	Kind HistoryEventKind
	// MatchesFound is set for EventMatchesFound
	MatchesFound int
	// Error is set for EventError
	Error *AutomationError
}

// HistoryEvent is an append-only record of a scan or opt-out transition
type HistoryEvent struct {
	BrokerID           int64
	ProfileQueryID     int64
	ExtractedProfileID *int64
	Type               HistoryEventType
	Date               time.Time
}

// NewEvent builds a plain history event
func NewEvent(brokerID, profileQueryID int64, extractedProfileID *int64, kind HistoryEventKind, date time.Time) HistoryEvent {
	return HistoryEvent{
		BrokerID:           brokerID,
		ProfileQueryID:     profileQueryID,
		ExtractedProfileID: extractedProfileID,
		Type:               HistoryEventType{Kind: kind},
		Date:               date,
	}
}

// NewMatchesFoundEvent builds a matchesFound event with its count
func NewMatchesFoundEvent(brokerID, profileQueryID int64, count int, date time.Time) HistoryEvent {
	ev := NewEvent(brokerID, profileQueryID, nil, EventMatchesFound, date)
	ev.Type.MatchesFound = count
	return ev
}

// NewErrorEvent builds an error event carrying the automation failure
func NewErrorEvent(brokerID, profileQueryID int64, extractedProfileID *int64, err *AutomationError, date time.Time) HistoryEvent {
	ev := NewEvent(brokerID, profileQueryID, extractedProfileID, EventError, date)
	ev.Type.Error = err
	return ev
}

// LastEvent returns the most recent event by date, or nil when there are none
func LastEvent(events []HistoryEvent) *HistoryEvent {
	var last *HistoryEvent
	for i := range events {
		if last == nil || !events[i].Date.Before(last.Date) {
			last = &events[i]
		}
	}
	return last
}

// HasEvent reports whether any event has the given kind
func HasEvent(events []HistoryEvent, kind HistoryEventKind) bool {
	for _, ev := range events {
		if ev.Type.Kind == kind {
			return true
		}
	}
	return false
}
