package mapper

import (
	"fmt"

	"github.com/brokerguard/dbp/internal/domain"
	"github.com/brokerguard/dbp/internal/store/schema"
	"github.com/brokerguard/dbp/internal/types"
)

type automationErrorJSON struct {
	Kind    domain.AutomationErrorKind `json:"kind"`
	Message string                     `json:"message,omitempty"`
}

type eventTypeJSON struct {
	Kind         domain.HistoryEventKind `json:"kind"`
	MatchesFound int                     `json:"matchesFound,omitempty"`
	Error        *automationErrorJSON    `json:"error,omitempty"`
}

func (m *Mapper) encodeEventType(t domain.HistoryEventType) ([]byte, error) {
	dto := eventTypeJSON{Kind: t.Kind, MatchesFound: t.MatchesFound}
	if t.Error != nil {
		dto.Error = &automationErrorJSON{Kind: t.Error.Kind, Message: t.Error.Message}
	}
	b, err := m.json.Marshal(dto)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal history event: %w", err)
	}
	return b, nil
}

func (m *Mapper) decodeEventType(b []byte) (domain.HistoryEventType, error) {
	var dto eventTypeJSON
	if err := m.json.Unmarshal(b, &dto); err != nil {
		return domain.HistoryEventType{}, fmt.Errorf("failed to unmarshal history event: %w", err)
	}
	t := domain.HistoryEventType{Kind: dto.Kind, MatchesFound: dto.MatchesFound}
	if dto.Error != nil {
		t.Error = &domain.AutomationError{Kind: dto.Error.Kind, Message: dto.Error.Message}
	}
	return t, nil
}

func (m *Mapper) ScanEventToDB(event domain.HistoryEvent) (schema.ScanHistoryEventDB, error) {
	payload, err := m.encodeEventType(event.Type)
	if err != nil {
		return schema.ScanHistoryEventDB{}, err
	}
	return schema.ScanHistoryEventDB{
		BrokerID:       event.BrokerID,
		ProfileQueryID: event.ProfileQueryID,
		Event:          payload,
		Timestamp:      event.Date.UTC(),
	}, nil
}

func (m *Mapper) ScanEventToModel(row schema.ScanHistoryEventDB) (domain.HistoryEvent, error) {
	t, err := m.decodeEventType(row.Event)
	if err != nil {
		return domain.HistoryEvent{}, err
	}
	return domain.HistoryEvent{
		BrokerID:       row.BrokerID,
		ProfileQueryID: row.ProfileQueryID,
		Type:           t,
		Date:           row.Timestamp,
	}, nil
}

// OptOutEventToDB converts an event that must name an extracted profile
func (m *Mapper) OptOutEventToDB(event domain.HistoryEvent) (schema.OptOutHistoryEventDB, error) {
	if event.ExtractedProfileID == nil {
		return schema.OptOutHistoryEventDB{}, fmt.Errorf("opt-out event %s has no extracted profile", event.Type.Kind)
	}
	payload, err := m.encodeEventType(event.Type)
	if err != nil {
		return schema.OptOutHistoryEventDB{}, err
	}
	return schema.OptOutHistoryEventDB{
		BrokerID:           event.BrokerID,
		ProfileQueryID:     event.ProfileQueryID,
		ExtractedProfileID: *event.ExtractedProfileID,
		Event:              payload,
		Timestamp:          event.Date.UTC(),
	}, nil
}

func (m *Mapper) OptOutEventToModel(row schema.OptOutHistoryEventDB) (domain.HistoryEvent, error) {
	t, err := m.decodeEventType(row.Event)
	if err != nil {
		return domain.HistoryEvent{}, err
	}
	return domain.HistoryEvent{
		BrokerID:           row.BrokerID,
		ProfileQueryID:     row.ProfileQueryID,
		ExtractedProfileID: types.Int64Ptr(row.ExtractedProfileID),
		Type:               t,
		Date:               row.Timestamp,
	}, nil
}
