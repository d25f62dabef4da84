package automation

import (
	"encoding/json"

	"github.com/brokerguard/dbp/internal/domain"
)

const (
	actionScan   = "scan"
	actionOptOut = "optOut"
)

// engineRequest is written to the engine's stdin
type engineRequest struct {
	Action      string         `json:"action"`
	ShowWebView bool           `json:"showWebView"`
	Broker      engineBroker   `json:"broker"`
	Query       engineQuery    `json:"profileQuery"`
	Extracted   *engineProfile `json:"extractedProfile,omitempty"`
}

type engineBroker struct {
	Name    string          `json:"name"`
	URL     string          `json:"url"`
	Version string          `json:"version"`
	Steps   json.RawMessage `json:"steps"`
}

type engineQuery struct {
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	MiddleName *string `json:"middleName,omitempty"`
	Suffix     *string `json:"suffix,omitempty"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	Street     *string `json:"street,omitempty"`
	ZipCode    *string `json:"zipCode,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	BirthYear  int     `json:"birthYear"`
}

type engineAddress struct {
	City  string `json:"city"`
	State string `json:"state"`
}

type engineProfile struct {
	Name             *string         `json:"name,omitempty"`
	AlternativeNames []string        `json:"alternativeNames,omitempty"`
	Addresses        []engineAddress `json:"addresses,omitempty"`
	Relatives        []string        `json:"relatives,omitempty"`
	Age              *string         `json:"age,omitempty"`
	Email            *string         `json:"email,omitempty"`
	Phones           []string        `json:"phoneNumbers,omitempty"`
	ProfileURL       *string         `json:"profileUrl,omitempty"`
	Identifier       *string         `json:"identifier,omitempty"`
}

// engineResponse is read from the engine's stdout
type engineResponse struct {
	Profiles []engineProfile `json:"profiles"`
	Error    *engineError    `json:"error,omitempty"`
}

type engineError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

var knownErrorKinds = map[domain.AutomationErrorKind]bool{
	domain.AutomationErrorEngineUnavailable: true,
	domain.AutomationErrorTimeout:           true,
	domain.AutomationErrorCaptcha:           true,
	domain.AutomationErrorNoActionFound:     true,
	domain.AutomationErrorAction:            true,
	domain.AutomationErrorParsing:           true,
}

func (e *engineError) toDomain() *domain.AutomationError {
	kind := domain.AutomationErrorKind(e.Kind)
	if !knownErrorKinds[kind] {
		kind = domain.AutomationErrorUnknown
	}
	return &domain.AutomationError{Kind: kind, Message: e.Message}
}

func newEngineBroker(b domain.Broker) engineBroker {
	return engineBroker{Name: b.Name, URL: b.URL, Version: b.Version, Steps: b.Steps}
}

func newEngineQuery(q domain.ProfileQuery) engineQuery {
	return engineQuery{
		FirstName:  q.FirstName,
		LastName:   q.LastName,
		MiddleName: q.MiddleName,
		Suffix:     q.Suffix,
		City:       q.City,
		State:      q.State,
		Street:     q.Street,
		ZipCode:    q.ZipCode,
		Phone:      q.Phone,
		BirthYear:  q.BirthYear,
	}
}

func newEngineProfile(p domain.ExtractedProfile) *engineProfile {
	addresses := make([]engineAddress, 0, len(p.Addresses))
	for _, a := range p.Addresses {
		addresses = append(addresses, engineAddress{City: a.City, State: a.State})
	}
	return &engineProfile{
		Name:             p.Name,
		AlternativeNames: p.AlternativeNames,
		Addresses:        addresses,
		Relatives:        p.Relatives,
		Age:              p.Age,
		Email:            p.Email,
		Phones:           p.Phones,
		ProfileURL:       p.ProfileURL,
		Identifier:       p.Identifier,
	}
}

func (p engineProfile) toDomain() domain.ExtractedProfile {
	var addresses []domain.ExtractedAddress
	for _, a := range p.Addresses {
		addresses = append(addresses, domain.ExtractedAddress{City: a.City, State: a.State})
	}
	return domain.ExtractedProfile{
		Name:             p.Name,
		AlternativeNames: p.AlternativeNames,
		Addresses:        addresses,
		Relatives:        p.Relatives,
		Age:              p.Age,
		Email:            p.Email,
		Phones:           p.Phones,
		ProfileURL:       p.ProfileURL,
		Identifier:       p.Identifier,
	}
}
