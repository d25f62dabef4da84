package domain

import (
	"strings"
	"time"
)

// ExtractedAddress is an address as listed on a broker site
type ExtractedAddress struct {
	City  string
	State string
}

// ExtractedProfile is a record found on a broker site that matches a profile query
type ExtractedProfile struct {
	ID               *int64
	Name             *string
	AlternativeNames []string
	Addresses        []ExtractedAddress
	Relatives        []string
	Age              *string
	Email            *string
	Phones           []string
	ProfileURL       *string
	Identifier       *string
	RemovedDate      *time.Time
}

// IsRemoved reports whether the broker no longer lists this record
func (p ExtractedProfile) IsRemoved() bool {
	return p.RemovedDate != nil
}

// IdentityKey returns the key used to recognise the same record across scans.
// The broker identifier wins, then the profile URL, then name and age.
func (p ExtractedProfile) IdentityKey() string {
	if p.Identifier != nil && *p.Identifier != "" {
		return "id:" + *p.Identifier
	}
	if p.ProfileURL != nil && *p.ProfileURL != "" {
		return "url:" + strings.ToLower(*p.ProfileURL)
	}
	var name, age string
	if p.Name != nil {
		name = strings.ToLower(strings.TrimSpace(*p.Name))
	}
	if p.Age != nil {
		age = strings.TrimSpace(*p.Age)
	}
	return "name:" + name + "|" + age
}
