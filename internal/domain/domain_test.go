package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brokerguard/dbp/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestProfile_Queries(t *testing.T) {
	profile := domain.Profile{
		Names: []domain.Name{
			{First: "John", Last: "Doe"},
			{First: "Johnny", Last: "Doe", Middle: strPtr("Q")},
		},
		Addresses: []domain.Address{
			{City: "Austin", State: "TX"},
			{City: "Dallas", State: "TX", Street: strPtr("1 Main St")},
		},
		Phones:    []string{"5125550100", "5125550101"},
		BirthYear: 1980,
	}

	queries := profile.Queries()
	require.Len(t, queries, 4)

	for _, q := range queries {
		require.NotNil(t, q.Phone)
		assert.Equal(t, "5125550100", *q.Phone)
		assert.Equal(t, 1980, q.BirthYear)
		assert.False(t, q.Deprecated)
	}
	assert.Equal(t, "John", queries[0].FirstName)
	assert.Equal(t, "Austin", queries[0].City)
	assert.Equal(t, "Dallas", queries[1].City)
	assert.Equal(t, "Johnny", queries[2].FirstName)
	assert.Equal(t, "Q", *queries[3].MiddleName)
}

func TestProfile_QueriesWithoutPhone(t *testing.T) {
	profile := domain.Profile{
		Names:     []domain.Name{{First: "Jane", Last: "Roe"}},
		Addresses: []domain.Address{{City: "Miami", State: "FL"}},
		BirthYear: 1990,
	}

	queries := profile.Queries()
	require.Len(t, queries, 1)
	assert.Nil(t, queries[0].Phone)
}

func TestProfileQuery_Identity(t *testing.T) {
	a := domain.ProfileQuery{FirstName: "John", LastName: "Doe", City: "Austin", State: "TX", BirthYear: 1980}
	b := domain.ProfileQuery{FirstName: " john", LastName: "DOE", City: "austin", State: "tx", BirthYear: 1981, Deprecated: true}
	c := domain.ProfileQuery{FirstName: "John", LastName: "Doe", City: "Austin", State: "TX", Street: strPtr("1 Main St")}

	assert.Equal(t, a.Identity(), b.Identity())
	assert.NotEqual(t, a.Identity(), c.Identity())
}

func TestName_FullName(t *testing.T) {
	assert.Equal(t, "John Doe", domain.Name{First: "John", Last: "Doe"}.FullName())
	assert.Equal(t, "John Q Doe Jr", domain.Name{First: "John", Last: "Doe", Middle: strPtr("Q"), Suffix: strPtr("Jr")}.FullName())
	assert.Equal(t, "John Doe", domain.Name{First: "John", Last: "Doe", Middle: strPtr("")}.FullName())
}

func TestExtractedProfile_IdentityKey(t *testing.T) {
	tests := []struct {
		name    string
		profile domain.ExtractedProfile
		want    string
	}{
		{
			name:    "identifier wins",
			profile: domain.ExtractedProfile{Identifier: strPtr("abc"), ProfileURL: strPtr("https://x/1"), Name: strPtr("John")},
			want:    "id:abc",
		},
		{
			name:    "profile url",
			profile: domain.ExtractedProfile{ProfileURL: strPtr("https://X/1"), Name: strPtr("John")},
			want:    "url:https://x/1",
		},
		{
			name:    "name and age",
			profile: domain.ExtractedProfile{Name: strPtr(" John Doe "), Age: strPtr("44")},
			want:    "name:john doe|44",
		},
		{
			name:    "empty",
			profile: domain.ExtractedProfile{},
			want:    "name:|",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.profile.IdentityKey())
		})
	}
}

func TestLastEvent(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	assert.Nil(t, domain.LastEvent(nil))

	events := []domain.HistoryEvent{
		domain.NewEvent(1, 2, nil, domain.EventScanStarted, now.Add(-time.Hour)),
		domain.NewMatchesFoundEvent(1, 2, 3, now),
		domain.NewEvent(1, 2, nil, domain.EventNoMatchFound, now.Add(-2*time.Hour)),
	}

	last := domain.LastEvent(events)
	require.NotNil(t, last)
	assert.Equal(t, domain.EventMatchesFound, last.Type.Kind)
	assert.Equal(t, 3, last.Type.MatchesFound)
	assert.True(t, domain.HasEvent(events, domain.EventNoMatchFound))
	assert.False(t, domain.HasEvent(events, domain.EventOptOutRequested))
}

func TestAsAutomationError(t *testing.T) {
	assert.Nil(t, domain.AsAutomationError(nil))

	ae := domain.NewAutomationError(domain.AutomationErrorCaptcha, "step %d", 2)
	wrapped := errors.Join(errors.New("context"), ae)
	got := domain.AsAutomationError(wrapped)
	assert.Same(t, ae, got)
	assert.Equal(t, "automation error: captcha: step 2", ae.Error())

	got = domain.AsAutomationError(errors.New("boom"))
	assert.Equal(t, domain.AutomationErrorUnknown, got.Kind)
	assert.Equal(t, "boom", got.Message)
}
