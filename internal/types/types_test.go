package types_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/brokerguard/dbp/internal/types"
)

func TestStringNilOrEmpty(t *testing.T) {
	tests := []struct {
		name string
		in   *string
		want bool
	}{
		{name: "nil", in: nil, want: true},
		{name: "empty", in: types.StringPtr(""), want: true},
		{name: "value", in: types.StringPtr("x"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, types.StringNilOrEmpty(tt.in))
		})
	}
}

func TestSafeValues(t *testing.T) {
	assert.Equal(t, "", types.SafeString(nil))
	assert.Equal(t, "abc", types.SafeString(types.StringPtr("abc")))
	assert.Equal(t, int64(0), types.SafeInt64(nil))
	assert.Equal(t, int64(7), types.SafeInt64(types.Int64Ptr(7)))
}

func TestTrimmedOrNil(t *testing.T) {
	tests := []struct {
		name string
		in   *string
		want *string
	}{
		{name: "nil", in: nil, want: nil},
		{name: "blank", in: types.StringPtr("   "), want: nil},
		{name: "padded", in: types.StringPtr(" Q "), want: types.StringPtr("Q")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, types.TrimmedOrNil(tt.in))
		})
	}
}

func TestTimeEqual(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	sameInstant := now.In(time.FixedZone("EST", -5*3600))

	assert.True(t, types.TimeEqual(nil, nil))
	assert.False(t, types.TimeEqual(&now, nil))
	assert.False(t, types.TimeEqual(nil, &now))
	assert.True(t, types.TimeEqual(&now, &sameInstant))
	later := now.Add(time.Second)
	assert.False(t, types.TimeEqual(&now, &later))
}
