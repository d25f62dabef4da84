package types

import (
	"strings"
	"time"
)

// StringPtr converts a string to a pointer to a string
func StringPtr(s string) *string {
	return &s
}

// Int64Ptr converts an int64 to a pointer to an int64
func Int64Ptr(i int64) *int64 {
	return &i
}

// TimePtr converts a time to a pointer to a time
func TimePtr(t time.Time) *time.Time {
	return &t
}

// StringNilOrEmpty checks if a pointer to a string is nil or empty
func StringNilOrEmpty(s *string) bool {
	return s == nil || *s == ""
}

// SafeString returns a safe string from a pointer to a string
func SafeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// SafeInt64 returns the value of an int64 pointer or zero
func SafeInt64(i *int64) int64 {
	if i == nil {
		return 0
	}
	return *i
}

// TrimmedOrNil trims s and returns nil when nothing is left
func TrimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// TimeEqual reports whether two optional times are both nil or the same instant
func TimeEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
