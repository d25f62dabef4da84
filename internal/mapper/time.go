package mapper

import (
	"bytes"
	"strconv"
	"time"
)

// MillisTime is a time encoded in JSON as integer milliseconds since the Unix epoch
type MillisTime struct {
	time.Time
}

// NewMillisTime converts an optional time
func NewMillisTime(t *time.Time) *MillisTime {
	if t == nil {
		return nil
	}
	return &MillisTime{Time: t.UTC()}
}

// Ptr returns the wrapped time, nil for a nil receiver
func (t *MillisTime) Ptr() *time.Time {
	if t == nil {
		return nil
	}
	v := t.Time
	return &v
}

func (t MillisTime) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(t.UnixMilli(), 10)), nil
}

func (t *MillisTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	ms, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	t.Time = time.UnixMilli(ms).UTC()
	return nil
}
