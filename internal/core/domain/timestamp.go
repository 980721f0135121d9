// Package domain defines the core domain models for tasktrack.
package domain

import (
	"fmt"
	"strconv"
	"time"
)

// TimeLayout is the wire format for timestamps: local time with
// second precision, no zone designator.
const TimeLayout = "2006-01-02T15:04:05"

// Timestamp is a local-time, second-precision point in time.
//
// It serializes as a bare "2006-01-02T15:04:05" string in both JSON
// and YAML, which is the format of the persisted task file.
type Timestamp struct {
	time.Time
}

// Now returns the current local time truncated to second precision.
func Now() Timestamp {
	return Timestamp{time.Now().Truncate(time.Second)}
}

// NewTimestamp converts a time.Time to a Timestamp, truncating to
// second precision.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t.Truncate(time.Second)}
}

// ParseTimestamp parses a timestamp in the wire format, interpreting
// it in the local time zone.
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.ParseInLocation(TimeLayout, s, time.Local)
	if err != nil {
		return Timestamp{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return Timestamp{t}, nil
}

// String returns the timestamp in the wire format.
func (t Timestamp) String() string {
	return t.Format(TimeLayout)
}

// Equal reports whether two timestamps represent the same instant.
func (t Timestamp) Equal(other Timestamp) bool {
	return t.Time.Equal(other.Time)
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.Format(TimeLayout))), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("timestamp is not a string: %w", err)
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t Timestamp) MarshalYAML() (any, error) {
	return t.Format(TimeLayout), nil
}
