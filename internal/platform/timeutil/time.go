package timeutil

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"
)

const (
	// RFC3339Millis matches JavaScript's Date.prototype.toISOString output.
	RFC3339Millis = "2006-01-02T15:04:05.000Z07:00"

	// RFC3339Micros is used for log timestamps.
	RFC3339Micros = "2006-01-02T15:04:05.000000Z07:00"
)

// Time wraps time.Time and serializes as an RFC 3339 UTC string with millisecond precision.
type Time struct {
	time.Time
}

// NewTime wraps t.
func NewTime(t time.Time) Time {
	return Time{Time: t}
}

// String formats t the same way it is serialized.
func (t Time) String() string {
	return t.UTC().Format(RFC3339Millis)
}

// MarshalJSON implements json.Marshaler.
func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null leaves t unchanged.
func (t *Time) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timeutil: %w", err)
	}
	return t.parse(s)
}

// MarshalCBOR encodes t as a CBOR text string.
func (t Time) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(t.String())
}

// UnmarshalCBOR decodes a CBOR text string produced by MarshalCBOR.
func (t *Time) UnmarshalCBOR(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("timeutil: empty CBOR data")
	}
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timeutil: %w", err)
	}
	return t.parse(s)
}

func (t *Time) parse(s string) error {
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("timeutil: invalid time %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}
