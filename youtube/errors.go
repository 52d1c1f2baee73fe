package youtube

import "fmt"

// DecodeError indicates an API response was missing an expected field
// or carried it in an unusable form.
type DecodeError struct {
	// Field is the dotted path of the missing field.
	Field string
}

// Error returns a string representation of the decode error.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("youtube: response missing field %q", e.Field)
}

// AmbiguousChannelError indicates a channel lookup did not return
// exactly one result. Callers are expected to treat it as a
// successful no-op rather than a failure.
type AmbiguousChannelError struct {
	// Handle is the channel handle that was looked up.
	Handle string
	// Count is the API-reported result count (0, or more than 1).
	Count int64
}

// Error returns a string representation of the ambiguous lookup.
func (e *AmbiguousChannelError) Error() string {
	return fmt.Sprintf("youtube: channel lookup for %q returned %d results, want exactly 1", e.Handle, e.Count)
}

// TimestampError indicates a publish timestamp could not be parsed.
type TimestampError struct {
	// Field is the dotted path of the timestamp field.
	Field string
	// Value is the rejected timestamp string.
	Value string
	// Err is the underlying parse error.
	Err error
}

// Error returns a string representation of the timestamp error.
func (e *TimestampError) Error() string {
	return fmt.Sprintf("youtube: could not parse timestamp %q in field %q: %v", e.Value, e.Field, e.Err)
}

// Unwrap returns the underlying parse error.
func (e *TimestampError) Unwrap() error {
	return e.Err
}
