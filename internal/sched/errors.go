package sched

import "fmt"

// RangeError reports a day index outside 0..6. Recoverable: the facade
// logs it and the operation becomes a no-op.
type RangeError struct {
	Day int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("day %d out of range 0..%d", e.Day, DaysPerWeek-1)
}

// ShapeError reports malformed replacement cards. Recoverable: the caller
// falls back to factory defaults.
type ShapeError struct {
	Reason string
}

func (e *ShapeError) Error() string {
	return "bad week shape: " + e.Reason
}

// FieldError reports a mutation against an unregistered key or a value
// outside the field's type domain. Recoverable no-op.
type FieldError struct {
	Key string
	Err error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q rejected: %v", e.Key, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
