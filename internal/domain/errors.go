package domain

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for each failure kind. The typed errors below match them
// through errors.Is.
var (
	ErrInvalidTimeFormat = errors.New("invalid time format")
	ErrUnsupportedBody   = errors.New("unsupported body")
	ErrTimeOutOfRange    = errors.New("time out of range")
	ErrZeroElapsedTime   = errors.New("zero elapsed time")
)

// InvalidTimeFormatError is returned when a timestamp string does not match TimestampLayout
type InvalidTimeFormatError struct {
	Field string
	Value string
}

func (e *InvalidTimeFormatError) Error() string {
	return fmt.Sprintf("%s: %q is not in YYYY-MM-DD HH:MM:SS format", e.Field, e.Value)
}

func (e *InvalidTimeFormatError) Is(target error) bool {
	return target == ErrInvalidTimeFormat
}

// UnsupportedBodyError is returned for identifiers that do not name a supported planet
type UnsupportedBodyError struct {
	Name string
}

func (e *UnsupportedBodyError) Error() string {
	return fmt.Sprintf("unsupported body: %q", e.Name)
}

func (e *UnsupportedBodyError) Is(target error) bool {
	return target == ErrUnsupportedBody
}

// TimeOutOfRangeError is returned when a timestamp falls outside resolver coverage
type TimeOutOfRangeError struct {
	At    time.Time
	Start time.Time
	End   time.Time
}

func (e *TimeOutOfRangeError) Error() string {
	return fmt.Sprintf("time %s outside ephemeris coverage [%s, %s]",
		e.At.UTC().Format(TimestampLayout),
		e.Start.UTC().Format(TimestampLayout),
		e.End.UTC().Format(TimestampLayout))
}

func (e *TimeOutOfRangeError) Is(target error) bool {
	return target == ErrTimeOutOfRange
}

// ZeroElapsedTimeError is returned when both observations share the same instant
type ZeroElapsedTimeError struct {
	At time.Time
}

func (e *ZeroElapsedTimeError) Error() string {
	return fmt.Sprintf("zero elapsed time: both timestamps are %s", e.At.UTC().Format(TimestampLayout))
}

func (e *ZeroElapsedTimeError) Is(target error) bool {
	return target == ErrZeroElapsedTime
}
