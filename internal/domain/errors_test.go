package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestErrorKinds_MatchSentinels(t *testing.T) {
	at := time.Date(1700, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"invalid time format", &InvalidTimeFormatError{Field: "end", Value: "x"}, ErrInvalidTimeFormat},
		{"unsupported body", &UnsupportedBodyError{Name: "Pluto"}, ErrUnsupportedBody},
		{"time out of range", &TimeOutOfRangeError{At: at, Start: at, End: at}, ErrTimeOutOfRange},
		{"zero elapsed time", &ZeroElapsedTimeError{At: at}, ErrZeroElapsedTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("context: %w", tt.err)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("expected wrapped error to match %v", tt.sentinel)
			}
			for _, other := range []error{ErrInvalidTimeFormat, ErrUnsupportedBody, ErrTimeOutOfRange, ErrZeroElapsedTime} {
				if other != tt.sentinel && errors.Is(tt.err, other) {
					t.Errorf("%v should not match %v", tt.err, other)
				}
			}
		})
	}
}
