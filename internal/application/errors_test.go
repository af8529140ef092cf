package application

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"iris/internal/domain"
)

func TestDescribeError(t *testing.T) {
	at := time.Date(1700, 1, 1, 0, 0, 0, 0, time.UTC)
	start := time.Date(1800, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2050, 12, 31, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{"nil", nil, ""},
		{"invalid format", &domain.InvalidTimeFormatError{Field: "start", Value: "x"}, "YYYY-MM-DD HH:MM:SS"},
		{"unsupported body", fmt.Errorf("resolve: %w", &domain.UnsupportedBodyError{Name: "Pluto"}), `"Pluto" is not a supported body`},
		{"out of range", &domain.TimeOutOfRangeError{At: at, Start: start, End: end}, "1700-01-01 00:00:00 is outside"},
		{"zero elapsed", &domain.ZeroElapsedTimeError{At: at}, "identical"},
		{"generic", errors.New("disk on fire"), "An error occurred: disk on fire"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DescribeError(tt.err)
			if tt.err == nil {
				if got != "" {
					t.Errorf("expected empty message, got %q", got)
				}
				return
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("expected %q to contain %q", got, tt.contains)
			}
		})
	}
}
