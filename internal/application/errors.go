package application

import (
	"errors"
	"fmt"
	"strings"

	"iris/internal/domain"
)

// Re-export error kinds for use by adapters
var (
	ErrInvalidTimeFormat = domain.ErrInvalidTimeFormat
	ErrUnsupportedBody   = domain.ErrUnsupportedBody
	ErrTimeOutOfRange    = domain.ErrTimeOutOfRange
	ErrZeroElapsedTime   = domain.ErrZeroElapsedTime
)

// EarthMessage is shown instead of numbers when the target is Earth itself
const EarthMessage = "You are already on Earth!"

// DescribeError turns an error into a specific, actionable message for display
func DescribeError(err error) string {
	if err == nil {
		return ""
	}

	var (
		bodyErr  *domain.UnsupportedBodyError
		rangeErr *domain.TimeOutOfRangeError
	)

	switch {
	case errors.Is(err, ErrInvalidTimeFormat):
		return "Please enter the times in the correct format (" + TimestampLayoutHint + ")."

	case errors.As(err, &bodyErr):
		return fmt.Sprintf("%q is not a supported body. Choose one of: %s.", bodyErr.Name, bodyList())

	case errors.As(err, &rangeErr):
		return fmt.Sprintf("%s is outside the supported range (%s to %s).",
			domain.FormatTimestamp(rangeErr.At),
			domain.FormatTimestamp(rangeErr.Start),
			domain.FormatTimestamp(rangeErr.End))

	case errors.Is(err, ErrZeroElapsedTime):
		return "The initial and final times are identical, so velocity is undefined. Enter two different times."

	default:
		return fmt.Sprintf("An error occurred: %v", err)
	}
}

func bodyList() string {
	names := make([]string, 0, len(domain.Bodies()))
	for _, b := range domain.Bodies() {
		names = append(names, b.String())
	}
	return strings.Join(names, ", ")
}
