package application

import (
	"time"

	"iris/internal/domain"
)

// Re-export domain types for use by adapters
type (
	Body        = domain.Body
	Result      = domain.Result
	Calculation = domain.Calculation
	Observation = domain.Observation
)

// TimestampLayout is the accepted input format for times
const TimestampLayout = domain.TimestampLayout

// TimestampLayoutHint spells TimestampLayout out for users
const TimestampLayoutHint = "YYYY-MM-DD HH:MM:SS"

// Bodies returns every supported body ordered by distance from the Sun
func Bodies() []Body {
	return domain.Bodies()
}

// FormatTimestamp renders t in TimestampLayout
func FormatTimestamp(t time.Time) string {
	return domain.FormatTimestamp(t)
}
