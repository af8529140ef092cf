package ports

import (
	"time"

	"iris/internal/domain"
)

// PositionResolver provides body positions in a single fixed frame and unit
type PositionResolver interface {
	// Name identifies the ephemeris source (e.g. "kepler")
	Name() string

	// Resolve returns the position of body at the given instant.
	// Fails with *domain.UnsupportedBodyError or *domain.TimeOutOfRangeError.
	Resolve(body domain.Body, at time.Time) (domain.Position, error)

	// Coverage returns the inclusive time span the resolver can serve
	Coverage() (start, end time.Time)
}
