package application

import (
	"time"

	"iris/internal/domain"
)

// Input holds the parsed form of a body name and two timestamp strings
type Input struct {
	Body  domain.Body
	Start time.Time
	End   time.Time
}

// ParseInput validates the raw strings entered by a user.
// Timestamps are checked before the body so a malformed form reports the
// format problem first, matching the order the fields are filled in.
func ParseInput(body, start, end string) (Input, error) {
	t1, err := domain.ParseTimestamp("start", start)
	if err != nil {
		return Input{}, err
	}
	t2, err := domain.ParseTimestamp("end", end)
	if err != nil {
		return Input{}, err
	}
	b, err := domain.ParseBody(body)
	if err != nil {
		return Input{}, err
	}
	return Input{Body: b, Start: t1, End: t2}, nil
}
