package commands

import (
	"context"
	"errors"
	"math"
	"time"

	"iris/internal/domain"
)

// linearResolver moves every body along a straight line so distances are
// easy to predict; Earth stays at the origin.
type linearResolver struct{}

func (linearResolver) Name() string { return "linear" }

func (linearResolver) Coverage() (time.Time, time.Time) {
	return time.Date(1800, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2050, 12, 31, 23, 59, 59, 0, time.UTC)
}

func (r linearResolver) Resolve(body domain.Body, at time.Time) (domain.Position, error) {
	if !body.Valid() {
		return domain.Position{}, &domain.UnsupportedBodyError{Name: body.String()}
	}
	start, end := r.Coverage()
	if at.Before(start) || at.After(end) {
		return domain.Position{}, &domain.TimeOutOfRangeError{At: at, Start: start, End: end}
	}
	if body == domain.Earth {
		return domain.Position{}, nil
	}
	days := at.Sub(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).Hours() / 24
	return domain.Position{X: float64(body) + 0.001*days}, nil
}

type memoryHistory struct {
	saved   []domain.Calculation
	saveErr error
}

func (m *memoryHistory) Save(_ context.Context, calc *domain.Calculation) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if calc.ID == "" {
		calc.ID = "calc-" + string(rune('a'+len(m.saved)))
	}
	m.saved = append(m.saved, *calc)
	return nil
}

func (m *memoryHistory) List(_ context.Context, limit int) ([]domain.Calculation, error) {
	out := make([]domain.Calculation, 0, limit)
	for i := len(m.saved) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.saved[i])
	}
	return out, nil
}

func (m *memoryHistory) Clear(_ context.Context) (int64, error) {
	n := int64(len(m.saved))
	m.saved = nil
	return n, nil
}

var errDiskFull = errors.New("disk full")

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Abs(b))
}
