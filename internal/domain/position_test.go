package domain

import (
	"math"
	"testing"
	"time"
)

func TestPosition_DistanceTo(t *testing.T) {
	a := Position{X: 1, Y: 2, Z: 3}
	b := Position{X: 4, Y: 6, Z: 3}

	if got := a.DistanceTo(b); got != 5 {
		t.Errorf("expected 5, got %v", got)
	}
	if got := b.DistanceTo(a); got != 5 {
		t.Errorf("distance should be symmetric, got %v", got)
	}
	if got := a.DistanceTo(a); got != 0 {
		t.Errorf("distance to self should be 0, got %v", got)
	}
}

func TestObservation_Separation(t *testing.T) {
	obs := Observation{
		At:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Body:  Position{X: 0, Y: 0, Z: 2},
		Earth: Position{X: 0, Y: 0, Z: -1},
	}
	if got := obs.Separation(); math.Abs(got-3) > 1e-15 {
		t.Errorf("expected 3, got %v", got)
	}
}
