package domain

import (
	"math"
	"time"
)

// Position is a Cartesian position in the heliocentric ecliptic J2000 frame,
// expressed in astronomical units.
type Position struct {
	X, Y, Z float64
}

// Sub returns p - q
func (p Position) Sub(q Position) Position {
	return Position{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Norm returns the Euclidean length of the vector
func (p Position) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// DistanceTo returns the 3D separation between p and q in AU
func (p Position) DistanceTo(q Position) float64 {
	return p.Sub(q).Norm()
}

// Observation pairs the target and Earth positions captured at one instant
type Observation struct {
	At    time.Time
	Body  Position
	Earth Position
}

// Separation returns the Earth-to-body distance in AU
func (o Observation) Separation() float64 {
	return o.Earth.DistanceTo(o.Body)
}
