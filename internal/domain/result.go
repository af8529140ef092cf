package domain

import "time"

// Result is the user-facing outcome of a distance computation.
// DistanceKm is the separation at the later observation; VelocityKmS is the
// change in separation divided by the elapsed time (a secant slope, not a
// relative velocity vector).
type Result struct {
	DistanceKm  float64
	VelocityKmS float64
}

// Calculation is a stored Result together with the inputs that produced it
type Calculation struct {
	ID        string
	Body      Body
	Start     time.Time
	End       time.Time
	Result    Result
	Resolver  string
	CreatedAt time.Time
}
