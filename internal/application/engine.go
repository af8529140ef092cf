package application

import (
	"fmt"
	"time"

	"iris/internal/domain"
	"iris/internal/ports"
)

// Engine computes Earth-to-body separation and its secant rate of change.
// It holds no mutable state; concurrent calls are safe when the resolver is.
type Engine struct {
	resolver ports.PositionResolver
}

// NewEngine creates an Engine backed by resolver
func NewEngine(resolver ports.PositionResolver) *Engine {
	return &Engine{resolver: resolver}
}

// ResolverName returns the name of the underlying ephemeris source
func (e *Engine) ResolverName() string {
	return e.resolver.Name()
}

// Coverage returns the time span the underlying resolver can serve
func (e *Engine) Coverage() (time.Time, time.Time) {
	return e.resolver.Coverage()
}

// Observe resolves Earth and body at a single instant
func (e *Engine) Observe(body domain.Body, at time.Time) (domain.Observation, error) {
	earth, err := e.resolver.Resolve(domain.Earth, at)
	if err != nil {
		return domain.Observation{}, fmt.Errorf("resolve Earth: %w", err)
	}
	target, err := e.resolver.Resolve(body, at)
	if err != nil {
		return domain.Observation{}, fmt.Errorf("resolve %s: %w", body, err)
	}
	return domain.Observation{At: at, Body: target, Earth: earth}, nil
}

// Distances returns the Earth-to-body separations in kilometers at t1 and t2
func (e *Engine) Distances(body domain.Body, t1, t2 time.Time) (float64, float64, error) {
	first, err := e.Observe(body, t1)
	if err != nil {
		return 0, 0, err
	}
	second, err := e.Observe(body, t2)
	if err != nil {
		return 0, 0, err
	}
	return domain.AUToKilometers(first.Separation()), domain.AUToKilometers(second.Separation()), nil
}

// ComputeDistanceAndVelocity returns the separation at t2 and the change in
// separation divided by (t2 - t1). The elapsed time is signed, so t2 may
// precede t1. Fails with *domain.ZeroElapsedTimeError when t1 equals t2.
func (e *Engine) ComputeDistanceAndVelocity(body domain.Body, t1, t2 time.Time) (domain.Result, error) {
	d1, d2, err := e.Distances(body, t1, t2)
	if err != nil {
		return domain.Result{}, err
	}

	elapsed := t2.Sub(t1).Seconds()
	if elapsed == 0 {
		return domain.Result{}, &domain.ZeroElapsedTimeError{At: t1}
	}

	return domain.Result{
		DistanceKm:  d2,
		VelocityKmS: (d2 - d1) / elapsed,
	}, nil
}
