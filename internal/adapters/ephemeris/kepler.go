// Package ephemeris resolves planet positions from Keplerian mean elements.
package ephemeris

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/kepler"
	"github.com/soniakeys/unit"

	"iris/internal/domain"
	"iris/internal/ports"
)

const (
	// J2000 is the Julian date of 2000-01-01 12:00 TT
	J2000          = 2451545.0
	daysPerCentury = 36525.0
	// keplerPlaces is the decimal precision (radians) asked of the solver
	keplerPlaces = 12
)

// Coverage of the Standish table
var (
	CoverageStart = time.Date(1800, 1, 1, 0, 0, 0, 0, time.UTC)
	CoverageEnd   = time.Date(2050, 12, 31, 23, 59, 59, 0, time.UTC)
)

// Resolver evaluates heliocentric ecliptic J2000 positions (AU) from the
// Standish mean elements. UTC is used in place of TT; the ~69 s difference is
// far below the accuracy of the table.
type Resolver struct {
	elements map[domain.Body]Elements
	start    time.Time
	end      time.Time
}

// Ensure Resolver implements PositionResolver
var _ ports.PositionResolver = (*Resolver)(nil)

// NewResolver creates a Resolver using the built-in element table
func NewResolver() *Resolver {
	return &Resolver{
		elements: standish,
		start:    CoverageStart,
		end:      CoverageEnd,
	}
}

// Name returns the resolver name
func (r *Resolver) Name() string {
	return "kepler"
}

// Coverage returns the span over which the element table is valid
func (r *Resolver) Coverage() (time.Time, time.Time) {
	return r.start, r.end
}

// Resolve returns the heliocentric position of body at the given instant
func (r *Resolver) Resolve(body domain.Body, at time.Time) (domain.Position, error) {
	el, ok := r.elements[body]
	if !ok {
		return domain.Position{}, &domain.UnsupportedBodyError{Name: body.String()}
	}
	if at.Before(r.start) || at.After(r.end) {
		return domain.Position{}, &domain.TimeOutOfRangeError{At: at, Start: r.start, End: r.end}
	}
	return heliocentric(el.at(centuriesSinceJ2000(at))), nil
}

func centuriesSinceJ2000(t time.Time) float64 {
	return (julian.TimeToJD(t.UTC()) - J2000) / daysPerCentury
}

// heliocentric converts propagated elements to ecliptic J2000 coordinates
func heliocentric(el Elements) domain.Position {
	omega := unit.AngleFromDeg(el.LP - el.N) // argument of perihelion
	node := unit.AngleFromDeg(el.N)
	incl := unit.AngleFromDeg(el.I)
	m := unit.AngleFromDeg(el.L - el.LP).Mod1()

	ecc := solveKepler(m, el.E)

	// Orbital plane, x toward perihelion
	xp := el.A * (ecc.Cos() - el.E)
	yp := el.A * math.Sqrt(1-el.E*el.E) * ecc.Sin()

	cw, sw := omega.Cos(), omega.Sin()
	cn, sn := node.Cos(), node.Sin()
	ci, si := incl.Cos(), incl.Sin()

	return domain.Position{
		X: (cw*cn-sw*sn*ci)*xp + (-sw*cn-cw*sn*ci)*yp,
		Y: (cw*sn+sw*cn*ci)*xp + (-sw*sn+cw*cn*ci)*yp,
		Z: (sw*si)*xp + (cw*si)*yp,
	}
}

// solveKepler returns the eccentric anomaly for mean anomaly m. Newton's
// method is tried first; the bisection solver always converges for e < 1.
func solveKepler(m unit.Angle, e float64) unit.Angle {
	if ecc, err := kepler.Kepler2(e, m, keplerPlaces); err == nil {
		return ecc
	}
	return kepler.Kepler3(e, m)
}
