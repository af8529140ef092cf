package ephemeris

import "iris/internal/domain"

// Elements are Keplerian mean orbital elements referred to the mean ecliptic
// and equinox of J2000, with their linear rates per Julian century.
// Source: E. M. Standish, "Keplerian Elements for Approximate Positions of the
// Major Planets", JPL, table 1 (valid 1800 AD - 2050 AD).
type Elements struct {
	A  float64 // semi-major axis, AU
	E  float64 // eccentricity
	I  float64 // inclination, degrees
	L  float64 // mean longitude, degrees
	LP float64 // longitude of perihelion, degrees
	N  float64 // longitude of the ascending node, degrees

	DA  float64 // AU per century
	DE  float64 // per century
	DI  float64 // degrees per century
	DL  float64 // degrees per century
	DLP float64 // degrees per century
	DN  float64 // degrees per century
}

// standish holds table 1. The Earth row is the Earth-Moon barycenter.
var standish = map[domain.Body]Elements{
	domain.Mercury: {
		A: 0.38709927, E: 0.20563593, I: 7.00497902, L: 252.25032350, LP: 77.45779628, N: 48.33076593,
		DA: 0.00000037, DE: 0.00001906, DI: -0.00594749, DL: 149472.67411175, DLP: 0.16047689, DN: -0.12534081,
	},
	domain.Venus: {
		A: 0.72333566, E: 0.00677672, I: 3.39467605, L: 181.97909950, LP: 131.60246718, N: 76.67984255,
		DA: 0.00000390, DE: -0.00004107, DI: -0.00078890, DL: 58517.81538729, DLP: 0.00268329, DN: -0.27769418,
	},
	domain.Earth: {
		A: 1.00000261, E: 0.01671123, I: -0.00001531, L: 100.46457166, LP: 102.93768193, N: 0.0,
		DA: 0.00000562, DE: -0.00004392, DI: -0.01294668, DL: 35999.37244981, DLP: 0.32327364, DN: 0.0,
	},
	domain.Mars: {
		A: 1.52371034, E: 0.09339410, I: 1.84969142, L: -4.55343205, LP: -23.94362959, N: 49.55953891,
		DA: 0.00001847, DE: 0.00007882, DI: -0.00813131, DL: 19140.30268499, DLP: 0.44441088, DN: -0.29257343,
	},
	domain.Jupiter: {
		A: 5.20288700, E: 0.04838624, I: 1.30439695, L: 34.39644051, LP: 14.72847983, N: 100.47390909,
		DA: -0.00011607, DE: -0.00013253, DI: -0.00183714, DL: 3034.74612775, DLP: 0.21252668, DN: 0.20469106,
	},
	domain.Saturn: {
		A: 9.53667594, E: 0.05386179, I: 2.48599187, L: 49.95424423, LP: 92.59887831, N: 113.66242448,
		DA: -0.00125060, DE: -0.00050991, DI: 0.00193609, DL: 1222.49362201, DLP: -0.41897216, DN: -0.28867794,
	},
	domain.Uranus: {
		A: 19.18916464, E: 0.04725744, I: 0.77263783, L: 313.23810451, LP: 170.95427630, N: 74.01692503,
		DA: -0.00196176, DE: -0.00004397, DI: -0.00242939, DL: 428.48202785, DLP: 0.40805281, DN: 0.04240589,
	},
	domain.Neptune: {
		A: 30.06992276, E: 0.00859048, I: 1.77004347, L: -55.12002969, LP: 44.96476227, N: 131.78422574,
		DA: 0.00026291, DE: 0.00005105, DI: 0.00035372, DL: 218.45945325, DLP: -0.32241464, DN: -0.00508664,
	},
}

// at returns the elements propagated to T Julian centuries past J2000
func (el Elements) at(T float64) Elements {
	return Elements{
		A:  el.A + el.DA*T,
		E:  el.E + el.DE*T,
		I:  el.I + el.DI*T,
		L:  el.L + el.DL*T,
		LP: el.LP + el.DLP*T,
		N:  el.N + el.DN*T,
	}
}
