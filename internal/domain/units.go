package domain

// KilometersPerAU is the IAU 2012 definition of the astronomical unit
const KilometersPerAU = 149597870.7

// AUToKilometers converts a length in astronomical units to kilometers
func AUToKilometers(au float64) float64 {
	return au * KilometersPerAU
}

// KilometersToAU converts a length in kilometers to astronomical units
func KilometersToAU(km float64) float64 {
	return km / KilometersPerAU
}
