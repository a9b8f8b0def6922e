// File: equal.go
// Title: Tolerance-Based Equality for Complex Numbers
// Description: Implements approximate structural equality. Two values are
//              equal when magnitude, angle in degrees, angle in radians, real
//              part and imaginary part all match after rounding each to a fixed
//              number of decimal places.
// Author: kevmasajedi
// Version: v0.1.0
// Created: 2025-02-04
// Modified: 2025-02-12
//
// Change History:
// - 2025-02-04 v0.1.0: Initial implementation with five decimal places
// - 2025-02-12 v0.1.1: Leave integral-sized values unrounded instead of overflowing

package mathx

import (
	"math"
)

// EqualityPlaces is the number of decimal places Equal rounds to
const EqualityPlaces = 5

// MaxEqualityPlaces bounds the place count accepted by EqualWithin.
// Beyond 15 places float64 carries no more decimal precision.
const MaxEqualityPlaces = 15

// Equal reports whether z and other describe the same point within
// EqualityPlaces decimal places
func (z Complex) Equal(other Complex) bool {
	return z.EqualWithin(other, EqualityPlaces)
}

// EqualWithin reports whether z and other are equal after rounding every
// derived scalar to the given number of decimal places.
// places is clamped to [0, MaxEqualityPlaces].
func (z Complex) EqualWithin(other Complex, places int) bool {
	a, b := z.scalars(), other.scalars()
	for i := range a {
		if RoundPlaces(a[i], places) != RoundPlaces(b[i], places) {
			return false
		}
	}
	return true
}

// scalars returns the five values compared by EqualWithin
func (z Complex) scalars() [5]float64 {
	return [5]float64{z.Abs(), z.AngleInDegs(), z.AngleInRads(), z.Real(), z.Imag()}
}

// RoundPlaces rounds x half away from zero to the given number of decimal places.
// Values too large to carry fractional digits at that scale are returned unchanged.
func RoundPlaces(x float64, places int) float64 {
	if places < 0 {
		places = 0
	}
	if places > MaxEqualityPlaces {
		places = MaxEqualityPlaces
	}
	scale := math.Pow(10, float64(places))
	if math.Abs(x) >= (1<<52)/scale {
		return x
	}
	return math.Round(x*scale) / scale
}
