// File: complex.go
// Title: Complex Number Value Type
// Description: Implements the Complex type which keeps a Cartesian and a polar
//              representation of the same point. Additive operations work on
//              the Cartesian form, multiplicative and exponential operations on
//              the polar form. Every result is built through FromCartesian or
//              FromPolar so both forms are always derived together.
// Author: kevmasajedi
// Version: v0.2.0
// Created: 2025-02-03
// Modified: 2025-02-12
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation with arithmetic operations
// - 2025-02-10 v0.2.0: Added Conjugate and logarithms with arbitrary base
// - 2025-02-12 v0.2.1: Conjugate keeps a +0 imaginary part

package mathx

import (
	"math"
)

// Complex is an immutable complex number held in Cartesian and polar form.
// Values are only created by FromCartesian, FromPolar and FromReal; the zero
// value is the origin with an angle of 0.
type Complex struct {
	cartesian Cartesian
	polar     Polar
}

// FromCartesian creates a Complex from its real and imaginary parts
func FromCartesian(real, imaginary float64) Complex {
	cartesian := NewCartesian(real, imaginary)
	return Complex{cartesian: cartesian, polar: cartesian.ToPolar()}
}

// FromPolar creates a Complex from a magnitude and an angle.
// The angle is stored as given and is not reduced to (-180°, 180°].
func FromPolar(magnitude float64, angle Angle) Complex {
	polar := NewPolar(magnitude, angle)
	return Complex{cartesian: polar.ToCartesian(), polar: polar}
}

// FromReal creates a Complex with the given real part and an imaginary part of 0
func FromReal(real float64) Complex {
	return FromCartesian(real, 0.0)
}

// Real returns the real part
func (z Complex) Real() float64 {
	return z.cartesian.Real
}

// Imag returns the imaginary part
func (z Complex) Imag() float64 {
	return z.cartesian.Imaginary
}

// Abs returns the magnitude
func (z Complex) Abs() float64 {
	return z.polar.Magnitude
}

// AngleInRads returns the angle in radians
func (z Complex) AngleInRads() float64 {
	return z.polar.Angle.Radians()
}

// AngleInDegs returns the angle in degrees
func (z Complex) AngleInDegs() float64 {
	return z.polar.Angle.Degrees()
}

// AngleInAngle returns a copy of the angle
func (z Complex) AngleInAngle() Angle {
	return z.polar.Angle.Clone()
}

// Cartesian returns the Cartesian form
func (z Complex) Cartesian() Cartesian {
	return z.cartesian
}

// Polar returns the polar form with a copy of the angle
func (z Complex) Polar() Polar {
	return NewPolar(z.polar.Magnitude, z.polar.Angle.Clone())
}

// Add returns z + other
func (z Complex) Add(other Complex) Complex {
	return FromCartesian(z.Real()+other.Real(), z.Imag()+other.Imag())
}

// Sub returns z - other
func (z Complex) Sub(other Complex) Complex {
	return FromCartesian(z.Real()-other.Real(), z.Imag()-other.Imag())
}

// Mul returns z * other: magnitudes multiply, angles add
func (z Complex) Mul(other Complex) Complex {
	magnitude := z.Abs() * other.Abs()
	angle := AngleFromRadians(z.AngleInRads() + other.AngleInRads())
	return FromPolar(magnitude, angle)
}

// MulN scales the magnitude of z by n and keeps its angle
func (z Complex) MulN(n float64) Complex {
	return FromPolar(z.Abs()*n, z.AngleInAngle())
}

// Div returns z / other: magnitudes divide, angles subtract.
// Dividing by a zero magnitude yields Inf or NaN parts.
func (z Complex) Div(other Complex) Complex {
	magnitude := z.Abs() / other.Abs()
	angle := AngleFromRadians(z.AngleInRads() - other.AngleInRads())
	return FromPolar(magnitude, angle)
}

// Pow raises z to the real power n (de Moivre).
// The resulting angle is θ·n and may leave the principal range.
func (z Complex) Pow(n float64) Complex {
	magnitude := math.Pow(z.Abs(), n)
	angle := AngleFromRadians(z.AngleInRads() * n)
	return FromPolar(magnitude, angle)
}

// NthRoot returns the principal nth root of z: magnitude m^(1/n), angle θ/n.
// The other n-1 roots are not computed.
func (z Complex) NthRoot(n float64) Complex {
	magnitude := math.Pow(z.Abs(), 1.0/n)
	angle := AngleFromRadians(z.AngleInRads() / n)
	return FromPolar(magnitude, angle)
}

// Ln replaces the magnitude of z with its natural logarithm and keeps the angle.
//
// This is not the principal complex logarithm, which would be ln(m) + iθ in
// Cartesian form. The result is kept for compatibility with existing values;
// use LnPrincipal for the conventional definition.
func (z Complex) Ln() Complex {
	return FromPolar(math.Log(z.Abs()), z.AngleInAngle())
}

// Log10 replaces the magnitude of z with its base-10 logarithm and keeps the
// angle. See Ln for how this differs from the principal logarithm.
func (z Complex) Log10() Complex {
	return FromPolar(math.Log10(z.Abs()), z.AngleInAngle())
}

// Log replaces the magnitude of z with its logarithm to the given base and
// keeps the angle. See Ln for how this differs from the principal logarithm.
func (z Complex) Log(base float64) Complex {
	return FromPolar(logBase(z.Abs(), base), z.AngleInAngle())
}

// LnPrincipal returns the principal natural logarithm ln(m) + iθ
func (z Complex) LnPrincipal() Complex {
	return FromCartesian(math.Log(z.Abs()), z.AngleInRads())
}

// Conjugate returns re - i·im.
// A zero imaginary part stays +0 so real values keep their angle.
func (z Complex) Conjugate() Complex {
	return FromCartesian(z.Real(), 0-z.Imag())
}

// IsFinite reports whether all parts of z are finite numbers
func (z Complex) IsFinite() bool {
	for _, v := range []float64{z.Real(), z.Imag(), z.Abs(), z.AngleInRads()} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// logBase returns log_base(x) as ln(x)/ln(base)
func logBase(x, base float64) float64 {
	return math.Log(x) / math.Log(base)
}
