// File: polar.go
// Title: Polar Form of Complex Numbers
// Description: Implements the polar (magnitude, angle) representation of a
//              complex number and its conversion to Cartesian form.
// Author: kevmasajedi
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation

package mathx

import (
	"math"
)

// Polar represents a complex number as a magnitude and a direction.
// Magnitude is expected to be non-negative but this is not enforced.
type Polar struct {
	Magnitude float64
	Angle     Angle
}

// NewPolar creates a Polar value from a magnitude and an angle
func NewPolar(magnitude float64, angle Angle) Polar {
	return Polar{Magnitude: magnitude, Angle: angle}
}

// ToCartesian converts the polar value to Cartesian form
func (p Polar) ToCartesian() Cartesian {
	r := p.Angle.Radians()
	return Cartesian{
		Real:      p.Magnitude * math.Cos(r),
		Imaginary: p.Magnitude * math.Sin(r),
	}
}
