// File: cartesian.go
// Title: Cartesian Form of Complex Numbers
// Description: Implements the Cartesian (real, imaginary) representation of a
//              complex number and its conversion to polar form.
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

// Cartesian represents a complex number as a point (Real, Imaginary)
type Cartesian struct {
	Real      float64
	Imaginary float64
}

// NewCartesian creates a Cartesian value from its real and imaginary parts
func NewCartesian(real, imaginary float64) Cartesian {
	return Cartesian{Real: real, Imaginary: imaginary}
}

// ToPolar converts the Cartesian value to polar form.
// The angle follows math.Atan2 and lies in (-π, π].
func (c Cartesian) ToPolar() Polar {
	magnitude := math.Sqrt(c.Real*c.Real + c.Imaginary*c.Imaginary)
	angle := AngleFromRadians(math.Atan2(c.Imaginary, c.Real))
	return Polar{Magnitude: magnitude, Angle: angle}
}
