// File: angle.go
// Title: Angle Representation in Degrees and Radians
// Description: Implements the Angle value type that carries an angle in both
//              degrees and radians. Both units are derived together at
//              construction time so they never disagree.
// Author: kevmasajedi
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation with degree and radian wrappers

package mathx

import (
	"math"
)

const (
	degreesPerRadian = 180.0 / math.Pi
	radiansPerDegree = math.Pi / 180.0
)

// Degree wraps an angle value expressed in degrees
type Degree struct {
	Value float64
}

// Radian wraps an angle value expressed in radians
type Radian struct {
	Value float64
}

// NewDegree creates a Degree from a raw value
func NewDegree(value float64) Degree {
	return Degree{Value: value}
}

// NewRadian creates a Radian from a raw value
func NewRadian(value float64) Radian {
	return Radian{Value: value}
}

// ToRadians converts the degree value to radians
func (d Degree) ToRadians() Radian {
	return DegreesToRadians(d.Value)
}

// ToDegrees converts the radian value to degrees
func (r Radian) ToDegrees() Degree {
	return RadiansToDegrees(r.Value)
}

// DegreesToRadians converts d degrees to radians.
// NaN and infinities propagate unchanged.
func DegreesToRadians(d float64) Radian {
	return Radian{Value: d * radiansPerDegree}
}

// RadiansToDegrees converts r radians to degrees.
func RadiansToDegrees(r float64) Degree {
	return Degree{Value: r * degreesPerRadian}
}

// Angle holds an angle in both degrees and radians.
// The zero value is a valid angle of 0.
type Angle struct {
	degrees Degree
	radians Radian
}

// AngleFromDegrees creates an Angle from a value in degrees
func AngleFromDegrees(d float64) Angle {
	deg := NewDegree(d)
	return Angle{degrees: deg, radians: deg.ToRadians()}
}

// AngleFromRadians creates an Angle from a value in radians
func AngleFromRadians(r float64) Angle {
	rad := NewRadian(r)
	return Angle{degrees: rad.ToDegrees(), radians: rad}
}

// Degrees returns the angle in degrees
func (a Angle) Degrees() float64 {
	return a.degrees.Value
}

// Radians returns the angle in radians
func (a Angle) Radians() float64 {
	return a.radians.Value
}

// Degree returns the degree wrapper of the angle
func (a Angle) Degree() Degree {
	return a.degrees
}

// Radian returns the radian wrapper of the angle
func (a Angle) Radian() Radian {
	return a.radians
}

// Clone returns a copy of the angle rebuilt from its degree value.
// The radian value is derived again rather than copied.
func (a Angle) Clone() Angle {
	return AngleFromDegrees(a.degrees.Value)
}
