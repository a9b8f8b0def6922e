// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides complex numbers held in Cartesian and
//              polar form at the same time, together with a dual-unit Angle
//              type, arithmetic, logarithms, tolerance equality and display
//              formatting.
// Author: kevmasajedi
// Version: v0.2.0
// Created: 2025-02-03
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation of Angle, Cartesian, Polar and Complex
// - 2025-02-10 v0.2.0: Documentation, formatter and logarithm notes

// Package mathx provides complex numbers with synchronized Cartesian and polar forms.
//
// Overview
//
// A Complex value stores its point twice: as (real, imaginary) and as
// (magnitude, angle). Whichever form a value is built from, the constructor
// derives the other one immediately, and no method mutates a value after that.
// Angles are stored in degrees and radians in the same way.
//
// Each operation uses the form in which its formula is simplest:
//
//   - Add, Sub, Conjugate: Cartesian
//   - Mul, MulN, Div, Pow, NthRoot: polar
//   - Ln, Log10, Log: polar magnitude transform (see below)
//
// Usage
//
//	a := mathx.FromCartesian(3, 4)
//	b := mathx.FromPolar(5, mathx.AngleFromRadians(0.927))
//
//	sum := a.Add(b)
//	product := a.Mul(b)
//	fmt.Println(sum.CartesianString())
//	fmt.Println(product.PolarDegreesString())
//
// Equality
//
// Equal compares magnitude, both angle units, real and imaginary part after
// rounding each to EqualityPlaces (5) decimal places. Values built along
// different paths, e.g. FromCartesian(1, 1) and FromPolar(√2, 45°), compare
// equal even though their last bits differ. NaN never compares equal.
// EqualWithin accepts an explicit number of places.
//
// Branches
//
// FromPolar keeps the angle it is given, so Pow may produce angles outside
// (-180°, 180°]. Converting such a value back through Cartesian form yields the
// principal angle, and NthRoot of that value is the principal root, which is
// not necessarily the number that was raised to the power. NthRoot never
// returns the other n-1 roots.
//
// Logarithms
//
// Ln, Log10 and Log transform the magnitude and keep the angle, then rebuild
// the Cartesian form from that polar pair. The principal complex logarithm is
// ln(m) + iθ in Cartesian form; LnPrincipal computes that instead.
//
// Error Handling
//
// No operation returns an error. Division by a zero magnitude or the
// logarithm of zero produce Inf and NaN parts following IEEE 754, and those
// values propagate. Callers that need finite values can check IsFinite.
//
// Thread Safety
//
// All types are immutable values and safe for concurrent use.
package mathx
