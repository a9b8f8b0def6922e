// File: format.go
// Title: Display Formatting for Complex Numbers
// Description: Renders complex numbers in Cartesian and polar notation, both as
//              rounded "pretty" values and at full precision. Rendering only
//              reads accessor values; the stored numbers are never rounded.
// Author: kevmasajedi
// Version: v0.1.0
// Created: 2025-02-05
// Modified: 2025-02-05
//
// Change History:
// - 2025-02-05 v0.1.0: Initial implementation of pretty and precision forms

package mathx

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultPrettyPlaces is the number of decimal places used by pretty forms
const DefaultPrettyPlaces = 1

// Formatter renders complex numbers as text
type Formatter struct {
	// PrettyPlaces is the number of decimal places for pretty values
	PrettyPlaces int
}

// NewFormatter creates a formatter with the given pretty decimal places
func NewFormatter(prettyPlaces int) Formatter {
	if prettyPlaces < 0 {
		prettyPlaces = 0
	}
	return Formatter{PrettyPlaces: prettyPlaces}
}

// DefaultFormatter returns a formatter with DefaultPrettyPlaces
func DefaultFormatter() Formatter {
	return NewFormatter(DefaultPrettyPlaces)
}

// Cartesian renders "re + im j" at full precision
func (f Formatter) Cartesian(z Complex) string {
	return fmt.Sprintf("%s + %s j", full(z.Real()), full(z.Imag()))
}

// PolarRadians renders "m e ^ θ㎭ j" at full precision
func (f Formatter) PolarRadians(z Complex) string {
	return fmt.Sprintf("%s e ^ %s㎭ j", full(z.Abs()), full(z.AngleInRads()))
}

// PolarDegrees renders "m e ^ θ° j" at full precision
func (f Formatter) PolarDegrees(z Complex) string {
	return fmt.Sprintf("%s e ^ %s° j", full(z.Abs()), full(z.AngleInDegs()))
}

// PrettyCartesian renders "re + im j" rounded to PrettyPlaces
func (f Formatter) PrettyCartesian(z Complex) string {
	return fmt.Sprintf("%s + %s j", f.fixed(z.Real()), f.fixed(z.Imag()))
}

// PrettyPolarRadians renders the squared magnitude under a root sign, e.g.
// "√13 e ^ 1.0㎭ j"
func (f Formatter) PrettyPolarRadians(z Complex) string {
	return fmt.Sprintf("√%s e ^ %s㎭ j", squared(z.Abs()), f.fixed(z.AngleInRads()))
}

// PrettyPolarDegrees renders the squared magnitude under a root sign, e.g.
// "√13 e ^ 56.3° j"
func (f Formatter) PrettyPolarDegrees(z Complex) string {
	return fmt.Sprintf("√%s e ^ %s° j", squared(z.Abs()), f.fixed(z.AngleInDegs()))
}

// Block renders the full multi-line description with pretty and precision values
func (f Formatter) Block(z Complex) string {
	var b strings.Builder
	b.WriteString("Pretty Values:\n")
	b.WriteString("  Cartesian Form: " + f.PrettyCartesian(z) + "\n")
	b.WriteString("  Polar Form: " + f.PrettyPolarRadians(z) + "\n")
	b.WriteString("  Polar Form: " + f.PrettyPolarDegrees(z) + "\n")
	b.WriteString("Precision Values:\n")
	b.WriteString("  Cartesian Form: " + f.Cartesian(z) + "\n")
	b.WriteString("  Polar Form: " + f.PolarRadians(z) + "\n")
	b.WriteString("  Polar Form: " + f.PolarDegrees(z) + "\n")
	return b.String()
}

func (f Formatter) fixed(x float64) string {
	return strconv.FormatFloat(x, 'f', f.PrettyPlaces, 64)
}

// full returns the shortest representation that round-trips to x
func full(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func squared(m float64) string {
	return strconv.FormatFloat(m*m, 'f', 0, 64)
}

// String returns the pretty and precision block using DefaultFormatter
func (z Complex) String() string {
	return DefaultFormatter().Block(z)
}

// CartesianString returns the full precision Cartesian form
func (z Complex) CartesianString() string {
	return DefaultFormatter().Cartesian(z)
}

// PolarRadiansString returns the full precision polar form in radians
func (z Complex) PolarRadiansString() string {
	return DefaultFormatter().PolarRadians(z)
}

// PolarDegreesString returns the full precision polar form in degrees
func (z Complex) PolarDegreesString() string {
	return DefaultFormatter().PolarDegrees(z)
}

// String returns the angle as "θ° (θ㎭)"
func (a Angle) String() string {
	return fmt.Sprintf("%s° (%s㎭)", full(a.Degrees()), full(a.Radians()))
}
