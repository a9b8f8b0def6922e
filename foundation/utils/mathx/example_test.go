// File: example_test.go
// Title: Example Tests for MathX Package Documentation
// Description: Executable examples that serve as both documentation and tests.
//              These examples show construction from both forms, arithmetic
//              and tolerance equality.
// Author: kevmasajedi
// Version: v0.1.0
// Created: 2025-02-05
// Modified: 2025-02-05
//
// Change History:
// - 2025-02-05 v0.1.0: Initial example implementation

package mathx_test

import (
	"fmt"
	"math"

	"github.com/kevmasajedi/complexible/foundation/utils/mathx"
)

func ExampleFromCartesian() {
	z := mathx.FromCartesian(3, 4)

	fmt.Println(z.Abs())
	fmt.Println(z.CartesianString())
	// Output:
	// 5
	// 3 + 4 j
}

func ExampleAngleFromDegrees() {
	a := mathx.AngleFromDegrees(180)

	fmt.Printf("%.5f\n", a.Radians())
	// Output:
	// 3.14159
}

func ExampleComplex_Add() {
	sum := mathx.FromCartesian(2, 3).Add(mathx.FromCartesian(1, 2))

	fmt.Println(sum.CartesianString())
	// Output:
	// 3 + 5 j
}

func ExampleComplex_Mul() {
	a := mathx.FromPolar(2, mathx.AngleFromDegrees(30))
	b := mathx.FromPolar(3, mathx.AngleFromDegrees(45))

	product := a.Mul(b)
	fmt.Println(product.Abs())
	fmt.Printf("%.1f\n", product.AngleInDegs())
	// Output:
	// 6
	// 75.0
}

func ExampleComplex_Pow() {
	cubed := mathx.FromCartesian(2, 3).Pow(3)

	fmt.Printf("%.6f\n", cubed.Abs())
	fmt.Println(cubed.Equal(mathx.FromCartesian(-46, 9)))
	// Output:
	// 46.872167
	// true
}

func ExampleComplex_Equal() {
	a := mathx.FromCartesian(1, 1)
	b := mathx.FromPolar(math.Sqrt2, mathx.AngleFromDegrees(45))

	fmt.Println(a.Equal(b))
	// Output:
	// true
}

func ExampleFormatter_Block() {
	z := mathx.FromCartesian(0, 2)

	fmt.Print(mathx.DefaultFormatter().Block(z))
	// Output:
	// Pretty Values:
	//   Cartesian Form: 0.0 + 2.0 j
	//   Polar Form: √4 e ^ 1.6㎭ j
	//   Polar Form: √4 e ^ 90.0° j
	// Precision Values:
	//   Cartesian Form: 0 + 2 j
	//   Polar Form: 2 e ^ 1.5707963267948966㎭ j
	//   Polar Form: 2 e ^ 90° j
}
