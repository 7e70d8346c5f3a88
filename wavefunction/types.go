// SPDX-License-Identifier: MIT

// Package wavefunction: closed enumerations describing an evaluator.
package wavefunction

// Shape is the closed set of {single mode, modes 0..n} × {single point,
// many points} combinations. It is fixed when an Evaluator is built.
type Shape uint8

const (
	// SingleModeSinglePoint yields the scalar ψ_n(x).
	SingleModeSinglePoint Shape = iota

	// SingleModeMultiPoint yields ψ_n at every input point.
	SingleModeMultiPoint

	// MultiModeSinglePoint yields ψ_0(x) … ψ_n(x).
	MultiModeSinglePoint

	// MultiModeMultiPoint yields the grid ψ_k(x_j), orders by points.
	MultiModeMultiPoint

	shapeCount = 4
)

// ShapeOf maps the two configuration flags onto a Shape.
func ShapeOf(singleMode, singlePoint bool) Shape {
	var s Shape
	if !singlePoint {
		s |= 1
	}
	if !singleMode {
		s |= 2
	}

	return s
}

// SingleMode reports whether one order (rather than 0..n) is evaluated.
func (s Shape) SingleMode() bool { return s&2 == 0 }

// SinglePoint reports whether one point (rather than a slice) is evaluated.
func (s Shape) SinglePoint() bool { return s&1 == 0 }

// String returns a compact mnemonic (e.g. "single-mode/multi-point").
func (s Shape) String() string {
	switch s {
	case SingleModeSinglePoint:
		return "single-mode/single-point"
	case SingleModeMultiPoint:
		return "single-mode/multi-point"
	case MultiModeSinglePoint:
		return "multi-mode/single-point"
	case MultiModeMultiPoint:
		return "multi-mode/multi-point"
	default:
		return "unknown-shape"
	}
}

// Domain selects real (float64) or complex (complex128) arithmetic.
type Domain uint8

const (
	// Real evaluates float64 points and returns float64 values.
	Real Domain = iota

	// Complex evaluates complex128 points and returns complex128 values.
	Complex

	domainCount = 2
)

// String returns "real" or "complex".
func (d Domain) String() string {
	switch d {
	case Real:
		return "real"
	case Complex:
		return "complex"
	default:
		return "unknown-domain"
	}
}

// Algorithm selects how a call computes ψ_n.
//
//   - Recurrence: normalized three-term recurrence with the Gaussian
//     envelope carried as a log-scale offset. Stable for large n. Default.
//   - Table: Hermite coefficient rows evaluated by Horner, times the
//     lgamma-based normalization and e^(−x²/2). Reference path; refused
//     above the evaluator's table order limit.
type Algorithm uint8

const (
	// Recurrence is the fast, numerically stable path.
	Recurrence Algorithm = iota

	// Table is the coefficient-table path.
	Table

	algorithmCount = 2
)

// String returns "recurrence" or "table".
func (a Algorithm) String() string {
	switch a {
	case Recurrence:
		return "recurrence"
	case Table:
		return "table"
	default:
		return "unknown-algorithm"
	}
}
