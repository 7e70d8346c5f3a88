// Package wavefunction evaluates quantum harmonic oscillator eigenfunctions
//
//	ψ_n(x) = (2ⁿ n! √π)^(−1/2) · e^(−x²/2) · H_n(x)
//
// for one order or every order 0..n, at one point or many, in float64 or
// complex128 arithmetic.
//
// 🚀 Shapes
//
//	| SingleMode | SinglePoint | Result                          |
//	|------------|-------------|---------------------------------|
//	| true       | true        | scalar ψ_n(x)                   |
//	| true       | false       | one value per point             |
//	| false      | true        | one value per order 0..n        |
//	| false      | false       | grid: orders 0..n × points      |
//
// The Shape and Domain are fixed when the Evaluator is built and resolve to
// one of eight specialized kernel pairs; nothing is re-decided per call.
//
// ⚙️ Algorithms
//
//   - Recurrence (default, Evaluate): a forward recurrence directly on
//     normalized values with the Gaussian envelope carried as a log-scale
//     offset. Intermediates never grow like n! or 2ⁿ, so large orders are
//     safe.
//   - Table (EvaluateWith(Table, ...)): Hermite coefficient rows from package
//     hermite evaluated by Horner, times the lgamma-based normalization and
//     e^(−x²/2). Useful as a cross-check; refused with ErrNumericInstability
//     above the evaluator's TableOrderLimit (DefaultTableOrderLimit = 60).
//
// For n ≤ 30 and |x| ≤ 10 the two algorithms agree to 1e-8 absolute.
//
// 🗄 Cache
//
// WithCache(capacity) memoizes per-order artifacts (recurrence ladders,
// coefficient rows and normalization constants) in a per-evaluator LRU.
// Evaluation against x always runs; only the x-independent work is skipped.
// Concurrent misses on the same order are coalesced into one build, and
// the number of cached entries never exceeds capacity.
//
// Usage:
//
//	ev, err := wavefunction.NewEvaluator(wavefunction.WithMultiPoint())
//	if err != nil {
//	  // handle ErrInvalidArgument
//	}
//	res, err := ev.Evaluate(2, []float64{10, 4.5})
//	vals, _ := res.Float64s() // ψ_2(10), ψ_2(4.5)
//
// Errors: ErrInvalidArgument (negative n, empty points, bad capacity),
// ErrTypeConflict (x does not match the configuration), and
// ErrNumericInstability (Table path beyond its limit). Match with errors.Is.
package wavefunction
