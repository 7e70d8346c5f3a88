// Package fastwave evaluates quantum harmonic oscillator eigenfunctions
// ψ_n(x) built on physicists' Hermite polynomials.
//
// 🚀 What is fastwave?
//
//	A small numerical library that brings together:
//		• Hermite coefficient tables: H_0 … H_N in descending powers
//		• Wavefunction evaluators: one order or 0..n, one point or many,
//		  float64 or complex128
//		• Two algorithms: a stable normalized recurrence and a table/Horner
//		  cross-check
//		• An optional per-evaluator LRU for order-dependent artifacts
//
// ✨ Why choose fastwave?
//
//   - Stable at large orders: the recurrence never forms n! or 2ⁿ
//   - Configured once: shape and domain resolve to a fixed kernel pair
//   - Safe for concurrent use, with bounded caches and structured logs
//
// Everything is organized under three subpackages:
//
//	hermite/      — coefficient matrix builder, Horner, log normalization
//	matrix/       — row-major Dense storage, validators and AllClose
//	wavefunction/ — Evaluator, options, Result and artifact cache
//
// Quick example:
//
//	ev, _ := wavefunction.NewEvaluator(wavefunction.WithMultiPoint())
//	res, _ := ev.Evaluate(2, []float64{10, 4.5})
//	vals, _ := res.Float64s()
//
// See examples/ for a thermal-density calculation and an algorithm
// cross-check.
//
//	go get github.com/katalvlaran/fastwave
package fastwave
