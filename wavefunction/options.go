// SPDX-License-Identifier: MIT

// Package wavefunction: functional configuration for evaluators.
// This file defines:
//   - Option (functional setter over an internal options struct),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions, which applies setters over defaults, and
//     options.validate, which enforces invariants before construction.
//
// No global state: every evaluator owns its cache. Invalid values surface as
// ErrInvalidArgument from NewEvaluator, never as panics.
package wavefunction

import (
	"fmt"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSingleMode evaluates one order n per call.
	DefaultSingleMode = true

	// DefaultSinglePoint evaluates one point x per call.
	DefaultSinglePoint = true

	// DefaultDomain is real (float64) arithmetic.
	DefaultDomain = Real

	// DefaultCacheEnabled leaves the artifact cache off; evaluators are then
	// stateless.
	DefaultCacheEnabled = false

	// DefaultCacheCapacity is a sensible LRU bound for callers without a
	// better estimate of how many distinct orders they will request.
	DefaultCacheCapacity = 128

	// DefaultTableOrderLimit is the highest order the Table algorithm accepts.
	// Horner over raw Hermite coefficients loses roughly e^(n/2) ulps to
	// cancellation inside the oscillatory region, so past n ≈ 60 the result
	// is no longer trustworthy to 1e-3.
	DefaultTableOrderLimit = 60

	// MaxTableOrderLimit caps WithTableOrderLimit: above it the raw
	// coefficients themselves overflow float64. Orders between
	// DefaultTableOrderLimit and this cap are accepted but unreliable; see
	// WithTableOrderLimit.
	MaxTableOrderLimit = 250
)

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	singleMode      bool
	singlePoint     bool
	domain          Domain
	cacheEnabled    bool
	cacheCapacity   int
	tableOrderLimit int
	logger          *zap.Logger
}

// WithMultiMode makes every call return ψ_0 … ψ_n instead of ψ_n alone.
func WithMultiMode() Option {
	return func(o *options) { o.singleMode = false }
}

// WithMultiPoint makes every call take a slice of points.
func WithMultiPoint() Option {
	return func(o *options) { o.singlePoint = false }
}

// WithComplex switches the evaluator to complex128 points and values.
func WithComplex() Option {
	return func(o *options) { o.domain = Complex }
}

// WithCache enables a per-evaluator LRU of per-order artifacts bounded by
// capacity entries. capacity must be > 0 (checked by NewEvaluator).
func WithCache(capacity int) Option {
	return func(o *options) {
		o.cacheEnabled = true
		o.cacheCapacity = capacity
	}
}

// WithoutCache disables the artifact cache (the default).
func WithoutCache() Option {
	return func(o *options) {
		o.cacheEnabled = false
		o.cacheCapacity = 0
	}
}

// WithTableOrderLimit sets the highest order accepted by the Table algorithm.
// limit must lie in [0, MaxTableOrderLimit] (checked by NewEvaluator).
//
// Past DefaultTableOrderLimit the Table results are unreliable: the measured
// worst error against Recurrence over |x| ≤ 10 grows from ~1e-3 at n = 60 to
// ~1e6 at n = 100. Real-domain values that break Cramér's bound
// |ψ_n(x)| ≤ π^(−1/4) are rejected with ErrNumericInstability, but smaller
// errors pass undetected, and complex values are only checked for
// finiteness. Raise the limit for cross-checks near the origin only.
func WithTableOrderLimit(limit int) Option {
	return func(o *options) { o.tableOrderLimit = limit }
}

// WithLogger routes evaluator diagnostics (configuration, artifact builds,
// evictions, refused table orders) to l. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// gatherOptions applies user-provided setters on top of defaults.
func gatherOptions(user ...Option) options {
	o := options{
		singleMode:      DefaultSingleMode,
		singlePoint:     DefaultSinglePoint,
		domain:          DefaultDomain,
		cacheEnabled:    DefaultCacheEnabled,
		tableOrderLimit: DefaultTableOrderLimit,
		logger:          zap.NewNop(),
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}

// validate enforces the invariants NewEvaluator relies on.
func (o options) validate() error {
	if o.cacheEnabled && o.cacheCapacity <= 0 {
		return waveErrorf(fmt.Sprintf("WithCache(%d)", o.cacheCapacity), ErrInvalidArgument)
	}
	if o.tableOrderLimit < 0 || o.tableOrderLimit > MaxTableOrderLimit {
		return waveErrorf(fmt.Sprintf("WithTableOrderLimit(%d)", o.tableOrderLimit), ErrInvalidArgument)
	}
	if o.domain >= domainCount {
		return waveErrorf("domain", ErrInvalidArgument)
	}

	return nil
}

// Config is the resolved, immutable configuration of an Evaluator.
type Config struct {
	Shape           Shape  // single/multi mode × single/multi point
	Domain          Domain // real or complex arithmetic
	CacheEnabled    bool   // per-order artifacts memoized in an LRU
	CacheCapacity   int    // LRU bound; 0 when the cache is disabled
	TableOrderLimit int    // highest order accepted by the Table algorithm
}

// SingleMode reports whether calls evaluate a single order.
func (c Config) SingleMode() bool { return c.Shape.SingleMode() }

// SinglePoint reports whether calls evaluate a single point.
func (c Config) SinglePoint() bool { return c.Shape.SinglePoint() }

// config projects the options onto the public Config.
func (o options) config() Config {
	c := Config{
		Shape:           ShapeOf(o.singleMode, o.singlePoint),
		Domain:          o.domain,
		CacheEnabled:    o.cacheEnabled,
		TableOrderLimit: o.tableOrderLimit,
	}
	if o.cacheEnabled {
		c.CacheCapacity = o.cacheCapacity
	}

	return c
}
