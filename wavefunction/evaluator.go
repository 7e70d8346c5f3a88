package wavefunction

import (
	"fmt"

	"go.uber.org/zap"
)

// Evaluator computes ψ_n(x) for a fixed Shape and Domain.
//
// Build one with NewEvaluator (functional options) or MakeEvaluator (flags).
// The configuration is frozen at construction and selects one of eight
// specialized kernel pairs; each call then picks the Recurrence or Table
// kernel of that pair.
//
// An Evaluator is safe for concurrent use. Without a cache it holds no
// mutable state at all; with a cache, artifacts live in an internally locked
// LRU (see Stats).
type Evaluator struct {
	cfg     Config
	logger  *zap.Logger
	cache   *artifactCache // nil when caching is disabled
	fetch   func(artifactKey) (*artifact, error)
	kernels [algorithmCount]kernel
}

// NewEvaluator builds an Evaluator from options applied over the defaults
// (single mode, single point, real domain, no cache).
//
// Errors:
//   - ErrInvalidArgument for a non-positive cache capacity or a table order
//     limit outside [0, MaxTableOrderLimit].
func NewEvaluator(opts ...Option) (*Evaluator, error) {
	o := gatherOptions(opts...)
	if err := o.validate(); err != nil {
		return nil, err
	}

	e := &Evaluator{cfg: o.config(), logger: o.logger}
	e.kernels = selectKernels(e.cfg.Shape, e.cfg.Domain)
	e.fetch = func(key artifactKey) (*artifact, error) {
		return buildArtifact(key.alg, key.order)
	}
	if o.cacheEnabled {
		c, err := newArtifactCache(o.cacheCapacity, o.logger)
		if err != nil {
			return nil, err
		}
		e.cache = c
		e.fetch = c.fetch
	}

	e.logger.Debug("evaluator configured",
		zap.Stringer("shape", e.cfg.Shape),
		zap.Stringer("domain", e.cfg.Domain),
		zap.Bool("cache", e.cfg.CacheEnabled),
		zap.Int("cache_capacity", e.cfg.CacheCapacity),
		zap.Int("table_order_limit", e.cfg.TableOrderLimit),
	)

	return e, nil
}

// MakeEvaluator is the flag-based constructor:
//
//	singleMode: evaluate one order n (false: every order 0..n)
//	singlePoint: evaluate one point (false: a []float64/[]complex128)
//	complexDomain: complex128 arithmetic (false: float64)
//	cacheEnabled: memoize per-order artifacts in an LRU of cacheCapacity
//
// cacheCapacity is ignored when cacheEnabled is false. Extra options (logger,
// table order limit) may follow.
func MakeEvaluator(singleMode, singlePoint, complexDomain, cacheEnabled bool, cacheCapacity int, opts ...Option) (*Evaluator, error) {
	base := make([]Option, 0, 4+len(opts))
	if !singleMode {
		base = append(base, WithMultiMode())
	}
	if !singlePoint {
		base = append(base, WithMultiPoint())
	}
	if complexDomain {
		base = append(base, WithComplex())
	}
	if cacheEnabled {
		base = append(base, WithCache(cacheCapacity))
	}

	return NewEvaluator(append(base, opts...)...)
}

// Config returns the resolved configuration.
func (e *Evaluator) Config() Config { return e.cfg }

// Evaluate computes ψ with the Recurrence algorithm.
//
// n is the mode order (the maximum order for multi-mode evaluators). x must
// be a float64, []float64, complex128 or []complex128 matching the
// evaluator's Shape and Domain; see Result for the output layout.
//
// Errors:
//   - ErrInvalidArgument: n < 0 or an empty point slice.
//   - ErrTypeConflict: x does not match the configuration.
func (e *Evaluator) Evaluate(n int, x any) (Result, error) {
	return e.EvaluateWith(Recurrence, n, x)
}

// EvaluateWith computes ψ with the given algorithm.
//
// In addition to the errors of Evaluate, the Table algorithm returns
// ErrNumericInstability when n exceeds the configured TableOrderLimit or
// when the polynomial evaluation overflows.
func (e *Evaluator) EvaluateWith(alg Algorithm, n int, x any) (Result, error) {
	if n < 0 {
		return Result{}, waveErrorf(fmt.Sprintf("n=%d", n), ErrInvalidArgument)
	}
	if alg >= algorithmCount {
		return Result{}, waveErrorf(fmt.Sprintf("algorithm=%d", alg), ErrInvalidArgument)
	}

	return e.kernels[alg](e, n, x)
}

// Stats returns a snapshot of the artifact cache counters (zero when the
// cache is disabled).
func (e *Evaluator) Stats() Stats {
	if e.cache == nil {
		return Stats{}
	}

	return e.cache.stats()
}

// CachedOrders lists the distinct orders currently held by the cache, oldest
// first. It is nil when the cache is disabled.
func (e *Evaluator) CachedOrders() []int {
	if e.cache == nil {
		return nil
	}

	return e.cache.orders()
}

// Purge drops every cached artifact. Results are unaffected; subsequent
// calls rebuild what they need.
func (e *Evaluator) Purge() {
	if e.cache != nil {
		e.cache.purge()
	}
}

// checkTableOrder refuses Table evaluations above the configured limit.
func (e *Evaluator) checkTableOrder(n int) error {
	if n <= e.cfg.TableOrderLimit {
		return nil
	}
	e.logger.Warn("table algorithm refused",
		zap.Int("order", n),
		zap.Int("table_order_limit", e.cfg.TableOrderLimit),
	)

	return fmt.Errorf("table(n=%d > limit %d): %w", n, e.cfg.TableOrderLimit, ErrNumericInstability)
}
