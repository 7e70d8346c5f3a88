package wavefunction

import (
	"strconv"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// artifactKey identifies a cached artifact. Keying by algorithm as well as
// order keeps entries immutable; distinct cached orders are bounded by the
// entry count, which the LRU bounds by capacity.
type artifactKey struct {
	order int
	alg   Algorithm
}

// String is the singleflight key, e.g. "table/12".
func (k artifactKey) String() string {
	return k.alg.String() + "/" + strconv.Itoa(k.order)
}

// Stats is a snapshot of an evaluator's artifact cache.
//
//   - Hits: lookups served from the cache or by another caller's build.
//   - Misses: artifacts built because the cache did not hold them.
//
// Hits+Misses equals the number of successful artifact lookups.
//   - Evictions: entries dropped to respect Capacity.
//
// All fields are zero when the cache is disabled.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Size      int
	Capacity  int
}

// artifactCache is a bounded LRU of artifacts with miss coalescing.
//
// Concurrency: the LRU is internally locked, so the capacity bound holds
// under any interleaving; singleflight collapses concurrent misses on one
// key into a single build; counters are atomic.
type artifactCache struct {
	entries  *lru.Cache[artifactKey, *artifact]
	flights  singleflight.Group
	capacity int
	logger   *zap.Logger

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// newArtifactCache allocates an LRU bounded by capacity (> 0).
func newArtifactCache(capacity int, logger *zap.Logger) (*artifactCache, error) {
	c := &artifactCache{capacity: capacity, logger: logger}
	entries, err := lru.NewWithEvict[artifactKey, *artifact](capacity, c.onEvict)
	if err != nil {
		return nil, waveErrorf("cache", ErrInvalidArgument)
	}
	c.entries = entries

	return c, nil
}

// onEvict logs every entry leaving the LRU (capacity pressure or Purge).
func (c *artifactCache) onEvict(key artifactKey, _ *artifact) {
	c.logger.Debug("artifact evicted", zap.Stringer("key", key))
}

// fetch returns the artifact for key, building it on a miss.
// A hit never rebuilds; a failed build leaves the cache untouched.
//
// Every successful lookup counts exactly once: as a Miss for the caller whose
// flight built the artifact, as a Hit for everyone else, including callers
// that joined an in-flight build.
func (c *artifactCache) fetch(key artifactKey) (*artifact, error) {
	if a, ok := c.entries.Get(key); ok {
		c.hits.Add(1)

		return a, nil
	}

	built := false
	v, err, _ := c.flights.Do(key.String(), func() (interface{}, error) {
		// A flight that finished between our Get and Do may have filled it.
		if a, ok := c.entries.Get(key); ok {
			return a, nil
		}
		a, err := buildArtifact(key.alg, key.order)
		if err != nil {
			return nil, err
		}
		built = true
		c.misses.Add(1)
		if evicted := c.entries.Add(key, a); evicted {
			c.evictions.Add(1)
		}
		c.logger.Debug("artifact built",
			zap.Stringer("key", key),
			zap.Int("cache_size", c.entries.Len()),
		)

		return a, nil
	})
	if err != nil {
		return nil, err
	}
	if !built {
		c.hits.Add(1)
	}

	return v.(*artifact), nil
}

// stats returns a snapshot of the counters.
func (c *artifactCache) stats() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Size:      c.entries.Len(),
		Capacity:  c.capacity,
	}
}

// purge drops every entry; counters are kept.
func (c *artifactCache) purge() {
	c.entries.Purge()
}

// orders returns the distinct orders currently cached.
func (c *artifactCache) orders() []int {
	seen := make(map[int]struct{})
	out := make([]int, 0, c.entries.Len())
	for _, k := range c.entries.Keys() {
		if _, ok := seen[k.order]; ok {
			continue
		}
		seen[k.order] = struct{}{}
		out = append(out, k.order)
	}

	return out
}
