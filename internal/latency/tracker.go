// Package latency tracks per-operation-kind latency samples in a fixed-size
// ring buffer and reports p25/p50/p99 on demand, the way
// internal/shard's latency tracker does for a cache's get/put pair,
// generalized here to an arbitrary, caller-defined set of operation
// kinds (k2treebench has more than two).
package latency

import (
	"sort"
	"sync"
	"time"
)

const defaultMaxSamples = 100000

// ring is one operation kind's fixed-size latency sample buffer.
type ring struct {
	samples []time.Duration
	index   int
	count   int64
}

// Tracker records latency samples per operation kind and reports
// percentiles from the most recent defaultMaxSamples of each.
type Tracker struct {
	mu         sync.RWMutex
	rings      map[string]*ring
	maxSamples int
}

// NewTracker returns a Tracker with room for defaultMaxSamples
// samples per operation kind, allocated lazily on first Record.
func NewTracker() *Tracker {
	return &Tracker{rings: make(map[string]*ring), maxSamples: defaultMaxSamples}
}

// Record appends one latency sample under the given operation kind.
func (t *Tracker) Record(kind string, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	r := t.rings[kind]
	if r == nil {
		r = &ring{samples: make([]time.Duration, t.maxSamples)}
		t.rings[kind] = r
	}
	r.samples[r.index] = d
	r.index = (r.index + 1) % t.maxSamples
	r.count++
}

// Percentiles returns the p25/p50/p99 latency observed for kind over
// its most recent window of samples, or all zeros if kind has no
// recorded samples.
func (t *Tracker) Percentiles(kind string) (p25, p50, p99 time.Duration) {
	t.mu.RLock()
	r := t.rings[kind]
	t.mu.RUnlock()
	if r == nil {
		return 0, 0, 0
	}

	t.mu.RLock()
	samples := r.count
	if samples > int64(t.maxSamples) {
		samples = int64(t.maxSamples)
	}
	cp := make([]time.Duration, samples)
	copy(cp, r.samples[:samples])
	t.mu.RUnlock()

	if samples == 0 {
		return 0, 0, 0
	}
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	p25 = cp[int(float64(samples)*0.25)]
	p50 = cp[int(float64(samples)*0.50)]
	p99 = cp[int(float64(samples)*0.99)]
	return p25, p50, p99
}

// Kinds returns the operation kinds that have at least one recorded
// sample, in no particular order.
func (t *Tracker) Kinds() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	kinds := make([]string, 0, len(t.rings))
	for k := range t.rings {
		kinds = append(kinds, k)
	}
	return kinds
}
