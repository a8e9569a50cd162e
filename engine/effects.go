package engine

import (
	"time"

	"github.com/lixenwraith/pixel-wall/components"
	"github.com/lixenwraith/pixel-wall/constants"
	"github.com/lixenwraith/pixel-wall/vmath"
)

// EffectQueue holds live label effects in insertion order
// Mutated in two passes per frame: Advance moves labels, Prune drops expired ones
type EffectQueue struct {
	entries []components.LabelEffect
}

// NewEffectQueue creates an empty queue
func NewEffectQueue() *EffectQueue {
	return &EffectQueue{
		entries: make([]components.LabelEffect, 0, 16),
	}
}

// Push appends an effect
func (q *EffectQueue) Push(e components.LabelEffect) {
	q.entries = append(q.entries, e)
}

// Len returns the number of live effects
func (q *EffectQueue) Len() int {
	return len(q.entries)
}

// Entries returns the live effects in insertion order
// The slice is owned by the queue and is only valid until the next Advance, Prune or Push
func (q *EffectQueue) Entries() []components.LabelEffect {
	return q.entries
}

// Advance drifts every label through the noise field
// elapsed is wall time in seconds, dt the frame delta in seconds
func (q *EffectQueue) Advance(field vmath.NoiseField, elapsed, dt float64) {
	z := elapsed * constants.DriftTimeScale
	step := dt * constants.DriftSpeed

	for i := range q.entries {
		e := &q.entries[i]
		drift := vmath.Sample2D(field, e.Origin.Scale(constants.DriftNoiseScale), z)
		e.Position = e.Position.Add(drift.Scale(step))
	}
}

// Prune removes effects older than EffectLifetime, returns how many were removed
func (q *EffectQueue) Prune(now time.Time) int {
	kept := q.entries[:0]
	for _, e := range q.entries {
		if e.Age(now) > constants.EffectLifetime {
			continue
		}
		kept = append(kept, e)
	}

	removed := len(q.entries) - len(kept)
	// Release dropped tails for GC
	clear(q.entries[len(kept):])
	q.entries = kept
	return removed
}
