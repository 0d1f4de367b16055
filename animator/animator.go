// Package animator drives many independent animations from a single host loop.
// It plays the role of a frame scheduler: each tick forwards the elapsed time to
// every registered animation in the order they were added.
package animator

import (
	"context"
	"slices"
	"time"

	"github.com/kamstrup/intmap"
)

// Animation is anything that advances with time and eventually completes.
// Every *tween.Sequence satisfies it.
type Animation interface {
	Update(dt float32)
	Finished() bool
}

// Handle identifies an animation registered with an Animator. The zero Handle
// is never issued.
type Handle uint64

// Stats provides statistics about animator execution.
type Stats struct {
	Ticks        int64
	Live         int
	Finished     int
	Pruned       int64
	MinDuration  time.Duration
	MaxDuration  time.Duration
	AvgDuration  time.Duration
	LastDuration time.Duration
}

type statsInternal struct {
	ticks         int64
	pruned        int64
	minDuration   time.Duration
	maxDuration   time.Duration
	totalDuration time.Duration
	lastDuration  time.Duration
}

// Animator updates registered animations once per tick. It is not safe for
// concurrent use; call Once or Run from the goroutine that owns the animations.
type Animator struct {
	entries *intmap.Map[Handle, Animation]
	order   []Handle
	next    Handle
	stats   statsInternal
}

// New creates an empty animator.
func New() *Animator {
	return &Animator{
		entries: intmap.New[Handle, Animation](64),
		order:   make([]Handle, 0),
		stats: statsInternal{
			minDuration: time.Duration(1<<63 - 1),
		},
	}
}

// Add registers an animation and returns its handle.
func (a *Animator) Add(anim Animation) Handle {
	a.next++
	h := a.next
	a.entries.Put(h, anim)
	a.order = append(a.order, h)
	return h
}

// Get returns the animation registered under h.
func (a *Animator) Get(h Handle) (Animation, bool) {
	return a.entries.Get(h)
}

// Remove unregisters the animation under h. It reports whether h was live.
func (a *Animator) Remove(h Handle) bool {
	if _, ok := a.entries.Get(h); !ok {
		return false
	}
	a.entries.Del(h)
	if i := slices.Index(a.order, h); i >= 0 {
		a.order = slices.Delete(a.order, i, i+1)
	}
	return true
}

// Len returns the number of registered animations.
func (a *Animator) Len() int {
	return len(a.order)
}

// Prune removes every finished animation and returns how many were dropped.
func (a *Animator) Prune() int {
	kept := a.order[:0]
	removed := 0
	for _, h := range a.order {
		anim, _ := a.entries.Get(h)
		if anim.Finished() {
			a.entries.Del(h)
			removed++
			continue
		}
		kept = append(kept, h)
	}
	a.order = kept
	a.stats.pruned += int64(removed)
	return removed
}

// Once advances every registered animation by dt seconds.
func (a *Animator) Once(dt float32) {
	start := time.Now()

	for _, h := range a.order {
		anim, _ := a.entries.Get(h)
		anim.Update(dt)
	}

	duration := time.Since(start)
	a.stats.ticks++
	a.stats.lastDuration = duration
	a.stats.totalDuration += duration

	if duration < a.stats.minDuration {
		a.stats.minDuration = duration
	}
	if duration > a.stats.maxDuration {
		a.stats.maxDuration = duration
	}
}

// Run ticks the animator at the given interval until the context is cancelled.
// The time passed to each tick is measured between ticker events, so a late
// tick carries the full elapsed time.
func (a *Animator) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			a.Once(float32(dt))
		}
	}
}

// Stats returns statistics about animator execution.
func (a *Animator) Stats() *Stats {
	stats := &Stats{
		Ticks:        a.stats.ticks,
		Live:         len(a.order),
		Pruned:       a.stats.pruned,
		MaxDuration:  a.stats.maxDuration,
		LastDuration: a.stats.lastDuration,
	}

	if a.stats.ticks > 0 {
		stats.MinDuration = a.stats.minDuration
		stats.AvgDuration = a.stats.totalDuration / time.Duration(a.stats.ticks)
	}

	for _, h := range a.order {
		if anim, _ := a.entries.Get(h); anim.Finished() {
			stats.Finished++
		}
	}

	return stats
}
