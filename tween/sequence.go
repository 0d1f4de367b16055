package tween

import "github.com/plus3/sequin/easing"

// Stage is one timed segment of a Sequence.
type Stage[T any] struct {
	// Duration is the length of the stage in seconds.
	Duration float32
	// Values holds the endpoints. Wait stages have equal endpoints.
	Values Range[T]
	// Easing shapes progress before interpolation.
	Easing easing.Easing
}

// playhead tracks progress through the stages. While running, stage indexes
// the active stage and time is the elapsed time within it.
type playhead struct {
	stage    int
	time     float32
	finished bool
}

// Sequence animates a value through an ordered list of stages. Stages are
// appended with Tween and Wait, each starting where the previous one ended, and
// the sequence is advanced by calling Update once per frame.
//
// A Sequence is not safe for concurrent use.
type Sequence[T any] struct {
	start   T
	stages  []Stage[T]
	lerp    LerpFunc[T]
	head    playhead
	current T
}

// NewSequence creates an empty sequence for a Tweenable value type.
func NewSequence[T Tweenable[T]](start T) *Sequence[T] {
	return NewSequenceFunc(start, Lerp[T])
}

// NewScalarSequence creates an empty sequence for a built-in number type.
func NewScalarSequence[T Scalar](start T) *Sequence[T] {
	return NewSequenceFunc(start, LerpScalar[T])
}

// NewSequenceFunc creates an empty sequence that interpolates with lerp. It is
// the escape hatch for value types that cannot implement Tweenable.
func NewSequenceFunc[T any](start T, lerp LerpFunc[T]) *Sequence[T] {
	return &Sequence[T]{
		start:   start,
		lerp:    lerp,
		current: start,
	}
}

// Single creates a sequence with one stage covering r.
func Single[T Tweenable[T]](duration float32, r Range[T], e easing.Easing) *Sequence[T] {
	return NewSequence(r.Start).Tween(duration, r.End, e)
}

// SingleScalar creates a scalar sequence with one stage covering r.
func SingleScalar[T Scalar](duration float32, r Range[T], e easing.Easing) *Sequence[T] {
	return NewScalarSequence(r.Start).Tween(duration, r.End, e)
}

// Tween appends a stage moving from the current end value to target over
// duration seconds, shaped by e. A zero duration is allowed and makes the value
// jump to target.
func (s *Sequence[T]) Tween(duration float32, target T, e easing.Easing) *Sequence[T] {
	s.stages = append(s.stages, Stage[T]{
		Duration: duration,
		Values:   Range[T]{Start: s.end(), End: target},
		Easing:   e,
	})
	return s
}

// Wait appends a stage that holds the current end value for duration seconds.
func (s *Sequence[T]) Wait(duration float32) *Sequence[T] {
	end := s.end()
	s.stages = append(s.stages, Stage[T]{
		Duration: duration,
		Values:   Range[T]{Start: end, End: end},
		Easing:   easing.Linear{},
	})
	return s
}

func (s *Sequence[T]) end() T {
	if len(s.stages) == 0 {
		return s.start
	}
	return s.stages[len(s.stages)-1].Values.End
}

// Update advances the playhead by dt seconds and recomputes the current value.
// Several stages may be crossed in one call. Once the last stage is passed the
// sequence finishes on that stage's end value and any leftover time is
// discarded; further calls do nothing until Reset.
func (s *Sequence[T]) Update(dt float32) {
	if s.head.finished {
		return
	}
	if len(s.stages) == 0 {
		s.head.finished = true
		return
	}

	s.head.time += dt

	// Zero-length stages always satisfy the loop condition, so the division
	// below never sees a zero duration.
	stage := &s.stages[s.head.stage]
	for s.head.time >= stage.Duration {
		s.head.time -= stage.Duration
		s.head.stage++
		if s.head.stage >= len(s.stages) {
			s.head.finished = true
			s.current = stage.Values.End
			return
		}
		stage = &s.stages[s.head.stage]
	}

	s.current = evaluate(s.lerp, stage.Values, s.head.time/stage.Duration, stage.Easing)
}

// Current returns the value computed by the last Update.
func (s *Sequence[T]) Current() T {
	return s.current
}

// Finished reports whether the playhead has passed the last stage.
func (s *Sequence[T]) Finished() bool {
	return s.head.finished
}

// Reset rewinds the playhead to the beginning of the first stage and restores
// the start value.
func (s *Sequence[T]) Reset() {
	s.head = playhead{}
	s.current = s.start
}

// Start returns the value the sequence begins from.
func (s *Sequence[T]) Start() T {
	return s.start
}

// Stages returns the stage list. The slice is owned by the sequence and must
// not be modified.
func (s *Sequence[T]) Stages() []Stage[T] {
	return s.stages
}

// StageIndex returns the index of the active stage, or false once finished.
func (s *Sequence[T]) StageIndex() (int, bool) {
	if s.head.finished {
		return -1, false
	}
	return s.head.stage, true
}

// Elapsed returns the time spent in the active stage.
func (s *Sequence[T]) Elapsed() float32 {
	if s.head.finished {
		return 0
	}
	return s.head.time
}

// Progress returns the normalized, un-eased progress through the active stage.
// It is 1 once the sequence has finished.
func (s *Sequence[T]) Progress() float32 {
	if s.head.finished {
		return 1
	}
	if s.head.stage >= len(s.stages) || s.stages[s.head.stage].Duration <= 0 {
		return 0
	}
	return s.head.time / s.stages[s.head.stage].Duration
}

// Duration returns the sum of all stage durations.
func (s *Sequence[T]) Duration() float32 {
	var total float32
	for _, stage := range s.stages {
		total += stage.Duration
	}
	return total
}
