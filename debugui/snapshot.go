package debugui

import (
	"fmt"

	"github.com/plus3/sequin/easing"
	"github.com/plus3/sequin/tween"
)

// StageRow describes one stage of an inspected sequence.
type StageRow struct {
	Index    int
	Duration float32
	Easing   string
	Active   bool
	Done     bool
}

// Snapshot is a frame-local, render-ready view of a sequence.
type Snapshot struct {
	Stages   []StageRow
	Active   int
	Elapsed  float32
	Progress float32
	Total    float32
	Finished bool
	Value    []ValueLine
}

// TakeSnapshot reads the observable state of seq.
func TakeSnapshot[T any](seq *tween.Sequence[T]) Snapshot {
	active, running := seq.StageIndex()
	stages := seq.Stages()

	snap := Snapshot{
		Stages:   make([]StageRow, len(stages)),
		Active:   active,
		Elapsed:  seq.Elapsed(),
		Progress: seq.Progress(),
		Total:    seq.Duration(),
		Finished: seq.Finished(),
		Value:    FlattenValue("value", seq.Current()),
	}

	for i, st := range stages {
		snap.Stages[i] = StageRow{
			Index:    i,
			Duration: st.Duration,
			Easing:   DescribeEasing(st.Easing),
			Active:   running && i == active,
			Done:     !running || i < active,
		}
	}

	return snap
}

// DescribeEasing renders a curve in the textual form accepted by easing.Parse
// where possible.
func DescribeEasing(e easing.Easing) string {
	switch c := e.(type) {
	case easing.Linear:
		return "linear"
	case easing.Powi:
		return fmt.Sprintf("powi(%d)", int(c))
	case easing.Powf:
		return fmt.Sprintf("powf(%g)", float32(c))
	case easing.Back:
		if c == easing.DefaultBackAmount {
			return "back"
		}
		return fmt.Sprintf("back(%g)", float32(c))
	case easing.Out:
		return "out(" + DescribeEasing(c.Inner) + ")"
	case easing.InOut:
		return "inout(" + DescribeEasing(c.Inner) + ")"
	case nil:
		return "<nil>"
	}
	return fmt.Sprintf("%T", e)
}

// SampleEasing evaluates e at n evenly spaced points covering [0, 1].
func SampleEasing(e easing.Easing, n int) []float32 {
	if n < 2 {
		n = 2
	}
	out := make([]float32, n)
	for i := range out {
		out[i] = e.Ease(float32(i) / float32(n-1))
	}
	return out
}
