package debugui_test

import (
	"testing"

	"github.com/plus3/sequin/debugui"
	"github.com/plus3/sequin/easing"
	"github.com/plus3/sequin/tween"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTakeSnapshot(t *testing.T) {
	seq := tween.NewSequence(tween.Vec2{}).
		Tween(1, tween.Vec2{X: 4, Y: 8}, easing.Linear{}).
		Wait(1).
		Tween(2, tween.Vec2{}, easing.EaseOut(easing.Powi(2)))

	seq.Update(1.5)
	snap := debugui.TakeSnapshot(seq)

	require.Len(t, snap.Stages, 3)
	assert.Equal(t, 1, snap.Active)
	assert.Equal(t, float32(0.5), snap.Elapsed)
	assert.Equal(t, float32(0.5), snap.Progress)
	assert.Equal(t, float32(4), snap.Total)
	assert.False(t, snap.Finished)

	assert.True(t, snap.Stages[0].Done)
	assert.True(t, snap.Stages[1].Active)
	assert.False(t, snap.Stages[2].Active)
	assert.False(t, snap.Stages[2].Done)
	assert.Equal(t, "out(powi(2))", snap.Stages[2].Easing)

	assert.Equal(t, []debugui.ValueLine{
		{Path: "value.X", Value: "4.000"},
		{Path: "value.Y", Value: "8.000"},
	}, snap.Value)

	seq.Update(5)
	snap = debugui.TakeSnapshot(seq)
	assert.True(t, snap.Finished)
	for _, row := range snap.Stages {
		assert.True(t, row.Done)
		assert.False(t, row.Active)
	}
}

func TestDescribeEasing(t *testing.T) {
	tests := []struct {
		curve easing.Easing
		want  string
	}{
		{easing.Linear{}, "linear"},
		{easing.Powi(3), "powi(3)"},
		{easing.Powf(1.5), "powf(1.5)"},
		{easing.DefaultBack(), "back"},
		{easing.Back(2), "back(2)"},
		{easing.EaseInOut(easing.EaseOut(easing.Powi(2))), "inout(out(powi(2)))"},
		{easing.Func(func(x float32) float32 { return x }), "easing.Func"},
		{nil, "<nil>"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, debugui.DescribeEasing(tt.curve))
		})
	}

	// round trip through the parser
	for _, expr := range []string{"powi(2)", "out(back(2.5))", "inout(powf(0.5))"} {
		e, err := easing.Parse(expr)
		require.NoError(t, err)
		assert.Equal(t, expr, debugui.DescribeEasing(e))
	}
}

func TestSampleEasing(t *testing.T) {
	samples := debugui.SampleEasing(easing.Powi(2), 5)
	assert.Equal(t, []float32{0, 0.0625, 0.25, 0.5625, 1}, samples)

	assert.Len(t, debugui.SampleEasing(easing.Linear{}, 0), 2)
}

func TestFlattenValue(t *testing.T) {
	assert.Equal(t, []debugui.ValueLine{{Path: "alpha", Value: "0.500"}}, debugui.FlattenValue("alpha", float32(0.5)))

	type nested struct {
		Pos   tween.Vec2
		Tint  *tween.Color
		Label string
		skip  int
	}

	lines := debugui.FlattenValue("v", nested{Pos: tween.Vec2{X: 1, Y: 2}, Label: "a"})
	assert.Equal(t, []debugui.ValueLine{
		{Path: "v.Pos.X", Value: "1.000"},
		{Path: "v.Pos.Y", Value: "2.000"},
		{Path: "v.Tint", Value: "nil"},
		{Path: "v.Label", Value: "a"},
	}, lines)
}
