package debugui_test

import (
	"reflect"
	"testing"

	"github.com/plus3/sequin/debugui"
	"github.com/plus3/sequin/tween"
	"github.com/stretchr/testify/assert"
)

func TestAnimatorStatsWindowHistory(t *testing.T) {
	t.Run("rolls over", func(t *testing.T) {
		w := debugui.NewAnimatorStatsWindow(2)
		w.Record(0.010)
		w.Record(0.020)
		w.Record(0.030)

		assert.InDelta(t, 25, w.AverageFrameTime(), 1e-3)
	})

	for _, frames := range []int{0, -3} {
		w := debugui.NewAnimatorStatsWindow(frames)
		assert.NotPanics(t, func() {
			w.Record(0.016)
			w.Record(0.032)
		})
		assert.InDelta(t, 32, w.AverageFrameTime(), 1e-3)
	}
}

func TestReflectionCache(t *testing.T) {
	type mixed struct {
		X      float32
		hidden int
		Next   *tween.Vec2
	}

	rc := debugui.NewReflectionCache()
	fields := rc.GetFields(reflect.TypeOf(mixed{}))

	assert.Equal(t, []debugui.FieldInfo{{Name: "X", Index: 0}, {Name: "Next", Index: 2}}, fields)
	assert.Empty(t, rc.GetFields(reflect.TypeOf(3.5)))
}
