package animator_test

import (
	"fmt"

	"github.com/plus3/sequin/animator"
	"github.com/plus3/sequin/easing"
	"github.com/plus3/sequin/tween"
)

// ExampleAnimator ticks a fade and a slide together from one loop and drops
// the ones that have completed.
func ExampleAnimator() {
	a := animator.New()

	fade := tween.NewScalarSequence[float32](0).Tween(0.5, 1, easing.Linear{})
	slide := tween.NewSequence(tween.Vec2{X: 0, Y: 0}).
		Tween(1, tween.Vec2{X: 100, Y: 0}, easing.EaseOut(easing.Powi(2)))

	a.Add(fade)
	a.Add(slide)

	for frame := 0; frame < 4; frame++ {
		a.Once(0.25)
		fmt.Printf("fade=%.2f slide=%.2f live=%d\n", fade.Current(), slide.Current().X, a.Len())
		a.Prune()
	}

	// Output:
	// fade=0.50 slide=43.75 live=2
	// fade=1.00 slide=75.00 live=2
	// fade=1.00 slide=93.75 live=1
	// fade=1.00 slide=100.00 live=1
}
