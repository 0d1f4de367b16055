package tween

import "github.com/plus3/sequin/easing"

// Tween evaluates r at the given progress after reshaping it with e. Use it when
// the caller keeps its own timeline instead of driving a Sequence.
func Tween[T Tweenable[T]](r Range[T], progress float32, e easing.Easing) T {
	return evaluate(Lerp[T], r, progress, e)
}

// TweenScalar is Tween for built-in numbers.
func TweenScalar[T Scalar](r Range[T], progress float32, e easing.Easing) T {
	return evaluate(LerpScalar[T], r, progress, e)
}

// evaluate is the one place where a curve is applied to a range; Sequence uses
// it for the active stage as well.
func evaluate[T any](lerp LerpFunc[T], r Range[T], progress float32, e easing.Easing) T {
	return lerp(r.Start, r.End, e.Ease(progress))
}
