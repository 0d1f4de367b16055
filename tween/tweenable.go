// Package tween interpolates values over time. A Sequence chains timed stages
// toward successive targets and is advanced once per frame with Update; Tween
// evaluates a single range at an externally managed progress value.
package tween

// Tweenable is implemented by value types that can be linearly interpolated:
// they support addition, subtraction and scaling by a scalar.
type Tweenable[T any] interface {
	Add(other T) T
	Sub(other T) T
	Scale(s float32) T
}

// Scalar covers the built-in floating point types, which interpolate through
// their arithmetic operators rather than methods.
type Scalar interface {
	~float32 | ~float64
}

// LerpFunc interpolates between a and b, returning a at t=0 and b at t=1.
type LerpFunc[T any] func(a, b T, t float32) T

// Lerp returns a + (b - a) * t.
func Lerp[T Tweenable[T]](a, b T, t float32) T {
	return a.Add(b.Sub(a).Scale(t))
}

// LerpScalar returns a + (b - a) * t for built-in numbers.
func LerpScalar[T Scalar](a, b T, t float32) T {
	return a + (b-a)*T(t)
}

// Range is a start and end value pair.
type Range[T any] struct {
	Start T
	End   T
}

// Span returns the range from start to end.
func Span[T any](start, end T) Range[T] {
	return Range[T]{Start: start, End: end}
}
