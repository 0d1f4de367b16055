// Package easing provides curves that reshape normalized progress before it is
// used for interpolation. Curves are small values that can be shared freely and
// nested inside decorators such as Out and InOut.
package easing

import "math"

// Easing maps progress in [0, 1] to reshaped progress. Implementations must be
// pure: the same input always yields the same output. The result is not
// required to stay within [0, 1]; overshoot curves such as Back leave it on
// purpose.
type Easing interface {
	Ease(x float32) float32
}

// Func adapts an ordinary function to the Easing interface.
type Func func(x float32) float32

// Ease calls f(x).
func (f Func) Ease(x float32) float32 {
	return f(x)
}

// Linear leaves progress untouched.
type Linear struct{}

// Ease returns x.
func (Linear) Ease(x float32) float32 {
	return x
}

// Powi raises progress to an integer power.
type Powi int

// Ease returns x raised to p.
func (p Powi) Ease(x float32) float32 {
	return float32(math.Pow(float64(x), float64(p)))
}

// Powf raises progress to a real power.
type Powf float32

// Ease returns x raised to p.
func (p Powf) Ease(x float32) float32 {
	return float32(math.Pow(float64(x), float64(p)))
}

// DefaultBackAmount is the conventional overshoot used by back easing, giving
// roughly a 10% dip below zero.
const DefaultBackAmount Back = 1.70158

// Back is a cubic curve that pulls back before moving forward. The value is the
// overshoot amount.
type Back float32

// DefaultBack returns a Back curve with DefaultBackAmount.
func DefaultBack() Back {
	return DefaultBackAmount
}

// Ease returns (b+1)x³ - bx², which dips below zero before reaching one.
func (b Back) Ease(x float32) float32 {
	a := float32(b)
	return (a+1)*x*x*x - a*x*x
}

// Out reflects its inner curve so that an ease-in becomes an ease-out.
type Out struct {
	Inner Easing
}

// EaseOut wraps inner in an Out decorator.
func EaseOut(inner Easing) Out {
	return Out{Inner: inner}
}

// Ease returns 1 - Inner(1-x).
func (o Out) Ease(x float32) float32 {
	return 1 - o.Inner.Ease(1-x)
}

// InOut runs its inner curve over the first half of the progress range and the
// reflected curve over the second half.
type InOut struct {
	Inner Easing
}

// EaseInOut wraps inner in an InOut decorator.
func EaseInOut(inner Easing) InOut {
	return InOut{Inner: inner}
}

// Ease applies Inner at double speed below the midpoint and its reflection
// above it.
func (c InOut) Ease(x float32) float32 {
	if x < 0.5 {
		return c.Inner.Ease(x*2) / 2
	}
	return 1 - c.Inner.Ease(2-x*2)/2
}
