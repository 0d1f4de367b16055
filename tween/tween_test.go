package tween_test

import (
	"image/color"
	"testing"

	"github.com/plus3/sequin/easing"
	"github.com/plus3/sequin/tween"
	"github.com/stretchr/testify/assert"
)

func TestTween(t *testing.T) {
	r := tween.Span(tween.Vec2{X: 0, Y: 10}, tween.Vec2{X: 10, Y: 30})

	assert.Equal(t, r.Start, tween.Tween(r, 0, easing.Linear{}))
	assert.Equal(t, r.End, tween.Tween(r, 1, easing.Linear{}))
	assert.Equal(t, tween.Vec2{X: 5, Y: 20}, tween.Tween(r, 0.5, easing.Linear{}))
	assert.Equal(t, tween.Vec2{X: 2.5, Y: 15}, tween.Tween(r, 0.5, easing.Powi(2)))
	assert.Equal(t, tween.Vec2{X: 7.5, Y: 25}, tween.Tween(r, 0.5, easing.EaseOut(easing.Powi(2))))
}

func TestTweenScalar(t *testing.T) {
	r := tween.Span[float64](-4, 4)

	assert.Equal(t, -4.0, tween.TweenScalar(r, 0, easing.Linear{}))
	assert.Equal(t, 0.0, tween.TweenScalar(r, 0.5, easing.Linear{}))
	assert.Equal(t, 4.0, tween.TweenScalar(r, 1, easing.Linear{}))

	// overshoot curves leave the range
	assert.Less(t, tween.TweenScalar(r, 0.2, easing.DefaultBack()), -4.0)
}

func TestLerp(t *testing.T) {
	assert.Equal(t, float32(2.5), tween.LerpScalar[float32](0, 10, 0.25))
	assert.Equal(t, float32(15), tween.LerpScalar[float32](0, 10, 1.5))
	assert.Equal(t, tween.Vec3{X: 1, Y: -1, Z: 0}, tween.Lerp(tween.Vec3{X: 0, Y: 0, Z: 0}, tween.Vec3{X: 2, Y: -2, Z: 0}, 0.5))
}

func TestColor(t *testing.T) {
	black := tween.ColorFrom(color.Black)
	white := tween.ColorFrom(color.White)

	assert.Equal(t, tween.Color{R: 0, G: 0, B: 0, A: 1}, black)
	assert.Equal(t, tween.Color{R: 1, G: 1, B: 1, A: 1}, white)

	grey := tween.Lerp(black, white, 0.5)
	assert.Equal(t, color.NRGBA{R: 128, G: 128, B: 128, A: 255}, grey.NRGBA())

	over := tween.Color{R: 1.3, G: -0.2, B: 0.5, A: 1}
	assert.Equal(t, color.NRGBA{R: 255, G: 0, B: 128, A: 255}, over.NRGBA())
}

func TestColorSequence(t *testing.T) {
	red := tween.Color{R: 1, A: 1}
	blue := tween.Color{B: 1, A: 1}

	seq := tween.NewSequence(red).Tween(2, blue, easing.Linear{})
	seq.Update(1)

	assert.Equal(t, tween.Color{R: 0.5, B: 0.5, A: 1}, seq.Current())
}
