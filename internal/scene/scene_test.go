package scene_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/plus3/sequin/easing"
	"github.com/plus3/sequin/internal/scene"
	"github.com/plus3/sequin/tween"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := scene.Default()

	assert.Equal(t, "bounce", s.Name)
	assert.Equal(t, scene.Point{200, 200}, s.Start)
	assert.False(t, s.Loop)
	require.Len(t, s.Stages, 3)

	seq, err := s.Build()
	require.NoError(t, err)

	stages := seq.Stages()
	require.Len(t, stages, 3)
	assert.Equal(t, easing.Powi(2), stages[0].Easing)
	assert.Equal(t, tween.Vec2{X: 600, Y: 400}, stages[1].Values.Start)
	assert.Equal(t, tween.Vec2{X: 600, Y: 400}, stages[1].Values.End)
	assert.Equal(t, easing.EaseOut(easing.Powi(2)), stages[2].Easing)
	assert.Equal(t, float32(3.5), seq.Duration())

	seq.Update(10)
	assert.True(t, seq.Finished())
	assert.Equal(t, tween.Vec2{X: 200, Y: 400}, seq.Current())
}

func TestLoad(t *testing.T) {
	doc := `
name: square
start: [0, 0]
loop: true
stages:
  - tween: [10, 0]
    duration: 0.5
  - tween: [10, 10]
    duration: 0.5
    easing: inout(powi(3))
  - wait: 0.25
`
	s, err := scene.Load(strings.NewReader(doc))
	require.NoError(t, err)

	assert.True(t, s.Loop)

	seq, err := s.Build()
	require.NoError(t, err)

	stages := seq.Stages()
	require.Len(t, stages, 3)
	assert.Equal(t, easing.Linear{}, stages[0].Easing)
	assert.Equal(t, easing.EaseInOut(easing.Powi(3)), stages[1].Easing)

	seq.Update(0.25)
	assert.Equal(t, tween.Vec2{X: 5, Y: 0}, seq.Current())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: x\nstart: [1, 2]\nstages:\n  - wait: 1\n"), 0o644))

	s, err := scene.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, scene.Point{1, 2}, s.Start)

	_, err = scene.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"no stages", "name: x\nstart: [0, 0]\n", scene.ErrEmptyScene},
		{"empty stage", "stages:\n  - {}\n", scene.ErrInvalidStage},
		{"both kinds", "stages:\n  - {tween: [1, 1], wait: 1}\n", scene.ErrInvalidStage},
		{"negative duration", "stages:\n  - {tween: [1, 1], duration: -1}\n", scene.ErrInvalidStage},
		{"negative wait", "stages:\n  - {wait: -0.5}\n", scene.ErrInvalidStage},
		{"nan duration", "stages:\n  - {tween: [10, 10], duration: .nan}\n", scene.ErrInvalidStage},
		{"infinite duration", "stages:\n  - {tween: [10, 10], duration: .inf}\n", scene.ErrInvalidStage},
		{"nan wait", "stages:\n  - {wait: .nan}\n", scene.ErrInvalidStage},
		{"infinite wait", "stages:\n  - {wait: .inf}\n", scene.ErrInvalidStage},
		{"wait with easing", "stages:\n  - {wait: 1, easing: linear}\n", scene.ErrInvalidStage},
		{"bad easing", "stages:\n  - {tween: [1, 1], duration: 1, easing: wobble}\n", easing.ErrInvalidExpression},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scene.Load(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("unknown key", func(t *testing.T) {
		_, err := scene.Load(strings.NewReader("name: x\nspeed: 3\nstages:\n  - wait: 1\n"))
		assert.Error(t, err)
	})

	t.Run("wrong point size", func(t *testing.T) {
		_, err := scene.Load(strings.NewReader("start: [1, 2, 3]\nstages:\n  - wait: 1\n"))
		assert.Error(t, err)
	})
}
