// Package scene loads animation scenes for the demo programs from YAML.
package scene

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/plus3/sequin/easing"
	"github.com/plus3/sequin/tween"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultScene []byte

var (
	// ErrEmptyScene is returned when a scene lists no stages.
	ErrEmptyScene = errors.New("scene has no stages")
	// ErrInvalidStage is returned when a stage is malformed or carries a bad
	// duration.
	ErrInvalidStage = errors.New("invalid stage")
)

// Point is a 2D coordinate written as a two element list.
type Point [2]float32

// Vec2 converts the point to a tween vector.
func (p Point) Vec2() tween.Vec2 {
	return tween.Vec2{X: p[0], Y: p[1]}
}

// Stage describes either a tween toward a point or a wait.
type Stage struct {
	Tween    *Point   `yaml:"tween,omitempty"`
	Wait     *float32 `yaml:"wait,omitempty"`
	Duration float32  `yaml:"duration,omitempty"`
	Easing   string   `yaml:"easing,omitempty"`
}

// Scene is a named animation of a point.
type Scene struct {
	Name   string  `yaml:"name"`
	Start  Point   `yaml:"start"`
	Loop   bool    `yaml:"loop"`
	Stages []Stage `yaml:"stages"`
}

// Load decodes and validates a scene. Unknown keys are rejected.
func Load(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scene
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile reads a scene from path.
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Default returns the built-in scene.
func Default() *Scene {
	s, err := Load(bytes.NewReader(defaultScene))
	if err != nil {
		panic("default scene: " + err.Error())
	}
	return s
}

// Validate checks every stage without building anything.
func (s *Scene) Validate() error {
	if len(s.Stages) == 0 {
		return ErrEmptyScene
	}
	for i, st := range s.Stages {
		if _, err := st.curve(); err != nil {
			return fmt.Errorf("stage %d: %w", i, err)
		}
	}
	return nil
}

// Build creates a fresh sequence for the scene.
func (s *Scene) Build() (*tween.Sequence[tween.Vec2], error) {
	seq := tween.NewSequence(s.Start.Vec2())

	for i, st := range s.Stages {
		e, err := st.curve()
		if err != nil {
			return nil, fmt.Errorf("stage %d: %w", i, err)
		}

		if st.Wait != nil {
			seq.Wait(*st.Wait)
			continue
		}
		seq.Tween(st.Duration, st.Tween.Vec2(), e)
	}

	return seq, nil
}

// curve validates the stage shape and returns its easing. Wait stages have no
// curve of their own.
func (st Stage) curve() (easing.Easing, error) {
	switch {
	case st.Tween != nil && st.Wait != nil:
		return nil, fmt.Errorf("%w: both tween and wait set", ErrInvalidStage)

	case st.Wait != nil:
		if st.Duration != 0 || st.Easing != "" {
			return nil, fmt.Errorf("%w: wait takes no duration or easing", ErrInvalidStage)
		}
		if !validDuration(*st.Wait) {
			return nil, fmt.Errorf("%w: bad wait %g", ErrInvalidStage, *st.Wait)
		}
		return nil, nil

	case st.Tween != nil:
		if !validDuration(st.Duration) {
			return nil, fmt.Errorf("%w: bad duration %g", ErrInvalidStage, st.Duration)
		}
		if st.Easing == "" {
			return easing.Linear{}, nil
		}
		return easing.Parse(st.Easing)
	}

	return nil, fmt.Errorf("%w: neither tween nor wait set", ErrInvalidStage)
}

// validDuration reports whether d is finite and not negative. NaN fails the
// comparison.
func validDuration(d float32) bool {
	return d >= 0 && !math.IsInf(float64(d), 1)
}
