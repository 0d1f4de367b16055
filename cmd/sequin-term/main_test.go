package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/sequin/internal/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingScreen records Fini calls and can queue an escape key on Init.
type countingScreen struct {
	tcell.SimulationScreen
	escape bool
	finis  int
}

func (s *countingScreen) Init() error {
	if err := s.SimulationScreen.Init(); err != nil {
		return err
	}
	if s.escape {
		s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	}
	return nil
}

func (s *countingScreen) Fini() {
	s.finis++
	s.SimulationScreen.Fini()
}

func TestPlayRestoresScreen(t *testing.T) {
	t.Run("on quit", func(t *testing.T) {
		sc := scene.Default()
		seq, err := sc.Build()
		require.NoError(t, err)

		screen := &countingScreen{SimulationScreen: tcell.NewSimulationScreen("UTF-8"), escape: true}
		term := &Term{screen: screen, scene: sc, sequence: seq}

		require.NoError(t, term.play(time.Millisecond))
		assert.Equal(t, 1, screen.finis)
	})

	t.Run("on panic", func(t *testing.T) {
		screen := &countingScreen{SimulationScreen: tcell.NewSimulationScreen("UTF-8")}
		term := &Term{screen: screen, scene: scene.Default()}

		// no sequence, so the first tick panics
		assert.Panics(t, func() { _ = term.play(time.Millisecond) })
		assert.Equal(t, 1, screen.finis)
	})
}
