package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/sequin/audio"
	"github.com/plus3/sequin/easing"
	"github.com/plus3/sequin/internal/scene"
	"github.com/plus3/sequin/tween"
)

const (
	// scene coordinates are mapped from this area onto the terminal
	sceneWidth  = 800
	sceneHeight = 600
)

type Term struct {
	screen   tcell.Screen
	scene    *scene.Scene
	sequence *tween.Sequence[tween.Vec2]
	sound    bool
	rate     beep.SampleRate
}

func main() {
	scenePath := flag.String("scene", "", "Path to a YAML scene file. The built-in scene is used when empty.")
	fps := flag.Int("fps", 60, "Frames per second.")
	sound := flag.Bool("sound", false, "Play a short chime whenever the scene restarts.")
	flag.Parse()

	s := scene.Default()
	if *scenePath != "" {
		loaded, err := scene.LoadFile(*scenePath)
		if err != nil {
			log.Fatalf("Failed to load scene: %v", err)
		}
		s = loaded
	}

	seq, err := s.Build()
	if err != nil {
		log.Fatalf("Failed to build scene %q: %v", s.Name, err)
	}

	if *fps < 1 {
		log.Fatalf("Invalid -fps %d: must be at least 1", *fps)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}

	t := &Term{
		screen:   screen,
		scene:    s,
		sequence: seq,
		rate:     beep.SampleRate(44100),
	}

	if *sound {
		if err := speaker.Init(t.rate, t.rate.N(time.Second/10)); err != nil {
			// Non-fatal, the animation runs without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			t.sound = true
		}
	}

	if err := t.play(time.Second / time.Duration(*fps)); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
}

// play owns the screen for the lifetime of the loop and restores the terminal
// however run exits.
func (t *Term) play(interval time.Duration) error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	defer t.screen.Fini()

	t.run(interval)
	return nil
}

func (t *Term) run(interval time.Duration) {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go t.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()
	t.chime()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyEscape, tcell.KeyCtrlC:
					close(quit)
					return
				case tcell.KeyEnter:
					t.restart()
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}

		case now := <-ticker.C:
			dt := float32(now.Sub(lastTime).Seconds())
			lastTime = now

			t.sequence.Update(dt)
			if t.sequence.Finished() && t.scene.Loop {
				t.restart()
			}
			t.draw()
		}
	}
}

func (t *Term) restart() {
	t.sequence.Reset()
	t.chime()
}

func (t *Term) draw() {
	t.screen.Clear()

	w, h := t.screen.Size()
	pos := t.sequence.Current()
	x := int(pos.X / sceneWidth * float32(w))
	y := int(pos.Y / sceneHeight * float32(h))

	ball := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	t.screen.SetContent(x, y, '●', nil, ball)

	status := fmt.Sprintf(" %s  x=%.1f y=%.1f  finished=%v  [enter] restart [esc] quit ",
		t.scene.Name, pos.X, pos.Y, t.sequence.Finished())
	label := tcell.StyleDefault.Reverse(true)
	for i, r := range status {
		t.screen.SetContent(i, h-1, r, nil, label)
	}

	t.screen.Show()
}

// chime plays a sine tone shaped by a short attack and a longer release.
func (t *Term) chime() {
	if !t.sound {
		return
	}

	sine, err := generators.SineTone(t.rate, 880)
	if err != nil {
		log.Printf("Failed to create tone: %v", err)
		return
	}

	envelope := tween.NewScalarSequence[float32](0).
		Tween(0.02, 0.3, easing.Linear{}).
		Tween(0.4, 0, easing.EaseOut(easing.Powi(3)))

	tone := beep.Take(t.rate.N(450*time.Millisecond), sine)
	speaker.Play(audio.NewFade(tone, t.rate, envelope))
}
