package main

import (
	"flag"
	"image/color"
	"log"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/sequin/animator"
	"github.com/plus3/sequin/debugui"
	"github.com/plus3/sequin/internal/scene"
	"github.com/plus3/sequin/tween"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	Radius       = 64
)

var (
	background = color.RGBA{0, 0, 0, 255}
	ballColor  = color.RGBA{255, 255, 255, 255}
)

// Game implements ebiten.Game. The sequence is advanced in Update and drawn in
// Draw; nothing else touches it.
type Game struct {
	scene     *scene.Scene
	sequence  *tween.Sequence[tween.Vec2]
	animator  *animator.Animator
	imgui     *ebitenbackend.EbitenBackend
	inspector *debugui.SequenceInspector[tween.Vec2]
	stats     *debugui.AnimatorStatsWindow
	timer     *debugui.FrameTimer
	verbose   bool
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sequence.Reset()
	}

	g.imgui.BeginFrame()

	dt := 1 / float32(ebiten.TPS())
	if !g.inspector.Paused || g.inspector.StepRequested() {
		g.animator.Once(dt)
	}

	if g.sequence.Finished() && g.scene.Loop {
		g.sequence.Reset()
	}

	if g.verbose {
		log.Printf("%v, %v", g.sequence.Current(), g.sequence.Finished())
	}

	g.inspector.Render(g.sequence)
	g.stats.Render(g.animator, g.timer.GetDeltaTime())

	g.imgui.EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	pos := g.sequence.Current()
	vector.DrawFilledCircle(screen, pos.X, pos.Y, Radius, ballColor, true)

	g.imgui.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imgui.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	scenePath := flag.String("scene", "", "Path to a YAML scene file. The built-in scene is used when empty.")
	verbose := flag.Bool("verbose", false, "Log the current value every frame.")
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
	log.Printf("Playing scene %q (%d stages, %.2fs)", s.Name, len(seq.Stages()), seq.Duration())

	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow("sequin - "+s.Name, ScreenWidth, ScreenHeight)
	imgui.CurrentIO().SetIniFilename("")

	anim := animator.New()
	anim.Add(seq)

	game := &Game{
		scene:     s,
		sequence:  seq,
		animator:  anim,
		imgui:     backend,
		inspector: debugui.NewSequenceInspector[tween.Vec2]("Sequence"),
		stats:     debugui.NewAnimatorStatsWindow(120),
		timer:     debugui.NewFrameTimer(),
		verbose:   *verbose,
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game exited: %v", err)
	}
}
