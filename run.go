package deck

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
	Debug     bool

	// OnResize is called with the new window size whenever it changes,
	// including once before the first frame. Use it to call Deck.SetBounds.
	OnResize func(width, height int)

	// OnUpdate is called after the scene update each tick.
	OnUpdate func() error
}

type game struct {
	scene *Scene
	cfg   RunConfig
	lastW int
	lastH int
}

func (g *game) Update() error {
	g.scene.Update()
	if g.cfg.OnUpdate != nil {
		return g.cfg.OnUpdate()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *game) Layout(outsideW, outsideH int) (int, int) {
	if outsideW != g.lastW || outsideH != g.lastH {
		g.lastW, g.lastH = outsideW, outsideH
		if g.cfg.OnResize != nil {
			g.cfg.OnResize(outsideW, outsideH)
		}
	}
	return outsideW, outsideH
}

// Run opens a window and runs the scene until the window is closed or
// OnUpdate returns an error.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("deck: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	scene.SetDebugMode(cfg.Debug)
	if err := ebiten.RunGame(&game{scene: scene, cfg: cfg}); err != nil {
		return fmt.Errorf("deck: run: %w", err)
	}
	return nil
}
