// Package gui is the windowed front-end, rendering the mesh with Ebitengine
// and feeding mouse input to the driver's pointer hooks.
package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/san-kum/clothlab/internal/cloth"
	"github.com/san-kum/clothlab/internal/config"
	"github.com/san-kum/clothlab/internal/driver"
)

var (
	backgroundColor = color.RGBA{R: 18, G: 18, B: 24, A: 255}
	constraintColor = color.RGBA{R: 120, G: 130, B: 150, A: 255}
	particleColor   = color.RGBA{R: 220, G: 60, B: 60, A: 255}
	pinnedColor     = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	selectedColor   = color.RGBA{R: 80, G: 200, B: 255, A: 255}
)

// Game drives one tick per update at Ebitengine's fixed 60 TPS cadence,
// which matches the default dt of 1/60s.
type Game struct {
	cfg *config.Config
	drv *driver.Driver
}

func NewGame(cfg *config.Config) *Game {
	return &Game{
		cfg: cfg,
		drv: driver.New(cfg.Mesh(), cfg.Params(), cfg.PickRadius),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.drv = driver.New(g.cfg.Mesh(), g.cfg.Params(), g.cfg.PickRadius)
	}

	mx, my := ebiten.CursorPosition()
	pt := cloth.Vec2{X: float64(mx), Y: float64(my)}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.drv.OnPointerDown(pt)
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.drv.OnPointerDrag(pt)
	} else if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.drv.OnPointerUp()
	}

	g.drv.OnTick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	m := g.drv.Mesh()
	for _, c := range m.Constraints {
		a := m.Particles[c.A].Pos
		b := m.Particles[c.B].Pos
		if !a.Finite() || !b.Finite() {
			continue
		}
		vector.StrokeLine(screen,
			float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
			1, constraintColor, true)
	}

	selected, hasSelection := g.drv.Selected()
	for i := range m.Particles {
		p := &m.Particles[i]
		if !p.Pos.Finite() {
			continue
		}
		clr := particleColor
		if p.Pinned {
			clr = pinnedColor
		}
		if hasSelection && i == selected {
			clr = selectedColor
		}
		vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), 3, clr, true)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %.0f  tick: %d  [r] reset, drag to pull",
		ebiten.ActualTPS(), g.drv.Tick()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens the window and blocks until it closes.
func Run(cfg *config.Config) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("clothlab")
	return ebiten.RunGame(NewGame(cfg))
}
