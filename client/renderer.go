package client

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"zomshooter/client/scene"
	"zomshooter/game"
)

const (
	playerRadius = 8.0
	bulletRadius = 2.0
	lineHeight   = 16
)

var (
	backgroundColor = color.RGBA{20, 20, 40, 255}
	playerColor     = color.RGBA{0, 255, 0, 255}
	bulletColor     = color.RGBA{255, 255, 0, 255}
	hudColor        = color.RGBA{220, 220, 220, 255}
)

// Renderer draws the world, kill flashes and the HUD
type Renderer struct {
	camera *scene.Camera
	debug  *debugState
}

// NewRenderer creates a new renderer
func NewRenderer(camera *scene.Camera, debug *debugState) *Renderer {
	return &Renderer{camera: camera, debug: debug}
}

// Render draws one frame
func (r *Renderer) Render(screen *ebiten.Image, g *game.Game, effects *scene.Effects) {
	screen.Fill(backgroundColor)
	r.debug.draw(screen, r.camera, g.Config().CollisionCellSize)

	g.World().Each(func(v game.EntityView) {
		r.renderEntity(screen, v)
	})

	for _, f := range effects.Flashes() {
		sx, sy := r.camera.WorldToScreen(f.Position)
		alpha := uint8(255 * f.Alpha())
		clr := color.RGBA{alpha, alpha, alpha, alpha}
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(f.Radius*(2-f.Alpha())), 2, clr, true)
	}

	r.renderHUD(screen, g)
}

// renderEntity draws a single entity as a circle with a facing line
func (r *Renderer) renderEntity(screen *ebiten.Image, v game.EntityView) {
	sx, sy := r.camera.WorldToScreen(v.Transform.Position)

	var clr color.Color
	var radius float64
	switch v.Kind {
	case game.KindPlayer:
		clr, radius = playerColor, playerRadius
	case game.KindEnemy:
		radius = game.GetEnemyVariantConfig(v.Variant).Radius
		if v.Variant == game.EnemyStrong {
			clr = color.RGBA{160, 0, 0, 255} // Dark red (strong)
		} else {
			clr = color.RGBA{255, 100, 0, 255} // Orange (default)
		}
	case game.KindBullet:
		clr, radius = bulletColor, bulletRadius
	default:
		return
	}

	vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(radius), clr, true)

	if v.Kind != game.KindBullet {
		angle := scene.ScreenAngle(v.Transform.Rotation)
		dirLength := radius * 1.5
		endX := sx + math.Cos(angle)*dirLength
		endY := sy + math.Sin(angle)*dirLength
		vector.StrokeLine(screen, float32(sx), float32(sy), float32(endX), float32(endY), 2, clr, true)
	}
}

// renderHUD draws the weapon readout and running totals
func (r *Renderer) renderHUD(screen *ebiten.Image, g *game.Game) {
	bullets, enemies := g.World().Counts()
	face := basicfont.Face7x13
	text.Draw(screen, scene.StatusLine(g.Status()), face, 8, lineHeight, hudColor)
	text.Draw(screen, scene.StatsLine(g.Stats(), enemies, bullets), face, 8, 2*lineHeight, hudColor)
	if _, _, ok := g.Player(); !ok {
		text.Draw(screen, "No player", face, 8, 3*lineHeight, hudColor)
	}
}
