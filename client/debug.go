package client

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"zomshooter/client/scene"
)

// debugState holds overlay toggles that persist for the window's lifetime
type debugState struct {
	ShowGrid bool // Show collision cell boundaries and FPS
}

var gridColor = color.RGBA{60, 60, 90, 255}

// update handles debug key presses (F1 toggles grid display)
func (d *debugState) update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		d.ShowGrid = !d.ShowGrid
	}
}

// draw renders the collision grid under the entities
func (d *debugState) draw(screen *ebiten.Image, camera *scene.Camera, cellSize float64) {
	if !d.ShowGrid {
		return
	}
	xs, ys := camera.GridLines(cellSize)
	for _, x := range xs {
		vector.StrokeLine(screen, float32(x), 0, float32(x), float32(camera.Height), 1, gridColor, false)
	}
	for _, y := range ys {
		vector.StrokeLine(screen, 0, float32(y), float32(camera.Width), float32(y), 1, gridColor, false)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f  FPS: %0.1f", ebiten.ActualTPS(), ebiten.ActualFPS()), 8, int(camera.Height)-20)
}
