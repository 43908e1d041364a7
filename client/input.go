package client

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"zomshooter/client/scene"
	"zomshooter/game"
)

// equipKeys are the number keys for scene.EquipSlots, in slot order
var equipKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3}

// pollInput reads keyboard and mouse state for one tick
func pollInput(camera *scene.Camera, delta float64) game.Input {
	in := game.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Fire: game.ButtonState{
			Pressed:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
			JustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		},
		Reload:   inpututil.IsKeyJustPressed(ebiten.KeyR),
		Unequip:  inpututil.IsKeyJustPressed(ebiten.KeyDigit0),
		Viewport: game.Viewport{Width: camera.Width, Height: camera.Height},
		Delta:    delta,
	}

	slots := make([]bool, len(equipKeys))
	for i, key := range equipKeys {
		slots[i] = inpututil.IsKeyJustPressed(key)
	}
	in.Equip = scene.PickEquip(slots)

	cx, cy := ebiten.CursorPosition()
	in.Cursor = camera.ScreenToViewport(cx, cy)
	in.HasCursor = true
	return in
}

// handleFullscreen toggles fullscreen on Alt+Enter
func handleFullscreen() {
	altPressed := ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight)
	if altPressed && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
}
