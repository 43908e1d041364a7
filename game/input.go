package game

import (
	"math"

	"zomshooter/geom"
)

// Rand is the random source the simulation draws from. *math/rand.Rand
// satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// ButtonState is the state of a button for one tick.
type ButtonState struct {
	Pressed     bool // held down this tick
	JustPressed bool // went down this tick
}

// Viewport is the visible play area, centered on the world origin.
type Viewport struct {
	Width, Height float64
}

// CenterCursor converts a cursor position in viewport pixels (origin at the
// bottom-left corner, y up) to world coordinates.
func (v Viewport) CenterCursor(px, py float64) geom.Vec2 {
	return geom.V(px-v.Width/2, py-v.Height/2)
}

// Contains reports whether p is inside the viewport. The boundary is inside.
func (v Viewport) Contains(p geom.Vec2) bool {
	return math.Abs(p.X) <= v.Width/2 && math.Abs(p.Y) <= v.Height/2
}

func (v Viewport) empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// Input is everything the simulation needs from the outside for one tick.
type Input struct {
	Up, Down, Left, Right bool

	Fire ButtonState

	// Reload requests a manual reload
	Reload bool

	// Equip switches to the given weapon; WeaponTypeNone means no request
	Equip WeaponType

	// Unequip drops the current weapon
	Unequip bool

	// Cursor is in viewport pixels, see Viewport.CenterCursor
	Cursor    geom.Vec2
	HasCursor bool

	// Viewport falls back to the configured screen size when empty
	Viewport Viewport

	// Delta is the elapsed time in seconds
	Delta float64
}
