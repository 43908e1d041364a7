package scene

import "zomshooter/geom"

// Camera maps the centered, y-up world onto the y-down screen.
type Camera struct {
	Width  float64 // Viewport width
	Height float64 // Viewport height
}

// NewCamera creates a camera for a width x height screen
func NewCamera(width, height float64) *Camera {
	return &Camera{Width: width, Height: height}
}

// Resize updates the screen size after a layout change
func (c *Camera) Resize(width, height float64) {
	c.Width = width
	c.Height = height
}

// WorldToScreen converts world coordinates to screen coordinates
func (c *Camera) WorldToScreen(p geom.Vec2) (float64, float64) {
	return p.X + c.Width/2, c.Height/2 - p.Y
}

// ScreenToViewport converts a screen cursor (origin top-left, y down) to
// viewport pixels (origin bottom-left, y up).
func (c *Camera) ScreenToViewport(sx, sy int) geom.Vec2 {
	return geom.V(float64(sx), c.Height-float64(sy))
}

// ScreenAngle converts a world rotation to a screen rotation.
func ScreenAngle(rotation float64) float64 {
	return -rotation
}
