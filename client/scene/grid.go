package scene

import "math"

// GridLines returns the screen positions of the collision grid's cell
// boundaries that fall inside the camera.
func (c *Camera) GridLines(cellSize float64) (xs, ys []float64) {
	if cellSize <= 0 {
		return nil, nil
	}
	halfW, halfH := c.Width/2, c.Height/2
	for k := math.Ceil(-halfW / cellSize); k*cellSize <= halfW; k++ {
		xs = append(xs, k*cellSize+halfW)
	}
	for k := math.Ceil(-halfH / cellSize); k*cellSize <= halfH; k++ {
		ys = append(ys, halfH-k*cellSize)
	}
	return xs, ys
}
