package game

import (
	"math"

	"github.com/yohamta/donburi"

	"zomshooter/geom"
)

// bulletRef is a bullet as seen by the spatial hash. order is the bullet's
// position in table order and breaks ties between candidates.
type bulletRef struct {
	order  int
	entity donburi.Entity
	pos    geom.Vec2
}

// Cell represents a spatial partition cell containing bullets
type Cell struct {
	// Bullets in this cell (preallocated slice)
	Bullets []bulletRef

	// Current count of bullets
	Count int
}

// NewCell creates a new cell with preallocated storage
func NewCell(initialCapacity int) *Cell {
	return &Cell{
		Bullets: make([]bulletRef, 0, initialCapacity),
		Count:   0,
	}
}

// Add adds a bullet to this cell
func (c *Cell) Add(ref bulletRef) {
	if c.Count < len(c.Bullets) {
		c.Bullets[c.Count] = ref
	} else {
		c.Bullets = append(c.Bullets, ref)
	}
	c.Count++
}

// GetBullets returns the bullets in this cell
func (c *Cell) GetBullets() []bulletRef {
	return c.Bullets[:c.Count]
}

// Clear empties the cell but keeps capacity
func (c *Cell) Clear() {
	c.Count = 0
}

type cellKey struct {
	x, y int
}

// Grid is an unbounded spatial hash of bullets, rebuilt every tick. Cells are
// kept between ticks so steady-state rebuilds do not allocate.
type Grid struct {
	cellSize float64
	cells    map[cellKey]*Cell
	used     []cellKey
}

// NewGrid creates an empty grid with square cells of cellSize units.
func NewGrid(cellSize float64) *Grid {
	return &Grid{
		cellSize: cellSize,
		cells:    make(map[cellKey]*Cell),
		used:     make([]cellKey, 0, 64),
	}
}

// WorldToCell converts world coordinates to cell coordinates
func (g *Grid) WorldToCell(p geom.Vec2) cellKey {
	return cellKey{
		x: int(math.Floor(p.X / g.cellSize)),
		y: int(math.Floor(p.Y / g.cellSize)),
	}
}

// Reset empties every cell touched since the last Reset.
func (g *Grid) Reset() {
	for _, key := range g.used {
		g.cells[key].Clear()
	}
	g.used = g.used[:0]
}

// Insert adds a bullet to the cell under its position.
func (g *Grid) Insert(ref bulletRef) {
	key := g.WorldToCell(ref.pos)
	cell, ok := g.cells[key]
	if !ok {
		cell = NewCell(8)
		g.cells[key] = cell
	}
	if cell.Count == 0 {
		g.used = append(g.used, key)
	}
	cell.Add(ref)
}

// Near calls fn for every bullet in the cells overlapping the square of
// half-size radius around center. Bullets outside radius may be included.
func (g *Grid) Near(center geom.Vec2, radius float64, fn func(bulletRef)) {
	lo := g.WorldToCell(geom.V(center.X-radius, center.Y-radius))
	hi := g.WorldToCell(geom.V(center.X+radius, center.Y+radius))
	for x := lo.x; x <= hi.x; x++ {
		for y := lo.y; y <= hi.y; y++ {
			cell, ok := g.cells[cellKey{x: x, y: y}]
			if !ok {
				continue
			}
			for _, ref := range cell.GetBullets() {
				fn(ref)
			}
		}
	}
}
