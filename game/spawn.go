package game

import (
	"fmt"

	"zomshooter/geom"
)

// Edge is a side of the viewport. Values match the 1..4 draw.
type Edge int

const (
	EdgeLeft Edge = iota + 1
	EdgeTop
	EdgeRight
	EdgeBottom
)

// SpawnDirector rolls for a new enemy every tick.
type SpawnDirector struct {
	chance       float64
	strongChance float64
	rng          Rand
}

// NewSpawnDirector creates a director spawning with the given per-tick chance.
func NewSpawnDirector(chance, strongChance float64, rng Rand) *SpawnDirector {
	return &SpawnDirector{
		chance:       chance,
		strongChance: strongChance,
		rng:          rng,
	}
}

// Roll decides whether an enemy appears this tick and, if so, where and which.
func (d *SpawnDirector) Roll(vp Viewport) (TransformData, EnemyVariant, bool) {
	if d.rng.Float64() >= d.chance {
		return TransformData{}, EnemyDefault, false
	}
	edge := Edge(d.rng.Intn(4) + 1)
	pos := edgePosition(edge, vp, d.rng)
	variant := pickEnemyVariant(d.rng, d.strongChance)
	return TransformData{Position: pos}, variant, true
}

// edgePosition places a point uniformly along edge, exactly on the boundary.
func edgePosition(edge Edge, vp Viewport, rng Rand) geom.Vec2 {
	halfW, halfH := vp.Width/2, vp.Height/2
	switch edge {
	case EdgeLeft:
		return geom.V(-halfW, rng.Float64()*vp.Height-halfH)
	case EdgeTop:
		return geom.V(rng.Float64()*vp.Width-halfW, halfH)
	case EdgeRight:
		return geom.V(halfW, rng.Float64()*vp.Height-halfH)
	case EdgeBottom:
		return geom.V(rng.Float64()*vp.Width-halfW, -halfH)
	default:
		panic(fmt.Sprintf("game: spawn edge %d out of range", edge))
	}
}
