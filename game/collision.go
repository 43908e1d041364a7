package game

import (
	"github.com/yohamta/donburi"

	"zomshooter/geom"
)

// Hit is a bullet/enemy pair removed by the collision system.
type Hit struct {
	Enemy  EntityView
	Bullet donburi.Entity
}

// CollisionSystem finds bullets inside an enemy's collision radius and queues
// both for removal. Every enemy with a bullet in range dies; it is credited to
// the earliest bullet in table order. A bullet overlapping several enemies
// kills all of them.
type CollisionSystem struct {
	mode string
	grid *Grid
}

// NewCollisionSystem creates a collision system. mode is CollisionGrid or
// CollisionPairwise; cellSize is ignored for pairwise.
func NewCollisionSystem(mode string, cellSize float64) *CollisionSystem {
	c := &CollisionSystem{mode: mode}
	if mode == CollisionGrid {
		c.grid = NewGrid(cellSize)
	}
	return c
}

// CheckCollisions queues removals for every colliding pair and returns them.
func (c *CollisionSystem) CheckCollisions(w *World, enemies, bullets []*donburi.Entry) []Hit {
	if len(enemies) == 0 || len(bullets) == 0 {
		return nil
	}
	if c.grid != nil {
		return c.checkGrid(w, enemies, bullets)
	}
	return c.checkPairwise(w, enemies, bullets)
}

// checkPairwise tests every enemy against every bullet: O(enemies × bullets).
func (c *CollisionSystem) checkPairwise(w *World, enemies, bullets []*donburi.Entry) []Hit {
	// Only bullets removed before this pass are skipped
	gone := make([]bool, len(bullets))
	for i, bullet := range bullets {
		gone[i] = w.Doomed(bullet.Entity())
	}

	var hits []Hit
	for _, enemy := range enemies {
		if w.Doomed(enemy.Entity()) {
			continue
		}
		pos := Transform.Get(enemy).Position
		radius := GetEnemyVariantConfig(Enemy.Get(enemy).Variant).Radius

		for i, bullet := range bullets {
			if gone[i] {
				continue
			}
			if geom.Distance(pos, Transform.Get(bullet).Position) < radius {
				hits = append(hits, c.handleHit(w, enemy, bullet.Entity()))
				break
			}
		}
	}
	return hits
}

// checkGrid buckets bullets into the spatial hash so each enemy only looks at
// nearby cells. Picking the lowest-ordered candidate keeps results identical
// to checkPairwise.
func (c *CollisionSystem) checkGrid(w *World, enemies, bullets []*donburi.Entry) []Hit {
	c.grid.Reset()
	for i, bullet := range bullets {
		if w.Doomed(bullet.Entity()) {
			continue
		}
		c.grid.Insert(bulletRef{order: i, entity: bullet.Entity(), pos: Transform.Get(bullet).Position})
	}

	var hits []Hit
	for _, enemy := range enemies {
		if w.Doomed(enemy.Entity()) {
			continue
		}
		pos := Transform.Get(enemy).Position
		radius := GetEnemyVariantConfig(Enemy.Get(enemy).Variant).Radius

		best := -1
		var bestEntity donburi.Entity
		c.grid.Near(pos, radius, func(ref bulletRef) {
			if best >= 0 && ref.order > best {
				return
			}
			if geom.Distance(pos, ref.pos) < radius {
				best = ref.order
				bestEntity = ref.entity
			}
		})
		if best < 0 {
			continue
		}
		hits = append(hits, c.handleHit(w, enemy, bestEntity))
	}
	return hits
}

func (c *CollisionSystem) handleHit(w *World, enemy *donburi.Entry, bullet donburi.Entity) Hit {
	w.QueueDestroy(enemy.Entity())
	w.QueueDestroy(bullet)
	return Hit{Enemy: viewOf(enemy), Bullet: bullet}
}
