package scene

import (
	"zomshooter/game"
	"zomshooter/geom"
)

// flashDuration is how long a kill flash stays on screen, in seconds
const flashDuration = 0.25

// Flash marks where an enemy died.
type Flash struct {
	Position geom.Vec2
	Radius   float64
	Age      float64
}

// Alpha fades from 1 to 0 over the flash lifetime.
func (f Flash) Alpha() float64 {
	return max(0, 1-f.Age/flashDuration)
}

// Effects turns world events into short-lived visuals. It implements
// game.EntitySink.
type Effects struct {
	flashes []Flash
	live    map[game.Kind]int
}

// NewEffects creates an empty effect layer
func NewEffects() *Effects {
	return &Effects{
		flashes: make([]Flash, 0, 32),
		live:    make(map[game.Kind]int),
	}
}

func (e *Effects) EntityCreated(v game.EntityView) {
	e.live[v.Kind]++
}

func (e *Effects) EntityDestroyed(v game.EntityView) {
	e.live[v.Kind]--
	if v.Kind != game.KindEnemy {
		return
	}
	e.flashes = append(e.flashes, Flash{
		Position: v.Transform.Position,
		Radius:   game.GetEnemyVariantConfig(v.Variant).Radius,
	})
}

// Update ages flashes by dt seconds and drops expired ones.
func (e *Effects) Update(dt float64) {
	kept := e.flashes[:0]
	for _, f := range e.flashes {
		f.Age += dt
		if f.Age < flashDuration {
			kept = append(kept, f)
		}
	}
	e.flashes = kept
}

// Flashes returns the active flashes.
func (e *Effects) Flashes() []Flash {
	return e.flashes
}

// Live returns how many entities of kind the sink has seen alive.
func (e *Effects) Live(kind game.Kind) int {
	return e.live[kind]
}
