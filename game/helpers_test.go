package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"zomshooter/geom"
)

// newTestGame builds a game with spawning disabled and the player starting
// at the origin. mutate may adjust the config before construction.
func newTestGame(t *testing.T, mutate func(*Config)) *Game {
	t.Helper()
	cfg := DefaultConfig()
	cfg.SpawnChance = 0
	cfg.PlayerStartX = 0
	cfg.PlayerStartY = 0
	if mutate != nil {
		mutate(&cfg)
	}
	g, err := NewGame(cfg, rand.New(rand.NewSource(1)), zaptest.NewLogger(t), nil)
	require.NoError(t, err)
	return g
}

// scriptedRand replays fixed values, then falls back to the middle of the range.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return n / 2
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v
}

type recordingSink struct {
	created   []EntityView
	destroyed []EntityView
}

func (s *recordingSink) EntityCreated(v EntityView)   { s.created = append(s.created, v) }
func (s *recordingSink) EntityDestroyed(v EntityView) { s.destroyed = append(s.destroyed, v) }

func placeBullet(w *World, x, y float64) {
	w.QueueBullet(TransformData{Position: geom.V(x, y)}, VelocityData{})
}

func placeEnemy(w *World, x, y float64, variant EnemyVariant) {
	w.QueueEnemy(TransformData{Position: geom.V(x, y)}, variant)
}

func positions(w *World, kind Kind) []geom.Vec2 {
	var out []geom.Vec2
	w.Each(func(v EntityView) {
		if v.Kind == kind {
			out = append(out, v.Transform.Position)
		}
	})
	return out
}

var (
	pressed = ButtonState{Pressed: true, JustPressed: true}
	held    = ButtonState{Pressed: true}
)
