package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zomshooter/geom"
)

func TestPlayerStepDiagonalIsNormalized(t *testing.T) {
	step := playerStep(Input{Up: true, Right: true}, 0.6)
	assert.InDelta(t, 0.6, step.Len(), 1e-12)
	assert.InDelta(t, 0.6/math.Sqrt2, step.X, 1e-12)
	assert.InDelta(t, 0.6/math.Sqrt2, step.Y, 1e-12)
}

func TestPlayerStepAxes(t *testing.T) {
	assert.Equal(t, geom.V(0.6, 0), playerStep(Input{Right: true}, 0.6))
	assert.Equal(t, geom.V(-0.6, 0), playerStep(Input{Left: true}, 0.6))
	assert.Equal(t, geom.V(0, 0.6), playerStep(Input{Up: true}, 0.6))
	assert.Equal(t, geom.V(0, -0.6), playerStep(Input{Down: true}, 0.6))
	assert.Equal(t, geom.Vec2{}, playerStep(Input{Left: true, Right: true}, 0.6))
	assert.Equal(t, geom.Vec2{}, playerStep(Input{}, 0.6))
}

func TestTickMovesPlayer(t *testing.T) {
	g := newTestGame(t, func(c *Config) { c.MoveSpeed = 2 })
	_, err := g.SpawnPlayer()
	require.NoError(t, err)

	g.Tick(Input{Down: true, Left: true, Delta: 1.0 / 60})
	view, _, ok := g.Player()
	require.True(t, ok)
	assert.InDelta(t, 2, view.Transform.Position.Len(), 1e-12)
	assert.Less(t, view.Transform.Position.X, 0.0)
	assert.Less(t, view.Transform.Position.Y, 0.0)
}

func TestEnemiesHomeOnPlayer(t *testing.T) {
	g := newTestGame(t, nil)
	_, err := g.SpawnPlayer()
	require.NoError(t, err)
	placeEnemy(g.world, 100, 0, EnemyDefault)
	placeEnemy(g.world, 0, -50, EnemyStrong)
	g.world.Flush()

	g.Tick(Input{Delta: 1.0 / 60})

	got := map[EnemyVariant]TransformData{}
	g.world.Each(func(v EntityView) {
		if v.Kind == KindEnemy {
			got[v.Variant] = v.Transform
		}
	})
	require.Len(t, got, 2)

	assert.InDelta(t, 98.8, got[EnemyDefault].Position.X, 1e-12)
	assert.InDelta(t, 0, got[EnemyDefault].Position.Y, 1e-12)
	assert.InDelta(t, math.Pi, got[EnemyDefault].Rotation, 1e-12)

	assert.InDelta(t, 0, got[EnemyStrong].Position.X, 1e-12)
	assert.InDelta(t, -49.2, got[EnemyStrong].Position.Y, 1e-12)
	assert.InDelta(t, math.Pi/2, got[EnemyStrong].Rotation, 1e-12)
}

func TestEnemiesHoldWithoutPlayer(t *testing.T) {
	g := newTestGame(t, nil)
	placeEnemy(g.world, 100, 20, EnemyDefault)
	g.world.Flush()

	for i := 0; i < 10; i++ {
		g.Tick(Input{Delta: 1.0 / 60})
	}
	assert.Equal(t, []geom.Vec2{geom.V(100, 20)}, positions(g.world, KindEnemy))
}

func TestEnemyOnPlayerStaysPut(t *testing.T) {
	g := newTestGame(t, nil)
	_, err := g.SpawnPlayer()
	require.NoError(t, err)
	placeEnemy(g.world, 0, 0, EnemyDefault)
	g.world.Flush()

	g.Tick(Input{Delta: 1.0 / 60})
	assert.Equal(t, []geom.Vec2{geom.V(0, 0)}, positions(g.world, KindEnemy))
}

func TestBulletsMoveByVelocity(t *testing.T) {
	g := newTestGame(t, nil)
	g.world.QueueBullet(TransformData{Position: geom.V(1, 1)}, VelocityData{geom.V(6, -2)})
	g.world.Flush()

	g.Tick(Input{Delta: 1.0 / 60})
	g.Tick(Input{Delta: 1.0 / 60})
	assert.Equal(t, []geom.Vec2{geom.V(13, -3)}, positions(g.world, KindBullet))
}
