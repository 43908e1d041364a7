package main

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"zomshooter/game"
	"zomshooter/geom"
)

func TestPilotStrafesAndHoldsFire(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.SpawnChance = 0
	g, err := game.NewGame(cfg, rand.New(rand.NewSource(1)), zap.NewNop(), nil)
	require.NoError(t, err)
	_, err = g.SpawnPlayer()
	require.NoError(t, err)

	p := newPilot(2, 1)
	vp := cfg.Viewport()
	first := p.next(g, vp, 0.016)
	assert.True(t, first.Right)
	assert.False(t, first.HasCursor, "no enemy to aim at")
	assert.False(t, first.Fire.Pressed)

	p.next(g, vp, 0.016)
	third := p.next(g, vp, 0.016)
	assert.True(t, third.Left)
}

func TestPilotAimsAtNearestEnemy(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.SpawnChance = 0
	cfg.PlayerStartX, cfg.PlayerStartY = 0, 0
	g, err := game.NewGame(cfg, rand.New(rand.NewSource(1)), zap.NewNop(), nil)
	require.NoError(t, err)
	_, err = g.SpawnPlayer()
	require.NoError(t, err)

	g.World().QueueEnemy(game.TransformData{Position: geom.V(300, 0)}, game.EnemyDefault)
	g.World().QueueEnemy(game.TransformData{Position: geom.V(-50, 40)}, game.EnemyStrong)
	g.World().Flush()

	target, ok := nearestEnemy(g)
	require.True(t, ok)
	assert.Equal(t, geom.V(-50, 40), target)

	in := newPilot(10, 3).next(g, cfg.Viewport(), 0.016)
	require.True(t, in.HasCursor)
	assert.Equal(t, geom.V(-50+512, 40+384), in.Cursor)
	assert.True(t, in.Fire.JustPressed)
}

func TestRunSoak(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Seed = "soak"
	cfg.StartWeapon = "pistol"

	stats, err := run(cfg, zaptest.NewLogger(t), 20000, 1.0/60, newPilot(90, 12))
	require.NoError(t, err)
	assert.Equal(t, uint64(20000), stats.Frames)
	assert.InDelta(t, 200, stats.Spawned, 70)
	assert.Positive(t, stats.Shots)
	assert.Positive(t, stats.Kills)
	assert.LessOrEqual(t, stats.Kills, stats.Spawned)
}

func TestProfileCapture(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "profiles")
	p, err := startProfile(dir, zaptest.NewLogger(t))
	require.NoError(t, err)

	cfg := game.DefaultConfig()
	cfg.Seed = "profile"
	_, err = run(cfg, zap.NewNop(), 500, 1.0/60, newPilot(30, 5))
	require.NoError(t, err)
	require.NoError(t, p.stop())

	assert.FileExists(t, p.cpuPath)
	assert.FileExists(t, p.tracePath)
}
