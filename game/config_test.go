package game

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigEmptyKeepsDefaults(t *testing.T) {
	cfg, err := ParseConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseConfigOverrides(t *testing.T) {
	doc := `
spawn_chance: 0.5
start_weapon: smg
collision_mode: pairwise
screen_width: 800
seed: arena-1
`
	cfg, err := ParseConfig(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.SpawnChance)
	assert.Equal(t, "smg", cfg.StartWeapon)
	assert.Equal(t, CollisionPairwise, cfg.CollisionMode)
	assert.Equal(t, 800, cfg.ScreenWidth)
	assert.Equal(t, 768, cfg.ScreenHeight)
	assert.Equal(t, "arena-1", cfg.Seed)
}

func TestParseConfigRejectsUnknownField(t *testing.T) {
	_, err := ParseConfig(strings.NewReader("spawn_rate: 0.5\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"zero width":     func(c *Config) { c.ScreenWidth = 0 },
		"negative speed": func(c *Config) { c.MoveSpeed = -1 },
		"bullet speed":   func(c *Config) { c.BulletSpeed = 0 },
		"spawn chance":   func(c *Config) { c.SpawnChance = 1.5 },
		"strong chance":  func(c *Config) { c.StrongEnemyChance = -0.1 },
		"collision mode": func(c *Config) { c.CollisionMode = "quadtree" },
		"cell size":      func(c *Config) { c.CollisionCellSize = 0 },
		"max delta":      func(c *Config) { c.MaxDelta = 0 },
		"unknown weapon": func(c *Config) { c.StartWeapon = "railgun" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			err := cfg.Validate()
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}

	cfg := DefaultConfig()
	cfg.CollisionMode = CollisionPairwise
	cfg.CollisionCellSize = 0
	assert.NoError(t, cfg.Validate())
}

func TestSeedValue(t *testing.T) {
	a := Config{Seed: "abc"}
	b := Config{Seed: "abd"}
	assert.Equal(t, a.SeedValue(), a.SeedValue())
	assert.NotEqual(t, a.SeedValue(), b.SeedValue())
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("move_speed: 1.5\nlog_level: debug\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 1.5, cfg.MoveSpeed)
	assert.Equal(t, "debug", cfg.LogLevel)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestConfigViewport(t *testing.T) {
	assert.Equal(t, Viewport{Width: 1024, Height: 768}, DefaultConfig().Viewport())
}

func TestWithOverrides(t *testing.T) {
	base := DefaultConfig()
	assert.Equal(t, base, base.WithOverrides("", "", ""))

	cfg := base.WithOverrides("42", "debug", "none")
	assert.Equal(t, "42", cfg.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "none", cfg.StartWeapon)
	assert.Equal(t, "shotgun", base.StartWeapon)
}
