package game

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Collision strategies.
const (
	CollisionGrid     = "grid"
	CollisionPairwise = "pairwise"
)

// Config holds game configuration. Distances are world units (one unit is one
// screen pixel); speeds are units per tick and timers are seconds.
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int `yaml:"screen_width"`

	// ScreenHeight is the window height in pixels
	ScreenHeight int `yaml:"screen_height"`

	// MoveSpeed caps the player's displacement per tick
	MoveSpeed float64 `yaml:"move_speed"`

	// BulletSpeed is the length of every bullet's velocity
	BulletSpeed float64 `yaml:"bullet_speed"`

	// SpawnChance is the probability of an enemy spawning on a given tick
	SpawnChance float64 `yaml:"spawn_chance"`

	// StrongEnemyChance is the share of spawns that are Strong enemies
	StrongEnemyChance float64 `yaml:"strong_enemy_chance"`

	// StartWeapon is equipped when the player spawns ("" or "none" for unarmed)
	StartWeapon string `yaml:"start_weapon"`

	// PlayerStartX, PlayerStartY is the player spawn point
	PlayerStartX float64 `yaml:"player_start_x"`
	PlayerStartY float64 `yaml:"player_start_y"`

	// CollisionMode is "grid" or "pairwise"
	CollisionMode string `yaml:"collision_mode"`

	// CollisionCellSize is the spatial hash cell size for grid collision
	CollisionCellSize float64 `yaml:"collision_cell_size"`

	// MaxDelta clamps the elapsed time of a single tick
	MaxDelta float64 `yaml:"max_delta"`

	// Seed selects the random stream; empty means seed from the clock
	Seed string `yaml:"seed"`

	LogLevel    string `yaml:"log_level"`
	LogEncoding string `yaml:"log_encoding"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:       1024,
		ScreenHeight:      768,
		MoveSpeed:         0.6,
		BulletSpeed:       6.0,
		SpawnChance:       0.01,
		StrongEnemyChance: 0.3,
		StartWeapon:       "shotgun",
		PlayerStartX:      0.001,
		PlayerStartY:      0.001,
		CollisionMode:     CollisionGrid,
		CollisionCellSize: 64.0,
		MaxDelta:          0.1,
		LogLevel:          "info",
		LogEncoding:       "console",
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := ParseConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
// Fields missing from the document keep their defaults.
func ParseConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	case c.MoveSpeed < 0:
		return fmt.Errorf("%w: move_speed %v", ErrInvalidConfig, c.MoveSpeed)
	case c.BulletSpeed <= 0:
		return fmt.Errorf("%w: bullet_speed %v", ErrInvalidConfig, c.BulletSpeed)
	case c.SpawnChance < 0 || c.SpawnChance > 1:
		return fmt.Errorf("%w: spawn_chance %v not in [0,1]", ErrInvalidConfig, c.SpawnChance)
	case c.StrongEnemyChance < 0 || c.StrongEnemyChance > 1:
		return fmt.Errorf("%w: strong_enemy_chance %v not in [0,1]", ErrInvalidConfig, c.StrongEnemyChance)
	case c.CollisionMode != CollisionGrid && c.CollisionMode != CollisionPairwise:
		return fmt.Errorf("%w: collision_mode %q", ErrInvalidConfig, c.CollisionMode)
	case c.CollisionMode == CollisionGrid && c.CollisionCellSize <= 0:
		return fmt.Errorf("%w: collision_cell_size %v", ErrInvalidConfig, c.CollisionCellSize)
	case c.MaxDelta <= 0:
		return fmt.Errorf("%w: max_delta %v", ErrInvalidConfig, c.MaxDelta)
	}
	if _, err := ParseWeaponType(c.StartWeapon); err != nil {
		return fmt.Errorf("%w: start_weapon: %v", ErrInvalidConfig, err)
	}
	return nil
}

// WithOverrides returns a copy with the non-empty command line values applied.
func (c Config) WithOverrides(seed, logLevel, startWeapon string) Config {
	if seed != "" {
		c.Seed = seed
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	if startWeapon != "" {
		c.StartWeapon = startWeapon
	}
	return c
}

// Viewport returns the configured screen as a Viewport.
func (c Config) Viewport() Viewport {
	return Viewport{Width: float64(c.ScreenWidth), Height: float64(c.ScreenHeight)}
}

// SeedValue turns Seed into an int64 source seed. Numeric-looking and
// free-form seeds alike are hashed so any string is a valid seed.
func (c Config) SeedValue() int64 {
	if c.Seed == "" {
		return time.Now().UnixNano()
	}
	return int64(xxhash.Sum64String(c.Seed))
}
