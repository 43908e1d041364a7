package game

import (
	"math"

	"github.com/yohamta/donburi"
	"go.uber.org/zap"

	"zomshooter/geom"
)

// Stats are running totals since the game was created.
type Stats struct {
	Frames  uint64
	Shots   int // trigger pulls that fired
	Bullets int
	Spawned int
	Kills   int
	Culled  int
}

// Status is what the HUD shows about the player's weapon.
type Status struct {
	Armed      bool
	WeaponName string
	Rounds     int
	Capacity   int
	Reloading  bool
}

// Game represents the main game state
type Game struct {
	config    Config
	world     *World
	rng       Rand
	logger    *zap.Logger
	collision *CollisionSystem
	spawner   *SpawnDirector

	stats Stats
}

// NewGame creates a new game instance with no player. sink may be nil.
func NewGame(config Config, rng Rand, logger *zap.Logger, sink EntitySink) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Game{
		config:    config,
		world:     NewWorld(sink),
		rng:       rng,
		logger:    logger,
		collision: NewCollisionSystem(config.CollisionMode, config.CollisionCellSize),
		spawner:   NewSpawnDirector(config.SpawnChance, config.StrongEnemyChance, rng),
	}, nil
}

// SpawnPlayer creates the player at the configured start point holding the
// configured start weapon.
func (g *Game) SpawnPlayer() (donburi.Entity, error) {
	weaponType, err := ParseWeaponType(g.config.StartWeapon)
	if err != nil {
		var none donburi.Entity
		return none, err
	}
	start := TransformData{Position: geom.V(g.config.PlayerStartX, g.config.PlayerStartY)}
	entity, err := g.world.SpawnPlayer(start, NewWeapon(weaponType, g.config.BulletSpeed, g.rng))
	if err != nil {
		return entity, err
	}
	g.logger.Info("player spawned",
		zap.Float64("x", start.Position.X),
		zap.Float64("y", start.Position.Y),
		zap.String("weapon", g.config.StartWeapon))
	return entity, nil
}

// RemovePlayer destroys the player, and with it the weapon, at the end of the
// next tick.
func (g *Game) RemovePlayer() {
	if player, ok := g.world.PlayerEntry(); ok {
		g.world.QueueDestroy(player.Entity())
	}
}

// Tick runs one frame of the simulation.
func (g *Game) Tick(in Input) {
	dt := in.Delta
	if math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}
	dt = min(max(dt, 0), g.config.MaxDelta)
	vp := in.Viewport
	if vp.empty() {
		vp = g.config.Viewport()
	}
	g.stats.Frames++

	player, hasPlayer := g.world.PlayerEntry()
	if hasPlayer && g.world.Doomed(player.Entity()) {
		hasPlayer = false
	}

	if hasPlayer {
		g.handleRequests(player, in)
		movePlayer(player, in, g.config.MoveSpeed)
	}

	bullets := g.world.Bullets()
	moveBullets(bullets)

	if hasPlayer {
		aimPlayer(player, in, vp)
		g.fire(player, in, dt)
	}

	if t, variant, ok := g.spawner.Roll(vp); ok {
		g.world.QueueEnemy(t, variant)
		g.stats.Spawned++
		g.logger.Debug("enemy spawned",
			zap.Stringer("variant", variant),
			zap.Float64("x", t.Position.X),
			zap.Float64("y", t.Position.Y))
	}

	enemies := g.world.Enemies()
	if hasPlayer {
		steerEnemies(enemies, Transform.Get(player).Position)
	}

	hits := g.collision.CheckCollisions(g.world, enemies, bullets)
	g.stats.Kills += len(hits)
	g.stats.Culled += cullBullets(g.world, bullets, vp)

	g.world.Flush()
}

// handleRequests applies equip, unequip and reload requests.
func (g *Game) handleRequests(player *donburi.Entry, in Input) {
	p := Player.Get(player)

	if in.Equip != WeaponTypeNone && (p.Weapon == nil || p.Weapon.Type() != in.Equip) {
		p.Weapon = NewWeapon(in.Equip, g.config.BulletSpeed, g.rng)
		g.logger.Info("weapon equipped", zap.String("weapon", p.Weapon.Name()))
	}

	if in.Unequip && p.Weapon != nil {
		g.logger.Info("weapon unequipped", zap.String("weapon", p.Weapon.Name()))
		p.Weapon = nil
	}

	if in.Reload && p.Weapon != nil && !p.Weapon.Reloading() && p.Weapon.Rounds() < p.Weapon.Capacity() {
		p.Weapon.Reload()
		g.logger.Debug("manual reload", zap.String("weapon", p.Weapon.Name()))
	}
}

// fire lets the player's weapon shoot and queues the resulting bullets.
func (g *Game) fire(player *donburi.Entry, in Input, dt float64) {
	p := Player.Get(player)
	if p.Weapon == nil {
		return
	}

	shots := p.Weapon.Fire(dt, in.Fire, *Transform.Get(player), p.Aim)
	if len(shots) == 0 {
		return
	}
	for _, shot := range shots {
		g.world.QueueBullet(shot.Transform, shot.Velocity)
	}
	g.stats.Shots++
	g.stats.Bullets += len(shots)

	if p.Weapon.Reloading() {
		g.logger.Debug("magazine empty, reloading", zap.String("weapon", p.Weapon.Name()))
	}
}

// Status reports the player's weapon state.
func (g *Game) Status() Status {
	player, ok := g.world.PlayerEntry()
	if !ok {
		return Status{}
	}
	weapon := Player.Get(player).Weapon
	if weapon == nil {
		return Status{}
	}
	return Status{
		Armed:      true,
		WeaponName: weapon.Name(),
		Rounds:     weapon.Rounds(),
		Capacity:   weapon.Capacity(),
		Reloading:  weapon.Reloading(),
	}
}

// Player returns the player's view and aim angle.
func (g *Game) Player() (EntityView, float64, bool) {
	player, ok := g.world.PlayerEntry()
	if !ok {
		return EntityView{}, 0, false
	}
	return viewOf(player), Player.Get(player).Aim, true
}

// Stats returns running totals.
func (g *Game) Stats() Stats {
	return g.stats
}

// World exposes the entity table for read-only walks.
func (g *Game) World() *World {
	return g.world
}

// Config returns the configuration the game was built with.
func (g *Game) Config() Config {
	return g.config
}
