package game

import (
	"errors"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// ErrPlayerExists is returned when a second player would be created.
var ErrPlayerExists = errors.New("player already exists")

// EntitySink is told about every entity that enters or leaves the world. The
// rendering layer uses it to attach and drop visuals.
type EntitySink interface {
	EntityCreated(EntityView)
	EntityDestroyed(EntityView)
}

type nopSink struct{}

func (nopSink) EntityCreated(EntityView)   {}
func (nopSink) EntityDestroyed(EntityView) {}

// spawnRequest is a queued entity creation
type spawnRequest struct {
	kind      Kind
	transform TransformData
	velocity  VelocityData
	variant   EnemyVariant
}

// World is the entity table shared by all systems. Systems read it directly
// but create and destroy entities through the command buffer, which is
// applied by Flush at the end of a tick.
type World struct {
	ecs  donburi.World
	sink EntitySink

	playerQuery *donburi.Query
	bulletQuery *donburi.Query
	enemyQuery  *donburi.Query

	// Command buffer
	creates  []spawnRequest
	destroys []donburi.Entity
	doomed   map[donburi.Entity]struct{}
}

// NewWorld creates an empty world. A nil sink discards notifications.
func NewWorld(sink EntitySink) *World {
	if sink == nil {
		sink = nopSink{}
	}
	return &World{
		ecs:         donburi.NewWorld(),
		sink:        sink,
		playerQuery: donburi.NewQuery(filter.Contains(Player, Transform)),
		bulletQuery: donburi.NewQuery(filter.Contains(Bullet, Transform, Velocity)),
		enemyQuery:  donburi.NewQuery(filter.Contains(Enemy, Transform)),
		creates:     make([]spawnRequest, 0, 16),
		destroys:    make([]donburi.Entity, 0, 16),
		doomed:      make(map[donburi.Entity]struct{}),
	}
}

// SpawnPlayer creates the player immediately. Only one player may exist.
func (w *World) SpawnPlayer(t TransformData, weapon Weapon) (donburi.Entity, error) {
	if _, ok := w.PlayerEntry(); ok {
		var none donburi.Entity
		return none, ErrPlayerExists
	}
	entity := w.ecs.Create(Transform, Player)
	entry := w.ecs.Entry(entity)
	Transform.SetValue(entry, t)
	Player.SetValue(entry, PlayerData{Aim: t.Rotation, Weapon: weapon})
	w.sink.EntityCreated(viewOf(entry))
	return entity, nil
}

// PlayerEntry returns the player, if one exists.
func (w *World) PlayerEntry() (*donburi.Entry, bool) {
	return w.playerQuery.First(w.ecs)
}

// QueueBullet schedules a bullet for creation at the next Flush.
func (w *World) QueueBullet(t TransformData, v VelocityData) {
	w.creates = append(w.creates, spawnRequest{kind: KindBullet, transform: t, velocity: v})
}

// QueueEnemy schedules an enemy for creation at the next Flush.
func (w *World) QueueEnemy(t TransformData, variant EnemyVariant) {
	w.creates = append(w.creates, spawnRequest{kind: KindEnemy, transform: t, variant: variant})
}

// QueueDestroy schedules entity for removal. It reports false when the entity
// was already scheduled.
func (w *World) QueueDestroy(entity donburi.Entity) bool {
	if _, ok := w.doomed[entity]; ok {
		return false
	}
	w.doomed[entity] = struct{}{}
	w.destroys = append(w.destroys, entity)
	return true
}

// Doomed reports whether entity is scheduled for removal.
func (w *World) Doomed(entity donburi.Entity) bool {
	_, ok := w.doomed[entity]
	return ok
}

// Flush applies queued destroys, then queued creates, notifying the sink.
func (w *World) Flush() {
	for _, entity := range w.destroys {
		if !w.ecs.Valid(entity) {
			continue
		}
		view := viewOf(w.ecs.Entry(entity))
		w.ecs.Remove(entity)
		w.sink.EntityDestroyed(view)
	}

	for _, req := range w.creates {
		var entry *donburi.Entry
		switch req.kind {
		case KindBullet:
			entry = w.ecs.Entry(w.ecs.Create(Transform, Velocity, Bullet))
			Velocity.SetValue(entry, req.velocity)
		case KindEnemy:
			entry = w.ecs.Entry(w.ecs.Create(Transform, Enemy))
			Enemy.SetValue(entry, EnemyData{Variant: req.variant})
		default:
			panic("game: queued spawn of unsupported kind " + req.kind.String())
		}
		Transform.SetValue(entry, req.transform)
		w.sink.EntityCreated(viewOf(entry))
	}

	w.creates = w.creates[:0]
	w.destroys = w.destroys[:0]
	clear(w.doomed)
}

// Bullets returns the current bullets in table order.
func (w *World) Bullets() []*donburi.Entry {
	return w.collect(w.bulletQuery)
}

// Enemies returns the current enemies in table order.
func (w *World) Enemies() []*donburi.Entry {
	return w.collect(w.enemyQuery)
}

func (w *World) collect(q *donburi.Query) []*donburi.Entry {
	entries := make([]*donburi.Entry, 0, q.Count(w.ecs))
	q.Each(w.ecs, func(entry *donburi.Entry) {
		entries = append(entries, entry)
	})
	return entries
}

// Counts returns the number of live bullets and enemies.
func (w *World) Counts() (bullets, enemies int) {
	return w.bulletQuery.Count(w.ecs), w.enemyQuery.Count(w.ecs)
}

// Each calls fn for the player, then every enemy, then every bullet.
func (w *World) Each(fn func(EntityView)) {
	if entry, ok := w.PlayerEntry(); ok {
		fn(viewOf(entry))
	}
	w.enemyQuery.Each(w.ecs, func(entry *donburi.Entry) {
		fn(viewOf(entry))
	})
	w.bulletQuery.Each(w.ecs, func(entry *donburi.Entry) {
		fn(viewOf(entry))
	})
}

// Len returns the total number of entities.
func (w *World) Len() int {
	return w.ecs.Len()
}
