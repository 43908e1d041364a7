package game

import (
	"github.com/yohamta/donburi"

	"zomshooter/geom"
)

// Kind identifies the role of an entity
type Kind int

const (
	KindPlayer Kind = iota
	KindBullet
	KindEnemy
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBullet:
		return "bullet"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// TransformData is an entity's position and facing.
type TransformData struct {
	Position geom.Vec2
	Rotation float64
}

// VelocityData is a per-tick displacement. Only bullets carry one.
type VelocityData struct {
	geom.Vec2
}

// PlayerData is the state of the single player entity.
type PlayerData struct {
	// Aim is the angle from the player toward the cursor
	Aim float64

	// Weapon is nil while unarmed
	Weapon Weapon
}

// EnemyData marks a zombie and selects its speed and collision radius.
type EnemyData struct {
	Variant EnemyVariant
}

var (
	Transform = donburi.NewComponentType[TransformData]()
	Velocity  = donburi.NewComponentType[VelocityData]()
	Player    = donburi.NewComponentType[PlayerData]()
	Enemy     = donburi.NewComponentType[EnemyData]()

	// Bullet is a tag; bullets are otherwise Transform + Velocity.
	Bullet = donburi.NewComponentType[struct{}]()
)

// EntityView is a read-only copy of an entity handed to collaborators.
type EntityView struct {
	Entity    donburi.Entity
	Kind      Kind
	Variant   EnemyVariant
	Transform TransformData
}

func kindOf(entry *donburi.Entry) Kind {
	switch {
	case entry.HasComponent(Player):
		return KindPlayer
	case entry.HasComponent(Bullet):
		return KindBullet
	default:
		return KindEnemy
	}
}

func viewOf(entry *donburi.Entry) EntityView {
	v := EntityView{
		Entity:    entry.Entity(),
		Kind:      kindOf(entry),
		Transform: *Transform.Get(entry),
	}
	if v.Kind == KindEnemy {
		v.Variant = Enemy.Get(entry).Variant
	}
	return v
}
