package game

import (
	"fmt"
	"strings"

	"zomshooter/geom"
)

// WeaponType defines different types of weapons
type WeaponType int

const (
	WeaponTypeNone WeaponType = iota
	WeaponTypePistol
	WeaponTypeShotgun
	WeaponTypeSMG
)

// TriggerMode decides which button state fires a weapon
type TriggerMode int

const (
	TriggerSemi TriggerMode = iota // one shot per press
	TriggerAuto                    // fires while held
)

// WeaponConfig holds configuration for each weapon type
type WeaponConfig struct {
	Type            WeaponType
	Name            string
	Magazine        int     // shots per magazine
	ShotDelay       float64 // seconds between shots
	ReloadTime      float64 // seconds
	Pellets         int     // bullets per shot
	Spread          float64 // max angle offset per pellet, radians
	Trigger         TriggerMode
	InitialCooldown float64 // seconds before the first shot after equipping
}

// GetWeaponConfig returns configuration for a weapon type
func GetWeaponConfig(weaponType WeaponType) WeaponConfig {
	switch weaponType {
	case WeaponTypePistol:
		return WeaponConfig{
			Type:       WeaponTypePistol,
			Name:       "Pistol",
			Magazine:   7,
			ShotDelay:  0.01,
			ReloadTime: 0.8,
			Pellets:    1,
			Trigger:    TriggerSemi,
		}
	case WeaponTypeShotgun:
		return WeaponConfig{
			Type:            WeaponTypeShotgun,
			Name:            "Shotgun",
			Magazine:        2,
			ShotDelay:       0.5,
			ReloadTime:      1.0,
			Pellets:         5,
			Spread:          0.1,
			Trigger:         TriggerSemi,
			InitialCooldown: 0.2,
		}
	case WeaponTypeSMG:
		return WeaponConfig{
			Type:       WeaponTypeSMG,
			Name:       "SMG",
			Magazine:   30,
			ShotDelay:  0.08,
			ReloadTime: 1.5,
			Pellets:    1,
			Spread:     0.05,
			Trigger:    TriggerAuto,
		}
	default:
		panic(fmt.Sprintf("game: no config for weapon type %d", weaponType))
	}
}

// ParseWeaponType maps a config name onto a WeaponType.
func ParseWeaponType(name string) (WeaponType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return WeaponTypeNone, nil
	case "pistol":
		return WeaponTypePistol, nil
	case "shotgun":
		return WeaponTypeShotgun, nil
	case "smg":
		return WeaponTypeSMG, nil
	default:
		return WeaponTypeNone, fmt.Errorf("unknown weapon %q", name)
	}
}

// Shot is a bullet a weapon wants spawned.
type Shot struct {
	Transform TransformData
	Velocity  VelocityData
}

// Weapon is a firearm the player can hold.
type Weapon interface {
	// Fire advances the weapon by dt seconds and returns the bullets fired,
	// if any, from origin toward aim.
	Fire(dt float64, trigger ButtonState, origin TransformData, aim float64) []Shot

	// Reload refills the magazine and blocks firing for the reload time.
	Reload()

	Rounds() int
	Capacity() int
	Reloading() bool
	Name() string
	Type() WeaponType
}

// magazineWeapon implements every WeaponType; behavior comes from its config.
type magazineWeapon struct {
	config      WeaponConfig
	bulletSpeed float64
	rng         Rand

	cooldown  float64
	rounds    int
	reloading bool
}

// NewWeapon creates a loaded weapon of the given type. WeaponTypeNone yields nil.
func NewWeapon(weaponType WeaponType, bulletSpeed float64, rng Rand) Weapon {
	if weaponType == WeaponTypeNone {
		return nil
	}
	config := GetWeaponConfig(weaponType)
	return &magazineWeapon{
		config:      config,
		bulletSpeed: bulletSpeed,
		rng:         rng,
		cooldown:    config.InitialCooldown,
		rounds:      config.Magazine,
	}
}

func (w *magazineWeapon) Fire(dt float64, trigger ButtonState, origin TransformData, aim float64) []Shot {
	w.cooldown -= dt
	if w.cooldown > 0 {
		return nil
	}
	w.cooldown = 0
	w.reloading = false

	if !w.triggered(trigger) {
		return nil
	}

	shots := make([]Shot, 0, w.config.Pellets)
	for i := 0; i < w.config.Pellets; i++ {
		angle := aim
		if w.config.Spread > 0 {
			angle += (w.rng.Float64()*2 - 1) * w.config.Spread
		}
		shots = append(shots, Shot{
			Transform: TransformData{Position: origin.Position, Rotation: angle},
			Velocity:  VelocityData{geom.FromAngle(angle).Scale(w.bulletSpeed)},
		})
	}

	w.rounds--
	if w.rounds <= 0 {
		w.Reload()
	} else {
		w.cooldown = w.config.ShotDelay
	}
	return shots
}

func (w *magazineWeapon) triggered(trigger ButtonState) bool {
	if w.config.Trigger == TriggerAuto {
		return trigger.Pressed
	}
	return trigger.JustPressed
}

func (w *magazineWeapon) Reload() {
	w.cooldown = w.config.ReloadTime
	w.rounds = w.config.Magazine
	w.reloading = true
}

func (w *magazineWeapon) Rounds() int      { return w.rounds }
func (w *magazineWeapon) Capacity() int    { return w.config.Magazine }
func (w *magazineWeapon) Reloading() bool  { return w.reloading }
func (w *magazineWeapon) Name() string     { return w.config.Name }
func (w *magazineWeapon) Type() WeaponType { return w.config.Type }
