package game

// EnemyVariant defines different types of enemies
type EnemyVariant int

const (
	EnemyDefault EnemyVariant = iota // Quick, small
	EnemyStrong                      // Slow, large
)

// EnemyVariantConfig holds configuration for each enemy variant
type EnemyVariantConfig struct {
	Variant EnemyVariant
	Name    string
	Speed   float64 // units per tick
	Radius  float64 // bullets closer than this hit
}

// GetEnemyVariantConfig returns configuration for an enemy variant
func GetEnemyVariantConfig(variant EnemyVariant) EnemyVariantConfig {
	switch variant {
	case EnemyDefault:
		return EnemyVariantConfig{
			Variant: EnemyDefault,
			Name:    "default",
			Speed:   1.2,
			Radius:  10.0,
		}
	case EnemyStrong:
		return EnemyVariantConfig{
			Variant: EnemyStrong,
			Name:    "strong",
			Speed:   0.8,
			Radius:  15.0,
		}
	default:
		panic("game: unknown enemy variant")
	}
}

func (v EnemyVariant) String() string {
	return GetEnemyVariantConfig(v).Name
}

// pickEnemyVariant draws a variant; strongChance of the draws are Strong.
func pickEnemyVariant(rng Rand, strongChance float64) EnemyVariant {
	if rng.Float64() < strongChance {
		return EnemyStrong
	}
	return EnemyDefault
}
