package game

import (
	"github.com/yohamta/donburi"

	"zomshooter/geom"
)

// playerStep returns the player's displacement for one tick. Each held
// direction contributes speed on its axis and the sum is clamped to speed, so
// diagonals are no faster than straight lines.
func playerStep(in Input, speed float64) geom.Vec2 {
	var step geom.Vec2
	if in.Up {
		step.Y += speed
	}
	if in.Down {
		step.Y -= speed
	}
	if in.Left {
		step.X -= speed
	}
	if in.Right {
		step.X += speed
	}
	return step.ClampLength(speed)
}

// movePlayer applies keyboard movement to the player.
func movePlayer(player *donburi.Entry, in Input, speed float64) {
	t := Transform.Get(player)
	t.Position = t.Position.Add(playerStep(in, speed))
}

// moveBullets advances every bullet by its velocity.
func moveBullets(bullets []*donburi.Entry) {
	for _, entry := range bullets {
		t := Transform.Get(entry)
		t.Position = t.Position.Add(Velocity.Get(entry).Vec2)
	}
}

// steerEnemies moves every enemy straight at target and turns it to face it.
func steerEnemies(enemies []*donburi.Entry, target geom.Vec2) {
	for _, entry := range enemies {
		t := Transform.Get(entry)
		dir, ok := target.Sub(t.Position).Unit()
		if !ok {
			// Already on top of the target
			continue
		}
		speed := GetEnemyVariantConfig(Enemy.Get(entry).Variant).Speed
		t.Rotation = geom.AngleTo(t.Position, target)
		t.Position = t.Position.Add(dir.Scale(speed))
	}
}
