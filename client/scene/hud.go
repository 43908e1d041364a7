package scene

import (
	"fmt"

	"zomshooter/game"
)

// StatusLine formats the weapon readout.
func StatusLine(s game.Status) string {
	if !s.Armed {
		return "Unarmed  [1] Pistol [2] Shotgun [3] SMG"
	}
	if s.Reloading {
		return fmt.Sprintf("%s  reloading...", s.WeaponName)
	}
	return fmt.Sprintf("%s  %d/%d", s.WeaponName, s.Rounds, s.Capacity)
}

// StatsLine formats the running totals.
func StatsLine(s game.Stats, enemies, bullets int) string {
	return fmt.Sprintf("Kills: %d | Enemies: %d | Bullets: %d | Shots: %d",
		s.Kills, enemies, bullets, s.Shots)
}
