package game

import (
	"github.com/yohamta/donburi"

	"zomshooter/geom"
)

// aimPlayer turns the player toward the cursor. Without a cursor the previous
// aim is kept.
func aimPlayer(player *donburi.Entry, in Input, vp Viewport) {
	if !in.HasCursor {
		return
	}
	cursor := vp.CenterCursor(in.Cursor.X, in.Cursor.Y)
	t := Transform.Get(player)
	if cursor == t.Position {
		return
	}
	angle := geom.AngleTo(t.Position, cursor)
	t.Rotation = angle
	Player.Get(player).Aim = angle
}
