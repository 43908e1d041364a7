package main

import (
	"math"

	"zomshooter/game"
	"zomshooter/geom"
)

// pilot scripts the player: it strafes left and right, aims at the nearest
// enemy and pulls the trigger every fireEvery frames.
type pilot struct {
	strafeFrames int
	fireEvery    int
	frame        int
}

func newPilot(strafeFrames, fireEvery int) *pilot {
	return &pilot{
		strafeFrames: max(strafeFrames, 1),
		fireEvery:    max(fireEvery, 1),
	}
}

// next builds the input for the coming tick.
func (p *pilot) next(g *game.Game, vp game.Viewport, dt float64) game.Input {
	in := game.Input{Viewport: vp, Delta: dt}

	if (p.frame/p.strafeFrames)%2 == 0 {
		in.Right = true
	} else {
		in.Left = true
	}

	if target, ok := nearestEnemy(g); ok {
		// Cursor is in viewport pixels with the origin bottom-left
		in.Cursor = geom.V(target.X+vp.Width/2, target.Y+vp.Height/2)
		in.HasCursor = true
		if p.frame%p.fireEvery == 0 {
			in.Fire = game.ButtonState{Pressed: true, JustPressed: true}
		}
	}

	p.frame++
	return in
}

// nearestEnemy finds the enemy closest to the player.
func nearestEnemy(g *game.Game) (geom.Vec2, bool) {
	player, _, ok := g.Player()
	if !ok {
		return geom.Vec2{}, false
	}
	best := math.Inf(1)
	var target geom.Vec2
	g.World().Each(func(v game.EntityView) {
		if v.Kind != game.KindEnemy {
			return
		}
		if d := geom.Distance(player.Transform.Position, v.Transform.Position); d < best {
			best = d
			target = v.Transform.Position
		}
	})
	return target, !math.IsInf(best, 1)
}
