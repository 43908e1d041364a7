package game

import "github.com/yohamta/donburi"

// cullBullets queues every bullet outside the viewport for removal and
// returns how many were newly queued.
func cullBullets(w *World, bullets []*donburi.Entry, vp Viewport) int {
	culled := 0
	for _, entry := range bullets {
		if vp.Contains(Transform.Get(entry).Position) {
			continue
		}
		if w.QueueDestroy(entry.Entity()) {
			culled++
		}
	}
	return culled
}
