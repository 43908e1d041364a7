package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"zomshooter/geom"
)

func TestCullRemovesOnlyOutsideBullets(t *testing.T) {
	vp := Viewport{Width: 1024, Height: 768}
	w := NewWorld(nil)
	placeBullet(w, 512.001, 0)
	placeBullet(w, 512, 0)
	placeBullet(w, -512, -384)
	placeBullet(w, 0, 384.001)
	placeBullet(w, 0, -400)
	placeBullet(w, 10, 10)
	w.Flush()

	culled := cullBullets(w, w.Bullets(), vp)
	w.Flush()

	assert.Equal(t, 3, culled)
	assert.ElementsMatch(t,
		[]geom.Vec2{geom.V(512, 0), geom.V(-512, -384), geom.V(10, 10)},
		positions(w, KindBullet))
}

func TestCullSkipsBulletsAlreadyQueued(t *testing.T) {
	vp := Viewport{Width: 100, Height: 100}
	w := NewWorld(nil)
	placeBullet(w, 80, 0)
	w.Flush()

	bullets := w.Bullets()
	w.QueueDestroy(bullets[0].Entity())
	assert.Equal(t, 0, cullBullets(w, bullets, vp))
	w.Flush()

	bulletCount, _ := w.Counts()
	assert.Equal(t, 0, bulletCount)
}

func TestViewportContains(t *testing.T) {
	vp := Viewport{Width: 200, Height: 100}
	assert.True(t, vp.Contains(geom.V(100, 50)))
	assert.True(t, vp.Contains(geom.V(-100, -50)))
	assert.False(t, vp.Contains(geom.V(100.0001, 0)))
	assert.False(t, vp.Contains(geom.V(0, -50.0001)))
}
