// Package client runs the simulation in an ebiten window.
package client

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"zomshooter/client/scene"
	"zomshooter/game"
)

// Client implements ebiten.Game around a game.Game
type Client struct {
	game     *game.Game
	effects  *scene.Effects
	camera   *scene.Camera
	renderer *Renderer
	debug    *debugState
	logger   *zap.Logger

	lastUpdateTime time.Time
	maxDelta       float64
}

// New creates a client. effects must be the sink g was built with.
func New(g *game.Game, effects *scene.Effects, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg := g.Config()
	camera := scene.NewCamera(float64(cfg.ScreenWidth), float64(cfg.ScreenHeight))
	debug := &debugState{}
	return &Client{
		game:           g,
		effects:        effects,
		camera:         camera,
		renderer:       NewRenderer(camera, debug),
		debug:          debug,
		logger:         logger,
		lastUpdateTime: time.Now(),
		maxDelta:       cfg.MaxDelta,
	}
}

// Update advances the simulation by one tick
func (c *Client) Update() error {
	// Calculate delta time
	now := time.Now()
	deltaTime := now.Sub(c.lastUpdateTime).Seconds()
	c.lastUpdateTime = now

	// Clamp delta time to prevent large jumps
	if deltaTime > c.maxDelta {
		deltaTime = c.maxDelta
	}

	handleFullscreen()
	c.debug.update()
	c.game.Tick(pollInput(c.camera, deltaTime))
	c.effects.Update(deltaTime)
	return nil
}

// Draw renders the game
func (c *Client) Draw(screen *ebiten.Image) {
	c.renderer.Render(screen, c.game, c.effects)
}

// Layout tracks the window size so the play area follows resizes
func (c *Client) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := float64(outsideWidth), float64(outsideHeight)
	if w != c.camera.Width || h != c.camera.Height {
		c.logger.Debug("viewport resized", zap.Int("width", outsideWidth), zap.Int("height", outsideHeight))
		c.camera.Resize(w, h)
	}
	return outsideWidth, outsideHeight
}
