package main

import (
	"flag"
	"log"
	"math/rand"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"zomshooter/client"
	"zomshooter/client/scene"
	"zomshooter/game"
	"zomshooter/logging"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "YAML config file (defaults apply when empty)")
	seed := flag.String("seed", "", "random seed; empty seeds from the clock")
	logLevel := flag.String("log-level", "", "debug, info, warn or error")
	weapon := flag.String("weapon", "", "start weapon: none, pistol, shotgun or smg")
	flag.Parse()

	config := game.DefaultConfig()
	if *configPath != "" {
		loaded, err := game.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		config = loaded
	}
	config = config.WithOverrides(*seed, *logLevel, *weapon)
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger, err := logging.New(config.LogLevel, config.LogEncoding)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()
	logger = logger.With(zap.String("run", uuid.NewString()))

	effects := scene.NewEffects()
	g, err := game.NewGame(config, rand.New(rand.NewSource(config.SeedValue())), logger, effects)
	if err != nil {
		logger.Fatal("failed to create game", zap.Error(err))
	}
	if _, err := g.SpawnPlayer(); err != nil {
		logger.Fatal("failed to spawn player", zap.Error(err))
	}

	// Set up window
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Zombie Shooter")
	ebiten.SetWindowResizable(true)

	logger.Info("starting game loop",
		zap.Int("width", config.ScreenWidth),
		zap.Int("height", config.ScreenHeight),
		zap.String("collision", config.CollisionMode))

	if err := ebiten.RunGame(client.New(g, effects, logger)); err != nil {
		logger.Fatal("game loop stopped", zap.Error(err))
	}
	stats := g.Stats()
	logger.Info("game closed", zap.Uint64("frames", stats.Frames), zap.Int("kills", stats.Kills))
}
