package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"zomshooter/game"
	"zomshooter/logging"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "YAML config file (defaults apply when empty)")
	seed := flag.String("seed", "headless", "random seed; empty seeds from the clock")
	logLevel := flag.String("log-level", "", "debug, info, warn or error")
	weapon := flag.String("weapon", "", "start weapon: none, pistol, shotgun or smg")
	ticks := flag.Int("ticks", 36000, "number of ticks to simulate")
	dt := flag.Float64("dt", 1.0/60, "seconds per tick")
	fireEvery := flag.Int("fire-every", 12, "pull the trigger every N ticks")
	strafe := flag.Int("strafe", 90, "ticks per strafe direction")
	profileDir := flag.String("profile-dir", "", "write a CPU profile and trace of the run here")
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

	if *profileDir != "" {
		p, err := startProfile(*profileDir, logger)
		if err != nil {
			logger.Fatal("failed to start profiling", zap.Error(err))
		}
		defer func() {
			if err := p.stop(); err != nil {
				logger.Error("failed to save profile", zap.Error(err))
			}
		}()
	}

	if _, err := run(config, logger, *ticks, *dt, newPilot(*strafe, *fireEvery)); err != nil {
		logger.Fatal("headless run failed", zap.Error(err))
	}
}

// run simulates ticks frames and logs the totals.
func run(config game.Config, logger *zap.Logger, ticks int, dt float64, p *pilot) (game.Stats, error) {
	g, err := game.NewGame(config, rand.New(rand.NewSource(config.SeedValue())), logger, nil)
	if err != nil {
		return game.Stats{}, err
	}
	if _, err := g.SpawnPlayer(); err != nil {
		return game.Stats{}, err
	}

	vp := config.Viewport()
	start := time.Now()
	for i := 0; i < ticks; i++ {
		g.Tick(p.next(g, vp, dt))
	}
	elapsed := time.Since(start)

	stats := g.Stats()
	bullets, enemies := g.World().Counts()
	spawnRate := 0.0
	if stats.Frames > 0 {
		spawnRate = float64(stats.Spawned) / float64(stats.Frames)
	}
	logger.Info("headless run finished",
		zap.Uint64("frames", stats.Frames),
		zap.Float64("spawn_rate", spawnRate),
		zap.Int("spawned", stats.Spawned),
		zap.Int("kills", stats.Kills),
		zap.Int("shots", stats.Shots),
		zap.Int("bullets_fired", stats.Bullets),
		zap.Int("culled", stats.Culled),
		zap.Int("enemies_alive", enemies),
		zap.Int("bullets_alive", bullets),
		zap.Duration("elapsed", elapsed))
	return stats, nil
}
