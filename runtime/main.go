package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"Fishtank3D/internal/behaviour"
	"Fishtank3D/internal/config"
	"Fishtank3D/internal/engine"
	"Fishtank3D/internal/logger"
	"Fishtank3D/internal/scene"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var tankSim *engine.Aquarium

func main() {
	fmt.Println("Starting aquarium...")

	if err := config.Load("."); err != nil {
		fmt.Printf("No usable config file, running on defaults: %v\n", err)
	}
	logger.Init()
	defer logger.Sync()
	logger.SetLevel(config.GetString("logLevel"))

	logger.Log.Info("Available scripts", zap.Strings("scripts", behaviour.GetAvailableScripts()))

	scenePath := findAsset(config.GetString("scenePath"))
	if scenePath == "" {
		logger.Log.Fatal("Scene file not found", zap.String("scene", config.GetString("scenePath")))
	}

	data, err := scene.Load(scenePath)
	if err != nil {
		logger.Log.Fatal("Scene rejected", zap.Error(err))
	}
	debugDraw := config.GetBool("debugDraw")
	if err := spawnScene(data, debugDraw); err != nil {
		logger.Log.Fatal("Scene spawn failed", zap.Error(err))
	}
	behaviour.GlobalBehaviourManager.Add(&StatsBehaviour{})

	tankSim = engine.NewAquarium(engine.Options{
		TickRate:  config.GetInt("sim.tickRate"),
		FixedStep: float32(config.GetFloat64("sim.fixedStep")),
		RunFor:    config.GetFloat64("sim.runSeconds"),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	reload := make(chan struct{}, 1)
	if config.GetBool("watchScene") {
		watcher, werr := NewSceneWatcher(scenePath)
		if werr != nil {
			logger.Log.Warn("Scene watching unavailable", zap.Error(werr))
		} else {
			defer watcher.Close()
			g.Go(func() error {
				for {
					select {
					case <-ctx.Done():
						return nil
					case _, ok := <-watcher.Events:
						if !ok {
							return nil
						}
						select {
						case reload <- struct{}{}:
						default:
						}
					case werr, ok := <-watcher.Errors:
						if !ok {
							return nil
						}
						logger.Log.Warn("Scene watcher error", zap.Error(werr))
					}
				}
			})
		}
	}

	// Reloads apply between ticks so the simulation stays single threaded.
	tankSim.SetOnTickCallback(func(deltaTime float64) {
		select {
		case <-reload:
			reloadScene(scenePath, debugDraw)
		default:
		}
	})

	g.Go(func() error {
		return tankSim.Run(ctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Log.Fatal("Simulation failed", zap.Error(err))
	}
}

// reloadScene re-reads the scene file. A broken file leaves the
// running population untouched.
func reloadScene(path string, debug bool) {
	data, err := scene.Load(path)
	if err != nil {
		logger.Log.Error("Scene reload rejected, keeping current scene", zap.Error(err))
		return
	}
	if err := spawnScene(data, debug); err != nil {
		logger.Log.Error("Scene respawn failed", zap.Error(err))
		return
	}
	logger.Log.Info("Scene reloaded", zap.String("scene", path))
}

func findAsset(name string) string {
	exePath, _ := os.Executable()
	exeDir := filepath.Dir(exePath)

	paths := []string{
		filepath.Join(exeDir, "assets", name),
		filepath.Join(exeDir, name),
		filepath.Join("assets", name),
		name,
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
