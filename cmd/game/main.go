package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/pufferdive/internal/application/game"
	"github.com/younwookim/pufferdive/internal/application/scene/playing"
	"github.com/younwookim/pufferdive/internal/infrastructure/config"
)

func main() {
	// Parse command line flags
	stageFlag := flag.String("stage", "demo", "Stage to play")
	configFlag := flag.String("config", "", "Config directory overriding the bundled one (physics.json, entities.json, stages/)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Re-simulate a recording without a window and print the result")
	watchFlag := flag.Bool("watch", false, "Reload the stage when its file changes (needs -config)")
	flag.Parse()

	loader := config.NewFSLoader(config.DefaultFS(), "defaults")
	if *configFlag != "" {
		loader = config.NewLoader(*configFlag)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *replayFlag != "" {
		if err := runReplay(cfg, loader, *replayFlag, *stageFlag, os.Stdout); err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		return
	}

	stageCfg, err := loader.LoadStage(*stageFlag)
	if err != nil {
		log.Fatalf("Failed to load stage: %v", err)
	}

	scene, err := playing.New(cfg, stageCfg, *recordFlag)
	if err != nil {
		log.Fatalf("Failed to start stage: %v", err)
	}

	if *watchFlag {
		if *configFlag == "" {
			log.Fatalf("-watch needs -config to point at the stage files")
		}
		w, err := config.NewWatcher(filepath.Join(*configFlag, "stages"))
		if err != nil {
			log.Fatalf("Failed to watch stages: %v", err)
		}
		defer func() { _ = w.Close() }()
		scene.WatchStages(w, loader)
		log.Printf("Watching %s for stage edits", filepath.Join(*configFlag, "stages"))
	}

	display := cfg.Physics.Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight)
	g.SetDT(1.0 / float64(display.Framerate))

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Pufferdive")
	ebiten.SetTPS(display.Framerate)

	// Run game
	err = ebiten.RunGame(g)
	g.Close()
	if err != nil {
		log.Fatal(err)
	}
}
