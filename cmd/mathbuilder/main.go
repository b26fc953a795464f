package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/mathbuilder/prefabs"
	"github.com/milk9111/mathbuilder/save"
)

func main() {
	levelNum := flag.Int("level", 0, "level number to open (default: highest unlocked)")
	saveDir := flag.String("save-dir", defaultSaveDir(), "directory holding the save file")
	debug := flag.Bool("debug", false, "draw the tile grid")
	reset := flag.Bool("reset", false, "erase saved progress before starting")
	flag.Parse()

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatalf("load game spec: %v", err)
	}
	bridgeSpec, err := prefabs.LoadBridgeSpec()
	if err != nil {
		log.Printf("load bridge spec: %v; using defaults", err)
		bridgeSpec = prefabs.DefaultBridgeSpec()
	}

	backend, err := save.NewFileBackend(*saveDir)
	if err != nil {
		log.Fatal(err)
	}
	store := save.NewStore(backend,
		save.WithKey(spec.SaveKey),
		save.WithLevelCount(spec.LevelCount),
		save.WithXPPerStar(spec.XPPerStar),
		save.WithLogger(log.Default()),
	)
	if *reset {
		if err := store.Clear(); err != nil {
			log.Fatal(err)
		}
	}

	game, err := NewGame(spec, bridgeSpec, store, *levelNum, *debug)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(spec.Screen.Width, spec.Screen.Height)
	ebiten.SetWindowTitle(spec.Name)

	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func defaultSaveDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "saves"
	}
	return filepath.Join(dir, "mathbuilder")
}
