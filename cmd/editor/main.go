package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/milk9111/rscedit/config"
	"github.com/milk9111/rscedit/defs"
	"github.com/milk9111/rscedit/locs"
	"github.com/milk9111/rscedit/model"
	"github.com/milk9111/rscedit/render"
	"github.com/milk9111/rscedit/world"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfgFlag := flag.String("config", "", "settings file (default $RSCEDIT_CONFIG or rscedit.yaml)")
	sectorX := flag.Int("sector-x", -1, "sector x to open (overrides settings)")
	sectorY := flag.Int("sector-y", -1, "sector y to open (overrides settings)")
	plane := flag.Int("plane", -1, "plane to open (overrides settings)")
	noWatch := flag.Bool("no-watch", false, "do not reload the settings file when it changes")
	flag.Parse()

	cfgPath := config.Path(*cfgFlag)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load settings: %v", err)
	}
	if *sectorX >= 0 {
		cfg.Sector.X = *sectorX
	}
	if *sectorY >= 0 {
		cfg.Sector.Y = *sectorY
	}
	if *plane >= 0 {
		cfg.Sector.Plane = *plane
	}

	definitions, err := defs.LoadDefinitions()
	if err != nil {
		log.Fatalf("load definitions: %v", err)
	}
	presets, err := defs.LoadPresets()
	if err != nil {
		log.Fatalf("load presets: %v", err)
	}
	locations, err := locs.Load(cfg.Locations)
	if err != nil {
		log.Fatalf("load locations: %v", err)
	}

	sector := world.NewSector(cfg.Sector.X, cfg.Sector.Y, cfg.Sector.Plane, cfg.TileSize)
	world.SeedSample(sector)

	renderer := render.NewTileRenderer(render.Options{
		Definitions: definitions,
		Locations:   locations,
		Palette:     model.NewGroundPalette(),
		Transform:   sector.Transform(),
		TileSize:    cfg.TileSize,
		Display:     cfg.Display,
	})

	editor := NewEditor(cfgPath, cfg, renderer, sector, presets)
	if !*noWatch {
		if err := editor.Watch(); err != nil {
			log.Printf("settings watcher disabled: %v", err)
		}
	}
	defer editor.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	canvas := world.SectorSize * cfg.TileSize
	ebiten.SetWindowSize(leftPanelW+canvas, canvas)
	ebiten.SetWindowTitle("rscedit")

	if err := ebiten.RunGame(editor); err != nil {
		log.Fatal(err)
	}
}
