package main

import (
	"flag"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/milk9111/rscedit/config"
	"github.com/milk9111/rscedit/defs"
	"github.com/milk9111/rscedit/locs"
	"github.com/milk9111/rscedit/model"
	"github.com/milk9111/rscedit/render"
	"github.com/milk9111/rscedit/world"
)

// snapshot renders the sample sector to a PNG with the same tile renderer the
// editor uses, which is handy for eyeballing definition changes.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfgFlag := flag.String("config", "", "settings file (default $RSCEDIT_CONFIG or rscedit.yaml)")
	out := flag.String("out", "sector.png", "output png")
	flag.Parse()

	cfg, err := config.Load(config.Path(*cfgFlag))
	if err != nil {
		log.Fatalf("load settings: %v", err)
	}
	definitions, err := defs.LoadDefinitions()
	if err != nil {
		log.Fatalf("load definitions: %v", err)
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

	size := world.SectorSize * cfg.TileSize
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{20, 20, 24, 255}}, image.Point{}, draw.Src)

	surface := render.NewImageSurface(img)
	for _, t := range sector.Tiles() {
		renderer.RenderTile(t, surface)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s: %v", *out, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("encode %s: %v", *out, err)
	}
	log.Printf("wrote %s (%dx%d)", *out, size, size)
}
