package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/rscedit/config"
	"github.com/milk9111/rscedit/event"
	"github.com/milk9111/rscedit/model"
	"github.com/milk9111/rscedit/render"
	"github.com/milk9111/rscedit/world"
)

var toggleKeys = map[ebiten.Key]model.DisplayProperty{
	ebiten.KeyR: model.ShowRoofs,
	ebiten.KeyO: model.ShowObjects,
	ebiten.KeyI: model.ShowItems,
	ebiten.KeyN: model.ShowNpcs,
	ebiten.KeyB: model.MapBrightnessLight,
}

// Editor is the Ebiten game hosting the landscape canvas.
type Editor struct {
	cfgPath string
	cfg     config.Config

	bus      *event.Bus
	display  *event.DisplayPublisher
	renderer *render.TileRenderer
	sector   *world.Sector
	brush    *world.Brush
	presets  []model.TerrainTemplate
	watcher  *config.Watcher

	ui    *ebitenui.UI
	panel *DisplayPanel
}

func NewEditor(cfgPath string, cfg config.Config, renderer *render.TileRenderer, sector *world.Sector, presets []model.TerrainTemplate) *Editor {
	e := &Editor{
		cfgPath:  cfgPath,
		cfg:      cfg,
		bus:      event.NewBus(),
		renderer: renderer,
		sector:   sector,
		brush:    world.NewBrush(),
		presets:  presets,
	}
	e.display = event.NewDisplayPublisher(e.bus, renderer.Display())
	e.bus.SubscribeDisplayConfiguration(renderer)
	e.bus.SubscribeTerrainPreset(e.brush)

	e.ui, e.panel = BuildEditorUI(renderer.Display(), presets, e.toggle, e.selectPreset, e.fillSector)
	return e
}

// Watch starts reloading the display section whenever the settings file
// changes on disk.
func (e *Editor) Watch() error {
	w, err := config.NewWatcher(e.cfgPath)
	if err != nil {
		return err
	}
	e.watcher = w
	return nil
}

func (e *Editor) Close() error {
	if e.watcher == nil {
		return nil
	}
	return e.watcher.Close()
}

func (e *Editor) toggle(p model.DisplayProperty) {
	e.display.Toggle(p)
}

func (e *Editor) selectPreset(idx int) {
	if idx < 0 || idx >= len(e.presets) {
		return
	}
	e.bus.Publish(event.TerrainPresetSelectedEvent{Template: &e.presets[idx]})
}

func (e *Editor) fillSector() {
	if n := e.brush.Fill(e.sector); n > 0 {
		log.Printf("filled %d tiles with %s", n, e.brush.Selected().Name)
	}
}

func (e *Editor) pollWatcher() {
	if e.watcher == nil {
		return
	}
	select {
	case _, ok := <-e.watcher.Events:
		if !ok {
			e.watcher = nil
			return
		}
		e.reloadConfig()
	case err, ok := <-e.watcher.Errors:
		if ok {
			log.Printf("config watcher error: %v", err)
		}
	default:
	}
}

func (e *Editor) reloadConfig() {
	cfg, changed, err := config.Reload(e.cfgPath, e.cfg.Display)
	if err != nil {
		log.Printf("config reload failed, keeping previous settings: %v", err)
		return
	}
	e.cfg.Display = cfg.Display
	if len(changed) == 0 {
		return
	}
	log.Printf("config reloaded from %s: %v", e.cfgPath, changed)
	e.display.Update(changed)
}

func (e *Editor) Update() error {
	e.pollWatcher()

	for key, prop := range toggleKeys {
		if inpututil.IsKeyJustPressed(key) {
			e.toggle(prop)
		}
	}
	for i := range e.presets {
		if i < 9 && inpututil.IsKeyJustPressed(ebiten.Key1+ebiten.Key(i)) {
			e.selectPreset(i)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		e.fillSector()
	}

	e.bus.Dispatch()
	e.panel.Sync(e.renderer.Display())
	e.ui.Update()
	return nil
}

func (e *Editor) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 24, 255})

	zoom := e.cfg.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	surface := render.NewEbitenSurface(screen, leftPanelW, 0, zoom)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	maxX := int(float64(w-leftPanelW) / zoom)
	maxY := int(float64(h) / zoom)
	e.sector.Visible(0, 0, maxX, maxY, func(t *model.Tile) {
		e.renderer.RenderTile(t, surface)
	})

	e.ui.Draw(screen)

	preset := "none"
	if sel := e.brush.Selected(); sel != nil {
		preset = sel.Name
	}
	status := fmt.Sprintf("sector %d,%d plane %d  preset: %s\nR/O/I/N/B toggle layers, 1-9 presets, F fill",
		e.sector.X, e.sector.Y, e.sector.Plane, preset)
	ebitenutil.DebugPrintAt(screen, status, leftPanelW+8, h-36)
}

func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
