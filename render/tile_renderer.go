package render

import (
	"image/color"

	"github.com/milk9111/rscedit/defs"
	"github.com/milk9111/rscedit/event"
	"github.com/milk9111/rscedit/locs"
	"github.com/milk9111/rscedit/model"
)

const (
	DefaultTileSize = 20
	tileStrokeWidth = 2
	markerInset     = 8
)

// CoordinateTransform maps a tile's canvas position to its world coordinate.
type CoordinateTransform interface {
	ToWorld(x, y int) model.Point
}

type Options struct {
	Definitions *defs.Definitions
	Locations   *locs.Locations
	Palette     model.GroundPalette
	Transform   CoordinateTransform
	TileSize    int
	Display     model.DisplayConfiguration
}

// TileRenderer paints single tiles. It holds the current display
// configuration snapshot and replaces it when an update event arrives.
type TileRenderer struct {
	defs      *defs.Definitions
	locs      *locs.Locations
	palette   model.GroundPalette
	transform CoordinateTransform
	size      int

	display model.DisplayConfiguration
}

var _ event.DisplayConfigurationListener = (*TileRenderer)(nil)

func NewTileRenderer(opts Options) *TileRenderer {
	r := &TileRenderer{
		defs:      opts.Definitions,
		locs:      opts.Locations,
		palette:   opts.Palette,
		transform: opts.Transform,
		size:      opts.TileSize,
		display:   opts.Display,
	}
	if r.size <= 0 {
		r.size = DefaultTileSize
	}
	if r.palette == nil {
		r.palette = model.NewGroundPalette()
	}
	if r.locs == nil {
		r.locs = &locs.Locations{}
	}
	if r.transform == nil {
		r.transform = gridTransform{size: r.size}
	}
	return r
}

func (r *TileRenderer) TileSize() int { return r.size }

func (r *TileRenderer) Display() model.DisplayConfiguration { return r.display }

// RenderTile draws t onto s: ground, overlay, walls, roof outline and markers.
// A nil tile draws nothing.
func (r *TileRenderer) RenderTile(t *model.Tile, s Surface) {
	if t == nil || s == nil {
		return
	}

	s.SetStrokeWidth(tileStrokeWidth)
	shape := t.Bounds(r.size)

	if t.GroundTexture >= 0 {
		if c, ok := r.palette.Color(t.GroundTexture); ok {
			if !r.display.Get(model.MapBrightnessLight) {
				c = model.Darker(model.Darker(c))
			}
			s.SetColor(c)
			s.Fill(shape)
			s.Stroke(shape)
		}
	}

	if overlay, ok := r.defs.Overlay(t.GroundOverlay); ok {
		s.SetColor(overlay.Color.RGBA8())
		s.Fill(shape)
		s.Stroke(shape)

		if !overlay.Passable {
			drawLine(s, t, r.size, DiagonalFromTopRight, ImpassibleTerrainOutline)
			drawLine(s, t, r.size, DiagonalFromTopLeft, ImpassibleTerrainOutline)
		}
	}

	if r.defs.IsWall(t.TopBorderWall) {
		drawLine(s, t, r.size, BorderTop, WallOutline)
	}
	if r.defs.IsWall(t.RightBorderWall) {
		drawLine(s, t, r.size, BorderRight, WallOutline)
	}
	if r.defs.IsWall(t.DiagonalWalls) {
		drawLine(s, t, r.size, DiagonalFromTopRight, WallOutline)
	}
	if r.defs.IsBackwardDiagonal(t.DiagonalWalls) {
		drawLine(s, t, r.size, DiagonalFromTopLeft, WallOutline)
	}

	if r.display.Get(model.ShowRoofs) && t.RoofTexture != 0 {
		// unknown roof codes stay visible in green so bad data shows up
		if r.defs.IsRoof(t.RoofTexture) {
			s.SetColor(KnownRoofOutline)
		} else {
			s.SetColor(UnknownRoofOutline)
		}
		s.Stroke(rectWH(t.X+1, t.Y, r.size-1, r.size-1))
	}

	r.renderPeripherals(t, s)
}

func (r *TileRenderer) renderPeripherals(t *model.Tile, s Surface) {
	p := r.transform.ToWorld(t.X, t.Y)

	showObjects := r.display.Get(model.ShowObjects)
	showItems := r.display.Get(model.ShowItems)
	showNpcs := r.display.Get(model.ShowNpcs)

	if showObjects && r.locs.Scenery.Has(p) {
		r.fillInnerTile(t, s, SceneryMarker)
	}
	if showObjects && r.locs.Boundaries.Has(p) {
		r.fillInnerTile(t, s, SceneryMarker)
	}
	if showItems && r.locs.Items.Has(p) {
		r.fillInnerTile(t, s, ItemMarker)
	}
	if showNpcs && r.locs.Npcs.Has(p) {
		r.fillInnerTile(t, s, NpcMarker)
	}
}

func (r *TileRenderer) fillInnerTile(t *model.Tile, s Surface, c color.Color) {
	inner := rectWH(
		t.X+1+markerInset/2,
		t.Y+markerInset/2,
		r.size-1-markerInset,
		r.size-1-markerInset,
	)
	s.SetColor(c)
	s.Fill(inner)
	s.Stroke(inner)
}

// OnDisplayConfigurationChanged layers the changed properties over the held
// snapshot.
func (r *TileRenderer) OnDisplayConfigurationChanged(evt event.DisplayConfigurationUpdateEvent) {
	r.display = r.display.With(evt.UpdatedProperties)
}

// gridTransform treats canvas tiles as world tiles from the origin.
type gridTransform struct {
	size int
}

func (g gridTransform) ToWorld(x, y int) model.Point {
	return model.Point{X: x / g.size, Y: y / g.size}
}
