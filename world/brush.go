package world

import (
	"log"

	"github.com/milk9111/rscedit/event"
	"github.com/milk9111/rscedit/model"
)

// Brush holds the terrain preset most recently selected in the panel.
type Brush struct {
	selected *model.TerrainTemplate
}

var _ event.TerrainPresetListener = (*Brush)(nil)

func NewBrush() *Brush { return &Brush{} }

func (b *Brush) OnTerrainPresetSelected(evt event.TerrainPresetSelectedEvent) {
	b.selected = evt.Template
	if evt.Template != nil {
		log.Printf("terrain preset selected: %s", evt.Template.Name)
	}
}

func (b *Brush) Selected() *model.TerrainTemplate { return b.selected }

// Fill applies the selected preset to every tile of s and returns how many
// tiles were touched.
func (b *Brush) Fill(s *Sector) int {
	if b == nil || b.selected == nil || s == nil {
		return 0
	}
	n := 0
	for _, t := range s.Tiles() {
		*t = b.selected.Apply(*t)
		n++
	}
	return n
}
