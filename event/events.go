package event

import "github.com/milk9111/rscedit/model"

// DisplayConfigurationUpdateEvent carries only the properties that changed.
type DisplayConfigurationUpdateEvent struct {
	UpdatedProperties map[model.DisplayProperty]bool
}

// TerrainPresetSelectedEvent is published when a preset is picked in the panel.
type TerrainPresetSelectedEvent struct {
	Template *model.TerrainTemplate
}

type DisplayConfigurationListener interface {
	OnDisplayConfigurationChanged(evt DisplayConfigurationUpdateEvent)
}

type TerrainPresetListener interface {
	OnTerrainPresetSelected(evt TerrainPresetSelectedEvent)
}

// Queue is a simple FIFO queue.
type Queue struct {
	items []any
}

// Push adds an event.
func (q *Queue) Push(evt any) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *Queue) Drain() []any {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
