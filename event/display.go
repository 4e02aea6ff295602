package event

import "github.com/milk9111/rscedit/model"

// DisplayPublisher publishes display updates and tracks the configuration
// listeners will hold once the queue is dispatched, so a toggle never reads
// a value an earlier queued update is about to replace.
type DisplayPublisher struct {
	bus     *Bus
	pending model.DisplayConfiguration
}

func NewDisplayPublisher(bus *Bus, initial model.DisplayConfiguration) *DisplayPublisher {
	return &DisplayPublisher{bus: bus, pending: initial}
}

// Toggle flips p and returns its new value.
func (d *DisplayPublisher) Toggle(p model.DisplayProperty) bool {
	next := !d.pending.Get(p)
	d.Update(map[model.DisplayProperty]bool{p: next})
	return next
}

// Update publishes changes. Empty updates are dropped.
func (d *DisplayPublisher) Update(changes map[model.DisplayProperty]bool) {
	if len(changes) == 0 {
		return
	}
	d.pending = d.pending.With(changes)
	d.bus.Publish(DisplayConfigurationUpdateEvent{UpdatedProperties: changes})
}

func (d *DisplayPublisher) Pending() model.DisplayConfiguration {
	return d.pending
}
