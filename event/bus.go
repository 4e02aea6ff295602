package event

// Bus routes editor events to explicitly registered listeners. Publish only
// queues; listeners run inside Dispatch, which the editor calls once per
// frame on its update goroutine.
type Bus struct {
	queue   Queue
	display []DisplayConfigurationListener
	presets []TerrainPresetListener
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) SubscribeDisplayConfiguration(l DisplayConfigurationListener) {
	if b == nil || l == nil {
		return
	}
	b.display = append(b.display, l)
}

func (b *Bus) SubscribeTerrainPreset(l TerrainPresetListener) {
	if b == nil || l == nil {
		return
	}
	b.presets = append(b.presets, l)
}

// Publish queues evt for the next Dispatch.
func (b *Bus) Publish(evt any) {
	if b == nil {
		return
	}
	b.queue.Push(evt)
}

// Pending returns the number of queued events.
func (b *Bus) Pending() int {
	if b == nil {
		return 0
	}
	return b.queue.Len()
}

// Dispatch delivers every queued event in FIFO order, each to its listeners in
// registration order, and returns how many events were delivered. Events
// published by a listener wait for the next Dispatch.
func (b *Bus) Dispatch() int {
	if b == nil {
		return 0
	}
	events := b.queue.Drain()
	delivered := 0
	for _, evt := range events {
		switch e := evt.(type) {
		case DisplayConfigurationUpdateEvent:
			for _, l := range b.display {
				l.OnDisplayConfigurationChanged(e)
			}
		case *DisplayConfigurationUpdateEvent:
			if e == nil {
				continue
			}
			for _, l := range b.display {
				l.OnDisplayConfigurationChanged(*e)
			}
		case TerrainPresetSelectedEvent:
			for _, l := range b.presets {
				l.OnTerrainPresetSelected(e)
			}
		case *TerrainPresetSelectedEvent:
			if e == nil {
				continue
			}
			for _, l := range b.presets {
				l.OnTerrainPresetSelected(*e)
			}
		default:
			continue
		}
		delivered++
	}
	return delivered
}
