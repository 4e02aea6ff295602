package event

import (
	"testing"

	"github.com/milk9111/rscedit/model"
)

type recordingListener struct {
	name  string
	log   *[]string
	onEvt func()
}

func (r *recordingListener) OnDisplayConfigurationChanged(evt DisplayConfigurationUpdateEvent) {
	for p, v := range evt.UpdatedProperties {
		if v {
			*r.log = append(*r.log, r.name+":"+string(p)+"=on")
		} else {
			*r.log = append(*r.log, r.name+":"+string(p)+"=off")
		}
	}
	if r.onEvt != nil {
		r.onEvt()
	}
}

func (r *recordingListener) OnTerrainPresetSelected(evt TerrainPresetSelectedEvent) {
	name := "<nil>"
	if evt.Template != nil {
		name = evt.Template.Name
	}
	*r.log = append(*r.log, r.name+":preset="+name)
}

func TestBusDispatchOrder(t *testing.T) {
	var log []string
	b := NewBus()
	first := &recordingListener{name: "a", log: &log}
	second := &recordingListener{name: "b", log: &log}
	b.SubscribeDisplayConfiguration(first)
	b.SubscribeDisplayConfiguration(second)
	b.SubscribeTerrainPreset(first)

	b.Publish(DisplayConfigurationUpdateEvent{UpdatedProperties: map[model.DisplayProperty]bool{model.ShowRoofs: false}})
	b.Publish(&TerrainPresetSelectedEvent{Template: &model.TerrainTemplate{Name: "Road"}})
	b.Publish(&DisplayConfigurationUpdateEvent{UpdatedProperties: map[model.DisplayProperty]bool{model.ShowNpcs: true}})

	if b.Pending() != 3 {
		t.Fatalf("expected 3 pending events, got %d", b.Pending())
	}
	if len(log) != 0 {
		t.Fatalf("Publish must not deliver synchronously, got %v", log)
	}

	if n := b.Dispatch(); n != 3 {
		t.Fatalf("expected 3 delivered events, got %d", n)
	}

	want := []string{
		"a:SHOW_ROOFS=off",
		"b:SHOW_ROOFS=off",
		"a:preset=Road",
		"a:SHOW_NPCS=on",
		"b:SHOW_NPCS=on",
	}
	if len(log) != len(want) {
		t.Fatalf("expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("entry %d: expected %q, got %q (all: %v)", i, want[i], log[i], log)
		}
	}
	if b.Pending() != 0 {
		t.Fatalf("queue should be empty after dispatch")
	}
}

func TestBusIgnoresUnknownAndNil(t *testing.T) {
	var log []string
	b := NewBus()
	b.SubscribeDisplayConfiguration(&recordingListener{name: "a", log: &log})
	b.SubscribeDisplayConfiguration(nil)

	b.Publish("not an event")
	b.Publish((*DisplayConfigurationUpdateEvent)(nil))
	if n := b.Dispatch(); n != 0 {
		t.Fatalf("expected nothing delivered, got %d", n)
	}
	if len(log) != 0 {
		t.Fatalf("expected no listener calls, got %v", log)
	}

	var nilBus *Bus
	nilBus.Publish(DisplayConfigurationUpdateEvent{})
	if nilBus.Dispatch() != 0 || nilBus.Pending() != 0 {
		t.Fatalf("nil bus should be inert")
	}
}

func TestBusReentrantPublishWaitsForNextDispatch(t *testing.T) {
	var log []string
	b := NewBus()
	l := &recordingListener{name: "a", log: &log}
	l.onEvt = func() {
		l.onEvt = nil
		b.Publish(DisplayConfigurationUpdateEvent{UpdatedProperties: map[model.DisplayProperty]bool{model.ShowItems: false}})
	}
	b.SubscribeDisplayConfiguration(l)

	b.Publish(DisplayConfigurationUpdateEvent{UpdatedProperties: map[model.DisplayProperty]bool{model.ShowRoofs: true}})
	if n := b.Dispatch(); n != 1 {
		t.Fatalf("expected 1 event in first dispatch, got %d", n)
	}
	if b.Pending() != 1 {
		t.Fatalf("expected re-published event to be queued")
	}
	if n := b.Dispatch(); n != 1 {
		t.Fatalf("expected 1 event in second dispatch, got %d", n)
	}
	if len(log) != 2 || log[1] != "a:SHOW_ITEMS=off" {
		t.Fatalf("unexpected log %v", log)
	}
}

type displayHolder struct {
	cfg model.DisplayConfiguration
}

func (h *displayHolder) OnDisplayConfigurationChanged(evt DisplayConfigurationUpdateEvent) {
	h.cfg = h.cfg.With(evt.UpdatedProperties)
}

func TestDisplayPublisherTogglesCompose(t *testing.T) {
	cases := []struct {
		name    string
		toggles int
		want    bool
	}{
		{"single", 1, false},
		{"double_before_dispatch", 2, true},
		{"triple_before_dispatch", 3, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			bus := NewBus()
			holder := &displayHolder{cfg: model.DefaultDisplayConfiguration()}
			bus.SubscribeDisplayConfiguration(holder)
			pub := NewDisplayPublisher(bus, holder.cfg)

			for i := 0; i < c.toggles; i++ {
				pub.Toggle(model.ShowRoofs)
			}
			bus.Dispatch()

			if got := holder.cfg.Get(model.ShowRoofs); got != c.want {
				t.Fatalf("expected SHOW_ROOFS=%v, got %v", c.want, got)
			}
			if !holder.cfg.Equal(pub.Pending()) {
				t.Fatalf("listener %v out of step with publisher %v", holder.cfg, pub.Pending())
			}
		})
	}
}

func TestDisplayPublisherUpdate(t *testing.T) {
	bus := NewBus()
	pub := NewDisplayPublisher(bus, model.DefaultDisplayConfiguration())

	pub.Update(nil)
	if bus.Pending() != 0 {
		t.Fatalf("empty update should not be published")
	}

	pub.Update(map[model.DisplayProperty]bool{model.ShowNpcs: false})
	if pub.Toggle(model.ShowNpcs) != true {
		t.Fatalf("toggle should see the queued SHOW_NPCS=false")
	}
	if bus.Pending() != 2 {
		t.Fatalf("expected 2 queued events, got %d", bus.Pending())
	}
}
