package model

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// DisplayProperty names one user-toggleable layer of the canvas.
type DisplayProperty string

const (
	ShowRoofs          DisplayProperty = "SHOW_ROOFS"
	ShowObjects        DisplayProperty = "SHOW_OBJECTS"
	ShowItems          DisplayProperty = "SHOW_ITEMS"
	ShowNpcs           DisplayProperty = "SHOW_NPCS"
	MapBrightnessLight DisplayProperty = "MAP_BRIGHTNESS_LIGHT"
)

// DisplayProperties lists every recognized property in panel order.
var DisplayProperties = []DisplayProperty{
	ShowRoofs,
	ShowObjects,
	ShowItems,
	ShowNpcs,
	MapBrightnessLight,
}

func (p DisplayProperty) Valid() bool {
	for _, known := range DisplayProperties {
		if p == known {
			return true
		}
	}
	return false
}

// Label is the human readable form used by the side panel.
func (p DisplayProperty) Label() string {
	switch p {
	case ShowRoofs:
		return "Roofs"
	case ShowObjects:
		return "Objects"
	case ShowItems:
		return "Items"
	case ShowNpcs:
		return "NPCs"
	case MapBrightnessLight:
		return "Light map"
	default:
		return string(p)
	}
}

// DisplayConfiguration is an immutable snapshot of the display flags. Every
// recognized property is always present; use With to derive a new snapshot.
type DisplayConfiguration struct {
	props map[DisplayProperty]bool
}

// DefaultDisplayConfiguration has every layer visible and the light palette.
func DefaultDisplayConfiguration() DisplayConfiguration {
	props := make(map[DisplayProperty]bool, len(DisplayProperties))
	for _, p := range DisplayProperties {
		props[p] = true
	}
	return DisplayConfiguration{props: props}
}

// Get reports the value of p. A zero DisplayConfiguration behaves like the
// default one.
func (c DisplayConfiguration) Get(p DisplayProperty) bool {
	if c.props == nil {
		return p.Valid()
	}
	return c.props[p]
}

// With returns a copy of c with the given entries replaced. Unknown property
// names are ignored so the property set stays closed.
func (c DisplayConfiguration) With(updates map[DisplayProperty]bool) DisplayConfiguration {
	next := make(map[DisplayProperty]bool, len(DisplayProperties))
	for _, p := range DisplayProperties {
		next[p] = c.Get(p)
	}
	for p, v := range updates {
		if !p.Valid() {
			continue
		}
		next[p] = v
	}
	return DisplayConfiguration{props: next}
}

// Properties returns a copy of the snapshot's values.
func (c DisplayConfiguration) Properties() map[DisplayProperty]bool {
	out := make(map[DisplayProperty]bool, len(DisplayProperties))
	for _, p := range DisplayProperties {
		out[p] = c.Get(p)
	}
	return out
}

// Equal reports whether both snapshots hold the same values.
func (c DisplayConfiguration) Equal(other DisplayConfiguration) bool {
	for _, p := range DisplayProperties {
		if c.Get(p) != other.Get(p) {
			return false
		}
	}
	return true
}

func (c DisplayConfiguration) String() string {
	keys := make([]string, 0, len(DisplayProperties))
	for _, p := range DisplayProperties {
		keys = append(keys, string(p))
	}
	sort.Strings(keys)
	s := "{"
	for i, k := range keys {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%s:%v", k, c.Get(DisplayProperty(k)))
	}
	return s + "}"
}

func (c DisplayConfiguration) MarshalYAML() (any, error) {
	out := make(map[string]bool, len(DisplayProperties))
	for _, p := range DisplayProperties {
		out[string(p)] = c.Get(p)
	}
	return out, nil
}

// UnmarshalYAML layers the decoded mapping over the default configuration.
// Unknown keys are an error here since they come from a hand-edited file.
func (c *DisplayConfiguration) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]bool
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("display configuration: %w", err)
	}
	updates := make(map[DisplayProperty]bool, len(raw))
	for k, v := range raw {
		p := DisplayProperty(k)
		if !p.Valid() {
			return fmt.Errorf("display configuration: unknown property %q", k)
		}
		updates[p] = v
	}
	*c = DefaultDisplayConfiguration().With(updates)
	return nil
}
