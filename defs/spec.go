package defs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/rscedit/model"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("defs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("defs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type OverlayDefinition struct {
	Name     string    `yaml:"name"`
	Color    YAMLColor `yaml:"color"`
	Passable bool      `yaml:"passable"`
}

type WallDefinition struct {
	Name string `yaml:"name"`
}

type RoofDefinition struct {
	Name string `yaml:"name"`
}

// Definitions holds the read-only terrain lookup tables keyed by the codes
// stored on each tile. Build it once with LoadDefinitions and share it.
type Definitions struct {
	Overlays          map[int]OverlayDefinition `yaml:"overlays"`
	Walls             map[int]WallDefinition    `yaml:"walls"`
	DiagonalBackwards map[int]WallDefinition    `yaml:"diagonal_backwards"`
	Roofs             map[int]RoofDefinition    `yaml:"roofs"`
}

func LoadDefinitions() (*Definitions, error) {
	d, err := LoadSpec[Definitions]("definitions.yaml")
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (d *Definitions) Overlay(code int) (OverlayDefinition, bool) {
	if d == nil {
		return OverlayDefinition{}, false
	}
	o, ok := d.Overlays[code]
	return o, ok
}

func (d *Definitions) IsWall(code int) bool {
	if d == nil {
		return false
	}
	_, ok := d.Walls[code]
	return ok
}

func (d *Definitions) IsBackwardDiagonal(code int) bool {
	if d == nil {
		return false
	}
	_, ok := d.DiagonalBackwards[code]
	return ok
}

func (d *Definitions) IsRoof(code int) bool {
	if d == nil {
		return false
	}
	_, ok := d.Roofs[code]
	return ok
}

type PresetsSpec struct {
	Presets []model.TerrainTemplate `yaml:"presets"`
}

// LoadPresets returns the terrain templates offered in the preset panel.
func LoadPresets() ([]model.TerrainTemplate, error) {
	spec, err := LoadSpec[PresetsSpec]("presets.yaml")
	if err != nil {
		return nil, err
	}
	for i, p := range spec.Presets {
		if p.Name == "" {
			return nil, fmt.Errorf("defs: presets.yaml: preset %d has no name", i)
		}
	}
	return spec.Presets, nil
}

type YAMLColor struct {
	color.Color
}

// RGBA8 returns the colour as color.RGBA, transparent black when unset.
func (c YAMLColor) RGBA8() color.RGBA {
	if c.Color == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c.Color).(color.RGBA)
}

// UnmarshalYAML accepts "#rrggbb" or "#rrggbbaa", with or without the hash.
func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("defs: line %d: colour must be a hex string", value.Line)
	}

	hex := strings.TrimPrefix(value.Value, "#")
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return fmt.Errorf("defs: line %d: bad colour %q", value.Line, value.Value)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return fmt.Errorf("defs: line %d: bad colour %q: %w", value.Line, value.Value, err)
	}

	c.Color = color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return nil
}
