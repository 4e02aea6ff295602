package locs

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/milk9111/rscedit/model"
)

//go:embed *.json
var LocsFS embed.FS

// Index is a read-only set of world coordinates.
type Index map[model.Point]struct{}

func NewIndex(points ...model.Point) Index {
	idx := make(Index, len(points))
	for _, p := range points {
		idx[p] = struct{}{}
	}
	return idx
}

func (i Index) Has(p model.Point) bool {
	_, ok := i[p]
	return ok
}

// Locations groups the coordinate indexes consulted for canvas markers.
type Locations struct {
	Scenery    Index
	Boundaries Index
	Items      Index
	Npcs       Index
}

type locationFile struct {
	Scenery    []model.Point `json:"scenery"`
	Boundaries []model.Point `json:"boundaries"`
	Items      []model.Point `json:"items"`
	Npcs       []model.Point `json:"npcs"`
}

// Load reads a locations file from disk when path is set, otherwise the
// embedded locations.json.
func Load(path string) (*Locations, error) {
	var (
		data []byte
		err  error
	)
	if path != "" {
		data, err = os.ReadFile(path)
	} else {
		path = "locations.json"
		data, err = fs.ReadFile(LocsFS, path)
	}
	if err != nil {
		return nil, fmt.Errorf("locs: read %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Locations, error) {
	var f locationFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("locs: unmarshal: %w", err)
	}
	return &Locations{
		Scenery:    NewIndex(f.Scenery...),
		Boundaries: NewIndex(f.Boundaries...),
		Items:      NewIndex(f.Items...),
		Npcs:       NewIndex(f.Npcs...),
	}, nil
}
