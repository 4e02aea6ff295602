package defs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var DefsFS embed.FS

// Load reads a definition file, preferring a copy under defs/ on disk so the
// tables can be tweaked without rebuilding the editor.
func Load(name string) ([]byte, error) {
	clean := cleanDefsPath(name)
	if data, err := os.ReadFile(diskDefsPath(clean)); err == nil {
		return data, nil
	}
	return DefsFS.ReadFile(clean)
}

func cleanDefsPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "defs/"); ok {
		return after
	}
	return s
}

func diskDefsPath(clean string) string {
	return filepath.Join("defs", filepath.FromSlash(clean))
}
