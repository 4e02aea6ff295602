package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/rscedit/model"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvTileSize, "")
	dir := t.TempDir()

	cases := []struct {
		name     string
		body     string // empty = file missing
		wantErr  bool
		tileSize int
		zoom     float64
		sector   SectorConfig
		hidden   []model.DisplayProperty
	}{
		{
			name:     "missing_file_defaults",
			tileSize: DefaultTileSize,
			zoom:     1,
			sector:   SectorConfig{X: 2, Y: 13},
		},
		{
			name:     "full",
			body:     "display:\n  SHOW_ROOFS: false\n  SHOW_NPCS: false\nsector:\n  x: 5\n  y: 6\n  plane: 1\ntile_size: 16\nzoom: 2\n",
			tileSize: 16,
			zoom:     2,
			sector:   SectorConfig{X: 5, Y: 6, Plane: 1},
			hidden:   []model.DisplayProperty{model.ShowRoofs, model.ShowNpcs},
		},
		{
			name:     "invalid_sizes_fall_back",
			body:     "tile_size: -3\nzoom: 0\n",
			tileSize: DefaultTileSize,
			zoom:     1,
			sector:   SectorConfig{X: 2, Y: 13},
		},
		{
			name:    "unknown_display_property",
			body:    "display:\n  SHOW_GHOSTS: true\n",
			wantErr: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(dir, c.name+".yaml")
			if c.body != "" {
				writeFile(t, path, c.body)
			}
			cfg, err := Load(path)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.TileSize != c.tileSize || cfg.Zoom != c.zoom || cfg.Sector != c.sector {
				t.Fatalf("unexpected config %+v", cfg)
			}
			hidden := map[model.DisplayProperty]bool{}
			for _, p := range c.hidden {
				hidden[p] = true
			}
			for _, p := range model.DisplayProperties {
				if cfg.Display.Get(p) == hidden[p] {
					t.Fatalf("%s: expected %v, got %v", p, !hidden[p], cfg.Display.Get(p))
				}
			}
		})
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rscedit.yaml")
	writeFile(t, path, "tile_size: 16\n")

	t.Setenv(EnvTileSize, "32")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TileSize != 32 {
		t.Fatalf("expected env tile size 32, got %d", cfg.TileSize)
	}

	t.Setenv(EnvTileSize, "huge")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for bad %s", EnvTileSize)
	}
}

func TestPath(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	if got := Path(""); got != DefaultPath {
		t.Fatalf("expected default path, got %q", got)
	}
	t.Setenv(EnvConfigPath, "/tmp/from-env.yaml")
	if got := Path(""); got != "/tmp/from-env.yaml" {
		t.Fatalf("expected env path, got %q", got)
	}
	if got := Path("explicit.yaml"); got != "explicit.yaml" {
		t.Fatalf("expected explicit path, got %q", got)
	}
}

func TestDiff(t *testing.T) {
	old := model.DefaultDisplayConfiguration()
	next := old.With(map[model.DisplayProperty]bool{model.ShowRoofs: false})

	changed := Diff(old, next)
	if len(changed) != 1 {
		t.Fatalf("expected one change, got %v", changed)
	}
	if v, ok := changed[model.ShowRoofs]; !ok || v {
		t.Fatalf("expected SHOW_ROOFS=false, got %v", changed)
	}
	if len(Diff(next, next)) != 0 {
		t.Fatalf("identical configs should not differ")
	}
}

func TestReload(t *testing.T) {
	t.Setenv(EnvTileSize, "")
	path := filepath.Join(t.TempDir(), "rscedit.yaml")
	writeFile(t, path, "display:\n  SHOW_ITEMS: false\n")

	_, changed, err := Reload(path, model.DefaultDisplayConfiguration())
	if err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if len(changed) != 1 || changed[model.ShowItems] {
		t.Fatalf("expected only SHOW_ITEMS=false, got %v", changed)
	}

	current := model.DefaultDisplayConfiguration().With(map[model.DisplayProperty]bool{model.ShowRoofs: false})
	for _, body := range []string{"", "  \n\t\n"} {
		writeFile(t, path, body)
		cfg, changed, err := Reload(path, current)
		if err != nil || len(changed) != 0 {
			t.Fatalf("empty file %q: expected no change, got %v %v", body, changed, err)
		}
		if !cfg.Display.Equal(current) {
			t.Fatalf("empty file %q reset the display to %v", body, cfg.Display)
		}
	}

	writeFile(t, path, "display: [oops\n")
	if _, changed, err := Reload(path, model.DefaultDisplayConfiguration()); err == nil || changed != nil {
		t.Fatalf("expected error and no changes, got %v %v", changed, err)
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rscedit.yaml")
	writeFile(t, path, "zoom: 1\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	writeFile(t, filepath.Join(dir, "other.yaml"), "zoom: 3\n")
	writeFile(t, path, "zoom: 2\n")

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "rscedit.yaml" {
			t.Fatalf("unexpected event for %s", name)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}
}

func TestWatcherReportsLastWriteOfBurst(t *testing.T) {
	t.Setenv(EnvTileSize, "")
	dir := t.TempDir()
	path := filepath.Join(dir, "rscedit.yaml")
	writeFile(t, path, "display:\n  SHOW_ROOFS: true\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	// truncate then write, the way many editors save
	writeFile(t, path, "")
	time.Sleep(20 * time.Millisecond)
	writeFile(t, path, "display:\n  SHOW_ROOFS: false\n")

	shown := model.DefaultDisplayConfiguration()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-w.Events:
			if !ok {
				t.Fatalf("watcher closed early")
			}
			_, changed, err := Reload(path, shown)
			if err != nil {
				t.Fatalf("Reload: %v", err)
			}
			shown = shown.With(changed)
			if !shown.Get(model.ShowRoofs) {
				return
			}
		case err := <-w.Errors:
			t.Fatalf("watcher error: %v", err)
		case <-deadline:
			t.Fatalf("final write never reported; display still shows SHOW_ROOFS=%v", shown.Get(model.ShowRoofs))
		}
	}
}
