package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestLoadEmbeddedPrefabs(t *testing.T) {
	for _, name := range []string{"player.yaml", "pickup.yaml", "chaser.yaml", "ambusher.yaml", "flanker.yaml", "opportunist.yaml"} {
		t.Run(name, func(t *testing.T) {
			spec, err := LoadEntityBuildSpec(name)
			if err != nil {
				t.Fatalf("load %s: %v", name, err)
			}
			if len(spec.Components) == 0 {
				t.Fatalf("%s defines no components", name)
			}
			if _, ok := spec.Components["transform"]; !ok {
				t.Fatalf("%s has no transform", name)
			}
		})
	}
}

func TestDecodePursuerSpec(t *testing.T) {
	spec, err := LoadEntityBuildSpec("prefabs/opportunist.yaml")
	if err != nil {
		t.Fatal(err)
	}
	p, err := DecodeComponentSpec[PursuerComponentSpec](spec.Components["pursuer"])
	if err != nil {
		t.Fatal(err)
	}
	if p.Role != "opportunist" || p.Speed != 2 || p.CatchRadius != 20 {
		t.Fatalf("unexpected pursuer spec %+v", p)
	}
	a, err := DecodeComponentSpec[AppearanceComponentSpec](spec.Components["appearance"])
	if err != nil {
		t.Fatal(err)
	}
	if a.Color == nil || a.Color.Color != (color.NRGBA{R: 0xFF, G: 0xA5, B: 0x00, A: 0xFF}) {
		t.Fatalf("unexpected color %+v", a.Color)
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.Color
		wantErr bool
	}{
		{`"#102030"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}, false},
		{`"10203040"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, false},
		{`"#123"`, nil, true},
		{`"#GG0000"`, nil, true},
		{`[1, 2]`, nil, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var out YAMLColor
			err := yaml.Unmarshal([]byte(c.in), &out)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", c.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal %s: %v", c.in, err)
			}
			if out.Color != c.want {
				t.Fatalf("got %v, want %v", out.Color, c.want)
			}
		})
	}
}

func TestDiskPrefabOverridesEmbedAfterInvalidate(t *testing.T) {
	dir := t.TempDir()
	prev := Dir
	Dir = dir
	t.Cleanup(func() {
		Dir = prev
		InvalidateAll()
	})
	InvalidateAll()

	embedded, err := LoadEntityBuildSpec("pickup.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if embedded.Name != "pickup" {
		t.Fatalf("unexpected embedded name %q", embedded.Name)
	}

	override := []byte("name: big_pickup\ncomponents:\n  pickup:\n    kind: dot\n")
	if err := os.WriteFile(filepath.Join(dir, "pickup.yaml"), override, 0o644); err != nil {
		t.Fatal(err)
	}

	cached, err := LoadEntityBuildSpec("pickup.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if cached.Name != "pickup" {
		t.Fatalf("expected cached spec before invalidation, got %q", cached.Name)
	}

	Invalidate("pickup.yaml")
	fresh, err := LoadEntityBuildSpec("pickup.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if fresh.Name != "big_pickup" {
		t.Fatalf("expected disk override, got %q", fresh.Name)
	}
}

func TestWatcherReportsSpecChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "chaser.yaml")
	if err := os.WriteFile(target, []byte("name: chaser\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "chaser.yaml" {
			t.Fatalf("unexpected event for %s", name)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for watcher event")
	}
}
