package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// specCache holds decoded prefab specs keyed by cleaned file name. The
// watcher invalidates entries when the file changes on disk.
var specCache = struct {
	sync.Mutex
	entries map[string]any
}{entries: map[string]any{}}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	key := cleanPrefabPath(filename)

	specCache.Lock()
	cached, ok := specCache.entries[key]
	specCache.Unlock()
	if ok {
		if spec, ok := cached.(T); ok {
			return spec, nil
		}
	}

	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	specCache.Lock()
	specCache.entries[key] = spec
	specCache.Unlock()
	return spec, nil
}

// Invalidate drops the cached spec for filename so the next LoadSpec rereads
// it.
func Invalidate(filename string) {
	specCache.Lock()
	delete(specCache.entries, cleanPrefabPath(filename))
	specCache.Unlock()
}

// InvalidateAll empties the spec cache.
func InvalidateAll() {
	specCache.Lock()
	specCache.entries = map[string]any{}
	specCache.Unlock()
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(strings.TrimSpace(value.Value), "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
