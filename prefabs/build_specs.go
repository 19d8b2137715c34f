package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type PlayerComponentSpec struct {
	Speed        float64 `yaml:"speed"`
	PickupRadius float64 `yaml:"pickup_radius"`
}

type PursuerComponentSpec struct {
	Role        string  `yaml:"role"`
	Speed       float64 `yaml:"speed"`
	CatchRadius float64 `yaml:"catch_radius"`
}

type PickupComponentSpec struct {
	Kind string `yaml:"kind"`
}

type TransformComponentSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type AppearanceComponentSpec struct {
	Color  *YAMLColor `yaml:"color"`
	Radius float64    `yaml:"radius"`
	Glyph  string     `yaml:"glyph"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}
