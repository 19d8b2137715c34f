package entity

import (
	"fmt"
	"image/color"
	"sort"
	"unicode/utf8"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/mazechase/ecs"
	"github.com/milk9111/mazechase/ecs/component"
	"github.com/milk9111/mazechase/prefabs"
	"github.com/milk9111/mazechase/targeting"
)

type entityPrefabSpec = prefabs.EntityBuildSpec

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":   addPlayerTag,
	"pursuer_tag":  addPursuerTag,
	"player":       addPlayer,
	"pursuer":      addPursuer,
	"input":        addInput,
	"pickup":       addPickup,
	"pathfinding":  addPathfinding,
	"transform":    addTransform,
	"appearance":   addAppearance,
	"render_layer": addRenderLayer,
}

var componentBuildOrder = []string{
	"player_tag",
	"pursuer_tag",
	"player",
	"pursuer",
	"input",
	"pickup",
	"pathfinding",
	"transform",
	"appearance",
	"render_layer",
}

// BuildEntity creates an entity from the named YAML prefab.
func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return buildFromSpec(w, spec, prefabPath)
}

func buildFromSpec(w *ecs.World, spec entityPrefabSpec, prefabPath string) (ecs.Entity, error) {
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, names[0])
	}

	return e, nil
}

// SetEntityPosition moves e to pos, adding a Transform if it has none.
func SetEntityPosition(w *ecs.World, e ecs.Entity, pos cp.Vector) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{}
	}
	t.Pos = pos
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addPursuerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PursuerTagComponent.Kind(), &component.PursuerTag{})
}

func addPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PlayerComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	if spec.Speed <= 0 {
		return fmt.Errorf("player speed must be positive, got %v", spec.Speed)
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		Speed:        spec.Speed,
		PickupRadius: spec.PickupRadius,
	})
}

func addPursuer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PursuerComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode pursuer spec: %w", err)
	}
	role, err := targeting.ParseRole(spec.Role)
	if err != nil {
		return err
	}
	if spec.Speed <= 0 {
		return fmt.Errorf("pursuer speed must be positive, got %v", spec.Speed)
	}
	return ecs.Add(w, e, component.PursuerComponent.Kind(), &component.Pursuer{
		Role:        role,
		Strategy:    targeting.ForRole(role),
		Speed:       spec.Speed,
		CatchRadius: spec.CatchRadius,
	})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

func addPickup(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PickupComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode pickup spec: %w", err)
	}
	return ecs.Add(w, e, component.PickupComponent.Kind(), &component.Pickup{Kind: spec.Kind})
}

func addPathfinding(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PathfindingComponent.Kind(), &component.Pathfinding{})
}

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TransformComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		Pos: cp.Vector{X: spec.X, Y: spec.Y},
	})
}

func addAppearance(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.AppearanceComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode appearance spec: %w", err)
	}
	var col color.Color = color.White
	if spec.Color != nil && spec.Color.Color != nil {
		col = spec.Color.Color
	}
	glyph := '?'
	if spec.Glyph != "" {
		glyph, _ = utf8.DecodeRuneInString(spec.Glyph)
	}
	return ecs.Add(w, e, component.AppearanceComponent.Kind(), &component.Appearance{
		Color:  col,
		Radius: spec.Radius,
		Glyph:  glyph,
	})
}

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.RenderLayerComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render_layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}
