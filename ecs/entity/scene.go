package entity

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/shopfront/ecs"
	"github.com/milk9111/shopfront/ecs/component"
	"github.com/milk9111/shopfront/prefabs"
	"github.com/milk9111/shopfront/state"
)

var (
	defaultBoxColor   = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	defaultLightColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	defaultLabelColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// BuildScene creates the static boxes, lights, hotspots and sky described by
// spec. Props are appended as boxes tagged for replacement on reload.
func BuildScene(w *ecs.World, spec prefabs.SceneSpec, props []prefabs.BoxSpec) error {
	group := vec(spec.GroupOffset)

	sky := ecs.CreateEntity(w)
	if err := tagScene(w, sky); err != nil {
		return err
	}
	if err := ecs.Add(w, sky, component.SkyComponent.Kind(), &component.Sky{
		Top:    spec.Sky.Top.RGBA8(color.RGBA{A: 0xff}),
		Middle: spec.Sky.Middle.RGBA8(color.RGBA{R: 0x17, G: 0x25, B: 0x54, A: 0xff}),
		Bottom: spec.Sky.Bottom.RGBA8(color.RGBA{R: 0x3b, G: 0x07, B: 0x64, A: 0xff}),
	}); err != nil {
		return fmt.Errorf("scene: add sky: %w", err)
	}

	ambient := spec.Ambient
	ambient.Kind = string(component.LightAmbient)
	if _, err := NewLight(w, ambient, group); err != nil {
		return err
	}

	for _, b := range spec.Boxes {
		if _, err := NewBox(w, b, group); err != nil {
			return err
		}
	}
	for _, l := range spec.Lights {
		if _, err := NewLight(w, l, group); err != nil {
			return err
		}
	}
	for _, h := range spec.Hotspots {
		if _, err := NewHotspot(w, h, group); err != nil {
			return err
		}
	}
	return ReplaceProps(w, props, group)
}

// ReplaceProps destroys previously generated props and creates new ones.
func ReplaceProps(w *ecs.World, props []prefabs.BoxSpec, group mgl64.Vec3) error {
	var stale []ecs.Entity
	ecs.ForEach(w, component.PropTagComponent.Kind(), func(e ecs.Entity, _ *component.PropTag) {
		stale = append(stale, e)
	})
	for _, e := range stale {
		ecs.DestroyEntity(w, e)
	}

	for _, b := range props {
		e, err := NewBox(w, b, group)
		if err != nil {
			return err
		}
		if err := ecs.Add(w, e, component.PropTagComponent.Kind(), &component.PropTag{}); err != nil {
			return fmt.Errorf("scene: tag prop %s: %w", b.Name, err)
		}
	}
	return nil
}

// ClearScene destroys everything BuildScene created.
func ClearScene(w *ecs.World) {
	var ents []ecs.Entity
	ecs.ForEach(w, component.SceneTagComponent.Kind(), func(e ecs.Entity, _ *component.SceneTag) {
		ents = append(ents, e)
	})
	for _, e := range ents {
		ecs.DestroyEntity(w, e)
	}
}

func NewBox(w *ecs.World, spec prefabs.BoxSpec, group mgl64.Vec3) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := tagScene(w, e); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		Position: place(spec.Position, spec.World, group),
	}); err != nil {
		return 0, fmt.Errorf("box %s: add transform: %w", spec.Name, err)
	}
	if err := ecs.Add(w, e, component.BoxComponent.Kind(), &component.Box{
		Name:     spec.Name,
		Size:     vec(spec.Size),
		Color:    spec.Color.RGBA8(defaultBoxColor),
		Emissive: spec.Emissive,
	}); err != nil {
		return 0, fmt.Errorf("box %s: add box: %w", spec.Name, err)
	}
	return e, nil
}

func NewLight(w *ecs.World, spec prefabs.LightSpec, group mgl64.Vec3) (ecs.Entity, error) {
	kind := component.LightKind(spec.Kind)
	switch kind {
	case component.LightAmbient, component.LightPoint, component.LightDirectional:
	default:
		return 0, fmt.Errorf("light %s: unknown kind %q", spec.Name, spec.Kind)
	}

	e := ecs.CreateEntity(w)
	if err := tagScene(w, e); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		Position: place(spec.Position, spec.World, group),
	}); err != nil {
		return 0, fmt.Errorf("light %s: add transform: %w", spec.Name, err)
	}
	if err := ecs.Add(w, e, component.LightComponent.Kind(), &component.Light{
		Kind:      kind,
		Color:     spec.Color.RGBA8(defaultLightColor),
		Intensity: spec.Intensity,
	}); err != nil {
		return 0, fmt.Errorf("light %s: add light: %w", spec.Name, err)
	}
	return e, nil
}

// NewHotspot creates a clickable sign. The anchor forwarded on click is the
// authored position, without the group offset.
func NewHotspot(w *ecs.World, spec prefabs.HotspotSpec, group mgl64.Vec3) (ecs.Entity, error) {
	section, err := state.ParseSection(spec.Section)
	if err != nil {
		return 0, fmt.Errorf("hotspot: %w", err)
	}
	if !section.Selectable() {
		return 0, fmt.Errorf("hotspot: section %q is not selectable", spec.Section)
	}

	size := vec(spec.Size)
	if size == (mgl64.Vec3{}) {
		size = mgl64.Vec3{1, 0.5, 0.1}
	}

	e := ecs.CreateEntity(w)
	if err := tagScene(w, e); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		Position: vec(spec.Position).Add(group),
	}); err != nil {
		return 0, fmt.Errorf("hotspot %s: add transform: %w", section, err)
	}
	if err := ecs.Add(w, e, component.BoxComponent.Kind(), &component.Box{
		Name:     "sign_" + string(section),
		Size:     size,
		Color:    spec.Color.RGBA8(color.RGBA{R: 0xff, B: 0x66, A: 0xff}),
		Emissive: 0.35,
	}); err != nil {
		return 0, fmt.Errorf("hotspot %s: add box: %w", section, err)
	}
	if err := ecs.Add(w, e, component.HotspotComponent.Kind(), &component.Hotspot{
		Section: section,
		Anchor:  vec(spec.Position),
	}); err != nil {
		return 0, fmt.Errorf("hotspot %s: add hotspot: %w", section, err)
	}

	labelSize := spec.Text.Size
	if labelSize <= 0 {
		labelSize = 0.15
	}
	text := spec.Label
	if text == "" {
		text = string(section)
	}
	if err := ecs.Add(w, e, component.LabelComponent.Kind(), &component.Label{
		Text:   text,
		Size:   labelSize,
		Color:  spec.Text.Color.RGBA8(defaultLabelColor),
		Offset: vec(spec.Text.Offset),
	}); err != nil {
		return 0, fmt.Errorf("hotspot %s: add label: %w", section, err)
	}
	return e, nil
}

func tagScene(w *ecs.World, e ecs.Entity) error {
	if err := ecs.Add(w, e, component.SceneTagComponent.Kind(), &component.SceneTag{}); err != nil {
		return fmt.Errorf("scene: add scene tag: %w", err)
	}
	return nil
}

func place(p prefabs.Vec3, world bool, group mgl64.Vec3) mgl64.Vec3 {
	if world {
		return vec(p)
	}
	return vec(p).Add(group)
}
