package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/shopfront/camera"
	"github.com/milk9111/shopfront/ecs"
	"github.com/milk9111/shopfront/ecs/component"
	"github.com/milk9111/shopfront/state"
)

// PickHit is a hotspot under the cursor. Depth is the view depth of its
// nearest face.
type PickHit struct {
	Entity  ecs.Entity
	Hotspot component.Hotspot
	Depth   float64
}

// PickingSystem turns a click on a sign into a section selection. The
// projected outlines of all hotspots are rebuilt into a static cp space each
// frame and queried at the cursor; the hit nearest the camera wins.
type PickingSystem struct {
	store    *state.Store
	viewport *Viewport

	camEntity ecs.Entity
	hovered   ecs.Entity
}

func NewPickingSystem(store *state.Store, viewport *Viewport) *PickingSystem {
	return &PickingSystem{store: store, viewport: viewport}
}

// Hovered reports whether the cursor is over a hotspot this frame.
func (p *PickingSystem) Hovered() bool {
	return p != nil && p.hovered.Valid()
}

func (p *PickingSystem) Update(w *ecs.World) {
	if p == nil || w == nil {
		return
	}
	p.hovered = 0

	if !p.camEntity.Valid() || !ecs.IsAlive(w, p.camEntity) {
		if e, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
			p.camEntity = e
		}
	}
	cam, ok := ecs.Get(w, p.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	ptr, ok := ecs.Get(w, p.camEntity, component.PointerComponent.Kind())
	if !ok || ptr.OverUI {
		return
	}
	if p.store != nil && p.store.Loading() {
		return
	}

	width, height := p.viewport.size()
	pr := camera.NewProjector(cam.Pose, cam.Lens, width, height)
	hit, ok := Pick(w, pr, ptr.X, ptr.Y)
	if !ok {
		return
	}
	p.hovered = hit.Entity

	if !ptr.Clicked || p.store == nil {
		return
	}
	if err := p.store.SelectSection(hit.Hotspot.Section, hit.Hotspot.Anchor); err != nil {
		log.Printf("picking: select %s: %v", hit.Hotspot.Section, err)
	}
}

// Pick returns the hotspot under the screen point nearest to the camera.
func Pick(w *ecs.World, pr *camera.Projector, x, y float64) (PickHit, bool) {
	space := cp.NewSpace()
	body := space.StaticBody

	ecs.ForEach3(w, component.HotspotComponent.Kind(), component.BoxComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, h *component.Hotspot, b *component.Box, tr *component.Transform) {
		points, depth, ok := boxOutline(pr, *b, tr.Position)
		if !ok {
			return
		}
		verts := make([]cp.Vector, len(points))
		for i, pt := range points {
			verts[i] = cp.Vector{X: pt[0], Y: pt[1]}
		}
		shape := cp.NewPolyShape(body, len(verts), verts, cp.NewTransformIdentity(), 0)
		shape.UserData = PickHit{Entity: e, Hotspot: *h, Depth: depth}
		space.AddShape(shape)
	})

	var best PickHit
	found := false
	pt := cp.Vector{X: x, Y: y}
	space.EachShape(func(shape *cp.Shape) {
		if shape.PointQuery(pt).Distance > 0 {
			return
		}
		hit, ok := shape.UserData.(PickHit)
		if !ok {
			return
		}
		if !found || hit.Depth < best.Depth {
			best = hit
			found = true
		}
	})
	return best, found
}
