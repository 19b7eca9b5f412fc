package system

import (
	"math"

	"github.com/milk9111/shopfront/camera"
	"github.com/milk9111/shopfront/ecs"
	"github.com/milk9111/shopfront/ecs/component"
	"github.com/milk9111/shopfront/state"
)

// wheelStep is the distance scale applied per wheel notch at zoom speed 1.
const wheelStep = 0.95

// OrbitSystem applies drag and wheel input to the camera while free control
// is enabled. It never touches the pose on frames without input, so the
// orbit limits only apply once the visitor moves the camera.
type OrbitSystem struct {
	store *state.Store

	camEntity ecs.Entity
}

func NewOrbitSystem(store *state.Store) *OrbitSystem {
	return &OrbitSystem{store: store}
}

func (o *OrbitSystem) Update(w *ecs.World) {
	if o == nil || w == nil {
		return
	}

	if !o.camEntity.Valid() || !ecs.IsAlive(w, o.camEntity) {
		if e, ok := ecs.First(w, component.OrbitControlComponent.Kind()); ok {
			o.camEntity = e
		}
	}
	ctrl, ok := ecs.Get(w, o.camEntity, component.OrbitControlComponent.Kind())
	if !ok {
		return
	}
	cam, ok := ecs.Get(w, o.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	ptr, ok := ecs.Get(w, o.camEntity, component.PointerComponent.Kind())
	if !ok {
		return
	}

	ctrl.Enabled = o.store == nil || o.store.ControlsEnabled()
	if !ctrl.Enabled || ptr.OverUI {
		return
	}
	if o.store != nil && o.store.Loading() {
		return
	}

	rotating := ptr.Dragging && (ptr.DX != 0 || ptr.DY != 0)
	zooming := ctrl.EnableZoom && ptr.Wheel != 0
	if !rotating && !zooming {
		return
	}

	orbit := camera.OrbitFrom(ctrl.Orbit.Pivot, cam.Pose.Position, ctrl.Orbit.Limits)
	if rotating {
		orbit.Rotate(-ptr.DX*ctrl.RotateSpeed, -ptr.DY*ctrl.RotateSpeed)
	}
	if zooming {
		orbit.Zoom(math.Pow(wheelStep, ptr.Wheel*ctrl.ZoomSpeed))
	}
	ctrl.Orbit = orbit
	cam.Pose = orbit.Pose()
}
