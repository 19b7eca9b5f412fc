package system

import (
	"github.com/milk9111/shopfront/camera"
	"github.com/milk9111/shopfront/ecs"
	"github.com/milk9111/shopfront/ecs/component"
	"github.com/milk9111/shopfront/state"
)

// CameraSystem moves the camera toward the focus pose while the store
// reports a transition. It is the only writer of the pose during that time.
type CameraSystem struct {
	store *state.Store
	dt    float64

	camEntity ecs.Entity
	pending   []state.Change
}

func NewCameraSystem(store *state.Store, dt float64) *CameraSystem {
	cs := &CameraSystem{store: store, dt: dt}
	if store != nil {
		store.Subscribe(func(c state.Change) {
			cs.pending = append(cs.pending, c)
		})
	}
	return cs
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if cs == nil || w == nil {
		return
	}

	if !cs.camEntity.Valid() || !ecs.IsAlive(w, cs.camEntity) {
		if e, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
			cs.camEntity = e
		}
	}
	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}

	if !cam.HomeCaptured {
		cam.Home = cam.Pose
		cam.HomeCaptured = true
	}

	for _, c := range cs.pending {
		applyChange(cam, c)
	}
	cs.pending = cs.pending[:0]

	if cs.store == nil || !cs.store.Transitioning() {
		return
	}
	cam.Pose = camera.SmoothPose(cam.Pose, cam.TargetPosition, cam.TargetRotation, cam.RotateToTarget, cam.Rate, cs.dt)
}

func applyChange(cam *component.Camera, c state.Change) {
	switch c.Kind {
	case state.ChangeSelect:
		if cam.RestorePose && !c.Previous.Selectable() {
			cam.Snapshot = cam.Pose
			cam.HasSnapshot = true
		}
		cam.TargetPosition = c.Anchor.Add(cam.Offset)
		cam.TargetRotation = cam.Pose.Rotation
		cam.RotateToTarget = false
	case state.ChangeDeselect:
		back := cam.Home
		if cam.RestorePose && cam.HasSnapshot {
			back = cam.Snapshot
		}
		cam.HasSnapshot = false
		cam.TargetPosition = back.Position
		cam.TargetRotation = back.Rotation
		cam.RotateToTarget = true
	}
}
