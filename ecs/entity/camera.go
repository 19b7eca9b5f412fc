package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/shopfront/camera"
	"github.com/milk9111/shopfront/ecs"
	"github.com/milk9111/shopfront/ecs/component"
	"github.com/milk9111/shopfront/prefabs"
)

func NewCamera(w *ecs.World, spec prefabs.CameraSpec) (ecs.Entity, error) {
	cam := ecs.CreateEntity(w)
	if err := ecs.Add(w, cam, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}

	home := vec(spec.HomePosition)
	pose := camera.Pose{Position: home, Rotation: camera.LookRotation(home, vec(spec.LookAt))}

	lens := camera.DefaultLens
	if spec.FOV > 0 {
		lens.FOV = spec.FOV
	}
	if spec.Near > 0 {
		lens.Near = spec.Near
	}
	if spec.Far > spec.Near {
		lens.Far = spec.Far
	}

	rate := spec.SmoothingRate
	if rate <= 0 {
		rate = 2
	}

	if err := ecs.Add(w, cam, component.CameraComponent.Kind(), &component.Camera{
		Pose:           pose,
		Lens:           lens,
		RestorePose:    spec.RestorePose,
		Offset:         vec(spec.FocusOffset),
		Rate:           rate,
		TargetPosition: pose.Position,
		TargetRotation: pose.Rotation,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	rotateSpeed := spec.Orbit.RotateSpeed
	if rotateSpeed == 0 {
		rotateSpeed = 0.008
	}
	zoomSpeed := spec.Orbit.ZoomSpeed
	if zoomSpeed == 0 {
		zoomSpeed = 1
	}
	limits := camera.OrbitLimits{
		MinDistance: spec.Orbit.MinDistance,
		MaxDistance: spec.Orbit.MaxDistance,
		MinPolar:    spec.Orbit.MinPolar(),
		MaxPolar:    spec.Orbit.MaxPolar(),
	}
	if err := ecs.Add(w, cam, component.OrbitControlComponent.Kind(), &component.OrbitControl{
		Orbit:       camera.OrbitFrom(vec(spec.Orbit.Pivot), home, limits),
		Enabled:     true,
		EnableZoom:  spec.Orbit.EnableZoom,
		EnablePan:   spec.Orbit.EnablePan,
		RotateSpeed: rotateSpeed,
		ZoomSpeed:   zoomSpeed,
	}); err != nil {
		return 0, fmt.Errorf("camera: add orbit control: %w", err)
	}

	if err := ecs.Add(w, cam, component.PointerComponent.Kind(), &component.Pointer{}); err != nil {
		return 0, fmt.Errorf("camera: add pointer: %w", err)
	}

	return cam, nil
}

func vec(v prefabs.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}
