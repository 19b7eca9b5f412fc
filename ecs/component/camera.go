package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/shopfront/camera"
)

type Camera struct {
	Pose camera.Pose
	Lens camera.Lens

	// Home is captured on the first camera frame and never overwritten.
	Home         camera.Pose
	HomeCaptured bool

	// Snapshot is the pose at the moment of the last selection. Only used
	// when RestorePose is set.
	Snapshot    camera.Pose
	HasSnapshot bool
	RestorePose bool

	Offset mgl64.Vec3
	Rate   float64

	// TargetPosition and TargetRotation are where the camera is heading while
	// the store reports a transition.
	TargetPosition mgl64.Vec3
	TargetRotation mgl64.Vec3
	RotateToTarget bool
}

var CameraComponent = NewComponent[Camera]()
