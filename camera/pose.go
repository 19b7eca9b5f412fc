// Package camera holds the math behind the portfolio camera: exponential
// smoothing toward a target pose, the constrained orbit used for free
// control, and the perspective projection used by the renderer.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Pose is a camera position plus an XYZ Euler orientation in radians. With a
// zero rotation the camera looks down -Z with +Y up.
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Vec3
}

// Smooth moves current toward target by rate*dt of the remaining distance.
// The step is capped at the full distance so long frames cannot overshoot,
// and a value already at target stays there.
func Smooth(current, target mgl64.Vec3, rate, dt float64) mgl64.Vec3 {
	alpha := rate * dt
	if alpha <= 0 {
		return current
	}
	if alpha >= 1 {
		return target
	}
	return current.Add(target.Sub(current).Mul(alpha))
}

// SmoothPose applies Smooth to the position, and to the rotation when
// rotate is set.
func SmoothPose(current Pose, targetPos, targetRot mgl64.Vec3, rotate bool, rate, dt float64) Pose {
	current.Position = Smooth(current.Position, targetPos, rate, dt)
	if rotate {
		current.Rotation = Smooth(current.Rotation, targetRot, rate, dt)
	}
	return current
}

// RotationMatrix builds the rotation for an XYZ Euler triple (Rx*Ry*Rz).
func RotationMatrix(euler mgl64.Vec3) mgl64.Mat4 {
	return mgl64.HomogRotate3DX(euler[0]).
		Mul4(mgl64.HomogRotate3DY(euler[1])).
		Mul4(mgl64.HomogRotate3DZ(euler[2]))
}

// Forward returns the unit direction the orientation looks at.
func Forward(euler mgl64.Vec3) mgl64.Vec3 {
	return RotationMatrix(euler).Mul4x1(mgl64.Vec4{0, 0, -1, 0}).Vec3()
}

// ViewMatrix is the inverse of the camera's world transform.
func ViewMatrix(p Pose) mgl64.Mat4 {
	world := mgl64.Translate3D(p.Position[0], p.Position[1], p.Position[2]).Mul4(RotationMatrix(p.Rotation))
	return world.Inv()
}

// LookRotation returns the XYZ Euler orientation of a camera at eye looking
// at target with +Y as up.
func LookRotation(eye, target mgl64.Vec3) mgl64.Vec3 {
	back := eye.Sub(target)
	if back.Len() < 1e-9 {
		return mgl64.Vec3{}
	}
	back = back.Normalize()
	up := mgl64.Vec3{0, 1, 0}
	right := up.Cross(back)
	if right.Len() < 1e-9 {
		// Looking straight up or down; any horizontal right axis works.
		right = mgl64.Vec3{1, 0, 0}
	}
	right = right.Normalize()
	trueUp := back.Cross(right)
	m := mgl64.Mat3FromCols(right, trueUp, back)
	return eulerXYZ(m)
}

func eulerXYZ(m mgl64.Mat3) mgl64.Vec3 {
	m13 := mgl64.Clamp(m.At(0, 2), -1, 1)
	y := math.Asin(m13)
	if math.Abs(m13) < 0.9999999 {
		return mgl64.Vec3{
			math.Atan2(-m.At(1, 2), m.At(2, 2)),
			y,
			math.Atan2(-m.At(0, 1), m.At(0, 0)),
		}
	}
	return mgl64.Vec3{math.Atan2(m.At(2, 1), m.At(1, 1)), y, 0}
}
