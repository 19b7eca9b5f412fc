package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// OrbitLimits constrains free camera control: distance from the pivot and
// the polar angle measured from +Y.
type OrbitLimits struct {
	MinDistance float64
	MaxDistance float64
	MinPolar    float64
	MaxPolar    float64
}

// Orbit is a camera position in spherical coordinates around a pivot.
type Orbit struct {
	Pivot   mgl64.Vec3
	Radius  float64
	Azimuth float64
	Polar   float64
	Limits  OrbitLimits
	clamped bool
}

// OrbitFrom derives spherical coordinates for a camera currently at pos.
// The limits are not applied until the orbit is moved.
func OrbitFrom(pivot, pos mgl64.Vec3, limits OrbitLimits) Orbit {
	offset := pos.Sub(pivot)
	radius := offset.Len()
	o := Orbit{Pivot: pivot, Radius: radius, Limits: limits}
	if radius < 1e-9 {
		return o
	}
	o.Azimuth = math.Atan2(offset[0], offset[2])
	o.Polar = math.Acos(mgl64.Clamp(offset[1]/radius, -1, 1))
	return o
}

// Rotate turns the orbit by the given angles and applies the limits.
func (o *Orbit) Rotate(dAzimuth, dPolar float64) {
	o.Azimuth += dAzimuth
	o.Polar += dPolar
	o.clamp()
}

// Zoom scales the distance to the pivot (scale < 1 moves closer) and
// applies the limits.
func (o *Orbit) Zoom(scale float64) {
	if scale > 0 {
		o.Radius *= scale
	}
	o.clamp()
}

func (o *Orbit) clamp() {
	l := o.Limits
	if l.MaxPolar > 0 {
		// The exact zenith makes the look-at basis degenerate.
		minPolar := math.Max(l.MinPolar, 1e-6)
		o.Polar = mgl64.Clamp(o.Polar, minPolar, l.MaxPolar)
	}
	if l.MaxDistance > 0 {
		o.Radius = mgl64.Clamp(o.Radius, l.MinDistance, l.MaxDistance)
	}
	o.clamped = true
}

// Clamped reports whether the limits have been applied at least once.
func (o Orbit) Clamped() bool {
	return o.clamped
}

// Position converts the orbit back to a world position.
func (o Orbit) Position() mgl64.Vec3 {
	sinPolar := math.Sin(o.Polar)
	return o.Pivot.Add(mgl64.Vec3{
		o.Radius * sinPolar * math.Sin(o.Azimuth),
		o.Radius * math.Cos(o.Polar),
		o.Radius * sinPolar * math.Cos(o.Azimuth),
	})
}

// Pose returns the orbit position looking at the pivot.
func (o Orbit) Pose() Pose {
	pos := o.Position()
	return Pose{Position: pos, Rotation: LookRotation(pos, o.Pivot)}
}
