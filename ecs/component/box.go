package component

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Box is an axis-aligned cuboid centred on the entity's Transform.
type Box struct {
	Name     string
	Size     mgl64.Vec3
	Color    color.RGBA
	Emissive float64
}

// Corners returns the eight world-space corners around center.
func (b Box) Corners(center mgl64.Vec3) [8]mgl64.Vec3 {
	h := b.Size.Mul(0.5)
	var out [8]mgl64.Vec3
	for i := 0; i < 8; i++ {
		sx, sy, sz := -1.0, -1.0, -1.0
		if i&1 != 0 {
			sx = 1
		}
		if i&2 != 0 {
			sy = 1
		}
		if i&4 != 0 {
			sz = 1
		}
		out[i] = mgl64.Vec3{center.X() + sx*h.X(), center.Y() + sy*h.Y(), center.Z() + sz*h.Z()}
	}
	return out
}

var BoxComponent = NewComponent[Box]()
