package component

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Label is text drawn in the scene at Transform + Offset. Size is in world
// units, so it shrinks with distance.
type Label struct {
	Text   string
	Size   float64
	Color  color.RGBA
	Offset mgl64.Vec3
}

var LabelComponent = NewComponent[Label]()
