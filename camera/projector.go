package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Lens describes the perspective frustum.
type Lens struct {
	FOV  float64 // vertical, degrees
	Near float64
	Far  float64
}

// DefaultLens matches a 75 degree perspective camera.
var DefaultLens = Lens{FOV: 75, Near: 0.1, Far: 1000}

// Projector maps world points to screen pixels for one frame.
type Projector struct {
	view   mgl64.Mat4
	proj   mgl64.Mat4
	lens   Lens
	width  float64
	height float64
}

func NewProjector(p Pose, lens Lens, width, height float64) *Projector {
	if lens.FOV <= 0 {
		lens = DefaultLens
	}
	aspect := 1.0
	if height > 0 {
		aspect = width / height
	}
	return &Projector{
		view:   ViewMatrix(p),
		proj:   mgl64.Perspective(mgl64.DegToRad(lens.FOV), aspect, lens.Near, lens.Far),
		lens:   lens,
		width:  width,
		height: height,
	}
}

func (pr *Projector) Lens() Lens { return pr.lens }

// ToView transforms a world point into camera space (camera looks down -Z).
func (pr *Projector) ToView(world mgl64.Vec3) mgl64.Vec3 {
	return pr.view.Mul4x1(world.Vec4(1)).Vec3()
}

// ViewToScreen projects a camera-space point. ok is false for points at or
// behind the near plane.
func (pr *Projector) ViewToScreen(v mgl64.Vec3) (x, y float64, ok bool) {
	if -v[2] < pr.lens.Near {
		return 0, 0, false
	}
	clip := pr.proj.Mul4x1(v.Vec4(1))
	if math.Abs(clip[3]) < 1e-12 {
		return 0, 0, false
	}
	ndcX := clip[0] / clip[3]
	ndcY := clip[1] / clip[3]
	x = (ndcX + 1) * 0.5 * pr.width
	y = (1 - ndcY) * 0.5 * pr.height
	return x, y, true
}

// Project combines ToView and ViewToScreen and also returns view depth.
func (pr *Projector) Project(world mgl64.Vec3) (x, y, depth float64, ok bool) {
	v := pr.ToView(world)
	x, y, ok = pr.ViewToScreen(v)
	return x, y, -v[2], ok
}

// PixelScale returns how many pixels one world unit spans at view depth.
func (pr *Projector) PixelScale(depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return pr.height / (2 * depth * math.Tan(mgl64.DegToRad(pr.lens.FOV)/2))
}

// ClipNear clips a camera-space polygon against the near plane.
func (pr *Projector) ClipNear(poly []mgl64.Vec3) []mgl64.Vec3 {
	if len(poly) == 0 {
		return nil
	}
	limit := -pr.lens.Near
	inside := func(v mgl64.Vec3) bool { return v[2] <= limit }
	out := make([]mgl64.Vec3, 0, len(poly)+2)
	prev := poly[len(poly)-1]
	prevIn := inside(prev)
	for _, cur := range poly {
		curIn := inside(cur)
		if curIn != prevIn {
			t := (limit - prev[2]) / (cur[2] - prev[2])
			out = append(out, prev.Add(cur.Sub(prev).Mul(t)))
		}
		if curIn {
			out = append(out, cur)
		}
		prev, prevIn = cur, curIn
	}
	return out
}
