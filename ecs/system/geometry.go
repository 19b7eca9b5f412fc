package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/shopfront/camera"
	"github.com/milk9111/shopfront/ecs/component"
)

// boxFaces lists corner indices (see component.Box.Corners) per face in
// cyclic order, with the outward normal.
var boxFaces = [6]struct {
	corners [4]int
	normal  mgl64.Vec3
}{
	{[4]int{1, 3, 7, 5}, mgl64.Vec3{1, 0, 0}},
	{[4]int{0, 4, 6, 2}, mgl64.Vec3{-1, 0, 0}},
	{[4]int{2, 6, 7, 3}, mgl64.Vec3{0, 1, 0}},
	{[4]int{0, 1, 5, 4}, mgl64.Vec3{0, -1, 0}},
	{[4]int{4, 5, 7, 6}, mgl64.Vec3{0, 0, 1}},
	{[4]int{0, 2, 3, 1}, mgl64.Vec3{0, 0, -1}},
}

// screenPolygon is a clipped, projected face.
type screenPolygon struct {
	points []mgl64.Vec2
	depth  float64
}

// projectFace clips a world-space face against the near plane and projects
// it. ok is false when nothing of the face is in front of the camera.
func projectFace(pr *camera.Projector, world []mgl64.Vec3) (screenPolygon, bool) {
	view := make([]mgl64.Vec3, len(world))
	for i, p := range world {
		view[i] = pr.ToView(p)
	}
	clipped := pr.ClipNear(view)
	if len(clipped) < 3 {
		return screenPolygon{}, false
	}

	poly := screenPolygon{points: make([]mgl64.Vec2, 0, len(clipped))}
	for _, v := range clipped {
		x, y, ok := pr.ViewToScreen(v)
		if !ok {
			// on the clip plane within rounding
			v[2] = -pr.Lens().Near - 1e-9
			if x, y, ok = pr.ViewToScreen(v); !ok {
				continue
			}
		}
		poly.points = append(poly.points, mgl64.Vec2{x, y})
		poly.depth += -v[2]
	}
	if len(poly.points) < 3 {
		return screenPolygon{}, false
	}
	poly.depth /= float64(len(poly.points))
	return poly, true
}

// boxOutline projects every face of b and returns the projected points plus
// the nearest face depth.
func boxOutline(pr *camera.Projector, b component.Box, center mgl64.Vec3) ([]mgl64.Vec2, float64, bool) {
	corners := b.Corners(center)
	var points []mgl64.Vec2
	nearest := 0.0
	found := false
	for _, f := range boxFaces {
		face := []mgl64.Vec3{corners[f.corners[0]], corners[f.corners[1]], corners[f.corners[2]], corners[f.corners[3]]}
		poly, ok := projectFace(pr, face)
		if !ok {
			continue
		}
		points = append(points, poly.points...)
		if !found || poly.depth < nearest {
			nearest = poly.depth
		}
		found = true
	}
	return points, nearest, found
}
