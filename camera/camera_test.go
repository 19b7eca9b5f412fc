package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSmoothConvergesWithoutOvershoot(t *testing.T) {
	tests := []struct {
		name   string
		rate   float64
		dt     float64
		frames int
	}{
		{"60fps", 2, 1.0 / 60, 600},
		{"30fps", 2, 1.0 / 30, 300},
		{"huge_step", 2, 1, 1},
	}
	target := mgl64.Vec3{0, 2.5, 3}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := mgl64.Vec3{8, 4, 8}
			lastErr := pos.Sub(target).Len()
			for i := 0; i < tc.frames; i++ {
				pos = Smooth(pos, target, tc.rate, tc.dt)
				e := pos.Sub(target).Len()
				if e > lastErr {
					t.Fatalf("frame %d: error grew from %v to %v", i, lastErr, e)
				}
				lastErr = e
			}
			if lastErr > 1e-3 {
				t.Fatalf("expected convergence, remaining error %v", lastErr)
			}
		})
	}
}

func TestSmoothIsIdempotentAtTarget(t *testing.T) {
	target := mgl64.Vec3{1, 2, 3}
	p := Pose{Position: target, Rotation: mgl64.Vec3{0.1, 0.2, 0.3}}
	for i := 0; i < 100; i++ {
		p = SmoothPose(p, target, mgl64.Vec3{0.1, 0.2, 0.3}, true, 2, 1.0/60)
	}
	if p.Position != target || p.Rotation != (mgl64.Vec3{0.1, 0.2, 0.3}) {
		t.Fatalf("pose drifted at the fixed point: %+v", p)
	}
}

func TestSmoothIsFramerateIndependentToFirstOrder(t *testing.T) {
	start := mgl64.Vec3{8, 4, 8}
	target := mgl64.Vec3{0, 2.5, 3}
	a, b := start, start
	for i := 0; i < 60; i++ {
		a = Smooth(a, target, 2, 1.0/60)
	}
	for i := 0; i < 120; i++ {
		b = Smooth(b, target, 2, 1.0/120)
	}
	if a.Sub(b).Len() > 0.05 {
		t.Fatalf("60fps and 120fps diverged: %v vs %v", a, b)
	}
}

func TestLookRotationFacesTarget(t *testing.T) {
	tests := []struct {
		name   string
		eye    mgl64.Vec3
		target mgl64.Vec3
	}{
		{"home", mgl64.Vec3{8, 4, 8}, mgl64.Vec3{}},
		{"front", mgl64.Vec3{0, 0, 5}, mgl64.Vec3{}},
		{"side_low", mgl64.Vec3{-6, 1, 0}, mgl64.Vec3{0, 2, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			want := tc.target.Sub(tc.eye).Normalize()
			got := Forward(LookRotation(tc.eye, tc.target))
			if got.Sub(want).Len() > 1e-9 {
				t.Fatalf("forward %v, want %v", got, want)
			}
		})
	}
}

func TestOrbitRoundTripAndLimits(t *testing.T) {
	limits := OrbitLimits{MinDistance: 12, MaxDistance: 15, MinPolar: math.Pi / 3, MaxPolar: math.Pi / 2}
	home := mgl64.Vec3{8, 4, 8}

	o := OrbitFrom(mgl64.Vec3{}, home, limits)
	if o.Position().Sub(home).Len() > 1e-9 {
		t.Fatalf("round trip moved the camera: %v", o.Position())
	}
	if o.Clamped() {
		t.Fatalf("limits must not apply before the orbit is moved")
	}

	o.Rotate(0, -10)
	if math.Abs(o.Polar-limits.MinPolar) > 1e-12 {
		t.Fatalf("polar %v not clamped to %v", o.Polar, limits.MinPolar)
	}
	o.Rotate(0, 10)
	if o.Polar != limits.MaxPolar {
		t.Fatalf("polar %v not clamped to horizon", o.Polar)
	}
	if o.Position()[1] < -1e-9 {
		t.Fatalf("camera went below the horizon: %v", o.Position())
	}

	o.Zoom(0.1)
	if o.Radius != limits.MinDistance {
		t.Fatalf("radius %v not clamped to %v", o.Radius, limits.MinDistance)
	}
	o.Zoom(10)
	if o.Radius != limits.MaxDistance {
		t.Fatalf("radius %v not clamped to %v", o.Radius, limits.MaxDistance)
	}
}

func TestProjectorCentersLookTarget(t *testing.T) {
	eye := mgl64.Vec3{8, 4, 8}
	pr := NewProjector(Pose{Position: eye, Rotation: LookRotation(eye, mgl64.Vec3{})}, DefaultLens, 1280, 720)

	x, y, depth, ok := pr.Project(mgl64.Vec3{})
	if !ok {
		t.Fatalf("origin should be visible")
	}
	if math.Abs(x-640) > 1e-6 || math.Abs(y-360) > 1e-6 {
		t.Fatalf("origin projected to (%v,%v), want screen center", x, y)
	}
	if math.Abs(depth-eye.Len()) > 1e-9 {
		t.Fatalf("depth %v, want %v", depth, eye.Len())
	}

	_, upY, _, ok := pr.Project(mgl64.Vec3{0, 1, 0})
	if !ok || upY >= y {
		t.Fatalf("world up should project above the center, got y=%v", upY)
	}

	if _, _, _, ok := pr.Project(eye.Mul(2)); ok {
		t.Fatalf("point behind the camera must not project")
	}
}

func TestClipNear(t *testing.T) {
	pr := NewProjector(Pose{}, DefaultLens, 100, 100)
	tests := []struct {
		name string
		poly []mgl64.Vec3
		want int
	}{
		{"all_front", []mgl64.Vec3{{0, 0, -1}, {1, 0, -1}, {1, 1, -1}}, 3},
		{"all_behind", []mgl64.Vec3{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}}, 0},
		{"straddle", []mgl64.Vec3{{0, 0, -1}, {1, 0, -1}, {1, 0, 1}, {0, 0, 1}}, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := pr.ClipNear(tc.poly)
			if len(got) != tc.want {
				t.Fatalf("expected %d vertices, got %d (%v)", tc.want, len(got), got)
			}
			for _, v := range got {
				if v[2] > -DefaultLens.Near+1e-9 {
					t.Fatalf("vertex %v in front of the near plane survived", v)
				}
			}
		})
	}
}
