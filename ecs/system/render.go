package system

import (
	"image"
	"image/color"
	"math"
	"sort"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/shopfront/camera"
	"github.com/milk9111/shopfront/ecs"
	"github.com/milk9111/shopfront/ecs/component"
	"golang.org/x/image/font/basicfont"
)

// pointFalloff controls how quickly point lights fade with squared distance.
const pointFalloff = 0.12

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

func whiteSource() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

type sceneLight struct {
	kind      component.LightKind
	position  mgl64.Vec3
	color     mgl64.Vec3
	intensity float64
}

type drawFace struct {
	poly  screenPolygon
	color color.RGBA
}

type drawLabel struct {
	x, y  float64
	depth float64
	scale float64
	label component.Label
}

// RenderSystem draws the scene with a software projection, painting faces
// far to near.
type RenderSystem struct {
	camEntity ecs.Entity

	face      ebtext.Face
	faceSize  float64
	faces     []drawFace
	labels    []drawLabel
	vertices  []ebiten.Vertex
	indices   []uint16
	lights    []sceneLight
	skyVerts  []ebiten.Vertex
	hoverGlow bool
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{
		face:     ebtext.NewGoXFace(basicfont.Face7x13),
		faceSize: 13,
	}
}

// SetHoverGlow brightens signs while the cursor is over one.
func (r *RenderSystem) SetHoverGlow(on bool) {
	r.hoverGlow = on
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	if !r.camEntity.Valid() || !ecs.IsAlive(w, r.camEntity) {
		if e, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
			r.camEntity = e
		}
	}

	bounds := screen.Bounds()
	width, height := float64(bounds.Dx()), float64(bounds.Dy())

	if e, ok := ecs.First(w, component.SkyComponent.Kind()); ok {
		if sky, ok := ecs.Get(w, e, component.SkyComponent.Kind()); ok {
			r.drawSky(screen, *sky, width, height)
		}
	}

	cam, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	pr := camera.NewProjector(cam.Pose, cam.Lens, width, height)
	eye := cam.Pose.Position

	r.lights = collectLights(w, r.lights[:0])
	r.faces = r.faces[:0]

	ecs.ForEach2(w, component.BoxComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, b *component.Box, tr *component.Transform) {
		emissive := b.Emissive
		if r.hoverGlow && ecs.Has(w, e, component.HotspotComponent.Kind()) {
			emissive += 0.3
		}
		corners := b.Corners(tr.Position)
		half := b.Size.Mul(0.5)
		for _, f := range boxFaces {
			center := tr.Position.Add(mgl64.Vec3{f.normal[0] * half[0], f.normal[1] * half[1], f.normal[2] * half[2]})
			if f.normal.Dot(eye.Sub(center)) <= 0 {
				continue
			}
			world := []mgl64.Vec3{corners[f.corners[0]], corners[f.corners[1]], corners[f.corners[2]], corners[f.corners[3]]}
			poly, ok := projectFace(pr, world)
			if !ok {
				continue
			}
			r.faces = append(r.faces, drawFace{
				poly:  poly,
				color: shade(b.Color, emissive, center, f.normal, r.lights),
			})
		}
	})

	sort.SliceStable(r.faces, func(i, j int) bool {
		return r.faces[i].poly.depth > r.faces[j].poly.depth
	})
	r.drawFaces(screen)

	r.labels = r.labels[:0]
	ecs.ForEach2(w, component.LabelComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, l *component.Label, tr *component.Transform) {
		pos := tr.Position.Add(l.Offset)
		// labels face +Z like the signs they sit on
		if eye.Z()-pos.Z() <= 0 {
			return
		}
		x, y, depth, ok := pr.Project(pos)
		if !ok {
			return
		}
		scale := l.Size * pr.PixelScale(depth) / r.faceSize
		if scale < 0.05 {
			return
		}
		r.labels = append(r.labels, drawLabel{x: x, y: y, depth: depth, scale: scale, label: *l})
	})
	sort.SliceStable(r.labels, func(i, j int) bool {
		return r.labels[i].depth > r.labels[j].depth
	})
	for _, l := range r.labels {
		r.drawLabel(screen, l)
	}
}

func (r *RenderSystem) drawFaces(screen *ebiten.Image) {
	flush := func() {
		if len(r.indices) == 0 {
			return
		}
		screen.DrawTriangles(r.vertices, r.indices, whiteSource(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
		r.vertices = r.vertices[:0]
		r.indices = r.indices[:0]
	}

	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	for _, f := range r.faces {
		n := len(f.poly.points)
		if len(r.vertices)+n > math.MaxUint16 {
			flush()
		}
		base := uint16(len(r.vertices))
		cr := float32(f.color.R) / 0xff
		cg := float32(f.color.G) / 0xff
		cb := float32(f.color.B) / 0xff
		for _, p := range f.poly.points {
			r.vertices = append(r.vertices, ebiten.Vertex{
				DstX:   float32(p[0]),
				DstY:   float32(p[1]),
				SrcX:   1,
				SrcY:   1,
				ColorR: cr,
				ColorG: cg,
				ColorB: cb,
				ColorA: 1,
			})
		}
		for i := 2; i < n; i++ {
			r.indices = append(r.indices, base, base+uint16(i-1), base+uint16(i))
		}
	}
	flush()
}

func (r *RenderSystem) drawSky(screen *ebiten.Image, sky component.Sky, width, height float64) {
	stops := []struct {
		y float64
		c color.RGBA
	}{
		{0, sky.Top},
		{height / 2, sky.Middle},
		{height, sky.Bottom},
	}
	r.skyVerts = r.skyVerts[:0]
	for _, s := range stops {
		for _, x := range []float64{0, width} {
			r.skyVerts = append(r.skyVerts, ebiten.Vertex{
				DstX:   float32(x),
				DstY:   float32(s.y),
				SrcX:   1,
				SrcY:   1,
				ColorR: float32(s.c.R) / 0xff,
				ColorG: float32(s.c.G) / 0xff,
				ColorB: float32(s.c.B) / 0xff,
				ColorA: 1,
			})
		}
	}
	indices := []uint16{0, 1, 2, 1, 3, 2, 2, 3, 4, 3, 5, 4}
	screen.DrawTriangles(r.skyVerts, indices, whiteSource(), &ebiten.DrawTrianglesOptions{})
}

func (r *RenderSystem) drawLabel(screen *ebiten.Image, l drawLabel) {
	tw, th := ebtext.Measure(l.label.Text, r.face, 0)
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(-tw/2, -th/2)
	op.GeoM.Scale(l.scale, l.scale)
	op.GeoM.Translate(l.x, l.y)
	op.ColorScale.ScaleWithColor(l.label.Color)
	ebtext.Draw(screen, l.label.Text, r.face, op)
}

func collectLights(w *ecs.World, out []sceneLight) []sceneLight {
	ecs.ForEach2(w, component.LightComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, l *component.Light, tr *component.Transform) {
		out = append(out, sceneLight{
			kind:      l.Kind,
			position:  tr.Position,
			color:     colorVec(l.Color),
			intensity: l.Intensity,
		})
	})
	return out
}

// shade lights a face with the ambient, directional and point lights.
// Directional lights shine from their position toward the origin.
func shade(base color.RGBA, emissive float64, center, normal mgl64.Vec3, lights []sceneLight) color.RGBA {
	light := mgl64.Vec3{emissive, emissive, emissive}
	for _, l := range lights {
		switch l.kind {
		case component.LightAmbient:
			light = light.Add(l.color.Mul(l.intensity))
		case component.LightDirectional:
			dir := l.position.Normalize()
			if d := normal.Dot(dir); d > 0 {
				light = light.Add(l.color.Mul(l.intensity * d))
			}
		case component.LightPoint:
			toLight := l.position.Sub(center)
			dist := toLight.Len()
			if dist < 1e-9 {
				light = light.Add(l.color.Mul(l.intensity))
				continue
			}
			d := normal.Dot(toLight.Mul(1 / dist))
			if d <= 0 {
				continue
			}
			atten := 1 / (1 + pointFalloff*dist*dist)
			light = light.Add(l.color.Mul(l.intensity * d * atten))
		}
	}

	c := colorVec(base)
	return color.RGBA{
		R: channel(c[0] * light[0]),
		G: channel(c[1] * light[1]),
		B: channel(c[2] * light[2]),
		A: 0xff,
	}
}

func colorVec(c color.RGBA) mgl64.Vec3 {
	return mgl64.Vec3{float64(c.R) / 0xff, float64(c.G) / 0xff, float64(c.B) / 0xff}
}

func channel(v float64) uint8 {
	return uint8(mgl64.Clamp(v, 0, 1)*0xff + 0.5)
}
