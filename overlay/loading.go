package overlay

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/shopfront/state"
	"golang.org/x/image/font/basicfont"
)

// FadeOutSeconds is how long the splash takes to disappear once loading ends.
const FadeOutSeconds = 1.0

const (
	gateWidth  = 192.0
	gateHeight = 224.0
	ringPeriod = 4.0
)

var (
	red600 = color.NRGBA{R: 0xdc, G: 0x26, B: 0x26, A: 0xff}
	red400 = color.NRGBA{R: 0xf8, G: 0x71, B: 0x71, A: 0xff}
	red300 = color.NRGBA{R: 0xfc, G: 0xa5, B: 0xa5, A: 0xff}
)

// ToriiFrame is the state of the splash animation at one instant. Growth
// values run from 0 to 1.
type ToriiFrame struct {
	GateAlpha  float64
	Pillars    float64
	LowerBeam  float64
	UpperBeam  float64
	RingAlpha  float64
	RingAngle  float64
	TextAlpha  float64
	Background float64
}

// ToriiAt computes the animation at t seconds after mount. fade is the time
// since loading finished, or a negative value while still loading.
func ToriiAt(t, fade float64) ToriiFrame {
	f := ToriiFrame{
		GateAlpha: ease(progress(t, 0, 0.5)),
		Pillars:   ease(progress(t, 0.5, 1)),
		LowerBeam: ease(progress(t, 1.2, 0.8)),
		UpperBeam: ease(progress(t, 1.5, 0.8)),
		RingAlpha: ease(progress(t, 1.8, 0.5)),
		RingAngle: 2 * math.Pi * math.Mod(math.Max(t-1.8, 0), ringPeriod) / ringPeriod,
		TextAlpha: ease(progress(t, 2, 0.5)),
	}
	f.Background = 1
	if fade >= 0 {
		f.Background = 1 - ease(progress(fade, 0, FadeOutSeconds))
	}
	return f
}

func progress(t, delay, duration float64) float64 {
	if duration <= 0 {
		if t >= delay {
			return 1
		}
		return 0
	}
	return math.Max(0, math.Min(1, (t-delay)/duration))
}

// ease is a cubic ease-in-out.
func ease(x float64) float64 {
	if x < 0.5 {
		return 4 * x * x * x
	}
	return 1 - math.Pow(-2*x+2, 3)/2
}

// Loading is the full-screen splash shown while the store's loading flag is
// raised, followed by a fade out.
type Loading struct {
	store   *state.Store
	elapsed float64
	fade    float64
	face    ebtext.Face
}

func NewLoading(store *state.Store) *Loading {
	return &Loading{
		store: store,
		fade:  -1,
		face:  ebtext.NewGoXFace(basicfont.Face7x13),
	}
}

func (l *Loading) Update(dt float64) {
	l.elapsed += dt
	if l.store != nil && l.store.Loading() {
		return
	}
	if l.fade < 0 {
		l.fade = 0
		return
	}
	l.fade += dt
}

// Frame returns the current animation state.
func (l *Loading) Frame() ToriiFrame {
	return ToriiAt(l.elapsed, l.fade)
}

// Visible reports whether any of the splash is still on screen. While
// visible it covers the scene and swallows input.
func (l *Loading) Visible() bool {
	return l.Frame().Background > 0
}

func (l *Loading) Draw(screen *ebiten.Image) {
	f := l.Frame()
	if f.Background <= 0 {
		return
	}
	a := f.Background
	b := screen.Bounds()
	sw, sh := float64(b.Dx()), float64(b.Dy())
	vector.FillRect(screen, 0, 0, float32(sw), float32(sh), withAlpha(color.NRGBA{A: 0xff}, a), false)

	ox := (sw - gateWidth) / 2
	oy := (sh - gateHeight) / 2
	gate := a * f.GateAlpha

	// pillars grow up from the bottom
	ph := gateHeight * f.Pillars
	vector.FillRect(screen, float32(ox+32), float32(oy+gateHeight-ph), 16, float32(ph), withAlpha(red600, gate), false)
	vector.FillRect(screen, float32(ox+gateWidth-48), float32(oy+gateHeight-ph), 16, float32(ph), withAlpha(red600, gate), false)

	// beams scale out from the centre
	drawBeam(screen, ox+16, oy+32, gateWidth-32, f.LowerBeam, withAlpha(red600, gate))
	drawBeam(screen, ox+8, oy, gateWidth-16, f.UpperBeam, withAlpha(red600, gate))

	ring := gate * f.RingAlpha
	if ring > 0 {
		cx := float32(ox + gateWidth/2)
		cy := float32(oy + 64 + 48)
		vector.StrokeCircle(screen, cx, cy, 46, 4, withAlpha(red600, ring), true)
		vector.StrokeCircle(screen, cx, cy, 39, 2, withAlpha(red400, ring), true)
		vector.StrokeCircle(screen, cx, cy, 31, 2, withAlpha(red300, ring), true)
		// marker so the inner ring's rotation is visible
		mx := cx + float32(31*math.Sin(f.RingAngle))
		my := cy - float32(31*math.Cos(f.RingAngle))
		vector.FillCircle(screen, mx, my, 3, withAlpha(red300, ring), true)
	}

	if text := a * f.TextAlpha; text > 0 {
		drawCentered(screen, l.face, "Loading...", ox+gateWidth/2, oy+gateHeight+40, 1.5, withAlpha(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, text))
	}
}

func drawBeam(screen *ebiten.Image, x, y, w, scale float64, clr color.Color) {
	if scale <= 0 {
		return
	}
	sw := w * scale
	vector.FillRect(screen, float32(x+(w-sw)/2), float32(y), float32(sw), 16, clr, false)
}

func drawCentered(screen *ebiten.Image, face ebtext.Face, s string, cx, cy, scale float64, clr color.Color) {
	tw, th := ebtext.Measure(s, face, 0)
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(-tw/2, -th/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(screen, s, face, op)
}

func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(float64(c.A)*math.Max(0, math.Min(1, a)) + 0.5)
	return c
}
