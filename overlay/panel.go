package overlay

import (
	"image/color"
	"log"
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/shopfront/prefabs"
	"github.com/milk9111/shopfront/state"
	"golang.org/x/image/font/basicfont"
)

const (
	panelMaxWidth = 672.0
	panelMargin   = 16.0
	panelPadding  = 32.0
	panelTop      = 80.0
	slideDistance = 50.0
	wheelPixels   = 40.0
)

var (
	panelBackground = color.NRGBA{A: 128}
	styleColors     = map[LineStyle]color.NRGBA{
		StyleTitle:      {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		StyleHeading:    {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		StyleSubheading: {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		StyleBody:       {R: 0xd1, G: 0xd5, B: 0xdb, A: 0xff},
		StyleMeta:       {R: 0x9c, G: 0xa3, B: 0xaf, A: 0xff},
		StyleBullet:     {R: 0xd1, G: 0xd5, B: 0xdb, A: 0xff},
		StyleTags:       {R: 0xd8, G: 0xb4, B: 0xfe, A: 0xff},
		StyleLink:       {R: 0xd1, G: 0xd5, B: 0xdb, A: 0xff},
		StyleAction:     {R: 0xf8, G: 0x71, B: 0x71, A: 0xff},
	}
	hoverColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// PanelInput is the pointer state the panel reacts to.
type PanelInput struct {
	X, Y    float64
	Clicked bool
	Wheel   float64
}

// Panel shows the content of the open section. It slides up and fades in
// on selection and out on deselection.
type Panel struct {
	store    *state.Store
	sections map[state.Section]prefabs.SectionSpec
	platform Platform

	shown   state.Section
	visible bool

	offset, offsetVel float64
	alpha, alphaVel   float64
	spring            harmonica.Spring

	scroll    float64
	lines     []Line
	height    float64
	layoutW   float64
	width     float64
	viewportH float64
	hover     int

	face    ebtext.Face
	metrics Metrics
}

func NewPanel(store *state.Store, spec prefabs.SectionsSpec, platform Platform) *Panel {
	p := &Panel{
		store:   store,
		spring:  harmonica.NewSpring(harmonica.FPS(60), 8.0, 1.0),
		face:    ebtext.NewGoXFace(basicfont.Face7x13),
		metrics: Metrics{CharWidth: 7, LineHeight: 13},
		hover:   -1,
	}
	p.SetContent(spec)
	if platform == nil {
		platform = DefaultPlatform()
	}
	p.platform = platform
	if store != nil {
		store.Subscribe(p.onChange)
	}
	return p
}

// SetContent replaces the section texts, for example after a prefab reload.
func (p *Panel) SetContent(spec prefabs.SectionsSpec) {
	p.sections = make(map[state.Section]prefabs.SectionSpec, len(spec.Sections))
	for _, s := range spec.Sections {
		section, err := state.ParseSection(s.ID)
		if err != nil || !section.Selectable() {
			log.Printf("overlay: skip section %q: %v", s.ID, err)
			continue
		}
		p.sections[section] = s
	}
	p.layoutW = 0
}

func (p *Panel) onChange(c state.Change) {
	switch c.Kind {
	case state.ChangeSelect:
		if c.Section != p.shown || !p.visible {
			p.offset, p.offsetVel = slideDistance, 0
			p.alpha, p.alphaVel = 0, 0
			p.scroll = 0
		}
		p.shown = c.Section
		p.visible = true
		p.layoutW = 0
	case state.ChangeDeselect:
		p.visible = false
	}
}

// Shown is the section currently on screen, including during the exit
// animation.
func (p *Panel) Shown() state.Section { return p.shown }

func (p *Panel) Visible() bool { return p.visible }

func (p *Panel) Alpha() float64 { return p.alpha }

func (p *Panel) Scroll() float64 { return p.scroll }

// Blocking reports whether the panel covers the scene and should swallow
// pointer input.
func (p *Panel) Blocking() bool {
	return p.shown != state.SectionNone && p.alpha > 0.05
}

// Update advances the animation and handles scrolling and link clicks.
func (p *Panel) Update(in PanelInput, width, height float64) {
	p.width, p.viewportH = width, height

	targetOffset, targetAlpha := slideDistance, 0.0
	if p.visible {
		targetOffset, targetAlpha = 0, 1
	}
	p.offset, p.offsetVel = p.spring.Update(p.offset, p.offsetVel, targetOffset)
	p.alpha, p.alphaVel = p.spring.Update(p.alpha, p.alphaVel, targetAlpha)
	p.alpha = math.Max(0, math.Min(1, p.alpha))
	if !p.visible && p.alpha < 0.01 {
		p.shown = state.SectionNone
		p.lines = nil
		return
	}
	if p.shown == state.SectionNone {
		return
	}

	p.relayout()

	if in.Wheel != 0 && (p.store == nil || !p.store.ScrollLocked()) {
		p.scroll -= in.Wheel * wheelPixels
	}
	p.scroll = math.Max(0, math.Min(p.scroll, p.maxScroll()))

	p.hover = p.lineAt(in.X, in.Y)
	if !in.Clicked || p.hover < 0 || !p.visible {
		return
	}
	p.trigger(p.lines[p.hover].Action)
}

func (p *Panel) trigger(a Action) {
	if p.platform == nil {
		return
	}
	switch a.Kind {
	case ActionOpen:
		if err := p.platform.OpenURL(a.Target); err != nil {
			log.Printf("overlay: open %s: %v", a.Target, err)
		}
	case ActionCopy:
		if err := p.platform.CopyText(a.Target); err != nil {
			log.Printf("overlay: copy: %v", err)
		}
	}
}

func (p *Panel) relayout() {
	cardW := p.cardWidth()
	if p.layoutW == cardW && p.lines != nil {
		return
	}
	p.lines, p.height = LayoutSection(p.sections[p.shown], cardW-2*panelPadding, p.metrics)
	p.layoutW = cardW
}

func (p *Panel) cardWidth() float64 {
	return math.Max(120, math.Min(panelMaxWidth, p.width-2*panelMargin))
}

func (p *Panel) cardRect() (x, y, w, h float64) {
	w = p.cardWidth()
	x = (p.width - w) / 2
	y = panelTop - p.scroll + p.offset
	h = p.height + 2*panelPadding
	return x, y, w, h
}

func (p *Panel) maxScroll() float64 {
	_, _, _, h := p.cardRect()
	return math.Max(0, h+2*panelTop-p.viewportH)
}

// lineAt returns the index of the actionable line under the point, or -1.
func (p *Panel) lineAt(x, y float64) int {
	cx, cy, _, _ := p.cardRect()
	for i, l := range p.lines {
		if l.Action.Kind == ActionNone {
			continue
		}
		lx := cx + panelPadding
		ly := cy + panelPadding + l.Y
		if x >= lx && x <= lx+l.Width && y >= ly && y <= ly+l.Height {
			return i
		}
	}
	return -1
}

func (p *Panel) Draw(screen *ebiten.Image) {
	if p.shown == state.SectionNone || p.alpha <= 0 {
		return
	}
	x, y, w, h := p.cardRect()
	bg := panelBackground
	bg.A = uint8(float64(bg.A) * p.alpha)
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), bg, true)

	for i, l := range p.lines {
		ly := y + panelPadding + l.Y
		if ly+l.Height < 0 || ly > p.viewportH {
			continue
		}
		clr := styleColors[l.Style]
		if i == p.hover {
			clr = hoverColor
		}
		scale := l.Style.scale()
		op := &ebtext.DrawOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x+panelPadding, ly)
		op.ColorScale.ScaleWithColor(clr)
		op.ColorScale.ScaleAlpha(float32(p.alpha))
		ebtext.Draw(screen, l.Text, p.face, op)
	}
}
