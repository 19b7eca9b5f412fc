package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/shopfront/ecs"
	"github.com/milk9111/shopfront/ecs/component"
)

// dragThreshold is how far the pointer may travel while pressed and still
// count as a click on release.
const dragThreshold = 4.0

// PointerSample is the raw pointer state for one frame.
type PointerSample struct {
	X, Y    float64
	Pressed bool
	WheelY  float64
	OverUI  bool
}

type PointerSource interface {
	Sample() PointerSample
}

// EbitenPointer reads the mouse, falling back to the first touch.
type EbitenPointer struct {
	// OverUI reports whether the cursor is over a UI widget.
	OverUI func() bool

	touches []ebiten.TouchID
}

func (p *EbitenPointer) Sample() PointerSample {
	var s PointerSample
	cx, cy := ebiten.CursorPosition()
	s.X, s.Y = float64(cx), float64(cy)
	s.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	_, s.WheelY = ebiten.Wheel()

	p.touches = ebiten.AppendTouchIDs(p.touches[:0])
	if len(p.touches) > 0 {
		tx, ty := ebiten.TouchPosition(p.touches[0])
		s.X, s.Y = float64(tx), float64(ty)
		s.Pressed = true
	}

	if p.OverUI != nil {
		s.OverUI = p.OverUI()
	}
	return s
}

type InputSystem struct {
	source PointerSource

	lastX, lastY float64
	hasLast      bool
	wasPressed   bool
	pressOverUI  bool
	travel       float64
}

func NewInputSystem(source PointerSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.source == nil {
		return
	}

	s := i.source.Sample()

	dx, dy := 0.0, 0.0
	if i.hasLast {
		dx = s.X - i.lastX
		dy = s.Y - i.lastY
	}
	i.lastX, i.lastY, i.hasLast = s.X, s.Y, true

	justPressed := s.Pressed && !i.wasPressed
	justReleased := !s.Pressed && i.wasPressed
	if justPressed {
		i.travel = 0
		i.pressOverUI = s.OverUI
		// a new touch jumps; do not turn the jump into a drag
		dx, dy = 0, 0
	}
	if s.Pressed {
		i.travel += math.Hypot(dx, dy)
	}
	dragging := s.Pressed && !i.pressOverUI && i.travel > dragThreshold
	clicked := justReleased && !i.pressOverUI && !s.OverUI && i.travel <= dragThreshold
	i.wasPressed = s.Pressed

	ecs.ForEach(w, component.PointerComponent.Kind(), func(e ecs.Entity, p *component.Pointer) {
		p.X, p.Y = s.X, s.Y
		p.DX, p.DY = 0, 0
		if dragging {
			p.DX, p.DY = dx, dy
		}
		p.Wheel = s.WheelY
		p.Pressed = s.Pressed
		p.Dragging = dragging
		p.Clicked = clicked
		p.OverUI = s.OverUI
	})
}
