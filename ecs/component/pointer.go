package component

// Pointer stores per-frame mouse or touch state.
type Pointer struct {
	X, Y     float64
	DX, DY   float64
	Wheel    float64
	Pressed  bool
	Dragging bool
	// Clicked is set on the frame a press is released without having dragged.
	Clicked bool
	OverUI  bool
}

var PointerComponent = NewComponent[Pointer]()
