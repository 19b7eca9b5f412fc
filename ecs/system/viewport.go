package system

// Viewport is the logical screen size shared by the systems that project
// the scene. Layout updates it every frame.
type Viewport struct {
	Width  float64
	Height float64
}

func (v *Viewport) Set(w, h float64) {
	if v == nil {
		return
	}
	v.Width = w
	v.Height = h
}

func (v *Viewport) size() (float64, float64) {
	if v == nil || v.Width <= 0 || v.Height <= 0 {
		return 1, 1
	}
	return v.Width, v.Height
}
