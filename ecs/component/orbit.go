package component

import "github.com/milk9111/shopfront/camera"

// OrbitControl lets the visitor rotate and zoom the camera around a pivot.
type OrbitControl struct {
	Orbit       camera.Orbit
	Enabled     bool
	EnableZoom  bool
	EnablePan   bool
	RotateSpeed float64
	ZoomSpeed   float64
}

var OrbitControlComponent = NewComponent[OrbitControl]()
