package component

import "image/color"

// Sky is the vertical gradient drawn behind the scene.
type Sky struct {
	Top    color.RGBA
	Middle color.RGBA
	Bottom color.RGBA
}

var SkyComponent = NewComponent[Sky]()
