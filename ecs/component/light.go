package component

import "image/color"

type LightKind string

const (
	LightAmbient     LightKind = "ambient"
	LightPoint       LightKind = "point"
	LightDirectional LightKind = "directional"
)

// Light contributes to box shading. Point lights use the Transform as their
// position; directional lights shine from the Transform toward the origin.
type Light struct {
	Kind      LightKind
	Color     color.RGBA
	Intensity float64
}

var LightComponent = NewComponent[Light]()
