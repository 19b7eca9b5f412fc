package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/shopfront/state"
)

// Hotspot makes a box clickable. Anchor is the authored sign position in
// scene group space and is what a click forwards to the store.
type Hotspot struct {
	Section state.Section
	Anchor  mgl64.Vec3
}

var HotspotComponent = NewComponent[Hotspot]()
