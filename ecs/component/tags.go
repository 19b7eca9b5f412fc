package component

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// PropTag marks boxes generated by the props script so a reload can replace them.
type PropTag struct{}

var PropTagComponent = NewComponent[PropTag]()

// SceneTag marks every entity built from the scene prefab.
type SceneTag struct{}

var SceneTagComponent = NewComponent[SceneTag]()
