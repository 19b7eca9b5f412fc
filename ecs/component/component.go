// Package component declares the data attached to scene entities. Each
// component type registers a process-wide kind once, at package init.
package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID keys a component store inside a world. Zero is never issued.
type ComponentID uint32

var nextComponentID atomic.Uint32

// ComponentKind is the typed key used by ecs.Add, ecs.Get and friends.
type ComponentKind[T any] struct {
	id ComponentID
}

func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{id: ComponentID(nextComponentID.Add(1))}
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

// Valid is false for the zero ComponentKind.
func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

// ComponentHandle is what each component file exports, e.g.
// CameraComponent = NewComponent[Camera]().
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

// NewComponent registers a new kind for T. Calling it twice for the same T
// yields two distinct stores.
func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }
