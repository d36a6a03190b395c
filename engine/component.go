// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"reflect"
)

// Component is the interface that all components attached
// to a [GameObject] satisfy.
type Component interface {
	Object

	// AsComponent returns the [ComponentBase] of the component.
	AsComponent() *ComponentBase
}

// ComponentType is the [reflect.Type] of the [Component] interface.
var ComponentType = reflect.TypeFor[Component]()

// IsComponentType returns whether values of the given type are components.
func IsComponentType(typ reflect.Type) bool {
	return typ != nil && typ.Implements(ComponentType)
}

// ComponentBase is the root of every component. It is one of the
// framework types: inspectors list its surface through its own
// properties instead of walking into it.
type ComponentBase struct {
	ObjectBase

	gameObject *GameObject
}

func (c *ComponentBase) AsComponent() *ComponentBase { return c }

// GameObject returns the game object the component is attached to.
func (c *ComponentBase) GameObject() *GameObject { return c.gameObject }

// Tag returns the tag of the game object of the component.
func (c *ComponentBase) Tag() string {
	if c.gameObject == nil {
		return ""
	}
	return c.gameObject.Tag
}

// SetTag sets the tag of the game object of the component.
func (c *ComponentBase) SetTag(tag string) {
	if c.gameObject != nil {
		c.gameObject.Tag = tag
	}
}

// Transform returns the transform of the game object of the component.
func (c *ComponentBase) Transform() *Transform {
	if c.gameObject == nil {
		return nil
	}
	return c.gameObject.Transform()
}

// Active returns whether the game object of the component is active.
//
// Deprecated: use GameObject().ActiveSelf() instead.
func (c *ComponentBase) Active() bool {
	return c.gameObject != nil && c.gameObject.ActiveSelf()
}

// Behaviour is a component that can be enabled and disabled.
type Behaviour struct {
	ComponentBase

	enabled bool
}

// AsBehaviour returns the behaviour.
func (b *Behaviour) AsBehaviour() *Behaviour { return b }

// Enabled returns whether the behaviour is enabled.
func (b *Behaviour) Enabled() bool { return b.enabled }

// SetEnabled sets whether the behaviour is enabled.
func (b *Behaviour) SetEnabled(on bool) { b.enabled = on }

// IsActiveAndEnabled returns whether the behaviour is enabled
// and its game object is active.
func (b *Behaviour) IsActiveAndEnabled() bool {
	return b.enabled && b.gameObject != nil && b.gameObject.ActiveSelf()
}

// Script is the base type of user scripts: a [Behaviour]
// that is updated every frame through [Updater].
type Script struct {
	Behaviour

	useLayout bool
}

// UseLayout returns whether the script takes part in layout passes.
func (s *Script) UseLayout() bool { return s.useLayout }

// SetUseLayout sets whether the script takes part in layout passes.
func (s *Script) SetUseLayout(on bool) { s.useLayout = on }

// Updater is implemented by scripts that are updated every frame.
type Updater interface {
	Update(dt float32)
}

// FrameworkTypes are the framework root types of components. Inspectors
// stop walking an embedding chain when they reach one of them.
var FrameworkTypes = map[reflect.Type]bool{
	reflect.TypeFor[ComponentBase](): true,
	reflect.TypeFor[Behaviour]():     true,
	reflect.TypeFor[Script]():        true,
}

// IsFrameworkType returns whether the given type is one of the [FrameworkTypes].
func IsFrameworkType(typ reflect.Type) bool {
	return FrameworkTypes[typ]
}

func init() {
	MarkDeprecated(reflect.TypeFor[ComponentBase](), "Active")
}
