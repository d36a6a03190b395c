// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"reflect"
	"slices"
)

// GameObject is a named container of components. Every game object
// has a [Transform] as its first component.
type GameObject struct {
	ObjectBase

	// Tag is the tag of the game object; see [Tags].
	Tag string

	// Layer is the layer index of the game object, in [0, 31].
	Layer int

	active     bool
	components []Component
}

// NewGameObject returns a new active game object with the given name,
// a [Transform] and the given additional components.
func NewGameObject(name string, components ...Component) *GameObject {
	g := &GameObject{ObjectBase: ObjectBase{Name: name}, Tag: "Untagged", active: true}
	g.AddComponent(NewTransform())
	for _, c := range components {
		g.AddComponent(c)
	}
	return g
}

// AddComponent attaches the given component to the game object and
// returns it. Behaviours start enabled.
func (g *GameObject) AddComponent(c Component) Component {
	cb := c.AsComponent()
	cb.gameObject = g
	if cb.Name == "" {
		cb.Name = g.Name
	}
	if b, ok := c.(interface{ AsBehaviour() *Behaviour }); ok {
		b.AsBehaviour().enabled = true
	}
	g.components = append(g.components, c)
	return c
}

// RemoveComponent detaches and destroys the given component.
// The transform cannot be removed.
func (g *GameObject) RemoveComponent(c Component) {
	if _, ok := c.(*Transform); ok {
		return
	}
	i := slices.Index(g.components, c)
	if i < 0 {
		return
	}
	g.components = slices.Delete(g.components, i, i+1)
	cb := c.AsComponent()
	cb.gameObject = nil
	cb.destroyed = true
}

// Reload replaces the given component with a new instance of the same
// type, as happens when a script is reloaded: the new component takes over
// the slot and the instance identifier of the old one, which is destroyed.
// It returns false if the component is not attached to the game object
// or the types differ.
func (g *GameObject) Reload(old, c Component) bool {
	i := slices.Index(g.components, old)
	if i < 0 || reflect.TypeOf(old) != reflect.TypeOf(c) {
		return false
	}
	ob, cb := old.AsComponent(), c.AsComponent()
	cb.gameObject = g
	cb.id = ob.InstanceID()
	if cb.Name == "" {
		cb.Name = ob.Name
	}
	if b, ok := c.(interface{ AsBehaviour() *Behaviour }); ok {
		b.AsBehaviour().enabled = old.(interface{ AsBehaviour() *Behaviour }).AsBehaviour().enabled
	}
	g.components[i] = c
	ob.gameObject = nil
	ob.destroyed = true
	return true
}

// GetComponents returns a copy of the list of components of the game object.
func (g *GameObject) GetComponents() []Component {
	return slices.Clone(g.components)
}

// ComponentsOfType returns the components of the game object whose
// type is the given type.
func (g *GameObject) ComponentsOfType(typ reflect.Type) []Component {
	var cs []Component
	for _, c := range g.components {
		if reflect.TypeOf(c) == typ {
			cs = append(cs, c)
		}
	}
	return cs
}

// Transform returns the transform of the game object.
func (g *GameObject) Transform() *Transform {
	if len(g.components) == 0 {
		return nil
	}
	t, _ := g.components[0].(*Transform)
	return t
}

// ActiveSelf returns whether the game object itself is active.
func (g *GameObject) ActiveSelf() bool { return g.active }

// SetActive sets whether the game object is active.
func (g *GameObject) SetActive(on bool) { g.active = on }

// Destroy destroys the game object and all of its components.
func (g *GameObject) Destroy() {
	for _, c := range g.components {
		c.AsComponent().destroyed = true
	}
	g.destroyed = true
}

// Update updates every enabled [Updater] component of an active game object.
func (g *GameObject) Update(dt float32) {
	if !g.active || g.destroyed {
		return
	}
	for _, c := range g.GetComponents() {
		if b, ok := c.(interface{ AsBehaviour() *Behaviour }); ok && !b.AsBehaviour().enabled {
			continue
		}
		if u, ok := c.(Updater); ok {
			u.Update(dt)
		}
	}
}

// Transform is the position, rotation and scale of a game object.
type Transform struct {
	ComponentBase

	Position Vector3
	Rotation Quaternion
	Scale    Vector3
}

// NewTransform returns a new identity transform.
func NewTransform() *Transform {
	return &Transform{Rotation: QuaternionIdentity(), Scale: Vector3{1, 1, 1}}
}

// Forward returns the forward (+Z) direction of the transform.
func (t *Transform) Forward() Vector3 {
	return t.Rotation.Rotate(Vector3{0, 0, 1})
}

// Translate moves the transform by the given offset.
func (t *Transform) Translate(d Vector3) {
	t.Position = t.Position.Add(d)
}
