// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"reflect"
	"slices"
	"sync/atomic"

	"github.com/jinzhu/copier"
)

// Scene is a list of root game objects that are updated together.
type Scene struct {
	Name string

	objects []*GameObject
}

// Add adds the given game objects to the scene.
func (s *Scene) Add(gs ...*GameObject) {
	s.objects = append(s.objects, gs...)
}

// Objects returns the live game objects of the scene.
func (s *Scene) Objects() []*GameObject {
	s.objects = slices.DeleteFunc(s.objects, func(g *GameObject) bool { return g.IsDestroyed() })
	return slices.Clone(s.objects)
}

// Find returns the first live game object with the given name, or nil.
func (s *Scene) Find(name string) *GameObject {
	for _, g := range s.Objects() {
		if g.Name == name {
			return g
		}
	}
	return nil
}

var activeScene atomic.Pointer[Scene]

// SetActiveScene makes the given scene the one searched by [FindObject].
func SetActiveScene(s *Scene) { activeScene.Store(s) }

// ActiveScene returns the active scene, or nil if there is none.
func ActiveScene() *Scene { return activeScene.Load() }

// FindObject returns the first live object of the active scene that can be
// assigned to a slot of the given type, among the game objects with the
// given name and their components, or nil if there is none.
func FindObject(name string, typ reflect.Type) Object {
	s := ActiveScene()
	if s == nil {
		return nil
	}
	for _, g := range s.Objects() {
		if g.Name != name {
			continue
		}
		if reflect.TypeOf(g).AssignableTo(typ) {
			return g
		}
		for _, c := range g.GetComponents() {
			if IsAlive(c) && reflect.TypeOf(c).AssignableTo(typ) {
				return c
			}
		}
	}
	return nil
}

// Update updates every game object of the scene.
func (s *Scene) Update(dt float32) {
	for _, g := range s.Objects() {
		g.Update(dt)
	}
}

// Instantiate returns a clone of the given game object with a new identity,
// added to the scene. Exported fields of the components are copied; objects
// referenced by them are shared with the original.
func (s *Scene) Instantiate(g *GameObject) (*GameObject, error) {
	ng := &GameObject{ObjectBase: ObjectBase{Name: g.Name + " (Clone)"}, Tag: g.Tag, Layer: g.Layer, active: g.active}
	for _, c := range g.components {
		nc := reflect.New(reflect.TypeOf(c).Elem()).Interface().(Component)
		if err := copier.Copy(nc, c); err != nil {
			return nil, err
		}
		cb := nc.AsComponent()
		cb.Name, cb.id, cb.destroyed = "", 0, false
		ng.AddComponent(nc)
		if b, ok := c.(interface{ AsBehaviour() *Behaviour }); ok {
			nc.(interface{ AsBehaviour() *Behaviour }).AsBehaviour().enabled = b.AsBehaviour().enabled
		}
	}
	s.Add(ng)
	return ng, nil
}

// Destroy destroys the given game object and removes it from the scene.
func (s *Scene) Destroy(g *GameObject) {
	g.Destroy()
	s.objects = slices.DeleteFunc(s.objects, func(o *GameObject) bool { return o == g })
}

// Selection is the source of the currently selected object.
type Selection struct {
	active any
}

// Select makes the given object the active selection.
func (s *Selection) Select(obj any) { s.active = obj }

// Active returns the active selection, or nil if it is empty
// or a destroyed engine object.
func (s *Selection) Active() any {
	if o, ok := s.active.(Object); ok && !IsAlive(o) {
		return nil
	}
	return s.active
}
