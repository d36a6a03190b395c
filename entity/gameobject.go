// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package entity

import (
	"reflect"

	"cogentcore.org/viscera/accessor"
	"cogentcore.org/viscera/base/labels"
	"cogentcore.org/viscera/base/plan"
	"cogentcore.org/viscera/engine"
	"cogentcore.org/viscera/member"
)

// GameObjectEntity is an entity for a game object. In addition to the
// members of the game object itself, it keeps one [ComponentEntity] per
// attached component, matched to the components by instance identifier on
// every update so that their state survives reordering and reloading.
type GameObjectEntity struct {
	Base

	// Components are the entities of the attached components,
	// in component order.
	Components []*ComponentEntity

	target *target
}

func newGameObject(r *member.Registry, name string, t *target) *GameObjectEntity {
	return &GameObjectEntity{Base: Base{Name: name, Type: reflect.TypeFor[*engine.GameObject](), Registry: r}, target: t}
}

// NewGameObject returns a new entity bound directly to the given game object.
func NewGameObject(r *member.Registry, g *engine.GameObject) *GameObjectEntity {
	return newGameObject(r, g.Name, &target{direct: true, value: g})
}

// GameObject returns the inspected game object, or nil if it has
// not been captured yet.
func (e *GameObjectEntity) GameObject() *engine.GameObject {
	g, _ := e.target.value.(*engine.GameObject)
	return g
}

func (e *GameObjectEntity) CheckValue() bool { return e.target.check() }

func (e *GameObjectEntity) Update() {
	if !e.target.direct && !e.target.captured && !e.target.check() {
		return
	}
	g := e.GameObject()
	if !e.Scanned() {
		e.Members = Scan(e.Registry, accessor.NewConstant(g), e.Type)
	}
	e.updateMembers()
	cs := g.GetComponents()
	ids := make([]int64, len(cs))
	for i, c := range cs {
		ids[i] = c.InstanceID()
	}
	e.Components, _ = plan.UpdateByKey(e.Components, ids, func(ce *ComponentEntity) int64 { return ce.id },
		func(i int) *ComponentEntity { return NewComponent(e.Registry, cs[i]) }, nil)
	for _, ce := range e.Components {
		ce.CheckValue()
		ce.Header.Update()
		if ce.Expanded {
			ce.Update()
		}
	}
}

// ComponentEntity is an entity for one component of a game object.
// It finds the live component again on every check, among the components
// of the same type on the game object, by its instance identifier. If the
// live instance has changed, as after a reload, it scans the new instance.
type ComponentEntity struct {
	Base

	// Header is the member standing for the component in the list of
	// components of its game object; drilling into it opens the component.
	Header *member.Member

	// Expanded is whether the members of the component are shown and
	// updated within the entity of its game object.
	Expanded bool

	gameObject *engine.GameObject
	id         int64
	instance   engine.Component
}

// NewComponent returns a new entity for the given component.
func NewComponent(r *member.Registry, c engine.Component) *ComponentEntity {
	typ := reflect.TypeOf(c)
	e := &ComponentEntity{
		Base:       Base{Name: labels.TypeLabel(typ), Type: typ, Registry: r},
		gameObject: c.AsComponent().GameObject(),
		id:         c.InstanceID(),
		instance:   c,
	}
	e.Header = r.NewVariant(member.ComponentVariant, e.Name, typ, accessor.NewFunc(func() (any, error) {
		return e.instance, nil
	}))
	e.Header.Kind = member.Component
	return e
}

// Component returns the live component.
func (e *ComponentEntity) Component() engine.Component { return e.instance }

func (e *ComponentEntity) CheckValue() bool {
	if !alive(e.gameObject) {
		return false
	}
	for _, c := range e.gameObject.ComponentsOfType(e.Type) {
		if c.InstanceID() != e.id {
			continue
		}
		if c != e.instance {
			e.instance = c
			e.Members = nil
		}
		return true
	}
	return false
}

func (e *ComponentEntity) Update() {
	if !e.Scanned() {
		e.Members = Scan(e.Registry, accessor.NewConstant(e.instance), e.Type)
	}
	e.updateMembers()
}
