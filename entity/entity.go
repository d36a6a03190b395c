// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package entity provides entities: named scans of one inspected object
// into a flat list of members. An entity scans its object the first time
// it is updated and then only refreshes its members, and it reports
// through [Entity.CheckValue] whether it still stands for the object it
// was made for.
package entity

import (
	"reflect"

	"cogentcore.org/viscera/accessor"
	"cogentcore.org/viscera/base/labels"
	"cogentcore.org/viscera/base/reflectx"
	"cogentcore.org/viscera/engine"
	"cogentcore.org/viscera/member"
)

// Entity is the interface that all entities satisfy.
type Entity interface {

	// AsEntity returns the [Base] of the entity.
	AsEntity() *Base

	// CheckValue returns whether the entity is still valid. Once it
	// returns false, the entity and everything opened from it must be
	// discarded. Calling it on an unchanged target has no effect.
	CheckValue() bool

	// Update scans the members if needed and refreshes them.
	Update()
}

// Base is the common part of all entities; it implements [Entity.AsEntity].
type Base struct {

	// Name is the name of the entity, shown in the breadcrumbs.
	Name string

	// Type is the type of the inspected value.
	Type reflect.Type

	// Members are the members of the entity, in scan order.
	Members []*member.Member

	// Registry is the registry used to make the members.
	Registry *member.Registry
}

func (b *Base) AsEntity() *Base { return b }

// Scanned returns whether the members have been scanned.
func (b *Base) Scanned() bool { return b.Members != nil }

// updateMembers refreshes every member.
func (b *Base) updateMembers() {
	for _, m := range b.Members {
		m.Update()
	}
}

// Member returns the visible member with the given entity name, or nil.
func (b *Base) Member(name string) *member.Member {
	var found *member.Member
	for _, m := range b.Members {
		m.Walk(func(c *member.Member) bool {
			if c.EntityName == name {
				found = c
			}
			return found == nil
		})
		if found != nil {
			break
		}
	}
	return found
}

// alive returns whether the given value is present: non-nil and,
// for engine objects, not destroyed.
func alive(v any) bool {
	if reflectx.IsNil(v) {
		return false
	}
	if o, ok := v.(engine.Object); ok {
		return !o.IsDestroyed()
	}
	return true
}

// target tracks the object inspected by an entity. A direct target is
// bound to the object itself. Otherwise the first successful read of the
// accessor captures the object, and the target stays valid only while the
// accessor keeps returning that same object.
type target struct {
	acc      accessor.Accessor
	direct   bool
	value    any
	captured bool
}

func (t *target) check() bool {
	if t.direct {
		return alive(t.value)
	}
	v, err := t.acc.Get()
	if err != nil || !alive(v) {
		return false
	}
	if !t.captured {
		t.value, t.captured = v, true
		return true
	}
	return reflectx.SameIdentity(v, t.value)
}

// New returns a new entity with the given name for the value of the given
// type read through the given accessor, as made when drilling into a
// member. The kind of entity depends on the type: game objects, other
// objects referred to by pointer, and struct values.
func New(r *member.Registry, name string, typ reflect.Type, acc accessor.Accessor) Entity {
	switch {
	case typ == reflect.TypeFor[*engine.GameObject]():
		return newGameObject(r, name, &target{acc: acc})
	case typ.Kind() == reflect.Struct:
		return NewStruct(r, name, typ, acc)
	}
	return newObject(r, name, typ, &target{acc: acc})
}

// FromMember returns a new entity opened on the current value of the
// given member. Component headers open the component they stand for.
func FromMember(m *member.Member) Entity {
	r := m.Registry()
	if m.Kind == member.Component {
		if c, ok := m.Value.(engine.Component); ok {
			return NewComponent(r, c)
		}
	}
	return New(r, m.Name, m.ValueType(), m.Accessor)
}

// ForSelection returns a new entity bound directly to the given selected
// object, or nil if there is nothing to inspect.
func ForSelection(r *member.Registry, obj any) Entity {
	if !alive(obj) {
		return nil
	}
	typ := reflect.TypeOf(obj)
	name := labels.TypeLabel(typ)
	if o, ok := obj.(engine.Object); ok {
		name = o.ObjectName()
	}
	switch {
	case typ == reflect.TypeFor[*engine.GameObject]():
		return newGameObject(r, name, &target{direct: true, value: obj})
	case typ.Kind() == reflect.Struct:
		return NewStruct(r, name, typ, accessor.NewConstant(obj))
	}
	return newObject(r, name, typ, &target{direct: true, value: obj})
}
