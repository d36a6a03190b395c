// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package entity

import (
	"reflect"

	"cogentcore.org/viscera/accessor"
	"cogentcore.org/viscera/member"
)

// ObjectEntity is an entity for an object referred to by pointer,
// including engine objects other than game objects.
type ObjectEntity struct {
	Base

	target *target
}

func newObject(r *member.Registry, name string, typ reflect.Type, t *target) *ObjectEntity {
	return &ObjectEntity{Base: Base{Name: name, Type: typ, Registry: r}, target: t}
}

// NewObject returns a new entity bound directly to the given object.
func NewObject(r *member.Registry, name string, obj any) *ObjectEntity {
	return newObject(r, name, reflect.TypeOf(obj), &target{direct: true, value: obj})
}

// Target returns the inspected object, or nil if it has not
// been captured yet.
func (e *ObjectEntity) Target() any { return e.target.value }

func (e *ObjectEntity) CheckValue() bool { return e.target.check() }

func (e *ObjectEntity) Update() {
	if !e.target.direct && !e.target.captured && !e.target.check() {
		return
	}
	if !e.Scanned() {
		e.Members = Scan(e.Registry, accessor.NewConstant(e.target.value), e.Type)
	}
	e.updateMembers()
}

// StructEntity is an entity for a struct value read through an accessor.
// Its members write every edit back through that accessor. The value read
// by [StructEntity.CheckValue] is the one its members update from, so the
// accessor is read once per tick.
type StructEntity struct {
	Base

	acc *accessor.Cache
}

// NewStruct returns a new entity for the struct value of the given
// type read through the given accessor.
func NewStruct(r *member.Registry, name string, typ reflect.Type, acc accessor.Accessor) *StructEntity {
	return &StructEntity{Base: Base{Name: name, Type: typ, Registry: r}, acc: accessor.NewCache(acc)}
}

// CheckValue returns whether the accessor still reads a value
// of the type of the entity.
func (e *StructEntity) CheckValue() bool {
	v, err := e.acc.Read()
	return err == nil && v != nil && reflect.TypeOf(v) == e.Type
}

func (e *StructEntity) Update() {
	if !e.acc.Held() {
		e.acc.Read()
	}
	if !e.Scanned() {
		e.Members = ScanStruct(e.Registry, e.acc, e.Type)
	}
	e.updateMembers()
	e.acc.Release()
}
