// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine is the in-process host object model that viscera
// inspects: identity-comparable live objects ([Object]), game objects
// that own a list of components, the framework component roots that user
// scripts embed, and the engine value types (vectors, colors, layers).
package engine

import (
	"reflect"
	"sync/atomic"

	"cogentcore.org/viscera/base/reflectx"
)

// Object is the interface that all live engine objects satisfy.
// Engine objects are compared by identity and can be destroyed,
// after which they must be treated as absent.
type Object interface {

	// AsObject returns the [ObjectBase] of the object.
	AsObject() *ObjectBase

	// InstanceID returns the unique, stable identifier of the object.
	InstanceID() int64

	// ObjectName returns the name of the object.
	ObjectName() string

	// IsDestroyed returns whether the object has been destroyed.
	IsDestroyed() bool
}

// ObjectBase implements [Object]; it is embedded by every engine object.
type ObjectBase struct {

	// Name is the name of the object.
	Name string

	id        int64
	destroyed bool
}

var lastInstanceID atomic.Int64

func (o *ObjectBase) AsObject() *ObjectBase { return o }

// InstanceID returns the unique identifier of the object,
// assigning one the first time it is called.
func (o *ObjectBase) InstanceID() int64 {
	if o.id == 0 {
		o.id = lastInstanceID.Add(1)
	}
	return o.id
}

func (o *ObjectBase) ObjectName() string { return o.Name }

func (o *ObjectBase) IsDestroyed() bool { return o.destroyed }

// HideFlags is a deprecated legacy property kept for older scripts.
func (o *ObjectBase) HideFlags() int { return 0 }

func init() {
	MarkDeprecated(reflect.TypeFor[ObjectBase](), "HideFlags")
}

// IsAlive returns whether the given object is non-nil and not destroyed.
func IsAlive(o Object) bool {
	return o != nil && !reflectx.IsNil(o) && !o.IsDestroyed()
}

// ObjectType is the [reflect.Type] of the [Object] interface.
var ObjectType = reflect.TypeFor[Object]()

// IsObjectType returns whether values of the given type are engine objects.
func IsObjectType(typ reflect.Type) bool {
	return typ != nil && typ.Implements(ObjectType)
}

// deprecated records the deprecated members of framework types.
var deprecated = map[reflect.Type]map[string]bool{}

// MarkDeprecated records the given field or property names of the given
// framework type as deprecated, so that they are not listed by inspectors.
func MarkDeprecated(typ reflect.Type, names ...string) {
	typ = reflectx.NonPointerType(typ)
	m := deprecated[typ]
	if m == nil {
		m = map[string]bool{}
		deprecated[typ] = m
	}
	for _, nm := range names {
		m[nm] = true
	}
}

// IsDeprecated returns whether the given member name is deprecated on
// the given type or on any type in its embedding chain.
func IsDeprecated(typ reflect.Type, name string) bool {
	for typ = reflectx.NonPointerType(typ); typ != nil; typ = reflectx.BaseType(typ) {
		if deprecated[typ][name] {
			return true
		}
	}
	return false
}
