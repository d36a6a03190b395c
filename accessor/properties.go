// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package accessor

import (
	"reflect"

	"cogentcore.org/viscera/base/reflectx"
)

// Property returns an accessor for the given property of the values produced
// by the given outer accessor, which are of the given container type.
// Properties of struct values are evaluated on a copy and written back
// through the outer accessor. Properties of pointed-to objects are called
// directly, behind a [Gate] that starts closed.
func Property(outer Accessor, container reflect.Type, prop reflectx.Property) Accessor {
	if reflectx.IsReferenceType(container) {
		return &ObjectProperty{Outer: outer, Property: prop}
	}
	return &StructProperty{Outer: outer, Property: prop}
}

// StructProperty accesses a property of a struct value. The getter and the
// setter are called on an addressable copy of the struct, and after a set
// the copy is written back through the outer accessor.
type StructProperty struct {
	Outer    Accessor
	Property reflectx.Property
}

func (a *StructProperty) Get() (any, error) {
	if !a.Property.CanRead() {
		return nil, nil
	}
	return guard(func() (any, error) {
		cv, err := container(a.Outer)
		if !cv.IsValid() {
			return nil, err
		}
		v, err := a.Property.Get(reflectx.Copy(cv).Addr())
		return reflectx.Interface(v), err
	})
}

func (a *StructProperty) Set(value any) error {
	if !a.Property.CanWrite() {
		return nil
	}
	return guardSet(func() error {
		cv, err := container(a.Outer)
		if !cv.IsValid() {
			return err
		}
		cp := reflectx.Copy(cv)
		if err := a.Property.Set(cp.Addr(), reflectx.ValueOf(value, a.Property.Type)); err != nil {
			return err
		}
		return a.Outer.Set(cp.Interface())
	})
}

func (a *StructProperty) CanWrite() bool {
	return a.Property.CanWrite() && CanWrite(a.Outer)
}

// ObjectProperty accesses a property of an object through a pointer to it.
// Its getter is only called once the accessor has been materialized,
// since calling it may change the observed object.
type ObjectProperty struct {
	Outer    Accessor
	Property reflectx.Property

	materialized bool
}

func (a *ObjectProperty) Materialized() bool { return a.materialized }

func (a *ObjectProperty) Materialize() { a.materialized = true }

func (a *ObjectProperty) Get() (any, error) {
	if !a.materialized {
		return NotEvaluated, nil
	}
	if !a.Property.CanRead() {
		return nil, nil
	}
	return guard(func() (any, error) {
		cv, err := container(a.Outer)
		if !cv.IsValid() {
			return nil, err
		}
		v, err := a.Property.Get(cv)
		return reflectx.Interface(v), err
	})
}

func (a *ObjectProperty) Set(value any) error {
	if !a.Property.CanWrite() {
		return nil
	}
	return guardSet(func() error {
		cv, err := container(a.Outer)
		if !cv.IsValid() {
			return err
		}
		return a.Property.Set(cv, reflectx.ValueOf(value, a.Property.Type))
	})
}

func (a *ObjectProperty) CanWrite() bool { return a.Property.CanWrite() }
