// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package accessor

import (
	"reflect"

	"cogentcore.org/viscera/base/reflectx"
)

// Field returns an accessor for the given field of the values produced by
// the given outer accessor, which are of the given container type. Fields
// of struct values are written back through the outer accessor; fields of
// pointed-to structs are mutated in place.
func Field(outer Accessor, container reflect.Type, field reflect.StructField) Accessor {
	if reflectx.IsReferenceType(container) {
		return &ObjectField{Outer: outer, Field: field}
	}
	return &StructField{Outer: outer, Field: field}
}

// StructField accesses a field of a struct value. Setting it copies the
// current struct, sets the field in the copy and sets the copy through
// the outer accessor.
type StructField struct {
	Outer Accessor
	Field reflect.StructField
}

func (a *StructField) Get() (any, error) {
	return guard(func() (any, error) {
		cv, err := container(a.Outer)
		if !cv.IsValid() {
			return nil, err
		}
		fv := reflectx.FieldByIndex(reflectx.Copy(cv), a.Field.Index)
		return reflectx.Interface(fv), nil
	})
}

func (a *StructField) Set(value any) error {
	return guardSet(func() error {
		cv, err := container(a.Outer)
		if !cv.IsValid() {
			return err
		}
		cp := reflectx.Copy(cv)
		fv := reflectx.FieldByIndex(cp, a.Field.Index)
		if !fv.CanSet() {
			return nil
		}
		fv.Set(reflectx.ValueOf(value, fv.Type()))
		return a.Outer.Set(cp.Interface())
	})
}

func (a *StructField) CanWrite() bool { return CanWrite(a.Outer) }

// ObjectField accesses a field of a struct through a pointer to it.
// Setting it mutates the pointed-to struct directly.
type ObjectField struct {
	Outer Accessor
	Field reflect.StructField
}

func (a *ObjectField) Get() (any, error) {
	return guard(func() (any, error) {
		cv, err := container(a.Outer)
		if !cv.IsValid() {
			return nil, err
		}
		return reflectx.Interface(reflectx.FieldByIndex(cv, a.Field.Index)), nil
	})
}

func (a *ObjectField) Set(value any) error {
	return guardSet(func() error {
		cv, err := container(a.Outer)
		if !cv.IsValid() {
			return err
		}
		fv := reflectx.FieldByIndex(cv, a.Field.Index)
		if !fv.CanSet() {
			return nil
		}
		fv.Set(reflectx.ValueOf(value, fv.Type()))
		return nil
	})
}
