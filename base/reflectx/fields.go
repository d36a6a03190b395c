// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
	"unsafe"
)

// EmbeddedBase returns the struct field that plays the role of a base
// type for the given struct type: its first anonymous field whose type is
// a (non-pointer) struct. Embedding chains are treated as inheritance levels.
func EmbeddedBase(typ reflect.Type) (reflect.StructField, bool) {
	typ = NonPointerType(typ)
	if typ == nil || typ.Kind() != reflect.Struct {
		return reflect.StructField{}, false
	}
	for i := range typ.NumField() {
		f := typ.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			return f, true
		}
	}
	return reflect.StructField{}, false
}

// BaseType returns the base type of the given struct type
// (see [EmbeddedBase]), or nil if it has none.
func BaseType(typ reflect.Type) reflect.Type {
	if f, ok := EmbeddedBase(typ); ok {
		return f.Type
	}
	return nil
}

// DeclaredFields returns the fields declared at the given struct type's own
// level: every field except its embedded base and blank (_) padding fields.
func DeclaredFields(typ reflect.Type) []reflect.StructField {
	typ = NonPointerType(typ)
	if typ == nil || typ.Kind() != reflect.Struct {
		return nil
	}
	base, hasBase := EmbeddedBase(typ)
	var fs []reflect.StructField
	for i := range typ.NumField() {
		f := typ.Field(i)
		if f.Name == "_" {
			continue
		}
		if hasBase && f.Index[0] == base.Index[0] {
			continue
		}
		fs = append(fs, f)
	}
	return fs
}

// VisibleFields returns all of the non-embedded fields reachable from the
// given struct type, including those promoted from embedded structs, in the
// order of [reflect.VisibleFields].
func VisibleFields(typ reflect.Type) []reflect.StructField {
	typ = NonPointerType(typ)
	if typ == nil || typ.Kind() != reflect.Struct {
		return nil
	}
	var fs []reflect.StructField
	for _, f := range reflect.VisibleFields(typ) {
		if f.Name == "_" || (f.Anonymous && f.Type.Kind() == reflect.Struct) {
			continue
		}
		fs = append(fs, f)
	}
	return fs
}

// FieldByIndex returns the nested field of the given struct value at the
// given index path, going through embedded pointers. It returns an invalid
// value instead of panicking if it runs into a nil embedded pointer.
// If the struct value is addressable, the result is settable even when
// the field is unexported.
func FieldByIndex(v reflect.Value, index []int) reflect.Value {
	v = NonPointerValue(v)
	for i, x := range index {
		if i > 0 {
			if v.Kind() == reflect.Pointer {
				if v.IsNil() {
					return reflect.Value{}
				}
				v = v.Elem()
			}
		}
		if !v.IsValid() || v.Kind() != reflect.Struct {
			return reflect.Value{}
		}
		v = v.Field(x)
	}
	return Settable(v)
}

// Settable returns a version of the given value that can be read through
// [reflect.Value.Interface] and written through [reflect.Value.Set] even if it
// was obtained through an unexported struct field. This is only possible for
// addressable values; others are returned unchanged.
func Settable(v reflect.Value) reflect.Value {
	if !v.IsValid() || v.CanSet() || !v.CanAddr() {
		return v
	}
	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
}

// Copy returns a new addressable value holding a copy of the given value.
// For value types this is a full copy; for reference types the copy still
// shares the referenced state.
func Copy(v reflect.Value) reflect.Value {
	nv := reflect.New(v.Type()).Elem()
	nv.Set(v)
	return nv
}
