// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

// ValueOf returns the [reflect.Value] of the given value converted to the
// given type. A nil value becomes the zero value of the type.
func ValueOf(value any, typ reflect.Type) reflect.Value {
	if value == nil {
		return reflect.Zero(typ)
	}
	return Convert(reflect.ValueOf(value), typ)
}

// Convert converts the given value to the given type if it is not already
// of that type and the conversion is possible. An invalid value becomes the
// zero value of the type.
func Convert(v reflect.Value, typ reflect.Type) reflect.Value {
	if !v.IsValid() {
		return reflect.Zero(typ)
	}
	if v.Type() == typ || typ.Kind() == reflect.Interface && v.Type().Implements(typ) {
		return v
	}
	if v.Kind() == reflect.Interface && !v.IsNil() {
		return Convert(v.Elem(), typ)
	}
	if v.Type().ConvertibleTo(typ) {
		return v.Convert(typ)
	}
	panic(fmt.Sprintf("reflectx.Convert: cannot use value of type %v as %v", v.Type(), typ))
}

// Interface returns the value held by v as an any, or nil for
// an invalid value.
func Interface(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}
	return v.Interface()
}

// SameIdentity returns whether the two given values are the same object:
// pointers, maps, chans and funcs must point to the same place, slices
// must share the same array and length, and other values must be equal.
// Values that are not comparable are never the same.
func SameIdentity(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Type() != bv.Type() {
		return false
	}
	switch av.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return av.Pointer() == bv.Pointer()
	case reflect.Slice:
		return av.Pointer() == bv.Pointer() && av.Len() == bv.Len()
	}
	if av.Comparable() && bv.Comparable() {
		return av.Equal(bv)
	}
	return false
}

// SortedMapKeys returns the keys of the given map value in a stable order:
// numerically for numbers, lexically for strings and by their formatted
// string for everything else.
func SortedMapKeys(m reflect.Value) []reflect.Value {
	keys := m.MapKeys()
	if len(keys) == 0 {
		return keys
	}
	switch keys[0].Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		slices.SortFunc(keys, func(a, b reflect.Value) int { return cmp.Compare(a.Int(), b.Int()) })
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		slices.SortFunc(keys, func(a, b reflect.Value) int { return cmp.Compare(a.Uint(), b.Uint()) })
	case reflect.Float32, reflect.Float64:
		slices.SortFunc(keys, func(a, b reflect.Value) int { return cmp.Compare(a.Float(), b.Float()) })
	case reflect.String:
		slices.SortFunc(keys, func(a, b reflect.Value) int { return cmp.Compare(a.String(), b.String()) })
	default:
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return cmp.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
		})
	}
	return keys
}
