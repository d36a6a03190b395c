// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
	"strings"
)

// IsValueType returns whether the given type is a composite value type:
// a struct or an array. Such values are copied on assignment, so writing
// into one of their slots requires writing the whole value back to where
// it came from.
func IsValueType(typ reflect.Type) bool {
	if typ == nil {
		return false
	}
	k := typ.Kind()
	return k == reflect.Struct || k == reflect.Array
}

// IsReferenceType returns whether the given type refers to an object
// shared on assignment, whose slots are mutated in place: a pointer type.
func IsReferenceType(typ reflect.Type) bool {
	return typ != nil && typ.Kind() == reflect.Pointer
}

// IsDelegate returns whether the given type is a function type.
func IsDelegate(typ reflect.Type) bool {
	return typ != nil && typ.Kind() == reflect.Func
}

// Implements returns whether the given type, or a pointer to it,
// implements the given interface type.
func Implements(typ, iface reflect.Type) bool {
	if typ == nil {
		return false
	}
	if typ.Implements(iface) {
		return true
	}
	if typ.Kind() != reflect.Pointer && typ.Kind() != reflect.Interface {
		return reflect.PointerTo(typ).Implements(iface)
	}
	return false
}

// TypeName returns the bare name of the given type, without its package
// qualifier, falling back on its string form for unnamed types.
func TypeName(typ reflect.Type) string {
	if typ == nil {
		return "nil"
	}
	if nm := typ.Name(); nm != "" {
		if i := strings.IndexByte(nm, '['); i > 0 {
			return nm[:i]
		}
		return nm
	}
	return typ.String()
}
