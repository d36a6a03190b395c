// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package member

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"cogentcore.org/viscera/accessor"
	"cogentcore.org/viscera/base/reflectx"
)

// identity is the key of list elements that refer to shared state,
// so that they are matched by what they point to rather than by index.
type identity struct {
	typ reflect.Type
	ptr uintptr
}

// elementKey returns the key of the list element at the given index:
// its identity for non-nil pointers, maps and chans, and its index
// otherwise, including for all value-typed elements.
func elementKey(ev reflect.Value, i int) any {
	if ev.Kind() == reflect.Interface {
		ev = ev.Elem()
	}
	if ev.IsValid() {
		switch ev.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
			if !ev.IsNil() {
				return identity{ev.Type(), ev.Pointer()}
			}
		}
	}
	return i
}

// fieldKey is the key of struct fields and properties. It includes the
// struct type so that the members of a value whose dynamic type changes
// are rebuilt instead of reading the same names of the new type.
type fieldKey struct {
	typ  reflect.Type
	name string
}

// ListSlots returns the slots of the elements of the given array or slice
// value held by the given member.
func ListSlots(m *Member, v reflect.Value) []Slot {
	ct := v.Type()
	n := v.Len()
	ss := make([]Slot, n)
	for i := range n {
		ss[i] = Slot{
			Key:      elementKey(v.Index(i), i),
			Name:     "[" + strconv.Itoa(i) + "]",
			Type:     ct.Elem(),
			Kind:     Element,
			Index:    i,
			Accessor: func() accessor.Accessor { return accessor.Element(m.source(), ct, i) },
		}
	}
	return ss
}

// MapSlots returns the slots of the entries of the given map value held by
// the given member, in sorted key order.
func MapSlots(m *Member, v reflect.Value) []Slot {
	keys := reflectx.SortedMapKeys(v)
	ss := make([]Slot, len(keys))
	for i, k := range keys {
		key := k.Interface()
		ss[i] = Slot{
			Key:      key,
			Name:     "[" + fmt.Sprint(key) + "]",
			Type:     v.Type().Elem(),
			Kind:     Element,
			Index:    -1,
			Accessor: func() accessor.Accessor { return accessor.NewMapElement(m.source(), key) },
		}
	}
	return ss
}

// StructSlots returns the slots of the given fields and properties of the
// values of the given container type read through the given accessor.
// The container is either a struct type or a pointer to one. Unexported
// fields are only included if showUnexported is true.
func StructSlots(outer accessor.Accessor, container reflect.Type, fields []reflect.StructField, props []reflectx.Property, showUnexported bool) []Slot {
	ss := make([]Slot, 0, len(fields)+len(props))
	for _, f := range fields {
		if !f.IsExported() && !showUnexported {
			continue
		}
		ss = append(ss, Slot{
			Key:      fieldKey{container, f.Name},
			Name:     f.Name,
			Type:     f.Type,
			Kind:     Field,
			Index:    -1,
			Accessor: func() accessor.Accessor { return accessor.Field(outer, container, f) },
		})
	}
	for _, p := range props {
		ss = append(ss, Slot{
			Key:      fieldKey{container, p.Name + "()"},
			Name:     p.Name,
			Type:     p.Type,
			Kind:     Property,
			Index:    -1,
			Accessor: func() accessor.Accessor { return accessor.Property(outer, container, p) },
		})
	}
	return ss
}

// Properties returns the properties of the given type that are listed as
// members, leaving out methods that only describe or convert the value,
// such as String and AsObject.
func Properties(typ reflect.Type, declaredOnly bool) []reflectx.Property {
	var ps []reflectx.Property
	for _, p := range reflectx.Properties(typ, declaredOnly) {
		if skipProperty(p) {
			continue
		}
		ps = append(ps, p)
	}
	return ps
}

func skipProperty(p reflectx.Property) bool {
	switch p.Name {
	case "String", "GoString", "Error", "Int64", "Values", "Desc":
		return true
	}
	if rest, ok := strings.CutPrefix(p.Name, "As"); ok && rest != "" {
		r, _ := utf8.DecodeRuneInString(rest)
		return unicode.IsUpper(r)
	}
	return false
}

// structElements returns the fields and properties of a struct value.
func structElements(m *Member, v reflect.Value) []Slot {
	t := v.Type()
	return StructSlots(m.source(), t, reflectx.VisibleFields(t), Properties(reflectx.PointerType(t), false), m.registry.ShowUnexported)
}
