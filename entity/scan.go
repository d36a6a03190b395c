// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package entity

import (
	"reflect"
	"slices"

	"cogentcore.org/viscera/accessor"
	"cogentcore.org/viscera/base/labels"
	"cogentcore.org/viscera/base/reflectx"
	"cogentcore.org/viscera/engine"
	"cogentcore.org/viscera/member"
)

// InstanceIDName is the name of the read-only member showing the
// instance identifier of framework objects.
var InstanceIDName = labels.Friendly("InstanceID")

// Scan returns the members of the object of the given pointer type read
// through the given accessor. It walks the embedding chain of the struct
// type from the most derived level up, emitting a [member.Level] marker
// before the fields and properties declared at each level. When it
// reaches one of the [engine.FrameworkTypes], it lists the exported
// surface of that type instead and stops.
func Scan(r *member.Registry, obj accessor.Accessor, typ reflect.Type) []*member.Member {
	st := reflectx.NonPointerType(typ)
	if typ.Kind() != reflect.Pointer || st.Kind() != reflect.Struct {
		return []*member.Member{valueMember(r, obj, typ)}
	}
	var ms []*member.Member
	var prefix []int
	for level := st; level != nil; {
		ms = append(ms, levelMarker(r, level))
		if engine.IsFrameworkType(level) {
			ms = append(ms, frameworkMembers(r, obj, typ, level, prefix)...)
			break
		}
		fields := reflectx.DeclaredFields(level)
		for i := range fields {
			fields[i].Index = append(slices.Clone(prefix), fields[i].Index...)
		}
		props := member.Properties(reflect.PointerTo(level), true)
		for i := range props {
			props[i].Index = slices.Clone(prefix)
		}
		ms = append(ms, r.FromSlots(member.StructSlots(obj, typ, fields, props, r.ShowUnexported), "")...)
		base, ok := reflectx.EmbeddedBase(level)
		if !ok {
			break
		}
		prefix = append(prefix, base.Index...)
		level = base.Type
	}
	return ms
}

// ScanStruct returns the members of the struct value of the given type
// read through the given accessor: all of its fields, including promoted
// ones, followed by all of its properties, with no level markers.
func ScanStruct(r *member.Registry, acc accessor.Accessor, typ reflect.Type) []*member.Member {
	ss := member.StructSlots(acc, typ, reflectx.VisibleFields(typ), member.Properties(reflect.PointerTo(typ), false), r.ShowUnexported)
	return r.FromSlots(ss, "")
}

// levelMarker returns the marker of the given embedding level.
func levelMarker(r *member.Registry, level reflect.Type) *member.Member {
	m := r.NewVariant(member.LevelVariant, labels.TypeLabel(level), level, nil)
	m.Kind = member.Level
	return m
}

// frameworkMembers returns the members of the exported surface of the
// given framework type, which is embedded in the object of the given
// pointer type at the given index path. Deprecated members and properties
// of component types are left out, and a read-only instance identifier
// member is added.
func frameworkMembers(r *member.Registry, obj accessor.Accessor, typ, framework reflect.Type, prefix []int) []*member.Member {
	var fields []reflect.StructField
	for _, f := range reflectx.VisibleFields(framework) {
		if !f.IsExported() || engine.IsDeprecated(framework, f.Name) {
			continue
		}
		f.Index = append(slices.Clone(prefix), f.Index...)
		fields = append(fields, f)
	}
	var props []reflectx.Property
	for _, p := range member.Properties(reflect.PointerTo(framework), false) {
		if p.Name == "InstanceID" || engine.IsDeprecated(framework, p.Name) || engine.IsComponentType(p.Type) {
			continue
		}
		p.Index = slices.Clone(prefix)
		props = append(props, p)
	}
	ms := r.FromSlots(member.StructSlots(obj, typ, fields, props, false), "")
	id := r.New(InstanceIDName, reflect.TypeFor[int64](), accessor.NewFunc(func() (any, error) {
		v, err := obj.Get()
		if err != nil || !alive(v) {
			return nil, err
		}
		return v.(engine.Object).InstanceID(), nil
	}))
	id.Kind = member.Lambda
	return append(ms, id)
}

// valueMember returns the single read-only member showing the value
// pointed to by objects that are not structs.
func valueMember(r *member.Registry, obj accessor.Accessor, typ reflect.Type) *member.Member {
	m := r.New("Value", reflectx.NonPointerType(typ), accessor.NewFunc(func() (any, error) {
		v, err := obj.Get()
		if err != nil || reflectx.IsNil(v) {
			return nil, err
		}
		return reflectx.Interface(reflectx.NonPointerValue(reflect.ValueOf(v))), nil
	}))
	m.Kind = member.Lambda
	return m
}
