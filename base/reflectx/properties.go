// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
	"runtime"
	"strings"
	"unicode"
	"unicode/utf8"
)

var errorType = reflect.TypeFor[error]()

// Property is a getter method, and optionally its matching setter, treated
// as one readable (and possibly writable) slot of a type. A getter is an
// exported method with no arguments returning either one value or a value
// and an error. Its setter is the method named Set + getter name taking one
// argument of the getter's type and returning nothing or an error.
type Property struct {

	// Name is the name of the getter method.
	Name string

	// Type is the type of the value returned by the getter.
	Type reflect.Type

	// Getter is the getter method, in the method set of the receiver type.
	Getter reflect.Method

	// Setter is the setter method; it is only valid if HasSetter is true.
	Setter reflect.Method

	// HasSetter is whether the property has a setter.
	HasSetter bool

	// GetterError is whether the getter also returns an error.
	GetterError bool

	// SetterError is whether the setter returns an error.
	SetterError bool

	// Index is the index path of the embedded struct the property is
	// called on, relative to the receiver passed to [Property.Get] and
	// [Property.Set]. It is nil for properties of the receiver itself.
	Index []int
}

// CanRead returns whether the property has a getter.
func (p *Property) CanRead() bool { return p.Getter.Func.IsValid() }

// CanWrite returns whether the property has a setter.
func (p *Property) CanWrite() bool { return p.HasSetter }

// Properties returns the properties in the method set of the given receiver
// type, sorted by name. Pass a pointer type to include pointer-receiver
// methods. If declaredOnly is true, methods promoted from the embedded base
// of the type (see [EmbeddedBase]) are excluded, so that each level of an
// embedding chain only lists its own properties. A method declared on the
// type that shadows one of its base is kept.
func Properties(typ reflect.Type, declaredOnly bool) []Property {
	if typ == nil {
		return nil
	}
	var base reflect.Type
	if declaredOnly {
		if bt := BaseType(typ); bt != nil {
			base = reflect.PointerTo(bt)
		}
	}
	promoted := func(name string) bool {
		if base == nil {
			return false
		}
		if _, ok := base.MethodByName(name); !ok {
			return false
		}
		return !Declared(typ, name)
	}
	var ps []Property
	for i := range typ.NumMethod() {
		m := typ.Method(i)
		if promoted(m.Name) {
			continue
		}
		p, ok := getter(m)
		if !ok {
			continue
		}
		if s, ok := typ.MethodByName("Set" + m.Name); ok && !promoted(s.Name) {
			if se, ok := setter(s, p.Type); ok {
				p.Setter = s
				p.HasSetter = true
				p.SetterError = se
			}
		}
		ps = append(ps, p)
	}
	return ps
}

// Declared returns whether the method with the given name is declared
// on the named type underlying the given type, with either a value or a
// pointer receiver, rather than promoted from an embedded field.
func Declared(typ reflect.Type, name string) bool {
	st := NonPointerType(typ)
	if st == nil {
		return false
	}
	for _, t := range []reflect.Type{st, reflect.PointerTo(st)} {
		if m, ok := t.MethodByName(name); ok && !isWrapper(m) {
			return true
		}
	}
	return false
}

// isWrapper returns whether the code of the given method is generated by
// the compiler, as it is for promoted methods and for value methods seen
// through a pointer receiver.
func isWrapper(m reflect.Method) bool {
	f := runtime.FuncForPC(m.Func.Pointer())
	if f == nil {
		return true
	}
	file, _ := f.FileLine(f.Entry())
	return file == "<autogenerated>"
}

// getter returns a property for the given method if it has a getter signature.
func getter(m reflect.Method) (Property, bool) {
	mt := m.Type // includes the receiver
	if mt.NumIn() != 1 || mt.IsVariadic() || isSetterName(m.Name) {
		return Property{}, false
	}
	switch mt.NumOut() {
	case 1:
		if mt.Out(0) == errorType {
			return Property{}, false
		}
		return Property{Name: m.Name, Type: mt.Out(0), Getter: m}, true
	case 2:
		if mt.Out(1) != errorType {
			return Property{}, false
		}
		return Property{Name: m.Name, Type: mt.Out(0), Getter: m, GetterError: true}, true
	}
	return Property{}, false
}

// setter returns whether the given method is a setter for a value
// of the given type, and whether it returns an error.
func setter(m reflect.Method, typ reflect.Type) (hasError bool, ok bool) {
	mt := m.Type
	if mt.NumIn() != 2 || mt.IsVariadic() || mt.In(1) != typ {
		return false, false
	}
	switch mt.NumOut() {
	case 0:
		return false, true
	case 1:
		return true, mt.Out(0) == errorType
	}
	return false, false
}

// isSetterName returns whether the name has the Set + Name form.
func isSetterName(name string) bool {
	rest, ok := strings.CutPrefix(name, "Set")
	if !ok || rest == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return unicode.IsUpper(r)
}

// receiver returns the value the methods of the property are called on:
// the given receiver, or the address of its embedded struct at [Property.Index].
func (p *Property) receiver(recv reflect.Value) reflect.Value {
	if len(p.Index) == 0 {
		return recv
	}
	f := FieldByIndex(recv, p.Index)
	if !f.IsValid() || !f.CanAddr() {
		return reflect.Value{}
	}
	return f.Addr()
}

// Get calls the getter of the property on the given receiver, which must have
// the method in its method set. The error is the one returned by the getter.
// Panics raised by the getter are not recovered.
func (p *Property) Get(recv reflect.Value) (reflect.Value, error) {
	out := p.receiver(recv).MethodByName(p.Name).Call(nil)
	if p.GetterError && !out[1].IsNil() {
		return out[0], out[1].Interface().(error)
	}
	return out[0], nil
}

// Set calls the setter of the property on the given receiver with the given
// value, converting it to the property type first. It does nothing if the
// property has no setter. Panics raised by the setter are not recovered.
func (p *Property) Set(recv reflect.Value, value reflect.Value) error {
	if !p.HasSetter {
		return nil
	}
	out := p.receiver(recv).MethodByName(p.Setter.Name).Call([]reflect.Value{Convert(value, p.Type)})
	if p.SetterError && !out[0].IsNil() {
		return out[0].Interface().(error)
	}
	return nil
}
