// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package accessor

import (
	"reflect"

	"cogentcore.org/viscera/base/reflectx"
)

// Element returns an accessor for the element at the given index of the
// arrays or slices produced by the given outer accessor, which are of the
// given container type. Array elements are written back through the outer
// accessor; slice elements are set in the shared backing array.
func Element(outer Accessor, container reflect.Type, index int) Accessor {
	if reflectx.IsValueType(container) {
		return &ArrayElement{Outer: outer, Index: index}
	}
	return &SliceElement{Outer: outer, Index: index}
}

// ArrayElement accesses an element of a fixed-size array value.
// The index is checked against the array length on every access.
type ArrayElement struct {
	Outer Accessor
	Index int
}

func (a *ArrayElement) Get() (any, error) {
	return guard(func() (any, error) {
		cv, err := container(a.Outer)
		if !cv.IsValid() || a.Index >= cv.Len() {
			return nil, err
		}
		return cv.Index(a.Index).Interface(), nil
	})
}

func (a *ArrayElement) Set(value any) error {
	return guardSet(func() error {
		cv, err := container(a.Outer)
		if !cv.IsValid() || a.Index >= cv.Len() {
			return err
		}
		cp := reflectx.Copy(cv)
		ev := cp.Index(a.Index)
		ev.Set(reflectx.ValueOf(value, ev.Type()))
		return a.Outer.Set(cp.Interface())
	})
}

func (a *ArrayElement) CanWrite() bool { return CanWrite(a.Outer) }

// SliceElement accesses an element of a slice. The index is checked
// against the live length of the slice on every access.
type SliceElement struct {
	Outer Accessor
	Index int
}

func (a *SliceElement) Get() (any, error) {
	return guard(func() (any, error) {
		cv, err := container(a.Outer)
		if !cv.IsValid() || a.Index >= cv.Len() {
			return nil, err
		}
		return cv.Index(a.Index).Interface(), nil
	})
}

func (a *SliceElement) Set(value any) error {
	return guardSet(func() error {
		cv, err := container(a.Outer)
		if !cv.IsValid() || a.Index >= cv.Len() {
			return err
		}
		ev := cv.Index(a.Index)
		ev.Set(reflectx.ValueOf(value, ev.Type()))
		return nil
	})
}

// MapElement accesses the value of a map at a key. A missing key reads as
// absent and is never added by Set.
type MapElement struct {
	Outer Accessor
	Key   any
}

// NewMapElement returns a new [MapElement] for the given key.
func NewMapElement(outer Accessor, key any) *MapElement {
	return &MapElement{Outer: outer, Key: key}
}

func (a *MapElement) Get() (any, error) {
	return guard(func() (any, error) {
		cv, err := container(a.Outer)
		if !cv.IsValid() {
			return nil, err
		}
		v := cv.MapIndex(reflectx.ValueOf(a.Key, cv.Type().Key()))
		return reflectx.Interface(v), nil
	})
}

func (a *MapElement) Set(value any) error {
	return guardSet(func() error {
		cv, err := container(a.Outer)
		if !cv.IsValid() {
			return err
		}
		key := reflectx.ValueOf(a.Key, cv.Type().Key())
		if !cv.MapIndex(key).IsValid() {
			return nil
		}
		cv.SetMapIndex(key, reflectx.ValueOf(value, cv.Type().Elem()))
		return nil
	})
}
