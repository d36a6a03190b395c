// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package member provides the typed nodes of the inspector tree. A
// [Member] is bound to one [accessor.Accessor] and caches the value it
// last read from it; its [Variant], selected by a [Registry] from the
// declared type, decides how that value is shown, edited and decomposed
// into child members.
package member

import (
	"fmt"
	"reflect"

	"cogentcore.org/viscera/accessor"
	"cogentcore.org/viscera/base/labels"
	"cogentcore.org/viscera/base/plan"
	"cogentcore.org/viscera/base/reflectx"
	"cogentcore.org/viscera/engine"
)

// Member is a named, typed node of the inspector tree.
type Member struct {

	// Name is the display name of the member.
	Name string

	// Type is the declared type of the member.
	Type reflect.Type

	// EntityName is the path-qualified name of the member within its
	// entity, such as Items[2].Position.
	EntityName string

	// Kind is the role of the member in its parent.
	Kind Kinds

	// Accessor is the accessor the member reads and writes through.
	// It is nil for [Level] markers.
	Accessor accessor.Accessor

	// Variant is the variant of the member, resolved from [Member.Type].
	Variant *Variant

	// Value is the value read by the last update.
	Value any

	// Err is the error of the last update or edit, if any.
	Err error

	// Expanded is whether the children of the member are shown
	// and updated.
	Expanded bool

	// Children are the child members of an expanded member.
	// They are kept when the member is collapsed, so that their
	// state survives collapsing and expanding again.
	Children []*Member

	registry *Registry

	// cache is the accessor the children read the value through, which
	// holds the value read by the member while the children update.
	cache *accessor.Cache

	// key identifies the member among its siblings.
	key any

	// newLength is the pending length requested by RequestResize,
	// or -1 if there is none.
	newLength int
}

func (m *Member) String() string {
	return m.EntityName + ": " + m.Text()
}

// TypeLabel returns the short label of the declared type of the member.
func (m *Member) TypeLabel() string {
	return labels.TypeLabel(m.Type)
}

// Registry returns the registry that made the member.
func (m *Member) Registry() *Registry { return m.registry }

// Update refreshes the member: it applies any pending resize, reads the
// current value unless the accessor is gated, and if the member is
// expanded, reconciles and updates its children.
func (m *Member) Update() {
	if m.Accessor == nil || accessor.IsGated(m.Accessor) {
		return
	}
	if m.newLength >= 0 {
		m.resize()
	}
	m.Fetch()
	if m.Expanded && m.Expandable() {
		src := m.source()
		src.Hold(m.Value, m.Err)
		m.updateChildren()
		for _, c := range m.Children {
			c.Update()
		}
		src.Release()
	}
}

// source returns the accessor that the accessors of the children
// read the value of the member through.
func (m *Member) source() *accessor.Cache {
	if m.cache == nil {
		m.cache = accessor.NewCache(m.Accessor)
	}
	return m.cache
}

// Fetch reads the current value of the member from its accessor,
// recording the error instead if reading fails.
func (m *Member) Fetch() {
	if m.Accessor == nil {
		return
	}
	v, err := m.Accessor.Get()
	if err != nil {
		m.Value, m.Err = nil, err
		return
	}
	m.Value, m.Err = v, nil
}

// IsNull returns whether the member currently holds no value: nil, a
// destroyed engine object, or a value that has not been evaluated.
func (m *Member) IsNull() bool {
	if m.Value == accessor.NotEvaluated || reflectx.IsNil(m.Value) {
		return true
	}
	if o, ok := m.Value.(engine.Object); ok && o.IsDestroyed() {
		return true
	}
	return false
}

// ValueType returns the type of the current value: the dynamic type for
// members declared with an interface type that hold a value, and the
// declared type otherwise.
func (m *Member) ValueType() reflect.Type {
	if m.Type != nil && m.Type.Kind() == reflect.Interface && !m.IsNull() {
		return reflect.TypeOf(m.Value)
	}
	return m.Type
}

// ValueVariant returns the variant for the current value, which differs
// from [Member.Variant] for members declared with an interface type.
func (m *Member) ValueVariant() *Variant {
	if m.Type != nil && m.Type.Kind() == reflect.Interface && !m.IsNull() {
		return m.registry.Resolve(reflect.TypeOf(m.Value))
	}
	return m.Variant
}

// Text returns the text shown for the current value.
func (m *Member) Text() string {
	switch {
	case m.Accessor == nil:
		return ""
	case m.Err != nil:
		return m.Err.Error()
	case m.Value == accessor.NotEvaluated:
		return fmt.Sprint(m.Value)
	case m.IsNull():
		return "null"
	}
	return m.ValueVariant().Format(m.Value)
}

// Expandable returns whether the member currently has children to show.
func (m *Member) Expandable() bool {
	return m.Err == nil && !m.IsNull() && m.ValueVariant().Elements != nil
}

// CanDrill returns whether a new entity can be opened on the current value.
func (m *Member) CanDrill() bool {
	return m.Err == nil && !m.IsNull() && m.ValueVariant().Drill
}

// CanWrite returns whether the member accepts edits.
func (m *Member) CanWrite() bool {
	return m.Accessor != nil && accessor.CanWrite(m.Accessor)
}

// IsGated returns whether the member is waiting for [Member.Materialize]
// before it reads its value.
func (m *Member) IsGated() bool {
	return accessor.IsGated(m.Accessor)
}

// Materialize allows the member to read its value on every
// subsequent update.
func (m *Member) Materialize() {
	accessor.Materialize(m.Accessor)
}

// SetExpanded sets whether the children of the member are shown and updated.
func (m *Member) SetExpanded(expanded bool) *Member {
	m.Expanded = expanded
	return m
}

// SetValue sets the value of the member through its accessor. It does
// nothing for members that do not accept edits. The new value is read
// back by the next update.
func (m *Member) SetValue(v any) error {
	if !m.CanWrite() {
		return nil
	}
	if err := m.Accessor.Set(v); err != nil {
		m.Err = err
		return err
	}
	return nil
}

// SetText parses the given text with the variant of the member and sets
// the resulting value.
func (m *Member) SetText(s string) error {
	vv := m.ValueVariant()
	if vv.Parse == nil {
		return fmt.Errorf("member.SetText: %s values cannot be edited as text", m.TypeLabel())
	}
	v, err := vv.Parse(m.ValueType(), s)
	if err != nil {
		return err
	}
	return m.SetValue(v)
}

// RequestResize requests that the next update resizes the list held by
// the member to the given length. It does nothing for members that are
// not resizable.
func (m *Member) RequestResize(n int) {
	if n < 0 || !m.Variant.Resizable {
		return
	}
	m.newLength = n
}

// PendingResize returns the pending length requested by
// [Member.RequestResize], or -1 if there is none.
func (m *Member) PendingResize() int { return m.newLength }

// resize applies the pending resize: it makes a list of the requested
// length holding the leading elements of the current one, followed by
// zero values, and sets it through the accessor.
func (m *Member) resize() {
	n := m.newLength
	m.newLength = -1
	v, err := m.Accessor.Get()
	if err != nil {
		m.Err = err
		return
	}
	cv := reflect.ValueOf(v)
	if !cv.IsValid() || cv.Kind() != reflect.Slice || cv.Len() == n {
		return
	}
	nv := reflect.MakeSlice(cv.Type(), n, n)
	reflect.Copy(nv, cv)
	if err := m.Accessor.Set(nv.Interface()); err != nil {
		m.Err = err
	}
}

// updateChildren reconciles the children with the current element slots,
// reusing the children whose key is still present.
func (m *Member) updateChildren() {
	slots := m.ValueVariant().Elements(m, reflect.ValueOf(m.Value))
	if mx := m.registry.MaxElements; mx > 0 && len(slots) > mx {
		slots = slots[:mx]
	}
	keys := make([]any, len(slots))
	for i, s := range slots {
		keys[i] = s.Key
	}
	m.Children, _ = plan.UpdateByKey(m.Children, keys, func(c *Member) any { return c.key },
		func(i int) *Member { return m.registry.FromSlot(slots[i], m.EntityName) }, nil)
	for i, c := range m.Children {
		s := slots[i]
		c.Name = s.Name
		c.EntityName = childEntityName(m.EntityName, s)
		if s.Index >= 0 {
			rebind(c.Accessor, s.Index)
		}
	}
}

// rebind points the given element accessor at the given index.
func rebind(a accessor.Accessor, index int) {
	switch a := a.(type) {
	case *accessor.SliceElement:
		a.Index = index
	case *accessor.ArrayElement:
		a.Index = index
	}
}

// Walk calls the given function on the member and then on its
// children, depth first, stopping when the function returns false.
// Children of collapsed members are not visited.
func (m *Member) Walk(fun func(m *Member) bool) bool {
	if !fun(m) {
		return false
	}
	if !m.Expanded {
		return true
	}
	for _, c := range m.Children {
		if !c.Walk(fun) {
			return false
		}
	}
	return true
}
