// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package member

import (
	"fmt"
	"reflect"

	"cogentcore.org/viscera/accessor"
)

// Variant describes one kind of member: the types it handles, how their
// values are shown and edited, and how they decompose into children.
// A variant handles either one exact [Variant.Type] or the types accepted
// by its [Variant.Match] predicate, never both.
type Variant struct {

	// Name is the name of the variant.
	Name string

	// Priority orders the variants in a [Registry]:
	// higher priorities are tried first.
	Priority int

	// Type, if set, is the only type the variant handles.
	Type reflect.Type

	// Match, if set, reports whether the variant handles the given type.
	Match func(typ reflect.Type) bool

	// Format returns the text shown for the given non-nil value.
	Format func(v any) string

	// Parse, if set, returns the value of the given type represented
	// by the given text, for editing members from text.
	Parse func(typ reflect.Type, s string) (any, error)

	// Elements, if set, returns the child slots of the given value,
	// which is held by the given member. Members with elements can be
	// expanded in place.
	Elements func(m *Member, v reflect.Value) []Slot

	// Drill is whether a new entity can be opened on the value.
	Drill bool

	// Resizable is whether the length of the value can be edited.
	Resizable bool
}

func (v *Variant) String() string { return v.Name }

// check returns an error if the variant is malformed.
func (v *Variant) check() error {
	switch {
	case v.Name == "":
		return fmt.Errorf("variant has no name")
	case v.Type == nil && v.Match == nil:
		return fmt.Errorf("variant has neither an exact type nor a predicate")
	case v.Type != nil && v.Match != nil:
		return fmt.Errorf("variant has both an exact type and a predicate")
	case v.Format == nil:
		return fmt.Errorf("variant has no format function")
	}
	return nil
}

// matches returns whether the variant handles the given type.
// A panicking predicate is reported as an error.
func (v *Variant) matches(typ reflect.Type) (ok bool, err error) {
	if v.Type != nil {
		return v.Type == typ, nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("predicate panicked on %v: %v", typ, r)
		}
	}()
	return v.Match(typ), nil
}

// ResolutionWarning reports a variant that was excluded from resolution
// because it is malformed.
type ResolutionWarning struct {

	// Variant is the name of the excluded variant.
	Variant string

	// Reason is why the variant was excluded.
	Reason string
}

func (w *ResolutionWarning) Error() string {
	return fmt.Sprintf("member: variant %q excluded from resolution: %s", w.Variant, w.Reason)
}

// Slot describes one child of a member with elements.
type Slot struct {

	// Key identifies the child across updates, so that an existing
	// child member whose key is still present is reused.
	Key any

	// Name is the display name of the child.
	Name string

	// Type is the declared type of the child.
	Type reflect.Type

	// Kind is the role of the child.
	Kind Kinds

	// Index is the position of the child in its list or array,
	// or -1 if the child is not bound to an index. Reused children
	// are rebound to their new index.
	Index int

	// Accessor makes the accessor of a new child.
	Accessor func() accessor.Accessor
}
