// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package member

import (
	"cmp"
	"log/slog"
	"reflect"
	"slices"

	"cogentcore.org/viscera/accessor"
)

// Registry selects the [Variant] of members from their type. Its table
// is sorted by descending priority the first time it is needed, keeping
// registration order between variants of equal priority, and resolution
// returns the first variant that handles the type.
type Registry struct {

	// Fallback is the variant of types that no registered variant handles.
	Fallback *Variant

	// MaxElements is the maximum number of children shown for
	// collections; 0 means no limit.
	MaxElements int

	// ShowUnexported is whether unexported struct fields are listed.
	ShowUnexported bool

	// variants are the registered variants in registration order.
	variants []*Variant

	// table is the sorted table of valid variants, or nil
	// if it needs to be rebuilt.
	table []*Variant

	// excluded are the variants permanently excluded from resolution.
	excluded map[*Variant]bool

	// warnings are the warnings for the excluded variants.
	warnings []error
}

// NewRegistry returns a new registry with the [Builtins] registered.
func NewRegistry() *Registry {
	r := &Registry{Fallback: GenericVariant, ShowUnexported: true}
	r.Register(Builtins...)
	return r
}

// Default is the registry used by default.
var Default = NewRegistry()

// Register adds the given variants to the registry.
func (r *Registry) Register(vs ...*Variant) {
	r.variants = append(r.variants, vs...)
	r.table = nil
}

// Warnings returns the warnings of all of the variants that have
// been excluded from resolution so far.
func (r *Registry) Warnings() []error {
	r.build()
	return slices.Clone(r.warnings)
}

// Table returns the variants in resolution order.
func (r *Registry) Table() []*Variant {
	r.build()
	return slices.Clone(r.table)
}

// build builds the sorted table if needed.
func (r *Registry) build() {
	if r.table != nil {
		return
	}
	r.table = make([]*Variant, 0, len(r.variants))
	for _, v := range r.variants {
		if r.excluded[v] {
			continue
		}
		if err := v.check(); err != nil {
			r.exclude(v, err)
			continue
		}
		r.table = append(r.table, v)
	}
	slices.SortStableFunc(r.table, func(a, b *Variant) int {
		return cmp.Compare(b.Priority, a.Priority)
	})
}

// exclude excludes the given variant from resolution, logging why.
func (r *Registry) exclude(v *Variant, err error) {
	if r.excluded == nil {
		r.excluded = map[*Variant]bool{}
	}
	r.excluded[v] = true
	w := &ResolutionWarning{Variant: v.Name, Reason: err.Error()}
	r.warnings = append(r.warnings, w)
	slog.Warn("member.Registry: excluding malformed variant", "variant", v.Name, "reason", w.Reason)
}

// Resolve returns the variant for members of the given type.
func (r *Registry) Resolve(typ reflect.Type) *Variant {
	if typ == nil {
		return r.Fallback
	}
	r.build()
	for i := 0; i < len(r.table); i++ {
		v := r.table[i]
		ok, err := v.matches(typ)
		if err != nil {
			r.exclude(v, err)
			r.table = slices.Delete(r.table, i, i+1)
			i--
			continue
		}
		if ok {
			return v
		}
	}
	return r.Fallback
}

// New returns a new member with the given name and declared type,
// bound to the given accessor, with the variant resolved from the type.
func (r *Registry) New(name string, typ reflect.Type, acc accessor.Accessor) *Member {
	return r.NewVariant(r.Resolve(typ), name, typ, acc)
}

// NewVariant returns a new member with the given variant.
func (r *Registry) NewVariant(v *Variant, name string, typ reflect.Type, acc accessor.Accessor) *Member {
	m := &Member{
		Name:       name,
		Type:       typ,
		EntityName: name,
		Accessor:   acc,
		Variant:    v,
		registry:   r,
		newLength:  -1,
	}
	if accessor.IsGated(acc) {
		m.Value = accessor.NotEvaluated
	}
	return m
}

// FromSlot returns a new member for the given slot of a member
// or entity with the given entity name.
func (r *Registry) FromSlot(s Slot, parent string) *Member {
	m := r.New(s.Name, s.Type, s.Accessor())
	m.Kind = s.Kind
	m.key = s.Key
	m.EntityName = childEntityName(parent, s)
	return m
}

// FromSlots returns new members for the given slots.
func (r *Registry) FromSlots(ss []Slot, parent string) []*Member {
	ms := make([]*Member, len(ss))
	for i, s := range ss {
		ms[i] = r.FromSlot(s, parent)
	}
	return ms
}

// childEntityName returns the entity name of a child: parent[i] for
// elements and parent.Name for everything else.
func childEntityName(parent string, s Slot) string {
	if s.Kind == Element {
		return parent + s.Name
	}
	if parent == "" {
		return s.Name
	}
	return parent + "." + s.Name
}
