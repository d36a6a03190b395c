// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package navigate provides the navigation state of the inspector: a
// [Page] holds the stack of entities from the selected root object down
// to the entity being shown, and a [Window] holds a list of pages.
package navigate

import (
	"log/slog"

	"cogentcore.org/viscera/base/slicesx"
	"cogentcore.org/viscera/entity"
	"cogentcore.org/viscera/member"
)

// Page is one navigation stack. Index 0 is the root entity of the
// selected object, and every other entity was opened by drilling into a
// member of the entity below it. Requests to drill in or to go back up
// are applied by the next [Page.Update].
type Page struct {

	// Registry is the registry used to make the members.
	Registry *member.Registry

	// Hierarchy is the stack of entities; it is empty when
	// nothing is selected.
	Hierarchy []entity.Entity

	// target is the selected root object.
	target any

	// truncate is the requested number of entities to keep,
	// or 0 if there is no request.
	truncate int

	// drill is the member to drill into on the next update.
	drill *member.Member
}

// NewPage returns a new empty page using the given registry.
func NewPage(r *member.Registry) *Page {
	return &Page{Registry: r}
}

// Target returns the selected root object, or nil.
func (p *Page) Target() any { return p.target }

// Len returns the number of entities on the stack.
func (p *Page) Len() int { return len(p.Hierarchy) }

// Current returns the entity at the top of the stack, or nil.
func (p *Page) Current() entity.Entity {
	if len(p.Hierarchy) == 0 {
		return nil
	}
	return p.Hierarchy[len(p.Hierarchy)-1]
}

// Title returns the name of the root entity, or "Blank".
func (p *Page) Title() string {
	if len(p.Hierarchy) == 0 {
		return "Blank"
	}
	return p.Hierarchy[0].AsEntity().Name
}

// Names returns the names of the entities on the stack, root first.
func (p *Page) Names() []string {
	ns := make([]string, len(p.Hierarchy))
	for i, e := range p.Hierarchy {
		ns[i] = e.AsEntity().Name
	}
	return ns
}

// Select starts a new stack rooted at the given object, discarding the
// current one. It returns false and leaves the page empty if there is
// nothing to inspect.
func (p *Page) Select(obj any) bool {
	p.Hierarchy = nil
	p.truncate = 0
	p.drill = nil
	p.target = nil
	e := entity.ForSelection(p.Registry, obj)
	if e == nil {
		return false
	}
	p.target = obj
	p.Hierarchy = []entity.Entity{e}
	slog.Debug("navigate.Page: selected", "root", e.AsEntity().Name)
	return true
}

// RequestDrillInto requests that the next update opens a new entity on
// the current value of the given member. It does nothing if the member
// cannot be drilled into.
func (p *Page) RequestDrillInto(m *member.Member) {
	if m == nil || !m.CanDrill() {
		return
	}
	p.drill = m
}

// TruncateTo requests that the next update keeps only the entities at
// indexes 0 through i, discarding the ones above.
func (p *Page) TruncateTo(i int) {
	if i < 0 || i >= len(p.Hierarchy)-1 {
		return
	}
	p.truncate = i + 1
}

// Update performs one refresh tick. It checks the entities above the
// root in order, up to any requested truncation point, and truncates
// the stack at the first one that is no longer valid. If nothing was
// truncated, it opens the entity of a pending drill request. Finally it
// updates the entity at the top of the stack. A page whose root object
// is gone is emptied.
func (p *Page) Update() {
	if len(p.Hierarchy) == 0 {
		p.drill = nil
		return
	}
	if !p.Hierarchy[0].CheckValue() {
		slog.Debug("navigate.Page: root is gone", "root", p.Title())
		p.Select(nil)
		return
	}
	k := p.truncate
	if k == 0 {
		k = len(p.Hierarchy)
	}
	for i := 1; i < k; i++ {
		if !p.Hierarchy[i].CheckValue() {
			slog.Debug("navigate.Page: entity is stale", "entity", p.Hierarchy[i].AsEntity().Name, "index", i)
			k = i
			break
		}
	}
	p.truncate = 0
	drill := p.drill
	p.drill = nil
	switch {
	case k < len(p.Hierarchy):
		p.Hierarchy = slicesx.Resize(p.Hierarchy, k, nil)
	case drill != nil:
		e := entity.FromMember(drill)
		if e.CheckValue() {
			p.Hierarchy = append(p.Hierarchy, e)
		}
	}
	p.Current().Update()
}
