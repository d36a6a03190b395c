// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package present is the boundary between the inspector and whatever
// shows it. It takes snapshots of a [navigate.Page] for display, and it
// applies the requests of the user to the members they are made on,
// which are named by their path: the dotted list of the indexes of the
// member and its ancestors among the visible rows, such as "3.0.2".
package present

import (
	"cogentcore.org/viscera/base/labels"
	"cogentcore.org/viscera/entity"
	"cogentcore.org/viscera/member"
	"cogentcore.org/viscera/navigate"
)

// MemberView is a snapshot of one member.
type MemberView struct {

	// Path is the path of the member.
	Path string

	// DisplayName is the name shown for the member. For properties,
	// it also shows whether they can be set.
	DisplayName string

	// TypeLabel is the label of the declared type.
	TypeLabel string

	// Value is the text of the current value, if there is no error.
	Value string

	// Err is the text of the current error, if any.
	Err string

	// Kind is the role of the member.
	Kind member.Kinds

	// Expandable is whether the member has children to show.
	Expandable bool

	// Expanded is whether the children are shown.
	Expanded bool

	// Drillable is whether a new entity can be opened on the value.
	Drillable bool

	// Writable is whether the value can be edited.
	Writable bool

	// Gated is whether the value is only read on request.
	Gated bool

	// Children are the snapshots of the children of an
	// expanded member.
	Children []*MemberView
}

// PageView is a snapshot of the current entity of a page.
type PageView struct {

	// Title is the title of the page.
	Title string

	// Breadcrumbs are the names of the entities on the stack,
	// root first.
	Breadcrumbs []string

	// Members are the snapshots of the members of the current entity.
	Members []*MemberView
}

// row is one visible row: a member, or the header of a component
// of a game object.
type row struct {
	member    *member.Member
	component *entity.ComponentEntity
}

func (r row) expanded() bool {
	if r.component != nil {
		return r.component.Expanded
	}
	return r.member.Expanded
}

func (r row) setExpanded(on bool) {
	if r.component != nil {
		r.component.Expanded = on
		return
	}
	r.member.SetExpanded(on)
}

// children returns the rows below the given one, or nil if
// it is collapsed.
func (r row) children() []row {
	if !r.expanded() {
		return nil
	}
	if r.component != nil {
		return memberRows(r.component.Members)
	}
	return memberRows(r.member.Children)
}

func memberRows(ms []*member.Member) []row {
	rs := make([]row, len(ms))
	for i, m := range ms {
		rs[i] = row{member: m}
	}
	return rs
}

// topRows returns the top level rows of the given entity: its members,
// followed by the headers of its components for game objects.
func topRows(e entity.Entity) []row {
	if e == nil {
		return nil
	}
	rs := memberRows(e.AsEntity().Members)
	if ge, ok := e.(*entity.GameObjectEntity); ok {
		for _, ce := range ge.Components {
			rs = append(rs, row{member: ce.Header, component: ce})
		}
	}
	return rs
}

// Snapshot returns a snapshot of the given page.
func Snapshot(p *navigate.Page) *PageView {
	pv := &PageView{Title: p.Title(), Breadcrumbs: p.Names()}
	pv.Members = views(topRows(p.Current()), "")
	return pv
}

func views(rs []row, parent string) []*MemberView {
	if len(rs) == 0 {
		return nil
	}
	vs := make([]*MemberView, len(rs))
	for i, r := range rs {
		vs[i] = view(r, joinPath(parent, i))
	}
	return vs
}

func view(r row, path string) *MemberView {
	m := r.member
	v := &MemberView{
		Path:        path,
		DisplayName: m.Name,
		TypeLabel:   m.TypeLabel(),
		Kind:        m.Kind,
		Expandable:  m.Expandable() || r.component != nil,
		Expanded:    r.expanded(),
		Drillable:   m.CanDrill(),
		Writable:    m.CanWrite(),
		Gated:       m.IsGated(),
	}
	if m.Kind == member.Property {
		v.DisplayName = labels.PropertyLabel(m.Name, true, v.Writable)
	}
	if m.Err != nil {
		v.Err = m.Err.Error()
	} else {
		v.Value = m.Text()
	}
	if v.Expandable {
		v.Children = views(r.children(), path)
	}
	return v
}
