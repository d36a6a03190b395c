// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package present

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/viscera/member"
	"cogentcore.org/viscera/navigate"
)

func joinPath(parent string, i int) string {
	if parent == "" {
		return strconv.Itoa(i)
	}
	return parent + "." + strconv.Itoa(i)
}

// lookup returns the visible row at the given path.
func lookup(p *navigate.Page, path string) (row, error) {
	if path == "" {
		return row{}, fmt.Errorf("present: empty member path")
	}
	rs := topRows(p.Current())
	var r row
	for _, s := range strings.Split(path, ".") {
		i, err := strconv.Atoi(s)
		if err != nil {
			return row{}, fmt.Errorf("present: invalid member path %q: %w", path, err)
		}
		if i < 0 || i >= len(rs) {
			return row{}, fmt.Errorf("present: no member at %q", path)
		}
		r = rs[i]
		rs = r.children()
	}
	return r, nil
}

// Lookup returns the visible member at the given path in the
// current entity of the given page.
func Lookup(p *navigate.Page, path string) (*member.Member, error) {
	r, err := lookup(p, path)
	return r.member, err
}

// Expand sets whether the children of the member at the given path
// are shown, starting with the next update.
func Expand(p *navigate.Page, path string, on bool) error {
	r, err := lookup(p, path)
	if err != nil {
		return err
	}
	r.setExpanded(on)
	return nil
}

// DrillInto requests that the next update opens a new entity on the
// value of the member at the given path.
func DrillInto(p *navigate.Page, path string) error {
	m, err := Lookup(p, path)
	if err != nil {
		return err
	}
	if !m.CanDrill() {
		return fmt.Errorf("present: cannot open %s", m.EntityName)
	}
	p.RequestDrillInto(m)
	return nil
}

// Materialize requests that the member at the given path reads its
// value on every update from now on.
func Materialize(p *navigate.Page, path string) error {
	m, err := Lookup(p, path)
	if err != nil {
		return err
	}
	m.Materialize()
	return nil
}

// Resize requests that the next update resizes the list held by the
// member at the given path.
func Resize(p *navigate.Page, path string, n int) error {
	m, err := Lookup(p, path)
	if err != nil {
		return err
	}
	if m.Variant == nil || !m.Variant.Resizable {
		return fmt.Errorf("present: %s cannot be resized", m.EntityName)
	}
	if n < 0 {
		return fmt.Errorf("present: invalid length %d", n)
	}
	m.RequestResize(n)
	return nil
}

// Edit parses the given text as a new value for the member at the
// given path and sets it. The member shows the new value after the
// next update.
func Edit(p *navigate.Page, path, text string) error {
	m, err := Lookup(p, path)
	if err != nil {
		return err
	}
	if !m.CanWrite() {
		return fmt.Errorf("present: %s is read-only", m.EntityName)
	}
	return m.SetText(text)
}
