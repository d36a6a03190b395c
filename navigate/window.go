// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package navigate

import (
	"slices"

	"cogentcore.org/viscera/base/reflectx"
	"cogentcore.org/viscera/engine"
	"cogentcore.org/viscera/member"
)

// Window is a list of pages, one of which is current. It always has
// at least one page.
type Window struct {

	// Registry is the registry used by the pages.
	Registry *member.Registry

	// Selection is where new pages get their root object.
	Selection *engine.Selection

	// Pages are the pages of the window.
	Pages []*Page

	current int
}

// NewWindow returns a new window with one empty page.
func NewWindow(r *member.Registry, sel *engine.Selection) *Window {
	w := &Window{Registry: r, Selection: sel}
	w.Pages = []*Page{NewPage(r)}
	return w
}

// Current returns the current page.
func (w *Window) Current() *Page { return w.Pages[w.current] }

// CurrentIndex returns the index of the current page.
func (w *Window) CurrentIndex() int { return w.current }

// SetPage makes the page at the given index current.
func (w *Window) SetPage(i int) {
	if i >= 0 && i < len(w.Pages) {
		w.current = i
	}
}

// AddPage adds a new page and makes it current. The new page selects the
// active object of the selection, unless another page already has it as
// its root object.
func (w *Window) AddPage() *Page {
	active := w.Selection.Active()
	open := slices.ContainsFunc(w.Pages, func(p *Page) bool {
		return reflectx.SameIdentity(p.Target(), active)
	})
	p := NewPage(w.Registry)
	w.Pages = append(w.Pages, p)
	w.current = len(w.Pages) - 1
	if !open {
		p.Select(active)
	}
	return p
}

// ClosePage closes the page at the given index. The last page cannot
// be closed.
func (w *Window) ClosePage(i int) {
	if i < 0 || i >= len(w.Pages) || len(w.Pages) == 1 {
		return
	}
	w.Pages = slices.Delete(w.Pages, i, i+1)
	if w.current >= len(w.Pages) {
		w.current = len(w.Pages) - 1
	}
}

// SelectActive makes the current page select the active object
// of the selection.
func (w *Window) SelectActive() bool {
	return w.Current().Select(w.Selection.Active())
}

// Titles returns the titles of the pages.
func (w *Window) Titles() []string {
	ts := make([]string, len(w.Pages))
	for i, p := range w.Pages {
		ts[i] = p.Title()
	}
	return ts
}

// Update performs one refresh tick of the current page.
func (w *Window) Update() {
	w.Current().Update()
}
