// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type nameObj struct {
	name string
}

func assertNames(t *testing.T, names []string, items []*nameObj) {
	if len(names) != len(items) {
		t.Error("lengths of lists are not the same:", len(names), len(items))
	}
	for i, nm := range names {
		inm := items[i].name
		if nm != inm {
			t.Error("item at index:", i, "name mismatch, should be:", nm, "was:", inm)
		}
	}
}

func update(s []*nameObj, names []string, destroyed *[]string) ([]*nameObj, bool) {
	return UpdateByKey(s, names,
		func(e *nameObj) string { return e.name },
		func(i int) *nameObj { return &nameObj{name: names[i]} },
		func(e *nameObj) { *destroyed = append(*destroyed, e.name) })
}

func TestUpdate(t *testing.T) {
	var s []*nameObj
	var destroyed []string

	names1 := []string{"a", "b", "c"}
	s, changed := update(s, names1, &destroyed)
	assertNames(t, names1, s)
	assert.Equal(t, true, changed)
	a, b, c := s[0], s[1], s[2]

	names2 := []string{"a", "aa", "b", "c"}
	s, changed = update(s, names2, &destroyed)
	assertNames(t, names2, s)
	assert.Equal(t, true, changed)
	assert.Same(t, a, s[0])
	assert.Same(t, b, s[2])

	names3 := []string{"c", "b", "a"}
	s, changed = update(s, names3, &destroyed)
	assertNames(t, names3, s)
	assert.Equal(t, true, changed)
	assert.Same(t, c, s[0])
	assert.Same(t, b, s[1])
	assert.Same(t, a, s[2])
	assert.Equal(t, []string{"aa"}, destroyed)

	s, changed = update(s, names3, &destroyed)
	assertNames(t, names3, s)
	assert.Equal(t, false, changed)
}

func TestUpdateDuplicates(t *testing.T) {
	s := []*nameObj{{"x"}, {"x"}}
	first, second := s[0], s[1]
	var destroyed []string
	r, changed := update(s, []string{"x", "x", "x"}, &destroyed)
	assert.True(t, changed)
	assert.Len(t, r, 3)
	assert.Same(t, first, r[0])
	assert.Same(t, second, r[1])
	assert.Empty(t, destroyed)
}
