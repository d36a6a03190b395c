// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plan provides an efficient mechanism for updating a slice
// to contain a target list of elements, reusing the existing elements
// that are still wanted. The mechanism depends on a key function that
// identifies each target element and each existing element, so that
// elements can be matched across updates even when the target order
// changes.
package plan

import (
	"cogentcore.org/viscera/base/slicesx"
)

// Update ensures that the elements of the slice correspond to the n target
// elements identified by the given match function, in target order. For
// each target index, match reports whether an existing element stands for
// that target; the first unclaimed matching element is reused, and otherwise
// new is called to create one. If destroy is non-nil, it is called on every
// existing element that was not reused. It returns the updated slice and
// whether any changes were made. The given slice is not modified.
func Update[T any](s []T, n int, match func(e T, i int) bool, new func(i int) T, destroy func(e T)) (r []T, mods bool) {
	used := make([]bool, len(s))
	r = make([]T, n)
	for i := range n {
		ci := slicesx.Search(s, func(e T) bool { return match(e, i) }, i)
		for ci >= 0 && used[ci] {
			ci = claimNext(s, used, func(e T) bool { return match(e, i) })
		}
		if ci < 0 {
			mods = true
			r[i] = new(i)
			continue
		}
		used[ci] = true
		if ci != i {
			mods = true
		}
		r[i] = s[ci]
	}
	for i, u := range used {
		if u {
			continue
		}
		mods = true
		if destroy != nil {
			destroy(s[i])
		}
	}
	if len(s) != n {
		mods = true
	}
	return r, mods
}

// claimNext returns the index of the first unused element matching the given
// function, or -1 if there is none.
func claimNext[T any](s []T, used []bool, match func(e T) bool) int {
	for i, e := range s {
		if !used[i] && match(e) {
			return i
		}
	}
	return -1
}

// UpdateByKey is a version of [Update] for elements that carry a comparable
// key, such as a name, an instance identifier or a map key.
func UpdateByKey[T any, K comparable](s []T, keys []K, key func(e T) K, new func(i int) T, destroy func(e T)) ([]T, bool) {
	return Update(s, len(keys), func(e T, i int) bool { return key(e) == keys[i] }, new, destroy)
}
