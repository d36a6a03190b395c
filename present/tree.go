// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package present

import (
	"cogentcore.org/viscera/member"
	"github.com/m1gwings/treedrawer/tree"
)

// Tree returns a drawing of the given snapshot as a tree rooted at the
// current entity, with one branch per embedding level.
func Tree(pv *PageView) string {
	title := pv.Title
	if n := len(pv.Breadcrumbs); n > 0 {
		title = pv.Breadcrumbs[n-1]
	}
	t := tree.NewTree(tree.NodeString(title))
	addNodes(t, pv.Members)
	return t.String()
}

func addNodes(t *tree.Tree, vs []*MemberView) {
	parent := t
	for _, v := range vs {
		if v.Kind == member.Level {
			parent = t.AddChild(tree.NodeString(v.DisplayName))
			continue
		}
		label := v.DisplayName + " = " + v.Value
		if v.Err != "" {
			label = v.DisplayName + " ! " + v.Err
		}
		addNodes(parent.AddChild(tree.NodeString(label)), v.Children)
	}
}
