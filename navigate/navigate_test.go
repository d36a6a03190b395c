// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package navigate

import (
	"testing"

	"cogentcore.org/viscera/engine"
	"cogentcore.org/viscera/entity"
	"cogentcore.org/viscera/member"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type child struct {
	Name  string
	Inner *child
}

type counter struct {
	Count int
	Child *child
}

type spinner struct {
	engine.Script

	Speed float32
}

func memberOf(t *testing.T, p *Page, name string) *member.Member {
	m := p.Current().AsEntity().Member(name)
	require.NotNil(t, m, name)
	return m
}

func TestEditCount(t *testing.T) {
	c := &counter{}
	p := NewPage(member.Default)
	require.True(t, p.Select(c))
	p.Update()
	count := memberOf(t, p, "Count")
	assert.Equal(t, 0, count.Value)

	require.NoError(t, count.SetValue(5))
	p.Update()
	assert.Equal(t, 5, count.Value)
	assert.Equal(t, 5, c.Count)
}

func TestDrillAndTruncate(t *testing.T) {
	c := &counter{Child: &child{Name: "kid"}}
	p := NewPage(member.Default)
	p.Select(c)
	p.Update()

	p.RequestDrillInto(memberOf(t, p, "Count"))
	p.Update()
	assert.Equal(t, 1, p.Len())

	p.RequestDrillInto(memberOf(t, p, "Child"))
	assert.Equal(t, 1, p.Len())
	p.Update()
	require.Equal(t, 2, p.Len())
	assert.Equal(t, []string{"counter", "Child"}, p.Names())
	assert.Equal(t, "kid", memberOf(t, p, "Name").Value)

	p.TruncateTo(0)
	assert.Equal(t, 2, p.Len())
	p.Update()
	assert.Equal(t, 1, p.Len())
	assert.Equal(t, []string{"counter"}, p.Names())
}

func TestStaleTruncation(t *testing.T) {
	c := &counter{Child: &child{Name: "a", Inner: &child{Name: "b", Inner: &child{Name: "deep"}}}}
	p := NewPage(member.Default)
	p.Select(c)
	p.Update()
	p.RequestDrillInto(memberOf(t, p, "Child"))
	p.Update()
	p.RequestDrillInto(memberOf(t, p, "Inner"))
	p.Update()
	require.Equal(t, []string{"counter", "Child", "Inner"}, p.Names())

	// still the same objects
	c.Child.Inner.Name = "c"
	p.Update()
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, "c", memberOf(t, p, "Name").Value)

	// replacing an ancestor discards it and everything above it,
	// along with a drill request made in the same tick
	inner := memberOf(t, p, "Inner")
	require.True(t, inner.CanDrill())
	p.RequestDrillInto(inner)
	c.Child = &child{Name: "new"}
	p.Update()
	assert.Equal(t, []string{"counter"}, p.Names())
	p.Update()
	assert.Equal(t, 1, p.Len())
}

func TestRootGone(t *testing.T) {
	s := &spinner{}
	g := engine.NewGameObject("Wheel", s)
	p := NewPage(member.Default)
	require.True(t, p.Select(g))
	assert.Equal(t, "Wheel", p.Title())
	p.Update()
	ge := p.Current().(*entity.GameObjectEntity)
	require.Len(t, ge.Components, 2)

	p.RequestDrillInto(ge.Components[1].Header)
	p.Update()
	require.Equal(t, 2, p.Len())
	assert.IsType(t, &entity.ComponentEntity{}, p.Current())
	speed := memberOf(t, p, "Speed")
	require.NoError(t, speed.SetText("2.5"))
	p.Update()
	assert.Equal(t, float32(2.5), s.Speed)

	g.RemoveComponent(s)
	p.Update()
	assert.Equal(t, 1, p.Len())

	g.Destroy()
	p.Update()
	assert.Equal(t, 0, p.Len())
	assert.Nil(t, p.Current())
	assert.Equal(t, "Blank", p.Title())
	p.Update()

	assert.False(t, p.Select(nil))
	assert.False(t, p.Select(g))
}

func TestWindow(t *testing.T) {
	sel := &engine.Selection{}
	a := engine.NewGameObject("A")
	b := engine.NewGameObject("B")
	w := NewWindow(member.Default, sel)
	assert.Equal(t, []string{"Blank"}, w.Titles())

	sel.Select(a)
	require.True(t, w.SelectActive())
	assert.Equal(t, []string{"A"}, w.Titles())

	w.AddPage()
	assert.Equal(t, []string{"A", "Blank"}, w.Titles())
	assert.Equal(t, 1, w.CurrentIndex())

	sel.Select(b)
	w.AddPage()
	assert.Equal(t, []string{"A", "Blank", "B"}, w.Titles())
	w.Update()
	assert.Equal(t, 1, w.Current().Len())

	w.SetPage(0)
	assert.Equal(t, "A", w.Current().Title())
	w.SetPage(7)
	assert.Equal(t, 0, w.CurrentIndex())

	w.SetPage(2)
	w.ClosePage(2)
	assert.Equal(t, []string{"A", "Blank"}, w.Titles())
	assert.Equal(t, 1, w.CurrentIndex())
	w.ClosePage(0)
	w.ClosePage(0)
	assert.Equal(t, []string{"Blank"}, w.Titles())
	assert.Equal(t, 0, w.CurrentIndex())
}
