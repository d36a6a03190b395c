// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package member

import (
	"reflect"
	"testing"

	"cogentcore.org/viscera/accessor"
	"cogentcore.org/viscera/base/reflectx"
	"cogentcore.org/viscera/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y int
}

type node struct {
	Name string
}

type sample struct {
	Count  int
	Points []point
	Nodes  []*node
	Fixed  [3]int
	Tags   map[string]int
	Origin point
	Any    any
	calls  int
	label  string
}

func (s *sample) Label() string {
	s.calls++
	return s.label
}

func (s *sample) SetLabel(l string) { s.label = l }

var sampleType = reflect.TypeFor[*sample]()

// members returns the members of the given sample, keyed by name.
func members(r *Registry, s *sample) map[string]*Member {
	root := accessor.NewConstant(s)
	ss := StructSlots(root, sampleType, reflectx.VisibleFields(sampleType), Properties(sampleType, false), true)
	ms := map[string]*Member{}
	for _, m := range r.FromSlots(ss, "") {
		ms[m.Name] = m
	}
	return ms
}

func TestEditCount(t *testing.T) {
	s := &sample{}
	count := members(Default, s)["Count"]
	require.NotNil(t, count)
	assert.Equal(t, NumberVariant, count.Variant)
	assert.Equal(t, Field, count.Kind)
	count.Update()
	assert.Equal(t, 0, count.Value)

	require.NoError(t, count.SetText("5"))
	count.Update()
	assert.Equal(t, 5, count.Value)
	assert.Equal(t, 5, s.Count)
	assert.Equal(t, "5", count.Text())

	assert.Error(t, count.SetText("five"))
	assert.Equal(t, 5, s.Count)
}

func TestGatedProperty(t *testing.T) {
	s := &sample{label: "hi"}
	label := members(Default, s)["Label"]
	require.NotNil(t, label)
	assert.Equal(t, Property, label.Kind)
	assert.True(t, label.IsGated())
	assert.Equal(t, "(not evaluated)", label.Text())

	for range 3 {
		label.Update()
	}
	assert.Equal(t, 0, s.calls)
	assert.Equal(t, accessor.NotEvaluated, label.Value)

	label.Materialize()
	assert.Equal(t, 0, s.calls)
	for i := range 3 {
		label.Update()
		assert.Equal(t, i+1, s.calls)
	}
	assert.Equal(t, "hi", label.Value)
	assert.True(t, label.CanWrite())
}

type spot struct {
	reads int
	at    point
}

func (s *spot) At() point {
	s.reads++
	return s.at
}

func TestGatedPropertyChildren(t *testing.T) {
	sp := &spot{at: point{1, 2}}
	typ := reflect.TypeOf(sp)
	ms := Default.FromSlots(StructSlots(accessor.NewConstant(sp), typ, nil, Properties(typ, false), true), "")
	require.Len(t, ms, 1)
	at := ms[0]
	at.Materialize()
	at.SetExpanded(true)
	for i := range 3 {
		at.Update()
		assert.Equal(t, i+1, sp.reads)
	}
	require.Len(t, at.Children, 2)
	assert.Equal(t, 2, at.Children[1].Value)

	sp.at.Y = 5
	y := at.Children[1]
	y.Fetch()
	assert.Equal(t, 5, y.Value)
	assert.Equal(t, 4, sp.reads)
}

func TestValueElementsByIndex(t *testing.T) {
	s := &sample{Points: []point{{1, 1}, {2, 2}, {3, 3}}}
	pts := members(Default, s)["Points"]
	pts.SetExpanded(true).Update()
	require.Len(t, pts.Children, 3)
	old := append([]*Member{}, pts.Children...)
	assert.Equal(t, "Points[1]", old[1].EntityName)

	s.Points = []point{{3, 3}, {2, 2}, {1, 1}}
	pts.Update()
	for i, c := range pts.Children {
		assert.Same(t, old[i], c)
	}
	assert.Equal(t, point{3, 3}, pts.Children[0].Value)
}

func TestReferenceElementsByIdentity(t *testing.T) {
	a, b, c := &node{"a"}, &node{"b"}, &node{"c"}
	s := &sample{Nodes: []*node{a, b, c}}
	nodes := members(Default, s)["Nodes"]
	nodes.SetExpanded(true).Update()
	require.Len(t, nodes.Children, 3)
	old := append([]*Member{}, nodes.Children...)
	assert.Equal(t, ClassVariant, old[0].Variant)
	assert.True(t, old[0].CanDrill())

	s.Nodes = []*node{c, a, b}
	nodes.Update()
	require.Len(t, nodes.Children, 3)
	assert.Same(t, old[2], nodes.Children[0])
	assert.Same(t, old[0], nodes.Children[1])
	assert.Same(t, old[1], nodes.Children[2])

	// reused members are rebound to their new index
	assert.Same(t, c, nodes.Children[0].Value)
	assert.Equal(t, "[0]", nodes.Children[0].Name)
	assert.Equal(t, "Nodes[0]", nodes.Children[0].EntityName)
	require.NoError(t, nodes.Children[1].SetValue(&node{"z"}))
	assert.Equal(t, "z", s.Nodes[1].Name)

	s.Nodes = s.Nodes[:1]
	nodes.Update()
	assert.Len(t, nodes.Children, 1)
	assert.Same(t, old[2], nodes.Children[0])
}

func TestResize(t *testing.T) {
	s := &sample{Points: []point{{1, 1}, {2, 2}, {3, 3}}}
	ms := members(Default, s)
	pts := ms["Points"]
	pts.RequestResize(5)
	assert.Equal(t, 5, pts.PendingResize())
	pts.Update()
	assert.Equal(t, -1, pts.PendingResize())
	assert.Equal(t, []point{{1, 1}, {2, 2}, {3, 3}, {}, {}}, s.Points)

	pts.RequestResize(2)
	pts.Update()
	assert.Equal(t, []point{{1, 1}, {2, 2}}, s.Points)
	assert.Equal(t, "List<point> (2)", pts.Text())

	nodes := ms["Nodes"]
	nodes.RequestResize(2)
	nodes.Update()
	assert.Equal(t, []*node{nil, nil}, s.Nodes)

	fixed := ms["Fixed"]
	fixed.RequestResize(5)
	assert.Equal(t, -1, fixed.PendingResize())
	fixed.Update()
	assert.Len(t, s.Fixed, 3)
}

func TestMapChildren(t *testing.T) {
	s := &sample{Tags: map[string]int{"b": 2, "a": 1}}
	tags := members(Default, s)["Tags"]
	tags.SetExpanded(true).Update()
	require.Len(t, tags.Children, 2)
	assert.Equal(t, "[a]", tags.Children[0].Name)
	assert.Equal(t, "Tags[b]", tags.Children[1].EntityName)
	bm := tags.Children[1]

	require.NoError(t, bm.SetText("7"))
	assert.Equal(t, 7, s.Tags["b"])

	delete(s.Tags, "a")
	tags.Update()
	require.Len(t, tags.Children, 1)
	assert.Same(t, bm, tags.Children[0])
	assert.Equal(t, 7, bm.Value)
}

func TestStructChildren(t *testing.T) {
	s := &sample{Origin: point{1, 2}}
	origin := members(Default, s)["Origin"]
	assert.Equal(t, StructVariant, origin.Variant)
	origin.SetExpanded(true).Update()
	require.Len(t, origin.Children, 2)
	x := origin.Children[0]
	assert.Equal(t, "Origin.X", x.EntityName)
	require.NoError(t, x.SetValue(4))
	assert.Equal(t, point{4, 2}, s.Origin)
	origin.Update()
	assert.Equal(t, 4, x.Value)
}

func TestInterfaceMember(t *testing.T) {
	s := &sample{}
	anyM := members(Default, s)["Any"]
	assert.Equal(t, InterfaceVariant, anyM.Variant)
	anyM.Update()
	assert.True(t, anyM.IsNull())
	assert.Equal(t, "null", anyM.Text())
	assert.False(t, anyM.CanDrill())

	s.Any = point{1, 2}
	anyM.SetExpanded(true).Update()
	assert.Equal(t, StructVariant, anyM.ValueVariant())
	assert.Equal(t, reflect.TypeFor[point](), anyM.ValueType())
	require.Len(t, anyM.Children, 2)
	assert.Equal(t, 2, anyM.Children[1].Value)

	s.Any = 3
	anyM.Update()
	require.NoError(t, anyM.SetText("8"))
	assert.Equal(t, 8, s.Any)
}

func TestObjectReference(t *testing.T) {
	sc := &engine.Scene{}
	engine.SetActiveScene(sc)
	defer engine.SetActiveScene(nil)
	a, b := engine.NewGameObject("A"), engine.NewGameObject("B")
	sc.Add(a, b)

	c := accessor.NewConstant(a)
	m := Default.New("Target", reflect.TypeFor[*engine.GameObject](), c)
	assert.Equal(t, ObjectVariant, m.Variant)
	require.NoError(t, m.SetText("B"))
	assert.Same(t, b, c.Value)
	m.Update()
	assert.Equal(t, "B (GameObject)", m.Text())

	assert.ErrorContains(t, m.SetText("Nobody"), `"Nobody"`)
	assert.Same(t, b, c.Value)

	require.NoError(t, m.SetText("null"))
	assert.Nil(t, c.Value)
}

type swapA struct {
	X int
	Y string
}

type swapB struct {
	Y int
	X string
}

func TestInterfaceTypeChange(t *testing.T) {
	s := &sample{Any: swapA{X: 7, Y: "a"}}
	anyM := members(Default, s)["Any"]
	anyM.SetExpanded(true).Update()
	require.Len(t, anyM.Children, 2)
	old := anyM.Children[0]
	assert.Equal(t, "X", old.Name)
	assert.Equal(t, 7, old.Value)

	s.Any = swapB{Y: 42, X: "hello"}
	anyM.Update()
	require.Len(t, anyM.Children, 2)
	y, x := anyM.Children[0], anyM.Children[1]
	assert.NotSame(t, old, x)
	assert.Equal(t, "Y", y.Name)
	assert.Equal(t, reflect.TypeFor[int](), y.Type)
	assert.Equal(t, 42, y.Value)
	assert.Equal(t, "X", x.Name)
	assert.Equal(t, reflect.TypeFor[string](), x.Type)
	assert.Equal(t, "hello", x.Value)

	require.NoError(t, x.SetValue("bye"))
	assert.Equal(t, swapB{Y: 42, X: "bye"}, s.Any)
}

func TestMaxElements(t *testing.T) {
	r := NewRegistry()
	r.MaxElements = 2
	s := &sample{Fixed: [3]int{1, 2, 3}}
	fixed := members(r, s)["Fixed"]
	fixed.SetExpanded(true).Update()
	assert.Len(t, fixed.Children, 2)

	require.NoError(t, fixed.Children[1].SetValue(9))
	assert.Equal(t, [3]int{1, 9, 3}, s.Fixed)
}

func TestHideUnexported(t *testing.T) {
	r := NewRegistry()
	assert.Contains(t, members(r, &sample{}), "calls")
	r.ShowUnexported = false
	assert.NotContains(t, members(r, &sample{}), "calls")
}

func TestErrors(t *testing.T) {
	fail := Default.New("Fail", reflect.TypeFor[int](), accessor.NewFunc(func() (any, error) {
		panic("exploded")
	}))
	fail.Update()
	assert.Nil(t, fail.Value)
	assert.Equal(t, "exploded", fail.Text())
	assert.False(t, fail.CanWrite())
	assert.NoError(t, fail.SetValue(1))
}

func TestWalk(t *testing.T) {
	s := &sample{Points: []point{{1, 1}}}
	pts := members(Default, s)["Points"]
	pts.SetExpanded(true).Update()
	pts.Children[0].SetExpanded(true).Update()
	var names []string
	pts.Walk(func(m *Member) bool {
		names = append(names, m.EntityName)
		return true
	})
	assert.Equal(t, []string{"Points", "Points[0]", "Points[0].X", "Points[0].Y"}, names)
}

func TestFormat(t *testing.T) {
	g := engine.NewGameObject("Player")
	tests := []struct {
		value any
		want  string
	}{
		{float32(0.1), "0.1"},
		{2.5, "2.5"},
		{Property, "Property"},
		{g, "Player (GameObject)"},
		{[]int{1, 2, 3}, "List<int> (3)"},
		{map[string]int{"a": 1}, "Dict<string,int> (1)"},
		{[2]bool{}, "bool[2] (2)"},
		{engine.Char('x'), "'x'"},
		{engine.Vector3{X: 1, Y: 2, Z: 3}, "(1, 2, 3)"},
		{engine.Color{R: 1, G: 0, B: 0, A: 0.5}, "#ff0000 a:0.5"},
		{&node{}, "node"},
		{point{}, "point"},
		{"text", "text"},
		{true, "true"},
	}
	for _, test := range tests {
		m := Default.New("v", reflect.TypeOf(test.value), accessor.NewConstant(test.value))
		m.Update()
		assert.Equal(t, test.want, m.Text(), "%T", test.value)
	}

	g.Destroy()
	m := Default.New("g", reflect.TypeOf(g), accessor.NewConstant(g))
	m.Update()
	assert.Equal(t, "null", m.Text())
	assert.False(t, m.CanDrill())
}
