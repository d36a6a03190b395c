// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package entity

import (
	"reflect"
	"testing"

	"cogentcore.org/viscera/accessor"
	"cogentcore.org/viscera/engine"
	"cogentcore.org/viscera/member"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	Name string
}

type animal struct {
	Name  string
	Legs  int
	owner *person
}

func (a *animal) Sound() string { return "..." }

type toy struct {
	Name string
}

type dog struct {
	animal

	Breed string
	Toy   *toy
}

func (d *dog) Bark() string { return "woof" }

type mount struct {
	Height int
}

func (m *mount) Speed() int { return 1 }

type horse struct {
	mount

	Color string
}

func (h *horse) Speed() int { return 2 }

type health struct {
	engine.Script

	HP        int
	Regen     float32
	Pos       engine.Vector3
	Inventory []string
}

func (h *health) Alive() bool { return h.HP > 0 }

type point struct {
	X, Y int
}

type holder struct {
	Pet *dog
	Pos point
	Any any
}

func names(ms []*member.Member) []string {
	ns := make([]string, len(ms))
	for i, m := range ms {
		ns[i] = m.Name
	}
	return ns
}

func field(t *testing.T, h *holder, name string) accessor.Accessor {
	typ := reflect.TypeOf(h)
	f, ok := typ.Elem().FieldByName(name)
	require.True(t, ok)
	return accessor.Field(accessor.NewConstant(h), typ, f)
}

func TestScanEmbeddingChain(t *testing.T) {
	d := &dog{animal: animal{Name: "Rex", Legs: 4}, Breed: "Collie"}
	ms := Scan(member.Default, accessor.NewConstant(d), reflect.TypeOf(d))
	assert.Equal(t, []string{"dog", "Breed", "Toy", "Bark", "animal", "Name", "Legs", "owner", "Sound"}, names(ms))
	assert.Equal(t, member.Level, ms[0].Kind)
	assert.Equal(t, member.Level, ms[4].Kind)
	assert.Equal(t, member.ClassVariant, ms[2].Variant)
	assert.True(t, ms[3].IsGated())

	for _, m := range ms {
		m.Update()
	}
	assert.Equal(t, "Rex", ms[5].Value)
	require.NoError(t, ms[5].SetValue("Max"))
	assert.Equal(t, "Max", d.Name)
	require.NoError(t, ms[7].SetValue(&person{"Ann"}))
	assert.Equal(t, "Ann", d.owner.Name)
}

func TestScanShadowedProperty(t *testing.T) {
	h := &horse{Color: "bay"}
	ms := Scan(member.Default, accessor.NewConstant(h), reflect.TypeOf(h))
	assert.Equal(t, []string{"horse", "Color", "Speed", "mount", "Height", "Speed"}, names(ms))

	var speeds []any
	for _, m := range ms {
		if m.Name == "Speed" {
			m.Materialize()
			m.Update()
			speeds = append(speeds, m.Value)
		}
	}
	assert.Equal(t, []any{2, 1}, speeds)
}

func TestScanFramework(t *testing.T) {
	h := &health{HP: 3}
	engine.NewGameObject("Hero", h)
	ms := Scan(member.Default, accessor.NewConstant(h), reflect.TypeOf(h))
	assert.Equal(t, []string{
		"health", "HP", "Regen", "Pos", "Inventory", "Alive",
		"Script", "Name", "Enabled", "GameObject", "IsActiveAndEnabled", "IsDestroyed", "ObjectName", "Tag", "UseLayout",
		InstanceIDName,
	}, names(ms))

	id := ms[len(ms)-1]
	assert.Equal(t, "Instance ID", id.Name)
	assert.Equal(t, member.Lambda, id.Kind)
	assert.False(t, id.CanWrite())
	id.Update()
	assert.Equal(t, h.InstanceID(), id.Value)

	name := ms[7]
	name.Update()
	assert.Equal(t, "Hero", name.Value)

	tag := ms[13]
	require.NoError(t, tag.SetText("Player"))
	assert.Equal(t, "Player", h.GameObject().Tag)
}

func TestObjectEntityStaleness(t *testing.T) {
	h := &holder{Pet: &dog{Breed: "Pug"}}
	e := New(member.Default, "Pet", reflect.TypeFor[*dog](), field(t, h, "Pet"))
	require.IsType(t, &ObjectEntity{}, e)
	oe := e.(*ObjectEntity)
	assert.Nil(t, oe.Target())

	assert.True(t, e.CheckValue())
	assert.Same(t, h.Pet, oe.Target())
	assert.False(t, oe.Scanned())
	e.Update()
	require.True(t, oe.Scanned())
	ms := oe.Members
	for range 3 {
		assert.True(t, e.CheckValue())
	}
	assert.Equal(t, ms, oe.Members)
	assert.Same(t, ms[1], oe.Members[1])

	h.Pet.Breed = "Boxer"
	assert.True(t, e.CheckValue())
	e.Update()
	assert.Equal(t, "Boxer", oe.Member("Breed").Value)

	h.Pet = &dog{}
	assert.False(t, e.CheckValue())
	h.Pet = nil
	assert.False(t, e.CheckValue())
}

func TestDirectObjectEntity(t *testing.T) {
	h := &health{}
	g := engine.NewGameObject("Hero", h)
	e := ForSelection(member.Default, h)
	require.IsType(t, &ObjectEntity{}, e)
	assert.Equal(t, "Hero", e.AsEntity().Name)
	assert.True(t, e.CheckValue())
	g.Destroy()
	assert.False(t, e.CheckValue())

	assert.Nil(t, ForSelection(member.Default, nil))
	assert.Nil(t, ForSelection(member.Default, (*dog)(nil)))
	assert.Nil(t, ForSelection(member.Default, g))

	de := ForSelection(member.Default, &dog{})
	assert.Equal(t, "dog", de.AsEntity().Name)
	assert.IsType(t, &StructEntity{}, ForSelection(member.Default, point{}))
}

func TestStructEntity(t *testing.T) {
	h := &holder{Pos: point{1, 2}}
	e := New(member.Default, "Pos", reflect.TypeFor[point](), field(t, h, "Pos"))
	require.IsType(t, &StructEntity{}, e)
	assert.True(t, e.CheckValue())
	e.Update()
	b := e.AsEntity()
	assert.Equal(t, []string{"X", "Y"}, names(b.Members))
	require.NoError(t, b.Members[0].SetValue(5))
	assert.Equal(t, point{5, 2}, h.Pos)
	e.Update()
	assert.Equal(t, 5, b.Members[0].Value)

	h.Any = point{3, 4}
	ae := New(member.Default, "Any", reflect.TypeFor[point](), field(t, h, "Any"))
	assert.True(t, ae.CheckValue())
	ae.Update()
	require.NoError(t, ae.AsEntity().Member("Y").SetValue(7))
	assert.Equal(t, point{3, 7}, h.Any)
	h.Any = 3
	assert.False(t, ae.CheckValue())
}

type compass struct {
	reads int
}

func (c *compass) Bearing() point {
	c.reads++
	return point{c.reads, 0}
}

func TestStructEntityReadsOnce(t *testing.T) {
	c := &compass{}
	typ := reflect.TypeOf(c)
	ps := member.Properties(typ, false)
	require.Len(t, ps, 1)
	acc := accessor.Property(accessor.NewConstant(c), typ, ps[0])
	accessor.Materialize(acc)

	e := New(member.Default, "Bearing", reflect.TypeFor[point](), acc)
	for i := range 3 {
		require.True(t, e.CheckValue())
		e.Update()
		assert.Equal(t, i+1, c.reads)
		assert.Equal(t, i+1, e.AsEntity().Members[0].Value)
	}
}

func TestGameObjectEntity(t *testing.T) {
	h := &health{HP: 10}
	o := &health{HP: 1}
	g := engine.NewGameObject("Hero", h, o)
	e := NewGameObject(member.Default, g)
	assert.True(t, e.CheckValue())
	e.Update()
	assert.Equal(t, "GameObject", e.Members[0].Name)
	require.Len(t, e.Components, 3)
	assert.Equal(t, "Transform", e.Components[0].Name)
	hce := e.Components[1]
	assert.Same(t, h, hce.Header.Value)
	assert.Equal(t, member.Component, hce.Header.Kind)
	assert.True(t, hce.Header.CanDrill())
	assert.False(t, hce.Scanned())

	hce.Expanded = true
	e.Update()
	require.True(t, hce.Scanned())
	assert.Equal(t, 10, hce.Member("HP").Value)

	g.RemoveComponent(o)
	e.Update()
	require.Len(t, e.Components, 2)
	assert.Same(t, hce, e.Components[1])
	assert.True(t, hce.Expanded)

	n := &health{HP: 20}
	require.True(t, g.Reload(h, n))
	e.Update()
	require.Len(t, e.Components, 2)
	assert.Same(t, hce, e.Components[1])
	assert.Same(t, n, hce.Component())
	assert.Same(t, n, hce.Header.Value)
	assert.Equal(t, 20, hce.Member("HP").Value)

	g.Destroy()
	assert.False(t, e.CheckValue())
}

func TestComponentEntity(t *testing.T) {
	h := &health{HP: 5}
	g := engine.NewGameObject("Hero", h)
	ce := NewComponent(member.Default, h)
	assert.Equal(t, "health", ce.Name)
	assert.True(t, ce.CheckValue())
	ce.Update()
	ms := ce.Members
	for range 3 {
		assert.True(t, ce.CheckValue())
		assert.Equal(t, ms, ce.Members)
	}

	n := &health{HP: 6}
	g.Reload(h, n)
	assert.True(t, ce.CheckValue())
	assert.False(t, ce.Scanned())
	ce.Update()
	assert.Equal(t, 6, ce.Member("HP").Value)

	g.RemoveComponent(n)
	assert.False(t, ce.CheckValue())
}

func TestFromMember(t *testing.T) {
	d := &dog{Toy: &toy{"ball"}}
	h := &health{}
	g := engine.NewGameObject("Hero", h)

	ge := ForSelection(member.Default, g).(*GameObjectEntity)
	ge.Update()
	ce := FromMember(ge.Components[1].Header)
	require.IsType(t, &ComponentEntity{}, ce)
	assert.True(t, ce.CheckValue())
	assert.Same(t, h, ce.(*ComponentEntity).Component())

	de := ForSelection(member.Default, d)
	de.Update()
	tm := de.AsEntity().Member("Toy")
	require.True(t, tm.CanDrill())
	te := FromMember(tm)
	assert.Equal(t, "Toy", te.AsEntity().Name)
	assert.True(t, te.CheckValue())
	te.Update()
	assert.Equal(t, "ball", te.AsEntity().Member("Name").Value)

	d.Toy = &toy{"stick"}
	assert.False(t, te.CheckValue())
}
