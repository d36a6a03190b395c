// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mover struct {
	Script

	Speed float32
	Path  []Vector3
	ticks int
}

func (m *mover) Update(dt float32) {
	m.ticks++
	m.Transform().Translate(Vector3{Z: m.Speed * dt})
}

func TestGameObjectComponents(t *testing.T) {
	m := &mover{Speed: 2}
	g := NewGameObject("Player", m)
	cs := g.GetComponents()
	require.Len(t, cs, 2)
	assert.IsType(t, &Transform{}, cs[0])
	assert.Same(t, m, cs[1])
	assert.Same(t, g, m.GameObject())
	assert.Equal(t, "Player", m.ObjectName())
	assert.True(t, m.Enabled())
	assert.True(t, m.IsActiveAndEnabled())
	assert.NotEqual(t, g.InstanceID(), m.InstanceID())

	assert.Equal(t, []Component{m}, g.ComponentsOfType(reflect.TypeFor[*mover]()))

	g.Update(0.5)
	assert.Equal(t, 1, m.ticks)
	assert.Equal(t, Vector3{Z: 1}, g.Transform().Position)

	m.SetEnabled(false)
	g.Update(0.5)
	assert.Equal(t, 1, m.ticks)

	g.RemoveComponent(g.Transform())
	g.RemoveComponent(m)
	assert.Len(t, g.GetComponents(), 1)
	assert.True(t, m.IsDestroyed())
	assert.Nil(t, m.GameObject())
}

func TestIsAlive(t *testing.T) {
	g := NewGameObject("A")
	assert.True(t, IsAlive(g))
	g.Destroy()
	assert.False(t, IsAlive(g))
	assert.True(t, g.Transform().IsDestroyed())
	var np *GameObject
	assert.False(t, IsAlive(np))
	assert.False(t, IsAlive(nil))
}

func TestTypes(t *testing.T) {
	assert.True(t, IsObjectType(reflect.TypeFor[*GameObject]()))
	assert.True(t, IsObjectType(reflect.TypeFor[*mover]()))
	assert.True(t, IsObjectType(reflect.TypeFor[Component]()))
	assert.False(t, IsObjectType(reflect.TypeFor[GameObject]()))
	assert.True(t, IsComponentType(reflect.TypeFor[*Transform]()))
	assert.False(t, IsComponentType(reflect.TypeFor[*GameObject]()))
	assert.True(t, IsFrameworkType(reflect.TypeFor[Script]()))
	assert.False(t, IsFrameworkType(reflect.TypeFor[mover]()))

	assert.True(t, IsDeprecated(reflect.TypeFor[Script](), "Active"))
	assert.True(t, IsDeprecated(reflect.TypeFor[*Behaviour](), "HideFlags"))
	assert.False(t, IsDeprecated(reflect.TypeFor[Script](), "Enabled"))
}

func TestInstantiate(t *testing.T) {
	s := &Scene{}
	m := &mover{Speed: 3, Path: []Vector3{{X: 1}}}
	g := NewGameObject("Enemy", m)
	g.Tag = "Respawn"
	s.Add(g)
	m.SetEnabled(false)

	c, err := s.Instantiate(g)
	require.NoError(t, err)
	assert.Equal(t, "Enemy (Clone)", c.Name)
	assert.Equal(t, "Respawn", c.Tag)
	cs := c.GetComponents()
	require.Len(t, cs, 2)
	cm := cs[1].(*mover)
	assert.NotSame(t, m, cm)
	assert.Equal(t, float32(3), cm.Speed)
	assert.Same(t, c, cm.GameObject())
	assert.False(t, cm.Enabled())
	assert.NotEqual(t, m.InstanceID(), cm.InstanceID())
	assert.Len(t, s.Objects(), 2)

	s.Destroy(g)
	assert.Len(t, s.Objects(), 1)
	assert.Same(t, c, s.Find("Enemy (Clone)"))
	assert.Nil(t, s.Find("Enemy"))
}

func TestSelection(t *testing.T) {
	var sel Selection
	assert.Nil(t, sel.Active())
	g := NewGameObject("A")
	sel.Select(g)
	assert.Same(t, g, sel.Active())
	g.Destroy()
	assert.Nil(t, sel.Active())
	sel.Select(42)
	assert.Equal(t, 42, sel.Active())
}

func TestFindObject(t *testing.T) {
	sc := &Scene{}
	SetActiveScene(sc)
	defer SetActiveScene(nil)
	assert.Same(t, sc, ActiveScene())
	assert.Nil(t, FindObject("A", reflect.TypeFor[*GameObject]()))

	m := &mover{}
	a := NewGameObject("A", m)
	sc.Add(a, NewGameObject("B"))
	assert.Same(t, a, FindObject("A", reflect.TypeFor[*GameObject]()))
	assert.Same(t, a, FindObject("A", ObjectType))
	assert.Same(t, m, FindObject("A", reflect.TypeFor[*mover]()))
	assert.Same(t, a.Transform(), FindObject("A", reflect.TypeFor[*Transform]()))
	assert.Nil(t, FindObject("B", reflect.TypeFor[*mover]()))
	assert.Nil(t, FindObject("C", reflect.TypeFor[*GameObject]()))

	sc.Destroy(a)
	assert.Nil(t, FindObject("A", reflect.TypeFor[*GameObject]()))
}

func TestLayerMask(t *testing.T) {
	m := LayerMask{}.With(0, true).With(5, true)
	assert.Equal(t, "Default|UI", m.String())
	assert.Equal(t, "Nothing", LayerMask{}.String())
	assert.Equal(t, "Everything", Everything.String())
	p, err := ParseLayerMask("Default | UI")
	assert.NoError(t, err)
	assert.Equal(t, m, p)
	p, err = ParseLayerMask("3")
	assert.NoError(t, err)
	assert.True(t, p.Has(3))
	_, err = ParseLayerMask("Nope")
	assert.Error(t, err)
}

func TestMath(t *testing.T) {
	assert.Equal(t, float32(5), Vector2{3, 4}.Length())
	assert.InDelta(t, 1, Vector3{3, 4, 12}.Normal().Length(), 1e-6)
	q := QuaternionAxisAngle(Vector3{Y: 1}, 3.14159265/2)
	f := q.Rotate(Vector3{Z: 1})
	assert.InDelta(t, 1, f.X, 1e-5)
	assert.InDelta(t, 0, f.Z, 1e-5)
	assert.Equal(t, Vector2{1, 2}, Rect{0, 0, 2, 4}.Center())
	assert.True(t, Rect{0, 0, 2, 4}.Contains(Vector2{1, 1}))
	assert.Equal(t, float32(1), Plane{Vector3{Y: 1}, -1}.DistanceTo(Vector3{Y: 2}))
	assert.Equal(t, "A", Char('A').String())
}

func TestColor(t *testing.T) {
	assert.Equal(t, "#ff0000", Red.Hex())
	c, err := ColorFromHex("#00ff00")
	assert.NoError(t, err)
	assert.Equal(t, Color{0, 1, 0, 1}, c)
	h, _, _ := Color{0, 0, 1, 1}.HSV()
	assert.InDelta(t, 240, h, 1e-6)
}

func TestReload(t *testing.T) {
	m := &mover{Speed: 1}
	g := NewGameObject("A", m)
	id := m.InstanceID()
	m.SetEnabled(false)

	n := &mover{Speed: 2}
	assert.False(t, g.Reload(m, NewTransform()))
	assert.True(t, g.Reload(m, n))
	assert.Equal(t, id, n.InstanceID())
	assert.True(t, m.IsDestroyed())
	assert.False(t, n.Enabled())
	assert.Same(t, g, n.GameObject())
	assert.Equal(t, []Component{n}, g.ComponentsOfType(reflect.TypeFor[*mover]()))
	assert.False(t, g.Reload(m, &mover{}))
}
