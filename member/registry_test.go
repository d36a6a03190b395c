// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package member

import (
	"math/big"
	"reflect"
	"testing"
	"time"

	"cogentcore.org/viscera/accessor"
	"cogentcore.org/viscera/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shape interface {
	Area() float32
}

func TestResolve(t *testing.T) {
	tests := []struct {
		typ  reflect.Type
		want *Variant
	}{
		{reflect.TypeFor[*engine.GameObject](), ObjectVariant},
		{reflect.TypeFor[*engine.Transform](), ObjectVariant},
		{reflect.TypeFor[engine.Component](), ObjectVariant},
		{reflect.TypeFor[func(int) bool](), FuncVariant},
		{reflect.TypeFor[string](), StringVariant},
		{reflect.TypeFor[map[string]int](), MapVariant},
		{reflect.TypeFor[[]*engine.GameObject](), ListVariant},
		{reflect.TypeFor[[4]float32](), ArrayVariant},
		{reflect.TypeFor[Kinds](), EnumVariant},
		{reflect.TypeFor[int](), NumberVariant},
		{reflect.TypeFor[uint8](), NumberVariant},
		{reflect.TypeFor[float64](), NumberVariant},
		{reflect.TypeFor[time.Duration](), NumberVariant},
		{reflect.TypeFor[bool](), BoolVariant},
		{reflect.TypeFor[engine.Char](), CharVariant},
		{reflect.TypeFor[rune](), NumberVariant},
		{reflect.TypeFor[engine.Vector2](), Vector2Variant},
		{reflect.TypeFor[engine.Vector3](), Vector3Variant},
		{reflect.TypeFor[engine.Vector4](), Vector4Variant},
		{reflect.TypeFor[engine.Color](), ColorVariant},
		{reflect.TypeFor[engine.Rect](), RectVariant},
		{reflect.TypeFor[engine.Quaternion](), QuaternionVariant},
		{reflect.TypeFor[engine.Plane](), PlaneVariant},
		{reflect.TypeFor[engine.LayerMask](), LayerMaskVariant},
		{reflect.TypeFor[big.Float](), DecimalVariant},
		{reflect.TypeFor[*big.Float](), DecimalVariant},
		{reflect.TypeFor[*node](), ClassVariant},
		{reflect.TypeFor[point](), StructVariant},
		{reflect.TypeFor[engine.GameObject](), StructVariant},
		{reflect.TypeFor[shape](), InterfaceVariant},
		{reflect.TypeFor[any](), InterfaceVariant},
		{reflect.TypeFor[chan int](), GenericVariant},
		{reflect.TypeFor[complex128](), GenericVariant},
		{nil, GenericVariant},
	}
	r := NewRegistry()
	for _, test := range tests {
		assert.Same(t, test.want, r.Resolve(test.typ), "%v", test.typ)
		assert.Same(t, r.Resolve(test.typ), r.Resolve(test.typ), "%v", test.typ)
	}
	assert.Empty(t, r.Warnings())
}

func TestTableOrder(t *testing.T) {
	table := NewRegistry().Table()
	require.Len(t, table, len(Builtins))
	for i := 1; i < len(table); i++ {
		assert.GreaterOrEqual(t, table[i-1].Priority, table[i].Priority)
	}
	assert.Same(t, ObjectVariant, table[0])
	assert.Same(t, MapVariant, table[3])
	assert.Same(t, ListVariant, table[4])
	assert.Same(t, InterfaceVariant, table[len(table)-1])
}

func TestPriorityLaw(t *testing.T) {
	r := NewRegistry()
	typ := reflect.TypeFor[point]()
	assert.Same(t, StructVariant, r.Resolve(typ))

	low := &Variant{Name: "Low", Priority: -100, Type: typ, Format: formatType}
	r.Register(low)
	assert.Same(t, low, r.Resolve(typ))

	high := &Variant{Name: "High", Priority: 100, Match: func(t reflect.Type) bool { return t.Kind() == reflect.Struct },
		Format: formatType}
	r.Register(high)
	assert.Same(t, high, r.Resolve(typ))
	assert.Same(t, high, r.Resolve(reflect.TypeFor[engine.Vector3]()))
	assert.Same(t, StringVariant, r.Resolve(reflect.TypeFor[string]()))

	// equal priorities keep registration order
	tie := &Variant{Name: "Tie", Priority: 100, Type: typ, Format: formatType}
	r.Register(tie)
	assert.Same(t, high, r.Resolve(typ))
}

func TestMalformedVariants(t *testing.T) {
	r := NewRegistry()
	r.Register(
		&Variant{Name: "NoPredicate", Priority: 10000, Format: formatType},
		&Variant{Name: "Both", Priority: 10000, Type: reflect.TypeFor[int](), Match: isNumber, Format: formatType},
		&Variant{Name: "Panics", Priority: 10000, Match: func(t reflect.Type) bool { panic("bad predicate") },
			Format: formatType},
	)
	assert.Same(t, NumberVariant, r.Resolve(reflect.TypeFor[int]()))
	assert.Same(t, StringVariant, r.Resolve(reflect.TypeFor[string]()))

	ws := r.Warnings()
	require.Len(t, ws, 3)
	names := make([]string, len(ws))
	for i, w := range ws {
		var rw *ResolutionWarning
		require.ErrorAs(t, w, &rw)
		names[i] = rw.Variant
	}
	assert.ElementsMatch(t, []string{"NoPredicate", "Both", "Panics"}, names)
	assert.Contains(t, ws[2].Error(), "bad predicate")

	// excluded variants stay excluded when the table is rebuilt
	r.Register(&Variant{Name: "Extra", Priority: -1, Type: reflect.TypeFor[chan int](), Format: formatType})
	assert.Equal(t, "Extra", r.Resolve(reflect.TypeFor[chan int]()).Name)
	assert.Len(t, r.Warnings(), 3)
}

func TestParse(t *testing.T) {
	tests := []struct {
		zero any
		text string
		want any
	}{
		{0, "42", 42},
		{uint8(0), "0xff", uint8(255)},
		{float32(0), "1.5", float32(1.5)},
		{time.Duration(0), "1m30s", 90 * time.Second},
		{"", "hello world", "hello world"},
		{false, "true", true},
		{Value, "Element", Element},
		{engine.Char(0), "'é'", engine.Char('é')},
		{engine.Char(0), "z", engine.Char('z')},
		{engine.Vector2{}, "(1, 2)", engine.Vector2{X: 1, Y: 2}},
		{engine.Vector3{}, "1,2,3", engine.Vector3{X: 1, Y: 2, Z: 3}},
		{engine.Quaternion{}, "(0, 0, 0, 1)", engine.Quaternion{W: 1}},
		{engine.Rect{}, "(x:1, y:2, width:3, height:4)", engine.Rect{X: 1, Y: 2, Width: 3, Height: 4}},
		{engine.Plane{}, "(normal:(0, 1, 0), distance:-1)", engine.Plane{Normal: engine.Vector3{Y: 1}, Distance: -1}},
		{engine.Color{}, "#00ff00", engine.Color{R: 0, G: 1, B: 0, A: 1}},
		{engine.Color{}, "#00ff00 a:0.5", engine.Color{R: 0, G: 1, B: 0, A: 0.5}},
		{engine.Color{}, "(1, 0, 0, 1)", engine.Red},
		{engine.LayerMask{}, "Default|UI", engine.LayerMask{}.With(0, true).With(5, true)},
	}
	for _, test := range tests {
		c := accessor.NewConstant(test.zero)
		m := Default.New("v", reflect.TypeOf(test.zero), c)
		require.NoError(t, m.SetText(test.text), "%T %q", test.zero, test.text)
		assert.Equal(t, test.want, c.Value, "%T %q", test.zero, test.text)
	}

	errs := []struct {
		zero any
		text string
	}{
		{int8(0), "200"},
		{false, "maybe"},
		{Value, "Nope"},
		{engine.Char(0), "ab"},
		{engine.Vector3{}, "(1, 2)"},
		{engine.Color{}, "#zz"},
		{engine.LayerMask{}, "Nope"},
		{func() {}, "x"},
	}
	for _, test := range errs {
		c := accessor.NewConstant(test.zero)
		m := Default.New("v", reflect.TypeOf(test.zero), c)
		assert.Error(t, m.SetText(test.text), "%T %q", test.zero, test.text)
	}
}

func TestParseEnumError(t *testing.T) {
	c := accessor.NewConstant(Value)
	m := Default.New("k", reflect.TypeFor[Kinds](), c)
	err := m.SetText("Nope")
	require.Error(t, err)
	assert.ErrorContains(t, err, "values are Value, Field, Property")
	assert.Equal(t, Value, c.Value)
}

func TestParseDecimal(t *testing.T) {
	c := accessor.NewConstant(new(big.Float))
	m := Default.New("d", reflect.TypeFor[*big.Float](), c)
	require.NoError(t, m.SetText("2.25"))
	m.Update()
	assert.Equal(t, "2.25", m.Text())

	var f big.Float
	c = accessor.NewConstant(f)
	m = Default.New("d", reflect.TypeFor[big.Float](), c)
	require.NoError(t, m.SetText("0.5"))
	m.Update()
	assert.Equal(t, "0.5", m.Text())
}
