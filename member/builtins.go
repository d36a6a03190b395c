// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package member

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"

	"cogentcore.org/viscera/base/labels"
	"cogentcore.org/viscera/base/reflectx"
	"cogentcore.org/viscera/engine"
	"cogentcore.org/viscera/enums"
)

var (
	enumType      = reflect.TypeFor[enums.Enum]()
	charType      = reflect.TypeFor[engine.Char]()
	decimalType   = reflect.TypeFor[big.Float]()
	decimalPtr    = reflect.TypeFor[*big.Float]()
	layerMaskType = reflect.TypeFor[engine.LayerMask]()
	colorType     = reflect.TypeFor[engine.Color]()
)

// The built-in variants, in the order of the resolution table.
var (
	ObjectVariant = &Variant{Name: "Object", Priority: 9000, Match: engine.IsObjectType,
		Format: formatObject, Parse: parseObject, Drill: true}

	FuncVariant = &Variant{Name: "Func", Priority: 4000, Match: reflectx.IsDelegate,
		Format: func(v any) string { return "func" }}

	StringVariant = &Variant{Name: "String", Priority: 3000, Match: isString,
		Format: func(v any) string { return reflect.ValueOf(v).String() }, Parse: parseString}

	MapVariant = &Variant{Name: "Map", Priority: 2000, Match: isKind(reflect.Map),
		Format: formatCollection, Elements: MapSlots}

	ListVariant = &Variant{Name: "List", Priority: 2000, Match: isKind(reflect.Slice),
		Format: formatCollection, Elements: ListSlots, Resizable: true}

	ArrayVariant = &Variant{Name: "Array", Priority: 1000, Match: isKind(reflect.Array),
		Format: formatCollection, Elements: ListSlots}

	EnumVariant = &Variant{Name: "Enum", Priority: 0, Match: isEnum,
		Format: formatEnum, Parse: parseEnum}

	NumberVariant = &Variant{Name: "Number", Priority: 0, Match: isNumber,
		Format: formatNumber, Parse: parseNumber}

	BoolVariant = &Variant{Name: "Bool", Priority: 0, Match: isKind(reflect.Bool),
		Format: func(v any) string { return strconv.FormatBool(reflect.ValueOf(v).Bool()) }, Parse: parseBool}

	CharVariant = &Variant{Name: "Char", Priority: 0, Type: charType,
		Format: func(v any) string { return strconv.QuoteRune(rune(v.(engine.Char))) }, Parse: parseChar}

	Vector2Variant = &Variant{Name: "Vector2", Priority: 0, Type: reflect.TypeFor[engine.Vector2](),
		Format: formatStringer, Parse: parseTuple}

	Vector3Variant = &Variant{Name: "Vector3", Priority: 0, Type: reflect.TypeFor[engine.Vector3](),
		Format: formatStringer, Parse: parseTuple}

	Vector4Variant = &Variant{Name: "Vector4", Priority: 0, Type: reflect.TypeFor[engine.Vector4](),
		Format: formatStringer, Parse: parseTuple}

	ColorVariant = &Variant{Name: "Color", Priority: 0, Type: colorType,
		Format: formatColor, Parse: parseColor}

	RectVariant = &Variant{Name: "Rect", Priority: 0, Type: reflect.TypeFor[engine.Rect](),
		Format: formatStringer, Parse: parseTuple}

	QuaternionVariant = &Variant{Name: "Quaternion", Priority: 0, Type: reflect.TypeFor[engine.Quaternion](),
		Format: formatStringer, Parse: parseTuple}

	PlaneVariant = &Variant{Name: "Plane", Priority: 0, Type: reflect.TypeFor[engine.Plane](),
		Format: formatStringer, Parse: parseTuple}

	LayerMaskVariant = &Variant{Name: "LayerMask", Priority: 0, Type: layerMaskType,
		Format: formatStringer, Parse: parseLayerMask}

	DecimalVariant = &Variant{Name: "Decimal", Priority: 0, Match: isDecimal,
		Format: formatDecimal, Parse: parseDecimal}

	ClassVariant = &Variant{Name: "Class", Priority: -8000, Match: reflectx.IsReferenceType,
		Format: formatType, Drill: true}

	StructVariant = &Variant{Name: "Struct", Priority: -8000, Match: isStruct,
		Format: formatType, Elements: structElements, Drill: true}

	InterfaceVariant = &Variant{Name: "Interface", Priority: -9000, Match: isKind(reflect.Interface),
		Format: func(v any) string { return fmt.Sprint(v) }, Drill: true}
)

// Builtins are the variants registered by [NewRegistry].
var Builtins = []*Variant{
	ObjectVariant,
	FuncVariant,
	StringVariant,
	MapVariant, ListVariant,
	ArrayVariant,
	EnumVariant, NumberVariant, BoolVariant, CharVariant,
	Vector2Variant, Vector3Variant, Vector4Variant, ColorVariant, RectVariant,
	QuaternionVariant, PlaneVariant, LayerMaskVariant, DecimalVariant,
	ClassVariant, StructVariant,
	InterfaceVariant,
}

// Variants that are not part of the resolution table.
var (
	// GenericVariant is the fallback variant, which shows values
	// without decomposing them.
	GenericVariant = &Variant{Name: "Generic", Match: func(reflect.Type) bool { return true },
		Format: func(v any) string { return fmt.Sprint(v) }}

	// LevelVariant is the variant of [Level] markers.
	LevelVariant = &Variant{Name: "Level", Match: func(reflect.Type) bool { return false },
		Format: func(v any) string { return "" }}

	// ComponentVariant is the variant of [Component] headers,
	// which open the component when drilled into.
	ComponentVariant = &Variant{Name: "Component", Match: engine.IsComponentType,
		Format: formatObject, Drill: true}
)

func isKind(k reflect.Kind) func(reflect.Type) bool {
	return func(typ reflect.Type) bool { return typ.Kind() == k }
}

// isStruct returns whether the type is a struct; arrays, the other value
// types, resolve to the higher priority [ArrayVariant].
func isStruct(typ reflect.Type) bool {
	return reflectx.IsValueType(typ) && typ.Kind() != reflect.Array
}

func isEnum(typ reflect.Type) bool {
	return typ.Kind() != reflect.Interface && reflectx.Implements(typ, enumType)
}

func isString(typ reflect.Type) bool {
	return typ.Kind() == reflect.String && !isEnum(typ)
}

// isNumber returns whether the type is a numeric scalar that is neither
// an enum nor a [engine.Char].
func isNumber(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return typ != charType && !isEnum(typ)
	}
	return false
}

func isDecimal(typ reflect.Type) bool {
	return typ == decimalType || typ == decimalPtr
}

func formatObject(v any) string {
	o := v.(engine.Object)
	return fmt.Sprintf("%s (%s)", o.ObjectName(), reflectx.TypeName(reflectx.NonPointerType(reflect.TypeOf(v))))
}

func formatCollection(v any) string {
	rv := reflect.ValueOf(v)
	return fmt.Sprintf("%s (%d)", labels.TypeLabel(rv.Type()), rv.Len())
}

func formatType(v any) string {
	return labels.TypeLabel(reflect.TypeOf(v))
}

func formatStringer(v any) string {
	return v.(fmt.Stringer).String()
}

func formatEnum(v any) string {
	if bf, ok := v.(enums.BitFlag); ok {
		return enums.BitFlagString(bf)
	}
	return v.(enums.Enum).String()
}

func formatNumber(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	}
	return fmt.Sprint(v)
}

func formatColor(v any) string {
	c := v.(engine.Color)
	if c.A == 1 {
		return c.Hex()
	}
	return fmt.Sprintf("%s a:%g", c.Hex(), c.A)
}

func formatDecimal(v any) string {
	switch d := v.(type) {
	case *big.Float:
		return d.Text('g', -1)
	case big.Float:
		return d.Text('g', -1)
	}
	return fmt.Sprint(v)
}
