// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package member

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"cogentcore.org/viscera/base/labels"
	"cogentcore.org/viscera/engine"
	"cogentcore.org/viscera/enums"
	"golang.org/x/exp/constraints"
)

var durationType = reflect.TypeFor[time.Duration]()

// number converts a parsed number to the given type.
func number[T constraints.Integer | constraints.Float](typ reflect.Type, s string, x T, err error) (any, error) {
	if err != nil {
		return nil, fmt.Errorf("member.parseNumber: %q is not a valid %s", s, typ)
	}
	return reflect.ValueOf(x).Convert(typ).Interface(), nil
}

func parseNumber(typ reflect.Type, s string) (any, error) {
	s = strings.TrimSpace(s)
	if typ == durationType {
		d, err := time.ParseDuration(s)
		return number(typ, s, d, err)
	}
	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 0, typ.Bits())
		return number(typ, s, i, err)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 0, typ.Bits())
		return number(typ, s, u, err)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, typ.Bits())
		return number(typ, s, f, err)
	}
	return nil, fmt.Errorf("member.parseNumber: %s is not a number type", typ)
}

func parseString(typ reflect.Type, s string) (any, error) {
	return reflect.ValueOf(s).Convert(typ).Interface(), nil
}

func parseBool(typ reflect.Type, s string) (any, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("member.parseBool: %q is not a valid bool", s)
	}
	return reflect.ValueOf(b).Convert(typ).Interface(), nil
}

func parseChar(typ reflect.Type, s string) (any, error) {
	if q, err := strconv.Unquote(s); err == nil {
		s = q
	}
	if utf8.RuneCountInString(s) != 1 {
		return nil, fmt.Errorf("member.parseChar: %q is not a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return engine.Char(r), nil
}

func parseEnum(typ reflect.Type, s string) (any, error) {
	pv := reflect.New(typ)
	es, ok := pv.Interface().(enums.EnumSetter)
	if !ok {
		return nil, fmt.Errorf("member.parseEnum: %s cannot be set from text", typ)
	}
	var err error
	if _, isFlag := es.(enums.BitFlag); isFlag {
		err = enums.SetStringOr(es, s)
	} else {
		err = es.SetString(strings.TrimSpace(s))
	}
	if err != nil {
		return nil, fmt.Errorf("%w; values are %s", err, strings.Join(enums.Names(es), ", "))
	}
	return pv.Elem().Interface(), nil
}

// parseObject finds the object of the active scene named by the given
// text for a slot of the given type: a game object, or the first component
// of a game object that fits the type. The text "null" clears the slot.
func parseObject(typ reflect.Type, s string) (any, error) {
	s = strings.TrimSpace(s)
	if s == "null" {
		return nil, nil
	}
	o := engine.FindObject(s, typ)
	if o == nil {
		return nil, fmt.Errorf("member.parseObject: no %s named %q in the active scene", labels.TypeLabel(typ), s)
	}
	return o, nil
}

// parseTuple parses a value of a struct type made of float32 fields,
// possibly nested, from its components in field order, as in
// "(1, 2, 3)". Components may carry a "name:" label.
func parseTuple(typ reflect.Type, s string) (any, error) {
	s = strings.NewReplacer("(", " ", ")", " ").Replace(s)
	parts := strings.Split(s, ",")
	v := reflect.New(typ).Elem()
	var leaves []reflect.Value
	collectFloats(v, &leaves)
	if len(parts) != len(leaves) {
		return nil, fmt.Errorf("member.parseTuple: %s needs %d components, not %d", typ, len(leaves), len(parts))
	}
	for i, p := range parts {
		if j := strings.LastIndexByte(p, ':'); j >= 0 {
			p = p[j+1:]
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return nil, fmt.Errorf("member.parseTuple: %q is not a valid number", strings.TrimSpace(p))
		}
		leaves[i].SetFloat(f)
	}
	return v.Interface(), nil
}

// collectFloats appends the settable float leaves of the given value.
func collectFloats(v reflect.Value, leaves *[]reflect.Value) {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		*leaves = append(*leaves, v)
	case reflect.Struct:
		for i := range v.NumField() {
			if v.Type().Field(i).IsExported() {
				collectFloats(v.Field(i), leaves)
			}
		}
	}
}

// parseColor parses a color in the "#rrggbb" form, optionally followed
// by " a:alpha", or as a tuple of its components.
func parseColor(typ reflect.Type, s string) (any, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return parseTuple(typ, s)
	}
	hex, alpha, hasAlpha := strings.Cut(s, " ")
	c, err := engine.ColorFromHex(hex)
	if err != nil {
		return nil, fmt.Errorf("member.parseColor: %q is not a valid color: %w", s, err)
	}
	if hasAlpha {
		alpha = strings.TrimPrefix(strings.TrimSpace(alpha), "a:")
		a, err := strconv.ParseFloat(alpha, 32)
		if err != nil {
			return nil, fmt.Errorf("member.parseColor: %q is not a valid alpha", alpha)
		}
		c.A = float32(a)
	}
	return c, nil
}

func parseLayerMask(typ reflect.Type, s string) (any, error) {
	return engine.ParseLayerMask(s)
}

func parseDecimal(typ reflect.Type, s string) (any, error) {
	f, _, err := big.ParseFloat(strings.TrimSpace(s), 10, 0, big.ToNearestEven)
	if err != nil {
		return nil, fmt.Errorf("member.parseDecimal: %q is not a valid decimal", s)
	}
	if typ.Kind() == reflect.Pointer {
		return f, nil
	}
	return *f, nil
}
