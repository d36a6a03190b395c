// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package labels provides the user-facing labels for types, properties
// and members shown by the inspector.
package labels

import (
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var title = cases.Title(language.English, cases.NoLower)

// TypeLabel returns a short label for the given type, excluding the package.
// Slices are shown as List<T>, maps as Dict<K,V>, arrays as T[N] and
// pointers as the type they point to.
func TypeLabel(typ reflect.Type) string {
	if typ == nil {
		return "nil"
	}
	switch typ.Kind() {
	case reflect.Pointer:
		return TypeLabel(typ.Elem())
	case reflect.Slice:
		return "List<" + TypeLabel(typ.Elem()) + ">"
	case reflect.Map:
		return "Dict<" + TypeLabel(typ.Key()) + "," + TypeLabel(typ.Elem()) + ">"
	case reflect.Array:
		return TypeLabel(typ.Elem()) + "[" + strconv.Itoa(typ.Len()) + "]"
	case reflect.Func:
		return "Func"
	case reflect.Interface:
		if typ.Name() == "" {
			if typ.NumMethod() == 0 {
				return "any"
			}
			return "interface"
		}
	}
	nm := typ.Name()
	if nm == "" {
		return typ.String()
	}
	if i := strings.IndexByte(nm, '['); i > 0 {
		nm = nm[:i]
	}
	return nm
}

// PropertyLabel returns the label of a property with the given name,
// showing its accessors in the form "Name {get;set;}".
func PropertyLabel(name string, canGet, canSet bool) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteString(" {")
	if canGet {
		sb.WriteString("get;")
	}
	if canSet {
		sb.WriteString("set;")
	}
	sb.WriteString("}")
	return sb.String()
}

// Friendly returns a title-cased, space separated version of the given
// camel case identifier, for use in headers. For example, "instanceID"
// becomes "Instance ID" and "MoveSpeed" becomes "Move Speed".
func Friendly(name string) string {
	var words []string
	rs := []rune(name)
	start := 0
	for i := 1; i < len(rs); i++ {
		prev, cur := rs[i-1], rs[i]
		next := rune(0)
		if i+1 < len(rs) {
			next = rs[i+1]
		}
		switch {
		case cur == '_' || cur == ' ':
			words = append(words, string(rs[start:i]))
			start = i + 1
		case unicode.IsUpper(cur) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			words = append(words, string(rs[start:i]))
			start = i
		case unicode.IsUpper(cur) && unicode.IsUpper(prev) && unicode.IsLower(next):
			words = append(words, string(rs[start:i]))
			start = i
		}
	}
	if start < len(rs) {
		words = append(words, string(rs[start:]))
	}
	var kept []string
	for _, w := range words {
		if w != "" {
			kept = append(kept, w)
		}
	}
	return title.String(strings.Join(kept, " "))
}
