// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enums defines the interfaces that enum and bit flag types
// implement so that the inspector can recognize, format and edit them.
package enums

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Enum is the interface that all enum types satisfy.
type Enum interface {
	fmt.Stringer

	// Int64 returns the enum value as an int64.
	Int64() int64

	// Values returns all possible values this enum type has.
	Values() []Enum
}

// EnumSetter is an expanded interface that all pointers
// to enum types satisfy. Pointers to enum types must
// satisfy all of the methods of [Enum], and must also
// be settable from strings and int64s.
type EnumSetter interface {
	Enum

	// SetString sets the enum value from its
	// string representation, and returns an
	// error if the string is invalid.
	SetString(s string) error

	// SetInt64 sets the enum value from an int64.
	SetInt64(i int64)
}

// BitFlag is the interface that all bit flag enum types
// satisfy. Bit flag enum types support all of the operations
// that standard enums do, and additionally can check if they
// have a given bit flag.
type BitFlag interface {
	Enum

	// HasFlag returns whether these flags
	// have the given flag set.
	HasFlag(f BitFlag) bool
}

// HasFlag returns whether this flag value has the given bit flag
// set, where the flag value of f is its bit index.
func HasFlag(i int64, f BitFlag) bool {
	return i&(1<<uint32(f.Int64())) != 0
}

// SetFlag sets the value of the given flags in these flags to the given value.
func SetFlag(i *int64, on bool, f ...BitFlag) {
	var mask int64
	for _, v := range f {
		mask |= 1 << v.Int64()
	}
	if on {
		*i |= mask
	} else {
		*i &^= mask
	}
}

// String returns the string name of the given enum value, using the
// given map of names, falling back on the number itself.
func String[T constraints.Integer](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return strconv.FormatInt(int64(i), 10)
}

// BitFlagString returns the string of the set flags in the given
// bit flag value, joined by "|".
func BitFlagString(f BitFlag) string {
	var names []string
	for _, v := range f.Values() {
		if bf, ok := v.(BitFlag); ok && f.HasFlag(bf) {
			names = append(names, v.String())
		}
	}
	return strings.Join(names, "|")
}

// SetStringOr parses the given "|" separated list of names and
// sets the resulting bit flag value with [EnumSetter.SetInt64].
func SetStringOr(e EnumSetter, s string) error {
	var i int64
	s = strings.TrimSpace(s)
	if s == "" {
		e.SetInt64(0)
		return nil
	}
	values := e.Values()
	for _, nm := range strings.Split(s, "|") {
		nm = strings.TrimSpace(nm)
		found := false
		for _, v := range values {
			if v.String() == nm {
				i |= 1 << v.Int64()
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("enums.SetStringOr: %q is not a valid flag value for %T", nm, e)
		}
	}
	e.SetInt64(i)
	return nil
}

// Names returns the names of all of the values of the given enum type.
func Names(e Enum) []string {
	vs := e.Values()
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = v.String()
	}
	return names
}

// SetString sets the given enum value from its string representation
// using the given map from names to values. It returns an error if the
// string is not a valid value of the enum type with the given name.
func SetString[T any](i *T, s string, valueMap map[string]T, typeName string) error {
	if v, ok := valueMap[s]; ok {
		*i = v
		return nil
	}
	return fmt.Errorf("%s.SetString: %q is not a valid value for type %s", typeName, s, typeName)
}
