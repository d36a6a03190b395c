// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNonPointerType(t *testing.T) {
	assert.Equal(t, reflect.TypeFor[int](), NonPointerType(reflect.TypeFor[int]()))
	assert.Equal(t, reflect.TypeFor[int](), NonPointerType(reflect.TypeFor[*int]()))
	assert.Equal(t, reflect.TypeFor[int](), NonPointerType(reflect.TypeFor[**int]()))

	assert.Equal(t, reflect.TypeFor[any](), NonPointerType(reflect.TypeFor[*any]()))

	assert.Equal(t, nil, NonPointerType(reflect.TypeOf(nil)))
}

func TestNonPointerValue(t *testing.T) {
	v := 1
	rv := reflect.ValueOf(v)
	assert.True(t, NonPointerValue(reflect.ValueOf(v)).Equal(rv))
	assert.True(t, NonPointerValue(reflect.ValueOf(&v)).Equal(rv))

	p := &v
	assert.True(t, NonPointerValue(reflect.ValueOf(&p)).Equal(rv))

	n := (*int)(nil)
	assert.False(t, NonPointerValue(reflect.ValueOf(n)).IsValid())
}

func TestPointerType(t *testing.T) {
	assert.Equal(t, reflect.TypeFor[*int](), PointerType(reflect.TypeFor[int]()))
	assert.Equal(t, reflect.TypeFor[*int](), PointerType(reflect.TypeFor[*int]()))
	assert.Nil(t, PointerType(nil))
}

func TestIsNil(t *testing.T) {
	v := 3
	var np *int
	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(np))
	assert.True(t, IsNil(map[string]int(nil)))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(&v))
}
