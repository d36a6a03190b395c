// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package accessor provides composable get/set capabilities over single
// slots of a live object graph. An accessor for a slot inside a container
// wraps the accessor of that container, so that arbitrarily deep paths can
// be read and written without holding a pointer into the structure: when
// the container is copied on access (a struct or an array), writing the
// slot writes the whole container back through the outer accessor.
//
// Whether a slot is reached by direct mutation or by get-mutate-write-back
// is decided once, when the accessor is made with [Field], [Property] or
// [Element], from the kind of the containing slot.
package accessor

import (
	"fmt"
	"reflect"

	"cogentcore.org/viscera/base/errors"
	"cogentcore.org/viscera/base/reflectx"
)

// Accessor is a get/set capability over one logical slot of the object graph.
type Accessor interface {

	// Get returns the current value of the slot. It returns a nil value
	// and a nil error if the slot is absent, such as an index past the end
	// of a list or a key missing from a map. Failures raised while reading
	// are returned as an [*EvalError].
	Get() (any, error)

	// Set sets the value of the slot. It does nothing if the slot is not
	// writable or if any container along the chain is currently absent.
	// Failures raised while writing are returned as an [*EvalError].
	Set(value any) error
}

// Writer is implemented by accessors that know whether their slot can be set.
type Writer interface {
	CanWrite() bool
}

// CanWrite returns whether the given accessor accepts writes. Accessors that
// do not implement [Writer] are assumed writable.
func CanWrite(a Accessor) bool {
	if w, ok := a.(Writer); ok {
		return w.CanWrite()
	}
	return a != nil
}

// Gate is implemented by accessors that must not evaluate their slot until
// explicitly asked to, because evaluating it may have side effects.
type Gate interface {

	// Materialized returns whether evaluation has been enabled.
	Materialized() bool

	// Materialize enables evaluation on every subsequent Get.
	Materialize()
}

// IsGated returns whether the given accessor is gated and not yet materialized.
func IsGated(a Accessor) bool {
	g, ok := a.(Gate)
	return ok && !g.Materialized()
}

// Materialize enables evaluation of the given accessor if it is a [Gate].
func Materialize(a Accessor) {
	if g, ok := a.(Gate); ok {
		g.Materialize()
	}
}

type notEvaluated struct{}

func (notEvaluated) String() string { return "(not evaluated)" }

// NotEvaluated is the value returned by gated accessors that have not been
// materialized yet.
var NotEvaluated any = notEvaluated{}

// EvalError is the error returned when reading or writing a slot fails,
// either because the underlying getter or setter returned an error or
// because it panicked. Only the message is kept.
type EvalError struct {
	Message string
}

func (e *EvalError) Error() string { return e.Message }

// evalError converts the given error into an [*EvalError].
func evalError(err error) error {
	if err == nil {
		return nil
	}
	var ee *EvalError
	if errors.As(err, &ee) {
		return ee
	}
	return &EvalError{Message: err.Error()}
}

// guard calls the given function, turning both its error and any panic
// into an [*EvalError].
func guard(f func() (any, error)) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			v = nil
			if re, ok := r.(error); ok {
				err = &EvalError{Message: re.Error()}
			} else {
				err = &EvalError{Message: fmt.Sprint(r)}
			}
		}
	}()
	v, err = f()
	return v, evalError(err)
}

// guardSet is the setting version of [guard].
func guardSet(f func() error) error {
	_, err := guard(func() (any, error) { return nil, f() })
	return err
}

// container returns the current value of the given outer accessor as a
// reflect value. It returns an invalid value if the container is absent.
func container(outer Accessor) (reflect.Value, error) {
	c, err := outer.Get()
	if err != nil || c == nil || c == NotEvaluated {
		return reflect.Value{}, err
	}
	cv := reflect.ValueOf(c)
	if reflectx.IsNil(c) {
		return reflect.Value{}, nil
	}
	return cv, nil
}

// Constant holds a value directly; it is the root of every accessor chain.
type Constant struct {
	Value any
}

// NewConstant returns a new [Constant] holding the given value.
func NewConstant(value any) *Constant { return &Constant{Value: value} }

func (c *Constant) Get() (any, error) { return c.Value, nil }

func (c *Constant) Set(value any) error {
	c.Value = value
	return nil
}

// Func is a read-only accessor computing its value with a function.
type Func struct {
	Getter func() (any, error)
}

// NewFunc returns a new [Func] accessor for the given getter.
func NewFunc(getter func() (any, error)) *Func { return &Func{Getter: getter} }

func (f *Func) Get() (any, error) { return guard(f.Getter) }

func (f *Func) Set(value any) error { return nil }

func (f *Func) CanWrite() bool { return false }
