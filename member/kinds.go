// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package member

//go:generate go run cogentcore.org/viscera/enums/cmd/enumgen

// Kinds are the roles a member plays in its parent.
type Kinds int32 //enums:enum

const (
	// Value is a member bound to a whole value, such as the root of a page.
	Value Kinds = iota

	// Field is a member bound to a struct field.
	Field

	// Property is a member bound to a getter method and its setter.
	Property

	// Element is a member bound to an element of a list, array or map.
	Element

	// Level is a marker that starts the members declared at one level
	// of an embedding chain. It has no accessor.
	Level

	// Lambda is a read-only member computed by a function.
	Lambda

	// Component is the header of one component of a game object.
	Component
)
