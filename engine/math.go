// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vector2 is a 2D vector/point with X and Y components.
type Vector2 struct {
	X, Y float32
}

func (v Vector2) String() string { return fmt.Sprintf("(%g, %g)", v.X, v.Y) }

// Length returns the length of the vector.
func (v Vector2) Length() float32 { return math32.Sqrt(v.X*v.X + v.Y*v.Y) }

// Vector3 is a 3D vector/point with X, Y and Z components.
type Vector3 struct {
	X, Y, Z float32
}

func (v Vector3) String() string { return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z) }

// Add returns the vector sum of v and o.
func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// MulScalar returns the vector multiplied by the given scalar.
func (v Vector3) MulScalar(s float32) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product of v and o.
func (v Vector3) Dot(o Vector3) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product of v and o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{v.Y*o.Z - v.Z*o.Y, v.Z*o.X - v.X*o.Z, v.X*o.Y - v.Y*o.X}
}

// Length returns the length of the vector.
func (v Vector3) Length() float32 { return math32.Sqrt(v.Dot(v)) }

// Normal returns the vector scaled to length 1, or the zero
// vector if it has no length.
func (v Vector3) Normal() Vector3 {
	l := v.Length()
	if l == 0 {
		return Vector3{}
	}
	return v.MulScalar(1 / l)
}

// Vector4 is a 4D vector with X, Y, Z and W components.
type Vector4 struct {
	X, Y, Z, W float32
}

func (v Vector4) String() string { return fmt.Sprintf("(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W) }

// Quaternion is a rotation quaternion.
type Quaternion struct {
	X, Y, Z, W float32
}

// QuaternionIdentity returns the identity rotation.
func QuaternionIdentity() Quaternion { return Quaternion{W: 1} }

// QuaternionAxisAngle returns the rotation of the given angle in
// radians around the given axis.
func QuaternionAxisAngle(axis Vector3, angle float32) Quaternion {
	s, c := math32.Sincos(angle / 2)
	a := axis.Normal()
	return Quaternion{a.X * s, a.Y * s, a.Z * s, c}
}

func (q Quaternion) String() string { return fmt.Sprintf("(%g, %g, %g, %g)", q.X, q.Y, q.Z, q.W) }

// Rotate returns the given vector rotated by the quaternion.
func (q Quaternion) Rotate(v Vector3) Vector3 {
	u := Vector3{q.X, q.Y, q.Z}
	t := u.Cross(v).MulScalar(2)
	return v.Add(t.MulScalar(q.W)).Add(u.Cross(t))
}

// Rect is an axis-aligned 2D rectangle.
type Rect struct {
	X, Y, Width, Height float32
}

func (r Rect) String() string {
	return fmt.Sprintf("(x:%g, y:%g, width:%g, height:%g)", r.X, r.Y, r.Width, r.Height)
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vector2 { return Vector2{r.X + r.Width/2, r.Y + r.Height/2} }

// Contains returns whether the given point is inside the rectangle.
func (r Rect) Contains(p Vector2) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Plane is a plane in 3D space defined by its normal and its
// signed distance from the origin.
type Plane struct {
	Normal   Vector3
	Distance float32
}

func (p Plane) String() string { return fmt.Sprintf("(normal:%v, distance:%g)", p.Normal, p.Distance) }

// DistanceTo returns the signed distance from the plane to the given point.
func (p Plane) DistanceTo(pt Vector3) float32 { return p.Normal.Dot(pt) + p.Distance }

// Char is a single character. It is a distinct type from rune,
// which is an alias of int32.
type Char rune

func (c Char) String() string { return string(rune(c)) }
