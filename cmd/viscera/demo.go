// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/big"
	"reflect"

	"cogentcore.org/viscera/engine"
)

//go:generate go run cogentcore.org/viscera/enums/cmd/enumgen

// Modes are the modes of a [Spinner].
type Modes int32 //enums:enum

const (
	// Idle spinners do not move.
	Idle Modes = iota

	// Spinning spinners turn and move forward.
	Spinning

	// Wobbling spinners turn back and forth.
	Wobbling
)

// Spinner is the script of the demo game objects. It turns its game
// object every frame and records the path it has taken.
type Spinner struct {
	engine.Script

	// Speed is the turning speed in radians per second.
	Speed float32

	// Mode is the current mode.
	Mode Modes

	// Tint is the color of the spinner.
	Tint engine.Color

	// Trail holds the most recent positions.
	Trail []engine.Vector3

	// Counts is the number of frames spent in each mode.
	Counts map[string]int

	// Target is the game object the spinner follows, if any.
	Target *engine.GameObject

	// Limits are the minimum and maximum angles when wobbling.
	Limits [2]float32

	// Distance is the total distance travelled.
	Distance *big.Float

	angle  float32
	frames int
}

// NewSpinner returns a new spinning spinner with the given speed.
func NewSpinner(speed float32) *Spinner {
	return &Spinner{
		Speed:    speed,
		Mode:     Spinning,
		Tint:     engine.White,
		Counts:   map[string]int{},
		Limits:   [2]float32{-1, 1},
		Distance: new(big.Float),
	}
}

// Angle returns the current angle in radians.
func (s *Spinner) Angle() float32 { return s.angle }

// SetAngle sets the current angle in radians.
func (s *Spinner) SetAngle(a float32) { s.angle = a }

// Frames returns the number of frames since the spinner was created.
func (s *Spinner) Frames() int { return s.frames }

// Heading returns the forward direction, which requires a transform.
func (s *Spinner) Heading() (engine.Vector3, error) {
	t := s.Transform()
	if t == nil {
		return engine.Vector3{}, fmt.Errorf("spinner %q is detached", s.Name)
	}
	return t.Forward(), nil
}

func (s *Spinner) Update(dt float32) {
	s.frames++
	if s.Counts == nil {
		s.Counts = map[string]int{}
	}
	s.Counts[s.Mode.String()]++
	switch s.Mode {
	case Idle:
		return
	case Spinning:
		s.angle += s.Speed * dt
	case Wobbling:
		s.angle += s.Speed * dt
		if s.angle < s.Limits[0] || s.angle > s.Limits[1] {
			s.Speed = -s.Speed
		}
	}
	t := s.Transform()
	t.Rotation = engine.QuaternionAxisAngle(engine.Vector3{Y: 1}, s.angle)
	step := t.Forward().MulScalar(dt)
	t.Translate(step)
	s.Trail = append(s.Trail, t.Position)
	if len(s.Trail) > 8 {
		s.Trail = s.Trail[1:]
	}
	if s.Distance == nil {
		s.Distance = new(big.Float)
	}
	s.Distance.Add(s.Distance, big.NewFloat(float64(step.Length())))
}

var spinnerType = reflect.TypeFor[*Spinner]()

// NewDemoScene returns a scene of n game objects with spinners,
// each following the next one.
func NewDemoScene(n int) *engine.Scene {
	sc := &engine.Scene{Name: "Demo"}
	gs := make([]*engine.GameObject, n)
	for i := range n {
		s := NewSpinner(float32(i+1) / 2)
		if i%2 == 1 {
			s.Mode = Wobbling
		}
		gs[i] = engine.NewGameObject(fmt.Sprintf("Spinner%d", i), s)
		gs[i].Tag = "Player"
	}
	for i, g := range gs {
		if n > 1 {
			g.GetComponents()[1].(*Spinner).Target = gs[(i+1)%n]
		}
	}
	sc.Add(gs...)
	return sc
}

// Reload replaces the spinner of the given game object with a new one
// of the same speed, mode and tint, as a script reload would.
func Reload(g *engine.GameObject) bool {
	for _, c := range g.ComponentsOfType(spinnerType) {
		old := c.(*Spinner)
		s := NewSpinner(old.Speed)
		s.Mode, s.Tint, s.Target = old.Mode, old.Tint, old.Target
		return g.Reload(old, s)
	}
	return false
}
