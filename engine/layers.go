// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"fmt"
	"slices"
	"strings"
)

// layerNames are the names of the 32 layers; unnamed layers are empty.
var layerNames = [32]string{0: "Default", 1: "TransparentFX", 2: "Ignore Raycast", 4: "Water", 5: "UI"}

// LayerToName returns the name of the layer at the given index.
func LayerToName(i int) string {
	if i < 0 || i >= len(layerNames) {
		return ""
	}
	return layerNames[i]
}

// NameToLayer returns the index of the layer with the given name, or -1.
func NameToLayer(name string) int {
	return slices.Index(layerNames[:], name)
}

// SetLayerName names the layer at the given index.
func SetLayerName(i int, name string) {
	if i >= 0 && i < len(layerNames) {
		layerNames[i] = name
	}
}

// LayerMask is a bit mask of layers.
type LayerMask struct {
	Value int32
}

// Everything is the mask of all layers.
var Everything = LayerMask{-1}

// Has returns whether the mask includes the layer at the given index.
func (m LayerMask) Has(layer int) bool { return m.Value&(1<<uint(layer)) != 0 }

// With returns the mask with the given layer included or excluded.
func (m LayerMask) With(layer int, on bool) LayerMask {
	if on {
		m.Value |= 1 << uint(layer)
	} else {
		m.Value &^= 1 << uint(layer)
	}
	return m
}

// String returns "Nothing", "Everything" or the names of the named
// layers in the mask joined by "|".
func (m LayerMask) String() string {
	switch m.Value {
	case 0:
		return "Nothing"
	case -1:
		return "Everything"
	}
	var names []string
	for i, nm := range layerNames {
		if m.Has(i) {
			if nm == "" {
				nm = fmt.Sprint(i)
			}
			names = append(names, nm)
		}
	}
	return strings.Join(names, "|")
}

// ParseLayerMask parses the output of [LayerMask.String].
func ParseLayerMask(s string) (LayerMask, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "", "Nothing":
		return LayerMask{}, nil
	case "Everything":
		return Everything, nil
	}
	var m LayerMask
	for _, nm := range strings.Split(s, "|") {
		nm = strings.TrimSpace(nm)
		i := NameToLayer(nm)
		if i < 0 {
			if _, err := fmt.Sscan(nm, &i); err != nil || i < 0 || i >= len(layerNames) {
				return LayerMask{}, fmt.Errorf("engine.ParseLayerMask: unknown layer %q", nm)
			}
		}
		m = m.With(i, true)
	}
	return m, nil
}

// Tags are the tags that game objects can have.
var Tags = []string{"Untagged", "Respawn", "Finish", "EditorOnly", "MainCamera", "Player", "GameController"}

// IsTag returns whether the given string is one of the [Tags].
func IsTag(tag string) bool {
	return slices.Contains(Tags, tag)
}
