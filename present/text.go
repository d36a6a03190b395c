// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package present

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"cogentcore.org/viscera/member"
	"github.com/muesli/termenv"
)

// Text renders page snapshots as indented lines of text.
type Text struct {
	out *termenv.Output

	// column widths of the render in progress
	pathWidth, nameWidth, typeWidth int
}

// NewText returns a new text renderer writing to w. If color is false,
// no escape sequences are emitted.
func NewText(w io.Writer, color bool) *Text {
	var opts []termenv.OutputOption
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &Text{out: termenv.NewOutput(w, opts...)}
}

// Render writes the given snapshot: the breadcrumbs, then one line per
// visible member, grouped under the headers of their embedding levels.
func (t *Text) Render(pv *PageView) error {
	var sb strings.Builder
	if len(pv.Breadcrumbs) == 0 {
		sb.WriteString(t.out.String(pv.Title).Faint().String())
		sb.WriteByte('\n')
		_, err := io.WriteString(t.out, sb.String())
		return err
	}
	for i, b := range pv.Breadcrumbs {
		if i > 0 {
			sb.WriteString(" > ")
		}
		st := t.out.String(fmt.Sprintf("[%d] %s", i, b))
		if i == len(pv.Breadcrumbs)-1 {
			st = st.Bold()
		}
		sb.WriteString(st.String())
	}
	sb.WriteByte('\n')
	t.pathWidth, t.nameWidth, t.typeWidth = 0, 0, 0
	t.measure(pv.Members, 0)
	t.write(&sb, pv.Members, 0)
	_, err := io.WriteString(t.out, sb.String())
	return err
}

func width(s string) int { return utf8.RuneCountInString(s) }

func pad(s string, w int) string {
	if n := w - width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func (t *Text) measure(vs []*MemberView, depth int) {
	for _, v := range vs {
		if v.Kind == member.Level {
			continue
		}
		t.pathWidth = max(t.pathWidth, width(v.Path))
		t.nameWidth = max(t.nameWidth, 2*depth+2+width(v.DisplayName))
		t.typeWidth = max(t.typeWidth, width(v.TypeLabel))
		t.measure(v.Children, depth+1)
	}
}

func (t *Text) write(sb *strings.Builder, vs []*MemberView, depth int) {
	for _, v := range vs {
		if v.Kind == member.Level {
			sb.WriteString(t.out.String("-- " + v.DisplayName + " --").Bold().String())
			sb.WriteByte('\n')
			continue
		}
		sign := "  "
		switch {
		case v.Expanded:
			sign = "- "
		case v.Expandable:
			sign = "+ "
		}
		name := strings.Repeat("  ", depth) + sign + v.DisplayName
		sb.WriteString(t.out.String(pad(v.Path, t.pathWidth)).Faint().String())
		sb.WriteByte(' ')
		sb.WriteString(pad(name, t.nameWidth))
		sb.WriteByte(' ')
		sb.WriteString(t.out.String(pad(v.TypeLabel, t.typeWidth)).Foreground(termenv.ANSIBlue).String())
		sb.WriteByte(' ')
		switch {
		case v.Err != "":
			sb.WriteString(t.out.String("! " + v.Err).Foreground(termenv.ANSIRed).String())
		case v.Gated:
			sb.WriteString(t.out.String(v.Value).Faint().String())
		default:
			sb.WriteString(v.Value)
		}
		if v.Drillable {
			sb.WriteString(t.out.String(" >").Foreground(termenv.ANSICyan).String())
		}
		sb.WriteByte('\n')
		if v.Expanded {
			t.write(sb, v.Children, depth+1)
		}
	}
}
