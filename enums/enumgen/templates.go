// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enumgen

import "text/template"

var fileTmpl = template.Must(template.New("File").Parse(
	`// Code generated by "enumgen"; DO NOT EDIT.

package {{.Package}}

import (
	"cogentcore.org/viscera/enums"
)
{{range .Types}}{{template "Type" .}}{{end}}`))

func init() {
	template.Must(fileTmpl.New("Type").Parse(`
var _{{.Name}}Values = []{{.Name}}{ {{- range $i, $v := .Values}}{{if $i}}, {{end}}{{$v.Value}}{{end -}} }

// {{.Name}}N is the highest valid value for type {{.Name}}, plus one.
const {{.Name}}N {{.Name}} = {{.N}}

var _{{.Name}}ValueMap = map[string]{{.Name}}{ {{- range $i, $v := .Values}}{{if $i}}, {{end}}` + "`{{$v.Str}}`" + `: {{$v.Value}}{{end -}} }

var _{{.Name}}Map = map[{{.Name}}]string{ {{- range $i, $v := .Values}}{{if $i}}, {{end}}{{$v.Value}}: ` + "`{{$v.Str}}`" + `{{end -}} }

// String returns the string representation of this {{.Name}} value.
func (i {{.Name}}) String() string { return enums.String(i, _{{.Name}}Map) }

// SetString sets the {{.Name}} value from its string representation,
// and returns an error if the string is invalid.
func (i *{{.Name}}) SetString(s string) error {
	return enums.SetString(i, s, _{{.Name}}ValueMap, "{{.Name}}")
}

// Int64 returns the {{.Name}} value as an int64.
func (i {{.Name}}) Int64() int64 { return int64(i) }

// SetInt64 sets the {{.Name}} value from an int64.
func (i *{{.Name}}) SetInt64(in int64) { *i = {{.Name}}(in) }

// {{.Name}}Values returns all possible values for the type {{.Name}}.
func {{.Name}}Values() []{{.Name}} { return _{{.Name}}Values }

// Values returns all possible values for the type {{.Name}}.
func (i {{.Name}}) Values() []enums.Enum {
	res := make([]enums.Enum, len(_{{.Name}}Values))
	for j, v := range _{{.Name}}Values {
		res[j] = v
	}
	return res
}
{{if .IsBitFlag}}
// HasFlag returns whether these bit flags have the given bit flag set.
func (i {{.Name}}) HasFlag(f enums.BitFlag) bool { return enums.HasFlag(int64(i), f) }

// SetFlag sets the value of the given flags in these flags to the given value.
func (i *{{.Name}}) SetFlag(on bool, f ...enums.BitFlag) {
	in := int64(*i)
	enums.SetFlag(&in, on, f...)
	*i = {{.Name}}(in)
}
{{end}}`))
}
