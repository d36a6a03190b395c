// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enumgen generates the methods of enum types, as declared with
// an //enums:enum or //enums:bitflag comment directive after the type.
package enumgen

import (
	"bytes"
	"cmp"
	"fmt"
	"go/ast"
	"go/constant"
	"go/format"
	"go/token"
	"go/types"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"
)

// Type is an enum type found in a package.
type Type struct {

	// Name is the name of the type.
	Name string

	// IsBitFlag is whether the type was declared as a bit flag.
	IsBitFlag bool

	// Values are the constants of the type, in declaration order.
	Values []Value
}

// Value is one constant of an enum type.
type Value struct {

	// Name is the name of the constant.
	Name string

	// Str is the printed text of the constant.
	Str string

	// Value is the value of the constant.
	Value int64
}

// Generate generates enum methods for every package matched
// by [Config.Dir], writing them to [Config.Output] in each package
// that has enum types.
func Generate(cfg *Config) error {
	pcfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
	}
	pkgs, err := packages.Load(pcfg, cfg.Dir)
	if err != nil {
		return fmt.Errorf("enumgen: loading packages: %w", err)
	}
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return fmt.Errorf("enumgen: package %s has errors: %v", pkg.PkgPath, pkg.Errors[0])
		}
		typs, err := Collect(cfg, pkg.Syntax, pkg.TypesInfo)
		if err != nil {
			return err
		}
		if len(typs) == 0 || len(pkg.GoFiles) == 0 {
			continue
		}
		src, err := Write(pkg.Name, typs)
		if err != nil {
			return err
		}
		out := filepath.Join(filepath.Dir(pkg.GoFiles[0]), cfg.Output)
		if err := os.WriteFile(out, src, 0o666); err != nil {
			return err
		}
		slog.Info("enumgen: generated", "file", out, "types", len(typs))
	}
	return nil
}

// Collect returns the enum types declared in the given type checked files.
func Collect(cfg *Config, files []*ast.File, info *types.Info) ([]*Type, error) {
	var typs []*Type
	for _, file := range files {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)
				isEnum, isFlag := directive(ts.Comment)
				if !isEnum && !isFlag {
					continue
				}
				tn, ok := info.Defs[ts.Name].(*types.TypeName)
				if !ok {
					continue
				}
				if b, ok := tn.Type().Underlying().(*types.Basic); !ok || b.Info()&types.IsInteger == 0 {
					return nil, fmt.Errorf("enumgen: enum type %s must have an integer underlying type", ts.Name.Name)
				}
				typ := &Type{Name: ts.Name.Name, IsBitFlag: isFlag}
				for _, f := range files {
					typ.Values = append(typ.Values, values(cfg, f, tn, info)...)
				}
				if len(typ.Values) == 0 {
					return nil, fmt.Errorf("enumgen: enum type %s has no values", typ.Name)
				}
				typs = append(typs, typ)
			}
		}
	}
	return typs, nil
}

// directive returns whether the given line comment marks an enum
// or a bit flag type.
func directive(cg *ast.CommentGroup) (isEnum, isFlag bool) {
	if cg == nil {
		return
	}
	for _, c := range cg.List {
		switch strings.TrimSpace(strings.TrimPrefix(c.Text, "//")) {
		case "enums:enum":
			isEnum = true
		case "enums:bitflag":
			isFlag = true
		}
	}
	return
}

// values returns the constants of the given type declared in the given file.
func values(cfg *Config, file *ast.File, tn *types.TypeName, info *types.Info) []Value {
	var vs []Value
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.CONST {
			continue
		}
		for _, spec := range gd.Specs {
			vspec := spec.(*ast.ValueSpec)
			for _, name := range vspec.Names {
				if name.Name == "_" {
					continue
				}
				c, ok := info.Defs[name].(*types.Const)
				if !ok || c.Type() != tn.Type() {
					continue
				}
				i, exact := constant.Int64Val(c.Val())
				if !exact {
					continue
				}
				vs = append(vs, Value{Name: name.Name, Str: valueString(cfg, name.Name, vspec.Comment), Value: i})
			}
		}
	}
	return vs
}

func valueString(cfg *Config, name string, comment *ast.CommentGroup) string {
	if cfg.LineComment && comment != nil && len(comment.List) == 1 {
		return strings.TrimSpace(strings.TrimPrefix(comment.List[0].Text, "//"))
	}
	if cfg.TrimPrefix != "" {
		for _, prefix := range strings.Split(cfg.TrimPrefix, ",") {
			name = strings.TrimPrefix(name, prefix)
		}
	}
	return name
}

// Write returns the formatted source of the generated methods of the
// given types in the package with the given name.
func Write(pkg string, typs []*Type) ([]byte, error) {
	var b bytes.Buffer
	if err := fileTmpl.Execute(&b, map[string]any{"Package": pkg, "Types": typs}); err != nil {
		return nil, err
	}
	src, err := format.Source(b.Bytes())
	if err != nil {
		return nil, fmt.Errorf("enumgen: formatting generated code: %w", err)
	}
	return src, nil
}

// N returns the highest value of the type plus one.
func (t *Type) N() int64 {
	return slices.MaxFunc(t.Values, func(a, b Value) int {
		return cmp.Compare(a.Value, b.Value)
	}).Value + 1
}
