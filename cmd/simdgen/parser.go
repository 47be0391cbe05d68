// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"path"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// ParsedFunc represents a Base* function parsed from the input file.
type ParsedFunc struct {
	Name       string      // Function name, e.g. BaseAddOne
	TypeParams []TypeParam // [T, V, K]
	Params     []Param     // Parameters after the token
	Returns    []Param     // Return values
}

// TypeParam represents a generic type parameter.
type TypeParam struct {
	Name       string // T
	Constraint string // simd.Floats
}

// Param represents a function parameter or return value.
type Param struct {
	Name string // parameter name (empty for unnamed returns)
	Type string // type expression as string
}

// ParseResult holds everything the emitter needs from one input file.
type ParseResult struct {
	PackageName string
	SimdName    string // Local name of the simd import
	SimdPath    string // Import path of the simd package
	Funcs       []ParsedFunc
}

// Parse reads a Go source file and collects its Base* functions. src is
// passed to go/parser; when nil the file is read from disk.
//
// Each Base* function must have the shape
//
//	func BaseX[T C, V simd.Vector[T, V], K simd.Token](tok K, ...)
//
// where C is a scalar constraint of the simd package.
func Parse(filename string, src any, simdPath string) (*ParseResult, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("parse file: %w", err)
	}

	result := &ParseResult{
		PackageName: file.Name.Name,
		SimdPath:    simdPath,
	}
	for _, imp := range file.Imports {
		importPath, err := strconv.Unquote(imp.Path.Value)
		if err != nil || importPath != simdPath {
			continue
		}
		result.SimdName = path.Base(importPath)
		if imp.Name != nil {
			result.SimdName = imp.Name.Name
		}
	}
	if result.SimdName == "" {
		return nil, fmt.Errorf("%s does not import %s", filename, simdPath)
	}

	for _, decl := range file.Decls {
		funcDecl, ok := decl.(*ast.FuncDecl)
		if !ok || funcDecl.Recv != nil || !strings.HasPrefix(funcDecl.Name.Name, "Base") {
			continue
		}
		pf, err := parseFunc(funcDecl, result.SimdName)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fset.Position(funcDecl.Pos()), err)
		}
		result.Funcs = append(result.Funcs, pf)
	}
	return result, nil
}

func parseFunc(funcDecl *ast.FuncDecl, simdName string) (ParsedFunc, error) {
	pf := ParsedFunc{Name: funcDecl.Name.Name}

	if funcDecl.Type.TypeParams != nil {
		for _, field := range funcDecl.Type.TypeParams.List {
			for _, name := range field.Names {
				pf.TypeParams = append(pf.TypeParams, TypeParam{
					Name:       name.Name,
					Constraint: exprToString(field.Type),
				})
			}
		}
	}
	if len(pf.TypeParams) != 3 {
		return pf, fmt.Errorf("%s: want type parameters [T, V, K], got %d", pf.Name, len(pf.TypeParams))
	}
	elem, vec, tok := pf.TypeParams[0], pf.TypeParams[1], pf.TypeParams[2]
	if len(GetConcreteTypes(elem.Constraint)) == 0 {
		return pf, fmt.Errorf("%s: no element types satisfy %s", pf.Name, elem.Constraint)
	}
	if want := fmt.Sprintf("%s.Vector[%s, %s]", simdName, elem.Name, vec.Name); vec.Constraint != want {
		return pf, fmt.Errorf("%s: %s must be constrained by %s, got %s", pf.Name, vec.Name, want, vec.Constraint)
	}
	if want := simdName + ".Token"; tok.Constraint != want {
		return pf, fmt.Errorf("%s: %s must be constrained by %s, got %s", pf.Name, tok.Name, want, tok.Constraint)
	}

	params, err := fieldsToParams(funcDecl.Type.Params)
	if err != nil {
		return pf, fmt.Errorf("%s: %w", pf.Name, err)
	}
	if len(params) == 0 || params[0].Type != tok.Name || params[0].Name == "" {
		return pf, fmt.Errorf("%s: first parameter must be the token of type %s", pf.Name, tok.Name)
	}
	pf.Params = params[1:]
	for _, p := range pf.Params {
		if p.Name == "" || p.Name == "_" {
			return pf, fmt.Errorf("%s: parameters must be named", pf.Name)
		}
		if p.Name == tokenParam {
			return pf, fmt.Errorf("%s: parameter name %s is reserved for the token", pf.Name, tokenParam)
		}
	}

	pf.Returns, err = fieldsToParams(funcDecl.Type.Results)
	if err != nil {
		return pf, fmt.Errorf("%s: %w", pf.Name, err)
	}
	if len(pf.Returns) > 1 {
		return pf, fmt.Errorf("%s: at most one return value is supported", pf.Name)
	}

	// Vectors and tokens are level specific; they cannot cross the dispatch boundary.
	for _, p := range slices.Concat(pf.Params, pf.Returns) {
		if mentions(p.Type, vec.Name) || mentions(p.Type, tok.Name) {
			return pf, fmt.Errorf("%s: %s %s mentions %s or %s", pf.Name, p.Name, p.Type, vec.Name, tok.Name)
		}
	}
	return pf, nil
}

func fieldsToParams(fields *ast.FieldList) ([]Param, error) {
	if fields == nil {
		return nil, nil
	}
	var params []Param
	for _, field := range fields.List {
		if _, ok := field.Type.(*ast.Ellipsis); ok {
			return nil, fmt.Errorf("variadic parameters are not supported")
		}
		typeStr := exprToString(field.Type)
		if len(field.Names) == 0 {
			params = append(params, Param{Type: typeStr})
			continue
		}
		for _, name := range field.Names {
			params = append(params, Param{Name: name.Name, Type: typeStr})
		}
	}
	return params, nil
}

// mentions reports whether the identifier name occurs in typeStr.
func mentions(typeStr, name string) bool {
	return identRegexp(name).MatchString(typeStr)
}

func identRegexp(name string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
}

// specializeType replaces the element type parameter in typeStr.
// E.g. "[]T" -> "[]float32".
func specializeType(typeStr string, elem TypeParam, elemType string) string {
	return identRegexp(elem.Name).ReplaceAllLiteralString(typeStr, elemType)
}

// exprToString converts an AST expression to a string representation.
func exprToString(expr ast.Expr) string {
	switch e := expr.(type) {
	case nil:
		return ""
	case *ast.Ident:
		return e.Name
	case *ast.SelectorExpr:
		return exprToString(e.X) + "." + e.Sel.Name
	case *ast.StarExpr:
		return "*" + exprToString(e.X)
	case *ast.ArrayType:
		if e.Len == nil {
			return "[]" + exprToString(e.Elt)
		}
		return "[" + exprToString(e.Len) + "]" + exprToString(e.Elt)
	case *ast.MapType:
		return "map[" + exprToString(e.Key) + "]" + exprToString(e.Value)
	case *ast.IndexExpr:
		return exprToString(e.X) + "[" + exprToString(e.Index) + "]"
	case *ast.IndexListExpr:
		args := make([]string, len(e.Indices))
		for i, idx := range e.Indices {
			args[i] = exprToString(idx)
		}
		return exprToString(e.X) + "[" + strings.Join(args, ", ") + "]"
	case *ast.BasicLit:
		return e.Value
	case *ast.BinaryExpr:
		// Union constraints such as "simd.Floats | simd.Complexes".
		return exprToString(e.X) + " " + e.Op.String() + " " + exprToString(e.Y)
	case *ast.ParenExpr:
		return "(" + exprToString(e.X) + ")"
	case *ast.FuncType:
		params, results := flatten(e.Params), flatten(e.Results)
		s := "func(" + strings.Join(params, ", ") + ")"
		switch len(results) {
		case 0:
		case 1:
			s += " " + results[0]
		default:
			s += " (" + strings.Join(results, ", ") + ")"
		}
		return s
	default:
		return fmt.Sprintf("%T", expr)
	}
}

// flatten returns one type string per field name.
func flatten(fields *ast.FieldList) []string {
	if fields == nil {
		return nil
	}
	var out []string
	for _, field := range fields.List {
		typeStr := exprToString(field.Type)
		for range max(1, len(field.Names)) {
			out = append(out, typeStr)
		}
	}
	return out
}

// GetConcreteTypes returns the element types that satisfy a simd scalar
// constraint. Union constraints like "simd.Floats | simd.Complexes"
// return the types of each member.
func GetConcreteTypes(constraint string) []string {
	var types []string
	add := func(ts ...string) {
		for _, t := range ts {
			if !slices.Contains(types, t) {
				types = append(types, t)
			}
		}
	}
	for _, term := range strings.Split(constraint, "|") {
		term = strings.TrimSpace(term)
		if i := strings.LastIndex(term, "."); i >= 0 {
			term = term[i+1:]
		}
		switch term {
		case "Scalar":
			add("float32", "float64", "complex64", "complex128")
		case "Floats":
			add("float32", "float64")
		case "Complexes":
			add("complex64", "complex128")
		case "float32", "float64", "complex64", "complex128":
			add(term)
		}
	}
	return types
}
