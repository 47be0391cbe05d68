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
	"bytes"
	"fmt"
	"path"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// tokenParam names the token parameter of the generated For functions.
const tokenParam = "tok"

var titleCaser = cases.Title(language.Und, cases.NoLower)

// EmitOptions controls dispatcher emission.
type EmitOptions struct {
	Filename string   // Output file name, used in formatting errors
	Targets  []Target // Best first; must include the generic target
	Width    int      // Vector width, 0 for the native width of each target
}

// EmitDispatcher generates the dispatch file for all functions of result.
//
// For BaseAddOne[T simd.Floats, ...] it emits, per element type, one
// specialization per target, a simd.Multiversion table and the typed
// entry points AddOneFloat32 and AddOneFloat32For, then the generic entry
// points AddOne and AddOneFor.
func EmitDispatcher(result *ParseResult, opts EmitOptions) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by simdgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", result.PackageName)
	if result.SimdName == path.Base(result.SimdPath) {
		fmt.Fprintf(&buf, "import %q\n\n", result.SimdPath)
	} else {
		fmt.Fprintf(&buf, "import %s %q\n\n", result.SimdName, result.SimdPath)
	}

	for _, pf := range result.Funcs {
		elemTypes := GetConcreteTypes(pf.TypeParams[0].Constraint)
		for _, elemType := range elemTypes {
			if err := emitTypedDispatcher(&buf, result.SimdName, pf, elemType, opts); err != nil {
				return nil, fmt.Errorf("%s[%s]: %w", pf.Name, elemType, err)
			}
		}
		emitGenericDispatcher(&buf, result.SimdName, pf, elemTypes, false)
		emitGenericDispatcher(&buf, result.SimdName, pf, elemTypes, true)
	}

	formatted, err := imports.Process(opts.Filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return formatted, nil
}

// emitTypedDispatcher emits the specializations, table and typed entry
// points of pf for one element type.
//
//	func addOneFloat32AVX(x []float32) {
//		BaseAddOne[float32, simd.AVXF32x8](simd.NewUnchecked[simd.AVX](), x)
//	}
//
//	var addOneFloat32Dispatch = simd.NewMultiversion("AddOneFloat32",
//		simd.Version[func(x []float32)]{Level: simd.LevelAVX, Fn: addOneFloat32AVX},
//		...
//	)
//
//	func AddOneFloat32(x []float32) {
//		addOneFloat32Dispatch.Resolve()(x)
//	}
func emitTypedDispatcher(buf *bytes.Buffer, simdName string, pf ParsedFunc, elemType string, opts EmitOptions) error {
	dispatchName := buildDispatchFuncName(pf.Name, elemType)
	tableName := unexport(dispatchName) + "Dispatch"
	sig := buildFuncSignature(pf, elemType)
	args := buildCallArgs(pf)
	ret := ""
	if len(pf.Returns) > 0 {
		ret = "return "
	}

	for _, target := range opts.Targets {
		vecType, err := target.VectorType(elemType, opts.Width)
		if err != nil {
			return err
		}
		fmt.Fprintf(buf, "func %s%s%s {\n", unexport(dispatchName), target.Token, sig)
		fmt.Fprintf(buf, "\t%s%s[%s, %s.%s](%s.NewUnchecked[%s.%s]()", ret, pf.Name, elemType, simdName, vecType, simdName, simdName, target.Token)
		if args != "" {
			fmt.Fprintf(buf, ", %s", args)
		}
		fmt.Fprintf(buf, ")\n}\n\n")
	}

	fmt.Fprintf(buf, "var %s = %s.NewMultiversion(%q,\n", tableName, simdName, dispatchName)
	for _, target := range opts.Targets {
		fmt.Fprintf(buf, "\t%s.Version[func%s]{Level: %s.%s, Fn: %s%s},\n", simdName, sig, simdName, target.Level, unexport(dispatchName), target.Token)
	}
	fmt.Fprintf(buf, ")\n\n")

	fmt.Fprintf(buf, "// %s calls %s on %s vectors of the best level this machine supports.\n", dispatchName, pf.Name, elemType)
	fmt.Fprintf(buf, "func %s%s {\n", dispatchName, sig)
	fmt.Fprintf(buf, "\t%s%s.Resolve()(%s)\n}\n\n", ret, tableName, args)

	fmt.Fprintf(buf, "// %sFor calls %s on %s vectors of the level of %s, without detection.\n", dispatchName, pf.Name, elemType, tokenParam)
	fmt.Fprintf(buf, "// Code already running in a specialized function calls %s directly instead.\n", pf.Name)
	fmt.Fprintf(buf, "func %sFor%s {\n", dispatchName, withToken(simdName, sig))
	fmt.Fprintf(buf, "\t%s%s.Static(%s)(%s)\n}\n\n", ret, tableName, tokenParam, args)
	return nil
}

// emitGenericDispatcher emits the generic entry point of pf, or its For
// variant taking a token. The type switch on the first slice parameter
// forwards to the typed entry points:
//
//	func AddOne[T simd.Floats](x []T) {
//		switch any(x).(type) {
//		case []float32:
//			AddOneFloat32(any(x).([]float32))
//		case []float64:
//			AddOneFloat64(any(x).([]float64))
//		}
//	}
func emitGenericDispatcher(buf *bytes.Buffer, simdName string, pf ParsedFunc, elemTypes []string, withTok bool) {
	elem := pf.TypeParams[0]
	genericName := buildGenericFuncName(pf.Name)
	suffix := ""
	if withTok {
		suffix = "For"
	}

	sig := buildFuncSignature(pf, elem.Name)
	if withTok {
		sig = withToken(simdName, sig)
		fmt.Fprintf(buf, "// %sFor is like %s but uses the level of %s instead of detecting one.\n", genericName, genericName, tokenParam)
	} else {
		fmt.Fprintf(buf, "// %s is the generic API that dispatches to the appropriate SIMD implementation.\n", genericName)
	}
	fmt.Fprintf(buf, "func %s%s[%s %s]%s {\n", genericName, suffix, elem.Name, elem.Constraint, sig)

	// Switch on the first slice parameter, then the first scalar one.
	switchParam, caseFmt := "", "%s"
	for _, p := range pf.Params {
		if p.Type == "[]"+elem.Name {
			switchParam, caseFmt = p.Name, "[]%s"
			break
		}
	}
	if switchParam == "" {
		for _, p := range pf.Params {
			if p.Type == elem.Name {
				switchParam = p.Name
				break
			}
		}
	}
	if switchParam == "" {
		fmt.Fprintf(buf, "\tvar zero %s\n", elem.Name)
		switchParam = "zero"
	}

	fmt.Fprintf(buf, "\tswitch any(%s).(type) {\n", switchParam)
	for _, elemType := range elemTypes {
		fmt.Fprintf(buf, "\tcase "+caseFmt+":\n", elemType)

		var args []string
		if withTok {
			args = append(args, tokenParam)
		}
		for _, p := range pf.Params {
			if mentions(p.Type, elem.Name) {
				args = append(args, fmt.Sprintf("any(%s).(%s)", p.Name, specializeType(p.Type, elem, elemType)))
			} else {
				args = append(args, p.Name)
			}
		}
		call := fmt.Sprintf("%s%s(%s)", buildDispatchFuncName(pf.Name, elemType), suffix, strings.Join(args, ", "))

		switch {
		case len(pf.Returns) == 0:
			fmt.Fprintf(buf, "\t\t%s\n", call)
		case mentions(pf.Returns[0].Type, elem.Name):
			fmt.Fprintf(buf, "\t\treturn any(%s).(%s)\n", call, pf.Returns[0].Type)
		default:
			fmt.Fprintf(buf, "\t\treturn %s\n", call)
		}
	}
	fmt.Fprintf(buf, "\t}\n")
	if len(pf.Returns) > 0 {
		fmt.Fprintf(buf, "\tpanic(\"unreachable\")\n")
	}
	fmt.Fprintf(buf, "}\n\n")
}

// buildDispatchFuncName creates the public function name for the dispatcher.
// BaseAddOne[float32] -> AddOneFloat32
func buildDispatchFuncName(baseName, elemType string) string {
	return buildGenericFuncName(baseName) + titleCaser.String(elemType)
}

// buildGenericFuncName creates the generic function name (without type suffix).
// BaseAddOne -> AddOne
func buildGenericFuncName(baseName string) string {
	return strings.TrimPrefix(baseName, "Base")
}

// buildFuncSignature builds the parameter and result list of pf with its
// element type parameter replaced by elemType, e.g. "(x []float32) float32".
func buildFuncSignature(pf ParsedFunc, elemType string) string {
	var sb strings.Builder
	sb.WriteString("(")
	for i, p := range pf.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Name + " " + specializeType(p.Type, pf.TypeParams[0], elemType))
	}
	sb.WriteString(")")

	if len(pf.Returns) == 1 {
		r := pf.Returns[0]
		sb.WriteString(" ")
		if r.Name != "" {
			sb.WriteString("(" + r.Name + " ")
		}
		sb.WriteString(specializeType(r.Type, pf.TypeParams[0], elemType))
		if r.Name != "" {
			sb.WriteString(")")
		}
	}
	return sb.String()
}

// withToken prepends the token parameter to a signature.
func withToken(simdName, sig string) string {
	params := tokenParam + " " + simdName + ".Token"
	if strings.HasPrefix(sig, "()") {
		return "(" + params + sig[1:]
	}
	return "(" + params + ", " + sig[1:]
}

// buildCallArgs returns the parameter names of pf joined for a call.
func buildCallArgs(pf ParsedFunc) string {
	names := make([]string, len(pf.Params))
	for i, p := range pf.Params {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}

// unexport lower-cases the leading capitals of an identifier, keeping the
// last one of an initialism that starts a new word: "AddOne" -> "addOne",
// "FIR" -> "fir", "FIRFloat32" -> "firFloat32", "IIRFilter" -> "iirFilter".
func unexport(name string) string {
	r := []rune(name)
	n := 0
	for n < len(r) && unicode.IsUpper(r[n]) {
		n++
	}
	if n > 1 && n < len(r) && unicode.IsLower(r[n]) {
		n--
	}
	for i := range n {
		r[i] = unicode.ToLower(r[i])
	}
	return string(r)
}
