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

	"github.com/samber/lo"
)

// ParsedFunc is a generic function eligible for specialization.
type ParsedFunc struct {
	Name      string    // Function name
	File      string    // Source file
	TypeParam TypeParam // The single type parameter
	Params    []string  // Parameter names, in order
}

// TypeParam represents a generic type parameter.
type TypeParam struct {
	Name       string // T
	Constraint string // Floats
}

// ParseResult contains the eligible functions of all input files.
type ParseResult struct {
	PackageName string
	Funcs       []ParsedFunc
}

// Parse parses the input files, which must belong to one package, and
// collects the functions that can be specialized.
func Parse(filenames []string) (*ParseResult, error) {
	if len(filenames) == 0 {
		return nil, fmt.Errorf("no input files")
	}

	fset := token.NewFileSet()
	result := &ParseResult{}
	var pkgNames []string

	for _, filename := range filenames {
		file, err := parser.ParseFile(fset, filename, nil, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parse file: %w", err)
		}
		pkgNames = append(pkgNames, file.Name.Name)

		for _, decl := range file.Decls {
			funcDecl, ok := decl.(*ast.FuncDecl)
			if !ok {
				continue
			}
			if pf, ok := parseFunc(funcDecl); ok {
				pf.File = filename
				result.Funcs = append(result.Funcs, pf)
			}
		}
	}

	if pkgs := lo.Uniq(pkgNames); len(pkgs) != 1 {
		return nil, fmt.Errorf("input files belong to different packages: %v", pkgs)
	}
	result.PackageName = pkgNames[0]

	names := lo.Map(result.Funcs, func(pf ParsedFunc, _ int) string { return pf.Name })
	if dups := lo.FindDuplicates(names); len(dups) > 0 {
		return nil, fmt.Errorf("duplicate functions: %v", dups)
	}
	if len(result.Funcs) == 0 {
		return nil, fmt.Errorf("no generic Floats or Complexes functions found")
	}

	return result, nil
}

// parseFunc reports whether funcDecl is an exported, non-method function of
// the form F[T C](a, b T) T with C a known constraint.
func parseFunc(funcDecl *ast.FuncDecl) (ParsedFunc, bool) {
	if funcDecl.Recv != nil || !funcDecl.Name.IsExported() {
		return ParsedFunc{}, false
	}

	typeParams := funcDecl.Type.TypeParams
	if typeParams == nil || len(typeParams.List) != 1 || len(typeParams.List[0].Names) != 1 {
		return ParsedFunc{}, false
	}
	constraint, ok := typeParams.List[0].Type.(*ast.Ident)
	if !ok || len(ConcreteTypes(constraint.Name)) == 0 {
		return ParsedFunc{}, false
	}
	tp := TypeParam{
		Name:       typeParams.List[0].Names[0].Name,
		Constraint: constraint.Name,
	}

	var params []string
	for _, field := range funcDecl.Type.Params.List {
		if !isIdent(field.Type, tp.Name) || len(field.Names) == 0 {
			return ParsedFunc{}, false
		}
		for _, name := range field.Names {
			if name.Name == "_" {
				return ParsedFunc{}, false
			}
			params = append(params, name.Name)
		}
	}
	if len(params) == 0 {
		return ParsedFunc{}, false
	}

	results := funcDecl.Type.Results
	if results == nil || len(results.List) != 1 || len(results.List[0].Names) > 1 {
		return ParsedFunc{}, false
	}
	if !isIdent(results.List[0].Type, tp.Name) {
		return ParsedFunc{}, false
	}

	return ParsedFunc{
		Name:      funcDecl.Name.Name,
		TypeParam: tp,
		Params:    params,
	}, true
}

func isIdent(expr ast.Expr, name string) bool {
	ident, ok := expr.(*ast.Ident)
	return ok && ident.Name == name
}
