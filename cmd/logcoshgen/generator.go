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
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/tools/imports"
)

// Generator specializes the generic functions of Inputs into Output. The
// wrappers call the generic functions unqualified, so Output belongs to the
// package of the inputs.
type Generator struct {
	Inputs []string // Input Go source files
	Output string   // Output Go file
}

// Run parses the inputs, emits the wrappers and writes the output file. It
// returns the number of wrappers written.
func (g *Generator) Run() (int, error) {
	result, err := Parse(g.Inputs)
	if err != nil {
		return 0, err
	}

	src, n, err := Emit(result, g.Output, g.sources())
	if err != nil {
		return 0, err
	}

	if err := os.WriteFile(g.Output, src, 0644); err != nil {
		return 0, fmt.Errorf("write output: %w", err)
	}
	return n, nil
}

// sources returns the input file names as they appear in the header.
func (g *Generator) sources() []string {
	return lo.Map(g.Inputs, func(in string, _ int) string { return filepath.Base(in) })
}

// Emit renders the wrapper file for result and formats it. filename is only
// used for error messages. It returns the source and the number of wrappers.
func Emit(result *ParseResult, filename string, sources []string) ([]byte, int, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by logcoshgen from %s. DO NOT EDIT.\n\n", strings.Join(sources, ", "))
	fmt.Fprintf(&buf, "package %s\n", result.PackageName)

	n := 0
	for _, pf := range result.Funcs {
		params := strings.Join(pf.Params, ", ")
		for _, elemType := range ConcreteTypes(pf.TypeParam.Constraint) {
			name := pf.Name + typeSuffix(elemType)
			fmt.Fprintf(&buf, "\n// %s is %s specialized for %s.\n", name, pf.Name, elemType)
			fmt.Fprintf(&buf, "func %s(%s %s) %s {\n", name, params, elemType, elemType)
			fmt.Fprintf(&buf, "\treturn %s[%s](%s)\n}\n", pf.Name, elemType, params)
			n++
		}
	}

	formatted, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("format output: %w", err)
	}
	return formatted, n, nil
}
