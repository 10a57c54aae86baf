package main

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// funcNames returns the sorted top-level function names declared in src.
func funcNames(t *testing.T, filename string, src []byte) []string {
	t.Helper()
	file, err := parser.ParseFile(token.NewFileSet(), filename, src, 0)
	require.NoError(t, err)
	var names []string
	for _, decl := range file.Decls {
		if fd, ok := decl.(*ast.FuncDecl); ok {
			names = append(names, fd.Name.Name)
		}
	}
	sort.Strings(names)
	return names
}

// typeCheck parses files as one package and type-checks them.
func typeCheck(t *testing.T, files ...string) {
	t.Helper()
	fset := token.NewFileSet()
	var parsed []*ast.File
	for _, f := range files {
		file, err := parser.ParseFile(fset, f, nil, 0)
		require.NoError(t, err)
		parsed = append(parsed, file)
	}
	conf := types.Config{Importer: importer.Default()}
	_, err := conf.Check(parsed[0].Name.Name, fset, parsed, nil)
	require.NoError(t, err)
}

func TestConcreteTypes(t *testing.T) {
	tests := []struct {
		constraint string
		want       []string
	}{
		{"Floats", []string{"float32", "float64"}},
		{"Complexes", []string{"complex64", "complex128"}},
		{"Integers", nil},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			assert.Equal(t, tt.want, ConcreteTypes(tt.constraint))
		})
	}
}

func TestTypeSuffix(t *testing.T) {
	tests := map[string]string{
		"float32":    "Float32",
		"float64":    "Float64",
		"complex64":  "Complex64",
		"complex128": "Complex128",
	}
	for in, want := range tests {
		assert.Equal(t, want, typeSuffix(in), in)
	}
}

func TestParseSelectsEligibleFunctions(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "funcs.go", `package sample

type Floats interface{ ~float32 | ~float64 }
type Complexes interface{ ~complex64 | ~complex128 }

func Square[T Floats](x T) T { return x * x }

func Hypot[T Floats](a, b T) T { return a*a + b*b }

func Conj[C Complexes](z C) C { return z }

func unexported[T Floats](x T) T { return x }

func Plain(x float64) float64 { return x }

func Mixed[T Floats](x T, n int) T { return x }

func NoResult[T Floats](x T) {}

func Other[T any](x T) T { return x }

type S struct{}

func (S) Method(x float64) float64 { return x }
`)

	result, err := Parse([]string{input})
	require.NoError(t, err)
	assert.Equal(t, "sample", result.PackageName)

	require.Len(t, result.Funcs, 3)
	assert.Equal(t, ParsedFunc{
		Name:      "Square",
		File:      input,
		TypeParam: TypeParam{Name: "T", Constraint: "Floats"},
		Params:    []string{"x"},
	}, result.Funcs[0])
	assert.Equal(t, []string{"a", "b"}, result.Funcs[1].Params)
	assert.Equal(t, "Complexes", result.Funcs[2].TypeParam.Constraint)
}

func TestParseErrors(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.go", "package a\n\ntype Floats interface{ ~float32 | ~float64 }\n\nfunc F[T Floats](x T) T { return x }\n")
	b := writeFile(t, dir, "b.go", "package b\n\ntype Floats interface{ ~float32 | ~float64 }\n\nfunc G[T Floats](x T) T { return x }\n")
	dup := writeFile(t, dir, "dup.go", "package a\n\nfunc F[T Floats](y T) T { return y }\n")
	none := writeFile(t, dir, "none.go", "package a\n\nfunc H(x float64) float64 { return x }\n")
	bad := writeFile(t, dir, "bad.go", "package a\n\nfunc {\n")

	tests := []struct {
		name   string
		inputs []string
		errMsg string
	}{
		{"no inputs", nil, "no input files"},
		{"different packages", []string{a, b}, "different packages"},
		{"duplicate", []string{a, dup}, "duplicate functions"},
		{"nothing eligible", []string{none}, "no generic"},
		{"syntax error", []string{bad}, "parse file"},
		{"missing file", []string{filepath.Join(dir, "missing.go")}, "parse file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.inputs)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestEmit(t *testing.T) {
	result := &ParseResult{
		PackageName: "sample",
		Funcs: []ParsedFunc{
			{Name: "Square", TypeParam: TypeParam{Name: "T", Constraint: "Floats"}, Params: []string{"x"}},
			{Name: "Mul", TypeParam: TypeParam{Name: "C", Constraint: "Complexes"}, Params: []string{"a", "b"}},
		},
	}

	src, n, err := Emit(result, "z_sample.go", []string{"sample_base.go"})
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	want := `// Code generated by logcoshgen from sample_base.go. DO NOT EDIT.

package sample

// SquareFloat32 is Square specialized for float32.
func SquareFloat32(x float32) float32 {
	return Square[float32](x)
}

// SquareFloat64 is Square specialized for float64.
func SquareFloat64(x float64) float64 {
	return Square[float64](x)
}

// MulComplex64 is Mul specialized for complex64.
func MulComplex64(a, b complex64) complex64 {
	return Mul[complex64](a, b)
}

// MulComplex128 is Mul specialized for complex128.
func MulComplex128(a, b complex128) complex128 {
	return Mul[complex128](a, b)
}
`
	if diff := cmp.Diff(want, string(src)); diff != "" {
		t.Errorf("Emit() mismatch (-want +got):\n%s", diff)
	}
}

func TestGeneratorRun(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "sample_base.go", `package sample

type Floats interface{ ~float32 | ~float64 }

// Twice doubles x.
func Twice[T Floats](x T) T { return x + x }
`)
	output := filepath.Join(dir, "z_sample.go")

	gen := &Generator{Inputs: []string{input}, Output: output}
	n, err := gen.Run()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	src, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(src), "from sample_base.go. DO NOT EDIT.")
	assert.Contains(t, string(src), "package sample\n")
	assert.Equal(t, []string{"TwiceFloat32", "TwiceFloat64"}, funcNames(t, output, src))

	// The wrappers must compile alongside the generic functions they call.
	typeCheck(t, input, output)
}

// TestCommittedWrappersUpToDate regenerates the wrappers of package logcosh
// and checks that the committed file matches byte for byte.
func TestCommittedWrappersUpToDate(t *testing.T) {
	pkgDir := filepath.Join("..", "..", "logcosh")
	inputs := []string{
		filepath.Join(pkgDir, "logcosh_base.go"),
		filepath.Join(pkgDir, "clogcosh_base.go"),
	}

	result, err := Parse(inputs)
	require.NoError(t, err)
	src, n, err := Emit(result, "z_logcosh_scalar.go", []string{"logcosh_base.go", "clogcosh_base.go"})
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	committedPath := filepath.Join(pkgDir, "z_logcosh_scalar.go")
	committed, err := os.ReadFile(committedPath)
	require.NoError(t, err)

	if diff := cmp.Diff(string(committed), string(src)); diff != "" {
		t.Errorf("z_logcosh_scalar.go is stale, run go generate (-committed +generated):\n%s", diff)
	}
}
