package main

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// concreteTypes maps each supported constraint to its element types, in the
// order wrappers are emitted.
var concreteTypes = map[string][]string{
	"Floats":    {"float32", "float64"},
	"Complexes": {"complex64", "complex128"},
}

// ConcreteTypes returns the element types for a constraint, or nil if the
// constraint is not supported.
func ConcreteTypes(constraint string) []string {
	return concreteTypes[constraint]
}

// typeSuffix returns the wrapper suffix for an element type,
// e.g. "float32" -> "Float32".
func typeSuffix(elemType string) string {
	return cases.Title(language.English).String(elemType)
}
