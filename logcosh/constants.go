package logcosh

import stdmath "math"

// =============================================================================
// Constants for LogCosh and its approximations
// =============================================================================

// Region boundaries for ApproxLogCosh and ApproxCLogCosh. They are shared by
// both widths.
const (
	// SmallThreshold is the magnitude below which x*x/2 is returned.
	// The discarded Taylor term is x⁴/12, at most 1.4e-8 here.
	SmallThreshold = 2e-2

	// LargeThreshold is the magnitude above which |x| - ln(2) is returned.
	// The discarded term is log1p(exp(-2|x|)), at most 3.4e-4 here.
	LargeThreshold = 4.0
)

// Constants is the per-width bundle used by the real evaluators.
type Constants[T Floats] struct {
	Ln2   T // ln(2) rounded to T
	Small T // SmallThreshold rounded to T
	Large T // LargeThreshold rounded to T
	Two   T
	Zero  T
}

// ConstantsOf returns the constants for T.
//
// Every field is a constant conversion, so once the call is inlined the
// values are literals of the instantiated width.
func ConstantsOf[T Floats]() Constants[T] {
	return Constants[T]{
		Ln2:   T(stdmath.Ln2),
		Small: SmallThreshold,
		Large: LargeThreshold,
		Two:   2,
		Zero:  0,
	}
}

// ComplexConstants is the per-width bundle used by the complex evaluators.
//
// Small and Large are the thresholds rounded to the component width of C and
// widened back to float64, so comparisons against them select the same region
// a comparison in C's own precision would.
type ComplexConstants[C Complexes] struct {
	One   C
	Ln2   C
	Two   C
	Small float64
	Large float64
}

// ComplexConstantsOf returns the constants for C.
func ComplexConstantsOf[C Complexes]() ComplexConstants[C] {
	return ComplexConstants[C]{
		One:   complex(1, 0),
		Ln2:   complex(stdmath.Ln2, 0),
		Two:   complex(2, 0),
		Small: roundTo[C](SmallThreshold),
		Large: roundTo[C](LargeThreshold),
	}
}

// roundTo rounds x to the component precision of C.
func roundTo[C Complexes](x float64) float64 {
	return real(complex128(C(complex(x, 0))))
}
