//go:generate go run ../cmd/logcoshgen -output z_logcosh_scalar.go logcosh_base.go clogcosh_base.go

package logcosh

import stdmath "math"

// LogCosh computes log(cosh(x)) without overflow or cancellation.
//
// Algorithm: with a = |x|, cosh(x) = e^a * (1 + e^(-2a)) / 2, so
//
//	log(cosh(x)) = a + log1p(e^(-2a)) - ln(2)
//
// e^a is never formed and e^(-2a) only underflows towards 0, where
// log1p(0) = 0 gives the asymptote a - ln(2) exactly. log1p(e^(-2a)) is
// evaluated in float64 and rounded to T once; the outer sum is performed in T.
//
// LogCosh(x) and LogCosh(-x) are identical bit for bit. For tiny |x| the
// rounded log1p term can land one ulp below ln(2) while a is too small to
// register in the sum; such results are clamped to 0.
//
// Special cases:
//   - LogCosh(±0) = T(log1p(1)) - T(ln2) = 0
//   - LogCosh(±Inf) = +Inf
//   - LogCosh(NaN) = NaN
func LogCosh[T Floats](x T) T {
	k := ConstantsOf[T]()
	a := T(stdmath.Abs(float64(x)))
	l := T(stdmath.Log1p(stdmath.Exp(float64(-k.Two * a))))
	r := a + l - k.Ln2
	if r < k.Zero {
		return k.Zero
	}
	return r
}

// ApproxLogCosh computes log(cosh(x)), replacing the transcendental calls
// with closed forms far from the origin and near it:
//
//	|x| > LargeThreshold: |x| - ln(2)
//	|x| < SmallThreshold: x*x / 2
//	otherwise:            LogCosh(x)
//
// Both comparisons are strict, so inputs exactly on a threshold take the
// LogCosh path.
func ApproxLogCosh[T Floats](x T) T {
	k := ConstantsOf[T]()
	a := T(stdmath.Abs(float64(x)))
	switch {
	case a > k.Large:
		return a - k.Ln2
	case a < k.Small:
		return x * x / k.Two
	default:
		return LogCosh(x)
	}
}
