package logcosh

import (
	stdmath "math"
	"math/cmplx"
)

// CLogCosh computes the principal log(cosh(z)) for complex z.
//
// Algorithm: z is first reflected into the half-plane Re(s) >= 0 using the
// sign of its real part (s = z when Re(z) == 0), then
//
//	log(cosh(z)) = s + log(1 + e^(-2s)) - ln(2)
//
// so |e^(-2s)| <= 1 and nothing overflows. log(1 + e^(-2s)) is evaluated in
// complex128 and rounded to C once; the outer sum is performed in C.
//
// For real z this reduces to LogCosh. No continuity is promised across
// Re(z) = 0 beyond that of the principal logarithm.
func CLogCosh[C Complexes](z C) C {
	k := ComplexConstantsOf[C]()
	s := normalize(z)
	p := cmplx.Exp(complex128(-k.Two * s))
	return s + C(cmplx.Log(complex128(k.One)+p)) - k.Ln2
}

// ApproxCLogCosh is the complex counterpart of ApproxLogCosh:
//
//	|Re(z)| > LargeThreshold: s - ln(2), s normalized as in CLogCosh
//	|z| < SmallThreshold:     z*z / 2
//	otherwise:                CLogCosh(z)
//
// The asymptotic form only depends on how fast e^(-2s) decays, hence the
// real-part test; the Taylor form depends on the full modulus.
func ApproxCLogCosh[C Complexes](z C) C {
	k := ComplexConstantsOf[C]()
	w := complex128(z)
	switch {
	case stdmath.Abs(real(w)) > k.Large:
		return normalize(z) - k.Ln2
	case roundTo[C](cmplx.Abs(w)) < k.Small:
		return z * z / k.Two
	default:
		return CLogCosh(z)
	}
}

// normalize returns z * sign(Re(z)), or z itself when Re(z) is zero or NaN.
func normalize[C Complexes](z C) C {
	if real(complex128(z)) < 0 {
		return -z
	}
	return z
}
