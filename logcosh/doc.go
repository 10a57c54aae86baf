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

// Package logcosh computes log(cosh(x)) for real and complex inputs without
// overflow for large |x| and without cancellation for small |x|.
//
// Evaluating math.Log(math.Cosh(x)) directly returns +Inf once cosh(x)
// overflows (|x| above about 710 in float64, 89 in float32) and loses all
// relative precision near zero, where the result is about x²/2 but is formed
// as log(1 + tiny).
//
// # Entry Points
//
// Generic over the supported widths:
//   - LogCosh[T Floats](x T) T - exact, overflow-safe
//   - ApproxLogCosh[T Floats](x T) T - three-region approximation
//   - CLogCosh[C Complexes](z C) C - exact, principal branch
//   - ApproxCLogCosh[C Complexes](z C) C - three-region approximation
//
// Per width (generated by cmd/logcoshgen, no runtime dispatch):
//   - LogCoshFloat32, LogCoshFloat64
//   - ApproxLogCoshFloat32, ApproxLogCoshFloat64
//   - CLogCoshComplex64, CLogCoshComplex128
//   - ApproxCLogCoshComplex64, ApproxCLogCoshComplex128
//
// # Approximation Regions
//
// The Approx functions return |x| - ln(2) above LargeThreshold and x²/2 below
// SmallThreshold, skipping exp and log1p entirely. Between the thresholds
// they call the exact evaluator, so they agree with it bit for bit there.
// The discarded terms are bounded by log1p(e^-8) ≈ 3.4e-4 in the asymptotic
// region and x⁴/12 ≤ 1.4e-8 in the Taylor region; callers that need full
// float64 accuracy everywhere should use the exact functions.
//
// # Accuracy and Special Values
//
// No function returns an error or panics. NaN and ±Inf propagate through
// the usual IEEE-754 rules: LogCosh(±Inf) = +Inf, LogCosh(NaN) = NaN.
//
// LogCosh never returns a negative value; results that round below zero for
// tiny |x| are clamped to 0. It grows with |x| up to rounding: near zero the
// result is formed by cancelling a + log1p(e^(-2a)) against ln(2), so
// neighbouring inputs a few ulps apart can come out one ulp out of order
// (observed in float64 on [0, 2e-4]). Use ApproxLogCosh, which returns x²/2
// there, when strict monotonicity near the origin matters.
//
// All functions are pure and allocation-free, and are safe for concurrent use.
package logcosh
