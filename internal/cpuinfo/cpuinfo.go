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

// Package cpuinfo reports the floating-point features of the running CPU.
//
// The logcosh functions are scalar and use only math and math/cmplx, so
// these features never change which code path runs. They are reported
// because fused multiply-add can change the last bit of a result when the
// compiler contracts x*y+z, which matters when comparing outputs across
// machines.
package cpuinfo

import (
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sys/cpu"
)

// Feature is a single CPU capability as seen by golang.org/x/sys/cpu.
type Feature struct {
	Name    string
	Present bool
	Note    string
}

// Features returns the floating-point related features for runtime.GOARCH.
// Architectures without a table return nil.
func Features() []Feature {
	switch runtime.GOARCH {
	case "arm64":
		return arm64Features()
	case "amd64":
		return amd64Features()
	}
	return nil
}

func arm64Features() []Feature {
	return []Feature{
		{"FP", cpu.ARM64.HasFP, "Floating point, fused multiply-add"},
		{"ASIMD", cpu.ARM64.HasASIMD, "NEON baseline"},
		{"FPHP", cpu.ARM64.HasFPHP, "FP16 scalar, ARMv8.2-A"},
		{"ASIMDHP", cpu.ARM64.HasASIMDHP, "FP16 NEON, ARMv8.2-A"},
		{"ASIMDFHM", cpu.ARM64.HasASIMDFHM, "FP16 FMA, ARMv8.4-A"},
		{"SVE", cpu.ARM64.HasSVE, "Scalable Vector Extension"},
		{"SVE2", cpu.ARM64.HasSVE2, ""},
	}
}

func amd64Features() []Feature {
	return []Feature{
		{"SSE2", cpu.X86.HasSSE2, "amd64 baseline"},
		{"SSE41", cpu.X86.HasSSE41, "ROUNDSD, used by math.Floor"},
		{"FMA", cpu.X86.HasFMA, "Fused multiply-add"},
		{"AVX", cpu.X86.HasAVX, ""},
		{"AVX2", cpu.X86.HasAVX2, ""},
		{"AVX512F", cpu.X86.HasAVX512F, ""},
	}
}

// HasFMA reports whether the CPU executes fused multiply-add in hardware.
// On arm64 FMA is part of the base FP unit.
func HasFMA() bool {
	switch runtime.GOARCH {
	case "arm64":
		return cpu.ARM64.HasFP
	case "amd64":
		return cpu.X86.HasFMA
	}
	return false
}

// Write prints the platform line and the feature table to w.
func Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "GOOS: %s\nGOARCH: %s\nNumCPU: %d\n", runtime.GOOS, runtime.GOARCH, runtime.NumCPU()); err != nil {
		return err
	}

	features := Features()
	if len(features) == 0 {
		_, err := fmt.Fprintf(w, "\nno feature table for %s\n", runtime.GOARCH)
		return err
	}

	if _, err := fmt.Fprintf(w, "\n=== golang.org/x/sys/cpu (%s) ===\n", runtime.GOARCH); err != nil {
		return err
	}
	for _, f := range features {
		line := fmt.Sprintf("  Has%-9s %v", f.Name+":", f.Present)
		if f.Note != "" {
			line += " (" + f.Note + ")"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\nHardware FMA: %v\n", HasFMA())
	return err
}
