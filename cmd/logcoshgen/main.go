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

// Command logcoshgen writes per-width wrappers for the generic entry points
// of a package.
//
// Usage:
//
//	logcoshgen -output z_logcosh_scalar.go logcosh_base.go clogcosh_base.go
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/logcoshgen -output z_logcosh_scalar.go logcosh_base.go clogcosh_base.go
//
// Every exported generic function with a single type parameter constrained
// by Floats or Complexes, whose parameters and result all have that type,
// gets one wrapper per concrete type: LogCosh[T Floats] yields LogCoshFloat32
// and LogCoshFloat64.
package main

import (
	"flag"
	"fmt"
	"os"
)

var outputFile = flag.String("output", "", "Output Go file, written into the package of the inputs (required)")

func main() {
	flag.Parse()

	if *outputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: -output flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}
	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: at least one input file is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		Inputs: flag.Args(),
		Output: *outputFile,
	}
	n, err := gen.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %d wrappers in %s\n", n, *outputFile)
}
