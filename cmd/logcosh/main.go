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

// Command logcosh evaluates log(cosh(x)) from the command line.
//
// Usage:
//
//	logcosh eval [--approx] [--precision 32|64] VALUE...
//	logcosh constants [--precision 32|64]
//	logcosh info
//
// VALUE is a real literal such as -13 or 1e30, or a complex literal such as
// 1+2i. Negative values must follow "--" so they are not read as flags:
//
//	logcosh eval -- -13 -1e30
//
// The default precision is read from LOGCOSH_PRECISION and falls back
// to 64.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
