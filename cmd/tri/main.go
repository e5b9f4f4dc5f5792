// This file is part of tri.
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

// tri translates a DSL source file into a flat binary image, out.bin,
// by running the source loader, the lowerer, and the assembler's two
// passes in sequence.
//
// Usage: tri input.tri
package main

import (
	"fmt"
	"os"

	"github.com/Virus10642/Tri-DSL/asmgen"
	"github.com/Virus10642/Tri-DSL/lower"
	"github.com/Virus10642/Tri-DSL/source"
)

const outFile = "out.bin"

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: tri input.tri\n")
		os.Exit(1)
	}

	src, err := source.Load(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	lowered, err := lower.Lower(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	prog, err := asmgen.Size(src, lowered)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if err := prog.Emit(outFile); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
