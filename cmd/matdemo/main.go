// SPDX-License-Identifier: MIT

// Command matdemo prints a small worked example of matrix arithmetic.
package main

import (
	"os"

	"github.com/katalvlaran/linalg/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
