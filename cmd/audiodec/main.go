// SPDX-License-Identifier: EPL-2.0

package main

import (
	"os"

	"github.com/ik5/audiodec/internal/cli"
)

func main() {
	if err := cli.NewRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
