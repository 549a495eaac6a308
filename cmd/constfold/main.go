// Command constfold loads a declarative class-tree fixture, folds every
// constant-evaluable variable initializer in it, and reports the result.
package main

import (
	"os"

	"github.com/dmforge/constfold/cmd/constfold/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
