// Command jsonschema-validate compiles a JSON Schema document and validates
// instances against it from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/dazerdude/json-everything/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
