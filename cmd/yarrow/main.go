// cmd/yarrow/main.go
//
// Entry point for the yarrow CLI. All wiring lives in internal/cli; this
// just executes the command tree and maps failure to exit code 1.

package main

import (
	"fmt"
	"os"

	"github.com/kingrea/yarrow/internal/cli"
)

// version is stamped by the release build via -ldflags.
var version = "dev"

func main() {
	if err := cli.NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "yarrow: %v\n", err)
		os.Exit(1)
	}
}
