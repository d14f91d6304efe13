// Command cogitate is the entry point for the Cogitate CLI and MCP server.
package main

import (
	"os"

	"github.com/cogitate-labs/cogitate-cli/internal/adapters/driving/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
