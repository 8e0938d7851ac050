// warequote CLI entrypoint
package main

import (
	"os"

	"warequote/cmd/cli/cmd"
	"warequote/internal/logging"
)

func main() {
	defer logging.Sync()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
