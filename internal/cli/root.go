// Package cli provides the swagdoc command-line interface.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"pkt.systems/pslog"
)

// Execute creates and runs the root command.
func Execute() error {
	rootCmd := &cobra.Command{
		Use:   "swagdoc",
		Short: "Generate and serve Swagger documents from source comments",
		Long: `swagdoc scans source files for documentation blocks declared with
@swaggerDefinition and @swaggerPath tags, merges them into a single
Swagger 2.0 document, and writes or serves the result.`,
	}

	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newServeCommand())

	return rootCmd.Execute()
}

func newLogger(debug bool) pslog.Logger {
	logger := pslog.NewStructured(os.Stderr)
	if debug {
		logger = logger.LogLevel(pslog.DebugLevel)
	}
	return logger
}
