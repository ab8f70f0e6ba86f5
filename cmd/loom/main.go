package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loomgen/loom/cmd/loom/commands"
	"github.com/loomgen/loom/logger"
)

var rootCmd = &cobra.Command{
	Use:   "loom",
	Short: "Loom - annotation-driven source generation",
	Long: `Loom - annotation-driven source-to-source generation.

Loom reads declarations and their annotations from unit description files,
reconstructs typed option values from the annotation constants, and renders
companion source files next to the originals.

Available commands:
  generate - Run configured generators over the unit files
  watch    - Regenerate on unit file changes
  version  - Show version information

Examples:
  loom generate                  # Generate using loom.toml in the cwd
  loom generate -o build/gen     # Override the output root
  loom watch                     # Keep regenerating as units change`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize global logger before any command runs
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit log output as JSON")

	// Commands
	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
