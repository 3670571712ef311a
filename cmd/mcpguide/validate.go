package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skosovsky/mcpguide"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate an MCP configuration file",
	Long: `Reads a JSON configuration file (e.g. .mcp.json) and checks its
"mcpServers" mapping. Prints one line per violation, in document order.
Exits non-zero when the configuration is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	errs := mcpguide.ValidateServers(data)
	if len(errs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Configuration is valid.")
		return nil
	}
	for _, e := range errs {
		fmt.Fprintln(cmd.OutOrStdout(), "- "+e)
	}
	return fmt.Errorf("configuration has %d error(s)", len(errs))
}
