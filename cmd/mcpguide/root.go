package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "mcpguide",
	Short: "MCP server that teaches the Model Context Protocol",
	Long: `mcpguide exposes three tools over MCP stdio transport: documentation
lookup, configuration validation, and server-template generation.

The same capabilities are available directly from the command line for use
outside an MCP client.`,
	Example: `  mcpguide serve                              # Run the MCP server on stdio
  mcpguide validate .mcp.json                 # Validate a config file
  mcpguide generate --type hybrid --name app  # Print a server template
  mcpguide docs server_setup                  # Print a docs topic`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Hide the auto-generated completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
}
