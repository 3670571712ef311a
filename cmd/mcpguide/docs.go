package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skosovsky/mcpguide"
)

var docsCmd = &cobra.Command{
	Use:   "docs [topic]",
	Short: "Print an MCP documentation topic",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDocs,
}

func init() {
	rootCmd.AddCommand(docsCmd)
}

func runDocs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Available topics:")
		for _, topic := range mcpguide.Topics() {
			fmt.Fprintln(cmd.OutOrStdout(), "  "+string(topic))
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), mcpguide.Lookup(mcpguide.Topic(args[0])))
	return nil
}
