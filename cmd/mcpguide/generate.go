package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skosovsky/mcpguide"
)

var (
	generateType        string
	generateName        string
	generateDescription string
	generateOutput      string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate Go source for a new MCP server",
	Long: `Prints an MCP server scaffold wired for the requested capability subset:
"tool" for tool handlers only, "resource" for resource handlers only, or
"hybrid" for both. The output is a starting point, not a finished program.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateType, "type", "tool", "Server type: tool, resource, or hybrid")
	generateCmd.Flags().StringVar(&generateName, "name", "", "Name of the new server (required)")
	generateCmd.Flags().StringVar(&generateDescription, "description", "", "One-line description of the server")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Write to file instead of stdout")
	_ = generateCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	text, err := mcpguide.GenerateTemplate(mcpguide.ServerType(generateType), generateName, generateDescription)
	if err != nil {
		return err
	}
	if generateOutput != "" {
		if err := os.WriteFile(generateOutput, []byte(text), 0o644); err != nil {
			return fmt.Errorf("write template: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", generateOutput)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
