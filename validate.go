package mcpguide

import (
	"context"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// errNoServersMapping is the single diagnostic for a document without a usable
// top-level mapping; per-entry checks are skipped in that case.
const errNoServersMapping = `missing or invalid top-level "mcpServers" mapping`

// ValidateServers checks an MCP configuration document and returns its
// violations in document order. An empty slice means the document is valid.
//
// The document must carry a top-level "mcpServers" object mapping server name
// to an entry. An entry with a "url" member is a remote entry and "url" must
// be a string. Any other entry is a local entry and must carry a "command"
// string and an "args" array; each missing or mistyped member is reported
// separately, so one entry can contribute up to two messages.
//
// The walk runs over the raw JSON bytes (gjson preserves object member order)
// because decoding into a Go map would lose the document's insertion order.
func ValidateServers(config []byte) []string {
	servers := gjson.ParseBytes(config).Get("mcpServers")
	if !servers.Exists() || !servers.IsObject() {
		return []string{errNoServersMapping}
	}

	var errs []string
	servers.ForEach(func(key, entry gjson.Result) bool {
		name := key.String()
		if url := entry.Get("url"); url.Exists() {
			if url.Type != gjson.String {
				errs = append(errs, fmt.Sprintf(`server %q: "url" must be a string`, name))
			}
			return true
		}
		// No "url" member: treated as a local entry, including entries that
		// carry neither shape's members.
		if cmd := entry.Get("command"); !cmd.Exists() || cmd.Type != gjson.String {
			errs = append(errs, fmt.Sprintf(`server %q: missing or invalid "command" (expected string)`, name))
		}
		if args := entry.Get("args"); !args.Exists() || !args.IsArray() {
			errs = append(errs, fmt.Sprintf(`server %q: missing or invalid "args" (expected array)`, name))
		}
		return true
	})
	return errs
}

// validateConfigSchema is hand-written because the "config" argument is a
// free-form JSON document, not a fixed Go struct.
var validateConfigSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"config": map[string]any{
			"type":        "object",
			"description": `MCP configuration document to validate (expects a top-level "mcpServers" object)`,
		},
	},
	"required": []any{"config"},
}

// NewValidateTool builds the configuration validation tool. Invalid documents
// are reported in-band with the error flag set, never as a Go error.
func NewValidateTool() (Tool, error) {
	return NewRawTool("validate_mcp_config",
		"Validate an MCP configuration document (mcpServers mapping with local command/args or remote url entries)",
		validateConfigSchema,
		func(_ context.Context, argsJSON []byte) (Result, error) {
			config := gjson.GetBytes(argsJSON, "config")
			errs := ValidateServers([]byte(config.Raw))
			if len(errs) == 0 {
				return TextResult("Configuration is valid."), nil
			}
			var b strings.Builder
			fmt.Fprintf(&b, "Configuration has %d error(s):\n", len(errs))
			for _, e := range errs {
				b.WriteString("- ")
				b.WriteString(e)
				b.WriteByte('\n')
			}
			return ErrorResult(strings.TrimRight(b.String(), "\n")), nil
		})
}
