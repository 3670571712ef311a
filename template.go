package mcpguide

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"
)

// ServerType selects which capability subset a generated server is wired for.
type ServerType string

const (
	ServerTypeTool     ServerType = "tool"
	ServerTypeResource ServerType = "resource"
	ServerTypeHybrid   ServerType = "hybrid"
)

// Valid reports whether t is one of the recognized server types.
func (t ServerType) Valid() bool {
	switch t {
	case ServerTypeTool, ServerTypeResource, ServerTypeHybrid:
		return true
	}
	return false
}

// serverTemplate renders the scaffold for a new MCP server. The output is
// inert source text; it is never compiled or executed by this server.
var serverTemplate = template.Must(template.New("server").Parse(`// Command {{.Name}} is an MCP server: {{.Description}}
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	server := mcp.NewServer(&mcp.Implementation{Name: "{{.Name}}", Version: "0.1.0"}, nil)
{{if .Tools}}
	// Tool handlers: model-invoked operations described by a JSON Schema.
	mcp.AddTool(server, &mcp.Tool{
		Name:        "{{.Name}}_echo",
		Description: "Replace with what this tool does",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input EchoInput) (*mcp.CallToolResult, EchoOutput, error) {
		return nil, EchoOutput{Text: input.Text}, nil
	})
{{end}}{{if .Resources}}
	// Resource handlers: readable content addressed by URI.
	server.AddResource(&mcp.Resource{
		Name:        "{{.Name}}_readme",
		Description: "Replace with what this resource contains",
		MIMEType:    "text/plain",
		URI:         "{{.Name}}://readme",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{URI: req.Params.URI, MIMEType: "text/plain", Text: "Hello from {{.Name}}"},
			},
		}, nil
	})
{{end}}
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		log.Fatalf("{{.Name}}: %v", err)
	}
}
{{if .Tools}}
// EchoInput is the example tool input; field names drive the input schema.
type EchoInput struct {
	Text string
}

// EchoOutput is the example tool output.
type EchoOutput struct {
	Text string
}
{{end}}`))

// templateData feeds serverTemplate.
type templateData struct {
	Name        string
	Description string
	Tools       bool
	Resources   bool
}

// GenerateTemplate produces source text for a new MCP server wired for the
// requested capability subset. Pure string substitution.
func GenerateTemplate(serverType ServerType, name, description string) (string, error) {
	if !serverType.Valid() {
		return "", &ClientError{Reason: fmt.Sprintf("unknown server type %q (expected tool, resource, or hybrid)", serverType)}
	}
	data := templateData{
		Name:        name,
		Description: description,
		Tools:       serverType == ServerTypeTool || serverType == ServerTypeHybrid,
		Resources:   serverType == ServerTypeResource || serverType == ServerTypeHybrid,
	}
	var b strings.Builder
	if err := serverTemplate.Execute(&b, data); err != nil {
		return "", &SystemError{Err: err}
	}
	return b.String(), nil
}

// GenerateArgs is the input shape of the template generation tool.
type GenerateArgs struct {
	ServerType  string `json:"server_type" description:"Capability subset to scaffold" enum:"tool,resource,hybrid"`
	Name        string `json:"name" description:"Name of the new server (used as binary and tool prefix)"`
	Description string `json:"description" description:"One-line description of what the server does"`
}

// Validate rejects arguments the schema cannot express.
func (a GenerateArgs) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return errors.New("name must not be empty")
	}
	return nil
}

// NewTemplateTool builds the template generation tool.
func NewTemplateTool() (Tool, error) {
	return NewTool("generate_mcp_template",
		"Generate Go source for a new MCP server with tool handlers, resource handlers, or both",
		func(_ context.Context, args GenerateArgs) (Result, error) {
			text, err := GenerateTemplate(ServerType(args.ServerType), args.Name, args.Description)
			if err != nil {
				return Result{}, err
			}
			return TextResult(text), nil
		})
}
