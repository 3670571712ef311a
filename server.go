package mcpguide

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "mcpguide"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

// TransportStdio uses standard input/output for MCP.
const TransportStdio TransportKind = "stdio"

// Config configures the MCP server. Values are read from the environment by
// the serve command.
type Config struct {
	Transport TransportKind `env:"MCPGUIDE_TRANSPORT" envDefault:"stdio"`
	LogLevel  slog.Level    `env:"MCPGUIDE_LOG_LEVEL" envDefault:"info"`
}

// Server hosts the MCP server. All requests funnel through the registry so
// middleware and panic recovery apply on every transport.
type Server struct {
	mcpServer *mcp.Server
	registry  *Registry
}

// NewServer creates a configured MCP server with the three guidance tools
// registered and every docs topic published as a readable resource.
// logger may be nil; it must write to stderr when stdio transport is used.
func NewServer(logger *slog.Logger) (*Server, error) {
	registry := NewRegistry()
	if logger != nil {
		registry.Use(WithLogging(logger))
	}

	docs, err := NewDocsTool()
	if err != nil {
		return nil, fmt.Errorf("build docs tool: %w", err)
	}
	validate, err := NewValidateTool()
	if err != nil {
		return nil, fmt.Errorf("build validate tool: %w", err)
	}
	generate, err := NewTemplateTool()
	if err != nil {
		return nil, fmt.Errorf("build template tool: %w", err)
	}
	registry.Register(docs)
	registry.Register(validate)
	registry.Register(generate)

	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	server := &Server{mcpServer: mcpServer, registry: registry}

	for _, t := range registry.GetAllTools() {
		schema, err := schemaFromMap(t.InputSchema())
		if err != nil {
			return nil, fmt.Errorf("convert schema for %s: %w", t.Name(), err)
		}
		mcpServer.AddTool(&mcp.Tool{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: schema,
		}, server.toolHandler(t.Name()))
	}
	for _, topic := range Topics() {
		resource, handler := docsResource(topic)
		mcpServer.AddResource(resource, handler)
	}

	return server, nil
}

// Registry exposes the dispatch point (e.g. for the CLI and tests).
func (s *Server) Registry() *Registry {
	return s.registry
}

// toolHandler adapts a registry dispatch to the MCP envelope: one text block
// plus the optional error flag. Client-correctable failures become in-band
// error envelopes; internal failures surface as protocol errors.
func (s *Server) toolHandler(name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := s.registry.Dispatch(ctx, ToolCall{ToolName: name, Args: req.Params.Arguments})
		if err != nil {
			var ce *ClientError
			if errors.As(err, &ce) {
				return &mcp.CallToolResult{
					IsError: true,
					Content: []mcp.Content{&mcp.TextContent{Text: ce.Error()}},
				}, nil
			}
			return nil, err
		}
		return &mcp.CallToolResult{
			IsError: res.IsError,
			Content: []mcp.Content{&mcp.TextContent{Text: res.Text}},
		}, nil
	}
}

// docsResource declares one docs topic as a readable MCP resource.
func docsResource(topic Topic) (*mcp.Resource, mcp.ResourceHandler) {
	uri := "mcpguide://docs/" + string(topic)
	resource := &mcp.Resource{
		Name:        "docs_" + string(topic),
		Description: "MCP documentation topic: " + string(topic),
		MIMEType:    "text/markdown",
		URI:         uri,
	}
	handler := func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		readURI := uri
		if req != nil && req.Params != nil && req.Params.URI != "" {
			readURI = req.Params.URI
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{URI: readURI, MIMEType: "text/markdown", Text: Lookup(topic)},
			},
		}, nil
	}
	return resource, handler
}

// Serve starts the MCP server on stdio and blocks until it stops or the
// context ends.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil || s.mcpServer == nil {
		return errors.New("mcp server is not configured")
	}
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// serveWithTransport runs the server on the given transport. A context
// cancellation is a clean stop, not an error.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if err := s.mcpServer.Run(ctx, transport); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// Run creates and serves the MCP server until the context ends.
func Run(ctx context.Context, cfg Config, logger *slog.Logger) error {
	switch cfg.Transport {
	case "", TransportStdio:
		server, err := NewServer(logger)
		if err != nil {
			return err
		}
		return server.Serve(ctx)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}
