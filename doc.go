// Package mcpguide implements an MCP server that teaches the Model Context
// Protocol itself: documentation lookup, configuration validation, and
// server-template generation, each exposed as a schema-described tool.
//
// # Overview
//
// Every tool is a pure function from a small argument object to a text
// string. Incoming JSON is validated against the same schema published in
// the tool listing, executed, and wrapped in the uniform response envelope
// (one text content block plus an optional error flag).
//
// Pipeline: argument struct → NewTool (reflection + schema) → Tool →
// Registry → Dispatch (unmarshal, validate, call) → Result → MCP envelope.
//
// # Key concepts
//
//   - Single Source of Truth: one set of struct tags drives both the schema
//     sent to clients and the validation of incoming JSON.
//   - In-band failure: an invalid configuration is a text response with the
//     error flag set (the model reads it and corrects itself), never a
//     protocol error. Only an unknown tool name fails at protocol level.
//   - Stateless: nothing persists between requests; no handler touches
//     shared mutable state.
//
// See Tool, Registry, and NewServer for the core entry points.
//
// # Example
//
//	server, err := mcpguide.NewServer(slog.Default())
//	if err != nil { ... }
//	err = server.Serve(ctx) // stdio transport
package mcpguide
