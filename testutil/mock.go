// Package testutil provides test helpers for mcpguide (e.g. MockTool).
package testutil

import (
	"context"

	"github.com/skosovsky/mcpguide"
)

// MockTool is a configurable Tool implementation for tests.
type MockTool struct {
	NameVal   string
	DescVal   string
	SchemaVal map[string]any
	ExecuteFn func(ctx context.Context, args []byte) (mcpguide.Result, error)
}

// Name returns the tool name.
func (m *MockTool) Name() string {
	if m.NameVal != "" {
		return m.NameVal
	}
	return "mock"
}

// Description returns the tool description.
func (m *MockTool) Description() string {
	return m.DescVal
}

// InputSchema returns the input schema (or empty map).
func (m *MockTool) InputSchema() map[string]any {
	if m.SchemaVal != nil {
		return m.SchemaVal
	}
	return map[string]any{}
}

// Execute runs ExecuteFn if set, otherwise returns an empty Result.
func (m *MockTool) Execute(ctx context.Context, args []byte) (mcpguide.Result, error) {
	if m.ExecuteFn != nil {
		return m.ExecuteFn(ctx, args)
	}
	return mcpguide.Result{}, nil
}

// Ensure MockTool implements Tool.
var _ mcpguide.Tool = (*MockTool)(nil)
