package testutil

import "github.com/skosovsky/mcpguide"

// NewTestRegistry returns a Registry with panic recovery enabled and the
// given tools registered, suitable for tests.
func NewTestRegistry(tools ...mcpguide.Tool) *mcpguide.Registry {
	reg := mcpguide.NewRegistry(
		mcpguide.WithRecoverPanics(true),
	)
	for _, t := range tools {
		reg.Register(t)
	}
	return reg
}
