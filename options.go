package mcpguide

import "context"

// RegistryOption configures a Registry.
type RegistryOption func(*registryOptions)

type registryOptions struct {
	recoverPanics bool
	onBefore      func(context.Context, ToolCall)
	onAfter       func(context.Context, ToolCall, Result, error)
}

// WithRecoverPanics enables panic recovery in Dispatch (returns SystemError).
// Enabled by default.
func WithRecoverPanics(enable bool) RegistryOption {
	return func(o *registryOptions) {
		o.recoverPanics = enable
	}
}

// WithOnBeforeDispatch sets a hook called before each tool execution.
func WithOnBeforeDispatch(fn func(context.Context, ToolCall)) RegistryOption {
	return func(o *registryOptions) {
		o.onBefore = fn
	}
}

// WithOnAfterDispatch sets a hook called after each tool execution with the
// result and error.
func WithOnAfterDispatch(fn func(context.Context, ToolCall, Result, error)) RegistryOption {
	return func(o *registryOptions) {
		o.onAfter = fn
	}
}
