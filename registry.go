package mcpguide

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// Registry holds tools and dispatches calls to them by name. It is the single
// dispatch point: every request, whatever the transport, goes through Dispatch.
type Registry struct {
	tools       map[string]Tool // wrapped with middlewares, used by Dispatch
	rawTools    map[string]Tool // unwrapped, used by Use() to re-apply middlewares from scratch
	opts        registryOptions
	mu          sync.Mutex
	middlewares []Middleware
}

// NewRegistry creates a Registry with the given options.
func NewRegistry(opts ...RegistryOption) *Registry {
	o := registryOptions{
		recoverPanics: true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry{
		tools:    make(map[string]Tool),
		rawTools: make(map[string]Tool),
		opts:     o,
	}
}

// Register adds a tool. Stored middlewares (see Use) are applied to the tool
// before registration. If a tool with the same name already exists, it is
// replaced. Safe for concurrent use with Dispatch and other Register calls.
func (r *Registry) Register(t Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := t.Name()
	r.rawTools[name] = t
	for i := len(r.middlewares) - 1; i >= 0; i-- {
		t = r.middlewares[i](t)
	}
	r.tools[name] = t
}

// GetAllTools returns all registered tools, sorted by name for deterministic
// listing order.
func (r *Registry) GetAllTools() []Tool {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	slices.Sort(names)
	out := make([]Tool, 0, len(names))
	for _, name := range names {
		out = append(out, r.tools[name])
	}
	return out
}

// GetTool returns the tool with the given name (after middlewares are
// applied), or (nil, false) if not found.
func (r *Registry) GetTool(name string) (Tool, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tools[name]
	return t, ok
}

// Dispatch runs one tool call. An unregistered tool name fails with
// ErrToolNotFound; it is never converted into a text response.
func (r *Registry) Dispatch(ctx context.Context, call ToolCall) (res Result, err error) {
	r.mu.Lock()
	tool, ok := r.tools[call.ToolName]
	r.mu.Unlock()
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrToolNotFound, call.ToolName)
	}

	if r.opts.recoverPanics {
		defer func() {
			if p := recover(); p != nil {
				res = Result{}
				err = &SystemError{Err: &panicError{p: p}}
			}
		}()
	}

	if r.opts.onBefore != nil {
		r.opts.onBefore(ctx, call)
	}
	res, err = tool.Execute(ctx, call.Args)
	if r.opts.onAfter != nil {
		r.opts.onAfter(ctx, call, res, err)
	}
	return res, err
}

// panicError wraps a recovered panic value for SystemError; used by Registry
// and the WithRecovery middleware.
type panicError struct{ p any }

func (e *panicError) Error() string {
	return "panic: " + fmt.Sprint(e.p)
}
