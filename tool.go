package mcpguide

import (
	"context"
	"encoding/json"
)

// Tool is the contract for one server capability. Tools are pure functions of
// their input: no shared state, no side effects, no I/O.
type Tool interface {
	Name() string
	Description() string
	// InputSchema returns a valid JSON Schema as map (published to clients in
	// the tool listing).
	InputSchema() map[string]any
	// Execute runs the tool on raw JSON arguments and returns the text result.
	// Invalid input that the model should see and correct is reported as a
	// ClientError; everything else as a SystemError.
	Execute(ctx context.Context, argsJSON []byte) (Result, error)
}

// Result is the outcome of a tool execution before envelope wrapping.
// IsError marks an in-band failure (e.g. an invalid configuration): the text
// is still delivered to the caller, flagged on the response envelope.
type Result struct {
	Text    string
	IsError bool
}

// ToolCall is a single dispatch request.
type ToolCall struct {
	ToolName string
	Args     json.RawMessage
}

// TextResult wraps plain prose in a successful Result.
func TextResult(text string) Result {
	return Result{Text: text}
}

// ErrorResult wraps text in a Result flagged as an in-band failure.
func ErrorResult(text string) Result {
	return Result{Text: text, IsError: true}
}
