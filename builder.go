package mcpguide

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
)

// tool is the internal implementation of Tool built by NewTool or NewRawTool.
type tool struct {
	name        string
	description string
	schema      map[string]any
	execute     func(context.Context, []byte) (Result, error)
}

// NewTool builds a Tool from a typed handler. Schema and validation are
// delegated to Extractor[T]: the same schema published to clients is used to
// validate incoming JSON before fn runs.
func NewTool[T any](
	name, description string,
	fn func(ctx context.Context, args T) (Result, error),
) (Tool, error) {
	ext, err := NewExtractor[T]()
	if err != nil {
		return nil, err
	}
	execute := func(ctx context.Context, argsJSON []byte) (Result, error) {
		args, err := ext.ParseAndValidate(argsJSON)
		if err != nil {
			return Result{}, err
		}
		res, err := fn(ctx, args)
		if err != nil {
			return Result{}, wrapHandlerError(err)
		}
		return res, nil
	}
	return &tool{
		name:        name,
		description: description,
		schema:      ext.Schema(),
		execute:     execute,
	}, nil
}

// NewRawTool creates a Tool from a hand-written JSON Schema map and a handler
// that receives validated raw JSON. Used when the argument shape cannot be
// expressed as a Go struct (e.g. a free-form configuration document).
// The provided schemaMap is not mutated; a defensive copy is made.
func NewRawTool(
	name, description string,
	schemaMap map[string]any,
	fn func(ctx context.Context, argsJSON []byte) (Result, error),
) (Tool, error) {
	if schemaMap == nil {
		return nil, fmt.Errorf("raw schema map must not be nil")
	}
	if fn == nil {
		return nil, fmt.Errorf("raw tool handler must not be nil")
	}
	data, err := json.Marshal(schemaMap)
	if err != nil {
		return nil, fmt.Errorf("failed to deep copy schema map: %w", err)
	}
	var schemaCopy map[string]any
	if err := json.Unmarshal(data, &schemaCopy); err != nil {
		return nil, fmt.Errorf("failed to deep copy schema map: %w", err)
	}
	stripSchemaIDs(schemaCopy)
	compiled, err := compileRawSchema(schemaCopy)
	if err != nil {
		return nil, fmt.Errorf("failed to compile raw schema: %w", err)
	}
	execute := func(ctx context.Context, argsJSON []byte) (Result, error) {
		var v any
		if err := json.Unmarshal(argsJSON, &v); err != nil {
			return Result{}, wrapJSONParseError(err)
		}
		if err := validateAgainstSchema(compiled, v); err != nil {
			return Result{}, err
		}
		res, err := fn(ctx, argsJSON)
		if err != nil {
			return Result{}, wrapHandlerError(err)
		}
		return res, nil
	}
	return &tool{
		name:        name,
		description: description,
		schema:      schemaCopy,
		execute:     execute,
	}, nil
}

func (t *tool) Name() string        { return t.name }
func (t *tool) Description() string { return t.description }

// InputSchema returns a shallow copy of the JSON Schema (top-level keys only).
// Nested maps (e.g. under "properties") are shared; callers must not mutate them.
func (t *tool) InputSchema() map[string]any { return maps.Clone(t.schema) }

func (t *tool) Execute(ctx context.Context, argsJSON []byte) (Result, error) {
	return t.execute(ctx, argsJSON)
}

// wrapHandlerError passes through ClientError; wraps other errors as SystemError.
func wrapHandlerError(err error) error {
	if err == nil {
		return nil
	}
	if IsClientError(err) {
		return err
	}
	return &SystemError{Err: err}
}

var _ Tool = (*tool)(nil)
