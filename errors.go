package mcpguide

import (
	"errors"
	"fmt"
)

// Sentinel errors for mcpguide. Use errors.Is to check.
var (
	ErrToolNotFound = errors.New("unknown tool")
	ErrValidation   = errors.New("validation failed")
)

// ClientError is an error that should be sent back to the calling model for
// self-correction (e.g. invalid JSON, schema validation failure, bad enum
// value). Do not expose stack traces or internal details.
// Err optionally wraps a sentinel (e.g. ErrValidation) for errors.Is/errors.As.
type ClientError struct {
	Reason string
	Err    error
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("invalid tool input: %s", e.Reason)
}

// Unwrap supports errors.Is/errors.As on wrapped chains.
func (e *ClientError) Unwrap() error { return e.Err }

// SystemError represents an internal failure (panic, marshal error, etc.).
// The calling model should not see the underlying message.
type SystemError struct {
	Err error
}

func (e *SystemError) Error() string {
	return "internal error during tool execution"
}

func (e *SystemError) Unwrap() error { return e.Err }

// IsClientError returns true if err is or wraps a ClientError.
func IsClientError(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce)
}

// IsSystemError returns true if err is or wraps a SystemError.
func IsSystemError(err error) bool {
	var se *SystemError
	return errors.As(err, &se)
}

// wrapJSONParseError returns a ClientError for JSON unmarshal failures so
// parse errors read the same from every tool.
func wrapJSONParseError(err error) error {
	return &ClientError{Reason: "json parse error: " + err.Error()}
}
