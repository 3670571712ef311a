package mcpguide

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raw(s string) json.RawMessage { return []byte(s) }

// echoTool returns its "text" argument unchanged; used across registry tests.
func echoTool(t *testing.T, name string) Tool {
	t.Helper()
	type args struct {
		Text string `json:"text"`
	}
	tool, err := NewTool(name, "Echo text", func(_ context.Context, a args) (Result, error) {
		return TextResult(a.Text), nil
	})
	require.NoError(t, err)
	return tool
}

func TestRegistry_Register_Dispatch(t *testing.T) {
	reg := NewRegistry()
	reg.Register(echoTool(t, "echo"))
	all := reg.GetAllTools()
	require.Len(t, all, 1)

	res, err := reg.Dispatch(context.Background(), ToolCall{ToolName: "echo", Args: raw(`{"text":"hi"}`)})
	require.NoError(t, err)
	assert.Equal(t, "hi", res.Text)
	assert.False(t, res.IsError)
}

func TestRegistry_GetTool(t *testing.T) {
	reg := NewRegistry()
	tool := echoTool(t, "echo")
	reg.Register(tool)
	got, ok := reg.GetTool("echo")
	require.True(t, ok)
	require.Same(t, tool, got)
	_, ok = reg.GetTool("missing")
	require.False(t, ok)
}

func TestRegistry_Dispatch_ToolNotFound(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Dispatch(context.Background(), ToolCall{ToolName: "missing", Args: raw("{}")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrToolNotFound)
	assert.Contains(t, err.Error(), `"missing"`)
}

func TestRegistry_Dispatch_PanicRecovery(t *testing.T) {
	type args struct {
		X int `json:"x"`
	}
	tool, err := NewTool("panics", "Panics", func(_ context.Context, _ args) (Result, error) {
		panic("oops")
	})
	require.NoError(t, err)
	reg := NewRegistry(WithRecoverPanics(true))
	reg.Register(tool)
	_, err = reg.Dispatch(context.Background(), ToolCall{ToolName: "panics", Args: raw(`{"x":1}`)})
	require.Error(t, err)
	var se *SystemError
	require.ErrorAs(t, err, &se)
}

func TestRegistry_GetAllTools_Sorted(t *testing.T) {
	reg := NewRegistry()
	reg.Register(echoTool(t, "zeta"))
	reg.Register(echoTool(t, "alpha"))
	reg.Register(echoTool(t, "mid"))
	all := reg.GetAllTools()
	require.Len(t, all, 3)
	assert.Equal(t, "alpha", all[0].Name())
	assert.Equal(t, "mid", all[1].Name())
	assert.Equal(t, "zeta", all[2].Name())
}

func TestRegistry_Register_Replaces(t *testing.T) {
	reg := NewRegistry()
	reg.Register(echoTool(t, "echo"))
	replacement := echoTool(t, "echo")
	reg.Register(replacement)
	all := reg.GetAllTools()
	require.Len(t, all, 1)
	require.Same(t, replacement, all[0])
}

func TestRegistry_DispatchHooks(t *testing.T) {
	var before, after int
	reg := NewRegistry(
		WithOnBeforeDispatch(func(_ context.Context, call ToolCall) {
			before++
			assert.Equal(t, "echo", call.ToolName)
		}),
		WithOnAfterDispatch(func(_ context.Context, _ ToolCall, res Result, err error) {
			after++
			assert.NoError(t, err)
			assert.Equal(t, "hi", res.Text)
		}),
	)
	reg.Register(echoTool(t, "echo"))
	_, err := reg.Dispatch(context.Background(), ToolCall{ToolName: "echo", Args: raw(`{"text":"hi"}`)})
	require.NoError(t, err)
	assert.Equal(t, 1, before)
	assert.Equal(t, 1, after)
}
