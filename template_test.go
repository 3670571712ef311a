package mcpguide

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTemplate_Hybrid(t *testing.T) {
	text, err := GenerateTemplate(ServerTypeHybrid, "demo", "A demo server")
	require.NoError(t, err)
	assert.Contains(t, text, "mcp.AddTool")
	assert.Contains(t, text, "AddResource")
	assert.Contains(t, text, `"demo"`)
	assert.Contains(t, text, "A demo server")
}

func TestGenerateTemplate_ToolOnly(t *testing.T) {
	text, err := GenerateTemplate(ServerTypeTool, "demo", "d")
	require.NoError(t, err)
	assert.Contains(t, text, "mcp.AddTool")
	assert.NotContains(t, text, "AddResource")
}

func TestGenerateTemplate_ResourceOnly(t *testing.T) {
	text, err := GenerateTemplate(ServerTypeResource, "demo", "d")
	require.NoError(t, err)
	assert.Contains(t, text, "AddResource")
	assert.NotContains(t, text, "mcp.AddTool")
}

func TestGenerateTemplate_UnknownType(t *testing.T) {
	_, err := GenerateTemplate("daemon", "demo", "d")
	require.Error(t, err)
	assert.True(t, IsClientError(err))
	assert.Contains(t, err.Error(), "daemon")
}

func TestServerTypeValid(t *testing.T) {
	assert.True(t, ServerTypeTool.Valid())
	assert.True(t, ServerTypeResource.Valid())
	assert.True(t, ServerTypeHybrid.Valid())
	assert.False(t, ServerType("").Valid())
	assert.False(t, ServerType("Tool").Valid())
}

func TestTemplateTool_Execute(t *testing.T) {
	tool, err := NewTemplateTool()
	require.NoError(t, err)
	assert.Equal(t, "generate_mcp_template", tool.Name())

	res, err := tool.Execute(context.Background(), []byte(`{"server_type":"hybrid","name":"demo","description":"d"}`))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Contains(t, res.Text, "mcp.AddTool")
	assert.Contains(t, res.Text, "AddResource")
}

func TestTemplateTool_SchemaDeclaresEnum(t *testing.T) {
	tool, err := NewTemplateTool()
	require.NoError(t, err)
	props, ok := tool.InputSchema()["properties"].(map[string]any)
	require.True(t, ok)
	st, ok := props["server_type"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"tool", "resource", "hybrid"}, st["enum"])
}

func TestTemplateTool_RejectsBadInput(t *testing.T) {
	tool, err := NewTemplateTool()
	require.NoError(t, err)

	t.Run("unknown type fails schema enum", func(t *testing.T) {
		_, err := tool.Execute(context.Background(), []byte(`{"server_type":"daemon","name":"demo","description":"d"}`))
		require.Error(t, err)
		assert.True(t, IsClientError(err))
	})
	t.Run("empty name fails custom validation", func(t *testing.T) {
		_, err := tool.Execute(context.Background(), []byte(`{"server_type":"tool","name":"  ","description":"d"}`))
		require.Error(t, err)
		assert.True(t, IsClientError(err))
		assert.ErrorIs(t, err, ErrValidation)
	})
}
