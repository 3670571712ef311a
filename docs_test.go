package mcpguide

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_AllTopics(t *testing.T) {
	for _, topic := range Topics() {
		text := Lookup(topic)
		assert.NotEmpty(t, text, "topic %s", topic)
		assert.NotEqual(t, TopicNotFound, text, "topic %s", topic)
		// Stable: a second lookup returns the identical text.
		assert.Equal(t, text, Lookup(topic))
	}
}

func TestLookup_UnknownTopic(t *testing.T) {
	assert.Equal(t, TopicNotFound, Lookup("foo"))
	assert.Equal(t, TopicNotFound, Lookup(""))
	assert.Equal(t, TopicNotFound, Lookup("Overview"))
}

func TestLookup_TopicContent(t *testing.T) {
	assert.Contains(t, Lookup(TopicOverview), "Model Context Protocol")
	assert.Contains(t, Lookup(TopicTools), "inputSchema")
	assert.Contains(t, Lookup(TopicResources), "resources/read")
	assert.Contains(t, Lookup(TopicServerSetup), "mcpServers")
}

func TestDocsTool_Execute(t *testing.T) {
	tool, err := NewDocsTool()
	require.NoError(t, err)
	assert.Equal(t, "get_mcp_docs", tool.Name())

	res, err := tool.Execute(context.Background(), []byte(`{"topic":"overview"}`))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.True(t, strings.Contains(res.Text, "Model Context Protocol"))
}

func TestDocsTool_SchemaDeclaresEnum(t *testing.T) {
	tool, err := NewDocsTool()
	require.NoError(t, err)
	schema := tool.InputSchema()
	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	topic, ok := props["topic"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"overview", "tools", "resources", "server_setup"}, topic["enum"])
	assert.NotEmpty(t, topic["description"])
}

func TestDocsTool_RejectsUnknownTopicAtSchema(t *testing.T) {
	tool, err := NewDocsTool()
	require.NoError(t, err)
	_, err = tool.Execute(context.Background(), []byte(`{"topic":"foo"}`))
	require.Error(t, err)
	assert.True(t, IsClientError(err))
	assert.ErrorIs(t, err, ErrValidation)
}
