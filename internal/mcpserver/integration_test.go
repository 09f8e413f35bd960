package mcpserver

import (
	"context"
	"encoding/json"
	"slices"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// connect wires a server with every tool to a client over in-memory
// transports. Both ends are closed by t.Cleanup.
func connect(t *testing.T) *mcp.ClientSession {
	t.Helper()

	server := mcp.NewServer(
		&mcp.Implementation{Name: "casekit-test", Version: "test"},
		nil,
	)
	registerAllTools(server)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx, serverTransport)
	}()

	client := mcp.NewClient(
		&mcp.Implementation{Name: "casekit-client", Version: "test"},
		nil,
	)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		<-done
	})

	return session
}

func TestIntegration_ListTools(t *testing.T) {
	session := connect(t)

	result, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)
	require.NotNil(t, result)

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
		assert.NotEmpty(t, tool.Description, tool.Name)
		assert.NotNil(t, tool.InputSchema, tool.Name)
	}
	slices.Sort(names)
	assert.Equal(t, []string{"convert_case", "list_styles", "match_pattern", "rekey", "text_transform"}, names)
}

func TestIntegration_CallTool_ConvertCase(t *testing.T) {
	session := connect(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "convert_case",
		Arguments: map[string]any{
			"values": []string{"first name", "lastName"},
			"style":  "upper-snake",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError, "convert_case should succeed")

	structured := unmarshalStructured(t, result)
	assert.Equal(t, "upper-snake", structured["style"])
	assert.Equal(t, float64(2), structured["count"])

	results, ok := structured["results"].([]any)
	require.True(t, ok)
	require.Len(t, results, 2)
	first, ok := results[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "FIRST_NAME", first["output"])
}

func TestIntegration_CallTool_Rekey(t *testing.T) {
	session := connect(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "rekey",
		Arguments: map[string]any{
			"document": map[string]any{"content": `{"fooBar": {"bazQux": true}}`},
			"style":    "snake",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError, "rekey should succeed")

	structured := unmarshalStructured(t, result)
	assert.Equal(t, "json", structured["format"])
	assert.Equal(t, float64(2), structured["keys_renamed"])
	assert.Contains(t, structured["document"], `"baz_qux": true`)
}

func TestIntegration_CallTool_ErrorResult(t *testing.T) {
	session := connect(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "text_transform",
		Arguments: map[string]any{
			"operation": "shout",
			"input":     "hello",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, `unknown operation "shout"`)
}

// unmarshalStructured decodes a tool's output, taken from StructuredContent
// or else from the first text block.
func unmarshalStructured(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()

	var data []byte
	if result.StructuredContent != nil {
		var err error
		data, err = json.Marshal(result.StructuredContent)
		require.NoError(t, err)
	} else {
		require.NotEmpty(t, result.Content)
		text, ok := result.Content[0].(*mcp.TextContent)
		require.True(t, ok, "content is %T", result.Content[0])
		data = []byte(text.Text)
	}

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}
