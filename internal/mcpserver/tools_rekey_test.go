package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/erraggy/casekit/casing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const serviceYAML = `serviceName: api
maxRetries: 3
$ref: "#/base"
`

func TestRekeyTool(t *testing.T) {
	input := rekeyInput{
		Document: documentInput{Content: serviceYAML},
		Style:    "snake",
		SkipKeys: []string{"$ref"},
	}
	result, output, err := handleRekey(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "yaml", output.Format)
	assert.Equal(t, 2, output.KeysVisited)
	assert.Equal(t, 2, output.KeysRenamed)
	assert.Contains(t, output.Document, "service_name: api")
	assert.Contains(t, output.Document, "max_retries: 3")
	assert.Contains(t, output.Document, "$ref:")
	assert.Empty(t, output.WrittenTo)
}

func TestRekeyTool_JSONOutput(t *testing.T) {
	_, output, err := handleRekey(context.Background(), &mcp.CallToolRequest{}, rekeyInput{
		Document: documentInput{Content: serviceYAML},
		Style:    "camel",
		Format:   "json",
	})
	require.NoError(t, err)
	assert.Equal(t, "json", output.Format)
	assert.True(t, strings.HasPrefix(output.Document, "{"))
	assert.Contains(t, output.Document, `"serviceName": "api"`)
}

func TestRekeyTool_Collisions(t *testing.T) {
	doc := `{"userId": 1, "user_id": 2}`

	_, output, err := handleRekey(context.Background(), &mcp.CallToolRequest{}, rekeyInput{
		Document: documentInput{Content: doc},
		Style:    "snake",
	})
	require.NoError(t, err)
	assert.Equal(t, []rekeyCollision{{Path: "$", Key: "userId", Existing: "user_id", Converted: "user_id"}}, output.Collisions)

	strict := true
	result, _, err := handleRekey(context.Background(), &mcp.CallToolRequest{}, rekeyInput{
		Document: documentInput{Content: doc},
		Style:    "snake",
		Strict:   &strict,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestRekeyTool_StrictFromConfig(t *testing.T) {
	withConfig(t, &serverConfig{DefaultStyle: casing.SnakeLower, MaxInlineSize: 1 << 20, RekeyStrict: true, Timeout: time.Second})

	result, _, err := handleRekey(context.Background(), &mcp.CallToolRequest{}, rekeyInput{
		Document: documentInput{Content: `{"aB": 1, "a_b": 2}`},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestRekeyTool_FileInputAndOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	out := filepath.Join(dir, "out.json")
	require.NoError(t, os.WriteFile(in, []byte(`{"itemCount": 1}`), 0o600))

	_, output, err := handleRekey(context.Background(), &mcp.CallToolRequest{}, rekeyInput{
		Document: documentInput{File: in},
		Style:    "upper-snake",
		Output:   out,
	})
	require.NoError(t, err)
	assert.Equal(t, out, output.WrittenTo)
	assert.Empty(t, output.Document)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"ITEM_COUNT": 1`)
}

func TestRekeyTool_Errors(t *testing.T) {
	withConfig(t, &serverConfig{DefaultStyle: casing.Camel, MaxInlineSize: 16, Timeout: time.Second})

	tests := []struct {
		name  string
		input rekeyInput
	}{
		{name: "no document", input: rekeyInput{}},
		{name: "both sources", input: rekeyInput{Document: documentInput{File: "a.yaml", Content: "a: 1"}}},
		{name: "too large", input: rekeyInput{Document: documentInput{Content: strings.Repeat("a", 17)}}},
		{name: "bad style", input: rekeyInput{Document: documentInput{Content: "a: 1"}, Style: "kebab"}},
		{name: "bad format", input: rekeyInput{Document: documentInput{Content: "a: 1"}, Format: "toml"}},
		{name: "missing file", input: rekeyInput{Document: documentInput{File: "/tmp/does-not-exist/x.yaml"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := handleRekey(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
		})
	}
}
