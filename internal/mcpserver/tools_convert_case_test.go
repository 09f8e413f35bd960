package mcpserver

import (
	"context"
	"testing"
	"time"

	"github.com/erraggy/casekit/casing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertCaseTool(t *testing.T) {
	input := convertCaseInput{
		Values: []string{"user id", "UserId", "createdAt"},
		Style:  "snake",
	}
	result, output, err := handleConvertCase(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, result)

	assert.Equal(t, "snake", output.Style)
	assert.Equal(t, 3, output.Count)
	assert.Equal(t, 3, output.ChangedCount)
	assert.Equal(t, []convertedValue{
		{Input: "user id", Output: "user_id", Changed: true},
		{Input: "UserId", Output: "user_id", Changed: true},
		{Input: "createdAt", Output: "created_at", Changed: true},
	}, output.Results)
	assert.Equal(t, []collision{{Output: "user_id", Inputs: []string{"user id", "UserId"}}}, output.Collisions)
}

func TestConvertCaseTool_DefaultStyleAndDedupe(t *testing.T) {
	withConfig(t, &serverConfig{DefaultStyle: casing.Pascal, MaxValues: 10, Concurrency: 2, Timeout: time.Second})

	_, output, err := handleConvertCase(context.Background(), &mcp.CallToolRequest{}, convertCaseInput{
		Values:      []string{"my var", "my var", "MyVar"},
		Deduplicate: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "pascal", output.Style)
	assert.Equal(t, 2, output.Count)
	assert.Equal(t, 1, output.ChangedCount)
	require.Len(t, output.Collisions, 1)
	assert.Equal(t, []string{"my var", "MyVar"}, output.Collisions[0].Inputs)
}

func TestConvertCaseTool_Errors(t *testing.T) {
	withConfig(t, &serverConfig{DefaultStyle: casing.Camel, MaxValues: 2, Concurrency: 1, Timeout: time.Second})

	tests := []struct {
		name  string
		input convertCaseInput
	}{
		{name: "no values", input: convertCaseInput{}},
		{name: "too many values", input: convertCaseInput{Values: []string{"a", "b", "c"}}},
		{name: "unknown style", input: convertCaseInput{Values: []string{"a"}, Style: "kebab"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := handleConvertCase(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
		})
	}
}
