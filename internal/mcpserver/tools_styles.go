package mcpserver

import (
	"context"

	"github.com/erraggy/casekit/casing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type listStylesInput struct {
	Example string `json:"example,omitempty" jsonschema:"Text to convert in each style (default: my variable name)"`
}

type styleInfo struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"`
	Example string   `json:"example"`
	Default bool     `json:"default,omitempty"`
}

type listStylesOutput struct {
	Input  string      `json:"input"`
	Styles []styleInfo `json:"styles"`
}

const defaultStyleExample = "my variable name"

func handleListStyles(_ context.Context, _ *mcp.CallToolRequest, input listStylesInput) (*mcp.CallToolResult, listStylesOutput, error) {
	example := input.Example
	if example == "" {
		example = defaultStyleExample
	}

	styles := casing.Styles()
	output := listStylesOutput{Input: example, Styles: make([]styleInfo, 0, len(styles))}
	for _, s := range styles {
		output.Styles = append(output.Styles, styleInfo{
			Name:    s.String(),
			Aliases: s.Aliases(),
			Example: casing.Convert(example, s),
			Default: s == cfg.DefaultStyle,
		})
	}
	return nil, output, nil
}
