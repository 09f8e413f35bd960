// Package mcpserver serves casekit's conversions as Model Context Protocol
// tools. It backs the "casekit mcp" command.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/casekit"
	"github.com/erraggy/casekit/casing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `casekit MCP server: converts identifiers between naming styles, renames the keys of YAML/JSON documents, and applies text transforms.

Styles: camel (myVariable), pascal (MyVariable), snake (my_variable), upper-snake (MY_VARIABLE). Common aliases such as camelCase or SCREAMING_SNAKE are accepted. Use list_styles to see them with examples.

Configuration: defaults are read from CASEKIT_* environment variables set in your MCP client config.
- CASEKIT_DEFAULT_STYLE (default: camel) - style used when a tool call names none
- CASEKIT_MAX_VALUES (default: 1000) - maximum values per convert_case call
- CASEKIT_MAX_INLINE_SIZE (default: 10MiB) - maximum inline document size for rekey
- CASEKIT_CONCURRENCY (default: GOMAXPROCS) - goroutines used by convert_case
- CASEKIT_TIMEOUT (default: 30s) - per-call conversion timeout
- CASEKIT_REKEY_STRICT (default: false) - treat key collisions as errors by default`

// Run serves the tools over stdin/stdout until the client hangs up or ctx is
// done.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "casekit", Version: casekit.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_case",
		Description: "Convert one or more identifiers to a naming style (camel, pascal, snake, upper-snake). Returns each input with its converted form in input order, plus collisions where distinct inputs produce the same output. Use deduplicate=true to drop repeated inputs. The default style and value limit are configurable via CASEKIT_DEFAULT_STYLE and CASEKIT_MAX_VALUES.",
	}, handleConvertCase)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "rekey",
		Description: "Rename every mapping key of a YAML or JSON document to a naming style, keeping key order, comments and values. JSON input is detected from a leading { or [. Keys listed in skip_keys (for example $ref) are never renamed. Collisions keep the original key unless strict=true, which fails the call instead.",
	}, handleRekey)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "text_transform",
		Description: "Apply a text transform to a string. Operations: slug (URL slug), strip_tags (remove HTML/XML tags), normalize_spaces (trim and collapse whitespace), reverse (reverse runes), capitalize_words (capitalize each space-separated word), title (language-aware title case; set language to a BCP 47 tag such as nl or tr).",
	}, handleTextTransform)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "match_pattern",
		Description: "Report whether a string contains a match of a Go (RE2) regular expression, and return up to 100 matched substrings.",
	}, handleMatchPattern)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_styles",
		Description: "List the supported naming styles with their canonical names, accepted aliases, and an example conversion.",
	}, handleListStyles)
}

// resolveStyle parses a style name, falling back to the configured default
// when name is empty.
func resolveStyle(name string) (casing.Style, error) {
	if name == "" {
		return cfg.DefaultStyle, nil
	}
	return casing.ParseStyle(name)
}

// makeSlice keeps empty lists nil so omitempty drops them from the output.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// pathPattern matches absolute paths under common root directories.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

// sanitizeError renders err with absolute paths replaced by "<path>".
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult reports err to the client as a failed tool call.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
