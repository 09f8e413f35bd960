package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/erraggy/casekit/rekey"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// documentInput represents the two ways a document can be provided to a tool.
// Exactly one of File or Content must be set.
type documentInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a YAML or JSON file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline document content (JSON or YAML)"`
}

type rekeyInput struct {
	Document documentInput `json:"document"            jsonschema:"The document whose keys are renamed"`
	Style    string        `json:"style,omitempty"     jsonschema:"Target style: camel\\, pascal\\, snake or upper-snake. Defaults to CASEKIT_DEFAULT_STYLE."`
	Format   string        `json:"format,omitempty"    jsonschema:"Output format: json or yaml. Defaults to the input format."`
	SkipKeys []string      `json:"skip_keys,omitempty" jsonschema:"Keys that are never renamed\\, e.g. $ref"`
	MaxDepth int           `json:"max_depth,omitempty" jsonschema:"Maximum mapping depth to rename (default 64)"`
	Strict   *bool         `json:"strict,omitempty"    jsonschema:"Fail on key collisions instead of keeping the original key. Defaults to CASEKIT_REKEY_STRICT."`
	Output   string        `json:"output,omitempty"    jsonschema:"File path to write the document. If omitted the document is returned inline."`
}

type rekeyCollision struct {
	Path      string `json:"path"`
	Key       string `json:"key"`
	Existing  string `json:"existing"`
	Converted string `json:"converted"`
}

type rekeyOutput struct {
	Format       string           `json:"format"`
	KeysVisited  int              `json:"keys_visited"`
	KeysRenamed  int              `json:"keys_renamed"`
	DepthLimited int              `json:"depth_limited,omitempty"`
	Collisions   []rekeyCollision `json:"collisions,omitempty"`
	WrittenTo    string           `json:"written_to,omitempty"`
	Document     string           `json:"document,omitempty"`
}

func handleRekey(_ context.Context, _ *mcp.CallToolRequest, input rekeyInput) (*mcp.CallToolResult, rekeyOutput, error) {
	opts, err := buildRekeyOptions(input)
	if err != nil {
		return errResult(err), rekeyOutput{}, nil
	}

	result, err := rekey.RekeyWithOptions(opts...)
	if err != nil {
		return errResult(err), rekeyOutput{}, nil
	}

	output := rekeyOutput{
		Format:       result.Format.String(),
		KeysVisited:  result.KeysVisited,
		KeysRenamed:  result.KeysRenamed,
		DepthLimited: result.DepthLimited,
	}
	output.Collisions = makeSlice[rekeyCollision](len(result.Collisions))
	for _, c := range result.Collisions {
		output.Collisions = append(output.Collisions, rekeyCollision(c))
	}

	if input.Output != "" {
		if err := os.WriteFile(input.Output, result.Document, 0o644); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), rekeyOutput{}, nil
		}
		output.WrittenTo = input.Output
	} else {
		output.Document = string(result.Document)
	}

	return nil, output, nil
}

// buildRekeyOptions translates the MCP input into rekey options.
func buildRekeyOptions(input rekeyInput) ([]rekey.Option, error) {
	var opts []rekey.Option

	switch {
	case input.Document.File != "" && input.Document.Content != "":
		return nil, fmt.Errorf("exactly one of file or content must be provided")
	case input.Document.File != "":
		opts = append(opts, rekey.WithFilePath(input.Document.File))
	case input.Document.Content != "":
		if int64(len(input.Document.Content)) > cfg.MaxInlineSize {
			return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set CASEKIT_MAX_INLINE_SIZE to increase",
				len(input.Document.Content), cfg.MaxInlineSize)
		}
		opts = append(opts, rekey.WithContent([]byte(input.Document.Content)))
	default:
		return nil, fmt.Errorf("exactly one of file or content must be provided")
	}

	style, err := resolveStyle(input.Style)
	if err != nil {
		return nil, err
	}
	format, err := rekey.ParseFormat(input.Format)
	if err != nil {
		return nil, err
	}
	strict := cfg.RekeyStrict
	if input.Strict != nil {
		strict = *input.Strict
	}

	opts = append(opts,
		rekey.WithStyle(style),
		rekey.WithOutputFormat(format),
		rekey.WithSkipKeys(input.SkipKeys...),
		rekey.WithStrict(strict),
	)
	if input.MaxDepth > 0 {
		opts = append(opts, rekey.WithMaxDepth(input.MaxDepth))
	}
	return opts, nil
}
