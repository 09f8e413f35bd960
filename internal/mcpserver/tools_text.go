package mcpserver

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/erraggy/casekit/textutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/text/language"
)

type textTransformInput struct {
	Operation string `json:"operation"          jsonschema:"Transform to apply: slug\\, strip_tags\\, normalize_spaces\\, reverse\\, capitalize_words or title"`
	Input     string `json:"input"              jsonschema:"The text to transform"`
	Language  string `json:"language,omitempty" jsonschema:"BCP 47 language tag for title (e.g. en\\, nl\\, tr). Defaults to language-neutral rules."`
}

type textTransformOutput struct {
	Operation string `json:"operation"`
	Output    string `json:"output"`
	Changed   bool   `json:"changed"`
}

// textOperations maps operation names to transforms that need no extra arguments.
var textOperations = map[string]func(string) string{
	"slug":             textutil.ToSlug,
	"strip_tags":       textutil.StripTags,
	"normalize_spaces": textutil.NormalizeSpaces,
	"reverse":          textutil.Reverse,
	"capitalize_words": textutil.CapitalizeWords,
}

func handleTextTransform(ctx context.Context, _ *mcp.CallToolRequest, input textTransformInput) (*mcp.CallToolResult, textTransformOutput, error) {
	if !utf8.ValidString(input.Input) {
		return errResult(fmt.Errorf("input is not valid UTF-8")), textTransformOutput{}, nil
	}

	var out string
	switch input.Operation {
	case "title":
		tag := language.Und
		if input.Language != "" {
			parsed, err := language.Parse(input.Language)
			if err != nil {
				return errResult(fmt.Errorf("invalid language %q: %w", input.Language, err)), textTransformOutput{}, nil
			}
			tag = parsed
		}
		ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
		var err error
		out, err = textutil.ToTitleCaseAsync(input.Input, tag).Wait(ctx)
		if err != nil {
			return errResult(err), textTransformOutput{}, nil
		}
	default:
		transform, ok := textOperations[input.Operation]
		if !ok {
			return errResult(fmt.Errorf("unknown operation %q; use slug, strip_tags, normalize_spaces, reverse, capitalize_words or title", input.Operation)), textTransformOutput{}, nil
		}
		out = transform(input.Input)
	}

	return nil, textTransformOutput{
		Operation: input.Operation,
		Output:    out,
		Changed:   out != input.Input,
	}, nil
}

type matchPatternInput struct {
	Input   string `json:"input"   jsonschema:"The text to search"`
	Pattern string `json:"pattern" jsonschema:"A Go RE2 regular expression"`
}

type matchPatternOutput struct {
	Matched bool     `json:"matched"`
	Matches []string `json:"matches,omitempty"`
}

// maxMatches caps the substrings returned by match_pattern.
const maxMatches = 100

func handleMatchPattern(_ context.Context, _ *mcp.CallToolRequest, input matchPatternInput) (*mcp.CallToolResult, matchPatternOutput, error) {
	matched, err := textutil.MatchesPattern(input.Input, input.Pattern)
	if err != nil {
		return errResult(err), matchPatternOutput{}, nil
	}

	output := matchPatternOutput{Matched: matched}
	if matched {
		output.Matches, err = textutil.FindMatches(input.Input, input.Pattern, maxMatches)
		if err != nil {
			return errResult(err), matchPatternOutput{}, nil
		}
	}
	return nil, output, nil
}
