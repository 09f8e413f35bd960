package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/casekit/batch"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertCaseInput struct {
	Values      []string `json:"values"                jsonschema:"Identifiers or phrases to convert"`
	Style       string   `json:"style,omitempty"       jsonschema:"Target style: camel\\, pascal\\, snake or upper-snake. Defaults to CASEKIT_DEFAULT_STYLE."`
	Deduplicate bool     `json:"deduplicate,omitempty" jsonschema:"Drop repeated inputs before converting"`
}

type convertedValue struct {
	Input   string `json:"input"`
	Output  string `json:"output"`
	Changed bool   `json:"changed"`
}

type collision struct {
	Output string   `json:"output"`
	Inputs []string `json:"inputs"`
}

type convertCaseOutput struct {
	Style        string           `json:"style"`
	Count        int              `json:"count"`
	ChangedCount int              `json:"changed_count"`
	Results      []convertedValue `json:"results,omitempty"`
	Collisions   []collision      `json:"collisions,omitempty"`
}

func handleConvertCase(ctx context.Context, _ *mcp.CallToolRequest, input convertCaseInput) (*mcp.CallToolResult, convertCaseOutput, error) {
	if len(input.Values) == 0 {
		return errResult(fmt.Errorf("at least one value is required")), convertCaseOutput{}, nil
	}
	if len(input.Values) > cfg.MaxValues {
		return errResult(fmt.Errorf("%d values exceeds maximum %d; split the request or set CASEKIT_MAX_VALUES to increase",
			len(input.Values), cfg.MaxValues)), convertCaseOutput{}, nil
	}

	style, err := resolveStyle(input.Style)
	if err != nil {
		return errResult(err), convertCaseOutput{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	result, err := batch.ConvertWithOptions(ctx,
		batch.WithInputs(input.Values),
		batch.WithStyle(style),
		batch.WithDeduplicate(input.Deduplicate),
		batch.WithConcurrency(cfg.Concurrency),
	)
	if err != nil {
		return errResult(err), convertCaseOutput{}, nil
	}

	output := convertCaseOutput{
		Style:        result.Style.String(),
		Count:        len(result.Items),
		ChangedCount: result.ChangedCount,
	}
	output.Results = makeSlice[convertedValue](len(result.Items))
	for _, item := range result.Items {
		output.Results = append(output.Results, convertedValue(item))
	}

	// Report collisions in input order rather than map order.
	output.Collisions = makeSlice[collision](len(result.Collisions))
	reported := make(map[string]bool, len(result.Collisions))
	for _, item := range result.Items {
		inputs, ok := result.Collisions[item.Output]
		if !ok || reported[item.Output] {
			continue
		}
		reported[item.Output] = true
		output.Collisions = append(output.Collisions, collision{Output: item.Output, Inputs: inputs})
	}

	return nil, output, nil
}
