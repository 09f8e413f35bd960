package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/erraggy/casekit/casing"
	"github.com/erraggy/casekit/textutil"
	"golang.org/x/sync/errgroup"
)

// Item is one converted name.
type Item struct {
	Input   string `json:"input" yaml:"input"`
	Output  string `json:"output" yaml:"output"`
	Changed bool   `json:"changed" yaml:"changed"`
}

// Result contains the outcome of a batch conversion
type Result struct {
	// Style is the style every item was converted to
	Style casing.Style `json:"style" yaml:"style"`
	// Items holds one entry per input, in input order
	Items []Item `json:"items" yaml:"items"`
	// ChangedCount is the number of items whose output differs from the input
	ChangedCount int `json:"changed_count" yaml:"changed_count"`
	// Collisions maps an output to the distinct inputs that produced it,
	// for outputs produced by more than one input
	Collisions map[string][]string `json:"collisions,omitempty" yaml:"collisions,omitempty"`
	// Duration is the wall time spent converting
	Duration time.Duration `json:"-" yaml:"-"`
}

// Outputs returns the converted names in input order.
func (r *Result) Outputs() []string {
	out := make([]string, len(r.Items))
	for i, item := range r.Items {
		out[i] = item.Output
	}
	return out
}

// HasCollisions reports whether distinct inputs converted to the same output.
func (r *Result) HasCollisions() bool {
	return len(r.Collisions) > 0
}

// ConvertWithOptions converts a batch of names using functional options.
//
// Example:
//
//	result, err := batch.ConvertWithOptions(ctx,
//		batch.WithReader(os.Stdin),
//		batch.WithStyleName("snake_case"),
//		batch.WithDeduplicate(true),
//	)
func ConvertWithOptions(ctx context.Context, opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	inputs := cfg.inputs
	if cfg.reader != nil {
		inputs, err = readLines(cfg.reader)
		if err != nil {
			return nil, err
		}
	}
	if cfg.deduplicate {
		inputs = dedupe(inputs)
	}

	log := cfg.logger.With("style", cfg.style.String())
	log.Debug("converting batch", "count", len(inputs), "concurrency", cfg.concurrency)

	start := time.Now()
	items, err := convertAll(ctx, inputs, cfg.style, cfg.concurrency)
	if err != nil {
		log.Error("batch conversion stopped", "error", err)
		return nil, err
	}

	result := &Result{
		Style:    cfg.style,
		Items:    items,
		Duration: time.Since(start),
	}
	for _, item := range items {
		if item.Changed {
			result.ChangedCount++
		}
	}
	result.Collisions = findCollisions(items)
	for output, sources := range result.Collisions {
		log.Warn("inputs collide after conversion", "output", output, "inputs", sources)
	}

	log.Info("converted batch",
		"count", len(items),
		"changed", result.ChangedCount,
		"collisions", len(result.Collisions),
		"duration", result.Duration,
	)
	return result, nil
}

// convertAll splits inputs into at most concurrency contiguous chunks and
// converts them in parallel, writing results in place.
func convertAll(ctx context.Context, inputs []string, style casing.Style, concurrency int) ([]Item, error) {
	items := make([]Item, len(inputs))
	if len(inputs) == 0 {
		return items, nil
	}

	chunk := (len(inputs) + concurrency - 1) / concurrency
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for lo := 0; lo < len(inputs); lo += chunk {
		hi := min(lo+chunk, len(inputs))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				out := casing.Convert(inputs[i], style)
				items[i] = Item{Input: inputs[i], Output: out, Changed: out != inputs[i]}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("batch: reading input: %w", err)
	}
	return lines, nil
}

func dedupe(inputs []string) []string {
	seen := make(map[string]struct{}, len(inputs))
	out := make([]string, 0, len(inputs))
	for _, in := range inputs {
		if _, ok := seen[in]; ok {
			continue
		}
		seen[in] = struct{}{}
		out = append(out, in)
	}
	return out
}

func findCollisions(items []Item) map[string][]string {
	byOutput := make(map[string][]string)
	for _, item := range items {
		if slices.Contains(byOutput[item.Output], item.Input) {
			continue
		}
		textutil.AddNested(byOutput, item.Output, item.Input)
	}

	var collisions map[string][]string
	for output, sources := range byOutput {
		if len(sources) < 2 {
			continue
		}
		if collisions == nil {
			collisions = make(map[string][]string)
		}
		collisions[output] = sources
	}
	return collisions
}
