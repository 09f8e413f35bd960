package rekey

import (
	"io"

	"github.com/erraggy/casekit/batch"
	"github.com/erraggy/casekit/caseerrors"
	"github.com/erraggy/casekit/casing"
	"github.com/erraggy/casekit/internal/options"
)

// DefaultMaxDepth is the default nesting limit for renamed mappings.
const DefaultMaxDepth = 64

// Option is a function that configures a rekey operation
type Option func(*rekeyConfig) error

// rekeyConfig holds configuration for a rekey operation
type rekeyConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	content  []byte
	reader   io.Reader

	style        casing.Style
	maxDepth     int
	skipKeys     map[string]struct{}
	strict       bool
	outputFormat Format
	logger       batch.Logger
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*rekeyConfig, error) {
	cfg, err := options.Apply(&rekeyConfig{
		style:    casing.SnakeLower,
		maxDepth: DefaultMaxDepth,
		skipKeys: map[string]struct{}{},
		logger:   batch.NopLogger{},
	}, opts...)
	if err != nil {
		return nil, err
	}

	if err := options.ValidateSingleInputSource(
		options.Source{Option: "WithFilePath", Set: cfg.filePath != nil},
		options.Source{Option: "WithContent", Set: cfg.content != nil},
		options.Source{Option: "WithReader", Set: cfg.reader != nil},
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath reads the document from a file. The extension selects the
// input format when it is .json, .yaml or .yml.
func WithFilePath(path string) Option {
	return func(cfg *rekeyConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithContent specifies the document bytes
func WithContent(data []byte) Option {
	return func(cfg *rekeyConfig) error {
		if data == nil {
			return &caseerrors.ConfigError{Option: "content", Message: "content must not be nil"}
		}
		cfg.content = data
		return nil
	}
}

// WithReader reads the document from r
func WithReader(r io.Reader) Option {
	return func(cfg *rekeyConfig) error {
		if r == nil {
			return &caseerrors.ConfigError{Option: "reader", Message: "reader must not be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithStyle sets the style keys are converted to
// Default: casing.SnakeLower
func WithStyle(style casing.Style) Option {
	return func(cfg *rekeyConfig) error {
		if !style.IsValid() {
			return &caseerrors.ConfigError{Option: "style", Value: style, Message: "unknown style"}
		}
		cfg.style = style
		return nil
	}
}

// WithMaxDepth limits how deeply nested mappings are renamed. The top-level
// mapping is at depth 1.
// Default: DefaultMaxDepth
func WithMaxDepth(depth int) Option {
	return func(cfg *rekeyConfig) error {
		if err := options.RequirePositive("max-depth", depth); err != nil {
			return err
		}
		cfg.maxDepth = depth
		return nil
	}
}

// WithSkipKeys lists keys that are never renamed, such as "$ref".
// Repeated calls add to the list.
func WithSkipKeys(keys ...string) Option {
	return func(cfg *rekeyConfig) error {
		for _, k := range keys {
			cfg.skipKeys[k] = struct{}{}
		}
		return nil
	}
}

// WithStrict turns key collisions into errors
// Default: false
func WithStrict(enabled bool) Option {
	return func(cfg *rekeyConfig) error {
		cfg.strict = enabled
		return nil
	}
}

// WithOutputFormat sets the output format
// Default: FormatAuto (same as the input)
func WithOutputFormat(format Format) Option {
	return func(cfg *rekeyConfig) error {
		switch format {
		case FormatAuto, FormatJSON, FormatYAML:
		default:
			return &caseerrors.ConfigError{Option: "output-format", Value: string(format), Message: "unknown format"}
		}
		cfg.outputFormat = format
		return nil
	}
}

// WithLogger sets the logger for collision and depth warnings.
// A nil logger restores the default NopLogger.
func WithLogger(l batch.Logger) Option {
	return func(cfg *rekeyConfig) error {
		if l == nil {
			l = batch.NopLogger{}
		}
		cfg.logger = l
		return nil
	}
}
