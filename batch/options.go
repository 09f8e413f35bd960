package batch

import (
	"io"
	"runtime"

	"github.com/erraggy/casekit/caseerrors"
	"github.com/erraggy/casekit/casing"
	"github.com/erraggy/casekit/internal/options"
)

// Option is a function that configures a batch conversion
type Option func(*batchConfig) error

// batchConfig holds configuration for a batch conversion
type batchConfig struct {
	// Input source (exactly one must be set)
	inputs []string
	reader io.Reader

	style       casing.Style
	concurrency int
	deduplicate bool
	logger      Logger
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*batchConfig, error) {
	cfg, err := options.Apply(&batchConfig{
		style:       casing.Camel,
		concurrency: runtime.GOMAXPROCS(0),
		logger:      NopLogger{},
	}, opts...)
	if err != nil {
		return nil, err
	}

	if err := options.ValidateSingleInputSource(
		options.Source{Option: "WithInputs", Set: cfg.inputs != nil},
		options.Source{Option: "WithReader", Set: cfg.reader != nil},
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithInputs specifies the names to convert. An empty, non-nil slice is a
// valid input and yields an empty result.
func WithInputs(inputs []string) Option {
	return func(cfg *batchConfig) error {
		if inputs == nil {
			inputs = []string{}
		}
		cfg.inputs = inputs
		return nil
	}
}

// WithReader reads names from r, one per line. Lines are trimmed and blank
// lines are skipped.
func WithReader(r io.Reader) Option {
	return func(cfg *batchConfig) error {
		if r == nil {
			return &caseerrors.ConfigError{Option: "reader", Message: "reader must not be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithStyle sets the target style
// Default: casing.Camel
func WithStyle(style casing.Style) Option {
	return func(cfg *batchConfig) error {
		if !style.IsValid() {
			return &caseerrors.ConfigError{Option: "style", Value: style, Message: "unknown style"}
		}
		cfg.style = style
		return nil
	}
}

// WithStyleName sets the target style by name, see casing.ParseStyle.
func WithStyleName(name string) Option {
	return func(cfg *batchConfig) error {
		style, err := casing.ParseStyle(name)
		if err != nil {
			return &caseerrors.ConfigError{Option: "style", Value: name, Cause: err}
		}
		cfg.style = style
		return nil
	}
}

// WithConcurrency sets the maximum number of goroutines converting at once.
// Default: runtime.GOMAXPROCS(0)
func WithConcurrency(n int) Option {
	return func(cfg *batchConfig) error {
		if err := options.RequirePositive("concurrency", n); err != nil {
			return err
		}
		cfg.concurrency = n
		return nil
	}
}

// WithDeduplicate drops repeated inputs, keeping the first occurrence.
// Default: false
func WithDeduplicate(enabled bool) Option {
	return func(cfg *batchConfig) error {
		cfg.deduplicate = enabled
		return nil
	}
}

// WithLogger sets the logger for progress and collision messages.
// A nil logger restores the default NopLogger.
func WithLogger(l Logger) Option {
	return func(cfg *batchConfig) error {
		if l == nil {
			l = NopLogger{}
		}
		cfg.logger = l
		return nil
	}
}
