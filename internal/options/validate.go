// Package options holds the helpers behind the functional options of the
// batch and rekey packages.
package options

import (
	"strings"

	"github.com/erraggy/casekit/caseerrors"
)

// Apply runs every option against cfg and stops at the first error.
func Apply[T any, O ~func(*T) error](cfg *T, opts ...O) (*T, error) {
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Source is one way of supplying input, named after its option.
type Source struct {
	Option string
	Set    bool
}

// ValidateSingleInputSource ensures exactly one of sources is set. The error
// is a *caseerrors.ConfigError for the "input" option whose message names the
// candidate options.
func ValidateSingleInputSource(sources ...Source) error {
	var set []string
	names := make([]string, 0, len(sources))
	for _, s := range sources {
		names = append(names, s.Option)
		if s.Set {
			set = append(set, s.Option)
		}
	}

	switch len(set) {
	case 1:
		return nil
	case 0:
		return &caseerrors.ConfigError{Option: "input", Message: "must specify an input source (use " + orList(names) + ")"}
	default:
		return &caseerrors.ConfigError{Option: "input", Message: "must specify exactly one input source, got " + strings.Join(set, " and ")}
	}
}

// RequirePositive returns a *caseerrors.ConfigError for option unless n > 0.
func RequirePositive(option string, n int) error {
	if n <= 0 {
		return &caseerrors.ConfigError{Option: option, Value: n, Message: "must be positive"}
	}
	return nil
}

// orList renders names as "A", "A or B" or "A, B, or C".
func orList(names []string) string {
	switch len(names) {
	case 0:
		return "an input option"
	case 1:
		return names[0]
	case 2:
		return names[0] + " or " + names[1]
	}
	return strings.Join(names[:len(names)-1], ", ") + ", or " + names[len(names)-1]
}
