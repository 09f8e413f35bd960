// Package caseerrors provides structured error types for the casekit library.
//
// Import path: github.com/erraggy/casekit/caseerrors
//
// The case converters in package casing never fail. Errors only come from the
// helpers around them: text utilities with invalid arguments or patterns,
// unknown style names, key collisions while rewriting documents, and invalid
// functional options. This package lets callers tell those apart with
// [errors.Is] and [errors.As].
//
// # Error Types
//
//   - [ArgumentError]: an empty or missing argument to a helper
//   - [PatternError]: a regular expression that failed to compile
//   - [StyleError]: an unrecognized naming style
//   - [CollisionError]: two keys of one mapping that convert to the same name
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
//   - [ErrArgument]: Matches any [ArgumentError]
//   - [ErrPattern]: Matches any [PatternError]
//   - [ErrStyle]: Matches any [StyleError]
//   - [ErrCollision]: Matches any [CollisionError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage
//
//	ok, err := textutil.MatchesPattern(input, pattern)
//	if err != nil {
//	    var patErr *caseerrors.PatternError
//	    if errors.As(err, &patErr) {
//	        fmt.Println("bad pattern:", patErr.Pattern)
//	    }
//	}
package caseerrors
