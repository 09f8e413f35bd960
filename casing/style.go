package casing

import (
	"fmt"
	"slices"

	"github.com/erraggy/casekit/caseerrors"
)

// Style identifies a target naming convention.
type Style int

const (
	// Camel is camelCase: first word lowercased, later words capitalized.
	Camel Style = iota
	// Pascal is PascalCase: every word capitalized.
	Pascal
	// SnakeLower is lower snake_case.
	SnakeLower
	// SnakeUpper is UPPER_SNAKE_CASE.
	SnakeUpper
)

var styleNames = [...]string{
	Camel:      "camel",
	Pascal:     "pascal",
	SnakeLower: "snake",
	SnakeUpper: "upper-snake",
}

// styleAliases is keyed by the lower snake form of every accepted name, so
// "camelCase", "camel-case" and "CAMEL_CASE" all hit the same entry.
var styleAliases = map[string]Style{
	"camel":                Camel,
	"camel_case":           Camel,
	"lower_camel":          Camel,
	"lower_camel_case":     Camel,
	"pascal":               Pascal,
	"pascal_case":          Pascal,
	"upper_camel":          Pascal,
	"upper_camel_case":     Pascal,
	"snake":                SnakeLower,
	"snake_case":           SnakeLower,
	"snake_lower":          SnakeLower,
	"lower_snake":          SnakeLower,
	"lower_snake_case":     SnakeLower,
	"snake_upper":          SnakeUpper,
	"upper_snake":          SnakeUpper,
	"upper_snake_case":     SnakeUpper,
	"screaming_snake":      SnakeUpper,
	"screaming_snake_case": SnakeUpper,
	"constant":             SnakeUpper,
	"constant_case":        SnakeUpper,
}

// String returns the canonical name of the style.
func (s Style) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleNames[s]
}

// IsValid reports whether s is one of the declared styles.
func (s Style) IsValid() bool {
	return s >= Camel && s <= SnakeUpper
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, &caseerrors.StyleError{Value: s.String(), Valid: StyleNames()}
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseStyle.
func (s *Style) UnmarshalText(text []byte) error {
	parsed, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Styles returns every style in declaration order.
func Styles() []Style {
	return []Style{Camel, Pascal, SnakeLower, SnakeUpper}
}

// StyleNames returns the canonical names of every style in declaration order.
func StyleNames() []string {
	names := make([]string, 0, len(styleNames))
	for _, s := range Styles() {
		names = append(names, s.String())
	}
	return names
}

// Aliases returns the accepted alternative names of s in lower snake form,
// sorted. The canonical name is not included.
func (s Style) Aliases() []string {
	var aliases []string
	for alias, style := range styleAliases {
		if style == s && alias != ToSnakeCaseLower(s.String()) {
			aliases = append(aliases, alias)
		}
	}
	slices.Sort(aliases)
	return aliases
}

// ParseStyle resolves a style name. Canonical names and common aliases are
// accepted in any naming convention, e.g. "camelCase", "PascalCase",
// "snake_case", "SCREAMING_SNAKE" or "constant".
func ParseStyle(name string) (Style, error) {
	if s, ok := styleAliases[ToSnakeCaseLower(name)]; ok {
		return s, nil
	}
	return 0, &caseerrors.StyleError{Value: name, Valid: StyleNames()}
}
