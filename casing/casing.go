package casing

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// LeadingDigitPrefix is written before the output of every style when the
// first emitted rune is a digit.
const LeadingDigitPrefix = '_'

// rule parameterizes the shared scan with a boundary policy and the casing
// applied once a boundary decision has been made.
type rule struct {
	// separator reports whether r only delimits words and is never emitted.
	separator func(r rune) bool
	// transitions enables hump and letter-to-digit boundaries.
	transitions bool

	first     func(r rune) rune
	wordStart func(r rune) rune
	inWord    func(r rune) rune

	// joiner is written at every boundary after the first word; zero for none.
	joiner rune
	// growth multiplies the input length to size the output buffer.
	growth int
}

var (
	camelRule = rule{
		separator: isWordSeparator,
		first:     unicode.ToLower,
		wordStart: unicode.ToUpper,
		inWord:    keep,
		growth:    1,
	}
	pascalRule = rule{
		separator: isWordSeparator,
		first:     unicode.ToUpper,
		wordStart: unicode.ToUpper,
		inWord:    keep,
		growth:    1,
	}
	snakeLowerRule = rule{
		separator:   isNotAlphanumeric,
		transitions: true,
		first:       unicode.ToLower,
		wordStart:   unicode.ToLower,
		inWord:      unicode.ToLower,
		joiner:      '_',
		growth:      2,
	}
	snakeUpperRule = rule{
		separator:   isNotAlphanumeric,
		transitions: true,
		first:       unicode.ToUpper,
		wordStart:   unicode.ToUpper,
		inWord:      unicode.ToUpper,
		joiner:      '_',
		growth:      2,
	}
)

// ToCamelCase converts s to camelCase.
// The first emitted letter is lowercased, the first letter after each run of
// separators is uppercased, and everything else is copied as is.
// Example: "my_variable" -> "myVariable"
// Example: "MyVariable" -> "myVariable"
func ToCamelCase(s string) string {
	return camelRule.apply(s)
}

// ToPascalCase converts s to PascalCase.
// Like ToCamelCase but the first emitted letter is uppercased too.
// Example: "my variable" -> "MyVariable"
// Example: "my variAb-le" -> "MyVariAbLe"
func ToPascalCase(s string) string {
	return pascalRule.apply(s)
}

// ToSnakeCaseLower converts s to lower snake_case.
// Words end at separators, lower-to-upper humps and letter-to-digit
// transitions, and are joined with a single underscore.
// Example: "MyVariable" -> "my_variable"
// Example: "my variAb-le" -> "my_vari_ab_le"
func ToSnakeCaseLower(s string) string {
	return snakeLowerRule.apply(s)
}

// ToSnakeCaseUpper converts s to UPPER_SNAKE_CASE using the same word
// boundaries as ToSnakeCaseLower.
// Example: "my variAb-le" -> "MY_VARI_AB_LE"
func ToSnakeCaseUpper(s string) string {
	return snakeUpperRule.apply(s)
}

// Convert converts s to the given style. An invalid style returns s unchanged.
func Convert(s string, style Style) string {
	switch style {
	case Camel:
		return ToCamelCase(s)
	case Pascal:
		return ToPascalCase(s)
	case SnakeLower:
		return ToSnakeCaseLower(s)
	case SnakeUpper:
		return ToSnakeCaseUpper(s)
	default:
		return s
	}
}

func (c *rule) apply(s string) string {
	if s == "" {
		return s
	}

	var b strings.Builder
	b.Grow(len(s)*c.growth + 1)

	var (
		last    rune
		pending bool
		emitted bool
	)

	for _, r := range s {
		if c.separator(r) {
			pending = true
			last = r
			continue
		}

		switch {
		case !emitted:
			if unicode.IsDigit(r) {
				b.WriteRune(LeadingDigitPrefix)
			}
			b.WriteRune(c.first(r))
		case pending || (c.transitions && isTransition(last, r)):
			if c.joiner != 0 {
				b.WriteRune(c.joiner)
			}
			b.WriteRune(c.wordStart(r))
		default:
			b.WriteRune(c.inWord(r))
		}

		emitted = true
		pending = false
		last = r
	}

	return b.String()
}

// isTransition reports whether a word starts at cur given the rune before it:
// a lowercase-to-uppercase hump, or a letter followed by a digit.
func isTransition(prev, cur rune) bool {
	if unicode.IsLower(prev) && unicode.IsUpper(cur) {
		return true
	}
	return unicode.IsLetter(prev) && unicode.IsDigit(cur)
}

// isWordSeparator classifies separators for camel and Pascal output.
// Invalid UTF-8 decodes to utf8.RuneError and is treated as a separator.
func isWordSeparator(r rune) bool {
	switch r {
	case '_', '-', '~', utf8.RuneError:
		return true
	}
	return unicode.IsSpace(r) || unicode.In(r, unicode.Z)
}

func isNotAlphanumeric(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func keep(r rune) rune { return r }
