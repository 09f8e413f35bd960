package textutil

import (
	"regexp"
	"strings"
	"sync"

	"github.com/erraggy/casekit/caseerrors"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespaceRun    = regexp.MustCompile(`\s+`)
	markupTag        = regexp.MustCompile(`<.*?>`)
)

// patternCache holds compiled user patterns keyed by source.
var patternCache sync.Map

// MatchesPattern reports whether input contains a match of pattern.
// Both arguments must be non-empty.
func MatchesPattern(input, pattern string) (bool, error) {
	if input == "" {
		return false, &caseerrors.ArgumentError{Name: "input", Message: "must not be empty"}
	}
	if pattern == "" {
		return false, &caseerrors.ArgumentError{Name: "pattern", Message: "must not be empty"}
	}

	re, err := compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(input), nil
}

// FindMatches returns up to n matches of pattern in input, or all of them
// when n is negative. Patterns are cached like MatchesPattern.
func FindMatches(input, pattern string, n int) ([]string, error) {
	if pattern == "" {
		return nil, &caseerrors.ArgumentError{Name: "pattern", Message: "must not be empty"}
	}
	re, err := compile(pattern)
	if err != nil {
		return nil, err
	}
	return re.FindAllString(input, n), nil
}

func compile(pattern string) (*regexp.Regexp, error) {
	if cached, ok := patternCache.Load(pattern); ok {
		return cached.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &caseerrors.PatternError{Pattern: pattern, Cause: err}
	}
	actual, _ := patternCache.LoadOrStore(pattern, re)
	return actual.(*regexp.Regexp), nil
}

// ToSlug converts s to a URL-friendly slug: lowercase ASCII letters, digits
// and single hyphens.
// Example: "URL Slug Example" -> "url-slug-example"
func ToSlug(s string) string {
	if s == "" {
		return ""
	}
	result := strings.ToLower(s)
	result = slugInvalidChars.ReplaceAllString(result, "")
	result = whitespaceRun.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// NormalizeSpaces trims s and collapses every whitespace run into one space.
func NormalizeSpaces(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	return whitespaceRun.ReplaceAllString(trimmed, " ")
}

// StripTags removes HTML or XML tags from s.
func StripTags(s string) string {
	if s == "" {
		return s
	}
	return markupTag.ReplaceAllString(s, "")
}
