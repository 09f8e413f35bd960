package textutil

import (
	"slices"
	"strings"
	"unicode"
)

// RemoveCharacters returns s without any of the given runes.
func RemoveCharacters(s string, chars ...rune) string {
	if s == "" || len(chars) == 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if slices.Contains(chars, r) {
			return -1
		}
		return r
	}, s)
}

// Reverse returns s with its runes in reverse order.
func Reverse(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	slices.Reverse(runes)
	return string(runes)
}

// CapitalizeWords uppercases the first rune and lowercases the rest of every
// space-separated word. Spacing is preserved.
// Example: "multiple words EXAMPLE" -> "Multiple Words Example"
func CapitalizeWords(s string) string {
	if s == "" {
		return s
	}
	words := strings.Split(s, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
